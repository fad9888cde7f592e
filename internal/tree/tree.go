// Package tree turns flat repo-relative paths into a directory tree and
// renders it as a Markdown list or with box-drawing connectors.
package tree

import (
	"bufio"
	"io"
	"slices"
	"strings"
)

// Style selects how a tree is rendered.
type Style int

const (
	// Markdown renders "- name" entries indented two spaces per level.
	Markdown Style = iota
	// ASCII renders entries with "├── " / "└── " connectors.
	ASCII
)

// Node is a directory in the tree. A nil child is a file.
type Node struct {
	children map[string]*Node
}

// Build creates a tree from slash-separated paths. Empty segments are
// skipped. When a name is seen both as a file and as a directory, the
// directory wins, so the result only depends on the set of paths.
func Build(paths []string) *Node {
	root := &Node{}
	for _, p := range paths {
		parts := splitPath(p)
		if len(parts) == 0 {
			continue
		}
		current := root
		for _, part := range parts[:len(parts)-1] {
			current = current.dir(part)
		}
		current.file(parts[len(parts)-1])
	}
	return root
}

func splitPath(p string) []string {
	var parts []string
	for _, part := range strings.Split(p, "/") {
		if part != "" {
			parts = append(parts, part)
		}
	}
	return parts
}

func (n *Node) dir(name string) *Node {
	if n.children == nil {
		n.children = make(map[string]*Node)
	}
	child := n.children[name]
	if child == nil {
		child = &Node{}
		n.children[name] = child
	}
	return child
}

func (n *Node) file(name string) {
	if n.children == nil {
		n.children = make(map[string]*Node)
	}
	if _, ok := n.children[name]; !ok {
		n.children[name] = nil
	}
}

// Names returns the sorted entry names of the directory.
func (n *Node) Names() []string {
	if n == nil {
		return nil
	}
	names := make([]string, 0, len(n.children))
	for name := range n.children {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Child returns the subdirectory called name and whether name exists.
// A file entry returns a nil node and true.
func (n *Node) Child(name string) (*Node, bool) {
	if n == nil {
		return nil, false
	}
	child, ok := n.children[name]
	return child, ok
}

// IsDir reports whether name is a directory entry.
func (n *Node) IsDir(name string) bool {
	child, ok := n.Child(name)
	return ok && child != nil
}

// Len returns the number of entries directly below n.
func (n *Node) Len() int {
	if n == nil {
		return 0
	}
	return len(n.children)
}

// Equal reports whether two trees have the same shape.
func (n *Node) Equal(other *Node) bool {
	if n.Len() != other.Len() {
		return false
	}
	for _, name := range n.Names() {
		a, _ := n.Child(name)
		b, ok := other.Child(name)
		if !ok || (a == nil) != (b == nil) {
			return false
		}
		if a != nil && !a.Equal(b) {
			return false
		}
	}
	return true
}

// frame is a pending directory listing on the render stack.
type frame struct {
	node   *Node
	names  []string
	next   int
	prefix string
}

// Render writes the tree to w, one entry per line.
func Render(w io.Writer, root *Node, style Style) error {
	bw := bufio.NewWriter(w)
	walk(root, style, func(line string) {
		bw.WriteString(line)
		bw.WriteByte('\n')
	})
	return bw.Flush()
}

// String renders the tree with lines joined by "\n" and no trailing newline.
func String(root *Node, style Style) string {
	var lines []string
	walk(root, style, func(line string) {
		lines = append(lines, line)
	})
	return strings.Join(lines, "\n")
}

// walk visits entries depth-first in sorted order using an explicit stack.
func walk(root *Node, style Style, emit func(string)) {
	if root.Len() == 0 {
		return
	}
	stack := []*frame{{node: root, names: root.Names()}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		if top.next >= len(top.names) {
			stack = stack[:len(stack)-1]
			continue
		}

		name := top.names[top.next]
		top.next++
		last := top.next == len(top.names)

		var childPrefix string
		switch style {
		case ASCII:
			connector := "├── "
			childPrefix = top.prefix + "│   "
			if last {
				connector = "└── "
				childPrefix = top.prefix + "    "
			}
			emit(top.prefix + connector + name)
		default:
			emit(top.prefix + "- " + name)
			childPrefix = top.prefix + "  "
		}

		if child, _ := top.node.Child(name); child != nil {
			stack = append(stack, &frame{node: child, names: child.Names(), prefix: childPrefix})
		}
	}
}
