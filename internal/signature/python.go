//go:build cgo

package signature

import (
	"context"
	"fmt"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"
)

const (
	pyImport          = "import_statement"
	pyImportFrom      = "import_from_statement"
	pyFutureImport    = "future_import_statement"
	pyFunction        = "function_definition"
	pyClass           = "class_definition"
	pyDecorated       = "decorated_definition"
	pyExpressionStmt  = "expression_statement"
	pyString          = "string"
	pyBodyField       = "body"
	pyDefinitionField = "definition"
	pyIndent          = "    "
)

type pythonExtractor struct{}

func newPythonExtractor() Extractor {
	return pythonExtractor{}
}

// Extract keeps module-level imports, functions and classes. Methods are
// kept inside their class; nested functions are dropped with the body.
func (pythonExtractor) Extract(src []byte, opts Options) (string, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(python.GetLanguage())
	tree, err := parser.ParseCtx(context.Background(), nil, src)
	if err != nil {
		return "", fmt.Errorf("parse python source: %w", err)
	}
	defer tree.Close()

	root := tree.RootNode()
	p := pyPrinter{src: src, opts: opts}
	var imports []string
	var defs []string
	for i := 0; i < int(root.NamedChildCount()); i++ {
		node := root.NamedChild(i)
		switch node.Type() {
		case pyImport, pyImportFrom, pyFutureImport:
			imports = append(imports, p.text(node))
		case pyFunction, pyClass, pyDecorated:
			defs = append(defs, p.definition(node, ""))
		}
	}

	var b strings.Builder
	if len(imports) > 0 {
		b.WriteString(strings.Join(imports, "\n"))
		b.WriteString("\n")
	}
	for _, d := range defs {
		if b.Len() > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(d)
	}
	return b.String(), nil
}

type pyPrinter struct {
	src  []byte
	opts Options
}

func (p pyPrinter) text(n *sitter.Node) string {
	return string(p.src[n.StartByte():n.EndByte()])
}

// definition renders a function or class (possibly decorated) at indent.
func (p pyPrinter) definition(n *sitter.Node, indent string) string {
	var b strings.Builder
	if n.Type() == pyDecorated {
		for i := 0; i < int(n.NamedChildCount()); i++ {
			if c := n.NamedChild(i); c.Type() == "decorator" {
				b.WriteString(indent + p.text(c) + "\n")
			}
		}
		n = n.ChildByFieldName(pyDefinitionField)
		if n == nil {
			return strings.TrimRight(b.String(), "\n")
		}
	}

	body := n.ChildByFieldName(pyBodyField)
	if body == nil {
		b.WriteString(indent + p.text(n))
		return b.String()
	}

	header := strings.TrimSpace(string(p.src[n.StartByte():body.StartByte()]))
	b.WriteString(indent + header + "\n")

	inner := indent + pyIndent
	var lines []string
	if doc, ok := p.docstring(body); ok {
		lines = append(lines, quoteDoc(doc, inner))
	}

	if n.Type() == pyFunction {
		lines = append(lines, inner+`"""`+Placeholder+`"""`)
	} else {
		for i := 0; i < int(body.NamedChildCount()); i++ {
			c := body.NamedChild(i)
			if c.Type() == pyFunction || c.Type() == pyDecorated {
				lines = append(lines, p.definition(c, inner))
			}
		}
		if len(lines) == 0 {
			lines = append(lines, inner+"pass")
		}
	}
	b.WriteString(strings.Join(lines, "\n"))
	return b.String()
}

// docstring returns the unquoted docstring of a block if it is kept.
func (p pyPrinter) docstring(body *sitter.Node) (string, bool) {
	if body.NamedChildCount() == 0 {
		return "", false
	}
	first := body.NamedChild(0)
	if first.Type() != pyExpressionStmt || first.NamedChildCount() == 0 {
		return "", false
	}
	str := first.NamedChild(0)
	if str.Type() != pyString {
		return "", false
	}
	return docText(unquote(p.text(str)), p.opts)
}

// unquote strips string prefixes and quotes from a Python string literal.
func unquote(lit string) string {
	lit = strings.TrimLeft(lit, "rRuUbBfF")
	for _, q := range []string{`"""`, `'''`, `"`, `'`} {
		if strings.HasPrefix(lit, q) && strings.HasSuffix(lit, q) && len(lit) >= 2*len(q) {
			return lit[len(q) : len(lit)-len(q)]
		}
	}
	return lit
}

func quoteDoc(doc, indent string) string {
	return indentLines(`"""`+doc+`"""`, indent)
}
