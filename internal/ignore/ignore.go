// Package ignore loads .gitdiffignore patterns and matches repo-relative paths against them.
//
// Two kinds of patterns are supported:
//
//   - Directory patterns end with "/" and match the directory itself and
//     everything beneath it ("build/" matches "build" and "build/out.o").
//   - File patterns are shell globs matched against path segments from the
//     right ("*.pyc" matches "src/main.pyc", "src/*.py" matches
//     "pkg/src/a.py"). A leading "/" anchors the glob to the whole path.
//
// Matching is case-sensitive and purely lexical.
package ignore

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// FileName is the ignore file read from the working directory.
const FileName = ".gitdiffignore"

// Pattern is a single ignore rule.
type Pattern string

// IsDir reports whether the pattern is directory-scoped.
func (p Pattern) IsDir() bool {
	return strings.HasSuffix(string(p), "/")
}

// Patterns is an immutable set of ignore rules in file order.
type Patterns []Pattern

// Load reads FileName from dir. A missing file yields no patterns.
func Load(dir string) (Patterns, error) {
	return LoadFile(filepath.Join(dir, FileName))
}

// LoadFile reads patterns from path. A missing file yields no patterns.
func LoadFile(path string) (Patterns, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open ignore file: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// Parse reads one pattern per line, skipping blank lines and # comments.
func Parse(r io.Reader) (Patterns, error) {
	var patterns Patterns
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		patterns = append(patterns, Pattern(line))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read ignore file: %w", err)
	}
	return patterns, nil
}

// Match reports whether p is excluded by any pattern.
func (ps Patterns) Match(p string) bool {
	return IsIgnored(p, ps)
}

// Filter returns the paths not excluded by ps, preserving order.
func (ps Patterns) Filter(paths []string) []string {
	if len(ps) == 0 {
		return paths
	}
	kept := make([]string, 0, len(paths))
	for _, p := range paths {
		if !ps.Match(p) {
			kept = append(kept, p)
		}
	}
	return kept
}

// IsIgnored reports whether p matches one of patterns.
func IsIgnored(p string, patterns Patterns) bool {
	p = normalize(p)
	if p == "" {
		return false
	}
	for _, pattern := range patterns {
		if pattern.IsDir() {
			if matchDir(p, string(pattern)) {
				return true
			}
			continue
		}
		if matchGlob(p, string(pattern)) {
			return true
		}
	}
	return false
}

func matchDir(p, pattern string) bool {
	dir := normalize(strings.TrimSuffix(pattern, "/"))
	if dir == "" {
		return false
	}
	return p == dir || strings.HasPrefix(p, dir+"/")
}

// matchGlob matches pattern segments against the trailing segments of p.
func matchGlob(p, pattern string) bool {
	anchored := strings.HasPrefix(pattern, "/")
	pattern = normalize(pattern)
	if pattern == "" {
		return false
	}

	pathParts := strings.Split(p, "/")
	patternParts := strings.Split(pattern, "/")
	if len(patternParts) > len(pathParts) {
		return false
	}
	if anchored && len(patternParts) != len(pathParts) {
		return false
	}

	offset := len(pathParts) - len(patternParts)
	for i, part := range patternParts {
		ok, err := path.Match(part, pathParts[offset+i])
		if err != nil || !ok {
			return false
		}
	}
	return true
}

// normalize converts native separators and strips "./" and duplicate slashes.
func normalize(p string) string {
	p = strings.TrimSpace(filepath.ToSlash(p))
	if p == "" {
		return ""
	}
	p = strings.TrimPrefix(path.Clean("/"+p), "/")
	return p
}
