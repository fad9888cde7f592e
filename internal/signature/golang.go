package signature

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/parser"
	"go/printer"
	"go/token"
	"strings"
)

type goExtractor struct{}

// Extract keeps the package clause, imports, type declarations and
// function signatures. Comments survive only as requested docstrings.
func (goExtractor) Extract(src []byte, opts Options) (string, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "", src, parser.ParseComments)
	if err != nil {
		return "", fmt.Errorf("parse go source: %w", err)
	}

	var blocks []string
	blocks = append(blocks, "package "+file.Name.Name)

	for _, decl := range file.Decls {
		switch d := decl.(type) {
		case *ast.GenDecl:
			if d.Tok != token.IMPORT && d.Tok != token.TYPE {
				continue
			}
			doc := d.Doc
			d.Doc = nil
			text, err := printNode(fset, d)
			if err != nil {
				return "", err
			}
			blocks = append(blocks, goDoc(doc, opts)+text)

		case *ast.FuncDecl:
			doc := d.Doc
			d.Doc, d.Body = nil, nil
			text, err := printNode(fset, d)
			if err != nil {
				return "", err
			}
			blocks = append(blocks, goDoc(doc, opts)+text+" {\n\t// "+Placeholder+"\n}")
		}
	}
	return strings.Join(blocks, "\n\n") + "\n", nil
}

func goDoc(doc *ast.CommentGroup, opts Options) string {
	if doc == nil {
		return ""
	}
	text, ok := docText(doc.Text(), opts)
	if !ok {
		return ""
	}
	var b strings.Builder
	for _, line := range strings.Split(text, "\n") {
		b.WriteString(strings.TrimRight("// "+line, " "))
		b.WriteString("\n")
	}
	return b.String()
}

func printNode(fset *token.FileSet, node any) (string, error) {
	var buf bytes.Buffer
	cfg := printer.Config{Mode: printer.UseSpaces | printer.TabIndent, Tabwidth: 8}
	if err := cfg.Fprint(&buf, fset, node); err != nil {
		return "", fmt.Errorf("print go source: %w", err)
	}
	return buf.String(), nil
}
