// Package help renders the embedded usage document for the terminal.
package help

import (
	_ "embed"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"taskline/internal/tui/theme"
)

//go:embed usage.md
var usage []byte

// Markdown returns the raw usage document.
func Markdown() string {
	return string(usage)
}

// Render walks the usage document and styles headings, list items and code
// blocks. With plain set no escape sequences are emitted.
func Render(plain bool) string {
	return render(usage, plain)
}

func render(source []byte, plain bool) string {
	paint := func(style lipgloss.Style, s string) string {
		if plain {
			return s
		}
		return style.Render(s)
	}

	doc := goldmark.DefaultParser().Parse(text.NewReader(source))

	var b strings.Builder
	ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch node := n.(type) {
		case *ast.Heading:
			title := string(node.Text(source))
			if b.Len() > 0 {
				b.WriteString("\n")
			}
			if node.Level == 1 {
				b.WriteString(paint(theme.Title, strings.ToUpper(title)))
			} else {
				b.WriteString(paint(theme.Subtitle, title))
			}
			b.WriteString("\n")
			return ast.WalkSkipChildren, nil

		case *ast.Paragraph:
			b.WriteString(string(node.Text(source)))
			b.WriteString("\n")
			return ast.WalkSkipChildren, nil

		case *ast.ListItem:
			b.WriteString("  • ")
			b.WriteString(string(node.Text(source)))
			b.WriteString("\n")
			return ast.WalkSkipChildren, nil

		case *ast.FencedCodeBlock:
			lines := node.Lines()
			for i := 0; i < lines.Len(); i++ {
				seg := lines.At(i)
				line := strings.TrimRight(string(seg.Value(source)), "\n")
				b.WriteString("    ")
				b.WriteString(paint(theme.Code, line))
				b.WriteString("\n")
			}
			return ast.WalkSkipChildren, nil
		}

		return ast.WalkContinue, nil
	})

	return b.String()
}
