package cli

import (
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"taskline/internal/parse"
	"taskline/internal/tui/theme"
	"taskline/internal/vocab"
)

type painter func(style lipgloss.Style, s string) string

func newPainter(plain bool) painter {
	return func(style lipgloss.Style, s string) string {
		if plain {
			return s
		}
		return style.Render(s)
	}
}

// RenderInvocation lays out an invocation one category per line. Empty
// categories are left out.
func RenderInvocation(inv *parse.Invocation, plain bool) string {
	paint := newPainter(plain)
	var lines []string
	row := func(label, value string) {
		lines = append(lines, paint(theme.Label, label)+value)
	}

	if inv.Command != "" {
		row("command", paint(theme.Command, inv.Command))
	}
	if len(inv.IDs) > 0 {
		ids := make([]string, len(inv.IDs))
		for i, id := range inv.IDs {
			ids[i] = strconv.Itoa(id)
		}
		row("ids", paint(theme.IDs, strings.Join(ids, ",")))
	}
	if len(inv.TagsAdd)+len(inv.TagsRemove) > 0 {
		var tags []string
		for _, t := range inv.TagsAdd {
			tags = append(tags, paint(theme.TagAdd, "+"+t))
		}
		for _, t := range inv.TagsRemove {
			tags = append(tags, paint(theme.TagRemove, "-"+t))
		}
		row("tags", strings.Join(tags, " "))
	}
	if len(inv.Attributes) > 0 {
		var attrs []string
		for _, name := range slices.Sorted(maps.Keys(inv.Attributes)) {
			attrs = append(attrs, paint(theme.Attribute, name+":"+inv.Attributes[name]))
		}
		row("attributes", strings.Join(attrs, " "))
	}
	if s := inv.Substitution; s != nil {
		sub := "/" + s.From + "/" + s.To + "/"
		if s.Global {
			sub += "g"
		}
		row("substitution", sub)
	}
	if inv.HasDescription() {
		row("description", paint(theme.Description, inv.Description))
	}

	if len(lines) == 0 {
		return paint(theme.Muted, "(nothing)")
	}
	return strings.Join(lines, "\n")
}

// RenderColors shows every color name in its own color, one group per line.
func RenderColors(plain bool) string {
	paint := newPainter(plain)

	var b strings.Builder
	b.WriteString(paint(theme.Title, "Colors"))
	b.WriteString("\n")

	var line []string
	flush := func() {
		if len(line) > 0 {
			b.WriteString(strings.Join(line, " "))
			b.WriteString("\n")
			line = nil
		}
	}

	base := len(vocab.BaseColors())
	for i, name := range vocab.Colors() {
		line = append(line, paint(theme.ForColor(name), name))
		// the three plain styles come first, then groups of base colors
		if i == 2 || (i > 2 && (i-2)%base == 0) {
			flush()
		}
	}
	flush()

	return b.String()
}
