package theme

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ---------------------------------------------------------------------------
// Color palette: ANSI 0-15 plus one 256-color surface
// ---------------------------------------------------------------------------

var (
	Text      = lipgloss.Color("7")
	TextMuted = lipgloss.Color("8")

	Primary   = lipgloss.Color("4")   // blue
	Secondary = lipgloss.Color("6")   // cyan
	Accent    = lipgloss.Color("5")   // magenta
	Success   = lipgloss.Color("2")   // green
	Warning   = lipgloss.Color("3")   // yellow
	Danger    = lipgloss.Color("1")   // red
	Surface   = lipgloss.Color("236") // dark bg
	Border    = lipgloss.Color("8")   // dim
)

// ---------------------------------------------------------------------------
// Semantic text styles
// ---------------------------------------------------------------------------

var (
	Title    = lipgloss.NewStyle().Bold(true).Foreground(Primary)
	Subtitle = lipgloss.NewStyle().Bold(true).Foreground(Secondary)
	Muted    = lipgloss.NewStyle().Foreground(TextMuted)
	Bold     = lipgloss.NewStyle().Bold(true)
	Code     = lipgloss.NewStyle().Foreground(Success)

	Error = lipgloss.NewStyle().Bold(true).Foreground(Danger)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(Warning)
	Ok    = lipgloss.NewStyle().Bold(true).Foreground(Success)

	Label       = lipgloss.NewStyle().Foreground(TextMuted).Width(14)
	Command     = lipgloss.NewStyle().Bold(true).Foreground(Primary)
	IDs         = lipgloss.NewStyle().Foreground(Accent)
	TagAdd      = lipgloss.NewStyle().Foreground(Success)
	TagRemove   = lipgloss.NewStyle().Foreground(Danger)
	Attribute   = lipgloss.NewStyle().Foreground(Secondary)
	Description = lipgloss.NewStyle().Foreground(Text)
)

// ---------------------------------------------------------------------------
// Reusable component helpers
// ---------------------------------------------------------------------------

var (
	Box = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Primary).
		Padding(0, 1)

	StatusBar = lipgloss.NewStyle().
			Foreground(TextMuted).
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(Border)

	HelpHint = lipgloss.NewStyle().Foreground(TextMuted)
)

var ansiIndex = map[string]int{
	"black": 0, "red": 1, "green": 2, "yellow": 3,
	"blue": 4, "magenta": 5, "cyan": 6, "white": 7,
}

// ForColor builds the style for a color vocabulary name such as "bold_red",
// "underline", "on_blue" or "on_bright_white". Unknown parts are ignored.
func ForColor(name string) lipgloss.Style {
	style := lipgloss.NewStyle()

	rest := name
	if bg, ok := strings.CutPrefix(rest, "on_"); ok {
		offset := 0
		if b, ok := strings.CutPrefix(bg, "bright_"); ok {
			bg = b
			offset = 8
		}
		if idx, ok := ansiIndex[bg]; ok {
			style = style.Background(lipgloss.Color(strconv.Itoa(idx + offset)))
		}
		return style
	}

	for _, part := range strings.Split(rest, "_") {
		switch part {
		case "bold":
			style = style.Bold(true)
		case "underline":
			style = style.Underline(true)
		default:
			if idx, ok := ansiIndex[part]; ok {
				style = style.Foreground(lipgloss.Color(strconv.Itoa(idx)))
			}
		}
	}
	return style
}
