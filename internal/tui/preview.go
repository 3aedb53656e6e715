package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"taskline/internal/cli"
	"taskline/internal/config"
	"taskline/internal/logs"
	"taskline/internal/parse"
	"taskline/internal/tui/theme"
	"taskline/internal/vocab"
)

const prompt = "taskline "

// Model is the interactive preview: a single input line whose
// classification is redrawn on every edit.
type Model struct {
	input      textinput.Model
	classifier *parse.Classifier
	registry   *vocab.Registry
	plain      bool

	tokens    []string
	inv       *parse.Invocation
	err       error
	submitted bool

	width  int
	height int
}

// NewModel creates a preview bound to the vocabulary and date format of cfg.
func NewModel(cfg *config.Config, plain bool) Model {
	ti := textinput.New()
	ti.Prompt = prompt
	ti.Placeholder = "1-3 done +home pri:H"
	ti.CharLimit = 512
	ti.Focus()
	if !plain {
		ti.PromptStyle = theme.Command
	}

	c, reg := cli.Classifier(cfg)
	m := Model{
		input:      ti,
		classifier: c,
		registry:   reg,
		plain:      plain,
	}
	m.classify()
	return m
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		// border (2) and padding (2)
		m.input.Width = max(msg.Width-4-lipgloss.Width(prompt)-1, 10)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			if m.err != nil || len(m.tokens) == 0 {
				return m, nil
			}
			m.submitted = true
			logs.Logger.Debugw("preview submitted", "tokens", m.tokens)
			return m, tea.Quit
		}
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.classify()
	}
	return m, cmd
}

func (m *Model) classify() {
	m.inv = nil
	m.tokens, m.err = Split(m.input.Value())
	if m.err != nil {
		return
	}
	m.inv, m.err = m.classifier.Classify(m.tokens)
}

// View implements tea.Model
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.paint(theme.Title, "taskline") + m.paint(theme.Muted, "  interactive") + "\n")

	box := m.input.View()
	if !m.plain {
		box = theme.Box.Render(box)
	}
	b.WriteString(box + "\n\n")

	switch {
	case m.err != nil:
		b.WriteString(m.paint(theme.Error, "Error: ") + m.err.Error() + "\n")
	case m.inv != nil:
		b.WriteString(cli.RenderInvocation(m.inv, m.plain) + "\n")
		if hint := m.suggestion(); hint != "" {
			b.WriteString("\n" + m.paint(theme.Warn, hint) + "\n")
		}
	}

	hints := m.paint(theme.HelpHint, "enter: run  esc: quit")
	content := strings.TrimRight(b.String(), "\n")
	if gap := m.height - lipgloss.Height(content) - 1; gap > 0 {
		content += strings.Repeat("\n", gap)
	}
	return content + "\n" + hints
}

// suggestion names likely commands when the line starts with a word that
// is not one.
func (m Model) suggestion() string {
	if m.inv.Command != "" || len(m.inv.IDs) > 0 {
		return ""
	}
	words := strings.Fields(m.inv.Description)
	if len(words) == 0 {
		return ""
	}
	s := vocab.Suggest(words[0], m.registry.AllCommands(), 3)
	if len(s) == 0 {
		return ""
	}
	return "Did you mean: " + strings.Join(s, ", ") + "?"
}

func (m Model) paint(style lipgloss.Style, s string) string {
	if m.plain {
		return s
	}
	return style.Render(s)
}

// Submitted returns the tokens of the accepted line. ok is false when the
// user quit without accepting one.
func (m Model) Submitted() (tokens []string, ok bool) {
	if !m.submitted {
		return nil, false
	}
	return m.tokens, true
}

// Run starts the preview and blocks until the user accepts a line or quits.
func Run(cfg *config.Config, plain bool, opts ...tea.ProgramOption) ([]string, bool, error) {
	logs.Logger.Info("starting interactive preview")
	final, err := tea.NewProgram(NewModel(cfg, plain), opts...).Run()
	if err != nil {
		return nil, false, err
	}
	tokens, ok := final.(Model).Submitted()
	return tokens, ok, nil
}
