package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"taskline/internal/config"
	"taskline/internal/help"
	"taskline/internal/logs"
	"taskline/internal/parse"
	"taskline/internal/validate"
	"taskline/internal/vocab"
)

// Version is reported by the version command.
var Version = "0.1.0"

// Exit codes
const (
	ExitOK       = 0
	ExitUsage    = 2
	ExitInvalid  = 3
	ExitInternal = 10
)

// Handler receives every classified invocation that taskline does not
// answer itself. Storage and execution live behind it.
type Handler interface {
	Handle(inv *parse.Invocation, w io.Writer) error
}

// HandlerFunc adapts a function to Handler.
type HandlerFunc func(inv *parse.Invocation, w io.Writer) error

// Handle calls f(inv, w).
func (f HandlerFunc) Handle(inv *parse.Invocation, w io.Writer) error {
	return f(inv, w)
}

// Env carries everything Run needs besides the arguments.
type Env struct {
	Config  *config.Config
	Flags   GlobalFlags
	Handler Handler
	Stdout  io.Writer
	Stderr  io.Writer
}

func (e *Env) fill() {
	if e.Config == nil {
		e.Config = &config.Config{Reports: map[string]config.Report{}}
	}
	if e.Stdout == nil {
		e.Stdout = os.Stdout
	}
	if e.Stderr == nil {
		e.Stderr = os.Stderr
	}
	if e.Handler == nil {
		e.Handler = PrintHandler(e.Flags.JSON, e.Flags.Plain)
	}
}

// Classifier builds the classifier for a loaded configuration.
func Classifier(cfg *config.Config) (*parse.Classifier, *vocab.Registry) {
	reg := vocab.NewRegistry(cfg.ReportNames()...)
	return parse.NewClassifier(reg, parse.WithDateFormat(cfg.DateFormat)), reg
}

// Run classifies args and dispatches the result. Global flags must already
// have been removed with ExtractGlobalFlags.
func Run(args []string, env Env) int {
	env.fill()
	cfg := env.Config

	if len(args) == 0 && cfg.DefaultCommand != "" {
		args = strings.Fields(cfg.DefaultCommand)
	}

	classifier, reg := Classifier(cfg)
	inv, err := classifier.Classify(args)
	if err != nil {
		fmt.Fprintln(env.Stderr, "Error:", err)
		var verr *validate.Error
		if errors.As(err, &verr) {
			return ExitInvalid
		}
		return ExitInternal
	}
	logs.Logger.Infow("dispatch", "command", inv.Command, "invocation", inv.String())

	switch {
	case inv.Command == "help":
		fmt.Fprint(env.Stdout, help.Render(env.Flags.Plain))
		return ExitOK

	case inv.Command == "colors":
		fmt.Fprint(env.Stdout, RenderColors(env.Flags.Plain))
		return ExitOK

	case inv.Command == "version":
		fmt.Fprintf(env.Stdout, "taskline %s\n", Version)
		return ExitOK

	case reg.IsCustomReport(inv.Command):
		report, _ := cfg.Report(inv.Command)
		if err := report.Validate(); err != nil {
			fmt.Fprintf(env.Stderr, "Error: report %s: %v\n", inv.Command, err)
			return ExitInvalid
		}

	case inv.Command == "":
		if code, done := runWithoutCommand(inv, reg, env); done {
			return code
		}
	}

	if err := env.Handler.Handle(inv, env.Stdout); err != nil {
		fmt.Fprintln(env.Stderr, "Error:", err)
		return ExitInternal
	}
	return ExitOK
}

// runWithoutCommand handles an invocation that named no command. Ids or
// modifications alone are passed on; bare text is treated as a mistyped
// command.
func runWithoutCommand(inv *parse.Invocation, reg *vocab.Registry, env Env) (int, bool) {
	if len(inv.IDs) > 0 {
		return 0, false
	}
	words := strings.Fields(inv.Description)
	if len(words) == 0 {
		if len(inv.Attributes) == 0 && len(inv.TagsAdd) == 0 && len(inv.TagsRemove) == 0 && inv.Substitution == nil {
			fmt.Fprintln(env.Stderr, `No command given. See "taskline help".`)
			return ExitUsage, true
		}
		return 0, false
	}

	word := words[0]
	fmt.Fprintf(env.Stderr, "Unknown command: %s\n", word)
	if suggestions := vocab.Suggest(word, reg.AllCommands(), 3); len(suggestions) > 0 {
		fmt.Fprintf(env.Stderr, "Did you mean: %s?\n", strings.Join(suggestions, ", "))
	}
	return ExitUsage, true
}

// PrintHandler returns the default Handler, which writes the classified
// invocation as a table or as JSON.
func PrintHandler(asJSON, plain bool) Handler {
	return HandlerFunc(func(inv *parse.Invocation, w io.Writer) error {
		if asJSON {
			enc := json.NewEncoder(w)
			enc.SetIndent("", "  ")
			return enc.Encode(inv)
		}
		_, err := fmt.Fprintln(w, RenderInvocation(inv, plain))
		return err
	})
}
