package vocab

import "slices"

// Alphabetical please.
var commands = []string{
	"active",
	"add",
	"annotate",
	"append",
	"calendar",
	"colors",
	"completed",
	"delete",
	"done",
	"duplicate",
	"edit",
	"export",
	"ghistory",
	"help",
	"history",
	"import",
	"info",
	"next",
	"overdue",
	"projects",
	"start",
	"stats",
	"stop",
	"summary",
	"tags",
	"timesheet",
	"undelete",
	"undo",
	"version",
}

var attributes = []string{
	"project",
	"priority",
	"fg",
	"bg",
	"due",
	"entry",
	"start",
	"end",
	"recur",
	"until",
	"mask",
	"imask",
}

// Attributes the user may read but never set from the command line.
var privateAttributes = []string{
	"entry",
	"start",
	"end",
	"mask",
	"imask",
}

var colors = buildColors()

var baseColors = []string{"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white"}

func buildColors() []string {
	out := []string{"bold", "underline", "bold_underline"}
	for _, prefix := range []string{"", "bold_", "underline_", "bold_underline_", "on_", "on_bright_"} {
		for _, c := range baseColors {
			out = append(out, prefix+c)
		}
	}
	return out
}

// Commands returns the built-in command names.
func Commands() []string { return slices.Clone(commands) }

// Attributes returns every attribute name, private ones included.
func Attributes() []string { return slices.Clone(attributes) }

// PrivateAttributes returns the attribute names that cannot be assigned directly.
func PrivateAttributes() []string { return slices.Clone(privateAttributes) }

// Colors returns the color names accepted by fg: and bg:.
func Colors() []string { return slices.Clone(colors) }

// BaseColors returns the eight plain color names in ANSI order.
func BaseColors() []string { return slices.Clone(baseColors) }

// IsPrivateAttribute reports whether name is one of the private attributes.
func IsPrivateAttribute(name string) bool {
	return slices.Contains(privateAttributes, name)
}

// Registry combines the fixed vocabularies with the custom report names
// discovered in configuration. It is never mutated after NewRegistry, so a
// single Registry can be shared between goroutines.
type Registry struct {
	customReports []string
}

// NewRegistry creates a Registry with the given custom report names.
// Empty and duplicate names are dropped.
func NewRegistry(reports ...string) *Registry {
	r := &Registry{}
	for _, name := range reports {
		if name == "" || slices.Contains(r.customReports, name) {
			continue
		}
		r.customReports = append(r.customReports, name)
	}
	return r
}

// CustomReports returns the custom report names in configuration order.
func (r *Registry) CustomReports() []string {
	if r == nil {
		return nil
	}
	return slices.Clone(r.customReports)
}

// IsCustomReport reports whether name is exactly one of the custom reports.
func (r *Registry) IsCustomReport(name string) bool {
	if r == nil {
		return false
	}
	return slices.Contains(r.customReports, name)
}

// AllCommands returns the built-in commands followed by the custom reports.
func (r *Registry) AllCommands() []string {
	return append(Commands(), r.CustomReports()...)
}
