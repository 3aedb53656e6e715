package vocab

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

// Resolve returns the option that candidate unambiguously identifies.
// An exact match always wins. Otherwise candidate must be a prefix of
// exactly one option; no prefix match and an ambiguous prefix both report
// false.
func Resolve(candidate string, options []string) (string, bool) {
	if candidate == "" {
		return "", false
	}

	var match string
	count := 0
	for _, opt := range options {
		if opt == candidate {
			return opt, true
		}
		if strings.HasPrefix(opt, candidate) {
			match = opt
			count++
		}
	}

	if count == 1 {
		return match, true
	}
	return "", false
}

// ResolveAttribute resolves an attribute name abbreviation.
func ResolveAttribute(candidate string) (string, bool) {
	return Resolve(candidate, attributes)
}

// ResolveColor resolves a color name abbreviation.
func ResolveColor(candidate string) (string, bool) {
	return Resolve(candidate, colors)
}

// ResolveCommand tries the built-in commands first and falls back to the
// custom reports only when that fails.
func (r *Registry) ResolveCommand(candidate string) (string, bool) {
	if cmd, ok := Resolve(candidate, commands); ok {
		return cmd, true
	}
	return Resolve(candidate, r.CustomReports())
}

// Suggest returns up to limit options that fuzzily match candidate, best
// first. It is only used for hints and never affects resolution.
func Suggest(candidate string, options []string, limit int) []string {
	if candidate == "" || limit <= 0 {
		return nil
	}
	matches := fuzzy.Find(strings.ToLower(candidate), options)
	var out []string
	for _, m := range matches {
		out = append(out, m.Str)
		if len(out) == limit {
			break
		}
	}
	return out
}
