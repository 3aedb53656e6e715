package parse

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Substitution is a "/from/to/" description edit. Global replaces every
// occurrence instead of the first.
type Substitution struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Global bool   `json:"global"`
}

// Apply performs the substitution on text.
func (s Substitution) Apply(text string) string {
	if s.Global {
		return strings.ReplaceAll(text, s.From, s.To)
	}
	return strings.Replace(text, s.From, s.To, 1)
}

// Invocation is one classified command line.
type Invocation struct {
	Command      string            `json:"command,omitempty"`
	IDs          []int             `json:"ids,omitempty"`
	TagsAdd      []string          `json:"tags_add,omitempty"`
	TagsRemove   []string          `json:"tags_remove,omitempty"`
	Attributes   map[string]string `json:"attributes,omitempty"`
	Substitution *Substitution     `json:"substitution,omitempty"`
	Description  string            `json:"description,omitempty"`

	ids map[int]struct{}
}

func newInvocation() *Invocation {
	return &Invocation{
		Attributes: map[string]string{},
		ids:        map[int]struct{}{},
	}
}

func (inv *Invocation) addID(id int) {
	inv.ids[id] = struct{}{}
}

// finish turns the id set into the sorted IDs slice.
func (inv *Invocation) finish() {
	inv.IDs = slices.Sorted(maps.Keys(inv.ids))
	if len(inv.IDs) == 0 {
		inv.IDs = nil
	}
	inv.ids = nil
}

// HasID reports whether id was targeted.
func (inv *Invocation) HasID(id int) bool {
	_, ok := slices.BinarySearch(inv.IDs, id)
	return ok
}

// HasDescription reports whether a description was recorded.
func (inv *Invocation) HasDescription() bool {
	return inv.Description != ""
}

// String renders the invocation on one line for logs and debugging.
func (inv *Invocation) String() string {
	var parts []string
	if inv.Command != "" {
		parts = append(parts, "command="+inv.Command)
	}
	if len(inv.IDs) > 0 {
		ids := make([]string, len(inv.IDs))
		for i, id := range inv.IDs {
			ids[i] = fmt.Sprint(id)
		}
		parts = append(parts, "ids="+strings.Join(ids, ","))
	}
	for _, tag := range inv.TagsAdd {
		parts = append(parts, "+"+tag)
	}
	for _, tag := range inv.TagsRemove {
		parts = append(parts, "-"+tag)
	}
	for _, name := range slices.Sorted(maps.Keys(inv.Attributes)) {
		parts = append(parts, name+":"+inv.Attributes[name])
	}
	if s := inv.Substitution; s != nil {
		sub := "/" + s.From + "/" + s.To + "/"
		if s.Global {
			sub += "g"
		}
		parts = append(parts, sub)
	}
	if inv.Description != "" {
		parts = append(parts, fmt.Sprintf("description=%q", inv.Description))
	}
	return strings.Join(parts, " ")
}
