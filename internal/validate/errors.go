package validate

import (
	"errors"
	"fmt"
	"strings"
)

// Kind identifies the category of a rejected value.
type Kind int

const (
	InvalidPriority Kind = iota + 1
	InvalidDate
	InvalidColor
	InvalidDuration
	PrivateAttribute
	UnrecognizedColumn
	UnknownSortColumn
)

var kindNames = map[Kind]string{
	InvalidPriority:    "invalid priority",
	InvalidDate:        "invalid date",
	InvalidColor:       "invalid color",
	InvalidDuration:    "invalid duration",
	PrivateAttribute:   "private attribute",
	UnrecognizedColumn: "unrecognized column",
	UnknownSortColumn:  "unknown sort column",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Sentinels for errors.Is. Every *Error matches the sentinel of its Kind.
var (
	ErrInvalidPriority    = &Error{Kind: InvalidPriority}
	ErrInvalidDate        = &Error{Kind: InvalidDate}
	ErrInvalidColor       = &Error{Kind: InvalidColor}
	ErrInvalidDuration    = &Error{Kind: InvalidDuration}
	ErrPrivateAttribute   = &Error{Kind: PrivateAttribute}
	ErrUnrecognizedColumn = &Error{Kind: UnrecognizedColumn}
	ErrUnknownSortColumn  = &Error{Kind: UnknownSortColumn}
)

// ErrUnknownAttribute is returned when an attribute name does not resolve.
// Unlike *Error it is not fatal: the classifier keeps the token as text.
var ErrUnknownAttribute = errors.New("unknown attribute")

// Error is a rejected value. Values holds every offending input; the column
// validators report all of them at once, the rest exactly one.
type Error struct {
	Kind   Kind
	Values []string
	// Format is the date format in effect, set for InvalidDate only.
	Format string
}

func newError(kind Kind, values ...string) *Error {
	return &Error{Kind: kind, Values: values}
}

func (e *Error) Error() string {
	if e == nil {
		return "invalid value"
	}
	value := ""
	if len(e.Values) > 0 {
		value = e.Values[0]
	}

	switch e.Kind {
	case InvalidPriority:
		return fmt.Sprintf("%q is not a valid priority.  Use H, M, L or leave blank.", value)
	case InvalidDate:
		if e.Format != "" {
			return fmt.Sprintf("%q is not a valid date in the '%s' format.", value, e.Format)
		}
		return fmt.Sprintf("%q is not a valid date.", value)
	case InvalidColor:
		return fmt.Sprintf("%q is not a valid color.", value)
	case InvalidDuration:
		return fmt.Sprintf("%q is not a valid duration.", value)
	case PrivateAttribute:
		return fmt.Sprintf("%q is not an attribute you may modify directly.", value)
	case UnrecognizedColumn:
		return "Unrecognized column name: " + strings.Join(e.Values, ", ")
	case UnknownSortColumn:
		return "Sort column is not part of the report: " + strings.Join(e.Values, ", ")
	}
	return e.Kind.String() + ": " + strings.Join(e.Values, ", ")
}

// Is matches any *Error of the same Kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || e == nil || t == nil {
		return false
	}
	return e.Kind == t.Kind
}
