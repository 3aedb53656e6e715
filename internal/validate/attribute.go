package validate

import (
	"taskline/internal/dates"
	"taskline/internal/vocab"
)

// Assignment is a validated attribute name and its normalized value.
type Assignment struct {
	Name  string
	Value string
}

// DateOptions controls how due: and until: values are normalized.
type DateOptions struct {
	Parser dates.Parser
	Format string
}

// Attribute resolves an attribute name abbreviation and validates value for
// that attribute. An unresolvable name yields ErrUnknownAttribute; a private
// attribute or a bad priority, date or color yields an *Error.
//
// recur values are returned as given; the duration check is left to the
// caller because a bad recurrence is not fatal.
func Attribute(name, value string, opts DateOptions) (Assignment, error) {
	resolved, ok := vocab.ResolveAttribute(name)
	if !ok {
		return Assignment{}, ErrUnknownAttribute
	}
	if vocab.IsPrivateAttribute(resolved) {
		return Assignment{}, newError(PrivateAttribute, resolved)
	}

	switch resolved {
	case "fg", "bg":
		if value != "" {
			color, ok := vocab.ResolveColor(value)
			if !ok {
				return Assignment{}, newError(InvalidColor, value)
			}
			value = color
		}

	case "due", "until":
		if value != "" {
			epoch, err := Date(value, opts.Parser, opts.Format)
			if err != nil {
				return Assignment{}, err
			}
			value = epoch
		}

	case "priority":
		p, err := Priority(value)
		if err != nil {
			return Assignment{}, err
		}
		value = p
	}

	return Assignment{Name: resolved, Value: value}, nil
}
