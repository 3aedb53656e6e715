package validate

import (
	"strconv"
	"strings"

	"taskline/internal/dates"
)

// MaxRangeSize is the largest number of ids a single range may expand to.
const MaxRangeSize = 10000

// Sequence parses a task id sequence such as "3", "2-5" or "1,3-4,7".
// Ranges are inclusive, low must be strictly below high and a range covers
// at most MaxRangeSize ids. The ids are returned in the order written,
// duplicates included.
func Sequence(input string) ([]int, bool) {
	if input == "" {
		return nil, false
	}

	var ids []int
	for _, part := range strings.Split(input, ",") {
		bounds := strings.Split(part, "-")
		switch len(bounds) {
		case 1:
			id, ok := parseID(bounds[0])
			if !ok {
				return nil, false
			}
			ids = append(ids, id)

		case 2:
			low, ok := parseID(bounds[0])
			if !ok {
				return nil, false
			}
			high, ok := parseID(bounds[1])
			if !ok {
				return nil, false
			}
			if low >= high || high-low >= MaxRangeSize {
				return nil, false
			}
			for id := low; id <= high; id++ {
				ids = append(ids, id)
			}

		default:
			return nil, false
		}
	}

	return ids, len(ids) > 0
}

func parseID(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	id, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return id, true
}

// IsTag reports whether input looks like "+word" or "-word".
func IsTag(input string) bool {
	return len(input) > 1 && (input[0] == '+' || input[0] == '-')
}

// Tag splits a tag token into its sign and name.
func Tag(input string) (sign byte, name string, ok bool) {
	if !IsTag(input) {
		return 0, "", false
	}
	return input[0], input[1:], true
}

// Priority upper-cases input and accepts H, M, L or empty.
func Priority(input string) (string, error) {
	p := strings.ToUpper(input)
	switch p {
	case "H", "M", "L", "":
		return p, nil
	}
	return "", newError(InvalidPriority, p)
}

// Date parses input with the date facility and returns the epoch seconds
// as decimal text. Feeding the result back in returns it unchanged.
func Date(input string, parser dates.Parser, format string) (string, error) {
	if parser == nil {
		parser = dates.FormatParser{}
	}
	if format == "" {
		format = dates.DefaultFormat
	}
	epoch, err := parser.Parse(input, format)
	if err != nil {
		e := newError(InvalidDate, input)
		e.Format = format
		return "", e
	}
	return strconv.FormatInt(epoch, 10), nil
}

// Duration checks input against the duration facility.
func Duration(input string, parser dates.DurationParser) error {
	if parser == nil {
		parser = dates.Durations{}
	}
	if _, err := parser.ParseDuration(input); err != nil {
		return newError(InvalidDuration, input)
	}
	return nil
}

// Substitution recognizes "/from/to/" and "/from/to/g". The token must start
// with a slash and contain exactly three of them; the only thing allowed
// after the third is a single "g".
func Substitution(input string) (from, to string, global, ok bool) {
	if !strings.HasPrefix(input, "/") || strings.Count(input, "/") != 3 {
		return "", "", false, false
	}

	second := strings.Index(input[1:], "/") + 1
	third := strings.Index(input[second+1:], "/") + second + 1

	switch rest := input[third+1:]; rest {
	case "":
	case "g":
		global = true
	default:
		return "", "", false, false
	}

	return input[1:second], input[second+1 : third], global, true
}

// Description accepts non-empty text without line breaks or form feeds.
func Description(input string) bool {
	return input != "" && !strings.ContainsAny(input, "\r\n\f")
}
