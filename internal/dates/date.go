package dates

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DefaultFormat is the date format used when configuration does not set one.
const DefaultFormat = "m/d/Y"

// Parser converts user-entered date text into epoch seconds.
type Parser interface {
	Parse(input, format string) (int64, error)
}

// FormatParser parses dates written in the tool's date format notation:
//
//	m  month, 1 or 2 digits     M  month, 2 digits
//	d  day, 1 or 2 digits       D  day, 2 digits
//	y  year, 2 digits           Y  year, 4 digits
//	a  short weekday (Mon)      A  long weekday (Monday)
//	b  short month (Jan)        B  long month (January)
//
// Any other character must appear literally. When the format does not
// match, input that looks like a normalized value (an optional minus sign
// and at least minEpochDigits digits) is taken as epoch seconds, which keeps
// normalization idempotent.
type FormatParser struct {
	Location *time.Location
}

// minEpochDigits is the length of every epoch from March 1973 onward.
const minEpochDigits = 9

// Parse implements Parser.
func (p FormatParser) Parse(input, format string) (int64, error) {
	if input == "" {
		return 0, fmt.Errorf("empty date")
	}
	if format == "" {
		format = DefaultFormat
	}
	loc := p.Location
	if loc == nil {
		loc = time.Local
	}

	t, err := time.ParseInLocation(Layout(format), input, loc)
	if err == nil {
		return t.Unix(), nil
	}
	if isEpoch(input) {
		epoch, perr := strconv.ParseInt(input, 10, 64)
		if perr != nil {
			return 0, fmt.Errorf("parsing epoch %q: %w", input, perr)
		}
		return epoch, nil
	}
	return 0, fmt.Errorf("parsing %q with format %q: %w", input, format, err)
}

// Layout translates a date format into a Go reference-time layout.
func Layout(format string) string {
	var b strings.Builder
	for _, r := range format {
		switch r {
		case 'm':
			b.WriteString("1")
		case 'M':
			b.WriteString("01")
		case 'd':
			b.WriteString("2")
		case 'D':
			b.WriteString("02")
		case 'y':
			b.WriteString("06")
		case 'Y':
			b.WriteString("2006")
		case 'a':
			b.WriteString("Mon")
		case 'A':
			b.WriteString("Monday")
		case 'b':
			b.WriteString("Jan")
		case 'B':
			b.WriteString("January")
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func isEpoch(s string) bool {
	s = strings.TrimPrefix(s, "-")
	if len(s) < minEpochDigits {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
