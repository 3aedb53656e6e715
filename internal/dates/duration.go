package dates

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const day = 24 * time.Hour

// DurationParser validates recurrence periods such as "weekly" or "3d".
type DurationParser interface {
	ParseDuration(input string) (time.Duration, error)
}

// Durations is the default DurationParser.
type Durations struct{}

var namedDurations = map[string]time.Duration{
	"daily":      day,
	"day":        day,
	"weekdays":   day,
	"weekly":     7 * day,
	"sennight":   7 * day,
	"biweekly":   14 * day,
	"fortnight":  14 * day,
	"monthly":    30 * day,
	"bimonthly":  61 * day,
	"quarterly":  91 * day,
	"semiannual": 183 * day,
	"annual":     365 * day,
	"yearly":     365 * day,
	"biannual":   730 * day,
	"biyearly":   730 * day,
}

var unitDays = map[string]int{
	"d": 1, "day": 1, "days": 1,
	"w": 7, "wk": 7, "wks": 7, "week": 7, "weeks": 7,
	"m": 30, "mo": 30, "mth": 30, "mths": 30, "month": 30, "months": 30,
	"q": 91, "qtr": 91, "qtrs": 91, "quarter": 91, "quarters": 91,
	"y": 365, "yr": 365, "yrs": 365, "year": 365, "years": 365,
}

var countedDuration = regexp.MustCompile(`^(\d+)\s*([a-z]+)$`)

// ParseDuration implements DurationParser.
func (Durations) ParseDuration(input string) (time.Duration, error) {
	lower := strings.ToLower(strings.TrimSpace(input))
	if d, ok := namedDurations[lower]; ok {
		return d, nil
	}

	m := countedDuration.FindStringSubmatch(lower)
	if m == nil {
		return 0, fmt.Errorf("unrecognized duration %q", input)
	}
	days, ok := unitDays[m[2]]
	if !ok {
		return 0, fmt.Errorf("unrecognized duration unit %q", m[2])
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, fmt.Errorf("parsing duration count %q: %w", m[1], err)
	}
	if n == 0 {
		return 0, fmt.Errorf("duration %q must be positive", input)
	}
	return time.Duration(n*days) * day, nil
}

// ParseDuration parses input with the default Durations parser.
func ParseDuration(input string) (time.Duration, error) {
	return Durations{}.ParseDuration(input)
}
