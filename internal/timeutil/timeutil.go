package timeutil

import (
	"errors"
	"fmt"
	"time"
)

// DateLayout defines the canonical date format (YYYY-MM-DD) used between
// packages.
const DateLayout = "2006-01-02"

// ArgDateLayout is the MM-DD-YYYY form accepted on the command line.
const ArgDateLayout = "01-02-2006"

// ErrBadDate reports a malformed --date argument.
var ErrBadDate = errors.New("invalid date; use dashes and zero-pad like 01-15-2019")

// ParseDate parses a canonical YYYY-MM-DD date string.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// FormatDate formats a time as YYYY-MM-DD in its current location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseArgDate parses the MM-DD-YYYY command-line form.
func ParseArgDate(value string) (time.Time, error) {
	t, err := time.Parse(ArgDateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrBadDate, value)
	}
	return t, nil
}

// ResolveTarget turns an explicit MM-DD-YYYY date or an offset in days from
// today into a canonical date string. An empty date with a zero offset means
// today. The explicit date wins only when offset is unset; callers enforce
// mutual exclusion before resolving.
func ResolveTarget(date string, offsetDays int, now func() time.Time) (string, error) {
	if now == nil {
		now = time.Now
	}
	if date != "" {
		t, err := ParseArgDate(date)
		if err != nil {
			return "", err
		}
		return FormatDate(t), nil
	}
	return FormatDate(now().AddDate(0, 0, offsetDays)), nil
}
