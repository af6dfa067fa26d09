package domain

import (
	"fmt"
	"time"
)

// DateLayout is the only accepted calendar date form. It is fixed width and
// zero padded, so canonical date strings compare correctly as plain strings.
const DateLayout = "2006-01-02"

// ParseDate parses s as YYYY-MM-DD in UTC.
// Returns ErrDateParse for anything else, including non-canonical forms
// such as "2026-1-4".
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil || t.Format(DateLayout) != s {
		return time.Time{}, fmt.Errorf("%w: %q is not a YYYY-MM-DD date", ErrDateParse, s)
	}
	return t, nil
}

// FormatDate renders t as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
