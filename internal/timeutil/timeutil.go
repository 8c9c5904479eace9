package timeutil

import (
	"strings"
	"time"
)

// DateLayout defines the canonical date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// CompactDateLayout is the upstream scoreboard's dates param format (YYYYMMDD).
const CompactDateLayout = "20060102"

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// FormatDate formats a time as YYYY-MM-DD in its current location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// CompactDate formats a time as YYYYMMDD for the upstream dates param.
func CompactDate(t time.Time) string {
	return t.Format(CompactDateLayout)
}

// NormalizeCompact accepts YYYYMMDD or YYYY-MM-DD and returns YYYYMMDD.
// Unrecognized input is returned unchanged; the upstream rejects it clearly.
func NormalizeCompact(value string) string {
	s := strings.TrimSpace(value)
	if len(s) == 10 && strings.Count(s, "-") == 2 {
		return strings.ReplaceAll(s, "-", "")
	}
	return s
}
