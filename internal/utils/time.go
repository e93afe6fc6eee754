package utils

import (
	"time"
)

const layoutDisplay = "2006-01-02 15:04 MST"

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// FormatDisplay renders t for human-facing documents, in UTC.
func FormatDisplay(t time.Time) string {
	return t.UTC().Format(layoutDisplay)
}
