package domain

import (
	"strings"
	"time"
)

// Interval is a half-open booking window [Start, End). Both ends are kept in
// UTC at millisecond precision, which is the precision the store persists.
type Interval struct {
	Start time.Time
	End   time.Time
}

// NewInterval normalizes start and end and rejects empty or inverted windows.
func NewInterval(start, end time.Time) (Interval, error) {
	iv := Interval{Start: normalize(start), End: normalize(end)}
	if !iv.End.After(iv.Start) {
		return Interval{}, InvalidInterval("end_time", "end time must be after start time")
	}
	return iv, nil
}

// IntervalFromMillis rebuilds a stored window without re-validating it.
func IntervalFromMillis(startMS, endMS int64) Interval {
	return Interval{Start: time.UnixMilli(startMS).UTC(), End: time.UnixMilli(endMS).UTC()}
}

// Overlaps reports whether the two windows share any instant.
// Back-to-back windows (one ends exactly when the other starts) do not overlap.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.Start.Before(other.End) && other.Start.Before(iv.End)
}

func (iv Interval) StartMillis() int64 { return iv.Start.UnixMilli() }

func (iv Interval) EndMillis() int64 { return iv.End.UnixMilli() }

func (iv Interval) Duration() time.Duration { return iv.End.Sub(iv.Start) }

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02T15:04Z07:00",
	"2006-01-02 15:04Z07:00",
}

// ParseTimestamp parses an ISO-8601 timestamp that carries an explicit offset
// or the UTC designator. "Z", "z" and "+00:00" all resolve to the same instant.
func ParseTimestamp(field, raw string) (time.Time, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, InvalidInterval(field, "timestamp is required")
	}
	if strings.HasSuffix(s, "z") {
		s = s[:len(s)-1] + "Z"
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return normalize(t), nil
		}
	}
	return time.Time{}, InvalidInterval(field, "invalid datetime format, expected ISO-8601 with offset")
}

// ParseInterval parses both ends and validates the resulting window.
func ParseInterval(startRaw, endRaw string) (Interval, error) {
	start, err := ParseTimestamp("start_time", startRaw)
	if err != nil {
		return Interval{}, err
	}
	end, err := ParseTimestamp("end_time", endRaw)
	if err != nil {
		return Interval{}, err
	}
	return NewInterval(start, end)
}

// FormatTimestamp renders t as RFC 3339 in UTC.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func normalize(t time.Time) time.Time {
	return t.UTC().Truncate(time.Millisecond)
}
