package domain

import (
	"errors"
	"testing"
	"time"
)

func at(hh, mm int) time.Time {
	return time.Date(2030, 1, 1, hh, mm, 0, 0, time.UTC)
}

func mustInterval(t *testing.T, start, end time.Time) Interval {
	t.Helper()
	iv, err := NewInterval(start, end)
	if err != nil {
		t.Fatalf("NewInterval(%v, %v): %v", start, end, err)
	}
	return iv
}

func TestIntervalOverlaps(t *testing.T) {
	base := mustInterval(t, at(10, 0), at(11, 0))

	cases := []struct {
		name  string
		other Interval
		want  bool
	}{
		{"identical", mustInterval(t, at(10, 0), at(11, 0)), true},
		{"partial tail", mustInterval(t, at(10, 30), at(11, 30)), true},
		{"partial head", mustInterval(t, at(9, 30), at(10, 30)), true},
		{"contained", mustInterval(t, at(10, 15), at(10, 45)), true},
		{"containing", mustInterval(t, at(9, 0), at(12, 0)), true},
		{"adjacent after", mustInterval(t, at(11, 0), at(12, 0)), false},
		{"adjacent before", mustInterval(t, at(9, 0), at(10, 0)), false},
		{"disjoint", mustInterval(t, at(13, 0), at(14, 0)), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := base.Overlaps(tc.other); got != tc.want {
				t.Fatalf("base.Overlaps = %v, want %v", got, tc.want)
			}
			if got := tc.other.Overlaps(base); got != tc.want {
				t.Fatalf("other.Overlaps (symmetry) = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestNewIntervalRejectsEmptyAndInverted(t *testing.T) {
	for _, tc := range []struct {
		name       string
		start, end time.Time
	}{
		{"zero length", at(10, 0), at(10, 0)},
		{"inverted", at(11, 0), at(10, 0)},
		{"sub-millisecond", at(10, 0), at(10, 0).Add(500 * time.Microsecond)},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewInterval(tc.start, tc.end)
			if !errors.Is(err, ErrInvalidInterval) {
				t.Fatalf("expected ErrInvalidInterval, got %v", err)
			}
			if !IsValidation(err) {
				t.Fatalf("expected validation error, got %T", err)
			}
		})
	}
}

func TestParseTimestampNormalizesUTCForms(t *testing.T) {
	want := at(10, 0)
	for _, raw := range []string{
		"2030-01-01T10:00:00Z",
		"2030-01-01T10:00:00z",
		"2030-01-01T10:00:00+00:00",
		"2030-01-01T12:00:00+02:00",
		"2030-01-01 10:00:00Z",
		"2030-01-01T10:00Z",
		"  2030-01-01T10:00:00.000Z  ",
	} {
		got, err := ParseTimestamp("start_time", raw)
		if err != nil {
			t.Fatalf("ParseTimestamp(%q): %v", raw, err)
		}
		if !got.Equal(want) || got.Location() != time.UTC {
			t.Fatalf("ParseTimestamp(%q) = %v, want %v in UTC", raw, got, want)
		}
	}
}

func TestParseTimestampRejectsMalformed(t *testing.T) {
	for _, raw := range []string{"", "tomorrow", "2030-01-01T10:00:00", "2030-13-01T10:00:00Z"} {
		_, err := ParseTimestamp("start_time", raw)
		if !errors.Is(err, ErrInvalidInterval) {
			t.Fatalf("ParseTimestamp(%q): expected ErrInvalidInterval, got %v", raw, err)
		}
	}
}

func TestParseInterval(t *testing.T) {
	iv, err := ParseInterval("2030-01-01T10:00:00Z", "2030-01-01T11:00:00+00:00")
	if err != nil {
		t.Fatalf("ParseInterval: %v", err)
	}
	if iv.Duration() != time.Hour {
		t.Fatalf("expected 1h window, got %v", iv.Duration())
	}

	if _, err := ParseInterval("2030-01-01T11:00:00Z", "2030-01-01T11:00:00+00:00"); !errors.Is(err, ErrInvalidInterval) {
		t.Fatalf("expected ErrInvalidInterval for equal ends, got %v", err)
	}
}

func TestIntervalMillisRoundTrip(t *testing.T) {
	iv := mustInterval(t, at(10, 0).Add(123*time.Millisecond+456*time.Microsecond), at(11, 0))
	back := IntervalFromMillis(iv.StartMillis(), iv.EndMillis())
	if !back.Start.Equal(iv.Start) || !back.End.Equal(iv.End) {
		t.Fatalf("round trip mismatch: %v vs %v", back, iv)
	}
	if iv.Start.Nanosecond()%int(time.Millisecond) != 0 {
		t.Fatalf("expected start truncated to milliseconds, got %v", iv.Start)
	}
}
