package timeutil

import (
	"testing"
	"time"
)

func TestParseDuration_Units(t *testing.T) {
	cases := map[string]time.Duration{
		"90s": 90 * time.Second,
		"2h":  2 * time.Hour,
		"3d":  72 * time.Hour,
		"1w":  7 * 24 * time.Hour,
	}
	for in, want := range cases {
		got, err := ParseDuration(in)
		if err != nil {
			t.Fatalf("ParseDuration(%q): %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseDuration(%q) = %v, want %v", in, got, want)
		}
	}
	for _, bad := range []string{"", "x", "3y", "ad"} {
		if _, err := ParseDuration(bad); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}

func TestParseTime_AbsoluteAndRelative(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	got, err := ParseTime("2024-01-02", now)
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected date: %v", got)
	}

	got, err = ParseTime("2024-01-02T03:04:05+02:00", now)
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(time.Date(2024, 1, 2, 1, 4, 5, 0, time.UTC)) {
		t.Fatalf("unexpected rfc3339 time: %v", got)
	}

	got, err = ParseTime("-30d", now)
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(now.Add(-30 * 24 * time.Hour)) {
		t.Fatalf("unexpected relative time: %v", got)
	}

	got, err = ParseTime("now", now)
	if err != nil || !got.Equal(now) {
		t.Fatalf("expected now, got %v (%v)", got, err)
	}

	if _, err := ParseTime("yesterday", now); err == nil {
		t.Fatal("expected error for unsupported expression")
	}
}
