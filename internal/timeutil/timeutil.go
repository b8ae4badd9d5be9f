// Package timeutil parses absolute and relative time expressions used as
// datetime bounds.
package timeutil

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var longUnits = map[byte]time.Duration{
	'd': 24 * time.Hour,
	'w': 7 * 24 * time.Hour,
}

// ParseDuration accepts anything time.ParseDuration does plus whole days
// ("3d") and weeks ("1w").
func ParseDuration(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errors.New("empty duration string")
	}
	if d, err := time.ParseDuration(s); err == nil {
		return d, nil
	}
	unit, ok := longUnits[s[len(s)-1]]
	if !ok || len(s) < 2 {
		return 0, fmt.Errorf("invalid duration: %s", s)
	}
	n, err := strconv.ParseInt(s[:len(s)-1], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid duration number: %s", s[:len(s)-1])
	}
	return time.Duration(n) * unit, nil
}

var absoluteLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseTime accepts RFC3339, "2006-01-02 15:04:05", "2006-01-02" (all UTC
// unless an offset is given), "now", or an offset from now such as "-30d"
// or "+2w".
func ParseTime(s string, now time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, errors.New("empty time string")
	}
	if strings.EqualFold(s, "now") {
		return now, nil
	}
	for _, layout := range absoluteLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}

	sign := s[0]
	if sign != '-' && sign != '+' {
		return time.Time{}, fmt.Errorf("unrecognized time: %s", s)
	}
	d, err := ParseDuration(s[1:])
	if err != nil {
		return time.Time{}, err
	}
	if sign == '-' {
		d = -d
	}
	return now.Add(d), nil
}
