package types

import (
	"errors"
	"fmt"
)

// MinuteOfDay represents a time of day as minutes from midnight (0..1439).
// It is the canonical time representation in the booking ledger; the HTTP
// layer converts it from/to "HH:MM" strings.
type MinuteOfDay int

// ErrInvalidTimeString is returned when a time string is not in HH:MM format.
var ErrInvalidTimeString = errors.New("invalid time string format")

const minutesPerDay = 24 * 60

// NewMinuteOfDayFromString parses a "HH:MM" string.
func NewMinuteOfDayFromString(s string) (MinuteOfDay, error) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}
	if len(s) != 5 || s[2] != ':' || h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}
	return MinuteOfDay(h*60 + m), nil
}

// String formats the value as "HH:MM".
func (m MinuteOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(m)/60, int(m)%60)
}

// Add returns the value shifted by the given number of minutes.
func (m MinuteOfDay) Add(minutes int) MinuteOfDay {
	return m + MinuteOfDay(minutes)
}

// IsValid reports whether the value falls within a single day.
func (m MinuteOfDay) IsValid() bool {
	return m >= 0 && m < minutesPerDay
}

// Before reports whether m is strictly earlier than other.
func (m MinuteOfDay) Before(other MinuteOfDay) bool {
	return m < other
}

// After reports whether m is strictly later than other.
func (m MinuteOfDay) After(other MinuteOfDay) bool {
	return m > other
}
