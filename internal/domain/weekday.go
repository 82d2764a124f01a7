package domain

import (
	"errors"
	"fmt"
	"strconv"
	"time"
)

// DaysInWeek is the number of weekday buckets in every per-week mapping.
const DaysInWeek = 7

// Weekday is a day of week with Monday as day 0, matching the
// business-hours source convention.
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var ErrInvalidWeekday = errors.New("invalid weekday: must be 0..6")

// ParseWeekday parses the source representation ("0".."6") into a Weekday.
func ParseWeekday(s string) (Weekday, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 || n >= DaysInWeek {
		return 0, fmt.Errorf("%w: %q", ErrInvalidWeekday, s)
	}
	return Weekday(n), nil
}

// WeekdayOf converts a time.Time weekday (Sunday=0) to Monday=0 numbering.
func WeekdayOf(t time.Time) Weekday {
	return Weekday((int(t.Weekday()) + 6) % DaysInWeek)
}

// Prev returns the previous weekday, wrapping from Monday to Sunday.
func (d Weekday) Prev() Weekday {
	return (d + DaysInWeek - 1) % DaysInWeek
}

// IsValid checks if the weekday is within 0..6.
func (d Weekday) IsValid() bool {
	return d >= 0 && d < DaysInWeek
}

// String returns the weekday name.
func (d Weekday) String() string {
	names := [DaysInWeek]string{
		"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
	}
	if !d.IsValid() {
		return "invalid"
	}
	return names[d]
}
