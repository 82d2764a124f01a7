package domain

import (
	"fmt"
	"time"
)

// TimeOfDay is a local clock time expressed as seconds since midnight.
// It carries no date, so comparisons never cross day boundaries.
type TimeOfDay int

const timeOfDayLayout = "15:04:05"

// ParseTimeOfDay parses an "HH:MM:SS" local clock time.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse(timeOfDayLayout, s)
	if err != nil {
		return 0, fmt.Errorf("invalid time of day %q: %w", s, err)
	}
	return NewTimeOfDay(t.Hour(), t.Minute(), t.Second()), nil
}

// NewTimeOfDay builds a TimeOfDay from clock components.
func NewTimeOfDay(hour, min, sec int) TimeOfDay {
	return TimeOfDay(hour*3600 + min*60 + sec)
}

// Hour returns the clock hour (0..23).
func (t TimeOfDay) Hour() int {
	return int(t) / 3600
}

// String formats the time as "HH:MM:SS".
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", int(t)/3600, int(t)/60%60, int(t)%60)
}

// Interval is a local open period within a single day. Both bounds are
// inclusive: an observation exactly at Start or End falls inside.
type Interval struct {
	Start TimeOfDay
	End   TimeOfDay
}

// FullDay is the interval substituted for any weekday with no configured
// business hours.
func FullDay() Interval {
	return Interval{Start: NewTimeOfDay(0, 0, 0), End: NewTimeOfDay(23, 59, 59)}
}

// Contains reports whether t falls inside the interval, bounds included.
func (iv Interval) Contains(t TimeOfDay) bool {
	return iv.Start <= t && t <= iv.End
}

// HoursRecord is a single configured business-hours row for a store.
type HoursRecord struct {
	Day   Weekday
	Start TimeOfDay
	End   TimeOfDay
}

// WeekSchedule maps each weekday to its open intervals. Every day is always
// present; an empty slice means "not configured yet" until Normalize runs.
type WeekSchedule [DaysInWeek][]Interval

// NewWeekSchedule groups configured records by weekday, preserving
// configured order, and fills unconfigured days with the full-day interval.
func NewWeekSchedule(records []HoursRecord) WeekSchedule {
	var ws WeekSchedule
	for _, rec := range records {
		if !rec.Day.IsValid() {
			continue
		}
		ws[rec.Day] = append(ws[rec.Day], Interval{Start: rec.Start, End: rec.End})
	}
	ws.Normalize()
	return ws
}

// Normalize replaces every empty day with a single full-day interval so the
// schedule is total over all 7 weekdays.
func (ws *WeekSchedule) Normalize() {
	for day := range ws {
		if len(ws[day]) == 0 {
			ws[day] = []Interval{FullDay()}
		}
	}
}
