package domain

import (
	"fmt"
	"time"
)

// StoreStatus is the raw status value supplied by the poll source.
type StoreStatus string

const (
	StatusActive   StoreStatus = "active"
	StatusInactive StoreStatus = "inactive"
)

// Signal converts the status to a binary up signal. Anything other than
// "active" counts as down.
func (s StoreStatus) Signal() float64 {
	if s == StatusActive {
		return 1
	}
	return 0
}

// PollTimestampLayout is the wire format of poll timestamps, e.g.
// "2023-01-24 09:06:42.605777 UTC".
const PollTimestampLayout = "2006-01-02 15:04:05.999999 UTC"

// PollObservation is a raw status record as stored by the poll source.
// Timestamps stay strings until the pipeline parses them; a malformed
// timestamp aborts the whole run.
type PollObservation struct {
	StoreID      string
	TimestampUTC string
	Status       StoreStatus
}

// ParseTimestamp parses the UTC timestamp of the observation.
func (o PollObservation) ParseTimestamp() (time.Time, error) {
	t, err := time.Parse(PollTimestampLayout, o.TimestampUTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid poll timestamp %q: %w", o.TimestampUTC, err)
	}
	return t, nil
}

// LocalizedObservation is an observation converted to the store's timezone:
// local weekday, local time of day and a binary up signal.
type LocalizedObservation struct {
	Day  Weekday
	Time TimeOfDay
	Up   float64
}

// Localize converts a UTC instant and status into the store-local weekday
// and time of day. The conversion goes through the IANA zone so DST
// transitions shift the wall clock, not just the offset.
func Localize(utc time.Time, status StoreStatus, loc *time.Location) LocalizedObservation {
	local := utc.UTC().In(loc)
	return LocalizedObservation{
		Day:  WeekdayOf(local),
		Time: NewTimeOfDay(local.Hour(), local.Minute(), local.Second()),
		Up:   status.Signal(),
	}
}

// WeekObservations buckets localized observations by local weekday.
type WeekObservations [DaysInWeek][]LocalizedObservation
