package domain

import (
	"sort"
	"time"
)

// Fraction is an optional availability value in [0,1]. A bucket with no
// observations is distinct from a bucket averaging to zero; the no-data case
// only collapses to zero at aggregation time via OrZero.
type Fraction struct {
	Valid bool
	Value float64
}

// NewFraction wraps a present value.
func NewFraction(v float64) Fraction {
	return Fraction{Valid: true, Value: v}
}

// NoData is the fraction of a bucket containing no observations.
func NoData() Fraction {
	return Fraction{}
}

// OrZero returns the value, treating no-data as 0.
func (f Fraction) OrZero() float64 {
	if !f.Valid {
		return 0
	}
	return f.Value
}

// HourBucket is one 60-minute downsample window, aligned to a local clock
// hour. Buckets from different calendar dates that share a weekday and hour
// merge into the same bucket.
type HourBucket struct {
	Hour int
	Mean Fraction
}

// DaySeries is the downsampled hourly series for one weekday.
type DaySeries []HourBucket

// WeekSeries holds one downsampled series per weekday.
type WeekSeries [DaysInWeek]DaySeries

// FilterByHours keeps the observations whose time of day falls inside at
// least one interval, bounds inclusive. An observation matching several
// intervals is kept once.
func FilterByHours(obs []LocalizedObservation, intervals []Interval) []LocalizedObservation {
	var kept []LocalizedObservation
	for _, o := range obs {
		for _, iv := range intervals {
			if iv.Contains(o.Time) {
				kept = append(kept, o)
				break
			}
		}
	}
	return kept
}

// SortByTime orders observations ascending by time of day.
func SortByTime(obs []LocalizedObservation) {
	sort.Slice(obs, func(i, j int) bool {
		return obs[i].Time < obs[j].Time
	})
}

// Downsample collapses a time-ordered series into hourly buckets spanning
// the full range from the first to the last observation's hour. Hours inside
// the range with no observations yield no-data buckets, never zero. Empty
// input yields an empty series.
func Downsample(obs []LocalizedObservation) DaySeries {
	if len(obs) == 0 {
		return nil
	}

	first := obs[0].Time.Hour()
	last := obs[len(obs)-1].Time.Hour()

	series := make(DaySeries, 0, last-first+1)
	i := 0
	for hour := first; hour <= last; hour++ {
		sum := 0.0
		count := 0
		for i < len(obs) && obs[i].Time.Hour() == hour {
			sum += obs[i].Up
			count++
			i++
		}

		mean := NoData()
		if count > 0 {
			mean = NewFraction(sum / float64(count))
		}
		series = append(series, HourBucket{Hour: hour, Mean: mean})
	}
	return series
}

// UptimeToday derives the day-level metrics from the series. The
// representative day is the weekday preceding now's weekday, and the
// last-hour bucket is the one matching the clock hour of now minus one hour;
// both follow the upstream reporting convention.
func UptimeToday(series WeekSeries, now time.Time) (hoursToday, minutesLastHour float64) {
	day := WeekdayOf(now).Prev()
	lastHour := now.Add(-time.Hour).Hour()

	for _, b := range series[day] {
		hoursToday += b.Mean.OrZero()
		if b.Hour == lastHour {
			minutesLastHour = b.Mean.OrZero() * 60
		}
	}
	return hoursToday, minutesLastHour
}

// UptimeThisWeek sums bucket fractions across all 7 weekdays, counting
// no-data buckets as zero. The result is in hours.
func UptimeThisWeek(series WeekSeries) float64 {
	total := 0.0
	for day := range series {
		for _, b := range series[day] {
			total += b.Mean.OrZero()
		}
	}
	return total
}
