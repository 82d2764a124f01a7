package domain

import (
	"errors"
	"time"
)

// Window lengths for the three report horizons.
const (
	HourWindowMinutes = 60.0
	DayWindowHours    = 24.0
	WeekWindowHours   = 168.0
)

var ErrReportNotFound = errors.New("invalid report id")

// ReportRow holds the uptime and downtime figures for a single store.
// Downtime is always the window length minus uptime; it is deliberately not
// clamped, so over-counted uptime shows up as negative downtime instead of
// being hidden.
type ReportRow struct {
	StoreID          string  `json:"store_id"`
	UptimeLastHour   float64 `json:"uptime_last_hour"`
	DowntimeLastHour float64 `json:"downtime_last_hour"`
	UptimeLastDay    float64 `json:"uptime_last_day"`
	DowntimeLastDay  float64 `json:"downtime_last_day"`
	UptimeLastWeek   float64 `json:"uptime_last_week"`
	DowntimeLastWeek float64 `json:"downtime_last_week"`
}

// NewReportRow creates a row with zero uptime and full downtime, the figures
// a store with no qualifying observations reports.
func NewReportRow(storeID string) ReportRow {
	return ReportRow{
		StoreID:          storeID,
		UptimeLastHour:   0,
		DowntimeLastHour: HourWindowMinutes,
		UptimeLastDay:    0,
		DowntimeLastDay:  DayWindowHours,
		UptimeLastWeek:   0,
		DowntimeLastWeek: WeekWindowHours,
	}
}

// SetUptime records the computed uptime figures and derives downtime as the
// window complement.
func (r *ReportRow) SetUptime(minutesLastHour, hoursToday, hoursThisWeek float64) {
	r.UptimeLastHour = minutesLastHour
	r.UptimeLastDay = hoursToday
	r.UptimeLastWeek = hoursThisWeek
	r.DowntimeLastHour = HourWindowMinutes - minutesLastHour
	r.DowntimeLastDay = DayWindowHours - hoursToday
	r.DowntimeLastWeek = WeekWindowHours - hoursThisWeek
}

// ReportStatus is the persistence state of a generated report.
type ReportStatus string

const ReportStatusComplete ReportStatus = "complete"

// Report is an immutable, append-only collection of per-store rows keyed by
// a generated identifier.
type Report struct {
	ID          string
	Rows        []ReportRow
	Status      ReportStatus
	GeneratedAt time.Time
}

// NewReport creates an empty report for the given identifier.
func NewReport(id string) *Report {
	return &Report{
		ID:     id,
		Rows:   make([]ReportRow, 0),
		Status: ReportStatusComplete,
	}
}

// AddRow appends a store row, preserving generation order.
func (r *Report) AddRow(row ReportRow) {
	r.Rows = append(r.Rows, row)
}

// JobStatus is the state of the system-wide generation sentinel.
type JobStatus string

const (
	JobRunning  JobStatus = "running"
	JobComplete JobStatus = "complete"
)

// GenerationState is the singleton record tracking whether a report run is
// in progress and which identifier it was assigned.
type GenerationState struct {
	Status   JobStatus
	ReportID string
}

// IsRunning reports whether a generation is currently in flight.
func (g GenerationState) IsRunning() bool {
	return g.Status == JobRunning
}
