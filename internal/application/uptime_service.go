package application

import (
	"context"
	"fmt"
	"time"

	"store-uptime/internal/domain"
)

// DefaultTimezone is used for stores with no configured timezone.
const DefaultTimezone = "America/Chicago"

// UptimeService reconstructs per-store availability from raw poll
// observations, business hours and timezone configuration.
type UptimeService struct {
	statusRepo domain.StoreStatusRepository
	tzRepo     domain.TimezoneRepository
	hoursRepo  domain.BusinessHoursRepository
	defaultTZ  string
}

// NewUptimeService creates a new UptimeService
func NewUptimeService(
	statusRepo domain.StoreStatusRepository,
	tzRepo domain.TimezoneRepository,
	hoursRepo domain.BusinessHoursRepository,
) *UptimeService {
	return &UptimeService{
		statusRepo: statusRepo,
		tzRepo:     tzRepo,
		hoursRepo:  hoursRepo,
		defaultTZ:  DefaultTimezone,
	}
}

// SetDefaultTimezone overrides the fallback zone for unconfigured stores.
func (s *UptimeService) SetDefaultTimezone(tz string) {
	if tz != "" {
		s.defaultTZ = tz
	}
}

// StoreIDs returns every distinct store known to the poll source.
func (s *UptimeService) StoreIDs(ctx context.Context) ([]string, error) {
	ids, err := s.statusRepo.GetStoreIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get store ids: %w", err)
	}
	return ids, nil
}

// ResolveTimezone returns the store's configured IANA zone, falling back to
// the default when none is configured. Absence is never an error; an invalid
// configured zone name is.
func (s *UptimeService) ResolveTimezone(ctx context.Context, storeID string) (*time.Location, error) {
	tz, err := s.tzRepo.GetByStoreID(ctx, storeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get timezone: %w", err)
	}
	if tz == "" {
		tz = s.defaultTZ
	}

	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %q: %w", tz, err)
	}
	return loc, nil
}

// LoadObservations fetches the store's observations, drops the ones dated
// after now, converts the rest to store-local time and buckets them by local
// weekday. A malformed timestamp fails the call.
func (s *UptimeService) LoadObservations(ctx context.Context, storeID string, now time.Time) (domain.WeekObservations, error) {
	var week domain.WeekObservations

	loc, err := s.ResolveTimezone(ctx, storeID)
	if err != nil {
		return week, err
	}

	polls, err := s.statusRepo.GetByStoreID(ctx, storeID)
	if err != nil {
		return week, fmt.Errorf("failed to get observations: %w", err)
	}

	for _, poll := range polls {
		ts, err := poll.ParseTimestamp()
		if err != nil {
			return week, err
		}
		if ts.After(now) {
			continue
		}

		obs := domain.Localize(ts, poll.Status, loc)
		week[obs.Day] = append(week[obs.Day], obs)
	}
	return week, nil
}

// BusinessWeek returns the store's weekly schedule with every unconfigured
// day replaced by a full-day interval.
func (s *UptimeService) BusinessWeek(ctx context.Context, storeID string) (domain.WeekSchedule, error) {
	records, err := s.hoursRepo.GetByStoreID(ctx, storeID)
	if err != nil {
		return domain.WeekSchedule{}, fmt.Errorf("failed to get business hours: %w", err)
	}
	return domain.NewWeekSchedule(records), nil
}

// WeekSeries runs the per-day pipeline for one store: clip observations to
// business hours, sort by time of day, downsample into hourly buckets.
func (s *UptimeService) WeekSeries(ctx context.Context, storeID string, now time.Time) (domain.WeekSeries, error) {
	var series domain.WeekSeries

	week, err := s.LoadObservations(ctx, storeID, now)
	if err != nil {
		return series, err
	}

	schedule, err := s.BusinessWeek(ctx, storeID)
	if err != nil {
		return series, err
	}

	for day := range week {
		kept := domain.FilterByHours(week[day], schedule[day])
		domain.SortByTime(kept)
		series[day] = domain.Downsample(kept)
	}
	return series, nil
}

// StoreMetrics computes the full report row for one store at the given run
// time. A store with no qualifying observations keeps the zero-uptime,
// full-downtime defaults.
func (s *UptimeService) StoreMetrics(ctx context.Context, storeID string, now time.Time) (domain.ReportRow, error) {
	row := domain.NewReportRow(storeID)

	series, err := s.WeekSeries(ctx, storeID, now)
	if err != nil {
		return row, err
	}

	hoursToday, minutesLastHour := domain.UptimeToday(series, now)
	hoursThisWeek := domain.UptimeThisWeek(series)

	row.SetUptime(minutesLastHour, hoursToday, hoursThisWeek)
	return row, nil
}
