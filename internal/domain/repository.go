package domain

import "context"

// StoreStatusRepository defines read access to the poll source.
type StoreStatusRepository interface {
	// GetStoreIDs retrieves every distinct store identifier seen by the
	// poll source.
	GetStoreIDs(ctx context.Context) ([]string, error)

	// GetByStoreID retrieves all observations for a store, ordered
	// ascending by timestamp_utc.
	GetByStoreID(ctx context.Context, storeID string) ([]PollObservation, error)

	// Insert persists a raw observation (seeding and imports).
	Insert(ctx context.Context, obs PollObservation) error
}

// TimezoneRepository defines read access to the per-store timezone source.
type TimezoneRepository interface {
	// GetByStoreID retrieves the configured IANA zone name for a store,
	// or "" when none is configured.
	GetByStoreID(ctx context.Context, storeID string) (string, error)

	// Upsert sets the timezone for a store.
	Upsert(ctx context.Context, storeID, timezone string) error
}

// BusinessHoursRepository defines read access to the business-hours source.
type BusinessHoursRepository interface {
	// GetByStoreID retrieves the configured intervals for a store in
	// configured order. Missing configuration yields an empty slice.
	GetByStoreID(ctx context.Context, storeID string) ([]HoursRecord, error)

	// Insert persists a configured interval for a store.
	Insert(ctx context.Context, storeID string, rec HoursRecord) error
}

// ReportRepository defines persistence for generated reports and the
// system-wide generation sentinel.
type ReportRepository interface {
	// Save persists a finished report with all its rows.
	Save(ctx context.Context, report *Report) error

	// GetByID retrieves a completed report, or nil when unknown.
	GetByID(ctx context.Context, id string) (*Report, error)

	// TryStartGeneration atomically moves the sentinel from complete to
	// running with the given report id. When a run is already active it
	// returns started=false and the identifier of that run.
	TryStartGeneration(ctx context.Context, reportID string) (started bool, runningID string, err error)

	// FinishGeneration returns the sentinel to the complete state.
	FinishGeneration(ctx context.Context) error

	// GetGenerationState retrieves the current sentinel state.
	GetGenerationState(ctx context.Context) (GenerationState, error)
}
