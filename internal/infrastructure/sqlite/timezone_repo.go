package sqlite

import (
	"context"
	"database/sql"
	"fmt"
)

// TimezoneRepo implements domain.TimezoneRepository
type TimezoneRepo struct {
	db *DB
}

// NewTimezoneRepo creates a new TimezoneRepo
func NewTimezoneRepo(db *DB) *TimezoneRepo {
	return &TimezoneRepo{db: db}
}

// GetByStoreID retrieves the configured zone name for a store, "" when absent
func (r *TimezoneRepo) GetByStoreID(ctx context.Context, storeID string) (string, error) {
	query := `
		SELECT timezone_str
		FROM store_timezones
		WHERE store_id = ?
	`

	var tz string
	err := r.db.QueryRowContext(ctx, query, storeID).Scan(&tz)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get timezone: %w", err)
	}
	return tz, nil
}

// Upsert sets the timezone for a store
func (r *TimezoneRepo) Upsert(ctx context.Context, storeID, timezone string) error {
	query := `
		INSERT INTO store_timezones (store_id, timezone_str)
		VALUES (?, ?)
		ON CONFLICT(store_id) DO UPDATE SET timezone_str = excluded.timezone_str
	`

	_, err := r.db.ExecContext(ctx, query, storeID, timezone)
	if err != nil {
		return fmt.Errorf("failed to upsert timezone: %w", err)
	}
	return nil
}
