package sqlite

import (
	"context"
	"fmt"

	"store-uptime/internal/domain"
)

// BusinessHoursRepo implements domain.BusinessHoursRepository
type BusinessHoursRepo struct {
	db *DB
}

// NewBusinessHoursRepo creates a new BusinessHoursRepo
func NewBusinessHoursRepo(db *DB) *BusinessHoursRepo {
	return &BusinessHoursRepo{db: db}
}

// GetByStoreID retrieves the configured intervals for a store in configured
// order. Local times are parsed here; a malformed row fails the call.
func (r *BusinessHoursRepo) GetByStoreID(ctx context.Context, storeID string) ([]domain.HoursRecord, error) {
	query := `
		SELECT day, start_time_local, end_time_local
		FROM business_hours
		WHERE store_id = ?
		ORDER BY id ASC
	`

	rows, err := r.db.QueryContext(ctx, query, storeID)
	if err != nil {
		return nil, fmt.Errorf("failed to query business hours: %w", err)
	}
	defer rows.Close()

	var records []domain.HoursRecord
	for rows.Next() {
		var day int
		var startStr, endStr string

		if err := rows.Scan(&day, &startStr, &endStr); err != nil {
			return nil, fmt.Errorf("failed to scan business hours: %w", err)
		}

		start, err := domain.ParseTimeOfDay(startStr)
		if err != nil {
			return nil, err
		}
		end, err := domain.ParseTimeOfDay(endStr)
		if err != nil {
			return nil, err
		}

		records = append(records, domain.HoursRecord{
			Day:   domain.Weekday(day),
			Start: start,
			End:   end,
		})
	}

	return records, rows.Err()
}

// Insert persists a configured interval for a store
func (r *BusinessHoursRepo) Insert(ctx context.Context, storeID string, rec domain.HoursRecord) error {
	query := `
		INSERT INTO business_hours (store_id, day, start_time_local, end_time_local)
		VALUES (?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query, storeID, int(rec.Day), rec.Start.String(), rec.End.String())
	if err != nil {
		return fmt.Errorf("failed to insert business hours: %w", err)
	}
	return nil
}
