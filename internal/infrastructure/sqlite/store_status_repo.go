package sqlite

import (
	"context"
	"fmt"

	"store-uptime/internal/domain"
)

// StoreStatusRepo implements domain.StoreStatusRepository
type StoreStatusRepo struct {
	db *DB
}

// NewStoreStatusRepo creates a new StoreStatusRepo
func NewStoreStatusRepo(db *DB) *StoreStatusRepo {
	return &StoreStatusRepo{db: db}
}

// GetStoreIDs retrieves every distinct store identifier seen by the poll source
func (r *StoreStatusRepo) GetStoreIDs(ctx context.Context) ([]string, error) {
	query := `
		SELECT DISTINCT store_id
		FROM store_status
		ORDER BY store_id ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query store ids: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan store id: %w", err)
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}

// GetByStoreID retrieves all observations for a store, ordered ascending by timestamp
func (r *StoreStatusRepo) GetByStoreID(ctx context.Context, storeID string) ([]domain.PollObservation, error) {
	query := `
		SELECT store_id, timestamp_utc, status
		FROM store_status
		WHERE store_id = ?
		ORDER BY timestamp_utc ASC
	`

	rows, err := r.db.QueryContext(ctx, query, storeID)
	if err != nil {
		return nil, fmt.Errorf("failed to query observations: %w", err)
	}
	defer rows.Close()

	var observations []domain.PollObservation
	for rows.Next() {
		var obs domain.PollObservation
		var statusStr string

		if err := rows.Scan(&obs.StoreID, &obs.TimestampUTC, &statusStr); err != nil {
			return nil, fmt.Errorf("failed to scan observation: %w", err)
		}
		obs.Status = domain.StoreStatus(statusStr)
		observations = append(observations, obs)
	}

	return observations, rows.Err()
}

// Insert persists a raw observation
func (r *StoreStatusRepo) Insert(ctx context.Context, obs domain.PollObservation) error {
	query := `
		INSERT INTO store_status (store_id, timestamp_utc, status)
		VALUES (?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query, obs.StoreID, obs.TimestampUTC, string(obs.Status))
	if err != nil {
		return fmt.Errorf("failed to insert observation: %w", err)
	}
	return nil
}
