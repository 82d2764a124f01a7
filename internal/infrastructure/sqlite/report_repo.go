package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"store-uptime/internal/domain"
)

// ReportRepo implements domain.ReportRepository
type ReportRepo struct {
	db *DB
}

// NewReportRepo creates a new ReportRepo
func NewReportRepo(db *DB) *ReportRepo {
	return &ReportRepo{db: db}
}

// Save persists a finished report with all its rows in one transaction
func (r *ReportRepo) Save(ctx context.Context, report *domain.Report) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO reports (report_id, report_status, generated_at) VALUES (?, ?, ?)`,
		report.ID, string(report.Status), report.GeneratedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert report: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO report_rows (
			report_id, store_id,
			uptime_last_hour, downtime_last_hour,
			uptime_last_day, downtime_last_day,
			uptime_last_week, downtime_last_week
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare row insert: %w", err)
	}
	defer stmt.Close()

	for _, row := range report.Rows {
		_, err := stmt.ExecContext(ctx,
			report.ID, row.StoreID,
			row.UptimeLastHour, row.DowntimeLastHour,
			row.UptimeLastDay, row.DowntimeLastDay,
			row.UptimeLastWeek, row.DowntimeLastWeek,
		)
		if err != nil {
			return fmt.Errorf("failed to insert report row: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit report: %w", err)
	}
	return nil
}

// GetByID retrieves a completed report with its rows, or nil when unknown
func (r *ReportRepo) GetByID(ctx context.Context, id string) (*domain.Report, error) {
	query := `
		SELECT report_id, report_status, generated_at
		FROM reports
		WHERE report_id = ?
	`

	var report domain.Report
	var statusStr string

	err := r.db.QueryRowContext(ctx, query, id).Scan(&report.ID, &statusStr, &report.GeneratedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get report: %w", err)
	}
	report.Status = domain.ReportStatus(statusStr)

	rows, err := r.db.QueryContext(ctx, `
		SELECT store_id,
		       uptime_last_hour, downtime_last_hour,
		       uptime_last_day, downtime_last_day,
		       uptime_last_week, downtime_last_week
		FROM report_rows
		WHERE report_id = ?
		ORDER BY id ASC
	`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query report rows: %w", err)
	}
	defer rows.Close()

	report.Rows = make([]domain.ReportRow, 0)
	for rows.Next() {
		var row domain.ReportRow
		if err := rows.Scan(
			&row.StoreID,
			&row.UptimeLastHour, &row.DowntimeLastHour,
			&row.UptimeLastDay, &row.DowntimeLastDay,
			&row.UptimeLastWeek, &row.DowntimeLastWeek,
		); err != nil {
			return nil, fmt.Errorf("failed to scan report row: %w", err)
		}
		report.Rows = append(report.Rows, row)
	}

	return &report, rows.Err()
}

// TryStartGeneration atomically claims the generation sentinel. The
// conditional update only succeeds from the complete state, so concurrent
// triggers cannot both start.
func (r *ReportRepo) TryStartGeneration(ctx context.Context, reportID string) (bool, string, error) {
	result, err := r.db.ExecContext(ctx, `
		UPDATE report_generation
		SET status = 'running', report_id = ?
		WHERE id = 0 AND status = 'complete'
	`, reportID)
	if err != nil {
		return false, "", fmt.Errorf("failed to claim generation sentinel: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, "", fmt.Errorf("failed to read rows affected: %w", err)
	}
	if affected > 0 {
		return true, reportID, nil
	}

	state, err := r.GetGenerationState(ctx)
	if err != nil {
		return false, "", err
	}
	return false, state.ReportID, nil
}

// FinishGeneration returns the sentinel to the complete state
func (r *ReportRepo) FinishGeneration(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE report_generation
		SET status = 'complete'
		WHERE id = 0
	`)
	if err != nil {
		return fmt.Errorf("failed to release generation sentinel: %w", err)
	}
	return nil
}

// GetGenerationState retrieves the current sentinel state
func (r *ReportRepo) GetGenerationState(ctx context.Context) (domain.GenerationState, error) {
	var state domain.GenerationState
	var statusStr string

	err := r.db.QueryRowContext(ctx, `
		SELECT status, report_id
		FROM report_generation
		WHERE id = 0
	`).Scan(&statusStr, &state.ReportID)
	if err != nil {
		return state, fmt.Errorf("failed to get generation state: %w", err)
	}

	state.Status = domain.JobStatus(statusStr)
	return state, nil
}
