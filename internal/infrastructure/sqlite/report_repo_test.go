package sqlite

import (
	"context"
	"testing"
	"time"

	"store-uptime/internal/domain"
)

func TestReportRepo_Save_GetByID(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	repo := NewReportRepo(db)
	ctx := context.Background()

	report := domain.NewReport("report-1")
	report.GeneratedAt = time.Date(2023, 1, 25, 12, 0, 0, 0, time.UTC)

	row := domain.NewReportRow("store-1")
	row.SetUptime(30, 12, 84)
	report.AddRow(row)
	report.AddRow(domain.NewReportRow("store-2"))

	if err := repo.Save(ctx, report); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := repo.GetByID(ctx, "report-1")
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got == nil {
		t.Fatal("expected report, got nil")
	}
	if got.Status != domain.ReportStatusComplete {
		t.Errorf("Status = %q, want %q", got.Status, domain.ReportStatusComplete)
	}
	if len(got.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(got.Rows))
	}
	if got.Rows[0] != row {
		t.Errorf("row 0 = %+v, want %+v", got.Rows[0], row)
	}
	if got.Rows[1].DowntimeLastWeek != 168 {
		t.Errorf("row 1 DowntimeLastWeek = %v, want 168", got.Rows[1].DowntimeLastWeek)
	}
}

func TestReportRepo_GetByID_Unknown(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	repo := NewReportRepo(db)

	got, err := repo.GetByID(context.Background(), "missing")
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got != nil {
		t.Errorf("expected nil for unknown report, got %+v", got)
	}
}

func TestReportRepo_TryStartGeneration(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	repo := NewReportRepo(db)
	ctx := context.Background()

	started, runningID, err := repo.TryStartGeneration(ctx, "first")
	if err != nil {
		t.Fatalf("TryStartGeneration() error = %v", err)
	}
	if !started || runningID != "first" {
		t.Fatalf("expected first claim to succeed, got started=%v id=%q", started, runningID)
	}

	// Second claim while running must fail and name the active run
	started, runningID, err = repo.TryStartGeneration(ctx, "second")
	if err != nil {
		t.Fatalf("TryStartGeneration() error = %v", err)
	}
	if started {
		t.Error("expected second claim to be rejected while running")
	}
	if runningID != "first" {
		t.Errorf("rejected claim named %q, want %q", runningID, "first")
	}

	state, err := repo.GetGenerationState(ctx)
	if err != nil {
		t.Fatalf("GetGenerationState() error = %v", err)
	}
	if !state.IsRunning() || state.ReportID != "first" {
		t.Errorf("state = %+v, want running with id first", state)
	}
}

func TestReportRepo_FinishGeneration(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	repo := NewReportRepo(db)
	ctx := context.Background()

	if _, _, err := repo.TryStartGeneration(ctx, "r1"); err != nil {
		t.Fatalf("TryStartGeneration() error = %v", err)
	}
	if err := repo.FinishGeneration(ctx); err != nil {
		t.Fatalf("FinishGeneration() error = %v", err)
	}

	state, err := repo.GetGenerationState(ctx)
	if err != nil {
		t.Fatalf("GetGenerationState() error = %v", err)
	}
	if state.IsRunning() {
		t.Error("expected complete state after finish")
	}

	// A new claim succeeds after the previous run finished
	started, _, err := repo.TryStartGeneration(ctx, "r2")
	if err != nil {
		t.Fatalf("TryStartGeneration() error = %v", err)
	}
	if !started {
		t.Error("expected claim to succeed after finish")
	}
}
