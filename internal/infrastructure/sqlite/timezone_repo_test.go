package sqlite

import (
	"context"
	"testing"
)

func TestTimezoneRepo_GetByStoreID_Missing(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	repo := NewTimezoneRepo(db)

	tz, err := repo.GetByStoreID(context.Background(), "missing")
	if err != nil {
		t.Fatalf("GetByStoreID() error = %v", err)
	}
	if tz != "" {
		t.Errorf("expected empty zone for unconfigured store, got %q", tz)
	}
}

func TestTimezoneRepo_Upsert(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	repo := NewTimezoneRepo(db)
	ctx := context.Background()

	if err := repo.Upsert(ctx, "1", "Asia/Kolkata"); err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}

	tz, err := repo.GetByStoreID(ctx, "1")
	if err != nil {
		t.Fatalf("GetByStoreID() error = %v", err)
	}
	if tz != "Asia/Kolkata" {
		t.Errorf("timezone = %q, want %q", tz, "Asia/Kolkata")
	}

	// Second upsert replaces, not duplicates
	if err := repo.Upsert(ctx, "1", "America/Denver"); err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}

	tz, err = repo.GetByStoreID(ctx, "1")
	if err != nil {
		t.Fatalf("GetByStoreID() error = %v", err)
	}
	if tz != "America/Denver" {
		t.Errorf("timezone after update = %q, want %q", tz, "America/Denver")
	}
}
