package sqlite

import (
	"database/sql"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// DB wraps sql.DB with application-specific methods
type DB struct {
	*sql.DB
	path string
}

// Migration represents a database migration
type Migration struct {
	Version int
	Name    string
	SQL     string
}

// migrations is the list of all migrations in order
var migrations = []Migration{
	{
		Version: 1,
		Name:    "input_sources",
		SQL: `
CREATE TABLE IF NOT EXISTS store_status (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    store_id TEXT NOT NULL,
    timestamp_utc TEXT NOT NULL,
    status TEXT NOT NULL CHECK(status IN ('active', 'inactive'))
);

CREATE TABLE IF NOT EXISTS store_timezones (
    store_id TEXT PRIMARY KEY,
    timezone_str TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS business_hours (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    store_id TEXT NOT NULL,
    day INTEGER NOT NULL CHECK(day BETWEEN 0 AND 6),
    start_time_local TEXT NOT NULL,
    end_time_local TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_store_status_store_id ON store_status(store_id, timestamp_utc);
CREATE INDEX IF NOT EXISTS idx_business_hours_store_id ON business_hours(store_id);
`,
	},
	{
		Version: 2,
		Name:    "reports",
		SQL: `
CREATE TABLE IF NOT EXISTS reports (
    report_id TEXT PRIMARY KEY,
    report_status TEXT NOT NULL DEFAULT 'complete',
    generated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS report_rows (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    report_id TEXT NOT NULL,
    store_id TEXT NOT NULL,
    uptime_last_hour REAL NOT NULL,
    downtime_last_hour REAL NOT NULL,
    uptime_last_day REAL NOT NULL,
    downtime_last_day REAL NOT NULL,
    uptime_last_week REAL NOT NULL,
    downtime_last_week REAL NOT NULL,
    FOREIGN KEY (report_id) REFERENCES reports(report_id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS report_generation (
    id INTEGER PRIMARY KEY CHECK(id = 0),
    status TEXT NOT NULL DEFAULT 'complete' CHECK(status IN ('running', 'complete')),
    report_id TEXT NOT NULL DEFAULT ''
);

INSERT OR IGNORE INTO report_generation (id, status, report_id) VALUES (0, 'complete', '');

CREATE INDEX IF NOT EXISTS idx_report_rows_report_id ON report_rows(report_id);
`,
	},
}

// New creates a new SQLite database connection
func New(dbPath string) (*DB, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{DB: db, path: dbPath}, nil
}

// Migrate runs database migrations with version tracking and automatic backup
func (db *DB) Migrate() error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			applied_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create schema_migrations table: %w", err)
	}

	currentVersion := db.getCurrentVersion()

	var pending []Migration
	for _, m := range migrations {
		if m.Version > currentVersion {
			pending = append(pending, m)
		}
	}

	if len(pending) == 0 {
		return nil
	}

	// Backup database before applying migrations
	if currentVersion > 0 {
		backupPath, err := db.backup()
		if err != nil {
			return fmt.Errorf("failed to backup database before migration: %w", err)
		}
		log.Printf("Database backed up to: %s", backupPath)
	}

	for _, m := range pending {
		log.Printf("Applying migration %d: %s", m.Version, m.Name)

		if _, err := db.Exec(m.SQL); err != nil {
			return fmt.Errorf("migration %d (%s) failed: %w", m.Version, m.Name, err)
		}

		_, err := db.Exec(
			"INSERT INTO schema_migrations (version, name) VALUES (?, ?)",
			m.Version, m.Name,
		)
		if err != nil {
			return fmt.Errorf("failed to record migration %d: %w", m.Version, err)
		}
	}

	log.Printf("Applied %d migration(s), schema version: %d", len(pending), pending[len(pending)-1].Version)
	return nil
}

// getCurrentVersion returns the current schema version (0 if no migrations applied)
func (db *DB) getCurrentVersion() int {
	var version int
	err := db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations").Scan(&version)
	if err != nil {
		return 0
	}
	return version
}

// backup creates a backup of the database file
func (db *DB) backup() (string, error) {
	timestamp := time.Now().Format("20060102-150405")
	backupPath := fmt.Sprintf("%s.backup-%s", db.path, timestamp)

	if _, err := db.Exec("PRAGMA wal_checkpoint(TRUNCATE)"); err != nil {
		log.Printf("Warning: WAL checkpoint failed: %v", err)
	}

	if err := copyFile(db.path, backupPath); err != nil {
		return "", err
	}

	return backupPath, nil
}

func copyFile(src, dst string) error {
	sourceFile, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open source file: %w", err)
	}
	defer sourceFile.Close()

	if dir := filepath.Dir(dst); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create destination directory: %w", err)
		}
	}

	destFile, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("failed to create destination file: %w", err)
	}
	defer destFile.Close()

	if _, err := io.Copy(destFile, sourceFile); err != nil {
		return fmt.Errorf("failed to copy file: %w", err)
	}

	return destFile.Sync()
}

// SchemaVersion returns the current schema version
func (db *DB) SchemaVersion() int {
	return db.getCurrentVersion()
}
