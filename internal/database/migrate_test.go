package database

import (
	"path/filepath"
	"testing"
)

func TestRunMigrationsBringsUpSchema(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "qsolog.db")
	if err := RunMigrations(dbPath, "migrations"); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	db, err := Open(dbPath)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer db.Close()

	if _, err := db.Exec(`INSERT INTO qsos(id, callsign, qso_date) VALUES('1', 'M0XYZ', '20170305')`); err != nil {
		t.Fatalf("qsos table unusable after migration: %v", err)
	}
}

func TestRunMigrationsIsIdempotent(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "qsolog.db")
	if err := RunMigrations(dbPath, "migrations"); err != nil {
		t.Fatalf("first run: %v", err)
	}
	if err := RunMigrations(dbPath, "migrations"); err != nil {
		t.Fatalf("second run must be a no-change no-op: %v", err)
	}
}

func TestRunMigrationsWithDBOnOpenConnection(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "qsolog.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer db.Close()

	if err := RunMigrationsWithDB(db, "migrations"); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	var n int
	if err := db.QueryRow(`SELECT COUNT(*) FROM qsos`).Scan(&n); err != nil {
		t.Fatalf("qsos table missing after migration: %v", err)
	}
}
