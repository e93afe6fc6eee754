package testutil

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	intconfig "campusbooking/internal/config"
	intdb "campusbooking/internal/db"
)

// NewSQLite opens a fresh SQLite file under t.TempDir with the schema applied.
func NewSQLite(t *testing.T) *sql.DB {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	db, err := intconfig.OpenSQLite(ctx, filepath.Join(t.TempDir(), "bookings.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close()
	})

	if err := intdb.EnsureSchema(ctx, db, intdb.SQLite); err != nil {
		t.Fatalf("ensure schema: %v", err)
	}
	return db
}

// InsertVenue adds a venue row directly and returns its id.
func InsertVenue(t *testing.T, db *sql.DB, name string) int64 {
	t.Helper()
	res, err := db.Exec(`INSERT INTO venues (name, type, capacity, location) VALUES (?, 'Room', 20, '')`, name)
	if err != nil {
		t.Fatalf("insert venue: %v", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		t.Fatalf("venue id: %v", err)
	}
	return id
}

// CountBookings returns the number of booking rows.
func CountBookings(t *testing.T, db *sql.DB) int {
	t.Helper()
	var n int
	if err := db.QueryRow(`SELECT COUNT(*) FROM bookings`).Scan(&n); err != nil {
		t.Fatalf("count bookings: %v", err)
	}
	return n
}

// At returns 2030-01-01 at hh:mm UTC.
func At(hh, mm int) time.Time {
	return time.Date(2030, 1, 1, hh, mm, 0, 0, time.UTC)
}
