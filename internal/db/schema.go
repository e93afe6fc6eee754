package db

import (
	"context"
	"database/sql"
	"fmt"
)

var mysqlSchema = []string{
	`CREATE TABLE IF NOT EXISTS venues (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	name VARCHAR(255) NOT NULL,
	type VARCHAR(100) NOT NULL,
	capacity INT NOT NULL DEFAULT 20,
	location VARCHAR(255) NOT NULL DEFAULT '',
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	UNIQUE KEY uniq_venue_name (name)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`,
	`CREATE TABLE IF NOT EXISTS bookings (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	venue_id BIGINT NOT NULL,
	booker_name VARCHAR(255) NOT NULL,
	start_ms BIGINT NOT NULL,
	end_ms BIGINT NOT NULL,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	KEY idx_venue_window (venue_id, start_ms, end_ms),
	KEY idx_start (start_ms),
	CONSTRAINT fk_bookings_venue FOREIGN KEY (venue_id) REFERENCES venues (id),
	CONSTRAINT chk_booking_window CHECK (end_ms > start_ms)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`,
}

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS venues (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL UNIQUE,
	type TEXT NOT NULL,
	capacity INTEGER NOT NULL DEFAULT 20,
	location TEXT NOT NULL DEFAULT '',
	created_at INTEGER NOT NULL DEFAULT (CAST(strftime('%s','now') AS INTEGER) * 1000)
)`,
	`CREATE TABLE IF NOT EXISTS bookings (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	venue_id INTEGER NOT NULL REFERENCES venues (id),
	booker_name TEXT NOT NULL,
	start_ms INTEGER NOT NULL,
	end_ms INTEGER NOT NULL,
	created_at INTEGER NOT NULL DEFAULT (CAST(strftime('%s','now') AS INTEGER) * 1000),
	CHECK (end_ms > start_ms)
)`,
	`CREATE INDEX IF NOT EXISTS idx_bookings_venue_window ON bookings (venue_id, start_ms, end_ms)`,
	`CREATE INDEX IF NOT EXISTS idx_bookings_start ON bookings (start_ms)`,
}

// EnsureSchema creates the venue and booking tables when they are missing.
// Statements run one at a time since the MySQL driver rejects multi-statements.
func EnsureSchema(ctx context.Context, db *sql.DB, d Dialect) error {
	stmts := sqliteSchema
	if d == MySQL {
		stmts = mysqlSchema
	}
	for i, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema (statement %d): %w", i+1, err)
		}
	}
	return nil
}
