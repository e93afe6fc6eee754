package config

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"time"

	intdb "campusbooking/internal/db"

	_ "github.com/go-sql-driver/mysql"
	_ "modernc.org/sqlite"
)

// ConnectDB opens and pings the configured store. The returned dialect tells
// repositories which locking SQL to emit.
func ConnectDB(ctx context.Context, e Env) (*sql.DB, intdb.Dialect, error) {
	switch e.DBDriver {
	case DriverMySQL:
		db, err := openMySQL(ctx, e.DBDSN)
		return db, intdb.MySQL, err
	case DriverSQLite:
		db, err := OpenSQLite(ctx, e.SQLitePath)
		return db, intdb.SQLite, err
	default:
		return nil, "", fmt.Errorf("unsupported driver %q", e.DBDriver)
	}
}

func openMySQL(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("open mysql: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(10 * time.Minute)
	db.SetConnMaxIdleTime(5 * time.Minute)

	if err := ping(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping mysql: %w", err)
	}
	return db, nil
}

// OpenSQLite opens a SQLite file in WAL mode. Transactions begin IMMEDIATE so
// writers serialize at BEGIN, while reads on other connections keep running
// against the last committed state.
func OpenSQLite(ctx context.Context, path string) (*sql.DB, error) {
	dsn := "file:" + filepath.Clean(path) +
		"?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_txlock=immediate"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(16)
	db.SetMaxIdleConns(4)
	db.SetConnMaxIdleTime(5 * time.Minute)

	if err := ping(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	return db, nil
}

func ping(ctx context.Context, db *sql.DB) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	return db.PingContext(ctx)
}
