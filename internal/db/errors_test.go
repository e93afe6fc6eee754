package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/go-sql-driver/mysql"
	_ "modernc.org/sqlite"
)

func TestIsRetryableMySQL(t *testing.T) {
	cases := []struct {
		err  error
		want bool
	}{
		{&mysql.MySQLError{Number: 1213}, true},
		{&mysql.MySQLError{Number: 1205}, true},
		{fmt.Errorf("insert booking: %w", &mysql.MySQLError{Number: 1213}), true},
		{&mysql.MySQLError{Number: 1062}, false},
		{errors.New("boom"), false},
		{nil, false},
	}
	for _, tc := range cases {
		if got := IsRetryable(tc.err); got != tc.want {
			t.Errorf("IsRetryable(%v) = %v, want %v", tc.err, got, tc.want)
		}
	}
	if !IsUniqueViolation(&mysql.MySQLError{Number: 1062}) {
		t.Error("expected 1062 to be a unique violation")
	}
}

func TestSQLiteSchemaAndUniqueViolation(t *testing.T) {
	ctx := context.Background()
	db, err := sql.Open("sqlite", "file:"+filepath.Join(t.TempDir(), "t.db")+"?_pragma=foreign_keys(1)")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer db.Close()

	if err := EnsureSchema(ctx, db, SQLite); err != nil {
		t.Fatalf("EnsureSchema: %v", err)
	}
	if err := EnsureSchema(ctx, db, SQLite); err != nil {
		t.Fatalf("EnsureSchema should be repeatable: %v", err)
	}

	insert := `INSERT INTO venues (name, type, capacity, location) VALUES ('Hall', 'Room', 20, '')`
	if _, err := db.ExecContext(ctx, insert); err != nil {
		t.Fatalf("first insert: %v", err)
	}
	_, err = db.ExecContext(ctx, insert)
	if !IsUniqueViolation(err) {
		t.Fatalf("expected unique violation, got %v", err)
	}
	if IsRetryable(err) {
		t.Fatalf("unique violation must not be retryable")
	}

	_, err = db.ExecContext(ctx, `INSERT INTO bookings (venue_id, booker_name, start_ms, end_ms) VALUES (1, 'Ada', 200, 100)`)
	if err == nil {
		t.Fatal("expected check constraint to reject end before start")
	}
}

func TestWithTxRollsBackOnError(t *testing.T) {
	ctx := context.Background()
	db, err := sql.Open("sqlite", "file:"+filepath.Join(t.TempDir(), "tx.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(1)
	if err := EnsureSchema(ctx, db, SQLite); err != nil {
		t.Fatalf("EnsureSchema: %v", err)
	}

	sentinel := errors.New("abort")
	err = WithTx(ctx, db, nil, func(txCtx context.Context) error {
		if TxFromContext(txCtx) == nil {
			t.Fatal("expected transaction in context")
		}
		if _, err := Conn(txCtx, db).ExecContext(txCtx, `INSERT INTO venues (name, type, capacity, location) VALUES ('Lab', 'Lab', 5, '')`); err != nil {
			return err
		}
		return WithTx(txCtx, db, nil, func(context.Context) error { return sentinel })
	})
	if !errors.Is(err, sentinel) {
		t.Fatalf("expected sentinel, got %v", err)
	}

	var n int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM venues`).Scan(&n); err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 0 {
		t.Fatalf("expected rollback, found %d venues", n)
	}
}
