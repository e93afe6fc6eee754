package db

import "database/sql"

// Dialect selects SQL that differs between the supported stores.
type Dialect string

const (
	MySQL  Dialect = "mysql"
	SQLite Dialect = "sqlite"
)

// LockingRead returns the suffix that turns a SELECT into a row lock held
// until the enclosing transaction ends. SQLite has no row locks; its
// transactions take the database write lock at BEGIN instead.
func (d Dialect) LockingRead() string {
	if d == MySQL {
		return " FOR UPDATE"
	}
	return ""
}

// WriteTxOptions returns the options for check-then-write transactions.
// On MySQL, READ COMMITTED makes every plain read after the row lock see
// the latest committed rows instead of a snapshot taken earlier.
func (d Dialect) WriteTxOptions() *sql.TxOptions {
	if d == MySQL {
		return &sql.TxOptions{Isolation: sql.LevelReadCommitted}
	}
	return nil
}
