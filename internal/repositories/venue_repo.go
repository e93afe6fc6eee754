package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	intdb "campusbooking/internal/db"
	"campusbooking/internal/domain"
	"campusbooking/internal/domain/models"
)

type VenueRepo struct {
	DB      *sql.DB
	Dialect intdb.Dialect
}

func (r VenueRepo) conn(ctx context.Context) intdb.Querier {
	return intdb.Conn(ctx, r.DB)
}

// List returns all venues ordered by name.
func (r VenueRepo) List(ctx context.Context) ([]models.Venue, error) {
	rows, err := r.conn(ctx).QueryContext(ctx, `
		SELECT id, name, type, capacity, location
		FROM venues
		ORDER BY name ASC, id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query venues: %w", err)
	}
	defer rows.Close()

	out := []models.Venue{}
	for rows.Next() {
		var v models.Venue
		if err := rows.Scan(&v.ID, &v.Name, &v.Type, &v.Capacity, &v.Location); err != nil {
			return nil, fmt.Errorf("scan venue: %w", err)
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

// Exists reports whether a venue with id is registered.
func (r VenueRepo) Exists(ctx context.Context, id int64) (bool, error) {
	if id <= 0 {
		return false, nil
	}
	var found int64
	err := r.conn(ctx).QueryRowContext(ctx, `SELECT id FROM venues WHERE id = ? LIMIT 1`, id).Scan(&found)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("query venue: %w", err)
	}
	return true, nil
}

// LockForAdmission reads the venue row with a lock held until the enclosing
// transaction ends and returns its display name. Every admission on the same
// venue queues behind this read, which is what makes check-then-insert atomic
// across processes sharing the database.
func (r VenueRepo) LockForAdmission(ctx context.Context, id int64) (string, error) {
	var name string
	err := r.conn(ctx).QueryRowContext(ctx,
		`SELECT name FROM venues WHERE id = ?`+r.Dialect.LockingRead(), id).Scan(&name)
	if errors.Is(err, sql.ErrNoRows) {
		return "", domain.VenueNotFound(id)
	}
	if err != nil {
		return "", fmt.Errorf("lock venue: %w", err)
	}
	return name, nil
}

func (r VenueRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.conn(ctx).QueryRowContext(ctx, `SELECT COUNT(*) FROM venues`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count venues: %w", err)
	}
	return n, nil
}

// Insert adds a venue and returns its id.
func (r VenueRepo) Insert(ctx context.Context, v models.Venue) (int64, error) {
	v = v.Normalize()
	res, err := r.conn(ctx).ExecContext(ctx, `
		INSERT INTO venues (name, type, capacity, location)
		VALUES (?, ?, ?, ?)
	`, v.Name, v.Type, v.Capacity, v.Location)
	if err != nil {
		return 0, fmt.Errorf("insert venue %q: %w", v.Name, err)
	}
	return res.LastInsertId()
}
