package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	intdb "campusbooking/internal/db"
	"campusbooking/internal/domain"
	"campusbooking/internal/domain/models"
)

const bookingProjection = `
		SELECT b.id, b.venue_id, v.name, b.booker_name, b.start_ms, b.end_ms
		FROM bookings b
		JOIN venues v ON v.id = b.venue_id`

type BookingRepo struct {
	DB *sql.DB
}

func (r BookingRepo) conn(ctx context.Context) intdb.Querier {
	return intdb.Conn(ctx, r.DB)
}

// HasOverlap reports whether any booking on venueID intersects window under
// the half-open rule: existing.start < window.end AND existing.end > window.start.
func (r BookingRepo) HasOverlap(ctx context.Context, venueID int64, window domain.Interval) (bool, error) {
	var id int64
	err := r.conn(ctx).QueryRowContext(ctx, `
		SELECT id FROM bookings
		WHERE venue_id = ? AND start_ms < ? AND end_ms > ?
		LIMIT 1
	`, venueID, window.EndMillis(), window.StartMillis()).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("query overlap: %w", err)
	}
	return true, nil
}

// ListOverlapping returns the bookings on venueID that intersect window.
func (r BookingRepo) ListOverlapping(ctx context.Context, venueID int64, window domain.Interval) ([]models.Booking, error) {
	return r.query(ctx, bookingProjection+`
		WHERE b.venue_id = ? AND b.start_ms < ? AND b.end_ms > ?
		ORDER BY b.start_ms ASC, b.id ASC
	`, venueID, window.EndMillis(), window.StartMillis())
}

// Insert stores a booking row and returns its id.
func (r BookingRepo) Insert(ctx context.Context, nb models.NewBooking) (int64, error) {
	res, err := r.conn(ctx).ExecContext(ctx, `
		INSERT INTO bookings (venue_id, booker_name, start_ms, end_ms)
		VALUES (?, ?, ?, ?)
	`, nb.VenueID, strings.TrimSpace(nb.BookerName), nb.Window.StartMillis(), nb.Window.EndMillis())
	if err != nil {
		return 0, fmt.Errorf("insert booking: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("insert booking id: %w", err)
	}
	return id, nil
}

// Delete removes a booking; the bool is false when no row matched.
func (r BookingRepo) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.conn(ctx).ExecContext(ctx, `DELETE FROM bookings WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("delete booking: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete booking rows: %w", err)
	}
	return n > 0, nil
}

// GetByID fetches one booking joined with its venue name.
func (r BookingRepo) GetByID(ctx context.Context, id int64) (models.Booking, error) {
	out, err := r.query(ctx, bookingProjection+`
		WHERE b.id = ?
		LIMIT 1
	`, id)
	if err != nil {
		return models.Booking{}, err
	}
	if len(out) == 0 {
		return models.Booking{}, domain.BookingNotFound(id)
	}
	return out[0], nil
}

// List returns every booking ordered by start time, ties broken by id.
func (r BookingRepo) List(ctx context.Context) ([]models.Booking, error) {
	return r.query(ctx, bookingProjection+`
		ORDER BY b.start_ms ASC, b.id ASC
	`)
}

func (r BookingRepo) query(ctx context.Context, query string, args ...any) ([]models.Booking, error) {
	rows, err := r.conn(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query bookings: %w", err)
	}
	defer rows.Close()

	out := []models.Booking{}
	for rows.Next() {
		var (
			b              models.Booking
			startMS, endMS int64
		)
		if err := rows.Scan(&b.ID, &b.VenueID, &b.VenueName, &b.BookerName, &startMS, &endMS); err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		window := domain.IntervalFromMillis(startMS, endMS)
		b.Start, b.End = window.Start, window.End
		out = append(out, b)
	}
	return out, rows.Err()
}
