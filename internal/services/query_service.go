package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	intdb "campusbooking/internal/db"
	"campusbooking/internal/domain"
	"campusbooking/internal/domain/models"
	"campusbooking/internal/repositories"
)

// QueryService serves the read paths. None of its calls take the venue
// exclusion; each sees whatever the store has committed.
type QueryService struct {
	Venues   repositories.VenueRepo
	Bookings repositories.BookingRepo
}

func NewQueryService(db *sql.DB, dialect intdb.Dialect) QueryService {
	return QueryService{
		Venues:   repositories.VenueRepo{DB: db, Dialect: dialect},
		Bookings: repositories.BookingRepo{DB: db},
	}
}

func (s QueryService) ListVenues(ctx context.Context) ([]models.Venue, error) {
	out, err := s.Venues.List(ctx)
	if err != nil {
		return nil, domain.StorageFailure(err)
	}
	return out, nil
}

func (s QueryService) ListBookings(ctx context.Context) ([]models.Booking, error) {
	out, err := s.Bookings.List(ctx)
	if err != nil {
		return nil, domain.StorageFailure(err)
	}
	return out, nil
}

func (s QueryService) GetBooking(ctx context.Context, id int64) (models.Booking, error) {
	if id <= 0 {
		return models.Booking{}, domain.BookingNotFound(id)
	}
	b, err := s.Bookings.GetByID(ctx, id)
	if err != nil {
		if domain.IsNotFound(err) {
			return models.Booking{}, err
		}
		return models.Booking{}, domain.StorageFailure(err)
	}
	return b, nil
}

// Conflicts lists the bookings that currently overlap [start, end) on venueID.
func (s QueryService) Conflicts(ctx context.Context, venueID int64, start, end time.Time) ([]models.Booking, error) {
	window, err := domain.NewInterval(start, end)
	if err != nil {
		return nil, err
	}
	out, err := s.Bookings.ListOverlapping(ctx, venueID, window)
	if err != nil {
		return nil, domain.StorageFailure(fmt.Errorf("conflicts: %w", err))
	}
	return out, nil
}

// Ping checks the store and returns the number of registered venues.
func (s QueryService) Ping(ctx context.Context) (int, error) {
	if err := s.Venues.DB.PingContext(ctx); err != nil {
		return 0, err
	}
	return s.Venues.Count(ctx)
}
