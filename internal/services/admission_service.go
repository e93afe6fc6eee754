package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	intdb "campusbooking/internal/db"
	"campusbooking/internal/domain"
	"campusbooking/internal/domain/models"
	"campusbooking/internal/repositories"
	"campusbooking/internal/utils"
)

const (
	defaultLockTimeout  = 5 * time.Second
	defaultMaxRetries   = 3
	defaultRetryBackoff = 25 * time.Millisecond
)

// AdmissionService is the only writer of bookings. AdmitBooking runs the
// conflict check and the insert as one unit per venue; DeleteBooking removes
// rows; IsAvailable is an advisory read.
type AdmissionService struct {
	db           *sql.DB
	dialect      intdb.Dialect
	venues       repositories.VenueRepo
	bookings     repositories.BookingRepo
	locks        *VenueLocks
	lockTimeout  time.Duration
	maxRetries   int
	retryBackoff time.Duration
}

type AdmissionOption func(*AdmissionService)

// WithLockTimeout bounds how long AdmitBooking waits for the venue exclusion.
func WithLockTimeout(d time.Duration) AdmissionOption {
	return func(s *AdmissionService) {
		if d > 0 {
			s.lockTimeout = d
		}
	}
}

// WithRetries sets how many times an aborted transaction is re-run and the
// linear backoff step between attempts.
func WithRetries(n int, backoff time.Duration) AdmissionOption {
	return func(s *AdmissionService) {
		if n >= 0 {
			s.maxRetries = n
		}
		if backoff >= 0 {
			s.retryBackoff = backoff
		}
	}
}

func NewAdmissionService(db *sql.DB, dialect intdb.Dialect, opts ...AdmissionOption) *AdmissionService {
	s := &AdmissionService{
		db:           db,
		dialect:      dialect,
		venues:       repositories.VenueRepo{DB: db, Dialect: dialect},
		bookings:     repositories.BookingRepo{DB: db},
		lockTimeout:  defaultLockTimeout,
		maxRetries:   defaultMaxRetries,
		retryBackoff: defaultRetryBackoff,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.locks = NewVenueLocks(s.lockTimeout)
	return s
}

// AdmitBooking validates the request and, holding the venue's exclusion,
// checks for overlapping bookings and inserts the new one in a single
// transaction. Rejections leave the store unchanged.
func (s *AdmissionService) AdmitBooking(ctx context.Context, req models.AdmitRequest) (models.Booking, error) {
	window, err := domain.NewInterval(req.Start, req.End)
	if err != nil {
		return models.Booking{}, err
	}
	booker := utils.NormalizeSpace(req.BookerName)
	if booker == "" {
		return models.Booking{}, domain.ValidationError{Field: "booker_name", Msg: "booker name is required"}
	}
	if utf8.RuneCountInString(booker) > models.MaxBookerNameLength {
		return models.Booking{}, domain.ValidationError{
			Field: "booker_name",
			Msg:   fmt.Sprintf("booker name must be at most %d characters", models.MaxBookerNameLength),
		}
	}

	exists, err := s.venues.Exists(ctx, req.VenueID)
	if err != nil {
		return models.Booking{}, s.storageError(ctx, "admit", err)
	}
	if !exists {
		return models.Booking{}, domain.VenueNotFound(req.VenueID)
	}

	release, err := s.locks.Acquire(ctx, req.VenueID)
	if err != nil {
		utils.LogEvent(ctx, "booking", "admit", "venue exclusion not acquired",
			"venue_id", req.VenueID, "err", err)
		return models.Booking{}, err
	}
	defer release()

	nb := models.NewBooking{VenueID: req.VenueID, BookerName: booker, Window: window}
	for attempt := 0; ; attempt++ {
		out, err := s.commit(ctx, nb)
		if err == nil {
			utils.LogEvent(ctx, "booking", "admit", "booking admitted",
				"booking_id", out.ID, "venue_id", out.VenueID, "attempt", attempt+1)
			return out, nil
		}
		if domain.IsConflict(err) || domain.IsNotFound(err) {
			utils.LogEvent(ctx, "booking", "admit", "booking rejected",
				"venue_id", req.VenueID, "reason", err.Error())
			return models.Booking{}, err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return models.Booking{}, ctxErr
		}
		if !intdb.IsRetryable(err) || attempt >= s.maxRetries {
			return models.Booking{}, s.storageError(ctx, "admit", err)
		}

		utils.LogEvent(ctx, "booking", "admit", "transaction aborted, retrying",
			"venue_id", req.VenueID, "attempt", attempt+1, "err", err)
		if err := sleepCtx(ctx, s.retryBackoff*time.Duration(attempt+1)); err != nil {
			return models.Booking{}, err
		}
	}
}

func (s *AdmissionService) commit(ctx context.Context, nb models.NewBooking) (models.Booking, error) {
	var out models.Booking
	err := intdb.WithTx(ctx, s.db, s.dialect.WriteTxOptions(), func(txCtx context.Context) error {
		venueName, err := s.venues.LockForAdmission(txCtx, nb.VenueID)
		if err != nil {
			return err
		}
		taken, err := s.bookings.HasOverlap(txCtx, nb.VenueID, nb.Window)
		if err != nil {
			return err
		}
		if taken {
			return domain.Conflict()
		}
		id, err := s.bookings.Insert(txCtx, nb)
		if err != nil {
			return err
		}
		out = models.Booking{
			ID:         id,
			VenueID:    nb.VenueID,
			VenueName:  venueName,
			BookerName: nb.BookerName,
			Start:      nb.Window.Start,
			End:        nb.Window.End,
		}
		return nil
	})
	return out, err
}

// IsAvailable reports whether no booking on venueID overlaps [start, end).
// The answer is advisory: it takes no lock, so a concurrent admission may
// claim the window before the caller acts on it. Only AdmitBooking decides.
func (s *AdmissionService) IsAvailable(ctx context.Context, venueID int64, start, end time.Time) (bool, error) {
	window, err := domain.NewInterval(start, end)
	if err != nil {
		return false, err
	}
	taken, err := s.bookings.HasOverlap(ctx, venueID, window)
	if err != nil {
		return false, s.storageError(ctx, "availability", err)
	}
	return !taken, nil
}

// DeleteBooking removes the booking with id. It never creates a conflict,
// so it does not take the venue exclusion.
func (s *AdmissionService) DeleteBooking(ctx context.Context, id int64) error {
	if id <= 0 {
		return domain.BookingNotFound(id)
	}
	deleted, err := s.bookings.Delete(ctx, id)
	if err != nil {
		return s.storageError(ctx, "delete", err)
	}
	if !deleted {
		return domain.BookingNotFound(id)
	}
	utils.LogEvent(ctx, "booking", "delete", "booking deleted", "booking_id", id)
	return nil
}

func (s *AdmissionService) storageError(ctx context.Context, action string, err error) error {
	utils.LogError(ctx, "booking", action, err)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return domain.StorageFailure(fmt.Errorf("%s: %w", action, err))
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
