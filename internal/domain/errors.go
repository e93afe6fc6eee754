package domain

import (
	"errors"
	"fmt"
)

// Sentinel reasons. Typed errors below wrap one of these so callers can
// branch with either errors.Is or the Is* helpers.
var (
	ErrInvalidInterval = errors.New("invalid interval")
	ErrVenueNotFound   = errors.New("venue not found")
	ErrConflict        = errors.New("venue is not available for the selected time")
	ErrBookingNotFound = errors.New("booking not found")
	ErrBusy            = errors.New("venue is busy, try again")
	ErrStorageFailure  = errors.New("storage failure")
)

type NotFoundError struct {
	Resource string
	Err      error
}

func (e NotFoundError) Error() string {
	if e.Resource == "" {
		return "not found"
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

func (e NotFoundError) Unwrap() error { return e.Err }

type ValidationError struct {
	Field string
	Msg   string
	Err   error
}

func (e ValidationError) Error() string {
	if e.Msg != "" && e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Msg)
	}
	if e.Msg != "" {
		return e.Msg
	}
	if e.Field != "" {
		return fmt.Sprintf("invalid %s", e.Field)
	}
	return "validation error"
}

func (e ValidationError) Unwrap() error { return e.Err }

type ConflictError struct {
	Resource string
	Msg      string
	Err      error
}

func (e ConflictError) Error() string {
	switch {
	case e.Msg != "" && e.Resource != "":
		return fmt.Sprintf("%s conflict: %s", e.Resource, e.Msg)
	case e.Msg != "":
		return e.Msg
	case e.Resource != "":
		return fmt.Sprintf("%s conflict", e.Resource)
	default:
		return "conflict"
	}
}

func (e ConflictError) Unwrap() error { return e.Err }

// UnavailableError reports that the request could not be served in time,
// e.g. the venue exclusion was not acquired before the wait bound expired.
type UnavailableError struct {
	Msg string
	Err error
}

func (e UnavailableError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return "service unavailable"
}

func (e UnavailableError) Unwrap() error { return e.Err }

type InternalError struct {
	Msg string
	Err error
}

func (e InternalError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return "internal error"
}

func (e InternalError) Unwrap() error { return e.Err }

func IsNotFound(err error) bool {
	var target NotFoundError
	return errors.As(err, &target)
}

func IsValidation(err error) bool {
	var target ValidationError
	return errors.As(err, &target)
}

func IsConflict(err error) bool {
	var target ConflictError
	return errors.As(err, &target)
}

func IsUnavailable(err error) bool {
	var target UnavailableError
	return errors.As(err, &target)
}

func IsInternal(err error) bool {
	var target InternalError
	return errors.As(err, &target)
}

// InvalidInterval builds the validation error used for malformed or empty windows.
func InvalidInterval(field, msg string) error {
	return ValidationError{Field: field, Msg: msg, Err: ErrInvalidInterval}
}

func VenueNotFound(id int64) error {
	return NotFoundError{Resource: fmt.Sprintf("venue %d", id), Err: ErrVenueNotFound}
}

func BookingNotFound(id int64) error {
	return NotFoundError{Resource: fmt.Sprintf("booking %d", id), Err: ErrBookingNotFound}
}

func Conflict() error {
	return ConflictError{Resource: "booking", Msg: ErrConflict.Error(), Err: ErrConflict}
}

func Busy(err error) error {
	return UnavailableError{Msg: ErrBusy.Error(), Err: errors.Join(ErrBusy, err)}
}

func StorageFailure(err error) error {
	return InternalError{Msg: ErrStorageFailure.Error(), Err: errors.Join(ErrStorageFailure, err)}
}
