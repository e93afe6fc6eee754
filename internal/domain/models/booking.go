package models

import (
	"time"

	"campusbooking/internal/domain"
)

// MaxBookerNameLength matches the booker_name column width.
const MaxBookerNameLength = 255

// Booking is the read projection of an accepted booking joined with its venue name.
type Booking struct {
	ID         int64     `json:"id"`
	VenueID    int64     `json:"venueId"`
	VenueName  string    `json:"venueName"`
	BookerName string    `json:"bookerName"`
	Start      time.Time `json:"start"`
	End        time.Time `json:"end"`
}

// Interval returns the booking window.
func (b Booking) Interval() domain.Interval {
	return domain.Interval{Start: b.Start, End: b.End}
}

// NewBooking carries a validated admission request into the store.
type NewBooking struct {
	VenueID    int64
	BookerName string
	Window     domain.Interval
}

// AdmitRequest is the raw admission input as received from a caller.
type AdmitRequest struct {
	VenueID    int64
	BookerName string
	Start      time.Time
	End        time.Time
}
