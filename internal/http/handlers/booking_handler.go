package handlers

import (
	"net/http"

	"campusbooking/internal/domain"
	"campusbooking/internal/domain/models"
	"campusbooking/internal/utils"

	"github.com/gin-gonic/gin"
)

// bookingRequest accepts snake_case keys and the camelCase keys
// used in responses.
type bookingRequest struct {
	VenueID      int64  `json:"venue_id"`
	VenueIDCamel int64  `json:"venueId"`
	BookerName   string `json:"booker_name"`
	BookerCamel  string `json:"bookerName"`
	StartTime    string `json:"start_time"`
	StartCamel   string `json:"start"`
	EndTime      string `json:"end_time"`
	EndCamel     string `json:"end"`
}

func (r bookingRequest) venueID() int64 { return firstPositive(r.VenueID, r.VenueIDCamel) }

func (r bookingRequest) window() (domain.Interval, error) {
	return domain.ParseInterval(firstNonEmpty(r.StartTime, r.StartCamel), firstNonEmpty(r.EndTime, r.EndCamel))
}

// GET /api/bookings
func (h *Handler) ListBookings(c *gin.Context) {
	bookings, err := h.Query.ListBookings(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// GET /api/bookings/:id
func (h *Handler) GetBooking(c *gin.Context) {
	id, ok := paramID(c, "id", "invalid_booking_id", "invalid booking id")
	if !ok {
		return
	}
	b, err := h.Query.GetBooking(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// POST /api/bookings
func (h *Handler) CreateBooking(c *gin.Context) {
	var req bookingRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	window, err := req.window()
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	b, err := h.Admission.AdmitBooking(c.Request.Context(), models.AdmitRequest{
		VenueID:    req.venueID(),
		BookerName: firstNonEmpty(req.BookerName, req.BookerCamel),
		Start:      window.Start,
		End:        window.End,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, b)
}

// POST /api/check-availability
//
// Advisory only: a true result does not reserve the window.
func (h *Handler) CheckAvailability(c *gin.Context) {
	var req bookingRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	window, err := req.window()
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	ctx := c.Request.Context()
	venueID := req.venueID()
	available, err := h.Admission.IsAvailable(ctx, venueID, window.Start, window.End)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	resp := gin.H{
		"available": available,
		"venueId":   venueID,
		"start":     window.Start,
		"end":       window.End,
	}
	if !available {
		conflicts, err := h.Query.Conflicts(ctx, venueID, window.Start, window.End)
		if err != nil {
			utils.LogError(ctx, "booking", "check_availability", err, "venue_id", venueID)
		} else {
			resp["conflicts"] = conflicts
		}
	}
	c.JSON(http.StatusOK, resp)
}

// DELETE /api/bookings/:id
func (h *Handler) DeleteBooking(c *gin.Context) {
	id, ok := paramID(c, "id", "invalid_booking_id", "invalid booking id")
	if !ok {
		return
	}
	if err := h.Admission.DeleteBooking(c.Request.Context(), id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking deleted successfully", "id": id})
}
