package handlers

import (
	"context"
	"errors"
	"net/http"

	"campusbooking/internal/domain"
	"campusbooking/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

// ErrorResponse standardizes error payloads.
type ErrorResponse struct {
	Error     string `json:"error"`
	Code      string `json:"code,omitempty"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
	Details   any    `json:"details,omitempty"`
}

func respondError(c *gin.Context, status int, code, message string, details any) {
	if code == "" {
		code = http.StatusText(status)
	}
	c.AbortWithStatusJSON(status, ErrorResponse{
		Error:     message,
		Code:      code,
		Message:   message,
		RequestID: middleware.GetRequestID(c),
		Details:   details,
	})
}

// RespondDomainError maps domain errors to HTTP responses. Venue and booking
// lookups fail with distinct codes so clients can tell them apart.
func RespondDomainError(c *gin.Context, err error) {
	switch {
	case domain.IsValidation(err):
		respondError(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	case errors.Is(err, domain.ErrVenueNotFound):
		respondError(c, http.StatusNotFound, "venue_not_found", err.Error(), nil)
	case domain.IsNotFound(err):
		respondError(c, http.StatusNotFound, "not_found", err.Error(), nil)
	case domain.IsConflict(err):
		respondError(c, http.StatusConflict, "conflict", err.Error(), nil)
	case domain.IsUnavailable(err):
		c.Header("Retry-After", "1")
		respondError(c, http.StatusServiceUnavailable, "busy", err.Error(), nil)
	case errors.Is(err, context.Canceled):
		respondError(c, 499, "client_closed_request", "request canceled", nil)
	case errors.Is(err, context.DeadlineExceeded):
		respondError(c, http.StatusGatewayTimeout, "timeout", "request timed out", nil)
	default:
		respondError(c, http.StatusInternalServerError, "internal_error", "an internal error occurred", nil)
	}
}
