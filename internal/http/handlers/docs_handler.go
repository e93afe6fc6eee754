package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetBookingConfirmation returns the booking confirmation PDF (inline).
func (h *Handler) GetBookingConfirmation(c *gin.Context) {
	id, ok := paramID(c, "id", "invalid_booking_id", "invalid booking id")
	if !ok {
		return
	}

	pdfBytes, filename, err := h.Docs.GenerateConfirmation(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", `inline; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
