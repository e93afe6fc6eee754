package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GET /api/venues
func (h *Handler) ListVenues(c *gin.Context) {
	venues, err := h.Query.ListVenues(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, venues)
}
