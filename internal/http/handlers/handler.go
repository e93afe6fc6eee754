package handlers

import (
	"sync"

	"campusbooking/internal/services"

	"github.com/gin-gonic/gin"
)

// Handler binds the booking services to gin routes.
type Handler struct {
	Admission *services.AdmissionService
	Query     services.QueryService
	Docs      services.DocsService

	routerMu sync.RWMutex
	router   *gin.Engine
}

func New(admission *services.AdmissionService, query services.QueryService) *Handler {
	return &Handler{
		Admission: admission,
		Query:     query,
		Docs:      services.DocsService{Query: query},
	}
}

// SetRouter stores the active gin engine for later inspection (e.g., /api/routes).
func (h *Handler) SetRouter(r *gin.Engine) {
	h.routerMu.Lock()
	defer h.routerMu.Unlock()
	h.router = r
}
