package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "booking service running"})
}

func (h *Handler) DBCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	count, err := h.Query.Ping(ctx)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "db_unavailable", "database query failed: "+err.Error(), nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "database connection OK", "venues_in_db": count})
}

func (h *Handler) Routes(c *gin.Context) {
	h.routerMu.RLock()
	r := h.router
	h.routerMu.RUnlock()
	if r == nil {
		respondError(c, http.StatusServiceUnavailable, "router_not_ready", "router not ready", nil)
		return
	}

	routes := r.Routes()
	out := make([]gin.H, 0, len(routes))
	for _, rt := range routes {
		out = append(out, gin.H{
			"method":  rt.Method,
			"path":    rt.Path,
			"handler": rt.Handler,
		})
	}
	c.JSON(http.StatusOK, gin.H{"routes": out})
}
