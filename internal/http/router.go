package api

import (
	"log/slog"
	stdhttp "net/http"

	intconfig "campusbooking/internal/config"
	h "campusbooking/internal/http/handlers"
	"campusbooking/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env, hd *h.Handler, log *slog.Logger) *gin.Engine {
	if log == nil {
		log = slog.Default()
	}

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(log), gin.Recovery(), middleware.CORS(env.CORSAllowedOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Warn("failed to set trusted proxies", "err", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	api := r.Group("/api")
	{
		api.GET("/health", hd.Health)
		api.GET("/db-check", hd.DBCheck)
		api.GET("/routes", hd.Routes)
		mountBooking(api, hd)
		api.GET("/bookings/:id", hd.GetBooking)
		api.GET("/bookings/:id/confirmation", hd.GetBookingConfirmation)
	}

	// legacy un-prefixed paths
	mountBooking(&r.RouterGroup, hd)

	hd.SetRouter(r)
	return r
}

func mountBooking(g *gin.RouterGroup, hd *h.Handler) {
	g.GET("/venues", hd.ListVenues)
	g.GET("/bookings", hd.ListBookings)
	g.POST("/bookings", hd.CreateBooking)
	g.DELETE("/bookings/:id", hd.DeleteBooking)
	g.POST("/check-availability", hd.CheckAvailability)
}
