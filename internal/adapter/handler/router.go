package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Observer interface {
	RequestTracker
	Handler() http.Handler
}

func NewRouter(mode string, h *Handler, obs Observer, log *slog.Logger) *gin.Engine {
	gin.SetMode(mode)

	r := gin.New()
	r.Use(Recovery(log), RequestLogger(log, obs))

	venues := r.Group("/venues")
	{
		venues.POST("", h.CreateVenue)
		venues.GET("", h.ListVenues)
		venues.GET("/available", h.ListAvailableVenues)
		venues.GET("/:id", h.GetVenue)
		venues.DELETE("/:id", h.DeleteVenue)
		venues.POST("/:id/slots", h.CreateSlot)
		venues.GET("/:id/slots", h.ListSlotsByVenue)
	}

	slots := r.Group("/slots")
	{
		slots.GET("/available", h.ListAvailableSlots)
		slots.GET("/:id", h.GetSlot)
	}

	bookings := r.Group("/bookings")
	{
		bookings.POST("", h.CreateBooking)
		bookings.GET("", h.ListBookings)
		bookings.GET("/:id", h.GetBooking)
		bookings.PUT("/:id/cancel", h.CancelBooking)
	}

	r.GET("/sports", h.ListSports)
	r.POST("/sports/sync", h.SyncSports)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(obs.Handler()))

	return r
}
