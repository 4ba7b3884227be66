package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/srgjo27/venue_booking/internal/core/domain"
	"github.com/srgjo27/venue_booking/internal/core/services"
	"github.com/srgjo27/venue_booking/internal/platform/retry"
)

type BookingTracker interface {
	TrackBookingOperation(operation string, err error)
}

type Handler struct {
	venues   *services.VenueService
	slots    *services.SlotService
	bookings *services.BookingService
	sports   *services.SportService

	busyRetry retry.Strategy
	tracker   BookingTracker
	log       *slog.Logger
}

func NewHandler(
	venues *services.VenueService,
	slots *services.SlotService,
	bookings *services.BookingService,
	sports *services.SportService,
	busyRetry retry.Strategy,
	tracker BookingTracker,
	log *slog.Logger,
) *Handler {
	return &Handler{
		venues:    venues,
		slots:     slots,
		bookings:  bookings,
		sports:    sports,
		busyRetry: busyRetry,
		tracker:   tracker,
		log:       log,
	}
}

func isBusy(err error) bool {
	return errors.Is(err, domain.ErrBusy)
}

// withBusyRetry reruns a locked operation while the lock stays contended.
func (h *Handler) withBusyRetry(ctx context.Context, fn func() error) error {
	return h.busyRetry.Do(ctx, isBusy, fn)
}

func pathID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		writeError(c, http.StatusBadRequest, fmt.Sprintf("invalid %s id", name))
		return uuid.Nil, false
	}
	return id, true
}

// Venues

func (h *Handler) CreateVenue(c *gin.Context) {
	var req CreateVenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, err.Error())
		return
	}

	venue, err := h.venues.CreateVenue(c.Request.Context(), services.CreateVenueRequest{
		Name:      req.Name,
		Location:  req.Location,
		SportName: req.SportName,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toVenueResponse(venue))
}

func (h *Handler) ListVenues(c *gin.Context) {
	venues, err := h.venues.ListVenues(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, venueList(venues))
}

func (h *Handler) ListAvailableVenues(c *gin.Context) {
	venues, err := h.venues.ListAvailableVenues(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, venueList(venues))
}

func venueList(venues []domain.Venue) []VenueResponse {
	resp := make([]VenueResponse, 0, len(venues))
	for i := range venues {
		resp = append(resp, toVenueResponse(&venues[i]))
	}
	return resp
}

func (h *Handler) GetVenue(c *gin.Context) {
	id, ok := pathID(c, "venue")
	if !ok {
		return
	}

	venue, err := h.venues.GetVenue(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, toVenueResponse(venue))
}

func (h *Handler) DeleteVenue(c *gin.Context) {
	id, ok := pathID(c, "venue")
	if !ok {
		return
	}

	err := h.withBusyRetry(c.Request.Context(), func() error {
		return h.venues.DeleteVenue(c.Request.Context(), id)
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Slots

func (h *Handler) CreateSlot(c *gin.Context) {
	venueID, ok := pathID(c, "venue")
	if !ok {
		return
	}

	var req CreateSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, err.Error())
		return
	}

	start, err := parseTime("startTime", req.StartTime)
	if err != nil {
		h.handleError(c, err)
		return
	}
	end, err := parseTime("endTime", req.EndTime)
	if err != nil {
		h.handleError(c, err)
		return
	}

	var slot *domain.TimeSlot
	err = h.withBusyRetry(c.Request.Context(), func() error {
		var err error
		slot, err = h.slots.CreateSlot(c.Request.Context(), venueID, start, end)
		return err
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toSlotResponse(slot))
}

func (h *Handler) ListSlotsByVenue(c *gin.Context) {
	venueID, ok := pathID(c, "venue")
	if !ok {
		return
	}

	slots, err := h.slots.ListSlotsByVenue(c.Request.Context(), venueID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, slotList(slots))
}

func (h *Handler) ListAvailableSlots(c *gin.Context) {
	sportID := c.Query("sportId")
	if sportID == "" {
		writeError(c, http.StatusBadRequest, "sportId is required")
		return
	}

	from, err := parseTime("startTime", c.Query("startTime"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	to, err := parseTime("endTime", c.Query("endTime"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	slots, err := h.slots.ListAvailableSlots(c.Request.Context(), sportID, from, to)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, slotList(slots))
}

func slotList(slots []domain.TimeSlot) []SlotResponse {
	resp := make([]SlotResponse, 0, len(slots))
	for i := range slots {
		resp = append(resp, toSlotResponse(&slots[i]))
	}
	return resp
}

func (h *Handler) GetSlot(c *gin.Context) {
	id, ok := pathID(c, "slot")
	if !ok {
		return
	}

	slot, err := h.slots.GetSlot(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, toSlotResponse(slot))
}

// Bookings

func (h *Handler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, err.Error())
		return
	}

	slotID, err := uuid.Parse(req.SlotID)
	if err != nil {
		writeError(c, http.StatusBadRequest, "invalid slot id")
		return
	}

	var booking *domain.Booking
	err = h.withBusyRetry(c.Request.Context(), func() error {
		var err error
		booking, err = h.bookings.CreateBooking(c.Request.Context(), services.CreateBookingRequest{
			SlotID:        slotID,
			CustomerName:  req.CustomerName,
			CustomerEmail: req.CustomerEmail,
			CustomerPhone: req.CustomerPhone,
		})
		return err
	})
	h.tracker.TrackBookingOperation("create", err)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toBookingResponse(booking))
}

func (h *Handler) CancelBooking(c *gin.Context) {
	id, ok := pathID(c, "booking")
	if !ok {
		return
	}

	var booking *domain.Booking
	err := h.withBusyRetry(c.Request.Context(), func() error {
		var err error
		booking, err = h.bookings.CancelBooking(c.Request.Context(), id)
		return err
	})
	h.tracker.TrackBookingOperation("cancel", err)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toBookingResponse(booking))
}

func (h *Handler) GetBooking(c *gin.Context) {
	id, ok := pathID(c, "booking")
	if !ok {
		return
	}

	booking, err := h.bookings.GetBooking(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, toBookingResponse(booking))
}

func (h *Handler) ListBookings(c *gin.Context) {
	filter := domain.BookingFilter{
		Email:  c.Query("email"),
		Status: domain.BookingStatus(c.Query("status")),
	}

	bookings, err := h.bookings.ListBookings(c.Request.Context(), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]BookingResponse, 0, len(bookings))
	for i := range bookings {
		resp = append(resp, toBookingResponse(&bookings[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// Sports

func (h *Handler) ListSports(c *gin.Context) {
	sports, err := h.sports.ListSports(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]SportResponse, 0, len(sports))
	for _, s := range sports {
		resp = append(resp, SportResponse{
			SportID:   s.SportID,
			SportCode: s.SportCode,
			SportName: s.SportName,
		})
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) SyncSports(c *gin.Context) {
	n, err := h.sports.ImportSports(c.Request.Context())
	if err != nil {
		if domain.IsKnown(err) {
			h.handleError(c, err)
			return
		}
		h.log.Warn("sport sync failed", slog.Any("error", err))
		writeError(c, http.StatusBadGateway, "sport catalog feed unavailable")
		return
	}
	c.JSON(http.StatusOK, SyncResponse{Imported: n})
}
