package handler

import (
	"fmt"
	"time"

	"github.com/srgjo27/venue_booking/internal/core/domain"
)

// Request times accept RFC 3339 or a zone-less local form read as UTC.
var timeLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02T15:04"}

func parseTime(field, s string) (time.Time, error) {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %s must be an ISO-8601 timestamp", domain.ErrValidation, field)
}

type ErrorResponse struct {
	Status    int       `json:"status"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

type CreateVenueRequest struct {
	Name      string `json:"name" binding:"required"`
	Location  string `json:"location" binding:"required"`
	SportName string `json:"sportName" binding:"required"`
}

type VenueResponse struct {
	ID                  string    `json:"id"`
	Name                string    `json:"name"`
	Location            string    `json:"location"`
	SportID             string    `json:"sportId"`
	SportName           string    `json:"sportName"`
	AvailableSlotsCount int       `json:"availableSlotsCount"`
	CreatedAt           time.Time `json:"createdAt"`
}

func toVenueResponse(v *domain.Venue) VenueResponse {
	return VenueResponse{
		ID:                  v.ID.String(),
		Name:                v.Name,
		Location:            v.Location,
		SportID:             v.SportID,
		SportName:           v.SportName,
		AvailableSlotsCount: v.AvailableSlots,
		CreatedAt:           v.CreatedAt,
	}
}

type CreateSlotRequest struct {
	StartTime string `json:"startTime" binding:"required"`
	EndTime   string `json:"endTime" binding:"required"`
}

type SlotResponse struct {
	ID          string    `json:"id"`
	VenueID     string    `json:"venueId"`
	StartTime   time.Time `json:"startTime"`
	EndTime     time.Time `json:"endTime"`
	IsAvailable bool      `json:"isAvailable"`
}

func toSlotResponse(s *domain.TimeSlot) SlotResponse {
	return SlotResponse{
		ID:          s.ID.String(),
		VenueID:     s.VenueID.String(),
		StartTime:   s.StartTime,
		EndTime:     s.EndTime,
		IsAvailable: s.Available,
	}
}

type CreateBookingRequest struct {
	SlotID        string `json:"slotId" binding:"required"`
	CustomerName  string `json:"customerName" binding:"required"`
	CustomerEmail string `json:"customerEmail" binding:"required,email"`
	CustomerPhone string `json:"customerPhone"`
}

type BookingResponse struct {
	ID            string        `json:"id"`
	SlotID        string        `json:"slotId"`
	CustomerName  string        `json:"customerName"`
	CustomerEmail string        `json:"customerEmail"`
	CustomerPhone string        `json:"customerPhone,omitempty"`
	Status        string        `json:"status"`
	BookingDate   time.Time     `json:"bookingDate"`
	CancelledAt   *time.Time    `json:"cancelledAt,omitempty"`
	Slot          *SlotResponse `json:"slot,omitempty"`
}

func toBookingResponse(b *domain.Booking) BookingResponse {
	resp := BookingResponse{
		ID:            b.ID.String(),
		SlotID:        b.SlotID.String(),
		CustomerName:  b.Customer.Name,
		CustomerEmail: b.Customer.Email,
		CustomerPhone: b.Customer.Phone,
		Status:        string(b.Status),
		BookingDate:   b.CreatedAt,
		CancelledAt:   b.CancelledAt,
	}
	if b.Slot != nil {
		slot := toSlotResponse(b.Slot)
		resp.Slot = &slot
	}
	return resp
}

type SportResponse struct {
	SportID   string `json:"sportId"`
	SportCode string `json:"sportCode"`
	SportName string `json:"sportName"`
}

type SyncResponse struct {
	Imported int `json:"imported"`
}
