package ports

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/srgjo27/venue_booking/internal/core/domain"
)

type SportRepository interface {
	ExistsBySportID(ctx context.Context, sportID string) (bool, error)
	Create(ctx context.Context, sport *domain.Sport) error
	FindByName(ctx context.Context, name string) (*domain.Sport, error)
	List(ctx context.Context) ([]domain.Sport, error)
}

type VenueRepository interface {
	Create(ctx context.Context, venue *domain.Venue) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Venue, error)
	List(ctx context.Context) ([]domain.Venue, error)
	ListWithAvailableSlots(ctx context.Context) ([]domain.Venue, error)
	// Delete removes the venue with its slots and their bookings in one
	// atomic unit.
	Delete(ctx context.Context, id uuid.UUID) error
}

type SlotRepository interface {
	// CreateWithNoOverlap checks that the venue exists and that no slot of the
	// venue overlaps the new one, then inserts it, all in one atomic unit.
	CreateWithNoOverlap(ctx context.Context, slot *domain.TimeSlot) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.TimeSlot, error)
	ListByVenue(ctx context.Context, venueID uuid.UUID) ([]domain.TimeSlot, error)
	ListAvailableInRange(ctx context.Context, sportID string, from, to time.Time) ([]domain.TimeSlot, error)
	// ListDivergent returns slots whose availability flag disagrees with the
	// existence of a confirmed booking.
	ListDivergent(ctx context.Context) ([]uuid.UUID, error)
}

type BookingRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error)
	List(ctx context.Context, filter domain.BookingFilter) ([]domain.Booking, error)
	HasConfirmed(ctx context.Context, slotID uuid.UUID) (bool, error)
	// Reserve stores a confirmed booking and marks its slot unavailable. Both
	// writes commit together or not at all.
	Reserve(ctx context.Context, booking *domain.Booking) error
	// Release stores the cancellation of a booking and marks its slot
	// available again. Both writes commit together or not at all.
	Release(ctx context.Context, booking *domain.Booking) error
}
