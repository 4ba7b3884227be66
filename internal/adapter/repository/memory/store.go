// Package memory keeps the whole catalog in process. Reads share a RW lock
// and see a consistent snapshot; every write commits under the exclusive side,
// so a booking and its slot flag always change together.
package memory

import (
	"sync"

	"github.com/google/uuid"
	"github.com/srgjo27/venue_booking/internal/core/domain"
)

type Store struct {
	mu sync.RWMutex

	sports      []domain.Sport
	nextSportID int64

	venues     map[uuid.UUID]*domain.Venue
	venueOrder []uuid.UUID

	slots     map[uuid.UUID]*domain.TimeSlot
	slotOrder []uuid.UUID

	bookings       map[uuid.UUID]*domain.Booking
	bookingOrder   []uuid.UUID
	bookingsBySlot map[uuid.UUID][]uuid.UUID
}

func NewStore() *Store {
	return &Store{
		venues:         make(map[uuid.UUID]*domain.Venue),
		slots:          make(map[uuid.UUID]*domain.TimeSlot),
		bookings:       make(map[uuid.UUID]*domain.Booking),
		bookingsBySlot: make(map[uuid.UUID][]uuid.UUID),
	}
}

func (s *Store) Sports() *SportRepository {
	return &SportRepository{store: s}
}

func (s *Store) Venues() *VenueRepository {
	return &VenueRepository{store: s}
}

func (s *Store) Slots() *SlotRepository {
	return &SlotRepository{store: s}
}

func (s *Store) Bookings() *BookingRepository {
	return &BookingRepository{store: s}
}

// hasConfirmed must be called with mu held.
func (s *Store) hasConfirmed(slotID uuid.UUID) bool {
	for _, id := range s.bookingsBySlot[slotID] {
		if s.bookings[id].IsConfirmed() {
			return true
		}
	}
	return false
}

func (s *Store) availableCount(venueID uuid.UUID) int {
	n := 0
	for _, id := range s.slotOrder {
		slot := s.slots[id]
		if slot.VenueID == venueID && slot.Available {
			n++
		}
	}
	return n
}

func (s *Store) bookingView(b *domain.Booking) domain.Booking {
	out := *b
	if b.CancelledAt != nil {
		at := *b.CancelledAt
		out.CancelledAt = &at
	}
	if slot, ok := s.slots[b.SlotID]; ok {
		out.Slot = slot.Snapshot()
	}
	return out
}

func removeID(ids []uuid.UUID, id uuid.UUID) []uuid.UUID {
	for i, v := range ids {
		if v == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}
