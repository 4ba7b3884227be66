package memory

import (
	"context"

	"github.com/google/uuid"
	"github.com/srgjo27/venue_booking/internal/core/domain"
)

type VenueRepository struct {
	store *Store
}

func (r *VenueRepository) Create(_ context.Context, venue *domain.Venue) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	v := *venue
	v.AvailableSlots = 0
	r.store.venues[v.ID] = &v
	r.store.venueOrder = append(r.store.venueOrder, v.ID)
	return nil
}

func (r *VenueRepository) GetByID(_ context.Context, id uuid.UUID) (*domain.Venue, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	v, ok := r.store.venues[id]
	if !ok {
		return nil, domain.ErrVenueNotFound
	}
	out := *v
	out.AvailableSlots = r.store.availableCount(id)
	return &out, nil
}

func (r *VenueRepository) List(_ context.Context) ([]domain.Venue, error) {
	return r.list(false), nil
}

func (r *VenueRepository) ListWithAvailableSlots(_ context.Context) ([]domain.Venue, error) {
	return r.list(true), nil
}

func (r *VenueRepository) list(onlyAvailable bool) []domain.Venue {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]domain.Venue, 0, len(r.store.venueOrder))
	for _, id := range r.store.venueOrder {
		v := *r.store.venues[id]
		v.AvailableSlots = r.store.availableCount(id)
		if onlyAvailable && v.AvailableSlots == 0 {
			continue
		}
		out = append(out, v)
	}
	return out
}

// Delete cascades to the venue's slots and their bookings before removing
// the venue itself.
func (r *VenueRepository) Delete(_ context.Context, id uuid.UUID) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.venues[id]; !ok {
		return domain.ErrVenueNotFound
	}

	kept := s.slotOrder[:0]
	for _, slotID := range s.slotOrder {
		if s.slots[slotID].VenueID != id {
			kept = append(kept, slotID)
			continue
		}
		for _, bookingID := range s.bookingsBySlot[slotID] {
			delete(s.bookings, bookingID)
			s.bookingOrder = removeID(s.bookingOrder, bookingID)
		}
		delete(s.bookingsBySlot, slotID)
		delete(s.slots, slotID)
	}
	s.slotOrder = kept

	delete(s.venues, id)
	s.venueOrder = removeID(s.venueOrder, id)
	return nil
}
