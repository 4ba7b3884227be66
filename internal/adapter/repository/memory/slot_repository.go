package memory

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/srgjo27/venue_booking/internal/core/domain"
)

type SlotRepository struct {
	store *Store
}

func (r *SlotRepository) CreateWithNoOverlap(_ context.Context, slot *domain.TimeSlot) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.venues[slot.VenueID]; !ok {
		return domain.ErrVenueNotFound
	}

	for _, id := range s.slotOrder {
		existing := s.slots[id]
		if existing.VenueID == slot.VenueID && existing.Overlaps(slot.StartTime, slot.EndTime) {
			return domain.ErrSlotOverlap
		}
	}

	s.slots[slot.ID] = slot.Snapshot()
	s.slotOrder = append(s.slotOrder, slot.ID)
	return nil
}

func (r *SlotRepository) GetByID(_ context.Context, id uuid.UUID) (*domain.TimeSlot, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	slot, ok := r.store.slots[id]
	if !ok {
		return nil, domain.ErrSlotNotFound
	}
	return slot.Snapshot(), nil
}

func (r *SlotRepository) ListByVenue(_ context.Context, venueID uuid.UUID) ([]domain.TimeSlot, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]domain.TimeSlot, 0)
	for _, id := range r.store.slotOrder {
		if slot := r.store.slots[id]; slot.VenueID == venueID {
			out = append(out, *slot)
		}
	}
	return out, nil
}

func (r *SlotRepository) ListAvailableInRange(_ context.Context, sportID string, from, to time.Time) ([]domain.TimeSlot, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]domain.TimeSlot, 0)
	for _, id := range r.store.slotOrder {
		slot := r.store.slots[id]
		venue, ok := r.store.venues[slot.VenueID]
		if !ok || venue.SportID != sportID {
			continue
		}
		if slot.Available && slot.Within(from, to) {
			out = append(out, *slot)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].StartTime.Before(out[j].StartTime)
	})
	return out, nil
}

func (r *SlotRepository) ListDivergent(_ context.Context) ([]uuid.UUID, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var out []uuid.UUID
	for _, id := range r.store.slotOrder {
		if r.store.slots[id].Available == r.store.hasConfirmed(id) {
			out = append(out, id)
		}
	}
	return out, nil
}
