package memory

import (
	"context"

	"github.com/google/uuid"
	"github.com/srgjo27/venue_booking/internal/core/domain"
)

type BookingRepository struct {
	store *Store
}

func (r *BookingRepository) GetByID(_ context.Context, id uuid.UUID) (*domain.Booking, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	b, ok := r.store.bookings[id]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}
	out := r.store.bookingView(b)
	return &out, nil
}

func (r *BookingRepository) List(_ context.Context, filter domain.BookingFilter) ([]domain.Booking, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]domain.Booking, 0, len(r.store.bookingOrder))
	for _, id := range r.store.bookingOrder {
		b := r.store.bookings[id]
		if filter.Match(b) {
			out = append(out, r.store.bookingView(b))
		}
	}
	return out, nil
}

func (r *BookingRepository) HasConfirmed(_ context.Context, slotID uuid.UUID) (bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return r.store.hasConfirmed(slotID), nil
}

func (r *BookingRepository) Reserve(_ context.Context, booking *domain.Booking) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	slot, ok := s.slots[booking.SlotID]
	if !ok {
		return domain.ErrSlotNotFound
	}
	if !slot.Available {
		return domain.ErrSlotNotAvailable
	}
	if s.hasConfirmed(slot.ID) {
		return domain.ErrSlotAlreadyBooked
	}

	b := *booking
	b.Slot = nil
	s.bookings[b.ID] = &b
	s.bookingOrder = append(s.bookingOrder, b.ID)
	s.bookingsBySlot[slot.ID] = append(s.bookingsBySlot[slot.ID], b.ID)
	slot.Available = false
	return nil
}

func (r *BookingRepository) Release(_ context.Context, booking *domain.Booking) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.bookings[booking.ID]
	if !ok {
		return domain.ErrBookingNotFound
	}
	if !stored.IsConfirmed() {
		return domain.ErrBookingAlreadyCancelled
	}

	stored.Status = domain.BookingCancelled
	if booking.CancelledAt != nil {
		at := *booking.CancelledAt
		stored.CancelledAt = &at
	}
	if slot, ok := s.slots[stored.SlotID]; ok {
		slot.Available = true
	}
	return nil
}
