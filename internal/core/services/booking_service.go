package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/srgjo27/venue_booking/internal/core/domain"
	"github.com/srgjo27/venue_booking/internal/core/ports"
)

type CreateBookingRequest struct {
	SlotID        uuid.UUID
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
}

// BookingService is the only writer of a slot's availability flag. Each
// mutation runs under the slot's lock: read, check, then one atomic write.
type BookingService struct {
	slotRepo    ports.SlotRepository
	bookingRepo ports.BookingRepository
	locks       ports.LockManager
	log         *slog.Logger
	now         func() time.Time
}

func NewBookingService(
	slotRepo ports.SlotRepository,
	bookingRepo ports.BookingRepository,
	locks ports.LockManager,
	log *slog.Logger,
) *BookingService {
	return &BookingService{
		slotRepo:    slotRepo,
		bookingRepo: bookingRepo,
		locks:       locks,
		log:         log,
		now:         time.Now,
	}
}

func (s *BookingService) CreateBooking(ctx context.Context, req CreateBookingRequest) (*domain.Booking, error) {
	release, err := s.locks.Acquire(ctx, slotLockKey(req.SlotID))
	if err != nil {
		return nil, fmt.Errorf("lock slot %s: %w", req.SlotID, err)
	}

	defer release()

	slot, err := s.slotRepo.GetByID(ctx, req.SlotID)
	if err != nil {
		return nil, err
	}

	if !slot.Available {
		return nil, domain.ErrSlotNotAvailable
	}

	// The flag is a cached fact; the booking table is checked on its own so a
	// stale flag fails safe instead of double-booking.
	booked, err := s.bookingRepo.HasConfirmed(ctx, slot.ID)
	if err != nil {
		return nil, err
	}

	if booked {
		s.log.Warn("slot flagged available but has a confirmed booking",
			slog.String("slot_id", slot.ID.String()),
		)
		return nil, domain.ErrSlotAlreadyBooked
	}

	booking := &domain.Booking{
		ID:     uuid.New(),
		SlotID: slot.ID,
		Customer: domain.Customer{
			Name:  req.CustomerName,
			Email: req.CustomerEmail,
			Phone: req.CustomerPhone,
		},
		Status:    domain.BookingConfirmed,
		CreatedAt: s.now().UTC(),
	}

	if err := s.bookingRepo.Reserve(ctx, booking); err != nil {
		return nil, err
	}

	slot.Available = false
	booking.Slot = slot

	s.log.Info("booking created",
		slog.String("booking_id", booking.ID.String()),
		slog.String("slot_id", slot.ID.String()),
	)

	return booking, nil
}

func (s *BookingService) CancelBooking(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	existing, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	release, err := s.locks.Acquire(ctx, slotLockKey(existing.SlotID))
	if err != nil {
		return nil, fmt.Errorf("lock slot %s: %w", existing.SlotID, err)
	}

	defer release()

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := booking.Cancel(s.now().UTC()); err != nil {
		return nil, err
	}

	if err := s.bookingRepo.Release(ctx, booking); err != nil {
		return nil, err
	}

	if booking.Slot != nil {
		booking.Slot.Available = true
	}

	s.log.Info("booking cancelled",
		slog.String("booking_id", booking.ID.String()),
		slog.String("slot_id", booking.SlotID.String()),
	)

	return booking, nil
}

func (s *BookingService) GetBooking(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	return s.bookingRepo.GetByID(ctx, id)
}

func (s *BookingService) ListBookings(ctx context.Context, filter domain.BookingFilter) ([]domain.Booking, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown booking status %q", domain.ErrValidation, filter.Status)
	}
	return s.bookingRepo.List(ctx, filter)
}

// AuditConsistency lists slots whose availability flag disagrees with their
// bookings. It reports only; the flag is never repaired here.
func (s *BookingService) AuditConsistency(ctx context.Context) ([]uuid.UUID, error) {
	ids, err := s.slotRepo.ListDivergent(ctx)
	if err != nil {
		return nil, err
	}

	for _, id := range ids {
		s.log.Warn("slot availability diverged from bookings", slog.String("slot_id", id.String()))
	}

	return ids, nil
}
