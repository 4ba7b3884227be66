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

type SlotService struct {
	slotRepo  ports.SlotRepository
	venueRepo ports.VenueRepository
	locks     ports.LockManager
	log       *slog.Logger
	now       func() time.Time
}

func NewSlotService(
	slotRepo ports.SlotRepository,
	venueRepo ports.VenueRepository,
	locks ports.LockManager,
	log *slog.Logger,
) *SlotService {
	return &SlotService{
		slotRepo:  slotRepo,
		venueRepo: venueRepo,
		locks:     locks,
		log:       log,
		now:       time.Now,
	}
}

// CreateSlot holds the venue lock across the existence check, the overlap
// check and the insert.
func (s *SlotService) CreateSlot(ctx context.Context, venueID uuid.UUID, start, end time.Time) (*domain.TimeSlot, error) {
	release, err := s.locks.Acquire(ctx, venueLockKey(venueID))
	if err != nil {
		return nil, fmt.Errorf("lock venue %s: %w", venueID, err)
	}

	defer release()

	if _, err := s.venueRepo.GetByID(ctx, venueID); err != nil {
		return nil, err
	}

	slot, err := domain.NewTimeSlot(venueID, start.UTC(), end.UTC(), s.now().UTC())
	if err != nil {
		return nil, err
	}

	if err := s.slotRepo.CreateWithNoOverlap(ctx, slot); err != nil {
		return nil, err
	}

	s.log.Info("time slot created",
		slog.String("slot_id", slot.ID.String()),
		slog.String("venue_id", venueID.String()),
		slog.Time("start_time", slot.StartTime),
		slog.Time("end_time", slot.EndTime),
	)

	return slot, nil
}

func (s *SlotService) GetSlot(ctx context.Context, id uuid.UUID) (*domain.TimeSlot, error) {
	return s.slotRepo.GetByID(ctx, id)
}

func (s *SlotService) ListSlotsByVenue(ctx context.Context, venueID uuid.UUID) ([]domain.TimeSlot, error) {
	if _, err := s.venueRepo.GetByID(ctx, venueID); err != nil {
		return nil, err
	}
	return s.slotRepo.ListByVenue(ctx, venueID)
}

func (s *SlotService) ListAvailableSlots(ctx context.Context, sportID string, from, to time.Time) ([]domain.TimeSlot, error) {
	if to.Before(from) {
		return nil, fmt.Errorf("%w: range end is before its start", domain.ErrInvalidRange)
	}
	return s.slotRepo.ListAvailableInRange(ctx, sportID, from.UTC(), to.UTC())
}
