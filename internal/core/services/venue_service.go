package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/srgjo27/venue_booking/internal/core/domain"
	"github.com/srgjo27/venue_booking/internal/core/ports"
)

type CreateVenueRequest struct {
	Name      string
	Location  string
	SportName string
}

type VenueService struct {
	venueRepo ports.VenueRepository
	sportRepo ports.SportRepository
	locks     ports.LockManager
	log       *slog.Logger
	now       func() time.Time
}

func NewVenueService(
	venueRepo ports.VenueRepository,
	sportRepo ports.SportRepository,
	locks ports.LockManager,
	log *slog.Logger,
) *VenueService {
	return &VenueService{
		venueRepo: venueRepo,
		sportRepo: sportRepo,
		locks:     locks,
		log:       log,
		now:       time.Now,
	}
}

func (s *VenueService) CreateVenue(ctx context.Context, req CreateVenueRequest) (*domain.Venue, error) {
	name := strings.TrimSpace(req.Name)
	location := strings.TrimSpace(req.Location)
	if name == "" || location == "" {
		return nil, fmt.Errorf("%w: venue name and location are required", domain.ErrValidation)
	}

	sport, err := s.resolveSport(ctx, req.SportName)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	venue := &domain.Venue{
		ID:        uuid.New(),
		Name:      name,
		Location:  location,
		SportID:   sport.SportID,
		SportName: sport.SportName,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.venueRepo.Create(ctx, venue); err != nil {
		return nil, err
	}

	s.log.Info("venue created",
		slog.String("venue_id", venue.ID.String()),
		slog.String("sport_id", venue.SportID),
	)

	return venue, nil
}

func (s *VenueService) GetVenue(ctx context.Context, id uuid.UUID) (*domain.Venue, error) {
	return s.venueRepo.GetByID(ctx, id)
}

func (s *VenueService) ListVenues(ctx context.Context) ([]domain.Venue, error) {
	return s.venueRepo.List(ctx)
}

func (s *VenueService) ListAvailableVenues(ctx context.Context) ([]domain.Venue, error) {
	return s.venueRepo.ListWithAvailableSlots(ctx)
}

// DeleteVenue takes the venue lock so no slot creation for the venue runs
// while its slots and bookings are removed.
func (s *VenueService) DeleteVenue(ctx context.Context, id uuid.UUID) error {
	release, err := s.locks.Acquire(ctx, venueLockKey(id))
	if err != nil {
		return fmt.Errorf("lock venue %s: %w", id, err)
	}

	defer release()

	if err := s.venueRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.log.Info("venue deleted", slog.String("venue_id", id.String()))
	return nil
}

func (s *VenueService) resolveSport(ctx context.Context, name string) (*domain.Sport, error) {
	sport, err := s.sportRepo.FindByName(ctx, strings.TrimSpace(name))
	if err == nil {
		return sport, nil
	}

	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	sports, listErr := s.sportRepo.List(ctx)
	if listErr != nil {
		return nil, err
	}

	names := make([]string, 0, len(sports))
	for _, sp := range sports {
		names = append(names, sp.SportName)
	}

	return nil, fmt.Errorf("%w: invalid sport %q, please select from available sports: [%s]",
		domain.ErrSportNotFound, name, strings.Join(names, ", "))
}
