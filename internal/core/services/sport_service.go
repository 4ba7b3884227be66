package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/srgjo27/venue_booking/internal/core/domain"
	"github.com/srgjo27/venue_booking/internal/core/ports"
)

type SportService struct {
	sportRepo ports.SportRepository
	feed      ports.SportFeed
	log       *slog.Logger
	now       func() time.Time
}

func NewSportService(sportRepo ports.SportRepository, feed ports.SportFeed, log *slog.Logger) *SportService {
	return &SportService{
		sportRepo: sportRepo,
		feed:      feed,
		log:       log,
		now:       time.Now,
	}
}

// ImportSports fetches the external catalog and stores every sport not
// already known by its external id. It returns the number of new sports.
func (s *SportService) ImportSports(ctx context.Context) (int, error) {
	sports, err := s.feed.FetchSports(ctx)
	if err != nil {
		return 0, fmt.Errorf("fetch sports: %w", err)
	}

	imported := 0
	for i := range sports {
		sport := sports[i]

		exists, err := s.sportRepo.ExistsBySportID(ctx, sport.SportID)
		if err != nil {
			return imported, err
		}
		if exists {
			continue
		}

		sport.CreatedAt = s.now().UTC()
		if err := s.sportRepo.Create(ctx, &sport); err != nil {
			if errors.Is(err, domain.ErrConflict) {
				s.log.Warn("skipping duplicate sport", slog.String("sport_id", sport.SportID))
				continue
			}
			return imported, err
		}
		imported++
	}

	s.log.Info("sports imported",
		slog.Int("fetched", len(sports)),
		slog.Int("imported", imported),
	)

	return imported, nil
}

func (s *SportService) ListSports(ctx context.Context) ([]domain.Sport, error) {
	return s.sportRepo.List(ctx)
}
