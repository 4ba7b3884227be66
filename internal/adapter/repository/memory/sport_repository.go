package memory

import (
	"context"
	"fmt"
	"strings"

	"github.com/srgjo27/venue_booking/internal/core/domain"
)

type SportRepository struct {
	store *Store
}

func (r *SportRepository) ExistsBySportID(_ context.Context, sportID string) (bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, sp := range r.store.sports {
		if sp.SportID == sportID {
			return true, nil
		}
	}
	return false, nil
}

func (r *SportRepository) Create(_ context.Context, sport *domain.Sport) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, sp := range r.store.sports {
		if sp.SportID == sport.SportID || strings.EqualFold(sp.SportName, sport.SportName) {
			return fmt.Errorf("%w: sport %s already exists", domain.ErrConflict, sport.SportID)
		}
	}

	r.store.nextSportID++
	sport.ID = r.store.nextSportID
	r.store.sports = append(r.store.sports, *sport)
	return nil
}

func (r *SportRepository) FindByName(_ context.Context, name string) (*domain.Sport, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, sp := range r.store.sports {
		if strings.EqualFold(sp.SportName, name) {
			out := sp
			return &out, nil
		}
	}
	return nil, domain.ErrSportNotFound
}

func (r *SportRepository) List(_ context.Context) ([]domain.Sport, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]domain.Sport, len(r.store.sports))
	copy(out, r.store.sports)
	return out, nil
}
