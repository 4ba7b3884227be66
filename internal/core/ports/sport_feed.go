package ports

import (
	"context"

	"github.com/srgjo27/venue_booking/internal/core/domain"
)

type SportFeed interface {
	FetchSports(ctx context.Context) ([]domain.Sport, error)
}
