package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/srgjo27/venue_booking/internal/adapter/repository/memory"
	"github.com/srgjo27/venue_booking/internal/core/domain"
	"github.com/srgjo27/venue_booking/internal/core/ports/mocks"
	"github.com/srgjo27/venue_booking/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestImportSports_SkipsKnown(t *testing.T) {
	store := memory.NewStore()
	feed := mocks.NewSportFeed(t)
	svc := services.NewSportService(store.Sports(), feed, discardLogger())
	ctx := context.Background()

	catalog := []domain.Sport{
		{SportID: "1", SportCode: "FTS", SportName: "Futsal"},
		{SportID: "2", SportCode: "BDM", SportName: "Badminton"},
	}
	feed.On("FetchSports", mock.Anything).Return(catalog, nil).Twice()

	n, err := svc.ImportSports(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = svc.ImportSports(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	sports, err := svc.ListSports(ctx)
	require.NoError(t, err)
	assert.Len(t, sports, 2)
}

func TestImportSports_FeedFailure(t *testing.T) {
	sportRepo := mocks.NewSportRepository(t)
	feed := mocks.NewSportFeed(t)
	svc := services.NewSportService(sportRepo, feed, discardLogger())

	feed.On("FetchSports", mock.Anything).Return(nil, errors.New("dial tcp: connection refused"))

	n, err := svc.ImportSports(context.Background())
	assert.Error(t, err)
	assert.Zero(t, n)
	sportRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestImportSports_StorageFailure(t *testing.T) {
	sportRepo := mocks.NewSportRepository(t)
	feed := mocks.NewSportFeed(t)
	svc := services.NewSportService(sportRepo, feed, discardLogger())

	feed.On("FetchSports", mock.Anything).Return([]domain.Sport{{SportID: "1", SportName: "Futsal"}}, nil)
	sportRepo.On("ExistsBySportID", mock.Anything, "1").Return(false, nil)
	sportRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Sport")).
		Return(domain.StorageError("insert sport", errors.New("disk full")))

	_, err := svc.ImportSports(context.Background())
	assert.ErrorIs(t, err, domain.ErrStorage)
}
