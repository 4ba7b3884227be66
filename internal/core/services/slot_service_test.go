package services_test

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/srgjo27/venue_booking/internal/core/domain"
	"github.com/srgjo27/venue_booking/internal/core/ports/mocks"
	"github.com/srgjo27/venue_booking/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateSlot(t *testing.T) {
	e := newEngine(t)
	ctx := context.Background()
	v := e.venue(t)

	tests := []struct {
		name    string
		start   int
		end     int
		wantErr error
	}{
		{name: "first slot", start: 10, end: 12},
		{name: "adjacent before", start: 8, end: 10},
		{name: "adjacent after", start: 12, end: 13},
		{name: "inside existing", start: 10, end: 11, wantErr: domain.ErrOverlap},
		{name: "straddles two", start: 9, end: 11, wantErr: domain.ErrOverlap},
		{name: "end equals start", start: 14, end: 14, wantErr: domain.ErrInvalidRange},
		{name: "end before start", start: 16, end: 15, wantErr: domain.ErrInvalidRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slot, err := e.slots.CreateSlot(ctx, v.ID, hour(tt.start), hour(tt.end))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, slot)
				return
			}
			require.NoError(t, err)
			assert.True(t, slot.Available)
			assert.Equal(t, v.ID, slot.VenueID)
		})
	}

	slots, err := e.slots.ListSlotsByVenue(ctx, v.ID)
	require.NoError(t, err)
	assert.Len(t, slots, 3)
}

func TestCreateSlot_UnknownVenue(t *testing.T) {
	e := newEngine(t)

	_, err := e.slots.CreateSlot(context.Background(), uuid.New(), hour(10), hour(11))
	assert.ErrorIs(t, err, domain.ErrVenueNotFound)
}

func TestCreateSlot_ConcurrentOverlapsOneWins(t *testing.T) {
	e := newEngine(t)
	ctx := context.Background()
	v := e.venue(t)

	const callers = 10
	var wg sync.WaitGroup
	errs := make([]error, callers)

	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			// Every candidate covers 10:00-11:00.
			_, errs[i] = e.slots.CreateSlot(ctx, v.ID, hour(9+i%2), hour(11+i%2))
		}(i)
	}
	wg.Wait()

	created := 0
	for _, err := range errs {
		if err == nil {
			created++
			continue
		}
		assert.ErrorIs(t, err, domain.ErrOverlap)
	}
	assert.Equal(t, 1, created)
}

func TestCreateSlot_LockBusy(t *testing.T) {
	slotRepo := mocks.NewSlotRepository(t)
	venueRepo := mocks.NewVenueRepository(t)
	locks := mocks.NewLockManager(t)

	svc := services.NewSlotService(slotRepo, venueRepo, locks, discardLogger())

	venueID := uuid.New()
	locks.On("Acquire", mock.Anything, "venue:"+venueID.String()).Return(nil, domain.ErrLockTimeout)

	_, err := svc.CreateSlot(context.Background(), venueID, hour(10), hour(11))
	assert.ErrorIs(t, err, domain.ErrBusy)
}

func TestListSlotsByVenue_UnknownVenue(t *testing.T) {
	e := newEngine(t)

	_, err := e.slots.ListSlotsByVenue(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListAvailableSlots(t *testing.T) {
	e := newEngine(t)
	ctx := context.Background()
	v := e.venue(t)

	morning, err := e.slots.CreateSlot(ctx, v.ID, hour(8), hour(9))
	require.NoError(t, err)
	noon, err := e.slots.CreateSlot(ctx, v.ID, hour(12), hour(13))
	require.NoError(t, err)
	_, err = e.slots.CreateSlot(ctx, v.ID, hour(20), hour(21))
	require.NoError(t, err)

	_, err = e.bookings.CreateBooking(ctx, services.CreateBookingRequest{SlotID: morning.ID})
	require.NoError(t, err)

	got, err := e.slots.ListAvailableSlots(ctx, v.SportID, hour(8), hour(13))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, noon.ID, got[0].ID)

	got, err = e.slots.ListAvailableSlots(ctx, "999", hour(0), hour(23))
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = e.slots.ListAvailableSlots(ctx, v.SportID, hour(13), hour(8))
	assert.ErrorIs(t, err, domain.ErrInvalidRange)
}
