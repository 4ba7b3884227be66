package lock

import (
	"context"
	"testing"
	"time"

	"github.com/srgjo27/venue_booking/internal/core/domain"
	"github.com/srgjo27/venue_booking/internal/core/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedWait struct {
	key string
	err error
}

type fakeTracker struct {
	waits []recordedWait
}

func (f *fakeTracker) TrackLockWait(key string, _ time.Duration, err error) {
	f.waits = append(f.waits, recordedWait{key: key, err: err})
}

func TestInstrumented_TracksEveryAcquire(t *testing.T) {
	next := mocks.NewLockManager(t)
	tracker := &fakeTracker{}
	locks := NewInstrumented(next, tracker)
	ctx := context.Background()

	released := false
	next.On("Acquire", ctx, "slot:1").Return(func() { released = true }, nil).Once()
	next.On("Acquire", ctx, "slot:2").Return(nil, domain.ErrLockTimeout).Once()

	release, err := locks.Acquire(ctx, "slot:1")
	require.NoError(t, err)
	release()
	assert.True(t, released)

	_, err = locks.Acquire(ctx, "slot:2")
	assert.ErrorIs(t, err, domain.ErrBusy)

	require.Len(t, tracker.waits, 2)
	assert.Equal(t, "slot:1", tracker.waits[0].key)
	assert.NoError(t, tracker.waits[0].err)
	assert.ErrorIs(t, tracker.waits[1].err, domain.ErrBusy)
}
