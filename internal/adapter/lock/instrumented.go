package lock

import (
	"context"
	"time"

	"github.com/srgjo27/venue_booking/internal/core/ports"
)

type waitTracker interface {
	TrackLockWait(key string, waited time.Duration, err error)
}

// Instrumented reports acquisition wait times of the wrapped LockManager.
type Instrumented struct {
	next    ports.LockManager
	tracker waitTracker
}

func NewInstrumented(next ports.LockManager, tracker waitTracker) *Instrumented {
	return &Instrumented{next: next, tracker: tracker}
}

func (i *Instrumented) Acquire(ctx context.Context, key string) (func(), error) {
	start := time.Now()
	release, err := i.next.Acquire(ctx, key)
	i.tracker.TrackLockWait(key, time.Since(start), err)
	return release, err
}
