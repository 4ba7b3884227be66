package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var errTransient = errors.New("transient")

func isTransient(err error) bool { return errors.Is(err, errTransient) }

func TestDo_SucceedsAfterRetries(t *testing.T) {
	s := Strategy{Attempts: 3, Delay: time.Millisecond}

	calls := 0
	err := s.Do(context.Background(), isTransient, func() error {
		calls++
		if calls < 3 {
			return errTransient
		}
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestDo_GivesUpWithLastError(t *testing.T) {
	s := Strategy{Attempts: 2, Delay: time.Millisecond, MaxDelay: time.Millisecond}

	calls := 0
	err := s.Do(context.Background(), isTransient, func() error {
		calls++
		return errTransient
	})

	assert.ErrorIs(t, err, errTransient)
	assert.Equal(t, 2, calls)
}

func TestDo_SingleAttempt(t *testing.T) {
	s := Strategy{Attempts: 0, Delay: time.Millisecond}

	calls := 0
	err := s.Do(context.Background(), isTransient, func() error {
		calls++
		return errTransient
	})

	assert.ErrorIs(t, err, errTransient)
	assert.Equal(t, 1, calls)
}

func TestDo_PermanentErrorNotRetried(t *testing.T) {
	s := Strategy{Attempts: 5, Delay: time.Millisecond}
	permanent := errors.New("permanent")

	calls := 0
	err := s.Do(context.Background(), isTransient, func() error {
		calls++
		return permanent
	})

	assert.ErrorIs(t, err, permanent)
	assert.Equal(t, 1, calls)
}

func TestDo_StopsWaitingOnCancel(t *testing.T) {
	s := Strategy{Attempts: 5, Delay: time.Hour}
	ctx, cancel := context.WithCancel(context.Background())

	calls := 0
	err := s.Do(ctx, isTransient, func() error {
		calls++
		cancel()
		return errTransient
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)
}
