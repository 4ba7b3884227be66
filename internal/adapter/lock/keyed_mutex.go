package lock

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/srgjo27/venue_booking/internal/core/domain"
)

// KeyedMutex is an in-process LockManager with one exclusive lock per key.
// Entries exist only while a caller holds or waits for them.
type KeyedMutex struct {
	mu    sync.Mutex
	locks map[string]*keyLock
	wait  time.Duration
}

type keyLock struct {
	sem  chan struct{}
	refs int
}

func NewKeyedMutex(wait time.Duration) *KeyedMutex {
	return &KeyedMutex{
		locks: make(map[string]*keyLock),
		wait:  wait,
	}
}

func (m *KeyedMutex) Acquire(ctx context.Context, key string) (func(), error) {
	l := m.ref(key)

	timer := time.NewTimer(m.wait)
	defer timer.Stop()

	select {
	case l.sem <- struct{}{}:
	case <-timer.C:
		m.unref(key, l)
		return nil, fmt.Errorf("%w: %s", domain.ErrLockTimeout, key)
	case <-ctx.Done():
		m.unref(key, l)
		return nil, ctx.Err()
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			<-l.sem
			m.unref(key, l)
		})
	}, nil
}

// Len returns the number of keys currently held or waited on.
func (m *KeyedMutex) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.locks)
}

func (m *KeyedMutex) ref(key string) *keyLock {
	m.mu.Lock()
	defer m.mu.Unlock()

	l, ok := m.locks[key]
	if !ok {
		l = &keyLock{sem: make(chan struct{}, 1)}
		m.locks[key] = l
	}
	l.refs++
	return l
}

func (m *KeyedMutex) unref(key string, l *keyLock) {
	m.mu.Lock()
	defer m.mu.Unlock()

	l.refs--
	if l.refs == 0 {
		delete(m.locks, key)
	}
}
