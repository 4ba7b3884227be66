package ports

import "context"

// LockManager hands out exclusive locks scoped to a key. Acquire waits a
// bounded time and fails with domain.ErrBusy when the lock stays taken.
// The returned release func is safe to call more than once.
type LockManager interface {
	Acquire(ctx context.Context, key string) (release func(), err error)
}
