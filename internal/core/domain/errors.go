package domain

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by the core wraps exactly one of these.
var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidRange = errors.New("invalid range")
	ErrOverlap      = errors.New("overlap")
	ErrConflict     = errors.New("conflict")
	ErrBusy         = errors.New("busy")
	ErrStorage      = errors.New("storage failure")
	ErrValidation   = errors.New("validation error")
)

var (
	ErrVenueNotFound   = fmt.Errorf("venue %w", ErrNotFound)
	ErrSlotNotFound    = fmt.Errorf("time slot %w", ErrNotFound)
	ErrBookingNotFound = fmt.Errorf("booking %w", ErrNotFound)
	ErrSportNotFound   = fmt.Errorf("sport %w", ErrNotFound)
)

var (
	ErrSlotEndBeforeStart = fmt.Errorf("%w: end time must be after start time", ErrInvalidRange)
	ErrSlotOverlap        = fmt.Errorf("%w: time slot overlaps with existing slot for this venue", ErrOverlap)
)

var (
	ErrSlotNotAvailable        = fmt.Errorf("%w: time slot is not available for booking", ErrConflict)
	ErrSlotAlreadyBooked       = fmt.Errorf("%w: time slot is already booked", ErrConflict)
	ErrBookingAlreadyCancelled = fmt.Errorf("%w: booking is already cancelled", ErrConflict)
)

var ErrLockTimeout = fmt.Errorf("%w: lock not acquired in time", ErrBusy)

// StorageError marks err as a persistence failure of op. Errors that already
// carry a domain kind are returned as is.
func StorageError(op string, err error) error {
	if err == nil {
		return nil
	}
	if IsKnown(err) {
		return err
	}
	return fmt.Errorf("%w: %s: %w", ErrStorage, op, err)
}

// IsKnown reports whether err wraps one of the error kinds.
func IsKnown(err error) bool {
	for _, kind := range []error{ErrNotFound, ErrInvalidRange, ErrOverlap, ErrConflict, ErrBusy, ErrStorage, ErrValidation} {
		if errors.Is(err, kind) {
			return true
		}
	}
	return false
}
