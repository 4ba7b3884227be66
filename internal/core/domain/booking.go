package domain

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingConfirmed BookingStatus = "CONFIRMED"
	BookingCancelled BookingStatus = "CANCELLED"
)

func (s BookingStatus) Valid() bool {
	return s == BookingConfirmed || s == BookingCancelled
}

type Customer struct {
	Name  string
	Email string
	Phone string
}

type Booking struct {
	ID          uuid.UUID
	SlotID      uuid.UUID
	Customer    Customer
	Status      BookingStatus
	CreatedAt   time.Time
	CancelledAt *time.Time
	// Slot is a snapshot of the booked slot taken when the booking was read.
	Slot *TimeSlot
}

func (b *Booking) IsConfirmed() bool {
	return b.Status == BookingConfirmed
}

// Cancel moves a confirmed booking to its terminal state. Cancelling twice is
// a caller error.
func (b *Booking) Cancel(at time.Time) error {
	if b.Status == BookingCancelled {
		return ErrBookingAlreadyCancelled
	}
	b.Status = BookingCancelled
	b.CancelledAt = &at
	return nil
}

type BookingFilter struct {
	Email  string
	Status BookingStatus
}

func (f BookingFilter) Match(b *Booking) bool {
	if f.Email != "" && f.Email != b.Customer.Email {
		return false
	}
	if f.Status != "" && f.Status != b.Status {
		return false
	}
	return true
}
