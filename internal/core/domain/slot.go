package domain

import (
	"time"

	"github.com/google/uuid"
)

type TimeSlot struct {
	ID        uuid.UUID
	VenueID   uuid.UUID
	StartTime time.Time
	EndTime   time.Time
	Available bool
	CreatedAt time.Time
}

func NewTimeSlot(venueID uuid.UUID, start, end time.Time, now time.Time) (*TimeSlot, error) {
	if !end.After(start) {
		return nil, ErrSlotEndBeforeStart
	}
	return &TimeSlot{
		ID:        uuid.New(),
		VenueID:   venueID,
		StartTime: start,
		EndTime:   end,
		Available: true,
		CreatedAt: now,
	}, nil
}

// Overlaps uses half-open intervals: a slot ending at 11:00 does not overlap
// one starting at 11:00.
func (s *TimeSlot) Overlaps(start, end time.Time) bool {
	return s.StartTime.Before(end) && s.EndTime.After(start)
}

// Within reports whether the slot lies inside [from, to], both ends inclusive.
func (s *TimeSlot) Within(from, to time.Time) bool {
	return !s.StartTime.Before(from) && !s.EndTime.After(to)
}

func (s *TimeSlot) Snapshot() *TimeSlot {
	cp := *s
	return &cp
}
