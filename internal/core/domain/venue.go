package domain

import (
	"time"

	"github.com/google/uuid"
)

type Venue struct {
	ID        uuid.UUID
	Name      string
	Location  string
	SportID   string
	SportName string
	CreatedAt time.Time
	UpdatedAt time.Time

	// AvailableSlots is computed on read.
	AvailableSlots int
}

type Sport struct {
	ID        int64
	SportID   string
	SportCode string
	SportName string
	CreatedAt time.Time
}
