package services

import "github.com/google/uuid"

func slotLockKey(id uuid.UUID) string {
	return "slot:" + id.String()
}

func venueLockKey(id uuid.UUID) string {
	return "venue:" + id.String()
}
