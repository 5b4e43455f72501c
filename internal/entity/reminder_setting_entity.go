package entity

import (
	"time"

	"github.com/google/uuid"
)

// ReminderSetting is the durable per-user reminder configuration. A user has
// at most one; disable flips Active instead of deleting the row, so the
// previous schedule survives a later re-enable.
type ReminderSetting struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	TimeOfDay string   // "HH:MM", 24h
	Weekdays  []string // "MON".."SUN", normalized week order
	Active    bool
	CreatedAt time.Time
	UpdatedAt *time.Time
}
