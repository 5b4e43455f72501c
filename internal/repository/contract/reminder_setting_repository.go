package contract

import (
	"context"

	"strength-coach-be/internal/entity"

	"github.com/google/uuid"
)

type ReminderSettingRepository interface {
	// Upsert creates or replaces the user's single reminder configuration.
	Upsert(ctx context.Context, setting *entity.ReminderSetting) error

	// FindByUser returns (nil, nil) when the user never enabled reminders.
	FindByUser(ctx context.Context, userID uuid.UUID) (*entity.ReminderSetting, error)

	// FindAllActive lists enabled settings; the scheduler rebuilds its
	// in-memory trigger registry from this at startup.
	FindAllActive(ctx context.Context) ([]*entity.ReminderSetting, error)

	DeleteByUser(ctx context.Context, userID uuid.UUID) error
}
