package contract

import (
	"context"

	"strength-coach-be/internal/entity"

	"github.com/google/uuid"
)

type StrengthProfileRepository interface {
	// Upsert replaces the user's profile wholesale; there is at most one
	// profile row per user and completions never merge into an old one.
	Upsert(ctx context.Context, profile *entity.StrengthProfile) error

	// FindByUser returns (nil, nil) when the user has no profile yet.
	FindByUser(ctx context.Context, userID uuid.UUID) (*entity.StrengthProfile, error)

	DeleteByUser(ctx context.Context, userID uuid.UUID) error
}
