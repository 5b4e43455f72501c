package contract

import (
	"context"

	"strength-coach-be/internal/entity"
	"strength-coach-be/internal/repository/specification"

	"github.com/google/uuid"
)

type AnswerRepository interface {
	// Upsert writes the answer for (user, question); a second write for the
	// same pair replaces the stored value instead of adding a row.
	Upsert(ctx context.Context, answer *entity.Answer) error

	// FindAllByUser returns a user's answers in insertion order.
	FindAllByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Answer, error)

	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Answer, error)

	// DeleteAllByUser wipes every answer of a user. Used on survey restart
	// and on profile reset.
	DeleteAllByUser(ctx context.Context, userID uuid.UUID) error
}
