package entity

import (
	"time"

	"github.com/google/uuid"
)

// StrengthProfile is the scoring engine's output for one user. It is
// overwritten wholesale on every survey completion, never merged.
// Narrative is nil when the generation collaborator failed or timed out.
type StrengthProfile struct {
	Id           uuid.UUID
	UserId       uuid.UUID
	Scores       map[string]float64
	TopStrengths []string
	Narrative    *string
	CompletedAt  time.Time
	UpdatedAt    *time.Time
}
