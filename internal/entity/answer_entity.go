package entity

import (
	"time"

	"github.com/google/uuid"
)

// Answer is one reply keyed by (user, question). A new answer for the same
// pair overwrites the previous one; there is no answer history.
type Answer struct {
	Id         uuid.UUID
	UserId     uuid.UUID
	QuestionId string
	Value      string
	CreatedAt  time.Time
	UpdatedAt  *time.Time
}
