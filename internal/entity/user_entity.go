package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is created on first interaction with the bot. ChatId is the opaque
// identifier handed to us by the chat transport.
type User struct {
	Id          uuid.UUID
	ChatId      string
	DisplayName string
	Email       *string
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}
