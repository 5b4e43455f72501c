package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type StrengthProfile struct {
	Id           uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId       uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex"`
	Scores       datatypes.JSON `gorm:"not null"`
	TopStrengths datatypes.JSON `gorm:"not null"`
	Narrative    *string        `gorm:"type:text"`
	CompletedAt  time.Time      `gorm:"not null"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime"`
}

func (StrengthProfile) TableName() string {
	return "strength_profiles"
}
