package model

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ChatId      string    `gorm:"type:varchar(128);not null;uniqueIndex"`
	DisplayName string    `gorm:"type:varchar(255)"`
	Email       *string   `gorm:"type:varchar(255)"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

func (User) TableName() string {
	return "users"
}
