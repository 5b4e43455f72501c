package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type ReminderSetting struct {
	Id        uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId    uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex"`
	TimeOfDay string         `gorm:"type:varchar(5);not null"`
	Weekdays  datatypes.JSON `gorm:"not null"`
	Active    bool           `gorm:"not null;default:false;index"`
	CreatedAt time.Time      `gorm:"autoCreateTime"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
}

func (ReminderSetting) TableName() string {
	return "reminder_settings"
}
