package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ByChatID filters users on the transport-assigned chat identifier.
type ByChatID struct {
	ChatID string
}

func (s ByChatID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("chat_id = ?", s.ChatID)
}

// OwnedByUser filters answer, profile and reminder rows by their owner.
type OwnedByUser struct {
	UserID uuid.UUID
}

func (s OwnedByUser) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("user_id = ?", s.UserID)
}

// ByQuestionID filters answers on their catalog question.
type ByQuestionID struct {
	QuestionID string
}

func (s ByQuestionID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("question_id = ?", s.QuestionID)
}

// ActiveReminders keeps only enabled reminder settings.
type ActiveReminders struct{}

func (s ActiveReminders) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("active = ?", true)
}
