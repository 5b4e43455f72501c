package model

import (
	"time"

	"github.com/google/uuid"
)

// Answer rows are unique per (user_id, question_id); writes go through an
// upsert so a corrected answer replaces the previous value in place.
type Answer struct {
	Id         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_answers_user_question,priority:1"`
	QuestionId string    `gorm:"type:varchar(64);not null;uniqueIndex:idx_answers_user_question,priority:2"`
	Value      string    `gorm:"type:text;not null"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime"`
}

func (Answer) TableName() string {
	return "answers"
}
