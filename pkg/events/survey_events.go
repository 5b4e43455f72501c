package events

import "time"

const TypeSurveyCompleted = "SURVEY_COMPLETED"

// SurveyCompleted is published on the in-process bus when a user reaches the
// terminal survey state and a profile has been stored.
type SurveyCompleted struct {
	ChatID       string             `json:"chat_id"`
	DisplayName  string             `json:"display_name"`
	TopStrengths []string           `json:"top_strengths"`
	Scores       map[string]float64 `json:"scores"`
	CompletedAt  time.Time          `json:"completed_at"`
}

func (e SurveyCompleted) EventType() string {
	return TypeSurveyCompleted
}

func (e SurveyCompleted) Payload() map[string]interface{} {
	return map[string]interface{}{
		"chat_id":       e.ChatID,
		"display_name":  e.DisplayName,
		"top_strengths": e.TopStrengths,
		"scores":        e.Scores,
		"completed_at":  e.CompletedAt,
	}
}

func (e SurveyCompleted) Timestamp() time.Time {
	return e.CompletedAt
}
