package dto

import "time"

type StartSurveyRequest struct {
	ChatId         string `json:"chat_id" validate:"required"`
	DisplayName    string `json:"display_name,omitempty"`
	ConfirmRestart bool   `json:"confirm_restart,omitempty"`
}

// Text is deliberately not required: an empty answer is a conversational
// turn the survey rejects with a re-prompt, not a malformed request.
type SubmitAnswerRequest struct {
	ChatId string `json:"chat_id" validate:"required"`
	Text   string `json:"text"`
}

type CancelSurveyRequest struct {
	ChatId string `json:"chat_id" validate:"required"`
}

// SurveyTurnResponse is the single shape every conversational turn returns.
// Status tells the caller what happened; the optional fields are filled
// depending on it.
type SurveyTurnResponse struct {
	Status       string           `json:"status"`
	NextPrompt   string           `json:"next_prompt,omitempty"`
	RejectReason string           `json:"reject_reason,omitempty"`
	Profile      *ProfileResponse `json:"profile,omitempty"`
}

type SurveyStatusResponse struct {
	ChatId        string `json:"chat_id"`
	InProgress    bool   `json:"in_progress"`
	Phase         string `json:"phase,omitempty"`
	QuestionIndex int    `json:"question_index,omitempty"`
	Answered      int    `json:"answered"`
	Total         int    `json:"total"`
	HasProfile    bool   `json:"has_profile"`
}

type ProfileResponse struct {
	ChatId       string             `json:"chat_id"`
	Scores       map[string]float64 `json:"scores"`
	TopStrengths []string           `json:"top_strengths"`
	Narrative    *string            `json:"narrative,omitempty"`
	CompletedAt  time.Time          `json:"completed_at"`
}
