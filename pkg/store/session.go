package store

// SurveySession is the transient per-user progress marker through the
// questionnaire. It lives only in the in-memory session repository: a new
// attempt overwrites it, completion or cancellation removes it, and it is
// never archived.
type SurveySession struct {
	ChatID string `json:"chat_id"`
	Phase  string `json:"phase"` // PhaseDemographic | PhaseScored
	Index  int    `json:"index"` // next question within the current phase
}

const (
	PhaseDemographic = "DEMOGRAPHIC"
	PhaseScored      = "SCORED"
)
