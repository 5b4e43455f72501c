package constant

// Turn statuses returned to the chat-transport gateway. The gateway switches
// on these; they are part of the API contract, not internal state names.
const (
	TurnStatusPrompt          = "prompt"
	TurnStatusCompleted       = "completed"
	TurnStatusRejected        = "rejected"
	TurnStatusNoActiveSurvey  = "no_active_survey"
	TurnStatusConfirmRequired = "confirm_required"
	TurnStatusCancelled       = "cancelled"
)

const (
	MsgNoActiveSurvey = "You have no survey in progress. Send /start to begin the strength assessment."
	MsgConfirmRestart = "You already completed the assessment. Starting over will replace your current profile. Confirm to continue."
	MsgCancelled      = "Okay, I stopped the assessment. Your answers so far are kept; start again whenever you like."

	MsgScaleExplanation = "Great, that's the basics done! Next come statements about you. " +
		"Rate each from 1 to 5: 1 means \"not like me at all\", 5 means \"exactly like me\"."

	MsgInvalidScaleAnswer = "Please reply with a single number from 1 to 5."
	MsgEmptyAnswer        = "Please type an answer."
)

// Event topics on the in-process bus.
const (
	TopicSurveyCompleted = "survey.completed"
)
