package dto

type EnableReminderRequest struct {
	ChatId    string   `json:"chat_id" validate:"required"`
	TimeOfDay string   `json:"time_of_day,omitempty"`
	Weekdays  []string `json:"weekdays,omitempty" validate:"omitempty,dive,required"`
}

type DisableReminderRequest struct {
	ChatId string `json:"chat_id" validate:"required"`
}

// ReconfigureReminderRequest changes the schedule of an already enabled
// reminder. At least one of the two fields must be set; the service keeps
// the stored value for the one left empty.
type ReconfigureReminderRequest struct {
	ChatId    string   `json:"chat_id" validate:"required"`
	TimeOfDay string   `json:"time_of_day,omitempty"`
	Weekdays  []string `json:"weekdays,omitempty" validate:"omitempty,dive,required"`
}

type ReminderStatusResponse struct {
	ChatId    string   `json:"chat_id"`
	Active    bool     `json:"active"`
	TimeOfDay string   `json:"time_of_day,omitempty"`
	Weekdays  []string `json:"weekdays,omitempty"`
}
