package events

import "time"

// Event defines the contract for all system events. The publisher serializes
// Payload as the message body and carries EventType and Timestamp as message
// metadata.
type Event interface {
	// EventType returns the unique code for this event (e.g., "SURVEY_COMPLETED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}
