package storage

import "time"

// Event is one completed conversation turn: the user's utterance and the
// assistant's reply, with the emotional outcome of the turn. Events are
// appended in chronological order.
type Event struct {
	Timestamp         time.Time `json:"timestamp"`
	SessionID         string    `json:"session_id"`
	VehicleID         string    `json:"vehicle_id"`
	UserMessage       string    `json:"user_message"`
	AssistantResponse string    `json:"assistant_response"`
	FrustrationScore  int       `json:"frustration_score"`
	Escalated         bool      `json:"escalated"`
}

// Recorder abstracts persistence of interaction events for audit and
// analytics. Implementations must be safe for concurrent use.
type Recorder interface {
	AppendInteraction(event Event) error
	LoadInteractions() ([]Event, error)
}
