package events

import "time"

const MovementTopic = "hostel.movement.v1"

const (
	MovementCheckedOut = "movement.checked_out"
	MovementCheckedIn  = "movement.checked_in"
)

// MovementEvent is published whenever a resident leaves or returns. The
// stream feeds downstream systems (gate displays, registers); nothing in
// this service consumes it.
type MovementEvent struct {
	EventType  string    `json:"event_type"`
	LogID      string    `json:"log_id"`
	UserID     string    `json:"user_id"`
	Reason     string    `json:"reason,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}
