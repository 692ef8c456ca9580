package events

import "time"

const VerificationTopic = "hostel.attendance.verification.v1"

const (
	AttendanceVerified  = "attendance.verified"
	AttendanceDismissed = "attendance.dismissed"
)

type VerificationEvent struct {
	EventType      string    `json:"event_type"`
	RecordID       string    `json:"record_id"`
	UserID         string    `json:"user_id"`
	AttendanceType string    `json:"attendance_type"`
	Status         string    `json:"status"`
	VerifiedBy     string    `json:"verified_by,omitempty"`
	OccurredAt     time.Time `json:"occurred_at"`
}
