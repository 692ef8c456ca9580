package attendancetype

import (
	"time"

	"github.com/google/uuid"
)

// Attendance types. General is self-reported by students; the rest are
// posted by wards with photo evidence.
const (
	TypeGeneral       = "general"
	TypeMorningStudy  = "morning_study"
	TypeEveningPrayer = "evening_prayer"
	TypeNightStudy    = "night_study"
)

// Verification statuses.
const (
	StatusPending   = "pending"
	StatusVerified  = "verified"
	StatusDismissed = "dismissed"
)

// Roles recorded as the poster of a record.
const (
	PostedByStudent = "student"
	PostedByWard    = "ward"
)

type TypedAttendance struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID       uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:uq_typed_attendances_user_date_type" json:"user_id"`
	Date         time.Time  `gorm:"not null;uniqueIndex:uq_typed_attendances_user_date_type" json:"date"`
	Type         string     `gorm:"type:varchar(32);not null;uniqueIndex:uq_typed_attendances_user_date_type" json:"type"`
	Photo        *string    `gorm:"type:text" json:"photo,omitempty"`
	Status       string     `gorm:"type:varchar(16);not null;default:'pending'" json:"status"`
	VerifiedBy   *uuid.UUID `gorm:"type:uuid" json:"verified_by,omitempty"`
	PostedByRole string     `gorm:"type:varchar(16);not null" json:"posted_by_role"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`

	User *UserRef `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (TypedAttendance) TableName() string {
	return "typed_attendances"
}

// UserRef is a slim projection of users for admin listings.
type UserRef struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Role  string    `json:"role"`
}

func (UserRef) TableName() string {
	return "users"
}

// wardTypes are the attendance types a ward may post. General is excluded:
// students mark it themselves.
var wardTypes = map[string]bool{
	TypeMorningStudy:  true,
	TypeEveningPrayer: true,
	TypeNightStudy:    true,
}

func IsWardType(t string) bool {
	return wardTypes[t]
}
