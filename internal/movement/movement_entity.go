package movement

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusOut = "out"
	StatusIn  = "in"
)

// MovementLog records one leave/return cycle. The partial unique index on
// (user_id) where status = 'out' lets the database reject a second open
// checkout even when two requests race past the service-level check.
type MovementLog struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID    uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:uq_movement_logs_open,where:status = 'out'" json:"user_id"`
	Reason    string     `gorm:"type:text;not null" json:"reason"`
	Status    string     `gorm:"type:varchar(8);not null;default:'out'" json:"status"`
	OutTime   time.Time  `gorm:"not null" json:"out_time"`
	InTime    *time.Time `json:"in_time,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`

	User *UserRef `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (MovementLog) TableName() string {
	return "movement_logs"
}

// UserRef is a slim projection of users for the staff register view.
type UserRef struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	ContactNumber string    `json:"contact_number"`
	Role          string    `json:"role"`
	ProfileImage  *string   `json:"profile_image,omitempty"`
}

func (UserRef) TableName() string {
	return "users"
}
