package mealattendance

import (
	"time"

	"github.com/google/uuid"
)

type MealAttendance struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID    uuid.UUID `gorm:"column:user_id;type:uuid;not null;uniqueIndex:uq_meal_attendances_user_date"`
	Date      time.Time `gorm:"column:date;type:date;not null;uniqueIndex:uq_meal_attendances_user_date"`
	Breakfast bool      `gorm:"column:breakfast;not null;default:false"`
	Lunch     bool      `gorm:"column:lunch;not null;default:false"`
	Dinner    bool      `gorm:"column:dinner;not null;default:false"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
	User      *UserRef  `gorm:"foreignKey:UserID;references:ID"`
}

func (MealAttendance) TableName() string {
	return "meal_attendances"
}

// UserRef is the slim identity join used by the daily stats view.
type UserRef struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name          string    `gorm:"column:name"`
	Email         string    `gorm:"column:email"`
	ContactNumber string    `gorm:"column:contact_number"`
	ProfileImage  *string   `gorm:"column:profile_image"`
}

func (UserRef) TableName() string {
	return "users"
}
