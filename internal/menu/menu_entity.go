package menu

import (
	"time"

	"github.com/google/uuid"
)

// Menu is the published meal plan for one day. One row per day.
type Menu struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Date      time.Time `gorm:"not null;uniqueIndex:uq_menus_date" json:"date"`
	Breakfast string    `gorm:"type:text" json:"breakfast"`
	Lunch     string    `gorm:"type:text" json:"lunch"`
	Dinner    string    `gorm:"type:text" json:"dinner"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Menu) TableName() string {
	return "menus"
}
