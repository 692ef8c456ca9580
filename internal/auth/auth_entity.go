package auth

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID            uuid.UUID      `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	Name          string         `gorm:"column:name;type:varchar(255)"`
	Email         string         `gorm:"column:email;type:text;not null;uniqueIndex:uq_users_email"`
	Password      string         `gorm:"column:password;type:text;not null"`
	Role          string         `gorm:"column:role;type:varchar(20);not null;default:student"`
	ContactNumber string         `gorm:"column:contact_number;type:varchar(30)"`
	FatherName    string         `gorm:"column:father_name;type:varchar(255)"`
	MotherName    string         `gorm:"column:mother_name;type:varchar(255)"`
	Gothram       string         `gorm:"column:gothram;type:varchar(100)"`
	Age           *int           `gorm:"column:age"`
	Address       string         `gorm:"column:address;type:text"`
	ProfileImage  *string        `gorm:"column:profile_image;type:text"`
	CreatedAt     time.Time      `gorm:"column:created_at"`
	UpdatedAt     time.Time      `gorm:"column:updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (User) TableName() string {
	return "users"
}
