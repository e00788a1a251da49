package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents an authenticated operator of the campaign calendar
type User struct {
	ID           string    `gorm:"column:id;primaryKey;size:36" json:"id"`
	Email        string    `gorm:"column:email;size:255;uniqueIndex" json:"email"`
	Name         string    `gorm:"column:name;size:100" json:"name,omitempty"`
	PasswordHash string    `gorm:"column:password_hash;size:100" json:"-"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

// TableName returns the table name
func (User) TableName() string {
	return "users"
}

// BeforeCreate assigns the record id
func (u *User) BeforeCreate(_ *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return nil
}
