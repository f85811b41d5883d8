package entities

import (
	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name         string    `json:"name"`
	Email        string    `gorm:"uniqueIndex" json:"email"`
	Password     string    `json:"-"`
	Role         string    `gorm:"default:user" json:"role"` // "user", "admin"
	IsVerified   bool      `json:"is_verified"`
	IsSubscribed bool      `json:"is_subscribed"` // expiry alert emails
	Address      string    `json:"address,omitempty"`
	PhoneNumber  string    `json:"phone_number,omitempty"`

	Timestamp
}
