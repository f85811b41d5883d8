package entities

import (
	"github.com/google/uuid"
)

type Banner struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Title    string    `json:"title"`
	ImageURL string    `json:"image_url"`
	LinkURL  string    `json:"link_url,omitempty"`
	IsActive bool      `gorm:"default:true" json:"is_active"`

	Timestamp
}
