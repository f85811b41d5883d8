package entities

import (
	"github.com/google/uuid"
)

type Category struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name     string    `gorm:"uniqueIndex" json:"name"`
	ImageURL string    `json:"image_url,omitempty"`

	Subcategories []*Subcategory `gorm:"foreignKey:CategoryID" json:"subcategories,omitempty"`
	Timestamp
}

type Subcategory struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	CategoryID uuid.UUID `json:"category_id"`
	Name       string    `json:"name"`

	Category *Category `gorm:"foreignKey:CategoryID" json:"-"`
	Items    []*Item   `gorm:"foreignKey:SubcategoryID" json:"items,omitempty"`
	Timestamp
}
