package entities

import (
	"github.com/google/uuid"
)

type LikedItem struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID uuid.UUID `gorm:"index:idx_user_item_like,unique" json:"user_id"`
	ItemID uuid.UUID `gorm:"index:idx_user_item_like,unique" json:"item_id"`

	User *User `gorm:"foreignKey:UserID" json:"-"`
	Item *Item `gorm:"foreignKey:ItemID" json:"item,omitempty"`
	Timestamp
}
