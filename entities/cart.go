package entities

import (
	"github.com/google/uuid"
)

type Cart struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID uuid.UUID `gorm:"uniqueIndex" json:"user_id"`

	User      *User       `gorm:"foreignKey:UserID" json:"-"`
	CartItems []*CartItem `gorm:"foreignKey:CartID" json:"cart_items,omitempty"`
	Timestamp
}

type CartItem struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	CartID   uuid.UUID `gorm:"index:idx_cart_item,unique" json:"cart_id"`
	ItemID   uuid.UUID `gorm:"index:idx_cart_item,unique" json:"item_id"`
	Quantity int       `json:"quantity"` // reserved units, always > 0

	Cart *Cart `gorm:"foreignKey:CartID" json:"-"`
	Item *Item `gorm:"foreignKey:ItemID" json:"item,omitempty"`
	Timestamp
}
