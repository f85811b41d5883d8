package entities

import (
	"time"

	"github.com/google/uuid"
)

type Order struct {
	ID              uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID          uuid.UUID  `json:"user_id"`
	Total           float64    `json:"total"`
	Status          string     `json:"status"` // "Pending", "Paid", "Cancelled"
	MidtransOrderID string     `gorm:"uniqueIndex" json:"midtrans_order_id"`
	SnapToken       string     `json:"snap_token,omitempty"`
	PaidAt          *time.Time `json:"paid_at,omitempty"`

	User       *User        `gorm:"foreignKey:UserID" json:"-"`
	OrderItems []*OrderItem `gorm:"foreignKey:OrderID" json:"order_items,omitempty"`
	Timestamp
}

// OrderItem is a checkout-time snapshot of a cart line. Name and unit
// price are copied so later catalog edits do not rewrite order history.
type OrderItem struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	OrderID   uuid.UUID `json:"order_id"`
	ItemID    uuid.UUID `json:"item_id"`
	Name      string    `json:"name"`
	UnitPrice float64   `json:"unit_price"`
	Quantity  int       `json:"quantity"`

	Order *Order `gorm:"foreignKey:OrderID" json:"-"`
	Item  *Item  `gorm:"foreignKey:ItemID" json:"-"`
	Timestamp
}
