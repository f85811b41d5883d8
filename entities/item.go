package entities

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// DiscountSchedule maps a "days remaining until best-before" bucket
// (e.g. "5", "2", "1") to a discount percentage.
type DiscountSchedule map[string]float64

func (d DiscountSchedule) Value() (driver.Value, error) {
	if d == nil {
		return nil, nil
	}
	return json.Marshal(d)
}

func (d *DiscountSchedule) Scan(value interface{}) error {
	if value == nil {
		*d = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, d)
	case string:
		return json.Unmarshal([]byte(v), d)
	default:
		return errors.New("unsupported type for DiscountSchedule")
	}
}

type Item struct {
	ID              uuid.UUID        `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	SubcategoryID   uuid.UUID        `json:"subcategory_id"`
	Name            string           `json:"name"`
	Description     string           `gorm:"type:text" json:"description,omitempty"`
	Price           float64          `json:"price"`
	DiscountPrice   float64          `json:"discount_price"`
	BestBefore      *time.Time       `json:"best_before,omitempty"`
	Quantity        int              `json:"quantity"` // available stock, kept >= 0 by conditional updates
	Unit            string           `json:"unit,omitempty"`
	AutoDiscount    bool             `json:"auto_discount"`
	CustomDiscounts DiscountSchedule `gorm:"type:jsonb" json:"custom_discounts,omitempty"`
	ImageURL        string           `json:"image_url,omitempty"`

	Subcategory *Subcategory `gorm:"foreignKey:SubcategoryID" json:"-"`
	Timestamp
}
