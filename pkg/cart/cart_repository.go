package cart

import (
	"context"
	"errors"

	"SaveNServe-Backend/domain"
	"SaveNServe-Backend/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	// CartRepository owns the stock/reservation consistency: every
	// mutation runs the stock write and the cart-line write in one
	// database transaction, with a conditional stock decrement so two
	// concurrent reservations can never jointly oversell an item.
	CartRepository interface {
		GetOrCreateCart(ctx context.Context, userID uuid.UUID) (*entities.Cart, error)
		GetLines(ctx context.Context, cartID uuid.UUID) ([]*entities.CartItem, error)
		GetLineByID(ctx context.Context, lineID uuid.UUID) (*entities.CartItem, error)
		GetLineByItem(ctx context.Context, cartID, itemID uuid.UUID) (*entities.CartItem, error)

		AddLine(ctx context.Context, cartID, itemID uuid.UUID, quantity int) error
		SetLineQuantity(ctx context.Context, lineID uuid.UUID, newQuantity int) error
		DeleteLineRestock(ctx context.Context, lineID uuid.UUID) error
		DeleteLine(ctx context.Context, lineID uuid.UUID) error
	}

	cartRepository struct {
		db *gorm.DB
	}
)

func NewCartRepository(db *gorm.DB) CartRepository {
	return &cartRepository{db: db}
}

func (r *cartRepository) GetOrCreateCart(ctx context.Context, userID uuid.UUID) (*entities.Cart, error) {
	var cart entities.Cart
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&cart).Error
	if err == nil {
		return &cart, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	cart = entities.Cart{ID: uuid.New(), UserID: userID}
	if err := r.db.WithContext(ctx).Create(&cart).Error; err != nil {
		return nil, err
	}
	return &cart, nil
}

func (r *cartRepository) GetLines(ctx context.Context, cartID uuid.UUID) ([]*entities.CartItem, error) {
	var lines []*entities.CartItem
	if err := r.db.WithContext(ctx).
		Preload("Item").
		Where("cart_id = ?", cartID).
		Order("created_at asc").
		Find(&lines).Error; err != nil {
		return nil, err
	}
	return lines, nil
}

func (r *cartRepository) GetLineByID(ctx context.Context, lineID uuid.UUID) (*entities.CartItem, error) {
	var line entities.CartItem
	if err := r.db.WithContext(ctx).Preload("Item").Where("id = ?", lineID).First(&line).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCartItemNotFound
		}
		return nil, err
	}
	return &line, nil
}

func (r *cartRepository) GetLineByItem(ctx context.Context, cartID, itemID uuid.UUID) (*entities.CartItem, error) {
	var line entities.CartItem
	if err := r.db.WithContext(ctx).
		Where("cart_id = ? AND item_id = ?", cartID, itemID).
		First(&line).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCartItemNotFound
		}
		return nil, err
	}
	return &line, nil
}

// reserveStock decrements available stock only when enough is left. Zero
// rows affected with an existing item means the stock check failed.
func reserveStock(tx *gorm.DB, itemID uuid.UUID, quantity int) error {
	var item entities.Item
	if err := tx.Select("id").Where("id = ?", itemID).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrItemNotFound
		}
		return err
	}

	res := tx.Model(&entities.Item{}).
		Where("id = ? AND quantity >= ?", itemID, quantity).
		UpdateColumn("quantity", gorm.Expr("quantity - ?", quantity))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrInsufficientStock
	}
	return nil
}

func releaseStock(tx *gorm.DB, itemID uuid.UUID, quantity int) error {
	return tx.Model(&entities.Item{}).
		Where("id = ?", itemID).
		UpdateColumn("quantity", gorm.Expr("quantity + ?", quantity)).Error
}

func (r *cartRepository) AddLine(ctx context.Context, cartID, itemID uuid.UUID, quantity int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := reserveStock(tx, itemID, quantity); err != nil {
			return err
		}

		var line entities.CartItem
		err := tx.Where("cart_id = ? AND item_id = ?", cartID, itemID).First(&line).Error
		switch {
		case err == nil:
			return tx.Model(&line).
				UpdateColumn("quantity", gorm.Expr("quantity + ?", quantity)).Error
		case errors.Is(err, gorm.ErrRecordNotFound):
			line = entities.CartItem{
				ID:       uuid.New(),
				CartID:   cartID,
				ItemID:   itemID,
				Quantity: quantity,
			}
			return tx.Create(&line).Error
		default:
			return err
		}
	})
}

func (r *cartRepository) SetLineQuantity(ctx context.Context, lineID uuid.UUID, newQuantity int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var line entities.CartItem
		if err := tx.Where("id = ?", lineID).First(&line).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrCartItemNotFound
			}
			return err
		}

		diff := newQuantity - line.Quantity
		if diff > 0 {
			if err := reserveStock(tx, line.ItemID, diff); err != nil {
				return err
			}
		} else if diff < 0 {
			if err := releaseStock(tx, line.ItemID, -diff); err != nil {
				return err
			}
		}

		return tx.Model(&line).UpdateColumn("quantity", newQuantity).Error
	})
}

func (r *cartRepository) DeleteLineRestock(ctx context.Context, lineID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var line entities.CartItem
		if err := tx.Where("id = ?", lineID).First(&line).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrCartItemNotFound
			}
			return err
		}

		if err := releaseStock(tx, line.ItemID, line.Quantity); err != nil {
			return err
		}

		return tx.Delete(&line).Error
	})
}

// DeleteLine removes a line without touching stock; the reservation
// became a completed sale at pickup.
func (r *cartRepository) DeleteLine(ctx context.Context, lineID uuid.UUID) error {
	res := r.db.WithContext(ctx).Where("id = ?", lineID).Delete(&entities.CartItem{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrCartItemNotFound
	}
	return nil
}
