package cart

import (
	"context"
	"errors"
	"log"
	"time"

	"SaveNServe-Backend/domain"
	"SaveNServe-Backend/entities"
	"SaveNServe-Backend/internal/cache"
	"SaveNServe-Backend/pkg/pricing"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
)

type (
	CartService interface {
		GetCart(ctx context.Context, userID string) (*domain.CartResponse, error)
		AddItem(ctx context.Context, req domain.AddToCartRequest, userID string) error
		UpdateQuantity(ctx context.Context, lineID string, req domain.UpdateCartItemRequest, userID string) error
		RemoveItem(ctx context.Context, lineID string, userID string) error
		ConfirmPickup(ctx context.Context, lineID string, userID string) error
	}

	cartService struct {
		cartRepository CartRepository
		cache          cache.CartCache
		sfg            singleflight.Group // collapses concurrent cache misses per user
	}
)

func NewCartService(cartRepository CartRepository, cartCache cache.CartCache) CartService {
	return &cartService{
		cartRepository: cartRepository,
		cache:          cartCache,
	}
}

func (s *cartService) GetCart(ctx context.Context, userID string) (*domain.CartResponse, error) {
	v, err, _ := s.sfg.Do(userID, func() (interface{}, error) {
		cached, err := s.cache.Get(ctx, userID)
		if err == nil {
			return cached, nil
		}
		if !errors.Is(err, cache.ErrCacheMiss) {
			log.Printf("cart cache get error: %v", err)
		}

		view, err := s.buildCartView(ctx, userID)
		if err != nil {
			return nil, err
		}

		go func() {
			if errSet := s.cache.Set(context.Background(), userID, view); errSet != nil {
				log.Printf("cart cache set error: %v", errSet)
			}
		}()

		return view, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*domain.CartResponse), nil
}

func (s *cartService) buildCartView(ctx context.Context, userID string) (*domain.CartResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	c, err := s.cartRepository.GetOrCreateCart(ctx, userUUID)
	if err != nil {
		return nil, err
	}

	lines, err := s.cartRepository.GetLines(ctx, c.ID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	view := &domain.CartResponse{
		ID:    c.ID.String(),
		Lines: make([]domain.CartLineResponse, 0, len(lines)),
	}
	for _, line := range lines {
		if line.Item == nil {
			continue
		}
		sale := pricing.SalePrice(now, line.Item.Price, line.Item.BestBefore, line.Item.AutoDiscount, line.Item.CustomDiscounts)
		subtotal := sale * float64(line.Quantity)
		view.Lines = append(view.Lines, domain.CartLineResponse{
			ID:        line.ID.String(),
			ItemID:    line.ItemID.String(),
			Name:      line.Item.Name,
			Price:     line.Item.Price,
			SalePrice: sale,
			Quantity:  line.Quantity,
			Subtotal:  subtotal,
			ImageURL:  line.Item.ImageURL,
		})
		view.Total += subtotal
	}

	return view, nil
}

func (s *cartService) AddItem(ctx context.Context, req domain.AddToCartRequest, userID string) error {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ErrParseUUID
	}
	itemUUID, err := uuid.Parse(req.ItemID)
	if err != nil {
		return domain.ErrParseUUID
	}

	c, err := s.cartRepository.GetOrCreateCart(ctx, userUUID)
	if err != nil {
		return err
	}

	if err := s.cartRepository.AddLine(ctx, c.ID, itemUUID, req.Quantity); err != nil {
		return err
	}

	s.invalidate(userID)
	return nil
}

func (s *cartService) UpdateQuantity(ctx context.Context, lineID string, req domain.UpdateCartItemRequest, userID string) error {
	// Quantity zero means the line goes away with its stock restored.
	if req.Quantity == 0 {
		return s.RemoveItem(ctx, lineID, userID)
	}

	line, err := s.ownedLine(ctx, lineID, userID)
	if err != nil {
		return err
	}

	if err := s.cartRepository.SetLineQuantity(ctx, line.ID, req.Quantity); err != nil {
		return err
	}

	s.invalidate(userID)
	return nil
}

func (s *cartService) RemoveItem(ctx context.Context, lineID string, userID string) error {
	line, err := s.ownedLine(ctx, lineID, userID)
	if err != nil {
		return err
	}

	if err := s.cartRepository.DeleteLineRestock(ctx, line.ID); err != nil {
		return err
	}

	s.invalidate(userID)
	return nil
}

func (s *cartService) ConfirmPickup(ctx context.Context, lineID string, userID string) error {
	line, err := s.ownedLine(ctx, lineID, userID)
	if err != nil {
		return err
	}

	if err := s.cartRepository.DeleteLine(ctx, line.ID); err != nil {
		return err
	}

	s.invalidate(userID)
	return nil
}

// ownedLine resolves a cart line and verifies it belongs to the caller's
// cart. Foreign lines surface as not found, never as forbidden.
func (s *cartService) ownedLine(ctx context.Context, lineID string, userID string) (*entities.CartItem, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}
	lineUUID, err := uuid.Parse(lineID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	c, err := s.cartRepository.GetOrCreateCart(ctx, userUUID)
	if err != nil {
		return nil, err
	}

	line, err := s.cartRepository.GetLineByID(ctx, lineUUID)
	if err != nil {
		return nil, err
	}
	if line.CartID != c.ID {
		return nil, domain.ErrCartItemNotFound
	}
	return line, nil
}

func (s *cartService) invalidate(userID string) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := s.cache.Delete(ctx, userID); err != nil {
		log.Printf("cart cache invalidate error: %v", err)
	}
}
