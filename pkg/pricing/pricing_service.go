package pricing

import (
	"context"
	"log"
	"math"
	"time"
)

type (
	PricingService interface {
		RepriceAll(ctx context.Context) (int, error)
		StartRepriceLoop(ctx context.Context, interval time.Duration)
	}

	pricingService struct {
		pricingRepository PricingRepository
	}
)

func NewPricingService(pricingRepository PricingRepository) PricingService {
	return &pricingService{pricingRepository: pricingRepository}
}

// RepriceAll recomputes discount_price for every item carrying a
// best-before date and a discount policy. Prices set at item creation
// go stale as expiry approaches; this pass keeps them current.
func (s *pricingService) RepriceAll(ctx context.Context) (int, error) {
	items, err := s.pricingRepository.GetDiscountableItems(ctx)
	if err != nil {
		return 0, err
	}

	now := time.Now()
	updated := 0
	for _, item := range items {
		sale := SalePrice(now, item.Price, item.BestBefore, item.AutoDiscount, item.CustomDiscounts)
		if math.Abs(sale-item.DiscountPrice) < 0.005 {
			continue
		}
		if err := s.pricingRepository.UpdateDiscountPrice(ctx, item.ID, sale); err != nil {
			log.Printf("reprice item %s failed: %v", item.ID, err)
			continue
		}
		updated++
	}

	return updated, nil
}

func (s *pricingService) StartRepriceLoop(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if updated, err := s.RepriceAll(ctx); err != nil {
					log.Printf("reprice pass failed: %v", err)
				} else if updated > 0 {
					log.Printf("reprice pass updated %d items", updated)
				}
			case <-ctx.Done():
				return
			}
		}
	}()
}
