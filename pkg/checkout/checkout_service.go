package checkout

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"SaveNServe-Backend/domain"
	"SaveNServe-Backend/entities"
	"SaveNServe-Backend/internal/cache"
	"SaveNServe-Backend/internal/utils"
	"SaveNServe-Backend/pkg/cart"
	"SaveNServe-Backend/pkg/pricing"
	"SaveNServe-Backend/pkg/user"

	"github.com/google/uuid"
	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
	"gorm.io/gorm"
)

type (
	CheckoutService interface {
		Checkout(ctx context.Context, userID string) (domain.CheckoutResponse, error)
		GetUserOrders(ctx context.Context, userID string, page, limit int) ([]domain.OrderResponse, int64, error)
		HandleNotification(ctx context.Context, notif domain.MidtransNotification) error
	}

	checkoutService struct {
		checkoutRepository CheckoutRepository
		cartRepository     cart.CartRepository
		userRepository     user.UserRepository
		cartCache          cache.CartCache
		snapClient         snap.Client
	}
)

func NewCheckoutService(
	checkoutRepository CheckoutRepository,
	cartRepository cart.CartRepository,
	userRepository user.UserRepository,
	cartCache cache.CartCache,
) CheckoutService {
	env := midtrans.Sandbox
	if utils.GetConfig("IsProd") == "true" {
		env = midtrans.Production
	}

	var client snap.Client
	client.New(utils.GetConfig("SERVER_KEY"), env)

	return &checkoutService{
		checkoutRepository: checkoutRepository,
		cartRepository:     cartRepository,
		userRepository:     userRepository,
		cartCache:          cartCache,
		snapClient:         client,
	}
}

// Checkout snapshots the current cart into a pending order and opens a
// payment session for it. Stock stays reserved by the cart lines until
// the payment notification settles or voids the order.
func (s *checkoutService) Checkout(ctx context.Context, userID string) (domain.CheckoutResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.CheckoutResponse{}, domain.ErrParseUUID
	}

	u, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.CheckoutResponse{}, domain.ErrUserNotFound
		}
		return domain.CheckoutResponse{}, err
	}

	c, err := s.cartRepository.GetOrCreateCart(ctx, userUUID)
	if err != nil {
		return domain.CheckoutResponse{}, err
	}

	lines, err := s.cartRepository.GetLines(ctx, c.ID)
	if err != nil {
		return domain.CheckoutResponse{}, err
	}
	if len(lines) == 0 {
		return domain.CheckoutResponse{}, domain.ErrCartEmpty
	}

	orderID := uuid.New()
	now := time.Now()
	order := &entities.Order{
		ID:              orderID,
		UserID:          userUUID,
		Status:          domain.OrderStatusPending,
		MidtransOrderID: fmt.Sprintf("SNS-%s-%d", orderID.String()[:8], now.Unix()),
	}

	for _, line := range lines {
		if line.Item == nil {
			continue
		}
		sale := pricing.SalePrice(now, line.Item.Price, line.Item.BestBefore, line.Item.AutoDiscount, line.Item.CustomDiscounts)
		order.Total += sale * float64(line.Quantity)
		order.OrderItems = append(order.OrderItems, &entities.OrderItem{
			ID:        uuid.New(),
			OrderID:   orderID,
			ItemID:    line.ItemID,
			Name:      line.Item.Name,
			UnitPrice: sale,
			Quantity:  line.Quantity,
		})
	}

	if err := s.checkoutRepository.CreateOrder(ctx, order); err != nil {
		return domain.CheckoutResponse{}, err
	}

	snapReq := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  order.MidtransOrderID,
			GrossAmt: int64(order.Total),
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: u.Name,
			Email: u.Email,
		},
	}

	snapResp, snapErr := s.snapClient.CreateTransaction(snapReq)
	if snapErr != nil {
		return domain.CheckoutResponse{}, domain.ErrPaymentFailed
	}

	if err := s.checkoutRepository.SaveSnapToken(ctx, orderID, snapResp.Token); err != nil {
		return domain.CheckoutResponse{}, err
	}

	return domain.CheckoutResponse{
		OrderID:     orderID.String(),
		Total:       order.Total,
		SnapToken:   snapResp.Token,
		RedirectURL: snapResp.RedirectURL,
	}, nil
}

func (s *checkoutService) GetUserOrders(ctx context.Context, userID string, page, limit int) ([]domain.OrderResponse, int64, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, 0, domain.ErrParseUUID
	}

	orders, count, err := s.checkoutRepository.GetUserOrders(ctx, userUUID, page, limit)
	if err != nil {
		return nil, 0, err
	}

	var response []domain.OrderResponse
	for _, order := range orders {
		res := domain.OrderResponse{
			ID:        order.ID.String(),
			Total:     order.Total,
			Status:    order.Status,
			PaidAt:    order.PaidAt,
			CreatedAt: order.CreatedAt,
		}
		for _, item := range order.OrderItems {
			res.Items = append(res.Items, domain.OrderItemResponse{
				ItemID:    item.ItemID.String(),
				Name:      item.Name,
				UnitPrice: item.UnitPrice,
				Quantity:  item.Quantity,
			})
		}
		response = append(response, res)
	}

	return response, count, nil
}

// HandleNotification processes midtrans payment callbacks. Settlement
// turns the cart reservations into completed sales (lines removed, stock
// stays decremented); expiry or cancellation releases them back.
func (s *checkoutService) HandleNotification(ctx context.Context, notif domain.MidtransNotification) error {
	order, err := s.checkoutRepository.GetOrderByMidtransID(ctx, notif.OrderID)
	if err != nil {
		return err
	}

	if order.Status != domain.OrderStatusPending {
		return nil // already settled or cancelled, notification replay
	}

	switch notif.TransactionStatus {
	case "settlement", "capture":
		if notif.TransactionStatus == "capture" && notif.FraudStatus != "accept" {
			return nil
		}
		now := time.Now()
		if err := s.checkoutRepository.UpdateOrderStatus(ctx, order.ID, domain.OrderStatusPaid, &now); err != nil {
			return err
		}
		s.settleCartLines(ctx, order, false)
	case "expire", "cancel", "deny":
		if err := s.checkoutRepository.UpdateOrderStatus(ctx, order.ID, domain.OrderStatusCancelled, nil); err != nil {
			return err
		}
		s.settleCartLines(ctx, order, true)
	}

	return nil
}

// settleCartLines clears the cart lines behind an order. With restock
// the reservation is released back to stock; without it the units are
// gone for good (sold). The user's cached cart view is dropped so the
// next read sees the cleared cart, not the pre-payment one.
func (s *checkoutService) settleCartLines(ctx context.Context, order *entities.Order, restock bool) {
	c, err := s.cartRepository.GetOrCreateCart(ctx, order.UserID)
	if err != nil {
		log.Printf("settle order %s: get cart failed: %v", order.ID, err)
		return
	}

	for _, item := range order.OrderItems {
		line, err := s.cartRepository.GetLineByItem(ctx, c.ID, item.ItemID)
		if err != nil {
			if !errors.Is(err, domain.ErrCartItemNotFound) {
				log.Printf("settle order %s: get line failed: %v", order.ID, err)
			}
			continue
		}

		if restock {
			err = s.cartRepository.DeleteLineRestock(ctx, line.ID)
		} else {
			err = s.cartRepository.DeleteLine(ctx, line.ID)
		}
		if err != nil {
			log.Printf("settle order %s: clear line failed: %v", order.ID, err)
		}
	}

	invCtx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := s.cartCache.Delete(invCtx, order.UserID.String()); err != nil {
		log.Printf("settle order %s: cart cache invalidate failed: %v", order.ID, err)
	}
}
