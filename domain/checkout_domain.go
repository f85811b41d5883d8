package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessCheckout  = "checkout created successfully"
	MessageSuccessGetOrders = "orders retrieved successfully"

	MessageFailedCheckout  = "failed to create checkout"
	MessageFailedGetOrders = "failed to retrieve orders"
	MessageFailedWebhook   = "failed to process payment notification"

	ErrOrderNotFound = errors.New("order not found")
	ErrPaymentFailed = errors.New("payment processing failed")
)

const (
	OrderStatusPending   = "Pending"
	OrderStatusPaid      = "Paid"
	OrderStatusCancelled = "Cancelled"
)

type (
	CheckoutResponse struct {
		OrderID     string  `json:"order_id"`
		Total       float64 `json:"total"`
		SnapToken   string  `json:"snap_token"`
		RedirectURL string  `json:"redirect_url"`
	}

	OrderItemResponse struct {
		ItemID    string  `json:"item_id"`
		Name      string  `json:"name"`
		UnitPrice float64 `json:"unit_price"`
		Quantity  int     `json:"quantity"`
	}

	OrderResponse struct {
		ID        string              `json:"id"`
		Total     float64             `json:"total"`
		Status    string              `json:"status"`
		PaidAt    *time.Time          `json:"paid_at,omitempty"`
		CreatedAt time.Time           `json:"created_at"`
		Items     []OrderItemResponse `json:"items"`
	}

	// MidtransNotification is the subset of the payment notification
	// payload the webhook cares about.
	MidtransNotification struct {
		OrderID           string `json:"order_id"`
		TransactionStatus string `json:"transaction_status"`
		FraudStatus       string `json:"fraud_status"`
	}
)
