package gatewaymock

import (
	"context"

	"rentease-backend/internal/infrastructure/gateway"
)

// Client fakes the payment processor. The default returns a fixed
// order echoing the requested amount.
type Client struct {
	CreateOrderFn func(ctx context.Context, amount int64, currency, receipt string, notes map[string]string) (*gateway.Order, error)
}

func (m *Client) CreateOrder(ctx context.Context, amount int64, currency, receipt string, notes map[string]string) (*gateway.Order, error) {
	if m.CreateOrderFn != nil {
		return m.CreateOrderFn(ctx, amount, currency, receipt, notes)
	}
	return &gateway.Order{
		ID:       "order_mock_1",
		Amount:   amount,
		Currency: currency,
		Receipt:  receipt,
		Status:   "created",
	}, nil
}
