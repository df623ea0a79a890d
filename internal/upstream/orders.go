package upstream

import (
	"context"
	"net/http"

	"raynott-storefront/internal/domain"
)

// CreateOrder posts a finished order submission. The payload is never
// retried here; the checkout orchestrator owns retry policy.
func (c *Client) CreateOrder(ctx context.Context, token string, sub domain.OrderSubmission) (*domain.Order, error) {
	var order domain.Order
	if err := c.do(ctx, http.MethodPost, "/orders", token, nil, sub, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// ListOrders fetches all orders. Admin token required.
func (c *Client) ListOrders(ctx context.Context, token string) ([]domain.Order, error) {
	var orders []domain.Order
	if err := c.do(ctx, http.MethodGet, "/orders", token, nil, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// UpdateOrderStatus sets an order's fulfillment status. Admin token
// required.
func (c *Client) UpdateOrderStatus(ctx context.Context, token, id, status string) (*domain.Order, error) {
	var order domain.Order
	body := map[string]string{"status": status}
	if err := c.do(ctx, http.MethodPut, "/orders/"+id, token, nil, body, &order); err != nil {
		return nil, err
	}
	return &order, nil
}
