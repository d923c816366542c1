package query

import (
	"fmt"

	"github.com/Golgrax/pupshop/internal/order/domain"
)

// GetOrderQuery represents the query for one order with its line items
type GetOrderQuery struct {
	UserID  uint
	OrderID uint
}

// GetOrderHandler handles the get order query
type GetOrderHandler struct {
	repo domain.OrderRepository
}

// NewGetOrderHandler creates a new get order handler
func NewGetOrderHandler(repo domain.OrderRepository) *GetOrderHandler {
	return &GetOrderHandler{repo: repo}
}

// Handle executes the get order query. Users can only read their own
// orders; someone else's order id behaves as if it did not exist.
func (h *GetOrderHandler) Handle(query GetOrderQuery) (*domain.Order, error) {
	if query.UserID == 0 {
		return nil, domain.ErrAuthenticationRequired
	}
	if query.OrderID == 0 {
		return nil, fmt.Errorf("invalid order id")
	}

	order, err := h.repo.FindByID(query.OrderID)
	if err != nil {
		return nil, fmt.Errorf("order not found: %w", err)
	}
	if order.UserID != query.UserID {
		return nil, fmt.Errorf("order not found")
	}

	return order, nil
}
