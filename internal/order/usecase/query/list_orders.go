package query

import (
	"fmt"

	"github.com/Golgrax/pupshop/internal/order/domain"
)

// ListOrdersQuery represents the query for a user's order history
type ListOrdersQuery struct {
	UserID uint
}

// ListOrdersHandler handles the list orders query
type ListOrdersHandler struct {
	repo domain.OrderRepository
}

// NewListOrdersHandler creates a new list orders handler
func NewListOrdersHandler(repo domain.OrderRepository) *ListOrdersHandler {
	return &ListOrdersHandler{repo: repo}
}

// Handle executes the list orders query
func (h *ListOrdersHandler) Handle(query ListOrdersQuery) ([]domain.OrderSummary, error) {
	if query.UserID == 0 {
		return nil, domain.ErrAuthenticationRequired
	}

	orders, err := h.repo.FindByUser(query.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	return orders, nil
}
