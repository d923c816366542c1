package query

import (
	"context"
	"fmt"

	"github.com/Golgrax/pupshop/internal/catalog/domain"
)

// GetProductQuery represents the query to get one product
type GetProductQuery struct {
	ID uint
}

// GetProductHandler handles the get product query
type GetProductHandler struct {
	repo domain.ProductRepository
}

// NewGetProductHandler creates a new get product handler
func NewGetProductHandler(repo domain.ProductRepository) *GetProductHandler {
	return &GetProductHandler{repo: repo}
}

// contextFinder is implemented by repositories that record a span around
// the product lookup
type contextFinder interface {
	FindByIDWithContext(ctx context.Context, id uint) (*domain.Product, error)
}

// Handle executes the get product query
func (h *GetProductHandler) Handle(ctx context.Context, query GetProductQuery) (*domain.Product, error) {
	if query.ID == 0 {
		return nil, fmt.Errorf("invalid product id")
	}

	var product *domain.Product
	var err error
	if tr, ok := h.repo.(contextFinder); ok {
		product, err = tr.FindByIDWithContext(ctx, query.ID)
	} else {
		product, err = h.repo.FindByID(query.ID)
	}
	if err != nil {
		return nil, fmt.Errorf("product not found: %w", err)
	}

	return product, nil
}
