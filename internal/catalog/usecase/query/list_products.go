package query

import (
	"context"
	"fmt"

	"github.com/Golgrax/pupshop/internal/catalog/domain"
)

// ListProductsQuery represents the query for the catalog listing
type ListProductsQuery struct {
	Category string
	Sort     string
}

// ListProductsHandler handles the list products query
type ListProductsHandler struct {
	repo domain.ProductRepository
}

// NewListProductsHandler creates a new list products handler
func NewListProductsHandler(repo domain.ProductRepository) *ListProductsHandler {
	return &ListProductsHandler{repo: repo}
}

// contextLister is implemented by repositories that record a span around
// the catalog listing
type contextLister interface {
	FindAllWithContext(ctx context.Context, category, sort string) ([]domain.Product, error)
}

// Handle executes the list products query
func (h *ListProductsHandler) Handle(ctx context.Context, query ListProductsQuery) ([]domain.Product, error) {
	if query.Sort != domain.SortDefault && query.Sort != domain.SortSales {
		return nil, fmt.Errorf("unknown sort order %q", query.Sort)
	}

	var products []domain.Product
	var err error
	if tr, ok := h.repo.(contextLister); ok {
		products, err = tr.FindAllWithContext(ctx, query.Category, query.Sort)
	} else {
		products, err = h.repo.FindAll(query.Category, query.Sort)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	return products, nil
}
