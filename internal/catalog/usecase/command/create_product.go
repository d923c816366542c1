package command

import (
	"fmt"
	"time"

	"github.com/Golgrax/pupshop/internal/catalog/domain"
)

// CreateProductCommand represents the command to add a catalog item
type CreateProductCommand struct {
	Name          string
	Price         float64
	StockQuantity int
	ImagePath     string
	Category      string
	Description   string
}

// CreateProductHandler handles the create product command
type CreateProductHandler struct {
	repo domain.ProductRepository
}

// NewCreateProductHandler creates a new create product handler
func NewCreateProductHandler(repo domain.ProductRepository) *CreateProductHandler {
	return &CreateProductHandler{repo: repo}
}

// Handle executes the create product command
func (h *CreateProductHandler) Handle(cmd CreateProductCommand) (*domain.Product, error) {
	if cmd.Name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if cmd.Price < 0 {
		return nil, fmt.Errorf("price cannot be negative")
	}
	if cmd.StockQuantity < 0 {
		return nil, fmt.Errorf("stock quantity cannot be negative")
	}

	product := &domain.Product{
		Name:          cmd.Name,
		Price:         cmd.Price,
		StockQuantity: cmd.StockQuantity,
		ImagePath:     cmd.ImagePath,
		Category:      cmd.Category,
		Description:   cmd.Description,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}

	if err := h.repo.Create(product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return product, nil
}
