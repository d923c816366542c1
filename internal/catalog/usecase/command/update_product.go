package command

import (
	"fmt"
	"time"

	"github.com/Golgrax/pupshop/internal/catalog/domain"
)

// UpdateProductCommand represents the command to edit a catalog item.
// Price and stock apply unconditionally; string fields only when non-empty.
type UpdateProductCommand struct {
	ID            uint
	Name          string
	Price         float64
	StockQuantity int
	ImagePath     string
	Category      string
	Description   string
}

// UpdateProductHandler handles the update product command
type UpdateProductHandler struct {
	repo domain.ProductRepository
}

// NewUpdateProductHandler creates a new update product handler
func NewUpdateProductHandler(repo domain.ProductRepository) *UpdateProductHandler {
	return &UpdateProductHandler{repo: repo}
}

// Handle executes the update product command
func (h *UpdateProductHandler) Handle(cmd UpdateProductCommand) (*domain.Product, error) {
	if cmd.ID == 0 {
		return nil, fmt.Errorf("product id is required")
	}
	if cmd.Price < 0 {
		return nil, fmt.Errorf("price cannot be negative")
	}
	if cmd.StockQuantity < 0 {
		return nil, fmt.Errorf("stock quantity cannot be negative")
	}

	product, err := h.repo.FindByID(cmd.ID)
	if err != nil {
		return nil, fmt.Errorf("product not found: %w", err)
	}

	if cmd.Name != "" {
		product.Name = cmd.Name
	}
	product.Price = cmd.Price
	product.StockQuantity = cmd.StockQuantity
	if cmd.ImagePath != "" {
		product.ImagePath = cmd.ImagePath
	}
	if cmd.Category != "" {
		product.Category = cmd.Category
	}
	if cmd.Description != "" {
		product.Description = cmd.Description
	}
	product.UpdatedAt = time.Now()

	if err := h.repo.Update(product); err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	return product, nil
}
