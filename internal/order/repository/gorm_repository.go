package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	catalogdomain "github.com/Golgrax/pupshop/internal/catalog/domain"
	"github.com/Golgrax/pupshop/internal/order/domain"
)

// GormOrderRepository implements OrderRepository using GORM
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// CreateWithItems persists an order, its line items, and the matching
// stock/sales adjustments in one transaction. The stock decrement carries a
// `stock_quantity >= quantity` guard, so a row that lost its stock between
// validation and commit aborts the whole batch instead of going negative.
func (r *GormOrderRepository) CreateWithItems(order *domain.Order, items []domain.OrderItem) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}

		for i := range items {
			items[i].OrderID = order.ID
			if err := tx.Create(&items[i]).Error; err != nil {
				return fmt.Errorf("failed to create order item: %w", err)
			}

			result := tx.Model(&catalogdomain.Product{}).
				Where("id = ? AND stock_quantity >= ?", items[i].ProductID, items[i].Quantity).
				Updates(map[string]interface{}{
					"stock_quantity": gorm.Expr("stock_quantity - ?", items[i].Quantity),
					"sales_count":    gorm.Expr("sales_count + ?", items[i].Quantity),
				})
			if result.Error != nil {
				return fmt.Errorf("failed to update stock: %w", result.Error)
			}
			if result.RowsAffected == 0 {
				var product catalogdomain.Product
				available := 0
				name := fmt.Sprintf("product %d", items[i].ProductID)
				if err := tx.First(&product, items[i].ProductID).Error; err == nil {
					available = product.StockQuantity
					name = product.Name
				}
				return &domain.InsufficientStockError{
					ProductID: items[i].ProductID,
					Name:      name,
					Requested: items[i].Quantity,
					Available: available,
				}
			}
		}

		return nil
	})
}

// FindByUser retrieves a user's orders, newest first, each with its total
// item quantity for the history listing
func (r *GormOrderRepository) FindByUser(userID uint) ([]domain.OrderSummary, error) {
	var orders []domain.Order
	if err := r.db.Where("user_id = ?", userID).Order("order_date DESC").Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to find orders: %w", err)
	}

	summaries := make([]domain.OrderSummary, 0, len(orders))
	for _, o := range orders {
		var totalQuantity int64
		err := r.db.Model(&domain.OrderItem{}).
			Where("order_id = ?", o.ID).
			Select("COALESCE(SUM(quantity), 0)").
			Scan(&totalQuantity).Error
		if err != nil {
			return nil, fmt.Errorf("failed to sum order quantities: %w", err)
		}
		summaries = append(summaries, domain.OrderSummary{Order: o, TotalQuantity: int(totalQuantity)})
	}
	return summaries, nil
}

// FindByID retrieves one order with its line items
func (r *GormOrderRepository) FindByID(id uint) (*domain.Order, error) {
	var order domain.Order
	if err := r.db.Preload("Items").First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("order not found")
		}
		return nil, fmt.Errorf("failed to find order: %w", err)
	}
	return &order, nil
}

// Count returns the total number of orders
func (r *GormOrderRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&domain.Order{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count orders: %w", err)
	}
	return count, nil
}
