package domain

import (
	"time"

	catalogdomain "github.com/Golgrax/pupshop/internal/catalog/domain"
	userdomain "github.com/Golgrax/pupshop/internal/user/domain"
)

// Order statuses. Only StatusPending is ever written in the current scope;
// the column stays free text for a future fulfilment workflow.
const (
	StatusPending = "Pending"
)

// ShippingFee is the flat shipping cost added to every order total
const ShippingFee = 36.00

// Order represents a placed order
type Order struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	ReferenceNo string          `json:"reference_no" gorm:"uniqueIndex;not null"`
	UserID      uint            `json:"user_id" gorm:"not null;index"`
	User        userdomain.User `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	OrderDate   time.Time       `json:"order_date" gorm:"not null"`
	TotalAmount float64         `json:"total_amount" gorm:"not null"`
	Status      string          `json:"status" gorm:"not null"`
	Items       []OrderItem     `json:"items,omitempty"`
}

// TableName specifies the table name
func (Order) TableName() string {
	return "orders"
}

// OrderItem is one line of an order. ItemPriceAtOrder is the unit price
// snapshotted at purchase time; it is never recomputed from the product's
// current price.
type OrderItem struct {
	ID               uint                  `json:"id" gorm:"primaryKey"`
	OrderID          uint                  `json:"order_id" gorm:"not null;index"`
	Order            *Order                `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	ProductID        uint                  `json:"product_id" gorm:"not null;index"`
	Product          catalogdomain.Product `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Quantity         int                   `json:"quantity" gorm:"not null"`
	ItemPriceAtOrder float64               `json:"item_price_at_order" gorm:"not null"`
}

// TableName specifies the table name
func (OrderItem) TableName() string {
	return "order_items"
}

// OrderSummary is one row of the order history listing
type OrderSummary struct {
	Order
	TotalQuantity int `json:"total_quantity"`
}

// OrderRepository defines the contract for order data access.
//
// CreateWithItems commits the order, its line items, and the per-product
// stock decrement / sales increment as a single transaction; on any
// failure nothing is persisted. The stock guard inside the transaction
// may return *InsufficientStockError.
type OrderRepository interface {
	CreateWithItems(order *Order, items []OrderItem) error
	FindByUser(userID uint) ([]OrderSummary, error)
	FindByID(id uint) (*Order, error)
	Count() (int64, error)
}
