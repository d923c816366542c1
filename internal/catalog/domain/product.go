package domain

import "time"

// Product represents a catalog item
type Product struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	Name          string    `json:"name" gorm:"not null"`
	Price         float64   `json:"price" gorm:"not null"`
	StockQuantity int       `json:"stock_quantity" gorm:"not null;default:0"`
	ImagePath     string    `json:"image_path"`
	Category      string    `json:"category"`
	Description   string    `json:"description"`
	Rating        float64   `json:"rating" gorm:"default:0"`
	SalesCount    int       `json:"sales_count" gorm:"default:0"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// TableName specifies the table name
func (Product) TableName() string {
	return "products"
}

// InStock checks whether the requested quantity is available
func (p *Product) InStock(quantity int) bool {
	return p.StockQuantity >= quantity
}

// Sort orders accepted by the product listing
const (
	SortDefault = ""
	SortSales   = "sales"
)

// ProductRepository defines the contract for product data access
type ProductRepository interface {
	Create(product *Product) error
	FindByID(id uint) (*Product, error)
	FindAll(category, sort string) ([]Product, error)
	Update(product *Product) error
	Delete(id uint) error
	Count() (int64, error)
}
