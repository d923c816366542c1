package config

import (
	"fmt"

	"gorm.io/gorm"

	catalogdomain "github.com/Golgrax/pupshop/internal/catalog/domain"
	contactdomain "github.com/Golgrax/pupshop/internal/contact/domain"
	orderdomain "github.com/Golgrax/pupshop/internal/order/domain"
	userdomain "github.com/Golgrax/pupshop/internal/user/domain"
)

// Migrate creates or updates the six shop tables. AutoMigrate is
// idempotent, so running it on every startup is safe.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&userdomain.User{},
		&catalogdomain.Product{},
		&userdomain.Address{},
		&orderdomain.Order{},
		&orderdomain.OrderItem{},
		&contactdomain.ContactMessage{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}
