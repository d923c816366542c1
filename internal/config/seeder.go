package config

import (
	"errors"

	"gorm.io/gorm"

	catalogdomain "github.com/Golgrax/pupshop/internal/catalog/domain"
	userdomain "github.com/Golgrax/pupshop/internal/user/domain"
	"github.com/Golgrax/pupshop/pkg/auth"
	"github.com/Golgrax/pupshop/pkg/logger"
)

// SeedProducts loads the demonstration catalog on first run. It only acts
// when the products table is empty, so restarting never duplicates rows.
func SeedProducts(db *gorm.DB) error {
	var count int64
	if err := db.Model(&catalogdomain.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	logger.Logger.Info().Msg("Seeding initial product data")

	products := []catalogdomain.Product{
		{
			Name:          "PUP Minimalist Baybayin Lanyard",
			Price:         140.00,
			StockQuantity: 100,
			ImagePath:     "product_lanyard.png",
			Category:      "Lanyard",
			Description:   "Coquette Baybayin Lanyard, PUP Study With Style.",
		},
		{
			Name:          "PUP Jeepney Signage",
			Price:         20.00,
			StockQuantity: 200,
			ImagePath:     "product_jeepney_signage.png",
			Category:      "Sticker",
			Description:   "Iskolar Script - PUP Study with Style Stickers.",
		},
		{
			Name:          "PUP Iskolar TOTE BAG",
			Price:         160.00,
			StockQuantity: 75,
			ImagePath:     "product_iskolar_tote_bag.png",
			Category:      "Bag",
			Description:   "Iskolar Script - PUP Study with Style Tote Bags.",
		},
		{
			Name:          "PUP Study With Style (T-Shirt)",
			Price:         450.00,
			StockQuantity: 50,
			ImagePath:     "product_study_with_style.png",
			Category:      "Apparel",
			Description:   "PUP Obelisk silhouette - STUDY With Style.",
		},
		{
			Name:          "PUP Baybayin Lanyard (Classic Edition)",
			Price:         140.00,
			StockQuantity: 100,
			ImagePath:     "product_lanyard.png",
			Category:      "Lanyard",
			Description:   "Classic Edition Polytechnic University (PUP) Lanyard.",
		},
	}

	for _, product := range products {
		if err := db.Create(&product).Error; err != nil {
			logger.Logger.Error().Err(err).Str("product", product.Name).Msg("Failed to seed product")
			return err
		}
	}

	logger.Logger.Info().Int("count", len(products)).Msg("Product seeding complete")
	return nil
}

// SeedAdmin creates the inventory admin account if it does not exist yet
func SeedAdmin(db *gorm.DB) error {
	const adminEmail = "admin@pupshop.local"

	var existing userdomain.User
	err := db.Where("email = ?", adminEmail).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	password, err := auth.HashPassword("admin123")
	if err != nil {
		return err
	}

	admin := userdomain.User{
		Name:     "Shop Admin",
		Email:    adminEmail,
		Password: password,
		Role:     userdomain.RoleAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	logger.Logger.Info().Str("email", adminEmail).Msg("Admin account seeded")
	return nil
}
