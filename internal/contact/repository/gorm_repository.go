package repository

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/Golgrax/pupshop/internal/contact/domain"
)

// GormContactRepository implements ContactRepository using GORM
type GormContactRepository struct {
	db *gorm.DB
}

// NewGormContactRepository creates a new GORM contact repository
func NewGormContactRepository(db *gorm.DB) *GormContactRepository {
	return &GormContactRepository{db: db}
}

// Create inserts a new contact message
func (r *GormContactRepository) Create(message *domain.ContactMessage) error {
	if err := r.db.Create(message).Error; err != nil {
		return fmt.Errorf("failed to create contact message: %w", err)
	}
	return nil
}
