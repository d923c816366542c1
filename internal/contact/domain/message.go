package domain

import (
	"time"

	userdomain "github.com/Golgrax/pupshop/internal/user/domain"
)

// ContactMessage is a message submitted through the contact form. UserID is
// nil for anonymous submissions; deleting the account later detaches the
// message instead of removing it.
type ContactMessage struct {
	ID        uint             `json:"id" gorm:"primaryKey"`
	UserID    *uint            `json:"user_id"`
	User      *userdomain.User `json:"-" gorm:"constraint:OnDelete:SET NULL"`
	Name      string           `json:"name" gorm:"not null"`
	Email     string           `json:"email" gorm:"not null"`
	Message   string           `json:"message" gorm:"not null"`
	CreatedAt time.Time        `json:"created_at"`
}

// TableName specifies the table name
func (ContactMessage) TableName() string {
	return "contact_messages"
}

// ContactRepository defines the contract for contact message data access.
// Messages are write-only in the current scope.
type ContactRepository interface {
	Create(message *ContactMessage) error
}
