package domain

// Address slots used by the profile screen. The original UI exposes two
// address forms; slot membership is insertion order, not a column.
const (
	AddressSlot1 = 1
	AddressSlot2 = 2
	MaxAddresses = 2
)

// Address is a delivery address belonging to one user
type Address struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	UserID      uint   `json:"user_id" gorm:"not null;index"`
	User        User   `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	AddressLine string `json:"address_line" gorm:"not null"`
	ContactName string `json:"contact_name" gorm:"not null"`
	ContactNo   string `json:"contact_no" gorm:"not null"`
}

// TableName specifies the table name
func (Address) TableName() string {
	return "addresses"
}

// AddressRepository defines the contract for address data access.
// FindByUser returns addresses in insertion order (id ascending), which is
// what maps rows onto the two profile slots.
type AddressRepository interface {
	Create(address *Address) error
	FindByUser(userID uint) ([]Address, error)
	Update(address *Address) error
}
