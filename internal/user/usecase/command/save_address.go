package command

import (
	"fmt"

	"github.com/Golgrax/pupshop/internal/user/domain"
)

// SaveAddressCommand saves one of the two profile address slots. Slot 1 is
// the user's oldest address row, slot 2 the next one; saving into an empty
// slot inserts a new row, saving into an occupied slot updates it in place.
type SaveAddressCommand struct {
	UserID      uint
	Slot        int
	AddressLine string
	ContactName string
	ContactNo   string
}

// SaveAddressHandler handles the save address command
type SaveAddressHandler struct {
	repo domain.AddressRepository
}

// NewSaveAddressHandler creates a new save address handler
func NewSaveAddressHandler(repo domain.AddressRepository) *SaveAddressHandler {
	return &SaveAddressHandler{repo: repo}
}

// Handle executes the save address command
func (h *SaveAddressHandler) Handle(cmd SaveAddressCommand) (*domain.Address, error) {
	if cmd.UserID == 0 {
		return nil, fmt.Errorf("user_id is required")
	}
	if cmd.Slot < domain.AddressSlot1 || cmd.Slot > domain.AddressSlot2 {
		return nil, fmt.Errorf("address slot must be 1 or 2")
	}
	if cmd.AddressLine == "" || cmd.ContactName == "" || cmd.ContactNo == "" {
		return nil, fmt.Errorf("address, name and contact number are all required")
	}

	existing, err := h.repo.FindByUser(cmd.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load addresses: %w", err)
	}

	if cmd.Slot <= len(existing) {
		address := existing[cmd.Slot-1]
		address.AddressLine = cmd.AddressLine
		address.ContactName = cmd.ContactName
		address.ContactNo = cmd.ContactNo
		if err := h.repo.Update(&address); err != nil {
			return nil, fmt.Errorf("failed to update address: %w", err)
		}
		return &address, nil
	}

	address := &domain.Address{
		UserID:      cmd.UserID,
		AddressLine: cmd.AddressLine,
		ContactName: cmd.ContactName,
		ContactNo:   cmd.ContactNo,
	}
	if err := h.repo.Create(address); err != nil {
		return nil, fmt.Errorf("failed to create address: %w", err)
	}
	return address, nil
}
