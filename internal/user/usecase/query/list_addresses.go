package query

import (
	"fmt"

	"github.com/Golgrax/pupshop/internal/user/domain"
)

// ListAddressesQuery represents the query for a user's saved addresses
type ListAddressesQuery struct {
	UserID uint
}

// ListAddressesHandler handles the list addresses query
type ListAddressesHandler struct {
	repo domain.AddressRepository
}

// NewListAddressesHandler creates a new list addresses handler
func NewListAddressesHandler(repo domain.AddressRepository) *ListAddressesHandler {
	return &ListAddressesHandler{repo: repo}
}

// Handle executes the list addresses query. Results come back in slot
// order; only the first two rows are meaningful to the profile screen.
func (h *ListAddressesHandler) Handle(query ListAddressesQuery) ([]domain.Address, error) {
	if query.UserID == 0 {
		return nil, fmt.Errorf("invalid user id")
	}

	addresses, err := h.repo.FindByUser(query.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list addresses: %w", err)
	}

	if len(addresses) > domain.MaxAddresses {
		addresses = addresses[:domain.MaxAddresses]
	}
	return addresses, nil
}
