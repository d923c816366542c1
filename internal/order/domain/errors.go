package domain

import (
	"errors"
	"fmt"
)

// Checkout failure taxonomy. The pre-write validation phase reports one of
// these without touching the database; the delivery layer maps each to its
// own status code instead of collapsing every failure into one message.
var (
	// ErrAuthenticationRequired means no user is signed in
	ErrAuthenticationRequired = errors.New("please log in to place an order")

	// ErrEmptyCart means checkout was attempted with nothing in the cart
	ErrEmptyCart = errors.New("your cart is empty")
)

// ProductNotFoundError reports a cart line whose product no longer exists
type ProductNotFoundError struct {
	ProductID uint
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("product %d not found", e.ProductID)
}

// InsufficientStockError reports a cart line requesting more units than are
// in stock, naming the product and the quantity still available
type InsufficientStockError struct {
	ProductID uint
	Name      string
	Requested int
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("not enough stock for %s: requested %d, available %d", e.Name, e.Requested, e.Available)
}
