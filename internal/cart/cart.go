package cart

import "sync"

// Cart is the transient shopping cart for one signed-in user: a mapping of
// product id to desired quantity. It lives in process memory only and is
// never persisted; checkout converts it into an order and empties it.
type Cart struct {
	mu    sync.Mutex
	items map[uint]int
}

// New creates an empty cart
func New() *Cart {
	return &Cart{items: make(map[uint]int)}
}

// Add increments the quantity for productID, inserting the entry if absent.
// Quantities below one are ignored. No stock validation happens here; the
// cart may over-commit and checkout re-validates against live stock.
func (c *Cart) Add(productID uint, quantity int) {
	if quantity < 1 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[productID] += quantity
}

// Remove deletes the entry for productID. Removing an absent id is a no-op.
func (c *Cart) Remove(productID uint) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, productID)
}

// SetQuantity sets the quantity for productID. A quantity of zero or below
// removes the entry instead; the cart never stores non-positive quantities.
func (c *Cart) SetQuantity(productID uint, quantity int) {
	if quantity <= 0 {
		c.Remove(productID)
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[productID] = quantity
}

// Clear empties the cart
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make(map[uint]int)
}

// Items returns a snapshot copy of the cart contents
func (c *Cart) Items() map[uint]int {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make(map[uint]int, len(c.items))
	for id, qty := range c.items {
		out[id] = qty
	}
	return out
}

// Quantity returns the quantity for productID, zero if absent
func (c *Cart) Quantity(productID uint) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.items[productID]
}

// IsEmpty reports whether the cart holds no items
func (c *Cart) IsEmpty() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items) == 0
}

// Len returns the number of distinct products in the cart
func (c *Cart) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}
