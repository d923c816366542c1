package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddIncrementsExistingEntry(t *testing.T) {
	c := New()
	c.Add(3, 1)
	c.Add(3, 2)

	assert.Equal(t, 3, c.Quantity(3))
	assert.Equal(t, 1, c.Len())
}

func TestAddIgnoresNonPositiveQuantity(t *testing.T) {
	c := New()
	c.Add(3, 0)
	c.Add(3, -5)

	assert.True(t, c.IsEmpty())
}

func TestRemoveIsIdempotent(t *testing.T) {
	c := New()
	c.Add(3, 2)

	c.Remove(3)
	assert.Equal(t, 0, c.Quantity(3))

	// Removing an absent id must be a no-op both times.
	c.Remove(3)
	c.Remove(99)
	assert.True(t, c.IsEmpty())
}

func TestSetQuantityZeroEqualsRemove(t *testing.T) {
	a := New()
	a.Add(7, 4)
	a.SetQuantity(7, 0)

	b := New()
	b.Add(7, 4)
	b.Remove(7)

	assert.Equal(t, b.Items(), a.Items())
	assert.True(t, a.IsEmpty())
}

func TestSetQuantityNegativeRemoves(t *testing.T) {
	c := New()
	c.Add(7, 4)
	c.SetQuantity(7, -1)

	assert.True(t, c.IsEmpty())
}

func TestSetQuantityPositive(t *testing.T) {
	c := New()
	c.Add(5, 1)
	c.SetQuantity(5, 10)

	assert.Equal(t, 10, c.Quantity(5))
}

func TestClear(t *testing.T) {
	c := New()
	c.Add(1, 1)
	c.Add(2, 2)

	c.Clear()
	assert.True(t, c.IsEmpty())
	assert.Empty(t, c.Items())
}

func TestItemsReturnsCopy(t *testing.T) {
	c := New()
	c.Add(1, 1)

	snapshot := c.Items()
	snapshot[1] = 99

	assert.Equal(t, 1, c.Quantity(1))
}

func TestStoreGetCreatesOnDemand(t *testing.T) {
	s := NewStore()
	c := s.Get(42)
	c.Add(1, 1)

	assert.Same(t, c, s.Get(42))
	assert.Equal(t, 1, s.Get(42).Quantity(1))
}

func TestStoreResetDiscardsCart(t *testing.T) {
	s := NewStore()
	s.Get(42).Add(1, 5)

	fresh := s.Reset(42)
	assert.True(t, fresh.IsEmpty())
	assert.True(t, s.Get(42).IsEmpty())
}
