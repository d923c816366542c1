package command

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	catalogdomain "github.com/Golgrax/pupshop/internal/catalog/domain"
	"github.com/Golgrax/pupshop/internal/order/domain"
)

// PlaceOrderCommand converts a cart into a persisted order. The session is
// passed in explicitly: UserID identifies the signed-in user (zero means
// nobody is) and Items is a snapshot of the cart mapping.
type PlaceOrderCommand struct {
	UserID uint
	Items  map[uint]int
}

// PlaceOrderHandler handles the checkout command
type PlaceOrderHandler struct {
	orders   domain.OrderRepository
	products catalogdomain.ProductRepository
}

// NewPlaceOrderHandler creates a new place order handler
func NewPlaceOrderHandler(orders domain.OrderRepository, products catalogdomain.ProductRepository) *PlaceOrderHandler {
	return &PlaceOrderHandler{orders: orders, products: products}
}

// contextOrderCreator is implemented by repositories that record a span
// around the checkout transaction
type contextOrderCreator interface {
	CreateWithItemsWithContext(ctx context.Context, order *domain.Order, items []domain.OrderItem) error
}

// Handle executes the checkout command.
//
// Validation runs first and writes nothing: authentication, non-empty
// cart, then per line product existence and stock. Only when every line
// passes does the repository commit the order, its items (with unit prices
// snapshotted from the current catalog), and the stock/sales adjustments
// as one atomic batch.
func (h *PlaceOrderHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (*domain.Order, error) {
	if cmd.UserID == 0 {
		return nil, domain.ErrAuthenticationRequired
	}
	if len(cmd.Items) == 0 {
		return nil, domain.ErrEmptyCart
	}

	// Deterministic line order keeps order_items stable across runs.
	productIDs := make([]uint, 0, len(cmd.Items))
	for id := range cmd.Items {
		productIDs = append(productIDs, id)
	}
	sort.Slice(productIDs, func(i, j int) bool { return productIDs[i] < productIDs[j] })

	subtotal := 0.0
	items := make([]domain.OrderItem, 0, len(productIDs))
	for _, productID := range productIDs {
		quantity := cmd.Items[productID]
		if quantity < 1 {
			return nil, fmt.Errorf("invalid quantity %d for product %d", quantity, productID)
		}

		product, err := h.products.FindByID(productID)
		if err != nil {
			return nil, &domain.ProductNotFoundError{ProductID: productID}
		}
		if !product.InStock(quantity) {
			return nil, &domain.InsufficientStockError{
				ProductID: productID,
				Name:      product.Name,
				Requested: quantity,
				Available: product.StockQuantity,
			}
		}

		subtotal += product.Price * float64(quantity)
		items = append(items, domain.OrderItem{
			ProductID:        productID,
			Quantity:         quantity,
			ItemPriceAtOrder: product.Price,
		})
	}

	order := &domain.Order{
		ReferenceNo: fmt.Sprintf("ORD-%s", uuid.New().String()[:8]),
		UserID:      cmd.UserID,
		OrderDate:   time.Now(),
		TotalAmount: subtotal + domain.ShippingFee,
		Status:      domain.StatusPending,
	}

	var err error
	if tr, ok := h.orders.(contextOrderCreator); ok {
		err = tr.CreateWithItemsWithContext(ctx, order, items)
	} else {
		err = h.orders.CreateWithItems(order, items)
	}
	if err != nil {
		return nil, err
	}

	return order, nil
}
