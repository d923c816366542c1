package query

import (
	"sort"

	catalogdomain "github.com/Golgrax/pupshop/internal/catalog/domain"
	"github.com/Golgrax/pupshop/internal/order/domain"
)

// PreviewCheckoutQuery prices the cart without committing anything. The
// client shows the resulting quote for confirmation; placing the order is
// a separate call, so declining simply means never issuing it.
type PreviewCheckoutQuery struct {
	UserID uint
	Items  map[uint]int
}

// QuoteLine is one priced cart line in a checkout preview
type QuoteLine struct {
	ProductID uint    `json:"product_id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
	LineTotal float64 `json:"line_total"`
}

// Quote is the priced summary presented before checkout
type Quote struct {
	Lines    []QuoteLine `json:"lines"`
	Subtotal float64     `json:"subtotal"`
	Shipping float64     `json:"shipping"`
	Total    float64     `json:"total"`
}

// PreviewCheckoutHandler handles the checkout preview query
type PreviewCheckoutHandler struct {
	products catalogdomain.ProductRepository
}

// NewPreviewCheckoutHandler creates a new preview checkout handler
func NewPreviewCheckoutHandler(products catalogdomain.ProductRepository) *PreviewCheckoutHandler {
	return &PreviewCheckoutHandler{products: products}
}

// Handle executes the preview query. It applies the same validation as
// checkout (authentication, non-empty cart, product existence, stock) and
// has no side effects.
func (h *PreviewCheckoutHandler) Handle(query PreviewCheckoutQuery) (*Quote, error) {
	if query.UserID == 0 {
		return nil, domain.ErrAuthenticationRequired
	}
	if len(query.Items) == 0 {
		return nil, domain.ErrEmptyCart
	}

	productIDs := make([]uint, 0, len(query.Items))
	for id := range query.Items {
		productIDs = append(productIDs, id)
	}
	sort.Slice(productIDs, func(i, j int) bool { return productIDs[i] < productIDs[j] })

	quote := &Quote{Shipping: domain.ShippingFee}
	for _, productID := range productIDs {
		quantity := query.Items[productID]

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

		lineTotal := product.Price * float64(quantity)
		quote.Lines = append(quote.Lines, QuoteLine{
			ProductID: productID,
			Name:      product.Name,
			UnitPrice: product.Price,
			Quantity:  quantity,
			LineTotal: lineTotal,
		})
		quote.Subtotal += lineTotal
	}
	quote.Total = quote.Subtotal + quote.Shipping

	return quote, nil
}
