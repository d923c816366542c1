package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/Golgrax/pupshop/internal/cart"
	catalogdomain "github.com/Golgrax/pupshop/internal/catalog/domain"
	userhttp "github.com/Golgrax/pupshop/internal/user/delivery/http"
)

// CartHandler handles HTTP requests for the shopping cart
type CartHandler struct {
	carts    *cart.Store
	products catalogdomain.ProductRepository
}

// NewCartHandler creates a new cart handler
func NewCartHandler(carts *cart.Store, products catalogdomain.ProductRepository) *CartHandler {
	return &CartHandler{carts: carts, products: products}
}

// cartLine is one row of the cart view, priced from the current catalog
type cartLine struct {
	ProductID uint    `json:"product_id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
	LineTotal float64 `json:"line_total"`
}

// GetCart handles GET /cart
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	userID, ok := userhttp.UserIDFromContext(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	items := h.carts.Get(userID).Items()
	lines := make([]cartLine, 0, len(items))
	subtotal := 0.0
	for productID, quantity := range items {
		line := cartLine{ProductID: productID, Quantity: quantity}
		// A product deleted since it was added still shows as a bare line;
		// checkout is where it becomes an error.
		if product, err := h.products.FindByID(productID); err == nil {
			line.Name = product.Name
			line.UnitPrice = product.Price
			line.LineTotal = product.Price * float64(quantity)
		}
		subtotal += line.LineTotal
		lines = append(lines, line)
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"items":    lines,
		"subtotal": subtotal,
	})
}

// AddItem handles POST /cart/items
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := userhttp.UserIDFromContext(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	var req struct {
		ProductID uint `json:"product_id"`
		Quantity  int  `json:"quantity"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.ProductID == 0 {
		h.respondError(w, http.StatusBadRequest, "product_id is required")
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}
	if req.Quantity < 0 {
		h.respondError(w, http.StatusBadRequest, "quantity must be positive")
		return
	}

	// The product must exist to be added; stock is deliberately not
	// checked here, checkout re-validates against live stock.
	if _, err := h.products.FindByID(req.ProductID); err != nil {
		h.respondError(w, http.StatusNotFound, err.Error())
		return
	}

	c := h.carts.Get(userID)
	c.Add(req.ProductID, req.Quantity)

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"product_id": req.ProductID,
		"quantity":   c.Quantity(req.ProductID),
	})
}

// UpdateItem handles PUT /cart/items/{id}
func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := userhttp.UserIDFromContext(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	vars := mux.Vars(r)
	productID, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	var req struct {
		Quantity int `json:"quantity"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	c := h.carts.Get(userID)
	c.SetQuantity(uint(productID), req.Quantity)

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"product_id": uint(productID),
		"quantity":   c.Quantity(uint(productID)),
	})
}

// RemoveItem handles DELETE /cart/items/{id}
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := userhttp.UserIDFromContext(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	vars := mux.Vars(r)
	productID, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	h.carts.Get(userID).Remove(uint(productID))

	h.respondJSON(w, http.StatusOK, map[string]string{"message": "Item removed from cart"})
}

// ClearCart handles DELETE /cart
func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	userID, ok := userhttp.UserIDFromContext(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	h.carts.Get(userID).Clear()

	h.respondJSON(w, http.StatusOK, map[string]string{"message": "Cart cleared"})
}

// respondJSON sends a JSON response
func (h *CartHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError sends an error response
func (h *CartHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}

// RegisterRoutes registers all cart routes
func (h *CartHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/cart", userhttp.AuthMiddleware(h.GetCart)).Methods("GET")
	router.HandleFunc("/cart", userhttp.AuthMiddleware(h.ClearCart)).Methods("DELETE")
	router.HandleFunc("/cart/items", userhttp.AuthMiddleware(h.AddItem)).Methods("POST")
	router.HandleFunc("/cart/items/{id}", userhttp.AuthMiddleware(h.UpdateItem)).Methods("PUT")
	router.HandleFunc("/cart/items/{id}", userhttp.AuthMiddleware(h.RemoveItem)).Methods("DELETE")
}
