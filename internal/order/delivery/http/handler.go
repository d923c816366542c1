package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/Golgrax/pupshop/internal/cart"
	"github.com/Golgrax/pupshop/internal/order/domain"
	"github.com/Golgrax/pupshop/internal/order/usecase/command"
	"github.com/Golgrax/pupshop/internal/order/usecase/query"
	userhttp "github.com/Golgrax/pupshop/internal/user/delivery/http"
	"github.com/Golgrax/pupshop/pkg/logger"
)

// OrderHandler handles HTTP requests for checkout and order history
type OrderHandler struct {
	placeOrderHandler *command.PlaceOrderHandler

	previewHandler    *query.PreviewCheckoutHandler
	listOrdersHandler *query.ListOrdersHandler
	getOrderHandler   *query.GetOrderHandler

	carts *cart.Store

	ordersPlaced     prometheus.Counter
	checkoutFailures *prometheus.CounterVec
	checkoutLatency  prometheus.Histogram
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(
	placeOrderHandler *command.PlaceOrderHandler,
	previewHandler *query.PreviewCheckoutHandler,
	listOrdersHandler *query.ListOrdersHandler,
	getOrderHandler *query.GetOrderHandler,
	carts *cart.Store,
) *OrderHandler {
	ordersPlaced := prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "pupshop_orders_placed_total",
			Help: "Total number of successfully placed orders",
		},
	)

	checkoutFailures := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pupshop_checkout_failures_total",
			Help: "Total number of failed checkout attempts by reason",
		},
		[]string{"reason"},
	)

	checkoutLatency := prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "pupshop_checkout_duration_seconds",
			Help:    "Duration of checkout requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	prometheus.MustRegister(ordersPlaced)
	prometheus.MustRegister(checkoutFailures)
	prometheus.MustRegister(checkoutLatency)

	return &OrderHandler{
		placeOrderHandler: placeOrderHandler,
		previewHandler:    previewHandler,
		listOrdersHandler: listOrdersHandler,
		getOrderHandler:   getOrderHandler,
		carts:             carts,
		ordersPlaced:      ordersPlaced,
		checkoutFailures:  checkoutFailures,
		checkoutLatency:   checkoutLatency,
	}
}

// checkoutFailure maps a checkout error to its status code and metric label
func checkoutFailure(err error) (int, string) {
	var notFound *domain.ProductNotFoundError
	var noStock *domain.InsufficientStockError

	switch {
	case errors.Is(err, domain.ErrAuthenticationRequired):
		return http.StatusUnauthorized, "authentication_required"
	case errors.Is(err, domain.ErrEmptyCart):
		return http.StatusBadRequest, "empty_cart"
	case errors.As(err, &notFound):
		return http.StatusNotFound, "product_not_found"
	case errors.As(err, &noStock):
		return http.StatusConflict, "insufficient_stock"
	default:
		return http.StatusInternalServerError, "storage_error"
	}
}

// PreviewCheckout handles POST /checkout/preview
func (h *OrderHandler) PreviewCheckout(w http.ResponseWriter, r *http.Request) {
	userID, ok := userhttp.UserIDFromContext(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	q := query.PreviewCheckoutQuery{
		UserID: userID,
		Items:  h.carts.Get(userID).Items(),
	}

	quote, err := h.previewHandler.Handle(q)
	if err != nil {
		status, _ := checkoutFailure(err)
		h.respondError(w, status, err.Error())
		return
	}

	h.respondJSON(w, http.StatusOK, quote)
}

// PlaceOrder handles POST /checkout
func (h *OrderHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	defer func() {
		h.checkoutLatency.Observe(time.Since(start).Seconds())
	}()

	userID, ok := userhttp.UserIDFromContext(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	userCart := h.carts.Get(userID)
	cmd := command.PlaceOrderCommand{
		UserID: userID,
		Items:  userCart.Items(),
	}

	order, err := h.placeOrderHandler.Handle(r.Context(), cmd)
	if err != nil {
		status, reason := checkoutFailure(err)
		h.checkoutFailures.WithLabelValues(reason).Inc()
		logger.Warn(r.Context()).
			Err(err).
			Uint("user_id", userID).
			Str("reason", reason).
			Msg("Checkout failed")
		h.respondError(w, status, err.Error())
		return
	}

	// The cart survives every failed attempt and empties only on success.
	userCart.Clear()
	h.ordersPlaced.Inc()

	logger.Info(r.Context()).
		Uint("user_id", userID).
		Uint("order_id", order.ID).
		Str("reference_no", order.ReferenceNo).
		Float64("total_amount", order.TotalAmount).
		Msg("Order placed")

	h.respondJSON(w, http.StatusCreated, order)
}

// ListOrders handles GET /orders
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	userID, ok := userhttp.UserIDFromContext(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	orders, err := h.listOrdersHandler.Handle(query.ListOrdersQuery{UserID: userID})
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.respondJSON(w, http.StatusOK, orders)
}

// GetOrder handles GET /orders/{id}
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	userID, ok := userhttp.UserIDFromContext(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	vars := mux.Vars(r)
	id, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid order ID")
		return
	}

	order, err := h.getOrderHandler.Handle(query.GetOrderQuery{UserID: userID, OrderID: uint(id)})
	if err != nil {
		h.respondError(w, http.StatusNotFound, err.Error())
		return
	}

	h.respondJSON(w, http.StatusOK, order)
}

// respondJSON sends a JSON response
func (h *OrderHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError sends an error response
func (h *OrderHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}

// RegisterRoutes registers checkout and order history routes
func (h *OrderHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/checkout/preview", userhttp.AuthMiddleware(h.PreviewCheckout)).Methods("POST")
	router.HandleFunc("/checkout", userhttp.AuthMiddleware(h.PlaceOrder)).Methods("POST")
	router.HandleFunc("/orders", userhttp.AuthMiddleware(h.ListOrders)).Methods("GET")
	router.HandleFunc("/orders/{id}", userhttp.AuthMiddleware(h.GetOrder)).Methods("GET")
}
