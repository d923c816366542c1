package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/Golgrax/pupshop/internal/catalog/domain"
	"github.com/Golgrax/pupshop/internal/catalog/usecase/command"
	"github.com/Golgrax/pupshop/internal/catalog/usecase/query"
	userhttp "github.com/Golgrax/pupshop/internal/user/delivery/http"
)

// CatalogHandler handles HTTP requests for the catalog and the inventory
// admin surface
type CatalogHandler struct {
	createHandler *command.CreateProductHandler
	updateHandler *command.UpdateProductHandler
	deleteHandler *command.DeleteProductHandler

	listHandler *query.ListProductsHandler
	getHandler  *query.GetProductHandler

	repo domain.ProductRepository

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
	productCount   prometheus.Gauge
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(repo domain.ProductRepository) *CatalogHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pupshop_catalog_requests_total",
			Help: "Total number of catalog requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "pupshop_catalog_request_duration_seconds",
			Help:    "Duration of catalog requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	productCount := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "pupshop_catalog_products",
			Help: "Number of products in the catalog",
		},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)
	prometheus.MustRegister(productCount)

	return &CatalogHandler{
		createHandler:  command.NewCreateProductHandler(repo),
		updateHandler:  command.NewUpdateProductHandler(repo),
		deleteHandler:  command.NewDeleteProductHandler(repo),
		listHandler:    query.NewListProductsHandler(repo),
		getHandler:     query.NewGetProductHandler(repo),
		repo:           repo,
		requestCounter: requestCounter,
		requestLatency: requestLatency,
		productCount:   productCount,
	}
}

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (h *CatalogHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
	}
}

// ListProducts handles GET /products
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	q := query.ListProductsQuery{
		Category: r.URL.Query().Get("category"),
		Sort:     r.URL.Query().Get("sort"),
	}

	products, err := h.listHandler.Handle(r.Context(), q)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.updateProductCountMetric()
	h.respondJSON(w, http.StatusOK, products)
}

// GetProduct handles GET /products/{id}
func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	product, err := h.getHandler.Handle(r.Context(), query.GetProductQuery{ID: uint(id)})
	if err != nil {
		h.respondError(w, http.StatusNotFound, err.Error())
		return
	}

	h.respondJSON(w, http.StatusOK, product)
}

// CreateProduct handles POST /admin/products (admin only)
func (h *CatalogHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name          string  `json:"name"`
		Price         float64 `json:"price"`
		StockQuantity int     `json:"stock_quantity"`
		ImagePath     string  `json:"image_path"`
		Category      string  `json:"category"`
		Description   string  `json:"description"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	cmd := command.CreateProductCommand{
		Name:          req.Name,
		Price:         req.Price,
		StockQuantity: req.StockQuantity,
		ImagePath:     req.ImagePath,
		Category:      req.Category,
		Description:   req.Description,
	}

	product, err := h.createHandler.Handle(cmd)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.updateProductCountMetric()
	h.respondJSON(w, http.StatusCreated, product)
}

// UpdateProduct handles PUT /admin/products/{id} (admin only)
func (h *CatalogHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	var req struct {
		Name          string  `json:"name"`
		Price         float64 `json:"price"`
		StockQuantity int     `json:"stock_quantity"`
		ImagePath     string  `json:"image_path"`
		Category      string  `json:"category"`
		Description   string  `json:"description"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	cmd := command.UpdateProductCommand{
		ID:            uint(id),
		Name:          req.Name,
		Price:         req.Price,
		StockQuantity: req.StockQuantity,
		ImagePath:     req.ImagePath,
		Category:      req.Category,
		Description:   req.Description,
	}

	product, err := h.updateHandler.Handle(cmd)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.respondJSON(w, http.StatusOK, product)
}

// DeleteProduct handles DELETE /admin/products/{id} (admin only)
func (h *CatalogHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	if err := h.deleteHandler.Handle(command.DeleteProductCommand{ID: uint(id)}); err != nil {
		h.respondError(w, http.StatusNotFound, err.Error())
		return
	}

	h.updateProductCountMetric()
	h.respondJSON(w, http.StatusOK, map[string]string{"message": "Product deleted successfully"})
}

// updateProductCountMetric updates the catalog size gauge
func (h *CatalogHandler) updateProductCountMetric() {
	count, err := h.repo.Count()
	if err == nil {
		h.productCount.Set(float64(count))
	}
}

// respondJSON sends a JSON response
func (h *CatalogHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError sends an error response
func (h *CatalogHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}

// RegisterRoutes registers all catalog routes
func (h *CatalogHandler) RegisterRoutes(router *mux.Router) {
	// Public routes
	router.HandleFunc("/products", h.metricsMiddleware("/products", h.ListProducts)).Methods("GET")
	router.HandleFunc("/products/{id}", h.metricsMiddleware("/products/{id}", h.GetProduct)).Methods("GET")

	// Inventory admin routes
	router.HandleFunc("/admin/products", h.metricsMiddleware("/admin/products", userhttp.AdminMiddleware(h.CreateProduct))).Methods("POST")
	router.HandleFunc("/admin/products/{id}", h.metricsMiddleware("/admin/products/{id}", userhttp.AdminMiddleware(h.UpdateProduct))).Methods("PUT")
	router.HandleFunc("/admin/products/{id}", h.metricsMiddleware("/admin/products/{id}", userhttp.AdminMiddleware(h.DeleteProduct))).Methods("DELETE")
}
