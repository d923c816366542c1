package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/Golgrax/pupshop/internal/cart"
	"github.com/Golgrax/pupshop/internal/user/domain"
	"github.com/Golgrax/pupshop/internal/user/usecase/command"
	"github.com/Golgrax/pupshop/internal/user/usecase/query"
)

// UserHandler handles HTTP requests for accounts, profiles and addresses
type UserHandler struct {
	// Command handlers
	registerHandler      *command.RegisterUserHandler
	loginHandler         *command.LoginUserHandler
	updateProfileHandler *command.UpdateProfileHandler
	saveAddressHandler   *command.SaveAddressHandler

	// Query handlers
	getUserHandler       *query.GetUserHandler
	listAddressesHandler *query.ListAddressesHandler

	repo  domain.UserRepository
	carts *cart.Store

	requestCounter  *prometheus.CounterVec
	requestLatency  *prometheus.HistogramVec
	registeredUsers prometheus.Gauge
}

// NewUserHandler creates a new user handler
func NewUserHandler(repo domain.UserRepository, addresses domain.AddressRepository, carts *cart.Store) *UserHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pupshop_user_requests_total",
			Help: "Total number of account and profile requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "pupshop_user_request_duration_seconds",
			Help:    "Duration of account and profile requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	registeredUsers := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "pupshop_registered_users",
			Help: "Number of registered accounts",
		},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)
	prometheus.MustRegister(registeredUsers)

	return &UserHandler{
		registerHandler:      command.NewRegisterUserHandler(repo),
		loginHandler:         command.NewLoginUserHandler(repo),
		updateProfileHandler: command.NewUpdateProfileHandler(repo),
		saveAddressHandler:   command.NewSaveAddressHandler(addresses),
		getUserHandler:       query.NewGetUserHandler(repo),
		listAddressesHandler: query.NewListAddressesHandler(addresses),
		repo:                 repo,
		carts:                carts,
		requestCounter:       requestCounter,
		requestLatency:       requestLatency,
		registeredUsers:      registeredUsers,
	}
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// metricsMiddleware wraps handlers with Prometheus metrics
func (h *UserHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
	}
}

// Register handles POST /auth/register
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name            string `json:"name"`
		Email           string `json:"email"`
		Password        string `json:"password"`
		ConfirmPassword string `json:"confirm_password"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Password != req.ConfirmPassword {
		h.respondError(w, http.StatusBadRequest, "Passwords do not match")
		return
	}

	cmd := command.RegisterUserCommand{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     domain.RoleUser,
	}

	user, err := h.registerHandler.Handle(cmd)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.updateRegisteredUsersMetric()
	h.respondJSON(w, http.StatusCreated, user)
}

// Login handles POST /auth/login
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	cmd := command.LoginUserCommand{
		Email:    req.Email,
		Password: req.Password,
	}

	response, err := h.loginHandler.Handle(cmd)
	if err != nil {
		h.respondError(w, http.StatusUnauthorized, err.Error())
		return
	}

	// Each session starts with an empty cart.
	h.carts.Reset(response.User.ID)

	h.respondJSON(w, http.StatusOK, response)
}

// GetProfile handles GET /users/me
func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	user, err := h.getUserHandler.Handle(query.GetUserQuery{ID: userID})
	if err != nil {
		h.respondError(w, http.StatusNotFound, err.Error())
		return
	}

	h.respondJSON(w, http.StatusOK, user)
}

// UpdateProfile handles PUT /users/me
func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	var req struct {
		Name     string `json:"name"`
		Password string `json:"password"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	cmd := command.UpdateProfileCommand{
		ID:       userID,
		Name:     req.Name,
		Password: req.Password,
	}

	user, err := h.updateProfileHandler.Handle(cmd)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.respondJSON(w, http.StatusOK, user)
}

// ListAddresses handles GET /users/me/addresses
func (h *UserHandler) ListAddresses(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	addresses, err := h.listAddressesHandler.Handle(query.ListAddressesQuery{UserID: userID})
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.respondJSON(w, http.StatusOK, addresses)
}

// SaveAddress handles PUT /users/me/addresses/{slot}
func (h *UserHandler) SaveAddress(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	vars := mux.Vars(r)
	slot, err := strconv.Atoi(vars["slot"])
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid address slot")
		return
	}

	var req struct {
		AddressLine string `json:"address_line"`
		ContactName string `json:"contact_name"`
		ContactNo   string `json:"contact_no"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	cmd := command.SaveAddressCommand{
		UserID:      userID,
		Slot:        slot,
		AddressLine: req.AddressLine,
		ContactName: req.ContactName,
		ContactNo:   req.ContactNo,
	}

	address, err := h.saveAddressHandler.Handle(cmd)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.respondJSON(w, http.StatusOK, address)
}

// updateRegisteredUsersMetric updates the registered accounts gauge
func (h *UserHandler) updateRegisteredUsersMetric() {
	count, err := h.repo.Count()
	if err == nil {
		h.registeredUsers.Set(float64(count))
	}
}

// respondJSON sends a JSON response
func (h *UserHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError sends an error response
func (h *UserHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}

// RegisterRoutes registers all account routes
func (h *UserHandler) RegisterRoutes(router *mux.Router) {
	// Public routes
	router.HandleFunc("/auth/register", h.metricsMiddleware("/auth/register", h.Register)).Methods("POST")
	router.HandleFunc("/auth/login", h.metricsMiddleware("/auth/login", h.Login)).Methods("POST")

	// Authenticated user routes
	router.HandleFunc("/users/me", h.metricsMiddleware("/users/me", AuthMiddleware(h.GetProfile))).Methods("GET")
	router.HandleFunc("/users/me", h.metricsMiddleware("/users/me", AuthMiddleware(h.UpdateProfile))).Methods("PUT")
	router.HandleFunc("/users/me/addresses", h.metricsMiddleware("/users/me/addresses", AuthMiddleware(h.ListAddresses))).Methods("GET")
	router.HandleFunc("/users/me/addresses/{slot}", h.metricsMiddleware("/users/me/addresses/{slot}", AuthMiddleware(h.SaveAddress))).Methods("PUT")
}
