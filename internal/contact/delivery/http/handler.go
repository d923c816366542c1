package http

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Golgrax/pupshop/internal/contact/usecase/command"
	userhttp "github.com/Golgrax/pupshop/internal/user/delivery/http"
)

// ContactHandler handles HTTP requests for the contact form
type ContactHandler struct {
	submitHandler *command.SubmitMessageHandler
}

// NewContactHandler creates a new contact handler
func NewContactHandler(submitHandler *command.SubmitMessageHandler) *ContactHandler {
	return &ContactHandler{submitHandler: submitHandler}
}

// SubmitMessage handles POST /contact. Signed-in users get their account
// linked to the message; anonymous submissions are accepted as-is.
func (h *ContactHandler) SubmitMessage(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Message string `json:"message"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	var userID *uint
	if id, ok := userhttp.UserIDFromContext(r.Context()); ok {
		userID = &id
	}

	cmd := command.SubmitMessageCommand{
		UserID:  userID,
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	}

	message, err := h.submitHandler.Handle(cmd)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.respondJSON(w, http.StatusCreated, message)
}

// respondJSON sends a JSON response
func (h *ContactHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError sends an error response
func (h *ContactHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}

// RegisterRoutes registers the contact form route
func (h *ContactHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/contact", userhttp.OptionalAuthMiddleware(h.SubmitMessage)).Methods("POST")
}
