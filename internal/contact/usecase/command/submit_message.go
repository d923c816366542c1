package command

import (
	"fmt"
	"strings"
	"time"

	"github.com/Golgrax/pupshop/internal/contact/domain"
)

// SubmitMessageCommand represents a contact form submission. UserID is nil
// when nobody is signed in; anonymous messages are accepted.
type SubmitMessageCommand struct {
	UserID  *uint
	Name    string
	Email   string
	Message string
}

// SubmitMessageHandler handles the submit message command
type SubmitMessageHandler struct {
	repo domain.ContactRepository
}

// NewSubmitMessageHandler creates a new submit message handler
func NewSubmitMessageHandler(repo domain.ContactRepository) *SubmitMessageHandler {
	return &SubmitMessageHandler{repo: repo}
}

// Handle executes the submit message command
func (h *SubmitMessageHandler) Handle(cmd SubmitMessageCommand) (*domain.ContactMessage, error) {
	if cmd.Name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if cmd.Email == "" {
		return nil, fmt.Errorf("email is required")
	}
	if !strings.Contains(cmd.Email, "@") {
		return nil, fmt.Errorf("please enter a valid email address")
	}
	if strings.TrimSpace(cmd.Message) == "" {
		return nil, fmt.Errorf("message is required")
	}

	message := &domain.ContactMessage{
		UserID:    cmd.UserID,
		Name:      cmd.Name,
		Email:     cmd.Email,
		Message:   cmd.Message,
		CreatedAt: time.Now(),
	}

	if err := h.repo.Create(message); err != nil {
		return nil, fmt.Errorf("failed to save contact message: %w", err)
	}

	return message, nil
}
