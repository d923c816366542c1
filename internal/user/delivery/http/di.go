package http

import (
	"github.com/Golgrax/pupshop/internal/cart"
	"github.com/Golgrax/pupshop/internal/user/domain"
	"github.com/Golgrax/pupshop/internal/user/usecase/command"
	"github.com/Golgrax/pupshop/internal/user/usecase/query"
)

// CommandHandlers holds all user command handlers for injection
type CommandHandlers struct {
	RegisterHandler      *command.RegisterUserHandler
	LoginHandler         *command.LoginUserHandler
	UpdateProfileHandler *command.UpdateProfileHandler
	SaveAddressHandler   *command.SaveAddressHandler
}

// QueryHandlers holds all user query handlers for injection
type QueryHandlers struct {
	GetUserHandler       *query.GetUserHandler
	ListAddressesHandler *query.ListAddressesHandler
}

// NewUserHandlerWithDI creates a user handler from pre-built handler sets
func NewUserHandlerWithDI(
	commands *CommandHandlers,
	queries *QueryHandlers,
	repo domain.UserRepository,
	addresses domain.AddressRepository,
	carts *cart.Store,
) *UserHandler {
	h := NewUserHandler(repo, addresses, carts)
	h.registerHandler = commands.RegisterHandler
	h.loginHandler = commands.LoginHandler
	h.updateProfileHandler = commands.UpdateProfileHandler
	h.saveAddressHandler = commands.SaveAddressHandler
	h.getUserHandler = queries.GetUserHandler
	h.listAddressesHandler = queries.ListAddressesHandler
	return h
}
