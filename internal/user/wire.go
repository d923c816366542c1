//go:build wireinject
// +build wireinject

package user

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/Golgrax/pupshop/internal/cart"
	"github.com/Golgrax/pupshop/internal/user/delivery/http"
	"github.com/Golgrax/pupshop/internal/user/domain"
	"github.com/Golgrax/pupshop/internal/user/repository"
	"github.com/Golgrax/pupshop/internal/user/usecase/command"
	"github.com/Golgrax/pupshop/internal/user/usecase/query"
)

// ProvideUserRepository provides the user repository
func ProvideUserRepository(db *gorm.DB) domain.UserRepository {
	return repository.NewGormUserRepository(db)
}

// ProvideAddressRepository provides the address repository
func ProvideAddressRepository(db *gorm.DB) domain.AddressRepository {
	return repository.NewGormAddressRepository(db)
}

// Command handler providers
func ProvideRegisterUserHandler(repo domain.UserRepository) *command.RegisterUserHandler {
	return command.NewRegisterUserHandler(repo)
}

func ProvideLoginUserHandler(repo domain.UserRepository) *command.LoginUserHandler {
	return command.NewLoginUserHandler(repo)
}

func ProvideUpdateProfileHandler(repo domain.UserRepository) *command.UpdateProfileHandler {
	return command.NewUpdateProfileHandler(repo)
}

func ProvideSaveAddressHandler(repo domain.AddressRepository) *command.SaveAddressHandler {
	return command.NewSaveAddressHandler(repo)
}

// Query handler providers
func ProvideGetUserHandler(repo domain.UserRepository) *query.GetUserHandler {
	return query.NewGetUserHandler(repo)
}

func ProvideListAddressesHandler(repo domain.AddressRepository) *query.ListAddressesHandler {
	return query.NewListAddressesHandler(repo)
}

// ProvideCommandHandlers provides all command handlers
func ProvideCommandHandlers(
	registerHandler *command.RegisterUserHandler,
	loginHandler *command.LoginUserHandler,
	updateProfileHandler *command.UpdateProfileHandler,
	saveAddressHandler *command.SaveAddressHandler,
) *http.CommandHandlers {
	return &http.CommandHandlers{
		RegisterHandler:      registerHandler,
		LoginHandler:         loginHandler,
		UpdateProfileHandler: updateProfileHandler,
		SaveAddressHandler:   saveAddressHandler,
	}
}

// ProvideQueryHandlers provides all query handlers
func ProvideQueryHandlers(
	getUserHandler *query.GetUserHandler,
	listAddressesHandler *query.ListAddressesHandler,
) *http.QueryHandlers {
	return &http.QueryHandlers{
		GetUserHandler:       getUserHandler,
		ListAddressesHandler: listAddressesHandler,
	}
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideUserRepository,
	ProvideAddressRepository,
)

var CommandHandlerSet = wire.NewSet(
	ProvideRegisterUserHandler,
	ProvideLoginUserHandler,
	ProvideUpdateProfileHandler,
	ProvideSaveAddressHandler,
	ProvideCommandHandlers,
)

var QueryHandlerSet = wire.NewSet(
	ProvideGetUserHandler,
	ProvideListAddressesHandler,
	ProvideQueryHandlers,
)

var AllHandlersSet = wire.NewSet(
	RepositorySet,
	CommandHandlerSet,
	QueryHandlerSet,
)

// InitializeHTTPHandler initializes the HTTP handler with all dependencies
func InitializeHTTPHandler(db *gorm.DB, carts *cart.Store) (*http.UserHandler, error) {
	wire.Build(
		AllHandlersSet,
		http.NewUserHandlerWithDI,
	)
	return nil, nil
}
