//go:build wireinject
// +build wireinject

package order

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/Golgrax/pupshop/internal/cart"
	catalogdomain "github.com/Golgrax/pupshop/internal/catalog/domain"
	catalogrepository "github.com/Golgrax/pupshop/internal/catalog/repository"
	"github.com/Golgrax/pupshop/internal/order/delivery/http"
	"github.com/Golgrax/pupshop/internal/order/domain"
	"github.com/Golgrax/pupshop/internal/order/repository"
	"github.com/Golgrax/pupshop/internal/order/usecase/command"
	"github.com/Golgrax/pupshop/internal/order/usecase/query"
)

// ProvideOrderRepository provides the order repository
func ProvideOrderRepository(db *gorm.DB) domain.OrderRepository {
	return repository.NewGormOrderRepository(db)
}

// ProvideProductRepository provides the catalog repository checkout reads from
func ProvideProductRepository(db *gorm.DB) catalogdomain.ProductRepository {
	return catalogrepository.NewGormProductRepository(db)
}

// Command handler providers
func ProvidePlaceOrderHandler(orders domain.OrderRepository, products catalogdomain.ProductRepository) *command.PlaceOrderHandler {
	return command.NewPlaceOrderHandler(orders, products)
}

// Query handler providers
func ProvidePreviewCheckoutHandler(products catalogdomain.ProductRepository) *query.PreviewCheckoutHandler {
	return query.NewPreviewCheckoutHandler(products)
}

func ProvideListOrdersHandler(repo domain.OrderRepository) *query.ListOrdersHandler {
	return query.NewListOrdersHandler(repo)
}

func ProvideGetOrderHandler(repo domain.OrderRepository) *query.GetOrderHandler {
	return query.NewGetOrderHandler(repo)
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideOrderRepository,
	ProvideProductRepository,
)

var HandlerSet = wire.NewSet(
	ProvidePlaceOrderHandler,
	ProvidePreviewCheckoutHandler,
	ProvideListOrdersHandler,
	ProvideGetOrderHandler,
)

// InitializeHTTPHandler initializes the HTTP handler with all dependencies
func InitializeHTTPHandler(db *gorm.DB, carts *cart.Store) (*http.OrderHandler, error) {
	wire.Build(
		RepositorySet,
		HandlerSet,
		http.NewOrderHandler,
	)
	return nil, nil
}
