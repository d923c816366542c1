package command

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	catalogdomain "github.com/Golgrax/pupshop/internal/catalog/domain"
	catalogrepository "github.com/Golgrax/pupshop/internal/catalog/repository"
	"github.com/Golgrax/pupshop/internal/order/domain"
	"github.com/Golgrax/pupshop/internal/order/repository"
	userdomain "github.com/Golgrax/pupshop/internal/user/domain"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&userdomain.User{},
		&catalogdomain.Product{},
		&domain.Order{},
		&domain.OrderItem{},
	))

	return db
}

func setupHandler(t *testing.T) (*PlaceOrderHandler, *gorm.DB) {
	t.Helper()

	db := setupTestDB(t)
	orders := repository.NewGormOrderRepository(db)
	products := catalogrepository.NewGormProductRepository(db)
	return NewPlaceOrderHandler(orders, products), db
}

func createTestUser(t *testing.T, db *gorm.DB) *userdomain.User {
	t.Helper()

	user := &userdomain.User{Name: "Juan Dela Cruz", Email: "juan@iskolarngbayan.pup.edu.ph", Password: "hashed", Role: userdomain.RoleUser}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createTestProduct(t *testing.T, db *gorm.DB, name string, price float64, stock int) *catalogdomain.Product {
	t.Helper()

	product := &catalogdomain.Product{Name: name, Price: price, StockQuantity: stock}
	require.NoError(t, db.Create(product).Error)
	return product
}

func TestPlaceOrderSuccess(t *testing.T) {
	handler, db := setupHandler(t)
	user := createTestUser(t, db)
	signage := createTestProduct(t, db, "PUP Jeepney Signage", 20.00, 5)

	order, err := handler.Handle(context.Background(), PlaceOrderCommand{
		UserID: user.ID,
		Items:  map[uint]int{signage.ID: 2},
	})

	require.NoError(t, err)
	assert.Equal(t, 2*20.00+domain.ShippingFee, order.TotalAmount)
	assert.Equal(t, domain.StatusPending, order.Status)
	assert.True(t, strings.HasPrefix(order.ReferenceNo, "ORD-"))
	assert.Len(t, order.ReferenceNo, len("ORD-")+8)

	var stored domain.Order
	require.NoError(t, db.Preload("Items").First(&stored, order.ID).Error)
	require.Len(t, stored.Items, 1)
	assert.Equal(t, signage.ID, stored.Items[0].ProductID)
	assert.Equal(t, 2, stored.Items[0].Quantity)
	assert.Equal(t, 20.00, stored.Items[0].ItemPriceAtOrder)

	var product catalogdomain.Product
	require.NoError(t, db.First(&product, signage.ID).Error)
	assert.Equal(t, 3, product.StockQuantity)
	assert.Equal(t, 2, product.SalesCount)
}

func TestPlaceOrderMultipleLines(t *testing.T) {
	handler, db := setupHandler(t)
	user := createTestUser(t, db)
	lanyard := createTestProduct(t, db, "PUP Lanyard", 140.00, 100)
	tote := createTestProduct(t, db, "PUP Tote Bag", 160.00, 75)

	order, err := handler.Handle(context.Background(), PlaceOrderCommand{
		UserID: user.ID,
		Items:  map[uint]int{lanyard.ID: 1, tote.ID: 3},
	})

	require.NoError(t, err)
	assert.Equal(t, 140.00+3*160.00+domain.ShippingFee, order.TotalAmount)

	var stored domain.Order
	require.NoError(t, db.Preload("Items").First(&stored, order.ID).Error)
	assert.Len(t, stored.Items, 2)
}

func TestPlaceOrderRequiresAuthentication(t *testing.T) {
	handler, db := setupHandler(t)
	signage := createTestProduct(t, db, "PUP Jeepney Signage", 20.00, 5)

	_, err := handler.Handle(context.Background(), PlaceOrderCommand{
		UserID: 0,
		Items:  map[uint]int{signage.ID: 1},
	})

	assert.ErrorIs(t, err, domain.ErrAuthenticationRequired)
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	handler, db := setupHandler(t)
	user := createTestUser(t, db)

	_, err := handler.Handle(context.Background(), PlaceOrderCommand{UserID: user.ID, Items: map[uint]int{}})

	assert.ErrorIs(t, err, domain.ErrEmptyCart)
}

func TestPlaceOrderProductNotFound(t *testing.T) {
	handler, db := setupHandler(t)
	user := createTestUser(t, db)

	_, err := handler.Handle(context.Background(), PlaceOrderCommand{UserID: user.ID, Items: map[uint]int{9999: 1}})

	var notFound *domain.ProductNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, uint(9999), notFound.ProductID)
}

func TestPlaceOrderInsufficientStock(t *testing.T) {
	handler, db := setupHandler(t)
	user := createTestUser(t, db)
	shirt := createTestProduct(t, db, "PUP T-Shirt", 450.00, 5)

	_, err := handler.Handle(context.Background(), PlaceOrderCommand{
		UserID: user.ID,
		Items:  map[uint]int{shirt.ID: 10},
	})

	var insufficient *domain.InsufficientStockError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, "PUP T-Shirt", insufficient.Name)
	assert.Equal(t, 10, insufficient.Requested)
	assert.Equal(t, 5, insufficient.Available)
	assert.Contains(t, err.Error(), "PUP T-Shirt")

	// Nothing was written.
	var orderCount int64
	require.NoError(t, db.Model(&domain.Order{}).Count(&orderCount).Error)
	assert.Equal(t, int64(0), orderCount)

	var product catalogdomain.Product
	require.NoError(t, db.First(&product, shirt.ID).Error)
	assert.Equal(t, 5, product.StockQuantity)
	assert.Equal(t, 0, product.SalesCount)
}

func TestPlaceOrderInvalidQuantity(t *testing.T) {
	handler, db := setupHandler(t)
	user := createTestUser(t, db)
	signage := createTestProduct(t, db, "PUP Jeepney Signage", 20.00, 5)

	_, err := handler.Handle(context.Background(), PlaceOrderCommand{
		UserID: user.ID,
		Items:  map[uint]int{signage.ID: 0},
	})

	assert.Error(t, err)
}

func TestPlaceOrderFailureIsAtomic(t *testing.T) {
	handler, db := setupHandler(t)
	user := createTestUser(t, db)
	lanyard := createTestProduct(t, db, "PUP Lanyard", 140.00, 100)

	// The second line exceeds stock after validation would have passed for
	// the first, exercising the transactional guard end to end.
	shirt := createTestProduct(t, db, "PUP T-Shirt", 450.00, 1)

	_, err := handler.Handle(context.Background(), PlaceOrderCommand{
		UserID: user.ID,
		Items:  map[uint]int{lanyard.ID: 2, shirt.ID: 5},
	})

	var insufficient *domain.InsufficientStockError
	require.ErrorAs(t, err, &insufficient)

	var orderCount, itemCount int64
	require.NoError(t, db.Model(&domain.Order{}).Count(&orderCount).Error)
	require.NoError(t, db.Model(&domain.OrderItem{}).Count(&itemCount).Error)
	assert.Equal(t, int64(0), orderCount)
	assert.Equal(t, int64(0), itemCount)

	var product catalogdomain.Product
	require.NoError(t, db.First(&product, lanyard.ID).Error)
	assert.Equal(t, 100, product.StockQuantity)
	assert.Equal(t, 0, product.SalesCount)
}

func TestPlaceOrderSnapshotsPrice(t *testing.T) {
	handler, db := setupHandler(t)
	user := createTestUser(t, db)
	lanyard := createTestProduct(t, db, "PUP Lanyard", 140.00, 100)

	order, err := handler.Handle(context.Background(), PlaceOrderCommand{
		UserID: user.ID,
		Items:  map[uint]int{lanyard.ID: 1},
	})
	require.NoError(t, err)

	// A later price change must not touch the recorded line price.
	require.NoError(t, db.Model(&catalogdomain.Product{}).
		Where("id = ?", lanyard.ID).
		Update("price", 999.00).Error)

	var stored domain.Order
	require.NoError(t, db.Preload("Items").First(&stored, order.ID).Error)
	require.Len(t, stored.Items, 1)
	assert.Equal(t, 140.00, stored.Items[0].ItemPriceAtOrder)
	assert.Equal(t, 140.00+domain.ShippingFee, stored.TotalAmount)
}

func TestPlaceOrderReferenceNumbersAreUnique(t *testing.T) {
	handler, db := setupHandler(t)
	user := createTestUser(t, db)
	lanyard := createTestProduct(t, db, "PUP Lanyard", 140.00, 100)

	seen := map[string]bool{}
	for i := 0; i < 5; i++ {
		order, err := handler.Handle(context.Background(), PlaceOrderCommand{
			UserID: user.ID,
			Items:  map[uint]int{lanyard.ID: 1},
		})
		require.NoError(t, err)
		assert.False(t, seen[order.ReferenceNo])
		seen[order.ReferenceNo] = true
	}
}

func TestPlaceOrderConcurrentStockGuard(t *testing.T) {
	_, db := setupHandler(t)
	user := createTestUser(t, db)
	shirt := createTestProduct(t, db, "PUP T-Shirt", 450.00, 3)

	// Drain the stock out from under a fresh command; the repository guard
	// is the backstop when validation raced a concurrent checkout.
	orders := repository.NewGormOrderRepository(db)
	err := orders.CreateWithItems(
		&domain.Order{ReferenceNo: "ORD-raced", UserID: user.ID, TotalAmount: 450.00, Status: domain.StatusPending},
		[]domain.OrderItem{{ProductID: shirt.ID, Quantity: 5, ItemPriceAtOrder: 450.00}},
	)

	var insufficient *domain.InsufficientStockError
	require.True(t, errors.As(err, &insufficient))
	assert.Equal(t, 3, insufficient.Available)

	var product catalogdomain.Product
	require.NoError(t, db.First(&product, shirt.ID).Error)
	assert.Equal(t, 3, product.StockQuantity)
}

func TestPlaceOrderThroughTracedRepository(t *testing.T) {
	db := setupTestDB(t)
	orders := repository.NewGormOrderRepositoryWithTracing(db)
	products := catalogrepository.NewGormProductRepository(db)
	handler := NewPlaceOrderHandler(orders, products)

	user := createTestUser(t, db)
	lanyard := createTestProduct(t, db, "PUP Lanyard", 140.00, 100)

	// The traced repository commits the checkout under a span; semantics
	// must match the plain repository exactly.
	order, err := handler.Handle(context.Background(), PlaceOrderCommand{
		UserID: user.ID,
		Items:  map[uint]int{lanyard.ID: 2},
	})

	require.NoError(t, err)
	assert.Equal(t, 2*140.00+domain.ShippingFee, order.TotalAmount)

	var product catalogdomain.Product
	require.NoError(t, db.First(&product, lanyard.ID).Error)
	assert.Equal(t, 98, product.StockQuantity)
	assert.Equal(t, 2, product.SalesCount)

	_, err = handler.Handle(context.Background(), PlaceOrderCommand{
		UserID: user.ID,
		Items:  map[uint]int{lanyard.ID: 99},
	})
	var insufficient *domain.InsufficientStockError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, 98, insufficient.Available)
}
