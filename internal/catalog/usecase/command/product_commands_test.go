package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/Golgrax/pupshop/internal/catalog/domain"
	"github.com/Golgrax/pupshop/internal/catalog/repository"
)

func setupProductRepo(t *testing.T) domain.ProductRepository {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&domain.Product{}))
	return repository.NewGormProductRepository(db)
}

func TestCreateProduct(t *testing.T) {
	repo := setupProductRepo(t)
	handler := NewCreateProductHandler(repo)

	product, err := handler.Handle(CreateProductCommand{
		Name:          "PUP Tote Bag",
		Price:         160.00,
		StockQuantity: 75,
		Category:      "Bags",
	})

	require.NoError(t, err)
	assert.NotZero(t, product.ID)
	assert.Equal(t, 160.00, product.Price)
	assert.Equal(t, 75, product.StockQuantity)
	assert.Equal(t, 0, product.SalesCount)
}

func TestCreateProductValidation(t *testing.T) {
	repo := setupProductRepo(t)
	handler := NewCreateProductHandler(repo)

	_, err := handler.Handle(CreateProductCommand{Price: 10})
	assert.Error(t, err)

	_, err = handler.Handle(CreateProductCommand{Name: "X", Price: -1})
	assert.Error(t, err)

	_, err = handler.Handle(CreateProductCommand{Name: "X", Price: 1, StockQuantity: -5})
	assert.Error(t, err)
}

func TestUpdateProduct(t *testing.T) {
	repo := setupProductRepo(t)
	create := NewCreateProductHandler(repo)
	update := NewUpdateProductHandler(repo)

	product, err := create.Handle(CreateProductCommand{Name: "PUP T-Shirt", Price: 450.00, StockQuantity: 50})
	require.NoError(t, err)

	updated, err := update.Handle(UpdateProductCommand{
		ID:            product.ID,
		Price:         475.00,
		StockQuantity: 40,
		Description:   "University shirt, new print",
	})

	require.NoError(t, err)
	assert.Equal(t, "PUP T-Shirt", updated.Name)
	assert.Equal(t, 475.00, updated.Price)
	assert.Equal(t, 40, updated.StockQuantity)
	assert.Equal(t, "University shirt, new print", updated.Description)
}

func TestUpdateProductNotFound(t *testing.T) {
	repo := setupProductRepo(t)
	handler := NewUpdateProductHandler(repo)

	_, err := handler.Handle(UpdateProductCommand{ID: 9999, Price: 1, StockQuantity: 1})
	assert.Error(t, err)
}

func TestDeleteProduct(t *testing.T) {
	repo := setupProductRepo(t)
	create := NewCreateProductHandler(repo)
	del := NewDeleteProductHandler(repo)

	product, err := create.Handle(CreateProductCommand{Name: "PUP Lanyard", Price: 140.00, StockQuantity: 100})
	require.NoError(t, err)

	require.NoError(t, del.Handle(DeleteProductCommand{ID: product.ID}))

	_, err = repo.FindByID(product.ID)
	assert.Error(t, err)

	// Deleting a missing product reports an error.
	assert.Error(t, del.Handle(DeleteProductCommand{ID: product.ID}))
}
