package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/Golgrax/pupshop/internal/user/domain"
	"github.com/Golgrax/pupshop/internal/user/repository"
	"github.com/Golgrax/pupshop/internal/user/usecase/query"
)

func setupAddressRepos(t *testing.T) (domain.UserRepository, domain.AddressRepository) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&domain.User{}, &domain.Address{}))
	return repository.NewGormUserRepository(db), repository.NewGormAddressRepository(db)
}

func registerAddressUser(t *testing.T, users domain.UserRepository) *domain.User {
	t.Helper()

	user, err := NewRegisterUserHandler(users).Handle(RegisterUserCommand{
		Name:     "Juan",
		Email:    "juan@pup.test",
		Password: "secret123",
	})
	require.NoError(t, err)
	return user
}

func TestSaveAddressInsertsIntoFirstFreeSlot(t *testing.T) {
	users, addresses := setupAddressRepos(t)
	user := registerAddressUser(t, users)
	handler := NewSaveAddressHandler(addresses)

	first, err := handler.Handle(SaveAddressCommand{
		UserID:      user.ID,
		Slot:        domain.AddressSlot1,
		AddressLine: "123 Teresa St, Sta. Mesa, Manila",
		ContactName: "Juan Dela Cruz",
		ContactNo:   "09171234567",
	})
	require.NoError(t, err)
	assert.NotZero(t, first.ID)

	second, err := handler.Handle(SaveAddressCommand{
		UserID:      user.ID,
		Slot:        domain.AddressSlot2,
		AddressLine: "456 Valencia St, Quezon City",
		ContactName: "Maria Clara",
		ContactNo:   "09987654321",
	})
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	listed, err := query.NewListAddressesHandler(addresses).Handle(query.ListAddressesQuery{UserID: user.ID})
	require.NoError(t, err)
	require.Len(t, listed, 2)

	// Slots follow insertion order.
	assert.Equal(t, "123 Teresa St, Sta. Mesa, Manila", listed[0].AddressLine)
	assert.Equal(t, "456 Valencia St, Quezon City", listed[1].AddressLine)
}

func TestSaveAddressUpdatesExistingSlot(t *testing.T) {
	users, addresses := setupAddressRepos(t)
	user := registerAddressUser(t, users)
	handler := NewSaveAddressHandler(addresses)

	first, err := handler.Handle(SaveAddressCommand{
		UserID:      user.ID,
		Slot:        domain.AddressSlot1,
		AddressLine: "123 Teresa St, Sta. Mesa, Manila",
		ContactName: "Juan Dela Cruz",
		ContactNo:   "09171234567",
	})
	require.NoError(t, err)

	updated, err := handler.Handle(SaveAddressCommand{
		UserID:      user.ID,
		Slot:        domain.AddressSlot1,
		AddressLine: "789 Pureza St, Sta. Mesa, Manila",
		ContactName: "Juan Dela Cruz",
		ContactNo:   "09170000000",
	})
	require.NoError(t, err)
	assert.Equal(t, first.ID, updated.ID)

	listed, err := query.NewListAddressesHandler(addresses).Handle(query.ListAddressesQuery{UserID: user.ID})
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "789 Pureza St, Sta. Mesa, Manila", listed[0].AddressLine)
	assert.Equal(t, "09170000000", listed[0].ContactNo)
}

func TestSaveAddressValidation(t *testing.T) {
	users, addresses := setupAddressRepos(t)
	user := registerAddressUser(t, users)
	handler := NewSaveAddressHandler(addresses)

	valid := SaveAddressCommand{
		UserID:      user.ID,
		Slot:        domain.AddressSlot1,
		AddressLine: "123 Teresa St",
		ContactName: "Juan",
		ContactNo:   "09171234567",
	}

	missingUser := valid
	missingUser.UserID = 0
	_, err := handler.Handle(missingUser)
	assert.Error(t, err)

	badSlot := valid
	badSlot.Slot = 3
	_, err = handler.Handle(badSlot)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "slot")

	empty := valid
	empty.AddressLine = ""
	_, err = handler.Handle(empty)
	assert.Error(t, err)
}
