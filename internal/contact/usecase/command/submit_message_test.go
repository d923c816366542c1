package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/Golgrax/pupshop/internal/contact/domain"
	"github.com/Golgrax/pupshop/internal/contact/repository"
	userdomain "github.com/Golgrax/pupshop/internal/user/domain"
)

func setupSubmitHandler(t *testing.T) (*SubmitMessageHandler, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&userdomain.User{}, &domain.ContactMessage{}))
	return NewSubmitMessageHandler(repository.NewGormContactRepository(db)), db
}

func TestSubmitMessageAnonymous(t *testing.T) {
	handler, db := setupSubmitHandler(t)

	message, err := handler.Handle(SubmitMessageCommand{
		Name:    "Juan Dela Cruz",
		Email:   "juan@pup.test",
		Message: "When will the tote bags restock?",
	})

	require.NoError(t, err)
	assert.NotZero(t, message.ID)
	assert.Nil(t, message.UserID)

	var stored domain.ContactMessage
	require.NoError(t, db.First(&stored, message.ID).Error)
	assert.Equal(t, "When will the tote bags restock?", stored.Message)
}

func TestSubmitMessageSignedIn(t *testing.T) {
	handler, db := setupSubmitHandler(t)

	user := &userdomain.User{Name: "Juan", Email: "juan@pup.test", Password: "x"}
	require.NoError(t, db.Create(user).Error)

	message, err := handler.Handle(SubmitMessageCommand{
		UserID:  &user.ID,
		Name:    user.Name,
		Email:   user.Email,
		Message: "Thanks for the quick delivery!",
	})

	require.NoError(t, err)
	require.NotNil(t, message.UserID)
	assert.Equal(t, user.ID, *message.UserID)
}

func TestSubmitMessageValidation(t *testing.T) {
	handler, _ := setupSubmitHandler(t)

	tests := []struct {
		name string
		cmd  SubmitMessageCommand
	}{
		{"missing name", SubmitMessageCommand{Email: "a@b.co", Message: "hi"}},
		{"missing email", SubmitMessageCommand{Name: "Juan", Message: "hi"}},
		{"malformed email", SubmitMessageCommand{Name: "Juan", Email: "nope", Message: "hi"}},
		{"blank message", SubmitMessageCommand{Name: "Juan", Email: "a@b.co", Message: "   "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := handler.Handle(tt.cmd)
			assert.Error(t, err)
		})
	}
}
