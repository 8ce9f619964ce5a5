package database

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/taskhub/todo-api/internal/auth"
	"github.com/taskhub/todo-api/internal/config"
	"github.com/taskhub/todo-api/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupBootstrapTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	require.NoError(t, Migrate(db))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return db
}

func bootstrapTestConfig() *config.Config {
	return &config.Config{
		AdminEmail:    "admin@todo.com.br",
		AdminPassword: "senha123",
		BcryptCost:    bcrypt.MinCost,
	}
}

func TestSeedAdmin_CreatesAccount(t *testing.T) {
	db := setupBootstrapTestDB(t)
	cfg := bootstrapTestConfig()

	require.NoError(t, SeedAdmin(db, cfg))

	var admin models.User
	require.NoError(t, db.Where("email = ?", cfg.AdminEmail).First(&admin).Error)
	require.Equal(t, models.RoleAdmin, admin.Role)
	require.NotNil(t, admin.Name)
	require.Equal(t, "Admin", *admin.Name)
	require.True(t, auth.VerifyPassword(admin.PasswordHash, cfg.AdminPassword))
}

func TestSeedAdmin_Idempotent(t *testing.T) {
	db := setupBootstrapTestDB(t)
	cfg := bootstrapTestConfig()

	require.NoError(t, SeedAdmin(db, cfg))
	require.NoError(t, SeedAdmin(db, cfg))

	var count int64
	require.NoError(t, db.Model(&models.User{}).Where("email = ?", cfg.AdminEmail).Count(&count).Error)
	require.EqualValues(t, 1, count)
}
