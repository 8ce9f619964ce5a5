package repository

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/taskhub/todo-api/internal/database"
	"github.com/taskhub/todo-api/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupUserRepoTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	require.NoError(t, database.Migrate(db))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return db
}

func createUser(t *testing.T, repo UserRepository, email string) *models.User {
	t.Helper()

	user := &models.User{
		Email:        email,
		PasswordHash: "hashed",
		Role:         models.RoleUser,
	}
	require.NoError(t, repo.Create(user))
	return user
}

func TestUserRepository_FindByEmail(t *testing.T) {
	db := setupUserRepoTestDB(t)
	repo := NewUserRepository(db)

	created := createUser(t, repo, "a@x.com")

	found, err := repo.FindByEmail("a@x.com")
	require.NoError(t, err)
	require.Equal(t, created.ID, found.ID)

	_, err = repo.FindByEmail("missing@x.com")
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUserRepository_SoftDeletedUserIsInvisible(t *testing.T) {
	db := setupUserRepoTestDB(t)
	repo := NewUserRepository(db)

	user := createUser(t, repo, "a@x.com")
	require.NoError(t, repo.SoftDelete(user))

	_, err := repo.FindByEmail("a@x.com")
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)

	_, err = repo.FindByID(user.ID)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)

	// Soft delete keeps the row.
	var raw models.User
	require.NoError(t, db.Unscoped().First(&raw, user.ID).Error)
	require.True(t, raw.DeletedAt.Valid)
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	db := setupUserRepoTestDB(t)
	repo := NewUserRepository(db)

	createUser(t, repo, "a@x.com")

	dup := &models.User{
		Email:        "a@x.com",
		PasswordHash: "hashed",
		Role:         models.RoleUser,
	}
	err := repo.Create(dup)
	require.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestUserRepository_UpdateKeepsOtherFields(t *testing.T) {
	db := setupUserRepoTestDB(t)
	repo := NewUserRepository(db)

	user := createUser(t, repo, "a@x.com")

	name := "Alice"
	user.Name = &name
	require.NoError(t, repo.Update(user))

	found, err := repo.FindByID(user.ID)
	require.NoError(t, err)
	require.NotNil(t, found.Name)
	require.Equal(t, "Alice", *found.Name)
	require.Equal(t, "a@x.com", found.Email)
	require.Equal(t, "hashed", found.PasswordHash)
	require.Equal(t, models.RoleUser, found.Role)
}

func TestUserRepository_CountAndListActive(t *testing.T) {
	db := setupUserRepoTestDB(t)
	repo := NewUserRepository(db)

	first := createUser(t, repo, "a@x.com")
	createUser(t, repo, "b@x.com")
	deleted := createUser(t, repo, "c@x.com")
	require.NoError(t, repo.SoftDelete(deleted))

	count, err := repo.CountActive()
	require.NoError(t, err)
	require.EqualValues(t, 2, count)

	users, total, err := repo.ListActive(1, 0)
	require.NoError(t, err)
	require.EqualValues(t, 2, total)
	require.Len(t, users, 1)
	require.Equal(t, first.ID, users[0].ID)
}
