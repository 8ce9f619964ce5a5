package repository

import (
	"github.com/taskhub/todo-api/internal/database"
	"github.com/taskhub/todo-api/internal/models"
	"gorm.io/gorm"
)

// GormUserRepository is a GORM implementation of UserRepository. The
// soft-delete filter comes from gorm.DeletedAt: every query in here sees
// active rows only unless it opts out with Unscoped.
type GormUserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &GormUserRepository{db: db}
}

// Create inserts a new user.
func (r *GormUserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// FindByID finds an active user by ID.
func (r *GormUserRepository) FindByID(id uint64) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByEmail finds an active user by email.
func (r *GormUserRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Update persists changes to an existing user.
func (r *GormUserRepository) Update(user *models.User) error {
	return r.db.Save(user).Error
}

// SoftDelete marks a user as deleted. The row is retained.
func (r *GormUserRepository) SoftDelete(user *models.User) error {
	return r.db.Delete(user).Error
}

// CountActive returns the number of active users.
func (r *GormUserRepository) CountActive() (int64, error) {
	var count int64
	err := r.db.Model(&models.User{}).Count(&count).Error
	return count, err
}

// ListActive retrieves active users with pagination.
func (r *GormUserRepository) ListActive(limit, offset int) ([]models.User, int64, error) {
	query := r.db.Model(&models.User{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []models.User
	if err := query.Order("users.id ASC").Scopes(database.Paginate(limit, offset)).Find(&users).Error; err != nil {
		return nil, 0, err
	}

	return users, total, nil
}
