package repository

import (
	"github.com/taskhub/todo-api/internal/models"
)

// UserRepository defines the interface for user data access. Lookups only
// see active rows; soft-deleted users are invisible everywhere except the
// unscoped aggregate queries.
type UserRepository interface {
	// Create inserts a new user. A duplicate active email surfaces as
	// gorm.ErrDuplicatedKey.
	Create(user *models.User) error

	// FindByID finds an active user by ID.
	FindByID(id uint64) (*models.User, error)

	// FindByEmail finds an active user by email.
	FindByEmail(email string) (*models.User, error)

	// Update persists changes to an existing user.
	Update(user *models.User) error

	// SoftDelete marks a user as deleted without removing the row.
	SoftDelete(user *models.User) error

	// CountActive returns the number of active users.
	CountActive() (int64, error)

	// ListActive retrieves active users with pagination. The returned total
	// is the active count before pagination.
	ListActive(limit, offset int) ([]models.User, int64, error)
}

// TaskFilter holds filtering options for listing tasks.
type TaskFilter struct {
	OwnerID uint64
	Status  *models.TaskStatus
	Limit   int
	Offset  int
}

// TaskRepository defines the interface for task data access. Every
// owner-scoped method filters by both owner and soft-delete state.
type TaskRepository interface {
	// Create inserts a new task.
	Create(task *models.Task) error

	// FindOwned finds an active task belonging to the given owner.
	FindOwned(taskID, ownerID uint64) (*models.Task, error)

	// ListOwned retrieves an owner's active tasks with filtering and
	// pagination, newest first. The total reflects the filtered set before
	// pagination.
	ListOwned(filter TaskFilter) ([]models.Task, int64, error)

	// Update persists changes to an existing task.
	Update(task *models.Task) error

	// SoftDelete marks a task as deleted without removing the row.
	SoftDelete(task *models.Task) error

	// CountActive returns the number of active tasks across all owners.
	CountActive() (int64, error)

	// CountByStatus returns the number of active tasks with the given status
	// across all owners.
	CountByStatus(status models.TaskStatus) (int64, error)
}
