package repository

import (
	"github.com/taskhub/todo-api/internal/database"
	"github.com/taskhub/todo-api/internal/models"
	"gorm.io/gorm"
)

// GormTaskRepository is a GORM implementation of TaskRepository.
type GormTaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new TaskRepository.
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &GormTaskRepository{db: db}
}

// Create inserts a new task.
func (r *GormTaskRepository) Create(task *models.Task) error {
	return r.db.Create(task).Error
}

// FindOwned finds an active task belonging to the given owner. A task that
// does not exist, is soft-deleted, or belongs to someone else all yield
// gorm.ErrRecordNotFound.
func (r *GormTaskRepository) FindOwned(taskID, ownerID uint64) (*models.Task, error) {
	var task models.Task
	err := r.db.Where("id = ? AND owner_id = ?", taskID, ownerID).First(&task).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// ListOwned retrieves an owner's active tasks, newest first. The total is
// counted before pagination is applied.
func (r *GormTaskRepository) ListOwned(filter TaskFilter) ([]models.Task, int64, error) {
	query := r.db.Model(&models.Task{}).Where("tasks.owner_id = ?", filter.OwnerID)

	if filter.Status != nil {
		query = query.Where("tasks.status = ?", *filter.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var tasks []models.Task
	err := query.Order("tasks.created_at DESC").
		Scopes(database.Paginate(filter.Limit, filter.Offset)).
		Find(&tasks).Error
	if err != nil {
		return nil, 0, err
	}

	return tasks, total, nil
}

// Update persists changes to an existing task.
func (r *GormTaskRepository) Update(task *models.Task) error {
	return r.db.Save(task).Error
}

// SoftDelete marks a task as deleted. The row is retained.
func (r *GormTaskRepository) SoftDelete(task *models.Task) error {
	return r.db.Delete(task).Error
}

// CountActive returns the number of active tasks across all owners.
func (r *GormTaskRepository) CountActive() (int64, error) {
	var count int64
	err := r.db.Model(&models.Task{}).Count(&count).Error
	return count, err
}

// CountByStatus returns the number of active tasks with the given status.
func (r *GormTaskRepository) CountByStatus(status models.TaskStatus) (int64, error) {
	var count int64
	err := r.db.Model(&models.Task{}).Where("status = ?", status).Count(&count).Error
	return count, err
}
