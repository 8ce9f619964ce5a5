package services

import (
	"errors"
	"fmt"

	"github.com/taskhub/todo-api/internal/models"
	"github.com/taskhub/todo-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrTaskNotFound  = errors.New("task not found")
	ErrTitleRequired = errors.New("title is required")
	ErrTitleEmpty    = errors.New("title cannot be empty")
	ErrInvalidStatus = errors.New("invalid task status")
)

// TaskService handles task business logic with ownership enforcement.
type TaskService struct {
	taskRepo repository.TaskRepository
}

// NewTaskService creates a new TaskService.
func NewTaskService(taskRepo repository.TaskRepository) *TaskService {
	return &TaskService{taskRepo: taskRepo}
}

// CreateTaskInput represents input for creating a task. Status is not
// accepted: new tasks always start as pending.
type CreateTaskInput struct {
	Title       string
	Description string
	OwnerID     uint64
}

// ListTasksInput represents filters for listing an owner's tasks.
type ListTasksInput struct {
	OwnerID uint64
	Status  *models.TaskStatus
	Limit   int
	Offset  int
}

// UpdateTaskInput represents a partial task update. Nil fields are left
// unchanged.
type UpdateTaskInput struct {
	Title       *string
	Description *string
	Status      *models.TaskStatus
}

// CreateTask creates a new pending task for the given owner.
func (s *TaskService) CreateTask(input CreateTaskInput) (*models.Task, error) {
	if input.Title == "" {
		return nil, ErrTitleRequired
	}

	task := &models.Task{
		Title:       input.Title,
		Description: input.Description,
		Status:      models.TaskStatusPending,
		OwnerID:     input.OwnerID,
	}

	if err := s.taskRepo.Create(task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return task, nil
}

// ListTasks returns the owner's active tasks, newest first, with the total
// before pagination.
func (s *TaskService) ListTasks(input ListTasksInput) ([]models.Task, int64, error) {
	filter := repository.TaskFilter{
		OwnerID: input.OwnerID,
		Status:  input.Status,
		Limit:   input.Limit,
		Offset:  input.Offset,
	}

	tasks, total, err := s.taskRepo.ListOwned(filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list tasks: %w", err)
	}

	return tasks, total, nil
}

// GetTask returns a task owned by the caller. A missing, deleted or foreign
// task is reported identically as ErrTaskNotFound so that nothing about
// other users' tasks leaks.
func (s *TaskService) GetTask(taskID, ownerID uint64) (*models.Task, error) {
	return s.findOwned(taskID, ownerID)
}

// UpdateTask applies a partial update to a task owned by the caller.
func (s *TaskService) UpdateTask(taskID, ownerID uint64, input UpdateTaskInput) (*models.Task, error) {
	task, err := s.findOwned(taskID, ownerID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		if *input.Title == "" {
			return nil, ErrTitleEmpty
		}
		task.Title = *input.Title
	}
	if input.Description != nil {
		task.Description = *input.Description
	}
	if input.Status != nil {
		if !input.Status.IsValid() {
			return nil, ErrInvalidStatus
		}
		task.Status = *input.Status
	}

	if err := s.taskRepo.Update(task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	return task, nil
}

// DeleteTask soft-deletes a task owned by the caller.
func (s *TaskService) DeleteTask(taskID, ownerID uint64) error {
	task, err := s.findOwned(taskID, ownerID)
	if err != nil {
		return err
	}

	if err := s.taskRepo.SoftDelete(task); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	return nil
}

func (s *TaskService) findOwned(taskID, ownerID uint64) (*models.Task, error) {
	task, err := s.taskRepo.FindOwned(taskID, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}
	return task, nil
}
