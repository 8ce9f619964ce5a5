package services

import (
	"fmt"

	"github.com/taskhub/todo-api/internal/models"
	"github.com/taskhub/todo-api/internal/repository"
)

// DashboardStats holds global aggregates for the admin dashboard. Counts
// cover active rows only.
type DashboardStats struct {
	TotalUsers          int64
	TotalTasks          int64
	TotalTasksPending   int64
	TotalTasksCompleted int64
}

// AdminService aggregates read-only statistics across stores.
type AdminService struct {
	userRepo repository.UserRepository
	taskRepo repository.TaskRepository
}

// NewAdminService creates a new AdminService.
func NewAdminService(userRepo repository.UserRepository, taskRepo repository.TaskRepository) *AdminService {
	return &AdminService{
		userRepo: userRepo,
		taskRepo: taskRepo,
	}
}

// GetDashboardStats returns global counts without ownership scoping. Role
// authorization happens at the boundary, not here.
func (s *AdminService) GetDashboardStats() (*DashboardStats, error) {
	totalUsers, err := s.userRepo.CountActive()
	if err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}

	totalTasks, err := s.taskRepo.CountActive()
	if err != nil {
		return nil, fmt.Errorf("failed to count tasks: %w", err)
	}

	pending, err := s.taskRepo.CountByStatus(models.TaskStatusPending)
	if err != nil {
		return nil, fmt.Errorf("failed to count pending tasks: %w", err)
	}

	completed, err := s.taskRepo.CountByStatus(models.TaskStatusCompleted)
	if err != nil {
		return nil, fmt.Errorf("failed to count completed tasks: %w", err)
	}

	return &DashboardStats{
		TotalUsers:          totalUsers,
		TotalTasks:          totalTasks,
		TotalTasksPending:   pending,
		TotalTasksCompleted: completed,
	}, nil
}

// ListUsers returns active users for administrative review, with the total
// before pagination.
func (s *AdminService) ListUsers(limit, offset int) ([]models.User, int64, error) {
	users, total, err := s.userRepo.ListActive(limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}
	return users, total, nil
}
