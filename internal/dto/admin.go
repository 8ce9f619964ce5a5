package dto

import "github.com/taskhub/todo-api/internal/services"

// AdminDashboardStats represents the admin dashboard aggregates.
type AdminDashboardStats struct {
	TotalUsers          int64 `json:"total_users"`
	TotalTasks          int64 `json:"total_tasks"`
	TotalTasksPending   int64 `json:"total_tasks_pending"`
	TotalTasksCompleted int64 `json:"total_tasks_completed"`
}

// ToAdminDashboardStats converts service stats to the response shape.
func ToAdminDashboardStats(stats services.DashboardStats) AdminDashboardStats {
	return AdminDashboardStats{
		TotalUsers:          stats.TotalUsers,
		TotalTasks:          stats.TotalTasks,
		TotalTasksPending:   stats.TotalTasksPending,
		TotalTasksCompleted: stats.TotalTasksCompleted,
	}
}
