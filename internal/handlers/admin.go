package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/taskhub/todo-api/internal/dto"
	apierrors "github.com/taskhub/todo-api/internal/errors"
	"github.com/taskhub/todo-api/internal/services"
	"github.com/taskhub/todo-api/internal/utils"
)

// AdminHandler exposes the read-only administrative views.
type AdminHandler struct {
	adminService *services.AdminService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(adminService *services.AdminService) *AdminHandler {
	return &AdminHandler{
		adminService: adminService,
	}
}

// Dashboard returns global aggregates across users and tasks.
func (h *AdminHandler) Dashboard(c *gin.Context) {
	stats, err := h.adminService.GetDashboardStats()
	if err != nil {
		apierrors.InternalError(c, "Failed to compute dashboard stats")
		return
	}

	c.JSON(http.StatusOK, dto.ToAdminDashboardStats(*stats))
}

// ListUsers returns active users with pagination.
func (h *AdminHandler) ListUsers(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	users, total, err := h.adminService.ListUsers(params.Limit, params.Offset)
	if err != nil {
		apierrors.InternalError(c, "Failed to list users")
		return
	}

	c.JSON(http.StatusOK, dto.ToUserListResponse(users, total))
}
