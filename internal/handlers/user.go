package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/taskhub/todo-api/internal/dto"
	apierrors "github.com/taskhub/todo-api/internal/errors"
	"github.com/taskhub/todo-api/internal/middleware"
	"github.com/taskhub/todo-api/internal/services"
)

// UserHandler coordinates profile self-service for the authenticated user.
type UserHandler struct {
	userService *services.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// GetMe returns the authenticated user.
func (h *UserHandler) GetMe(c *gin.Context) {
	user, exists := middleware.GetCurrentUser(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	c.JSON(http.StatusOK, dto.ToUserDTO(*user))
}

// UpdateMe applies a partial update to the caller's profile. Email and role
// cannot be changed here.
func (h *UserHandler) UpdateMe(c *gin.Context) {
	user, exists := middleware.GetCurrentUser(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	type UpdateProfileRequest struct {
		Name        *string `json:"name"`
		NewPassword *string `json:"new_password" binding:"omitempty,min=8"`
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	updated, err := h.userService.UpdateOwnProfile(user, services.UpdateProfileInput{
		Name:        req.Name,
		NewPassword: req.NewPassword,
	})
	if err != nil {
		apierrors.InternalError(c, "Failed to update profile")
		return
	}

	c.JSON(http.StatusOK, dto.ToUserDTO(*updated))
}

// DeleteMe soft-deletes the caller's account.
func (h *UserHandler) DeleteMe(c *gin.Context) {
	user, exists := middleware.GetCurrentUser(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	if err := h.userService.DeleteOwnAccount(user); err != nil {
		apierrors.InternalError(c, "Failed to delete account")
		return
	}

	c.Status(http.StatusNoContent)
}
