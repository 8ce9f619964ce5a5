package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/taskhub/todo-api/internal/auth"
	"github.com/taskhub/todo-api/internal/constants"
	apierrors "github.com/taskhub/todo-api/internal/errors"
	"github.com/taskhub/todo-api/internal/models"
	"github.com/taskhub/todo-api/internal/repository"
)

// RequireAuth turns a bearer token into a verified active user. Missing
// header, bad signature, expired token, unparseable subject and deleted user
// all fail with the same 401 so the reason never leaks.
func RequireAuth(tokens *auth.TokenManager, userRepo repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}
		raw := strings.TrimPrefix(header, "Bearer ")

		claims, err := tokens.Decode(raw)
		if err != nil {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		userID, err := claims.SubjectID()
		if err != nil {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		// Soft-deleted users are filtered out here, which is what makes
		// account deletion stick even for unexpired tokens.
		user, err := userRepo.FindByID(userID)
		if err != nil {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUserID, user.ID)
		c.Set(constants.ContextKeyUser, user)
		c.Next()
	}
}

// RequireAdmin rejects authenticated callers without the admin role. It must
// run after RequireAuth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, exists := GetCurrentUser(c)
		if !exists {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		if !user.IsAdmin() {
			apierrors.Forbidden(c, "Admin access required")
			c.Abort()
			return
		}

		c.Next()
	}
}

// GetUserID retrieves the current user ID from context.
func GetUserID(c *gin.Context) (uint64, bool) {
	userID, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return 0, false
	}

	id, ok := userID.(uint64)
	return id, ok
}

// GetCurrentUser retrieves the authenticated user from context.
func GetCurrentUser(c *gin.Context) (*models.User, bool) {
	value, exists := c.Get(constants.ContextKeyUser)
	if !exists {
		return nil, false
	}

	user, ok := value.(*models.User)
	return user, ok
}
