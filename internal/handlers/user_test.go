package handlers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/taskhub/todo-api/internal/dto"
	"github.com/taskhub/todo-api/internal/models"
)

func TestUserHandler_GetMe(t *testing.T) {
	env := setupAPITestEnv(t)

	user, token := env.registerAndLogin(t, "a@x.com", "secret123")

	w := env.request(t, http.MethodGet, "/api/users/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var response dto.UserDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, user.ID, response.ID)
	require.Equal(t, "a@x.com", response.Email)
}

func TestUserHandler_GetMeUnauthorized(t *testing.T) {
	env := setupAPITestEnv(t)

	noToken := env.request(t, http.MethodGet, "/api/users/me", "", nil)
	require.Equal(t, http.StatusUnauthorized, noToken.Code)

	garbage := env.request(t, http.MethodGet, "/api/users/me", "garbage", nil)
	require.Equal(t, http.StatusUnauthorized, garbage.Code)
}

func TestUserHandler_GetMeExpiredToken(t *testing.T) {
	env := setupAPITestEnv(t)

	user, _ := env.registerAndLogin(t, "a@x.com", "secret123")

	expired, err := env.tokens.IssueAccessTokenWithTTL(user.ID, -time.Minute)
	require.NoError(t, err)

	w := env.request(t, http.MethodGet, "/api/users/me", expired, nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUserHandler_UpdateMe_NameOnly(t *testing.T) {
	env := setupAPITestEnv(t)

	user, token := env.registerAndLogin(t, "a@x.com", "secret123")
	originalHash := user.PasswordHash

	w := env.request(t, http.MethodPut, "/api/users/me", token, map[string]string{
		"name": "Alice",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var response dto.UserDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.NotNil(t, response.Name)
	require.Equal(t, "Alice", *response.Name)
	require.Equal(t, "a@x.com", response.Email)

	stored, err := env.userRepo.FindByID(user.ID)
	require.NoError(t, err)
	require.Equal(t, originalHash, stored.PasswordHash)
	require.Equal(t, models.RoleUser, stored.Role)
}

func TestUserHandler_UpdateMe_PasswordChange(t *testing.T) {
	env := setupAPITestEnv(t)

	_, token := env.registerAndLogin(t, "a@x.com", "secret123")

	w := env.request(t, http.MethodPut, "/api/users/me", token, map[string]string{
		"new_password": "evenmoresecret",
	})
	require.Equal(t, http.StatusOK, w.Code)

	// Old password no longer works, new one does.
	oldLogin := env.request(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"username": "a@x.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusUnauthorized, oldLogin.Code)

	newLogin := env.request(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"username": "a@x.com",
		"password": "evenmoresecret",
	})
	require.Equal(t, http.StatusOK, newLogin.Code)

	// The token issued before the change stays valid until expiry.
	me := env.request(t, http.MethodGet, "/api/users/me", token, nil)
	require.Equal(t, http.StatusOK, me.Code)
}

func TestUserHandler_DeleteMe(t *testing.T) {
	env := setupAPITestEnv(t)

	user, token := env.registerAndLogin(t, "a@x.com", "secret123")

	w := env.request(t, http.MethodDelete, "/api/users/me", token, nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	// The unexpired token now fails authentication: the gate no longer
	// resolves the soft-deleted user.
	me := env.request(t, http.MethodGet, "/api/users/me", token, nil)
	require.Equal(t, http.StatusUnauthorized, me.Code)

	// The row is retained underneath.
	var raw models.User
	require.NoError(t, env.db.Unscoped().First(&raw, user.ID).Error)
	require.True(t, raw.DeletedAt.Valid)
}

func TestUserHandler_DeletedEmailCanRegisterAgain(t *testing.T) {
	env := setupAPITestEnv(t)

	_, token := env.registerAndLogin(t, "a@x.com", "secret123")

	w := env.request(t, http.MethodDelete, "/api/users/me", token, nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	again := env.request(t, http.MethodPost, "/api/auth/register", "", map[string]string{
		"email":    "a@x.com",
		"password": "freshstart1",
	})
	require.Equal(t, http.StatusCreated, again.Code)
}
