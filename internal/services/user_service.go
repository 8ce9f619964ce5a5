package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/taskhub/todo-api/internal/auth"
	"github.com/taskhub/todo-api/internal/models"
	"github.com/taskhub/todo-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrEmailTaken           = errors.New("email already registered")
	ErrInvalidCredentials   = errors.New("incorrect email or password")
	ErrUserNotFound         = errors.New("user not found")
	ErrFailedToHashPassword = errors.New("failed to hash password")
)

// UserService handles registration, login and profile self-service.
type UserService struct {
	userRepo   repository.UserRepository
	tokens     *auth.TokenManager
	bcryptCost int
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repository.UserRepository, tokens *auth.TokenManager, bcryptCost int) *UserService {
	return &UserService{
		userRepo:   userRepo,
		tokens:     tokens,
		bcryptCost: bcryptCost,
	}
}

// RegisterInput represents the required information to create a new user.
type RegisterInput struct {
	Email    string
	Password string
}

// Register creates a new user account. A duplicate active email yields
// ErrEmailTaken, whether caught by the pre-check or by the unique constraint
// when two registrations race.
func (s *UserService) Register(input RegisterInput) (*models.User, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	if _, err := s.userRepo.FindByEmail(email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	hash, err := auth.HashPassword(input.Password, s.bcryptCost)
	if err != nil {
		return nil, ErrFailedToHashPassword
	}

	user := &models.User{
		Email:        email,
		PasswordHash: hash,
		Role:         models.RoleUser,
	}

	if err := s.userRepo.Create(user); err != nil {
		// Two concurrent registrations can both pass the pre-check; the
		// unique constraint decides the loser.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// TokenPair carries the tokens issued by a successful login.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// Login verifies credentials and issues an access/refresh token pair. A
// missing user, a soft-deleted user and a wrong password all yield the same
// ErrInvalidCredentials.
func (s *UserService) Login(email, password string) (*TokenPair, error) {
	user, err := s.userRepo.FindByEmail(strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if !auth.VerifyPassword(user.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}

	accessToken, err := s.tokens.IssueAccessToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to issue access token: %w", err)
	}

	refreshToken, err := s.tokens.IssueRefreshToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to issue refresh token: %w", err)
	}

	return &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

// Refresh exchanges a valid refresh token for a new access token. The same
// gate as request authentication applies: the subject must still resolve to
// an active user.
func (s *UserService) Refresh(refreshToken string) (string, error) {
	claims, err := s.tokens.Decode(refreshToken)
	if err != nil {
		return "", ErrInvalidCredentials
	}

	userID, err := claims.SubjectID()
	if err != nil {
		return "", ErrInvalidCredentials
	}

	if _, err := s.userRepo.FindByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("failed to find user: %w", err)
	}

	accessToken, err := s.tokens.IssueAccessToken(userID)
	if err != nil {
		return "", fmt.Errorf("failed to issue access token: %w", err)
	}

	return accessToken, nil
}

// GetUser retrieves an active user by ID.
func (s *UserService) GetUser(id uint64) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

// UpdateProfileInput holds the optional fields of a profile update. A nil
// field leaves the current value untouched.
type UpdateProfileInput struct {
	Name        *string
	NewPassword *string
}

// UpdateOwnProfile applies a partial update to the caller's own profile.
// Email and role are never touched. A new password invalidates the old one
// for future logins; already issued tokens stay valid until expiry.
func (s *UserService) UpdateOwnProfile(user *models.User, input UpdateProfileInput) (*models.User, error) {
	if input.Name != nil {
		user.Name = input.Name
	}
	if input.NewPassword != nil {
		hash, err := auth.HashPassword(*input.NewPassword, s.bcryptCost)
		if err != nil {
			return nil, ErrFailedToHashPassword
		}
		user.PasswordHash = hash
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	return user, nil
}

// DeleteOwnAccount soft-deletes the caller's account. Outstanding tokens are
// not revoked, but the auth gate stops resolving the user from then on.
func (s *UserService) DeleteOwnAccount(user *models.User) error {
	if err := s.userRepo.SoftDelete(user); err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}
	return nil
}
