package constants

// Context keys used by the auth middleware
const (
	ContextKeyUser   = "current_user"
	ContextKeyUserID = "user_id"
)

// Pagination
const (
	DefaultPageLimit = 10
	MaxPageLimit     = 100
)

// TokenTypeBearer is the token_type value returned by the login endpoint.
const TokenTypeBearer = "bearer"
