package ports

import (
	"context"

	"github.com/claimcheck/claimcheck-api/internal/core/domain"
)

// RegisterInput carries the four registration fields. The service trims and
// validates them.
type RegisterInput struct {
	Name     string
	Phone    string
	Email    string
	Password string
}

// AuthResult pairs the sanitized user with the freshly issued session token.
// The token travels as a sibling field in the response, never inside the
// user object.
type AuthResult struct {
	User         *domain.User
	SessionToken string
}

// AuthService defines registration and login use cases.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*AuthResult, error)
	// Login authenticates by phone or email (identifier containing '@' is
	// treated as an email) and rotates the session token.
	Login(ctx context.Context, identifier, password string) (*AuthResult, error)
}
