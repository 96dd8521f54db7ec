package ports

import (
	"context"

	"github.com/claimcheck/claimcheck-api/internal/core/domain"
)

// UpdatePartnerInput carries a partner replacement request. UserID and
// SessionToken together act as the bearer credential.
type UpdatePartnerInput struct {
	UserID       string
	SessionToken string
	PartnerName  string
	PartnerPhone string
	PartnerEmail string
}

// UserService defines user mutation use cases.
type UserService interface {
	// UpdatePartner replaces the user's partner sub-record entirely after
	// verifying the session token, and returns the sanitized user.
	UpdatePartner(ctx context.Context, input UpdatePartnerInput) (*domain.User, error)
}
