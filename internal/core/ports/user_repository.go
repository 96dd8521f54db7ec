package ports

import (
	"context"

	"github.com/claimcheck/claimcheck-api/internal/core/domain"
)

// UserRepository defines persistence operations on user records.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByPhone(ctx context.Context, phone string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// UpdateSessionToken overwrites the stored session token for the user,
	// invalidating whatever token was issued before.
	UpdateSessionToken(ctx context.Context, id, token string) error
	// ReplacePartner swaps the whole partner sub-record and returns the
	// updated user.
	ReplacePartner(ctx context.Context, id string, partner domain.Partner) (*domain.User, error)
	// SearchPartners matches pattern (already regex-escaped by the caller)
	// case-insensitively against partner name/phone/email of users that have
	// a partner set, returning only submitter name and creation date.
	SearchPartners(ctx context.Context, pattern string) ([]domain.PartnerMatch, error)
}
