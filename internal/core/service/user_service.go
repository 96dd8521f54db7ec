package service

import (
	"context"
	"crypto/subtle"
	"strings"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/claimcheck/claimcheck-api/internal/core/domain"
	"github.com/claimcheck/claimcheck-api/internal/core/ports"
)

// UserService implements partner updates.
type UserService struct {
	repo   ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, logger: logger}
}

// UpdatePartner replaces the caller's partner sub-record after checking the
// session token. The replacement is whole-record; there is no field merge.
func (s *UserService) UpdatePartner(ctx context.Context, input ports.UpdatePartnerInput) (*domain.User, error) {
	userID := strings.TrimSpace(input.UserID)
	sessionToken := strings.TrimSpace(input.SessionToken)

	if userID == "" || sessionToken == "" {
		return nil, domain.ErrUnauthorized
	}
	// A malformed id would otherwise surface as a store-level cast error.
	if _, err := primitive.ObjectIDFromHex(userID); err != nil {
		return nil, domain.ErrUnauthorized
	}

	partner := domain.Partner{
		Name:  strings.TrimSpace(input.PartnerName),
		Phone: strings.TrimSpace(input.PartnerPhone),
		Email: strings.TrimSpace(input.PartnerEmail),
	}
	if partner.Name == "" || partner.Phone == "" || partner.Email == "" {
		return nil, domain.ErrPartnerFieldsMissing
	}

	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.SessionToken == "" ||
		subtle.ConstantTimeCompare([]byte(user.SessionToken), []byte(sessionToken)) != 1 {
		return nil, domain.ErrUnauthorized
	}

	updated, err := s.repo.ReplacePartner(ctx, userID, partner)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", userID).Msg("partner record replaced")
	return updated, nil
}
