package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/claimcheck/claimcheck-api/internal/api/metrics"
	"github.com/claimcheck/claimcheck-api/internal/core/domain"
	"github.com/claimcheck/claimcheck-api/internal/core/ports"
)

// bcryptCost matches the cost the original accounts were hashed with, so
// existing hashes keep verifying.
const bcryptCost = 12

const sessionTokenBytes = 32

// AuthService implements registration and login over a user repository.
type AuthService struct {
	repo   ports.UserRepository
	logger zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, logger zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, logger: logger}
}

// Register creates a new account. Phone and email are checked up front so
// duplicates get a field-specific message; the store's unique indexes remain
// the backstop for the race between check and insert.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*ports.AuthResult, error) {
	name := strings.TrimSpace(input.Name)
	phone := strings.TrimSpace(input.Phone)
	email := strings.TrimSpace(input.Email)
	password := strings.TrimSpace(input.Password)

	if name == "" || phone == "" || email == "" || password == "" {
		return nil, domain.ErrAllFieldsRequired
	}

	if _, err := s.repo.FindByPhone(ctx, phone); err == nil {
		metrics.RegistrationsTotal.WithLabelValues("conflict").Inc()
		return nil, domain.ErrPhoneTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		metrics.RegistrationsTotal.WithLabelValues("conflict").Inc()
		return nil, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	token, err := newSessionToken()
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Name:         name,
		Phone:        phone,
		Email:        email,
		PasswordHash: string(hash),
		SessionToken: token,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		// Lost the race with a concurrent registration; the repository has
		// already translated the duplicate-key error per violated field.
		metrics.RegistrationsTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	metrics.RegistrationsTotal.WithLabelValues("success").Inc()
	s.logger.Info().Str("user_id", created.ID).Msg("user registered")

	return &ports.AuthResult{User: created, SessionToken: token}, nil
}

// Login authenticates by phone or email and issues a fresh session token,
// overwriting the previous one. One live session per user.
func (s *AuthService) Login(ctx context.Context, identifier, password string) (*ports.AuthResult, error) {
	identifier = strings.TrimSpace(identifier)
	password = strings.TrimSpace(password)

	if identifier == "" || password == "" {
		return nil, domain.ErrCredentialsRequired
	}

	isEmail := strings.Contains(identifier, "@")

	var (
		user *domain.User
		err  error
	)
	if isEmail {
		user, err = s.repo.FindByEmail(ctx, identifier)
	} else {
		user, err = s.repo.FindByPhone(ctx, identifier)
	}
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.LoginsTotal.WithLabelValues("not_found").Inc()
			if isEmail {
				return nil, domain.ErrNoAccountEmail
			}
			return nil, domain.ErrNoAccountPhone
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		metrics.LoginsTotal.WithLabelValues("bad_password").Inc()
		return nil, domain.ErrIncorrectPassword
	}

	token, err := newSessionToken()
	if err != nil {
		return nil, err
	}
	if err := s.repo.UpdateSessionToken(ctx, user.ID, token); err != nil {
		return nil, err
	}
	user.SessionToken = token

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	s.logger.Info().Str("user_id", user.ID).Msg("user logged in")

	return &ports.AuthResult{User: user, SessionToken: token}, nil
}

// newSessionToken returns a 64-hex-char opaque bearer token.
func newSessionToken() (string, error) {
	b := make([]byte, sessionTokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate session token: %w", err)
	}
	return hex.EncodeToString(b), nil
}
