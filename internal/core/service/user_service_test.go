package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/claimcheck/claimcheck-api/internal/core/domain"
	"github.com/claimcheck/claimcheck-api/internal/core/ports"
)

// registeredUser seeds the repo through the auth service so the stored user
// carries a real hash and session token.
func registeredUser(t *testing.T, repo *stubUserRepo) *ports.AuthResult {
	t.Helper()
	result, err := NewAuthService(repo, zerolog.Nop()).Register(context.Background(), registerInput())
	if err != nil {
		t.Fatalf("seed register failed: %v", err)
	}
	return result
}

func partnerInput(userID, token string) ports.UpdatePartnerInput {
	return ports.UpdatePartnerInput{
		UserID:       userID,
		SessionToken: token,
		PartnerName:  "Bob",
		PartnerPhone: "222",
		PartnerEmail: "b@x.com",
	}
}

func TestUserService_UpdatePartner_Success(t *testing.T) {
	repo := newStubUserRepo()
	seed := registeredUser(t, repo)
	svc := NewUserService(repo, zerolog.Nop())

	user, err := svc.UpdatePartner(context.Background(), partnerInput(seed.User.ID, seed.SessionToken))
	if err != nil {
		t.Fatalf("UpdatePartner returned error: %v", err)
	}
	if user.Partner == nil {
		t.Fatalf("expected partner set")
	}
	if user.Partner.Name != "Bob" || user.Partner.Phone != "222" || user.Partner.Email != "b@x.com" {
		t.Fatalf("unexpected partner: %+v", user.Partner)
	}
}

func TestUserService_UpdatePartner_TrimsFields(t *testing.T) {
	repo := newStubUserRepo()
	seed := registeredUser(t, repo)
	svc := NewUserService(repo, zerolog.Nop())

	input := partnerInput(seed.User.ID, seed.SessionToken)
	input.PartnerName = "  Bob "
	input.PartnerPhone = " 222 "
	input.PartnerEmail = " b@x.com "

	user, err := svc.UpdatePartner(context.Background(), input)
	if err != nil {
		t.Fatalf("UpdatePartner returned error: %v", err)
	}
	if user.Partner.Name != "Bob" || user.Partner.Phone != "222" || user.Partner.Email != "b@x.com" {
		t.Fatalf("expected trimmed partner fields, got %+v", user.Partner)
	}
}

func TestUserService_UpdatePartner_ReplacesWholeRecord(t *testing.T) {
	repo := newStubUserRepo()
	seed := registeredUser(t, repo)
	svc := NewUserService(repo, zerolog.Nop())

	if _, err := svc.UpdatePartner(context.Background(), partnerInput(seed.User.ID, seed.SessionToken)); err != nil {
		t.Fatalf("first update failed: %v", err)
	}

	replacement := partnerInput(seed.User.ID, seed.SessionToken)
	replacement.PartnerName = "Carol"
	replacement.PartnerPhone = "333"
	replacement.PartnerEmail = "c@x.com"

	user, err := svc.UpdatePartner(context.Background(), replacement)
	if err != nil {
		t.Fatalf("second update failed: %v", err)
	}
	if user.Partner.Name != "Carol" || user.Partner.Phone != "333" || user.Partner.Email != "c@x.com" {
		t.Fatalf("expected full replacement, got %+v", user.Partner)
	}
}

func TestUserService_UpdatePartner_MissingCredential(t *testing.T) {
	repo := newStubUserRepo()
	seed := registeredUser(t, repo)
	svc := NewUserService(repo, zerolog.Nop())

	if _, err := svc.UpdatePartner(context.Background(), partnerInput("", seed.SessionToken)); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for missing userId, got %v", err)
	}
	if _, err := svc.UpdatePartner(context.Background(), partnerInput(seed.User.ID, "")); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for missing token, got %v", err)
	}
}

func TestUserService_UpdatePartner_MalformedUserID(t *testing.T) {
	repo := newStubUserRepo()
	seed := registeredUser(t, repo)
	svc := NewUserService(repo, zerolog.Nop())

	if _, err := svc.UpdatePartner(context.Background(), partnerInput("not-an-object-id", seed.SessionToken)); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for malformed id, got %v", err)
	}
}

func TestUserService_UpdatePartner_WrongToken(t *testing.T) {
	repo := newStubUserRepo()
	seed := registeredUser(t, repo)
	svc := NewUserService(repo, zerolog.Nop())

	// The user exists; a stale or forged token must still be rejected.
	if _, err := svc.UpdatePartner(context.Background(), partnerInput(seed.User.ID, "0000")); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for wrong token, got %v", err)
	}
}

func TestUserService_UpdatePartner_StaleTokenAfterRelogin(t *testing.T) {
	repo := newStubUserRepo()
	seed := registeredUser(t, repo)
	auth := NewAuthService(repo, zerolog.Nop())
	svc := NewUserService(repo, zerolog.Nop())

	relogin, err := auth.Login(context.Background(), "111", "p4ss")
	if err != nil {
		t.Fatalf("relogin failed: %v", err)
	}

	if _, err := svc.UpdatePartner(context.Background(), partnerInput(seed.User.ID, seed.SessionToken)); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected the pre-relogin token to be invalid, got %v", err)
	}
	if _, err := svc.UpdatePartner(context.Background(), partnerInput(seed.User.ID, relogin.SessionToken)); err != nil {
		t.Fatalf("expected the fresh token to work, got %v", err)
	}
}

func TestUserService_UpdatePartner_MissingPartnerField(t *testing.T) {
	repo := newStubUserRepo()
	seed := registeredUser(t, repo)
	svc := NewUserService(repo, zerolog.Nop())

	input := partnerInput(seed.User.ID, seed.SessionToken)
	input.PartnerEmail = "   "
	if _, err := svc.UpdatePartner(context.Background(), input); !errors.Is(err, domain.ErrPartnerFieldsMissing) {
		t.Fatalf("expected ErrPartnerFieldsMissing, got %v", err)
	}
}

func TestUserService_UpdatePartner_UserNotFound(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())

	// Well-formed id that resolves to nothing.
	input := partnerInput("ffffffffffffffffffffffff", "sometoken")
	if _, err := svc.UpdatePartner(context.Background(), input); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
