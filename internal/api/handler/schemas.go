package handler

import (
	"github.com/claimcheck/claimcheck-api/internal/core/domain"
)

// --- Request types ---

// authRequest is the single /api/auth payload; action selects the use case.
// Name and email are only consulted when registering.
type authRequest struct {
	Action   string `json:"action" validate:"required,oneof=login register"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type updateUserRequest struct {
	UserID       string `json:"userId"`
	SessionToken string `json:"sessionToken"`
	PartnerName  string `json:"partnerName"`
	PartnerPhone string `json:"partnerPhone"`
	PartnerEmail string `json:"partnerEmail"`
}

// --- Response types ---

// authResponse returns the sanitized user plus the session token as a
// sibling field. The token appears here once and nowhere else.
type authResponse struct {
	Success      bool         `json:"success"`
	User         *domain.User `json:"user"`
	SessionToken string       `json:"sessionToken"`
}

type userResponse struct {
	Success bool         `json:"success"`
	User    *domain.User `json:"user"`
}

type searchResponse struct {
	Success bool                  `json:"success"`
	Count   int                   `json:"count"`
	Matches []domain.PartnerMatch `json:"matches"`
}
