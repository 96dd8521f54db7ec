package domain

import (
	"errors"
	"time"
)

// Validation and conflict errors (HTTP 400).
var (
	ErrAllFieldsRequired    = errors.New("all fields are required")
	ErrCredentialsRequired  = errors.New("phone/email and password are required")
	ErrPartnerFieldsMissing = errors.New("all partner fields are required")
	ErrMissingSearchQuery   = errors.New("missing search query")
	ErrInvalidAction        = errors.New("invalid action")
	ErrPhoneTaken           = errors.New("this phone number is already registered")
	ErrEmailTaken           = errors.New("this email address is already registered")
	ErrAccountExists        = errors.New("an account with these details already exists")
)

// Auth errors (HTTP 401).
var (
	ErrUnauthorized      = errors.New("unauthorized")
	ErrNoAccountPhone    = errors.New("no account found with this phone number")
	ErrNoAccountEmail    = errors.New("no account found with this email")
	ErrIncorrectPassword = errors.New("incorrect password, please try again")
)

// ErrUserNotFound maps to HTTP 404.
var ErrUserNotFound = errors.New("user not found")

// Partner holds the contact details of the person a user has claimed.
// When present, all three fields are set; the sub-record is only ever
// replaced as a whole, never merged field by field.
type Partner struct {
	Name  string `json:"name" bson:"name"`
	Phone string `json:"phone" bson:"phone"`
	Email string `json:"email" bson:"email"`
}

// User is one registered person. Phone and email are globally unique and
// both work as login identifiers. PasswordHash and SessionToken never leave
// the server inside a user object; the session token is returned once, as a
// sibling field on auth responses.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Phone        string    `json:"phone"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	SessionToken string    `json:"-"`
	Partner      *Partner  `json:"partner,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// PartnerMatch is a single search hit: who claimed the searched identity and
// when. Deliberately nothing else: the submitter's contact details and the
// partner sub-record itself stay private.
type PartnerMatch struct {
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}
