package domain

import (
	"errors"
	"time"
)

var ErrCredentialsTaken = errors.New("credentials taken")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrInvalidToken = errors.New("invalid token")
var ErrUserNotFound = errors.New("user not found")
var ErrTooManyAttempts = errors.New("too many signin attempts")

// User models an account holder. The password hash never leaves the core:
// handlers map User to response types that structurally lack the field, and
// the json tag is a second fence against accidental serialization.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	FirstName    string    `json:"first_name,omitempty"`
	LastName     string    `json:"last_name,omitempty"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
