package ports

import (
	"context"

	"github.com/bookmarkd/bookmarkd/internal/core/domain"
)

// ProfilePatch carries the optional profile fields of an edit. Nil means
// leave the field unchanged.
type ProfilePatch struct {
	Email     *string
	FirstName *string
	LastName  *string
}

// UserRepository defines the persistence contract for user credentials.
// Create must fail with domain.ErrCredentialsTaken when the email is already
// registered; the store serializes concurrent creations via its unique index.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	UpdateProfile(ctx context.Context, id string, patch ProfilePatch) (*domain.User, error)
}
