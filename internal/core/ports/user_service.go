package ports

import (
	"context"

	"github.com/bookmarkd/bookmarkd/internal/core/domain"
)

type UserService interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
	EditProfile(ctx context.Context, id string, patch ProfilePatch) (*domain.User, error)
}
