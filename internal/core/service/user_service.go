package service

import (
	"context"

	"github.com/bookmarkd/bookmarkd/internal/core/domain"
	"github.com/bookmarkd/bookmarkd/internal/core/ports"
)

// UserService exposes profile reads and edits for authenticated users.
type UserService struct {
	repo ports.UserRepository
}

func NewUserService(repo ports.UserRepository) *UserService {
	return &UserService{repo: repo}
}

func (s *UserService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

// EditProfile applies the non-nil fields of patch. Changing the email can
// collide with another account's unique index, which surfaces as
// domain.ErrCredentialsTaken just like signup.
func (s *UserService) EditProfile(ctx context.Context, id string, patch ports.ProfilePatch) (*domain.User, error) {
	return s.repo.UpdateProfile(ctx, id, patch)
}
