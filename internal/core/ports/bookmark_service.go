package ports

import (
	"context"

	"github.com/bookmarkd/bookmarkd/internal/core/domain"
)

type CreateBookmarkInput struct {
	Title       string
	Description string
	Link        string
}

// BookmarkService exposes per-user bookmark CRUD. Every method takes the
// authenticated user id resolved by the guard; access to another user's
// bookmark fails with domain.ErrAccessDenied.
type BookmarkService interface {
	List(ctx context.Context, userID string) ([]domain.Bookmark, error)
	Get(ctx context.Context, userID, id string) (*domain.Bookmark, error)
	Create(ctx context.Context, userID string, in CreateBookmarkInput) (*domain.Bookmark, error)
	Edit(ctx context.Context, userID, id string, patch BookmarkPatch) (*domain.Bookmark, error)
	Delete(ctx context.Context, userID, id string) error
}
