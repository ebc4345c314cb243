package ports

import (
	"context"

	"github.com/bookmarkd/bookmarkd/internal/core/domain"
)

// BookmarkPatch carries the optional fields of a bookmark edit. Nil means
// leave the field unchanged.
type BookmarkPatch struct {
	Title       *string
	Description *string
	Link        *string
}

// BookmarkRepository defines the persistence contract for bookmarks.
type BookmarkRepository interface {
	Create(ctx context.Context, bookmark *domain.Bookmark) (*domain.Bookmark, error)
	FindByID(ctx context.Context, id string) (*domain.Bookmark, error)
	FindByUser(ctx context.Context, userID string) ([]domain.Bookmark, error)
	Update(ctx context.Context, id string, patch BookmarkPatch) (*domain.Bookmark, error)
	Delete(ctx context.Context, id string) error
}
