package service

import (
	"context"
	"time"

	"github.com/bookmarkd/bookmarkd/internal/core/domain"
	"github.com/bookmarkd/bookmarkd/internal/core/ports"
)

// BookmarkService implements per-user bookmark CRUD with ownership checks.
type BookmarkService struct {
	repo ports.BookmarkRepository
}

func NewBookmarkService(repo ports.BookmarkRepository) *BookmarkService {
	return &BookmarkService{repo: repo}
}

func (s *BookmarkService) List(ctx context.Context, userID string) ([]domain.Bookmark, error) {
	return s.repo.FindByUser(ctx, userID)
}

func (s *BookmarkService) Get(ctx context.Context, userID, id string) (*domain.Bookmark, error) {
	return s.findOwned(ctx, userID, id)
}

func (s *BookmarkService) Create(ctx context.Context, userID string, in ports.CreateBookmarkInput) (*domain.Bookmark, error) {
	now := time.Now().UTC()
	created, err := s.repo.Create(ctx, &domain.Bookmark{
		UserID:      userID,
		Title:       in.Title,
		Description: in.Description,
		Link:        in.Link,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *BookmarkService) Edit(ctx context.Context, userID, id string, patch ports.BookmarkPatch) (*domain.Bookmark, error) {
	if _, err := s.findOwned(ctx, userID, id); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, id, patch)
}

func (s *BookmarkService) Delete(ctx context.Context, userID, id string) error {
	if _, err := s.findOwned(ctx, userID, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	return nil
}

// findOwned loads a bookmark and enforces that it belongs to userID. A
// bookmark owned by someone else is reported as ErrAccessDenied, not as
// missing, matching the profile-edit semantics of the HTTP layer.
func (s *BookmarkService) findOwned(ctx context.Context, userID, id string) (*domain.Bookmark, error) {
	bookmark, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if bookmark.UserID != userID {
		return nil, domain.ErrAccessDenied
	}
	return bookmark, nil
}
