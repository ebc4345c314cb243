package service

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/bookmarkd/bookmarkd/internal/core/domain"
	"github.com/bookmarkd/bookmarkd/internal/core/ports"
)

type stubBookmarkRepo struct {
	bookmarks map[string]*domain.Bookmark
	nextID    int
}

func newStubBookmarkRepo() *stubBookmarkRepo {
	return &stubBookmarkRepo{bookmarks: make(map[string]*domain.Bookmark), nextID: 1}
}

func cloneBookmark(b *domain.Bookmark) *domain.Bookmark {
	if b == nil {
		return nil
	}
	clone := *b
	return &clone
}

func (r *stubBookmarkRepo) Create(_ context.Context, bookmark *domain.Bookmark) (*domain.Bookmark, error) {
	copy := cloneBookmark(bookmark)
	copy.ID = "bm_" + strconv.Itoa(r.nextID)
	r.nextID++
	r.bookmarks[copy.ID] = cloneBookmark(copy)
	return copy, nil
}

func (r *stubBookmarkRepo) FindByID(_ context.Context, id string) (*domain.Bookmark, error) {
	b, ok := r.bookmarks[id]
	if !ok {
		return nil, domain.ErrBookmarkNotFound
	}
	return cloneBookmark(b), nil
}

func (r *stubBookmarkRepo) FindByUser(_ context.Context, userID string) ([]domain.Bookmark, error) {
	var out []domain.Bookmark
	for _, b := range r.bookmarks {
		if b.UserID == userID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *stubBookmarkRepo) Update(_ context.Context, id string, patch ports.BookmarkPatch) (*domain.Bookmark, error) {
	b, ok := r.bookmarks[id]
	if !ok {
		return nil, domain.ErrBookmarkNotFound
	}
	if patch.Title != nil {
		b.Title = *patch.Title
	}
	if patch.Description != nil {
		b.Description = *patch.Description
	}
	if patch.Link != nil {
		b.Link = *patch.Link
	}
	return cloneBookmark(b), nil
}

func (r *stubBookmarkRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.bookmarks[id]; !ok {
		return domain.ErrBookmarkNotFound
	}
	delete(r.bookmarks, id)
	return nil
}

func TestBookmarkService_CreateAndGet(t *testing.T) {
	svc := NewBookmarkService(newStubBookmarkRepo())

	created, err := svc.Create(context.Background(), "user_1", ports.CreateBookmarkInput{
		Title: "Go blog",
		Link:  "https://go.dev/blog",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.ID == "" || created.UserID != "user_1" {
		t.Fatalf("unexpected bookmark: %+v", created)
	}

	got, err := svc.Get(context.Background(), "user_1", created.ID)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if got.Title != "Go blog" || got.Link != "https://go.dev/blog" {
		t.Fatalf("unexpected bookmark: %+v", got)
	}
}

func TestBookmarkService_Get_OtherUser(t *testing.T) {
	svc := NewBookmarkService(newStubBookmarkRepo())

	created, _ := svc.Create(context.Background(), "user_1", ports.CreateBookmarkInput{Title: "t", Link: "https://example.com"})

	if _, err := svc.Get(context.Background(), "user_2", created.ID); !errors.Is(err, domain.ErrAccessDenied) {
		t.Fatalf("expected ErrAccessDenied, got %v", err)
	}
}

func TestBookmarkService_Get_NotFound(t *testing.T) {
	svc := NewBookmarkService(newStubBookmarkRepo())

	if _, err := svc.Get(context.Background(), "user_1", "missing"); !errors.Is(err, domain.ErrBookmarkNotFound) {
		t.Fatalf("expected ErrBookmarkNotFound, got %v", err)
	}
}

func TestBookmarkService_List_OnlyOwn(t *testing.T) {
	svc := NewBookmarkService(newStubBookmarkRepo())

	_, _ = svc.Create(context.Background(), "user_1", ports.CreateBookmarkInput{Title: "a", Link: "https://a.example"})
	_, _ = svc.Create(context.Background(), "user_1", ports.CreateBookmarkInput{Title: "b", Link: "https://b.example"})
	_, _ = svc.Create(context.Background(), "user_2", ports.CreateBookmarkInput{Title: "c", Link: "https://c.example"})

	list, err := svc.List(context.Background(), "user_1")
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 bookmarks, got %d", len(list))
	}
	for _, b := range list {
		if b.UserID != "user_1" {
			t.Fatalf("foreign bookmark in list: %+v", b)
		}
	}
}

func TestBookmarkService_Edit(t *testing.T) {
	svc := NewBookmarkService(newStubBookmarkRepo())

	created, _ := svc.Create(context.Background(), "user_1", ports.CreateBookmarkInput{Title: "old", Link: "https://example.com"})

	title := "new"
	updated, err := svc.Edit(context.Background(), "user_1", created.ID, ports.BookmarkPatch{Title: &title})
	if err != nil {
		t.Fatalf("Edit returned error: %v", err)
	}
	if updated.Title != "new" {
		t.Fatalf("title not updated: %+v", updated)
	}
	if updated.Link != "https://example.com" {
		t.Fatalf("untouched field changed: %+v", updated)
	}
}

func TestBookmarkService_Edit_OtherUser(t *testing.T) {
	svc := NewBookmarkService(newStubBookmarkRepo())

	created, _ := svc.Create(context.Background(), "user_1", ports.CreateBookmarkInput{Title: "t", Link: "https://example.com"})

	title := "hijack"
	if _, err := svc.Edit(context.Background(), "user_2", created.ID, ports.BookmarkPatch{Title: &title}); !errors.Is(err, domain.ErrAccessDenied) {
		t.Fatalf("expected ErrAccessDenied, got %v", err)
	}
}

func TestBookmarkService_Delete(t *testing.T) {
	repo := newStubBookmarkRepo()
	svc := NewBookmarkService(repo)

	created, _ := svc.Create(context.Background(), "user_1", ports.CreateBookmarkInput{Title: "t", Link: "https://example.com"})

	if err := svc.Delete(context.Background(), "user_1", created.ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}

	list, _ := svc.List(context.Background(), "user_1")
	if len(list) != 0 {
		t.Fatalf("bookmark still listed after delete")
	}

	if err := svc.Delete(context.Background(), "user_1", created.ID); !errors.Is(err, domain.ErrBookmarkNotFound) {
		t.Fatalf("expected ErrBookmarkNotFound, got %v", err)
	}
}

func TestBookmarkService_Delete_OtherUser(t *testing.T) {
	svc := NewBookmarkService(newStubBookmarkRepo())

	created, _ := svc.Create(context.Background(), "user_1", ports.CreateBookmarkInput{Title: "t", Link: "https://example.com"})

	if err := svc.Delete(context.Background(), "user_2", created.ID); !errors.Is(err, domain.ErrAccessDenied) {
		t.Fatalf("expected ErrAccessDenied, got %v", err)
	}
}
