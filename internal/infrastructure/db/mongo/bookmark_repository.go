package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bookmarkd/bookmarkd/internal/core/domain"
	"github.com/bookmarkd/bookmarkd/internal/core/ports"
)

const bookmarksCollection = "bookmarks"

type BookmarkRepository struct {
	coll *mongo.Collection
}

func NewBookmarkRepository(db *mongo.Database) *BookmarkRepository {
	return &BookmarkRepository{coll: db.Collection(bookmarksCollection)}
}

type bookmarkDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	UserID      string             `bson:"user_id"`
	Title       string             `bson:"title"`
	Description string             `bson:"description,omitempty"`
	Link        string             `bson:"link"`
	CreatedAt   int64              `bson:"created_at"`
	UpdatedAt   int64              `bson:"updated_at"`
}

func (d bookmarkDoc) toDomain() *domain.Bookmark {
	return &domain.Bookmark{
		ID:          d.ID.Hex(),
		UserID:      d.UserID,
		Title:       d.Title,
		Description: d.Description,
		Link:        d.Link,
		CreatedAt:   unixToTime(d.CreatedAt),
		UpdatedAt:   unixToTime(d.UpdatedAt),
	}
}

func (r *BookmarkRepository) Create(ctx context.Context, bookmark *domain.Bookmark) (*domain.Bookmark, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := bookmarkDoc{
		UserID:      bookmark.UserID,
		Title:       bookmark.Title,
		Description: bookmark.Description,
		Link:        bookmark.Link,
		CreatedAt:   bookmark.CreatedAt.Unix(),
		UpdatedAt:   bookmark.UpdatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert bookmark: %w", err)
	}

	created := *bookmark
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *BookmarkRepository) FindByID(ctx context.Context, id string) (*domain.Bookmark, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrBookmarkNotFound
	}

	var doc bookmarkDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrBookmarkNotFound
		}
		return nil, fmt.Errorf("find bookmark: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *BookmarkRepository) FindByUser(ctx context.Context, userID string) ([]domain.Bookmark, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("list bookmarks: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []bookmarkDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode bookmarks: %w", err)
	}

	bookmarks := make([]domain.Bookmark, 0, len(docs))
	for _, d := range docs {
		bookmarks = append(bookmarks, *d.toDomain())
	}
	return bookmarks, nil
}

func (r *BookmarkRepository) Update(ctx context.Context, id string, patch ports.BookmarkPatch) (*domain.Bookmark, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrBookmarkNotFound
	}

	set := bson.M{"updated_at": time.Now().UTC().Unix()}
	if patch.Title != nil {
		set["title"] = *patch.Title
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	if patch.Link != nil {
		set["link"] = *patch.Link
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc bookmarkDoc
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrBookmarkNotFound
		}
		return nil, fmt.Errorf("update bookmark: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *BookmarkRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrBookmarkNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete bookmark: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrBookmarkNotFound
	}
	return nil
}

// EnsureIndexes creates the user_id index used by every list query.
func (r *BookmarkRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}},
	})
	return err
}
