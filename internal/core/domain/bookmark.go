package domain

import (
	"errors"
	"time"
)

var ErrBookmarkNotFound = errors.New("bookmark not found")
var ErrAccessDenied = errors.New("access to resource denied")

// Bookmark is a link saved by a single user. Ownership is enforced in the
// service layer: a bookmark is only visible to the user that created it.
type Bookmark struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Link        string    `json:"link"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
