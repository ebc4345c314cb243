package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/bookmarkd/bookmarkd/internal/api/metrics"
	"github.com/bookmarkd/bookmarkd/internal/core/domain"
	"github.com/bookmarkd/bookmarkd/internal/core/ports"
)

type BookmarkHandler struct {
	service ports.BookmarkService
}

func NewBookmarkHandler(service ports.BookmarkService) *BookmarkHandler {
	return &BookmarkHandler{service: service}
}

type createBookmarkRequest struct {
	Title       string `json:"title"       validate:"required"`
	Description string `json:"description"`
	Link        string `json:"link"        validate:"required,url"`
}

type editBookmarkRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Link        *string `json:"link" validate:"omitempty,url"`
}

type bookmarkResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Link        string    `json:"link"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toBookmarkResponse(b *domain.Bookmark) bookmarkResponse {
	return bookmarkResponse{
		ID:          b.ID,
		Title:       b.Title,
		Description: b.Description,
		Link:        b.Link,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

// List returns all bookmarks of the authenticated user.
//
// @Summary      List bookmarks
// @Tags         bookmarks
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   bookmarkResponse
// @Failure      401  {object}  errorResponse
// @Router       /bookmarks [get]
func (h *BookmarkHandler) List(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	bookmarks, err := h.service.List(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	resp := make([]bookmarkResponse, 0, len(bookmarks))
	for i := range bookmarks {
		resp = append(resp, toBookmarkResponse(&bookmarks[i]))
	}
	return c.JSON(http.StatusOK, resp)
}

// Get returns a single bookmark by id.
//
// @Summary      Get a bookmark
// @Tags         bookmarks
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Bookmark id"
// @Success      200  {object}  bookmarkResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /bookmarks/{id} [get]
func (h *BookmarkHandler) Get(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	bookmark, err := h.service.Get(c.Request().Context(), userID, c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toBookmarkResponse(bookmark))
}

// Create saves a new bookmark for the authenticated user.
//
// @Summary      Create a bookmark
// @Tags         bookmarks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createBookmarkRequest  true  "Bookmark details"
// @Success      201   {object}  bookmarkResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /bookmarks [post]
func (h *BookmarkHandler) Create(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createBookmarkRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	bookmark, err := h.service.Create(c.Request().Context(), userID, ports.CreateBookmarkInput{
		Title:       req.Title,
		Description: req.Description,
		Link:        req.Link,
	})
	if err != nil {
		return err
	}

	metrics.BookmarksCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, toBookmarkResponse(bookmark))
}

// Edit updates fields of an existing bookmark.
//
// @Summary      Edit a bookmark
// @Tags         bookmarks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string               true  "Bookmark id"
// @Param        body  body      editBookmarkRequest  true  "Fields to update"
// @Success      200   {object}  bookmarkResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /bookmarks/{id} [patch]
func (h *BookmarkHandler) Edit(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req editBookmarkRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	bookmark, err := h.service.Edit(c.Request().Context(), userID, c.Param("id"), ports.BookmarkPatch{
		Title:       req.Title,
		Description: req.Description,
		Link:        req.Link,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toBookmarkResponse(bookmark))
}

// Delete removes a bookmark.
//
// @Summary      Delete a bookmark
// @Tags         bookmarks
// @Security     BearerAuth
// @Param        id  path  string  true  "Bookmark id"
// @Success      204
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /bookmarks/{id} [delete]
func (h *BookmarkHandler) Delete(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), userID, c.Param("id")); err != nil {
		return err
	}

	metrics.BookmarksDeletedTotal.Inc()
	return c.NoContent(http.StatusNoContent)
}
