package handler

import (
	"log/slog"
	"net/http"
	"time"

	"linkmark/internal/delivery/http/middleware"
	"linkmark/internal/delivery/http/response"
	"linkmark/internal/domain/entity"
	"linkmark/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// BookmarkHandlerParams holds dependencies for BookmarkHandler, injected by Fx.
type BookmarkHandlerParams struct {
	fx.In

	BookmarkUC usecase.BookmarkUsecase
	Logger     *slog.Logger
}

// BookmarkHandler holds dependencies for bookmark-related handlers.
type BookmarkHandler struct {
	bookmarkUC usecase.BookmarkUsecase
	logger     *slog.Logger
}

// NewBookmarkHandler is the constructor for BookmarkHandler.
func NewBookmarkHandler(params BookmarkHandlerParams) *BookmarkHandler {
	return &BookmarkHandler{
		bookmarkUC: params.BookmarkUC,
		logger:     params.Logger,
	}
}

// CreateBookmarkRequest represents the request body for creating a bookmark.
type CreateBookmarkRequest struct {
	Title       string `json:"title" validate:"required"`
	Link        string `json:"link" validate:"required,url"`
	Description string `json:"description"`
}

// EditBookmarkRequest represents the request body for a partial bookmark update.
type EditBookmarkRequest struct {
	Title       *string `json:"title"`
	Link        *string `json:"link" validate:"omitempty,url"`
	Description *string `json:"description"`
}

// BookmarkResponse is the public view of a bookmark.
type BookmarkResponse struct {
	ID          uuid.UUID `json:"id"`
	OwnerID     uuid.UUID `json:"owner_id"`
	Title       string    `json:"title"`
	Link        string    `json:"link"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toBookmarkResponse(bookmark *entity.Bookmark) *BookmarkResponse {
	return &BookmarkResponse{
		ID:          bookmark.ID,
		OwnerID:     bookmark.OwnerID,
		Title:       bookmark.Title,
		Link:        bookmark.Link,
		Description: bookmark.Description,
		CreatedAt:   bookmark.CreatedAt,
		UpdatedAt:   bookmark.UpdatedAt,
	}
}

func toBookmarkResponses(bookmarks []*entity.Bookmark) []*BookmarkResponse {
	responses := make([]*BookmarkResponse, 0, len(bookmarks))
	for _, bookmark := range bookmarks {
		responses = append(responses, toBookmarkResponse(bookmark))
	}

	return responses
}

// Create handles creating a bookmark owned by the caller.
func (h *BookmarkHandler) Create(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req CreateBookmarkRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid bookmark input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "Title and a valid link are required")
	}

	bookmark, err := h.bookmarkUC.Create(c.Request().Context(), userID, &usecase.CreateBookmarkInput{
		Title:       req.Title,
		Link:        req.Link,
		Description: req.Description,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toBookmarkResponse(bookmark), "Bookmark created successfully")
}

// GetAll lists every bookmark owned by the caller.
func (h *BookmarkHandler) GetAll(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	bookmarks, err := h.bookmarkUC.GetAll(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toBookmarkResponses(bookmarks), "Bookmarks fetched successfully")
}

// GetByID returns one bookmark owned by the caller.
func (h *BookmarkHandler) GetByID(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	bookmarkID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid bookmark ID")
	}

	bookmark, err := h.bookmarkUC.GetByID(c.Request().Context(), userID, bookmarkID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toBookmarkResponse(bookmark), "Bookmark fetched successfully")
}

// Edit applies a partial update to one of the caller's bookmarks.
func (h *BookmarkHandler) Edit(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	bookmarkID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid bookmark ID")
	}

	var req EditBookmarkRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid bookmark input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "Link must be a valid URL")
	}

	bookmark, err := h.bookmarkUC.Edit(c.Request().Context(), userID, bookmarkID, &usecase.EditBookmarkInput{
		Title:       req.Title,
		Link:        req.Link,
		Description: req.Description,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toBookmarkResponse(bookmark), "Bookmark updated successfully")
}

// Delete removes one of the caller's bookmarks.
func (h *BookmarkHandler) Delete(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	bookmarkID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid bookmark ID")
	}

	if err := h.bookmarkUC.Delete(c.Request().Context(), userID, bookmarkID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
