package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"linkmark/internal/delivery/http/validator"
	"linkmark/internal/domain/entity"
	domainerrors "linkmark/internal/domain/errors"
	"linkmark/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockBookmarkUsecase struct {
	mock.Mock
}

func (m *mockBookmarkUsecase) Create(ctx context.Context, ownerID uuid.UUID, input *usecase.CreateBookmarkInput) (*entity.Bookmark, error) {
	args := m.Called(ctx, ownerID, input)
	if bookmark, ok := args.Get(0).(*entity.Bookmark); ok {
		return bookmark, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockBookmarkUsecase) GetAll(ctx context.Context, ownerID uuid.UUID) ([]*entity.Bookmark, error) {
	args := m.Called(ctx, ownerID)
	if bookmarks, ok := args.Get(0).([]*entity.Bookmark); ok {
		return bookmarks, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockBookmarkUsecase) GetByID(ctx context.Context, requesterID, bookmarkID uuid.UUID) (*entity.Bookmark, error) {
	args := m.Called(ctx, requesterID, bookmarkID)
	if bookmark, ok := args.Get(0).(*entity.Bookmark); ok {
		return bookmark, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockBookmarkUsecase) Edit(ctx context.Context, requesterID, bookmarkID uuid.UUID, input *usecase.EditBookmarkInput) (*entity.Bookmark, error) {
	args := m.Called(ctx, requesterID, bookmarkID, input)
	if bookmark, ok := args.Get(0).(*entity.Bookmark); ok {
		return bookmark, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockBookmarkUsecase) Delete(ctx context.Context, requesterID, bookmarkID uuid.UUID) error {
	args := m.Called(ctx, requesterID, bookmarkID)

	return args.Error(0)
}

func newBookmarkHandlerTest(t *testing.T) (*BookmarkHandler, *mockBookmarkUsecase) {
	uc := &mockBookmarkUsecase{}
	h := NewBookmarkHandler(BookmarkHandlerParams{
		BookmarkUC: uc,
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	t.Cleanup(func() {
		uc.AssertExpectations(t)
	})

	return h, uc
}

func newBookmarkContext(method, target, body string, userID any) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if userID != nil {
		c.Set("userID", userID)
	}

	return c, rec
}

func TestBookmarkHandler_Create_Created(t *testing.T) {
	h, uc := newBookmarkHandlerTest(t)

	userID := uuid.New()
	created := &entity.Bookmark{
		ID:      uuid.New(),
		OwnerID: userID,
		Title:   "Go blog",
		Link:    "https://go.dev/blog",
	}

	uc.On("Create", mock.Anything, userID, &usecase.CreateBookmarkInput{
		Title: "Go blog",
		Link:  "https://go.dev/blog",
	}).Return(created, nil).Once()

	c, rec := newBookmarkContext(http.MethodPost, "/bookmarks",
		`{"title":"Go blog","link":"https://go.dev/blog"}`, userID)

	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var body struct {
		Success bool              `json:"success"`
		Data    *BookmarkResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, created.ID, body.Data.ID)
	assert.Equal(t, userID, body.Data.OwnerID)
}

func TestBookmarkHandler_Create_MissingLink(t *testing.T) {
	h, uc := newBookmarkHandlerTest(t)

	userID := uuid.New()
	c, rec := newBookmarkContext(http.MethodPost, "/bookmarks", `{"title":"no link"}`, userID)

	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	uc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestBookmarkHandler_Create_NoIdentity(t *testing.T) {
	h, uc := newBookmarkHandlerTest(t)

	c, rec := newBookmarkContext(http.MethodPost, "/bookmarks",
		`{"title":"Go blog","link":"https://go.dev/blog"}`, nil)

	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	uc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestBookmarkHandler_GetByID_Forbidden(t *testing.T) {
	h, uc := newBookmarkHandlerTest(t)

	userID := uuid.New()
	bookmarkID := uuid.New()

	uc.On("GetByID", mock.Anything, userID, bookmarkID).
		Return(nil, errors.Wrap(domainerrors.ErrForbidden, "bookmark access denied")).Once()

	c, rec := newBookmarkContext(http.MethodGet, "/bookmarks/"+bookmarkID.String(), "", userID)
	c.SetParamNames("id")
	c.SetParamValues(bookmarkID.String())

	require.NoError(t, h.GetByID(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	var body struct {
		Message string `json:"message"`
		Error   struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Access to resource denied", body.Message)
	assert.Equal(t, "FORBIDDEN", body.Error.Code)
}

func TestBookmarkHandler_GetByID_BadID(t *testing.T) {
	h, uc := newBookmarkHandlerTest(t)

	userID := uuid.New()
	c, rec := newBookmarkContext(http.MethodGet, "/bookmarks/not-a-uuid", "", userID)
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	require.NoError(t, h.GetByID(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	uc.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything, mock.Anything)
}

func TestBookmarkHandler_Delete_NoContent(t *testing.T) {
	h, uc := newBookmarkHandlerTest(t)

	userID := uuid.New()
	bookmarkID := uuid.New()

	uc.On("Delete", mock.Anything, userID, bookmarkID).Return(nil).Once()

	c, rec := newBookmarkContext(http.MethodDelete, "/bookmarks/"+bookmarkID.String(), "", userID)
	c.SetParamNames("id")
	c.SetParamValues(bookmarkID.String())

	require.NoError(t, h.Delete(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestBookmarkHandler_GetAll_EmptyList(t *testing.T) {
	h, uc := newBookmarkHandlerTest(t)

	userID := uuid.New()
	uc.On("GetAll", mock.Anything, userID).Return([]*entity.Bookmark{}, nil).Once()

	c, rec := newBookmarkContext(http.MethodGet, "/bookmarks", "", userID)

	require.NoError(t, h.GetAll(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data []*BookmarkResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Empty(t, body.Data)
}
