package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/homenav/nav-server/internal/service"
	"github.com/homenav/nav-server/internal/store"
	"github.com/homenav/nav-server/models"
)

type mockBookmarkService struct {
	listCategoriesFn func(ctx context.Context, ownerID int64) ([]models.BookmarkCategory, error)
	createCategoryFn func(ctx context.Context, request models.CategoryRequest, ownerID int64) (models.BookmarkCategory, error)
	updateCategoryFn func(ctx context.Context, id int64, update models.CategoryUpdate, ownerID int64) (models.BookmarkCategory, error)
	deleteCategoryFn func(ctx context.Context, id, ownerID int64) error
	listBookmarksFn  func(ctx context.Context, ownerID int64) ([]models.Bookmark, error)
	createBookmarkFn func(ctx context.Context, request models.BookmarkRequest, ownerID int64) (models.Bookmark, error)
	updateBookmarkFn func(ctx context.Context, id int64, update models.BookmarkUpdate, ownerID int64) (models.Bookmark, error)
	deleteBookmarkFn func(ctx context.Context, id, ownerID int64) error
}

func (m *mockBookmarkService) ListCategories(ctx context.Context, ownerID int64) ([]models.BookmarkCategory, error) {
	return m.listCategoriesFn(ctx, ownerID)
}

func (m *mockBookmarkService) CreateCategory(ctx context.Context, request models.CategoryRequest, ownerID int64) (models.BookmarkCategory, error) {
	return m.createCategoryFn(ctx, request, ownerID)
}

func (m *mockBookmarkService) UpdateCategory(ctx context.Context, id int64, update models.CategoryUpdate, ownerID int64) (models.BookmarkCategory, error) {
	return m.updateCategoryFn(ctx, id, update, ownerID)
}

func (m *mockBookmarkService) DeleteCategory(ctx context.Context, id, ownerID int64) error {
	return m.deleteCategoryFn(ctx, id, ownerID)
}

func (m *mockBookmarkService) ListBookmarks(ctx context.Context, ownerID int64) ([]models.Bookmark, error) {
	return m.listBookmarksFn(ctx, ownerID)
}

func (m *mockBookmarkService) CreateBookmark(ctx context.Context, request models.BookmarkRequest, ownerID int64) (models.Bookmark, error) {
	return m.createBookmarkFn(ctx, request, ownerID)
}

func (m *mockBookmarkService) UpdateBookmark(ctx context.Context, id int64, update models.BookmarkUpdate, ownerID int64) (models.Bookmark, error) {
	return m.updateBookmarkFn(ctx, id, update, ownerID)
}

func (m *mockBookmarkService) DeleteBookmark(ctx context.Context, id, ownerID int64) error {
	return m.deleteBookmarkFn(ctx, id, ownerID)
}

func TestDeleteCategory_StillHasBookmarks(t *testing.T) {
	bookmarks := &mockBookmarkService{
		deleteCategoryFn: func(_ context.Context, id, ownerID int64) error {
			assert.Equal(t, int64(3), id)
			return store.ErrCategoryNotEmpty
		},
	}
	h := newTestHandler(&service.Services{BookmarkService: bookmarks})

	req := withIDParam(authedRequest(http.MethodDelete, "/api/bookmarks/categories/3", "", 10), "3")
	rr := httptest.NewRecorder()
	h.deleteCategory(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "category still has bookmarks", decodeResponse(t, rr).Message)
}

func TestDeleteCategory_NotFoundOrUnauthorized(t *testing.T) {
	bookmarks := &mockBookmarkService{
		deleteCategoryFn: func(_ context.Context, _, _ int64) error {
			return store.ErrRecordNotFound
		},
	}
	h := newTestHandler(&service.Services{BookmarkService: bookmarks})

	req := withIDParam(authedRequest(http.MethodDelete, "/api/bookmarks/categories/3", "", 99), "3")
	rr := httptest.NewRecorder()
	h.deleteCategory(rr, req)

	require.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "record not found or unauthorized", decodeResponse(t, rr).Message)
}

func TestCreateBookmark_DecodesCamelCaseBody(t *testing.T) {
	bookmarks := &mockBookmarkService{
		createBookmarkFn: func(_ context.Context, request models.BookmarkRequest, ownerID int64) (models.Bookmark, error) {
			assert.Equal(t, "router", request.Name)
			assert.Equal(t, int64(3), request.CategoryID)
			require.NotNil(t, request.InternalURL)
			assert.Equal(t, "http://192.168.1.2:8080", *request.InternalURL)
			assert.Equal(t, int64(10), ownerID)
			return models.Bookmark{ID: 1, Name: request.Name, CategoryID: request.CategoryID, UserID: ownerID}, nil
		},
	}
	h := newTestHandler(&service.Services{BookmarkService: bookmarks})

	rr := httptest.NewRecorder()
	h.createBookmark(rr, authedRequest(http.MethodPost, "/api/bookmarks",
		`{"name":"router","categoryId":3,"internalUrl":"http://192.168.1.2:8080"}`, 10))

	require.Equal(t, http.StatusOK, rr.Code)

	bookmark, ok := decodeResponse(t, rr).Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(1), bookmark["id"])
}

func TestListBookmarks_EmptyList(t *testing.T) {
	bookmarks := &mockBookmarkService{
		listBookmarksFn: func(_ context.Context, _ int64) ([]models.Bookmark, error) {
			return []models.Bookmark{}, nil
		},
	}
	h := newTestHandler(&service.Services{BookmarkService: bookmarks})

	rr := httptest.NewRecorder()
	h.listBookmarks(rr, authedRequest(http.MethodGet, "/api/bookmarks", "", 10))

	require.Equal(t, http.StatusOK, rr.Code)

	list, ok := decodeResponse(t, rr).Data.([]any)
	require.True(t, ok, "an empty list must serialize as [], not null")
	assert.Empty(t, list)
}
