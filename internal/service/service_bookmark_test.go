package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/homenav/nav-server/internal/logger"
	"github.com/homenav/nav-server/internal/mock"
	"github.com/homenav/nav-server/internal/store"
	"github.com/homenav/nav-server/models"
)

func newTestBookmarkService(t *testing.T, ctrl *gomock.Controller) (*bookmarkService, *mock.MockCategoryRepository, *mock.MockBookmarkRepository) {
	t.Helper()

	categoryRepo := mock.NewMockCategoryRepository(ctrl)
	bookmarkRepo := mock.NewMockBookmarkRepository(ctrl)
	svc := NewBookmarkService(categoryRepo, bookmarkRepo, logger.Nop()).(*bookmarkService)

	return svc, categoryRepo, bookmarkRepo
}

func TestBookmarkService_CreateCategory_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, categoryRepo, _ := newTestBookmarkService(t, ctrl)
	ctx := context.Background()

	categoryRepo.EXPECT().
		CreateCategory(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, category models.BookmarkCategory) (models.BookmarkCategory, error) {
			assert.Equal(t, "dev", category.Name)
			assert.Equal(t, int64(10), category.UserID)
			category.ID = 1
			return category, nil
		})

	created, err := svc.CreateCategory(ctx, models.CategoryRequest{Name: "dev"}, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
}

func TestBookmarkService_CreateCategory_MissingName(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestBookmarkService(t, ctrl)
	ctx := context.Background()

	_, err := svc.CreateCategory(ctx, models.CategoryRequest{Icon: "folder"}, 10)
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestBookmarkService_DeleteCategory_StillHasBookmarks(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, categoryRepo, _ := newTestBookmarkService(t, ctrl)
	ctx := context.Background()

	categoryRepo.EXPECT().
		DeleteCategory(ctx, int64(1), int64(10)).
		Return(store.ErrCategoryNotEmpty)

	err := svc.DeleteCategory(ctx, 1, 10)
	assert.ErrorIs(t, err, store.ErrCategoryNotEmpty)
}

func TestBookmarkService_CreateBookmark_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, bookmarkRepo := newTestBookmarkService(t, ctrl)
	ctx := context.Background()

	internal := "http://192.168.1.2:8080"
	request := models.BookmarkRequest{
		Name:        "router",
		CategoryID:  3,
		InternalURL: &internal,
	}

	bookmarkRepo.EXPECT().
		CreateBookmark(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, bookmark models.Bookmark) (models.Bookmark, error) {
			assert.Equal(t, "router", bookmark.Name)
			assert.Equal(t, int64(3), bookmark.CategoryID)
			assert.Equal(t, internal, bookmark.InternalURL)
			assert.Equal(t, int64(10), bookmark.UserID)
			bookmark.ID = 1
			return bookmark, nil
		})

	created, err := svc.CreateBookmark(ctx, request, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
}

func TestBookmarkService_CreateBookmark_MissingFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestBookmarkService(t, ctrl)
	ctx := context.Background()

	_, err := svc.CreateBookmark(ctx, models.BookmarkRequest{Name: "router"}, 10)
	assert.ErrorIs(t, err, ErrInvalidDataProvided, "a bookmark needs a category")

	_, err = svc.CreateBookmark(ctx, models.BookmarkRequest{CategoryID: 3}, 10)
	assert.ErrorIs(t, err, ErrInvalidDataProvided, "a bookmark needs a name")
}

func TestBookmarkService_UpdateBookmark_NotFoundOrUnauthorized(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, bookmarkRepo := newTestBookmarkService(t, ctrl)
	ctx := context.Background()
	name := "renamed"
	update := models.BookmarkUpdate{Name: &name}

	bookmarkRepo.EXPECT().
		UpdateBookmark(ctx, int64(1), update, int64(99)).
		Return(models.Bookmark{}, store.ErrRecordNotFound)

	_, err := svc.UpdateBookmark(ctx, 1, update, 99)
	assert.ErrorIs(t, err, store.ErrRecordNotFound)
}
