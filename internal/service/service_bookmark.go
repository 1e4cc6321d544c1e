package service

import (
	"context"
	"fmt"

	"github.com/homenav/nav-server/internal/logger"
	"github.com/homenav/nav-server/internal/store"
	"github.com/homenav/nav-server/models"
)

// bookmarkService is the concrete implementation of BookmarkService. It
// covers both bookmark categories and bookmarks; the two repositories stay
// separate but every mutation runs owner-scoped through the caller's id.
type bookmarkService struct {
	categoryRepository store.CategoryRepository
	bookmarkRepository store.BookmarkRepository
	logger             *logger.Logger
}

// NewBookmarkService constructs a BookmarkService over the category and
// bookmark repositories.
func NewBookmarkService(categoryRepository store.CategoryRepository, bookmarkRepository store.BookmarkRepository, logger *logger.Logger) BookmarkService {
	return &bookmarkService{
		categoryRepository: categoryRepository,
		bookmarkRepository: bookmarkRepository,
		logger:             logger,
	}
}

// ListCategories returns the caller's bookmark categories in display order.
func (b *bookmarkService) ListCategories(ctx context.Context, ownerID int64) ([]models.BookmarkCategory, error) {
	log := logger.FromContext(ctx)

	categories, err := b.categoryRepository.ListCategories(ctx, ownerID)
	if err != nil {
		log.Err(err).Int64("user_id", ownerID).Msg("category listing failed")
		return nil, fmt.Errorf("category listing failed: %w", err)
	}

	return categories, nil
}

// CreateCategory validates and persists one new category for the caller.
func (b *bookmarkService) CreateCategory(ctx context.Context, request models.CategoryRequest, ownerID int64) (models.BookmarkCategory, error) {
	log := logger.FromContext(ctx)

	if request.Name == "" {
		log.Error().Int64("user_id", ownerID).Msg("category name is required")
		return models.BookmarkCategory{}, ErrInvalidDataProvided
	}

	category := models.BookmarkCategory{
		Name:   request.Name,
		Icon:   request.Icon,
		UserID: ownerID,
	}
	if request.SortOrder != nil {
		category.SortOrder = *request.SortOrder
	}

	created, err := b.categoryRepository.CreateCategory(ctx, category)
	if err != nil {
		log.Err(err).Int64("user_id", ownerID).Msg("category creation failed")
		return models.BookmarkCategory{}, fmt.Errorf("category creation failed: %w", err)
	}

	return created, nil
}

// UpdateCategory applies a partial update to one of the caller's categories.
func (b *bookmarkService) UpdateCategory(ctx context.Context, id int64, update models.CategoryUpdate, ownerID int64) (models.BookmarkCategory, error) {
	log := logger.FromContext(ctx)

	updated, err := b.categoryRepository.UpdateCategory(ctx, id, update, ownerID)
	if err != nil {
		log.Err(err).Int64("category_id", id).Int64("user_id", ownerID).Msg("category update failed")
		return models.BookmarkCategory{}, fmt.Errorf("category update failed: %w", err)
	}

	return updated, nil
}

// DeleteCategory removes one of the caller's categories. The repository
// refuses the delete while bookmarks still reference the category, surfacing
// [store.ErrCategoryNotEmpty].
func (b *bookmarkService) DeleteCategory(ctx context.Context, id, ownerID int64) error {
	log := logger.FromContext(ctx)

	if err := b.categoryRepository.DeleteCategory(ctx, id, ownerID); err != nil {
		log.Err(err).Int64("category_id", id).Int64("user_id", ownerID).Msg("category deletion failed")
		return fmt.Errorf("category deletion failed: %w", err)
	}

	return nil
}

// ListBookmarks returns the caller's bookmarks in display order.
func (b *bookmarkService) ListBookmarks(ctx context.Context, ownerID int64) ([]models.Bookmark, error) {
	log := logger.FromContext(ctx)

	bookmarks, err := b.bookmarkRepository.ListBookmarks(ctx, ownerID)
	if err != nil {
		log.Err(err).Int64("user_id", ownerID).Msg("bookmark listing failed")
		return nil, fmt.Errorf("bookmark listing failed: %w", err)
	}

	return bookmarks, nil
}

// CreateBookmark validates and persists one new bookmark for the caller.
// The referenced category is trusted to belong to the same owner; the
// category id itself is only checked for presence.
func (b *bookmarkService) CreateBookmark(ctx context.Context, request models.BookmarkRequest, ownerID int64) (models.Bookmark, error) {
	log := logger.FromContext(ctx)

	if request.Name == "" || request.CategoryID == 0 {
		log.Error().Int64("user_id", ownerID).Msg("bookmark name and category are required")
		return models.Bookmark{}, ErrInvalidDataProvided
	}

	bookmark := models.Bookmark{
		Name:       request.Name,
		CategoryID: request.CategoryID,
		UserID:     ownerID,
	}
	if request.Icon != nil {
		bookmark.Icon = *request.Icon
	}
	if request.Remark != nil {
		bookmark.Remark = *request.Remark
	}
	if request.InternalURL != nil {
		bookmark.InternalURL = *request.InternalURL
	}
	if request.ExternalURL != nil {
		bookmark.ExternalURL = *request.ExternalURL
	}
	if request.SortOrder != nil {
		bookmark.SortOrder = *request.SortOrder
	}

	created, err := b.bookmarkRepository.CreateBookmark(ctx, bookmark)
	if err != nil {
		log.Err(err).Int64("user_id", ownerID).Msg("bookmark creation failed")
		return models.Bookmark{}, fmt.Errorf("bookmark creation failed: %w", err)
	}

	return created, nil
}

// UpdateBookmark applies a partial update to one of the caller's bookmarks.
func (b *bookmarkService) UpdateBookmark(ctx context.Context, id int64, update models.BookmarkUpdate, ownerID int64) (models.Bookmark, error) {
	log := logger.FromContext(ctx)

	updated, err := b.bookmarkRepository.UpdateBookmark(ctx, id, update, ownerID)
	if err != nil {
		log.Err(err).Int64("bookmark_id", id).Int64("user_id", ownerID).Msg("bookmark update failed")
		return models.Bookmark{}, fmt.Errorf("bookmark update failed: %w", err)
	}

	return updated, nil
}

// DeleteBookmark removes one of the caller's bookmarks.
func (b *bookmarkService) DeleteBookmark(ctx context.Context, id, ownerID int64) error {
	log := logger.FromContext(ctx)

	if err := b.bookmarkRepository.DeleteBookmark(ctx, id, ownerID); err != nil {
		log.Err(err).Int64("bookmark_id", id).Int64("user_id", ownerID).Msg("bookmark deletion failed")
		return fmt.Errorf("bookmark deletion failed: %w", err)
	}

	return nil
}
