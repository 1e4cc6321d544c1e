package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/homenav/nav-server/models"
)

// UserRepository owns the "users" table: account creation, lookup, and
// partial profile updates.
type UserRepository interface {
	CreateUser(ctx context.Context, username, passwordHash, avatar string) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	FindUserByID(ctx context.Context, id int64) (models.User, error)
	UpdateUser(ctx context.Context, id int64, update models.UserUpdate) (models.User, error)
}

// CategoryRepository owns the "bookmark_categories" table. DeleteCategory is
// a single guarded statement: it refuses to remove a category that still has
// bookmarks, without a separate check-then-delete round-trip.
type CategoryRepository interface {
	ListCategories(ctx context.Context, ownerID int64) ([]models.BookmarkCategory, error)
	CreateCategory(ctx context.Context, category models.BookmarkCategory) (models.BookmarkCategory, error)
	UpdateCategory(ctx context.Context, id int64, update models.CategoryUpdate, ownerID int64) (models.BookmarkCategory, error)
	DeleteCategory(ctx context.Context, id, ownerID int64) error
}

// BookmarkRepository owns the "bookmarks" table.
type BookmarkRepository interface {
	ListBookmarks(ctx context.Context, ownerID int64) ([]models.Bookmark, error)
	CreateBookmark(ctx context.Context, bookmark models.Bookmark) (models.Bookmark, error)
	UpdateBookmark(ctx context.Context, id int64, update models.BookmarkUpdate, ownerID int64) (models.Bookmark, error)
	DeleteBookmark(ctx context.Context, id, ownerID int64) error
}

// SearchEngineRepository owns the "search_engines" table.
// FindEngineByQuickCommand matches case-insensitively within one owner's
// engines and returns nil when the command is free.
type SearchEngineRepository interface {
	ListEngines(ctx context.Context, ownerID int64) ([]models.SearchEngine, error)
	FindEngineByQuickCommand(ctx context.Context, quickCommand string, ownerID, excludeID int64) (*models.SearchEngine, error)
	CreateEngine(ctx context.Context, engine models.SearchEngine) (models.SearchEngine, error)
	UpdateEngine(ctx context.Context, id int64, update models.SearchEngineUpdate, ownerID int64) (models.SearchEngine, error)
	DeleteEngine(ctx context.Context, id, ownerID int64) error
}

// HotSourceRepository owns the "hot_sources" table.
type HotSourceRepository interface {
	ListSources(ctx context.Context, ownerID int64) ([]models.HotSource, error)
	CreateSource(ctx context.Context, source models.HotSource) (models.HotSource, error)
	UpdateSource(ctx context.Context, id int64, update models.HotSourceUpdate, ownerID int64) (models.HotSource, error)
	DeleteSource(ctx context.Context, id, ownerID int64) error
}

// SystemConfigRepository owns the "system_configs" table. Each user has at
// most one row; UpsertConfig creates it lazily on first update.
type SystemConfigRepository interface {
	GetConfig(ctx context.Context, ownerID int64) (models.SystemConfig, error)
	UpsertConfig(ctx context.Context, ownerID int64, update models.SystemConfigUpdate) (models.SystemConfig, error)
}
