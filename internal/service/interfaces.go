package service

import (
	"context"

	"github.com/homenav/nav-server/models"
)

// AuthService handles account creation, credential verification, and the JWT
// token lifecycle.
type AuthService interface {
	RegisterUser(ctx context.Context, request models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, request models.LoginRequest) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// UserService exposes profile reads and partial profile updates.
type UserService interface {
	GetUser(ctx context.Context, id int64) (models.User, error)
	UpdateUser(ctx context.Context, id int64, update models.UserUpdate) (models.User, error)
}

// BookmarkService covers both bookmark categories and the bookmarks within
// them. Category deletion is refused while bookmarks still reference the
// category.
type BookmarkService interface {
	ListCategories(ctx context.Context, ownerID int64) ([]models.BookmarkCategory, error)
	CreateCategory(ctx context.Context, request models.CategoryRequest, ownerID int64) (models.BookmarkCategory, error)
	UpdateCategory(ctx context.Context, id int64, update models.CategoryUpdate, ownerID int64) (models.BookmarkCategory, error)
	DeleteCategory(ctx context.Context, id, ownerID int64) error

	ListBookmarks(ctx context.Context, ownerID int64) ([]models.Bookmark, error)
	CreateBookmark(ctx context.Context, request models.BookmarkRequest, ownerID int64) (models.Bookmark, error)
	UpdateBookmark(ctx context.Context, id int64, update models.BookmarkUpdate, ownerID int64) (models.Bookmark, error)
	DeleteBookmark(ctx context.Context, id, ownerID int64) error
}

// SearchEngineService manages a user's search engines and enforces the
// per-user, case-insensitive uniqueness of quick commands.
type SearchEngineService interface {
	ListEngines(ctx context.Context, ownerID int64) ([]models.SearchEngine, error)
	CreateEngine(ctx context.Context, request models.SearchEngineRequest, ownerID int64) (models.SearchEngine, error)
	UpdateEngine(ctx context.Context, id int64, update models.SearchEngineUpdate, ownerID int64) (models.SearchEngine, error)
	DeleteEngine(ctx context.Context, id, ownerID int64) error
}

// HotSourceService manages a user's hot search source links.
type HotSourceService interface {
	ListSources(ctx context.Context, ownerID int64) ([]models.HotSource, error)
	CreateSource(ctx context.Context, request models.HotSourceRequest, ownerID int64) (models.HotSource, error)
	UpdateSource(ctx context.Context, id int64, update models.HotSourceUpdate, ownerID int64) (models.HotSource, error)
	DeleteSource(ctx context.Context, id, ownerID int64) error
}

// SystemConfigService exposes the public site configuration read and the
// authenticated partial update.
type SystemConfigService interface {
	GetPublicConfig(ctx context.Context) (models.SystemConfigView, error)
	UpdateConfig(ctx context.Context, ownerID int64, update models.SystemConfigUpdate) (models.SystemConfig, error)
}

// WeatherService resolves a user's stored geocode and API key into one live
// weather record from the upstream provider.
type WeatherService interface {
	CurrentWeather(ctx context.Context, userID int64) (models.WeatherLive, error)
}
