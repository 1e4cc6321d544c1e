package service

import (
	"github.com/homenav/nav-server/internal/config"
	"github.com/homenav/nav-server/internal/logger"
	"github.com/homenav/nav-server/internal/store"
)

// Services bundles every application service behind one value, ready to be
// handed to the transport layer.
type Services struct {
	AuthService         AuthService
	UserService         UserService
	BookmarkService     BookmarkService
	SearchEngineService SearchEngineService
	HotSourceService    HotSourceService
	SystemConfigService SystemConfigService
	WeatherService      WeatherService
}

// NewServices wires all services onto the given repositories and
// configuration.
func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:         NewAuthService(storages.UserRepository, cfg.App, logger),
		UserService:         NewUserService(storages.UserRepository, logger),
		BookmarkService:     NewBookmarkService(storages.CategoryRepository, storages.BookmarkRepository, logger),
		SearchEngineService: NewSearchEngineService(storages.SearchEngineRepository, logger),
		HotSourceService:    NewHotSourceService(storages.HotSourceRepository, logger),
		SystemConfigService: NewSystemConfigService(storages.SystemConfigRepository, logger),
		WeatherService:      NewWeatherService(storages.UserRepository, cfg.Weather, logger),
	}
}
