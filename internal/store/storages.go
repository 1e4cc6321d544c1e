package store

import "github.com/homenav/nav-server/internal/logger"

// Storages bundles every repository of the application behind one value,
// ready to be handed to the service layer.
type Storages struct {
	UserRepository         UserRepository
	CategoryRepository     CategoryRepository
	BookmarkRepository     BookmarkRepository
	SearchEngineRepository SearchEngineRepository
	HotSourceRepository    HotSourceRepository
	SystemConfigRepository SystemConfigRepository
}

// NewStorages wires all SQL-backed repositories onto one database connection.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:         NewUserRepository(db, logger),
		CategoryRepository:     NewCategoryRepository(db, logger),
		BookmarkRepository:     NewBookmarkRepository(db, logger),
		SearchEngineRepository: NewSearchEngineRepository(db, logger),
		HotSourceRepository:    NewHotSourceRepository(db, logger),
		SystemConfigRepository: NewSystemConfigRepository(db, logger),
	}
}
