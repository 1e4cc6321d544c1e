package service

import (
	"context"
	"fmt"

	"github.com/homenav/nav-server/internal/logger"
	"github.com/homenav/nav-server/internal/store"
	"github.com/homenav/nav-server/models"
)

// searchEngineService is the concrete implementation of SearchEngineService.
// It layers the quick-command uniqueness rule on top of the repository: a
// command may be held by at most one engine per owner, compared
// case-insensitively.
type searchEngineService struct {
	engineRepository store.SearchEngineRepository
	logger           *logger.Logger
}

// NewSearchEngineService constructs a SearchEngineService over the given
// repository.
func NewSearchEngineService(engineRepository store.SearchEngineRepository, logger *logger.Logger) SearchEngineService {
	return &searchEngineService{
		engineRepository: engineRepository,
		logger:           logger,
	}
}

// ListEngines returns the caller's search engines in display order.
func (s *searchEngineService) ListEngines(ctx context.Context, ownerID int64) ([]models.SearchEngine, error) {
	log := logger.FromContext(ctx)

	engines, err := s.engineRepository.ListEngines(ctx, ownerID)
	if err != nil {
		log.Err(err).Int64("user_id", ownerID).Msg("search engine listing failed")
		return nil, fmt.Errorf("search engine listing failed: %w", err)
	}

	return engines, nil
}

// CreateEngine validates and persists one new search engine for the caller.
// A non-empty quick command must not collide with another engine of the same
// owner; collisions surface as a [*QuickCommandConflictError].
func (s *searchEngineService) CreateEngine(ctx context.Context, request models.SearchEngineRequest, ownerID int64) (models.SearchEngine, error) {
	log := logger.FromContext(ctx)

	if request.Name == "" || request.SearchURL == "" {
		log.Error().Int64("user_id", ownerID).Msg("search engine name and search url are required")
		return models.SearchEngine{}, ErrInvalidDataProvided
	}

	engine := models.SearchEngine{
		Name:      request.Name,
		SearchURL: request.SearchURL,
		Icon:      request.Icon,
		UserID:    ownerID,
	}
	if request.URL != nil {
		engine.URL = *request.URL
	}
	if request.SortOrder != nil {
		engine.SortOrder = *request.SortOrder
	}
	if request.QuickCommand != nil {
		engine.QuickCommand = *request.QuickCommand
	}

	if engine.QuickCommand != "" {
		if err := s.ensureQuickCommandFree(ctx, engine.QuickCommand, ownerID, 0); err != nil {
			return models.SearchEngine{}, err
		}
	}

	created, err := s.engineRepository.CreateEngine(ctx, engine)
	if err != nil {
		log.Err(err).Int64("user_id", ownerID).Msg("search engine creation failed")
		return models.SearchEngine{}, fmt.Errorf("search engine creation failed: %w", err)
	}

	return created, nil
}

// UpdateEngine applies a partial update to one of the caller's engines. When
// the update carries a new non-empty quick command, the command must be free
// among the owner's other engines.
func (s *searchEngineService) UpdateEngine(ctx context.Context, id int64, update models.SearchEngineUpdate, ownerID int64) (models.SearchEngine, error) {
	log := logger.FromContext(ctx)

	if update.QuickCommand != nil && *update.QuickCommand != "" {
		if err := s.ensureQuickCommandFree(ctx, *update.QuickCommand, ownerID, id); err != nil {
			return models.SearchEngine{}, err
		}
	}

	updated, err := s.engineRepository.UpdateEngine(ctx, id, update, ownerID)
	if err != nil {
		log.Err(err).Int64("engine_id", id).Int64("user_id", ownerID).Msg("search engine update failed")
		return models.SearchEngine{}, fmt.Errorf("search engine update failed: %w", err)
	}

	return updated, nil
}

// DeleteEngine removes one of the caller's search engines.
func (s *searchEngineService) DeleteEngine(ctx context.Context, id, ownerID int64) error {
	log := logger.FromContext(ctx)

	if err := s.engineRepository.DeleteEngine(ctx, id, ownerID); err != nil {
		log.Err(err).Int64("engine_id", id).Int64("user_id", ownerID).Msg("search engine deletion failed")
		return fmt.Errorf("search engine deletion failed: %w", err)
	}

	return nil
}

// ensureQuickCommandFree fails with a [*QuickCommandConflictError] when
// another engine of the same owner already holds the command.
func (s *searchEngineService) ensureQuickCommandFree(ctx context.Context, quickCommand string, ownerID, excludeID int64) error {
	log := logger.FromContext(ctx)

	holder, err := s.engineRepository.FindEngineByQuickCommand(ctx, quickCommand, ownerID, excludeID)
	if err != nil {
		log.Err(err).Int64("user_id", ownerID).Msg("quick command lookup failed")
		return fmt.Errorf("quick command lookup failed: %w", err)
	}
	if holder != nil {
		return &QuickCommandConflictError{Command: quickCommand, EngineName: holder.Name}
	}

	return nil
}
