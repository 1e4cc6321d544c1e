package service

import (
	"context"
	"fmt"

	"github.com/homenav/nav-server/internal/logger"
	"github.com/homenav/nav-server/internal/store"
	"github.com/homenav/nav-server/models"
)

// hotSourceService is the concrete implementation of HotSourceService.
type hotSourceService struct {
	sourceRepository store.HotSourceRepository
	logger           *logger.Logger
}

// NewHotSourceService constructs a HotSourceService over the given repository.
func NewHotSourceService(sourceRepository store.HotSourceRepository, logger *logger.Logger) HotSourceService {
	return &hotSourceService{
		sourceRepository: sourceRepository,
		logger:           logger,
	}
}

// ListSources returns the caller's hot search sources in display order.
func (h *hotSourceService) ListSources(ctx context.Context, ownerID int64) ([]models.HotSource, error) {
	log := logger.FromContext(ctx)

	sources, err := h.sourceRepository.ListSources(ctx, ownerID)
	if err != nil {
		log.Err(err).Int64("user_id", ownerID).Msg("hot source listing failed")
		return nil, fmt.Errorf("hot source listing failed: %w", err)
	}

	return sources, nil
}

// CreateSource validates and persists one new hot source for the caller.
func (h *hotSourceService) CreateSource(ctx context.Context, request models.HotSourceRequest, ownerID int64) (models.HotSource, error) {
	log := logger.FromContext(ctx)

	if request.Name == "" || request.URL == "" || request.Type == "" {
		log.Error().Int64("user_id", ownerID).Msg("hot source name, url and type are required")
		return models.HotSource{}, ErrInvalidDataProvided
	}

	source := models.HotSource{
		Name:   request.Name,
		URL:    request.URL,
		Icon:   request.Icon,
		Type:   request.Type,
		UserID: ownerID,
	}
	if request.EnablePreview != nil {
		source.EnablePreview = *request.EnablePreview
	}
	if request.SortOrder != nil {
		source.SortOrder = *request.SortOrder
	}

	created, err := h.sourceRepository.CreateSource(ctx, source)
	if err != nil {
		log.Err(err).Int64("user_id", ownerID).Msg("hot source creation failed")
		return models.HotSource{}, fmt.Errorf("hot source creation failed: %w", err)
	}

	return created, nil
}

// UpdateSource applies a partial update to one of the caller's hot sources.
func (h *hotSourceService) UpdateSource(ctx context.Context, id int64, update models.HotSourceUpdate, ownerID int64) (models.HotSource, error) {
	log := logger.FromContext(ctx)

	updated, err := h.sourceRepository.UpdateSource(ctx, id, update, ownerID)
	if err != nil {
		log.Err(err).Int64("hot_source_id", id).Int64("user_id", ownerID).Msg("hot source update failed")
		return models.HotSource{}, fmt.Errorf("hot source update failed: %w", err)
	}

	return updated, nil
}

// DeleteSource removes one of the caller's hot sources.
func (h *hotSourceService) DeleteSource(ctx context.Context, id, ownerID int64) error {
	log := logger.FromContext(ctx)

	if err := h.sourceRepository.DeleteSource(ctx, id, ownerID); err != nil {
		log.Err(err).Int64("hot_source_id", id).Int64("user_id", ownerID).Msg("hot source deletion failed")
		return fmt.Errorf("hot source deletion failed: %w", err)
	}

	return nil
}
