package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/homenav/nav-server/internal/logger"
	"github.com/homenav/nav-server/internal/store"
	"github.com/homenav/nav-server/models"
)

// publicConfigUserID selects whose system config row the unauthenticated
// site-wide read serves. The dashboard is administered by its first account.
const publicConfigUserID int64 = 1

// systemConfigService is the concrete implementation of SystemConfigService.
type systemConfigService struct {
	configRepository store.SystemConfigRepository
	logger           *logger.Logger
}

// NewSystemConfigService constructs a SystemConfigService over the given
// repository.
func NewSystemConfigService(configRepository store.SystemConfigRepository, logger *logger.Logger) SystemConfigService {
	return &systemConfigService{
		configRepository: configRepository,
		logger:           logger,
	}
}

// GetPublicConfig returns the site-wide configuration served to
// unauthenticated clients. When no row exists yet, the defaults apply
// instead of an error.
func (s *systemConfigService) GetPublicConfig(ctx context.Context) (models.SystemConfigView, error) {
	log := logger.FromContext(ctx)

	config, err := s.configRepository.GetConfig(ctx, publicConfigUserID)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return models.SystemConfigView{SiteTitle: models.DefaultSiteTitle}, nil
		}

		log.Err(err).Msg("public system config read failed")
		return models.SystemConfigView{}, fmt.Errorf("public system config read failed: %w", err)
	}

	return config.View(), nil
}

// UpdateConfig applies a partial update to the caller's system config,
// creating the row on first update.
func (s *systemConfigService) UpdateConfig(ctx context.Context, ownerID int64, update models.SystemConfigUpdate) (models.SystemConfig, error) {
	log := logger.FromContext(ctx)

	config, err := s.configRepository.UpsertConfig(ctx, ownerID, update)
	if err != nil {
		log.Err(err).Int64("user_id", ownerID).Msg("system config update failed")
		return models.SystemConfig{}, fmt.Errorf("system config update failed: %w", err)
	}

	return config, nil
}
