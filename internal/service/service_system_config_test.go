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

func newTestSystemConfigService(t *testing.T, ctrl *gomock.Controller) (SystemConfigService, *mock.MockSystemConfigRepository) {
	t.Helper()

	configRepo := mock.NewMockSystemConfigRepository(ctrl)
	svc := NewSystemConfigService(configRepo, logger.Nop())

	return svc, configRepo
}

func TestSystemConfigService_GetPublicConfig_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, configRepo := newTestSystemConfigService(t, ctrl)
	ctx := context.Background()

	configRepo.EXPECT().
		GetConfig(ctx, publicConfigUserID).
		Return(models.SystemConfig{ID: 1, SiteTitle: "My Nav", ICPRecord: "ICP-123", UserID: 1}, nil)

	view, err := svc.GetPublicConfig(ctx)
	require.NoError(t, err)
	assert.Equal(t, "My Nav", view.SiteTitle)
	assert.Equal(t, "ICP-123", view.ICPRecord)
}

func TestSystemConfigService_GetPublicConfig_DefaultsWhenMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, configRepo := newTestSystemConfigService(t, ctrl)
	ctx := context.Background()

	configRepo.EXPECT().
		GetConfig(ctx, publicConfigUserID).
		Return(models.SystemConfig{}, store.ErrRecordNotFound)

	view, err := svc.GetPublicConfig(ctx)
	require.NoError(t, err, "a missing row is not an error for the public read")
	assert.Equal(t, models.DefaultSiteTitle, view.SiteTitle)
	assert.Empty(t, view.ICPRecord)
}

func TestSystemConfigService_UpdateConfig_Delegates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, configRepo := newTestSystemConfigService(t, ctrl)
	ctx := context.Background()
	title := "Renamed"
	update := models.SystemConfigUpdate{SiteTitle: &title}

	configRepo.EXPECT().
		UpsertConfig(ctx, int64(7), update).
		Return(models.SystemConfig{ID: 1, SiteTitle: title, UserID: 7}, nil)

	updated, err := svc.UpdateConfig(ctx, 7, update)
	require.NoError(t, err)
	assert.Equal(t, title, updated.SiteTitle)
}

func TestSystemConfigService_UpdateConfig_EmptyUpdate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, configRepo := newTestSystemConfigService(t, ctrl)
	ctx := context.Background()

	configRepo.EXPECT().
		UpsertConfig(ctx, int64(7), models.SystemConfigUpdate{}).
		Return(models.SystemConfig{}, store.ErrNoFieldsToUpdate)

	_, err := svc.UpdateConfig(ctx, 7, models.SystemConfigUpdate{})
	assert.ErrorIs(t, err, store.ErrNoFieldsToUpdate)
}
