package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/homenav/nav-server/internal/config"
	"github.com/homenav/nav-server/internal/logger"
	"github.com/homenav/nav-server/internal/mock"
	"github.com/homenav/nav-server/models"
)

func newTestWeatherService(t *testing.T, ctrl *gomock.Controller, providerHandler http.HandlerFunc) (WeatherService, *mock.MockUserRepository) {
	t.Helper()

	provider := httptest.NewServer(providerHandler)
	t.Cleanup(provider.Close)

	userRepo := mock.NewMockUserRepository(ctrl)
	svc := NewWeatherService(userRepo, config.Weather{BaseURL: provider.URL}, logger.Nop())

	return svc, userRepo
}

func configuredUser() models.User {
	return models.User{
		ID:            1,
		Username:      "john",
		WeatherAdcode: "110000",
		WeatherKey:    "amap-key",
	}
}

func TestWeatherService_CurrentWeather_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, userRepo := newTestWeatherService(t, ctrl, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v3/weather/weatherInfo", r.URL.Path)
		assert.Equal(t, "amap-key", r.URL.Query().Get("key"))
		assert.Equal(t, "110000", r.URL.Query().Get("city"))
		assert.Equal(t, "base", r.URL.Query().Get("extensions"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"status": "1",
			"info": "OK",
			"infocode": "10000",
			"lives": [{
				"province": "Beijing",
				"city": "Beijing",
				"weather": "Sunny",
				"temperature": "25",
				"winddirection": "NE",
				"windpower": "4",
				"humidity": "40",
				"reporttime": "2026-08-31 12:00:00"
			}]
		}`))
	})

	userRepo.EXPECT().FindUserByID(gomock.Any(), int64(1)).Return(configuredUser(), nil)

	live, err := svc.CurrentWeather(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Sunny", live.Weather)
	assert.Equal(t, "25", live.Temperature)
}

func TestWeatherService_CurrentWeather_NotConfigured(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, userRepo := newTestWeatherService(t, ctrl, func(w http.ResponseWriter, r *http.Request) {
		t.Error("the provider must not be called for an unconfigured user")
	})

	userRepo.EXPECT().
		FindUserByID(gomock.Any(), int64(1)).
		Return(models.User{ID: 1, WeatherAdcode: "110000"}, nil)

	_, err := svc.CurrentWeather(context.Background(), 1)
	assert.ErrorIs(t, err, ErrWeatherNotConfigured)
}

func TestWeatherService_CurrentWeather_ProviderRejection(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, userRepo := newTestWeatherService(t, ctrl, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status": "0", "info": "INVALID_USER_KEY", "infocode": "INVALID_USER_KEY"}`))
	})

	userRepo.EXPECT().FindUserByID(gomock.Any(), int64(1)).Return(configuredUser(), nil)

	_, err := svc.CurrentWeather(context.Background(), 1)
	require.Error(t, err)

	var providerErr *WeatherProviderError
	require.ErrorAs(t, err, &providerErr)
	assert.Equal(t, "INVALID_USER_KEY", providerErr.Infocode)
	assert.Equal(t, "user key is incorrect or expired", providerErr.Message)
}

func TestWeatherService_CurrentWeather_UnknownInfocodeFallsBackToInfo(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, userRepo := newTestWeatherService(t, ctrl, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status": "0", "info": "ENGINE_RESPONSE_DATA_ERROR", "infocode": "30001"}`))
	})

	userRepo.EXPECT().FindUserByID(gomock.Any(), int64(1)).Return(configuredUser(), nil)

	_, err := svc.CurrentWeather(context.Background(), 1)

	var providerErr *WeatherProviderError
	require.ErrorAs(t, err, &providerErr)
	assert.Equal(t, "ENGINE_RESPONSE_DATA_ERROR", providerErr.Message)
}

func TestWeatherService_CurrentWeather_NoLiveRecord(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, userRepo := newTestWeatherService(t, ctrl, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status": "1", "info": "OK", "infocode": "10000", "lives": []}`))
	})

	userRepo.EXPECT().FindUserByID(gomock.Any(), int64(1)).Return(configuredUser(), nil)

	_, err := svc.CurrentWeather(context.Background(), 1)
	assert.ErrorIs(t, err, ErrNoWeatherData)
}

func TestWeatherService_CurrentWeather_ProviderHTTPError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, userRepo := newTestWeatherService(t, ctrl, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gateway timeout", http.StatusGatewayTimeout)
	})

	userRepo.EXPECT().FindUserByID(gomock.Any(), int64(1)).Return(configuredUser(), nil)

	_, err := svc.CurrentWeather(context.Background(), 1)

	var providerErr *WeatherProviderError
	require.ErrorAs(t, err, &providerErr)
}
