package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/homenav/nav-server/internal/service"
	"github.com/homenav/nav-server/models"
)

type mockWeatherService struct {
	currentWeatherFn func(ctx context.Context, userID int64) (models.WeatherLive, error)
}

func (m *mockWeatherService) CurrentWeather(ctx context.Context, userID int64) (models.WeatherLive, error) {
	return m.currentWeatherFn(ctx, userID)
}

func TestCurrentWeather_Success(t *testing.T) {
	weather := &mockWeatherService{
		currentWeatherFn: func(_ context.Context, userID int64) (models.WeatherLive, error) {
			assert.Equal(t, int64(1), userID)
			return models.WeatherLive{City: "Beijing", Weather: "Sunny", Temperature: "25"}, nil
		},
	}
	h := newTestHandler(&service.Services{WeatherService: weather})

	rr := httptest.NewRecorder()
	h.currentWeather(rr, authedRequest(http.MethodGet, "/api/weather/current", "", 1))

	require.Equal(t, http.StatusOK, rr.Code)

	live, ok := decodeResponse(t, rr).Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Sunny", live["weather"])
	assert.Equal(t, "25", live["temperature"])
}

func TestCurrentWeather_NotConfigured(t *testing.T) {
	weather := &mockWeatherService{
		currentWeatherFn: func(_ context.Context, _ int64) (models.WeatherLive, error) {
			return models.WeatherLive{}, service.ErrWeatherNotConfigured
		},
	}
	h := newTestHandler(&service.Services{WeatherService: weather})

	rr := httptest.NewRecorder()
	h.currentWeather(rr, authedRequest(http.MethodGet, "/api/weather/current", "", 1))

	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "weather is not configured yet", decodeResponse(t, rr).Message)
}

func TestCurrentWeather_ProviderError(t *testing.T) {
	weather := &mockWeatherService{
		currentWeatherFn: func(_ context.Context, _ int64) (models.WeatherLive, error) {
			return models.WeatherLive{}, &service.WeatherProviderError{
				Infocode: "INVALID_USER_KEY",
				Message:  "user key is incorrect or expired",
			}
		},
	}
	h := newTestHandler(&service.Services{WeatherService: weather})

	rr := httptest.NewRecorder()
	h.currentWeather(rr, authedRequest(http.MethodGet, "/api/weather/current", "", 1))

	require.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, "user key is incorrect or expired", decodeResponse(t, rr).Message)
}

func TestCurrentWeather_NoData(t *testing.T) {
	weather := &mockWeatherService{
		currentWeatherFn: func(_ context.Context, _ int64) (models.WeatherLive, error) {
			return models.WeatherLive{}, service.ErrNoWeatherData
		},
	}
	h := newTestHandler(&service.Services{WeatherService: weather})

	rr := httptest.NewRecorder()
	h.currentWeather(rr, authedRequest(http.MethodGet, "/api/weather/current", "", 1))

	require.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, "weather data is unavailable", decodeResponse(t, rr).Message)
}
