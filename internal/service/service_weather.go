package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/homenav/nav-server/internal/config"
	"github.com/homenav/nav-server/internal/logger"
	"github.com/homenav/nav-server/internal/store"
	"github.com/homenav/nav-server/models"
)

// weatherInfoPath is the Amap endpoint serving current ("live") weather by
// administrative district code.
const weatherInfoPath = "/v3/weather/weatherInfo"

// weatherProviderMessages maps Amap infocodes to the messages surfaced to
// clients. Unknown codes fall back to the provider's own info text.
var weatherProviderMessages = map[string]string{
	"201":                    "required request parameter is missing",
	"202":                    "illegal request parameter",
	"203":                    "requested service does not exist",
	"204":                    "request failed",
	"205":                    "wrong request method",
	"206":                    "service response failed",
	"207":                    "no permission to access this service",
	"INVALID_USER_KEY":       "user key is incorrect or expired",
	"DAILY_QUERY_OVER_LIMIT": "daily query quota exceeded",
	"ACCESS_TOO_FREQUENT":    "access too frequent",
}

// amapWeatherResponse is the wire shape of the provider's weather endpoint.
// Status "1" signals success; any other value carries an infocode.
type amapWeatherResponse struct {
	Status   string               `json:"status"`
	Info     string               `json:"info"`
	Infocode string               `json:"infocode"`
	Lives    []models.WeatherLive `json:"lives"`
}

// weatherService is the concrete implementation of WeatherService. It issues
// one outbound request per call with no retry policy: a failed call surfaces
// immediately to the original caller.
type weatherService struct {
	userRepository store.UserRepository
	client         *resty.Client
	logger         *logger.Logger
}

// NewWeatherService constructs a WeatherService over the given user
// repository and provider settings.
func NewWeatherService(userRepository store.UserRepository, cfg config.Weather, logger *logger.Logger) WeatherService {
	if cfg.BaseURL == "" {
		cfg.BaseURL = config.DefaultWeatherBaseURL
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 15 * time.Second
	}

	client := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.RequestTimeout)

	return &weatherService{
		userRepository: userRepository,
		client:         client,
		logger:         logger,
	}
}

// CurrentWeather resolves the user's stored geocode and API key into one live
// weather record.
//
// Returns the reprojected record or:
//   - ErrWeatherNotConfigured when the user stored no geocode or key.
//   - A [*WeatherProviderError] carrying the mapped message when the
//     provider rejects the request.
//   - ErrNoWeatherData when the provider answers without a live record.
func (w *weatherService) CurrentWeather(ctx context.Context, userID int64) (models.WeatherLive, error) {
	log := logger.FromContext(ctx)

	user, err := w.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("user search by id failed")
		return models.WeatherLive{}, fmt.Errorf("user search by id failed: %w", err)
	}

	if user.WeatherAdcode == "" || user.WeatherKey == "" {
		return models.WeatherLive{}, ErrWeatherNotConfigured
	}

	var payload amapWeatherResponse
	resp, err := w.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"key":        user.WeatherKey,
			"city":       user.WeatherAdcode,
			"extensions": "base",
		}).
		SetResult(&payload).
		Get(weatherInfoPath)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("weather provider request failed")
		return models.WeatherLive{}, fmt.Errorf("weather provider request failed: %w", err)
	}
	if resp.IsError() {
		log.Error().Int64("user_id", userID).Int("status", resp.StatusCode()).Msg("weather provider returned an error status")
		return models.WeatherLive{}, &WeatherProviderError{Message: "weather provider request failed"}
	}

	if payload.Status != "1" {
		message, ok := weatherProviderMessages[payload.Infocode]
		if !ok {
			message = payload.Info
		}

		log.Error().
			Int64("user_id", userID).
			Str("infocode", payload.Infocode).
			Str("info", payload.Info).
			Msg("weather provider rejected the request")
		return models.WeatherLive{}, &WeatherProviderError{Infocode: payload.Infocode, Message: message}
	}

	if len(payload.Lives) == 0 {
		return models.WeatherLive{}, ErrNoWeatherData
	}

	return payload.Lives[0], nil
}
