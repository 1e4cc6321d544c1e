package http

import (
	"errors"
	"net/http"

	"github.com/homenav/nav-server/internal/logger"
	"github.com/homenav/nav-server/internal/service"
)

func (h *Handler) currentWeather(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	live, err := h.services.WeatherService.CurrentWeather(ctx, userID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrWeatherNotConfigured):
			writeError(w, r, http.StatusBadRequest, "weather is not configured yet")
			return
		case errors.Is(err, service.ErrNoWeatherData):
			writeError(w, r, http.StatusInternalServerError, "weather data is unavailable")
			return
		default:
			log.Err(err).Msg("weather lookup failed")
			writeServiceError(w, r, err)
			return
		}
	}

	writeSuccess(w, r, live)
}
