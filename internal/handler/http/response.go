package http

import (
	"errors"
	"net/http"

	"github.com/homenav/nav-server/internal/logger"
	"github.com/homenav/nav-server/internal/service"
	"github.com/homenav/nav-server/internal/utils"
	"github.com/homenav/nav-server/models"
)

// writeSuccess renders data inside the uniform response envelope with an
// HTTP 200 status.
func writeSuccess(w http.ResponseWriter, r *http.Request, data any) {
	response := models.Response{
		Code:    http.StatusOK,
		Message: "success",
		Data:    data,
	}

	if _, err := utils.WriteJSON(w, response, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("failed to write response")
	}
}

// writeError renders an error envelope whose code mirrors the HTTP status.
func writeError(w http.ResponseWriter, r *http.Request, status int, message string) {
	response := models.Response{
		Code:    status,
		Message: message,
	}

	if _, err := utils.WriteJSON(w, response, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("failed to write response")
	}
}

// writeServiceError maps a service or store error onto the response
// envelope. Typed domain errors carry their own message; everything else
// goes through the sentinel status map.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var conflict *service.QuickCommandConflictError
	if errors.As(err, &conflict) {
		writeError(w, r, http.StatusBadRequest, conflict.Error())
		return
	}

	var provider *service.WeatherProviderError
	if errors.As(err, &provider) {
		writeError(w, r, http.StatusInternalServerError, provider.Error())
		return
	}

	status := statusFromError(err)
	writeError(w, r, status, messageFromError(err, status))
}
