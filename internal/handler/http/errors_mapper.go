package http

import (
	"errors"
	"net/http"

	"github.com/homenav/nav-server/internal/service"
	"github.com/homenav/nav-server/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrUsernameTaken:           http.StatusBadRequest,
	service.ErrWrongCredentials:        http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrWeatherNotConfigured:    http.StatusBadRequest,

	store.ErrNoUserWasFound:    http.StatusNotFound,
	store.ErrRecordNotFound:    http.StatusNotFound,
	store.ErrNoFieldsToUpdate:  http.StatusBadRequest,
	store.ErrCategoryNotEmpty:  http.StatusBadRequest,
	store.ErrNothingCreated:    http.StatusInternalServerError,
	store.ErrBuildingSQLQuery:  http.StatusInternalServerError,
	store.ErrExecutingQuery:    http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:       http.StatusInternalServerError,
	store.ErrScanningRows:      http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// messageFromError picks the client-facing message for err: the sentinel's
// own text for well-known conditions, a generic message otherwise. Internal
// error details never leak to the client.
func messageFromError(err error, status int) string {
	if status == http.StatusInternalServerError {
		return http.StatusText(http.StatusInternalServerError)
	}

	for target := range errorStatusMap {
		if errors.Is(err, target) {
			return target.Error()
		}
	}

	return http.StatusText(status)
}
