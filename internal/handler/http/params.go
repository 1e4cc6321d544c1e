package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/homenav/nav-server/internal/logger"
	"github.com/homenav/nav-server/internal/utils"
)

// parseIDParam extracts the {id} path parameter as a positive integer.
func parseIDParam(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errInvalidID
	}

	return id, nil
}

// callerID resolves the authenticated user's id stored in the request context
// by the auth middleware. The second return value mirrors the context lookup:
// false means the request slipped past the auth gate, which is rejected with
// HTTP 401.
func callerID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		logger.FromRequest(r).Error().Msg("no user identity in request context")
		writeError(w, r, http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
		return 0, false
	}

	return userID, true
}
