package http

import (
	"encoding/json"
	"net/http"

	"github.com/homenav/nav-server/internal/logger"
	"github.com/homenav/nav-server/models"
)

func (h *Handler) getPublicSystemConfig(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	view, err := h.services.SystemConfigService.GetPublicConfig(ctx)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeSuccess(w, r, view)
}

func (h *Handler) updateSystemConfig(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	var update models.SystemConfigUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, r, http.StatusBadRequest, "Invalid JSON was passed")
		return
	}

	config, err := h.services.SystemConfigService.UpdateConfig(ctx, userID, update)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeSuccess(w, r, config)
}
