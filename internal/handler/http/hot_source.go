package http

import (
	"encoding/json"
	"net/http"

	"github.com/homenav/nav-server/internal/logger"
	"github.com/homenav/nav-server/models"
)

func (h *Handler) listSources(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	sources, err := h.services.HotSourceService.ListSources(ctx, userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeSuccess(w, r, sources)
}

func (h *Handler) createSource(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	var request models.HotSourceRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, r, http.StatusBadRequest, "Invalid JSON was passed")
		return
	}

	source, err := h.services.HotSourceService.CreateSource(ctx, request, userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeSuccess(w, r, source)
}

func (h *Handler) updateSource(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	id, err := parseIDParam(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	var update models.HotSourceUpdate
	if err = json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, r, http.StatusBadRequest, "Invalid JSON was passed")
		return
	}

	source, err := h.services.HotSourceService.UpdateSource(ctx, id, update, userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeSuccess(w, r, source)
}

func (h *Handler) deleteSource(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	id, err := parseIDParam(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if err = h.services.HotSourceService.DeleteSource(ctx, id, userID); err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeSuccess(w, r, nil)
}
