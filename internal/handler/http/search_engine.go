package http

import (
	"encoding/json"
	"net/http"

	"github.com/homenav/nav-server/internal/logger"
	"github.com/homenav/nav-server/models"
)

func (h *Handler) listEngines(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	engines, err := h.services.SearchEngineService.ListEngines(ctx, userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeSuccess(w, r, engines)
}

func (h *Handler) createEngine(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	var request models.SearchEngineRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, r, http.StatusBadRequest, "Invalid JSON was passed")
		return
	}

	engine, err := h.services.SearchEngineService.CreateEngine(ctx, request, userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeSuccess(w, r, engine)
}

func (h *Handler) updateEngine(w http.ResponseWriter, r *http.Request) {
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

	var update models.SearchEngineUpdate
	if err = json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, r, http.StatusBadRequest, "Invalid JSON was passed")
		return
	}

	engine, err := h.services.SearchEngineService.UpdateEngine(ctx, id, update, userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeSuccess(w, r, engine)
}

func (h *Handler) deleteEngine(w http.ResponseWriter, r *http.Request) {
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

	if err = h.services.SearchEngineService.DeleteEngine(ctx, id, userID); err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeSuccess(w, r, nil)
}
