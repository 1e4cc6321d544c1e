package http

import (
	"encoding/json"
	"net/http"

	"github.com/homenav/nav-server/internal/logger"
	"github.com/homenav/nav-server/models"
)

func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	categories, err := h.services.BookmarkService.ListCategories(ctx, userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeSuccess(w, r, categories)
}

func (h *Handler) createCategory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	var request models.CategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, r, http.StatusBadRequest, "Invalid JSON was passed")
		return
	}

	category, err := h.services.BookmarkService.CreateCategory(ctx, request, userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeSuccess(w, r, category)
}

func (h *Handler) updateCategory(w http.ResponseWriter, r *http.Request) {
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

	var update models.CategoryUpdate
	if err = json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, r, http.StatusBadRequest, "Invalid JSON was passed")
		return
	}

	category, err := h.services.BookmarkService.UpdateCategory(ctx, id, update, userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeSuccess(w, r, category)
}

func (h *Handler) deleteCategory(w http.ResponseWriter, r *http.Request) {
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

	if err = h.services.BookmarkService.DeleteCategory(ctx, id, userID); err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeSuccess(w, r, nil)
}

func (h *Handler) listBookmarks(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	bookmarks, err := h.services.BookmarkService.ListBookmarks(ctx, userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeSuccess(w, r, bookmarks)
}

func (h *Handler) createBookmark(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	var request models.BookmarkRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, r, http.StatusBadRequest, "Invalid JSON was passed")
		return
	}

	bookmark, err := h.services.BookmarkService.CreateBookmark(ctx, request, userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeSuccess(w, r, bookmark)
}

func (h *Handler) updateBookmark(w http.ResponseWriter, r *http.Request) {
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

	var update models.BookmarkUpdate
	if err = json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, r, http.StatusBadRequest, "Invalid JSON was passed")
		return
	}

	bookmark, err := h.services.BookmarkService.UpdateBookmark(ctx, id, update, userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeSuccess(w, r, bookmark)
}

func (h *Handler) deleteBookmark(w http.ResponseWriter, r *http.Request) {
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

	if err = h.services.BookmarkService.DeleteBookmark(ctx, id, userID); err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeSuccess(w, r, nil)
}
