package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/homenav/nav-server/internal/logger"
	"github.com/homenav/nav-server/internal/service"
	"github.com/homenav/nav-server/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, r, http.StatusBadRequest, "Invalid JSON was passed")
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, request)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			writeError(w, r, http.StatusBadRequest, "username and password are required")
			return
		case errors.Is(err, service.ErrUsernameTaken):
			log.Err(err).Msg("username already exists")
			writeError(w, r, http.StatusBadRequest, "Username already exists")
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			writeError(w, r, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
			return
		}
	}

	token, err := h.services.AuthService.CreateToken(ctx, registeredUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		writeError(w, r, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		return
	}

	writeSuccess(w, r, models.AuthResponse{
		Token: token.SignedString,
		User:  registeredUser.Summary(),
	})
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, r, http.StatusBadRequest, "Invalid JSON was passed")
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, request)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			writeError(w, r, http.StatusBadRequest, "username and password are required")
			return
		case errors.Is(err, service.ErrWrongCredentials):
			log.Err(err).Msg("wrong username or password")
			writeError(w, r, http.StatusUnauthorized, "wrong username or password")
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
			writeError(w, r, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
			return
		}
	}

	log.Debug().Int64("id", foundUser.ID).Str("username", foundUser.Username).Msg("user successfully logged in")

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		writeError(w, r, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		return
	}

	writeSuccess(w, r, models.AuthResponse{
		Token: token.SignedString,
		User:  foundUser.Summary(),
	})
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	user, err := h.services.UserService.GetUser(ctx, userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeSuccess(w, r, user.Summary())
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	var update models.UserUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, r, http.StatusBadRequest, "Invalid JSON was passed")
		return
	}

	user, err := h.services.UserService.UpdateUser(ctx, userID, update)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeSuccess(w, r, user.Summary())
}
