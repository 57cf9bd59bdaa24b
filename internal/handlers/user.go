package handlers

import (
	"errors"
	"net/http"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/markjakearzadon/influencehub-gobackend/internal/models"
	"github.com/markjakearzadon/influencehub-gobackend/internal/services"
)

type UserHandler struct {
	base
	service *services.UserService
}

func NewUserHandler(service *services.UserService, logger *zap.Logger, production bool) *UserHandler {
	return &UserHandler{base: base{logger: logger, production: production}, service: service}
}

func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var in services.NewUser
	if err := decodeJSON(r, &in); err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.service.Create(r.Context(), in)
	switch {
	case errors.Is(err, models.ErrInvalidInput):
		writeMessage(w, http.StatusBadRequest, "Name and email are required.")
		return
	case errors.Is(err, models.ErrConflict):
		writeMessage(w, http.StatusConflict, "User already exists with this email.")
		return
	case err != nil:
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "User created successfully.",
		"user":    user,
	})
}

// currentUserID resolves the session's user id, answering 401 itself when
// there is none.
func (h *UserHandler) currentUserID(w http.ResponseWriter, r *http.Request) (primitive.ObjectID, bool) {
	s := sessionFromContext(r.Context())
	if s == nil {
		writeMessage(w, http.StatusUnauthorized, "Not authenticated.")
		return primitive.NilObjectID, false
	}
	id, err := models.ParseID(s.UserID)
	if err != nil {
		writeMessage(w, http.StatusUnauthorized, "Not authenticated.")
		return primitive.NilObjectID, false
	}
	return id, true
}

func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	id, ok := h.currentUserID(w, r)
	if !ok {
		return
	}
	user, err := h.service.Me(r.Context(), id)
	if errors.Is(err, models.ErrNotFound) {
		writeMessage(w, http.StatusNotFound, "User not found.")
		return
	}
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"user": user})
}

func (h *UserHandler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	id, ok := h.currentUserID(w, r)
	if !ok {
		return
	}
	var patch models.UserPatch
	if err := decodeJSON(r, &patch); err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.service.Update(r.Context(), id, patch)
	switch {
	case errors.Is(err, models.ErrNotFound):
		writeMessage(w, http.StatusNotFound, "User not found.")
		return
	case errors.Is(err, models.ErrInvalidInput):
		writeMessage(w, http.StatusBadRequest, detail(err))
		return
	case err != nil:
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "User updated successfully.",
		"user":    user,
	})
}
