package handlers

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/markjakearzadon/influencehub-gobackend/internal/models"
	"github.com/markjakearzadon/influencehub-gobackend/internal/services"
)

// NotificationHandler serves the caller's own notifications; every route
// sits behind requireAuth.
type NotificationHandler struct {
	base
	service *services.NotificationService
}

func NewNotificationHandler(service *services.NotificationService, logger *zap.Logger, production bool) *NotificationHandler {
	return &NotificationHandler{base: base{logger: logger, production: production}, service: service}
}

func (h *NotificationHandler) GetNotifications(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r.Context())

	// Only the literal "true" and "false" filter; anything else lists all.
	var read *bool
	switch r.URL.Query().Get("read") {
	case "true":
		read = new(bool)
		*read = true
	case "false":
		read = new(bool)
	}

	page, err := h.service.List(r.Context(), user.ID, read, queryInt(r, "page"), queryInt(r, "limit"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success":       true,
		"notifications": page.Notifications,
		"totalPages":    page.TotalPages,
		"currentPage":   page.CurrentPage,
		"totalResults":  page.TotalResults,
	})
}

func (h *NotificationHandler) MarkAsRead(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r.Context())
	id, err := models.ParseID(mux.Vars(r)["id"])
	if err != nil {
		writeFailure(w, http.StatusBadRequest, "Invalid notification ID format.")
		return
	}

	n, err := h.service.MarkRead(r.Context(), id, user.ID)
	if errors.Is(err, models.ErrNotFound) {
		writeFailure(w, http.StatusNotFound, "Notification not found or already read.")
		return
	}
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success":      true,
		"message":      "Notification marked as read.",
		"notification": n,
	})
}

func (h *NotificationHandler) MarkAllAsRead(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r.Context())
	modified, err := h.service.MarkAllRead(r.Context(), user.ID)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success":       true,
		"message":       "All notifications marked as read.",
		"modifiedCount": modified,
	})
}

func (h *NotificationHandler) DeleteNotification(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r.Context())
	id, err := models.ParseID(mux.Vars(r)["id"])
	if err != nil {
		writeFailure(w, http.StatusBadRequest, "Invalid notification ID format.")
		return
	}

	err = h.service.Delete(r.Context(), id, user.ID)
	if errors.Is(err, models.ErrNotFound) {
		writeFailure(w, http.StatusNotFound, "Notification not found.")
		return
	}
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Notification deleted successfully.",
	})
}
