package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/markjakearzadon/influencehub-gobackend/internal/auth"
	"github.com/markjakearzadon/influencehub-gobackend/internal/models"
	"github.com/markjakearzadon/influencehub-gobackend/internal/services"
)

const (
	oauthStateTTL   = 10 * time.Minute
	authSuccessPath = "/api/v1/auth/success"
	authFailurePath = "/api/v1/auth/failure"
)

type AuthHandler struct {
	base
	service  *services.AuthService
	sessions *auth.Manager
	states   auth.StateStore
	google   *auth.GoogleProvider
}

func NewAuthHandler(service *services.AuthService, sessions *auth.Manager, states auth.StateStore, google *auth.GoogleProvider, logger *zap.Logger, production bool) *AuthHandler {
	return &AuthHandler{
		base:     base{logger: logger, production: production},
		service:  service,
		sessions: sessions,
		states:   states,
		google:   google,
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type sessionUser struct {
	ID    string      `json:"id"`
	Name  string      `json:"name"`
	Email string      `json:"email"`
	Role  models.Role `json:"role"`
}

// Login checks email and password, starts a cookie session and also returns
// a bearer token bound to the same session.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.service.Login(r.Context(), strings.TrimSpace(req.Email), req.Password)
	switch {
	case errors.Is(err, models.ErrInvalidInput):
		writeMessage(w, http.StatusBadRequest, "Email and password are required.")
		return
	case errors.Is(err, models.ErrUnauthorized):
		writeMessage(w, http.StatusUnauthorized, "Invalid email or password.")
		return
	case err != nil:
		h.fail(w, r, err)
		return
	}

	session, err := h.sessions.Start(r.Context(), w, user)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	token, err := h.sessions.IssueToken(session)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Login successful.",
		"user":    user,
		"token":   token,
	})
}

// GoogleStart redirects to Google's consent screen with a one-time state.
func (h *AuthHandler) GoogleStart(w http.ResponseWriter, r *http.Request) {
	if !h.google.Enabled() {
		writeMessage(w, http.StatusServiceUnavailable, "Google login is not configured.")
		return
	}
	state := uuid.NewString()
	if err := h.states.Put(r.Context(), state, oauthStateTTL); err != nil {
		h.fail(w, r, err)
		return
	}
	http.Redirect(w, r, h.google.AuthCodeURL(state), http.StatusFound)
}

// GoogleCallback finishes the OAuth flow. Every failure ends on the failure
// page; details only go to the log.
func (h *AuthHandler) GoogleCallback(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	fail := func(reason string, err error) {
		h.logger.Warn("google login failed",
			zap.String("request_id", requestIDFromContext(ctx)),
			zap.String("reason", reason),
			zap.Error(err),
		)
		http.Redirect(w, r, authFailurePath, http.StatusFound)
	}

	q := r.URL.Query()
	if e := q.Get("error"); e != "" {
		fail("denied", errors.New(e))
		return
	}
	ok, err := h.states.Consume(ctx, q.Get("state"))
	if err != nil || !ok {
		fail("state", err)
		return
	}
	profile, err := h.google.Exchange(ctx, q.Get("code"))
	if err != nil {
		fail("exchange", err)
		return
	}
	user, err := h.service.GoogleLogin(ctx, profile)
	if err != nil {
		fail("account", err)
		return
	}
	if _, err := h.sessions.Start(ctx, w, user); err != nil {
		fail("session", err)
		return
	}
	http.Redirect(w, r, authSuccessPath, http.StatusFound)
}

func (h *AuthHandler) Success(w http.ResponseWriter, r *http.Request) {
	s := sessionFromContext(r.Context())
	if s == nil {
		writeFailure(w, http.StatusUnauthorized, "No active session")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"user":    sessionUser{ID: s.UserID, Name: s.Name, Email: s.Email, Role: s.Role},
	})
}

func (h *AuthHandler) Failure(w http.ResponseWriter, r *http.Request) {
	writeFailure(w, http.StatusUnauthorized, "Authentication failed")
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	found, err := h.sessions.Destroy(w, r)
	if err != nil {
		h.logger.Error("logout failed",
			zap.String("request_id", requestIDFromContext(r.Context())),
			zap.Error(err),
		)
		writeMessage(w, http.StatusInternalServerError, "Logout failed.")
		return
	}
	if !found {
		writeMessage(w, http.StatusBadRequest, "No active session to log out.")
		return
	}
	writeMessage(w, http.StatusOK, "Successfully logged out.")
}
