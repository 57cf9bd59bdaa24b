// Package auth implements cookie sessions, password hashing and the Google
// OAuth login flow.
package auth

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/markjakearzadon/influencehub-gobackend/internal/models"
)

// CookieName is shared with the express-session based frontend.
const CookieName = "connect.sid"

// Session is the server-side state behind a session cookie.
type Session struct {
	ID        string      `json:"id"`
	UserID    string      `json:"userId"`
	Name      string      `json:"name"`
	Email     string      `json:"email"`
	Role      models.Role `json:"role"`
	CreatedAt time.Time   `json:"createdAt"`
}

// SessionStore persists sessions. Get returns nil, nil for an unknown id.
type SessionStore interface {
	Save(ctx context.Context, s *Session, ttl time.Duration) error
	Get(ctx context.Context, id string) (*Session, error)
	Delete(ctx context.Context, id string) error
}

// StateStore holds one-time OAuth state values.
type StateStore interface {
	Put(ctx context.Context, state string, ttl time.Duration) error
	Consume(ctx context.Context, state string) (bool, error)
}

// Manager issues and resolves signed session cookies.
type Manager struct {
	store  SessionStore
	secret []byte
	ttl    time.Duration
	secure bool
}

func NewManager(store SessionStore, secret string, ttl time.Duration, secure bool) *Manager {
	return &Manager{store: store, secret: []byte(secret), ttl: ttl, secure: secure}
}

// Start creates a session for user and sets the cookie on w.
func (m *Manager) Start(ctx context.Context, w http.ResponseWriter, user *models.User) (*Session, error) {
	s := &Session{
		ID:        uuid.NewString(),
		UserID:    user.ID.Hex(),
		Name:      user.Name,
		Email:     user.Email,
		Role:      user.Role,
		CreatedAt: time.Now().UTC(),
	}
	if err := m.store.Save(ctx, s, m.ttl); err != nil {
		return nil, err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    m.sign(s.ID),
		Path:     "/",
		MaxAge:   int(m.ttl.Seconds()),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return s, nil
}

// Load returns the session referenced by the request cookie or, failing
// that, by an "Authorization: Bearer" token. Missing, tampered and expired
// credentials yield nil without an error.
func (m *Manager) Load(r *http.Request) (*Session, error) {
	id, ok := m.sessionID(r)
	if !ok {
		return nil, nil
	}
	return m.store.Get(r.Context(), id)
}

func (m *Manager) sessionID(r *http.Request) (string, bool) {
	if c, err := r.Cookie(CookieName); err == nil {
		if id, ok := m.unsign(c.Value); ok {
			return id, true
		}
	}
	raw, found := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
	if !found || strings.TrimSpace(raw) == "" {
		return "", false
	}
	id, err := m.parseToken(strings.TrimSpace(raw))
	if err != nil {
		return "", false
	}
	return id, true
}

// Destroy deletes the current session and expires the cookie. It reports
// false when the request carried no valid session.
func (m *Manager) Destroy(w http.ResponseWriter, r *http.Request) (bool, error) {
	s, err := m.Load(r)
	if err != nil {
		return false, err
	}
	if s == nil {
		return false, nil
	}
	if err := m.store.Delete(r.Context(), s.ID); err != nil {
		return false, err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return true, nil
}

func (m *Manager) sign(id string) string {
	return "s:" + id + "." + m.mac(id)
}

func (m *Manager) unsign(value string) (string, bool) {
	if unescaped, err := url.PathUnescape(value); err == nil {
		value = unescaped
	}
	value, found := strings.CutPrefix(value, "s:")
	if !found {
		return "", false
	}
	dot := strings.LastIndexByte(value, '.')
	if dot <= 0 {
		return "", false
	}
	id, sig := value[:dot], value[dot+1:]
	if !hmac.Equal([]byte(sig), []byte(m.mac(id))) {
		return "", false
	}
	return id, true
}

func (m *Manager) mac(id string) string {
	h := hmac.New(sha256.New, m.secret)
	h.Write([]byte(id))
	return base64.RawStdEncoding.EncodeToString(h.Sum(nil))
}
