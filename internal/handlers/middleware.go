package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/markjakearzadon/influencehub-gobackend/internal/auth"
	"github.com/markjakearzadon/influencehub-gobackend/internal/metrics"
	"github.com/markjakearzadon/influencehub-gobackend/internal/models"
	"github.com/markjakearzadon/influencehub-gobackend/internal/services"
)

const (
	msgLoginRequired    = "Unauthorized: Please log in to access this resource."
	msgNoSessionUser    = "User authentication failed: No user found in session."
	msgInsufficientRole = "Access denied: Insufficient permissions."
)

type ctxKey string

const (
	ctxKeyRequestID ctxKey = "request_id"
	ctxKeySession   ctxKey = "session"
	ctxKeyUser      ctxKey = "user"
)

func requestIDFromContext(ctx context.Context) string {
	if s, ok := ctx.Value(ctxKeyRequestID).(string); ok {
		return s
	}
	return ""
}

func sessionFromContext(ctx context.Context) *auth.Session {
	s, _ := ctx.Value(ctxKeySession).(*auth.Session)
	return s
}

// userFromContext is only set behind requireAuth.
func userFromContext(ctx context.Context) *models.User {
	u, _ := ctx.Value(ctxKeyUser).(*models.User)
	return u
}

type middleware struct {
	base
	sessions *auth.Manager
	users    *services.UserService
}

func requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := r.Header.Get("X-Request-Id")
		if reqID == "" {
			reqID = uuid.NewString()
		}
		w.Header().Set("X-Request-Id", reqID)
		ctx := context.WithValue(r.Context(), ctxKeyRequestID, reqID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *middleware) recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				stack := debug.Stack()
				m.logger.Error("panic recovered",
					zap.String("request_id", requestIDFromContext(r.Context())),
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
					zap.Any("panic", rec),
					zap.ByteString("stack", stack),
				)
				body := map[string]any{"success": false, "message": fmt.Sprint(rec)}
				if !m.production {
					body["stack"] = string(stack)
				}
				writeJSON(w, http.StatusInternalServerError, body)
			}
		}()
		next.ServeHTTP(w, r)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	statusCode int
	bytes      int
}

func (r *statusRecorder) WriteHeader(statusCode int) {
	r.statusCode = statusCode
	r.ResponseWriter.WriteHeader(statusCode)
}

func (r *statusRecorder) Write(payload []byte) (int, error) {
	if r.statusCode == 0 {
		r.statusCode = http.StatusOK
	}
	n, err := r.ResponseWriter.Write(payload)
	r.bytes += n
	return n, err
}

// logging writes one log line and one metrics sample per request.
func (m *middleware) logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		recorder := &statusRecorder{ResponseWriter: w}
		next.ServeHTTP(recorder, r)

		statusCode := recorder.statusCode
		if statusCode == 0 {
			statusCode = http.StatusOK
		}
		elapsed := time.Since(start)

		route := r.URL.Path
		if cur := mux.CurrentRoute(r); cur != nil {
			if tpl, err := cur.GetPathTemplate(); err == nil {
				route = tpl
			}
		}
		metrics.ObserveRequest(route, r.Method, statusCode, elapsed)

		fields := []zap.Field{
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", statusCode),
			zap.Int("bytes", recorder.bytes),
			zap.Duration("duration", elapsed),
			zap.String("request_id", requestIDFromContext(r.Context())),
		}
		switch {
		case statusCode >= 500:
			m.logger.Error("http request completed", fields...)
		case statusCode >= 400:
			m.logger.Warn("http request completed", fields...)
		default:
			m.logger.Info("http request completed", fields...)
		}
	})
}

// loadSession attaches the caller's session, if any, to the request.
func (m *middleware) loadSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s, err := m.sessions.Load(r)
		if err != nil {
			m.logger.Warn("session lookup failed",
				zap.String("request_id", requestIDFromContext(r.Context())),
				zap.Error(err),
			)
		}
		if s != nil {
			r = r.WithContext(context.WithValue(r.Context(), ctxKeySession, s))
		}
		next.ServeHTTP(w, r)
	})
}

// requireAuth rejects requests without a session and resolves the session
// to its current user record.
func (m *middleware) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s := sessionFromContext(r.Context())
		if s == nil {
			writeMessage(w, http.StatusUnauthorized, msgLoginRequired)
			return
		}

		id, err := models.ParseID(s.UserID)
		if err != nil {
			writeMessage(w, http.StatusForbidden, msgNoSessionUser)
			return
		}
		user, err := m.users.Me(r.Context(), id)
		if errors.Is(err, models.ErrNotFound) {
			writeMessage(w, http.StatusForbidden, msgNoSessionUser)
			return
		}
		if err != nil {
			m.fail(w, r, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxKeyUser, user)))
	})
}

// authorizeRoles must run after requireAuth.
func (m *middleware) authorizeRoles(roles ...models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user := userFromContext(r.Context())
			if user == nil {
				writeMessage(w, http.StatusUnauthorized, msgLoginRequired)
				return
			}
			if !slices.Contains(roles, user.Role) {
				writeMessage(w, http.StatusForbidden, msgInsufficientRole)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// chain wraps h so that mws run in the order given.
func chain(h http.HandlerFunc, mws ...func(http.Handler) http.Handler) http.Handler {
	var out http.Handler = h
	for i := len(mws) - 1; i >= 0; i-- {
		out = mws[i](out)
	}
	return out
}
