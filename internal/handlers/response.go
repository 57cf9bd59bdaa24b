package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"runtime/debug"
	"strings"

	"go.uber.org/zap"

	"github.com/markjakearzadon/influencehub-gobackend/internal/models"
)

func writeJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeMessage(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, map[string]any{"message": message})
}

// writeFailure is the {success:false} envelope used by the influencer,
// notification and AI endpoints.
func writeFailure(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, map[string]any{"success": false, "message": message})
}

func writeErrorField(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, map[string]any{"error": message})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, models.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, models.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, models.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, models.ErrUpstream):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

var sentinels = []error{
	models.ErrInvalidInput,
	models.ErrUnauthorized,
	models.ErrForbidden,
	models.ErrNotFound,
	models.ErrConflict,
	models.ErrUpstream,
}

// detail strips the sentinel prefix from a wrapped domain error, leaving the
// human readable part.
func detail(err error) string {
	msg := err.Error()
	for _, s := range sentinels {
		if rest, ok := strings.CutPrefix(msg, s.Error()+": "); ok {
			return rest
		}
	}
	return msg
}

// base carries what every handler needs to report unexpected errors.
type base struct {
	logger     *zap.Logger
	production bool
}

// fail answers with the status err maps to. Unexpected errors go through
// serverError.
func (b base) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		b.serverError(w, r, err)
		return
	}
	writeMessage(w, status, detail(err))
}

// serverError logs err and answers 500 with the error envelope. The stack
// is only exposed outside production.
func (b base) serverError(w http.ResponseWriter, r *http.Request, err error) {
	b.logger.Error("request failed",
		zap.String("request_id", requestIDFromContext(r.Context())),
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.Error(err),
	)
	body := map[string]any{"success": false, "message": err.Error()}
	if !b.production {
		body["stack"] = string(debug.Stack())
	}
	writeJSON(w, http.StatusInternalServerError, body)
}
