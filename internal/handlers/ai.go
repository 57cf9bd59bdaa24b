package handlers

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/markjakearzadon/influencehub-gobackend/internal/clients/aimatcher"
	"github.com/markjakearzadon/influencehub-gobackend/internal/models"
	"github.com/markjakearzadon/influencehub-gobackend/internal/services"
)

type AIHandler struct {
	base
	service *services.MatchingService
}

func NewAIHandler(service *services.MatchingService, logger *zap.Logger, production bool) *AIHandler {
	return &AIHandler{base: base{logger: logger, production: production}, service: service}
}

// productRequest is shared by both AI endpoints. Budget may arrive as a
// number or a string.
type productRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Budget      flexString `json:"budget"`
}

func (h *AIHandler) MatchInfluencers(w http.ResponseWriter, r *http.Request) {
	var req productRequest
	if err := decodeJSON(r, &req); err != nil {
		writeFailure(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.service.Match(r.Context(), aimatcher.Criteria{
		Title:       req.Title,
		Description: req.Description,
		Budget:      string(req.Budget),
	})
	if errors.Is(err, models.ErrInvalidInput) {
		writeFailure(w, http.StatusBadRequest, "Title is required for AI matching.")
		return
	}
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success":     true,
		"message":     result.Message,
		"influencers": result.Influencers,
	})
}

func (h *AIHandler) AgentCall(w http.ResponseWriter, r *http.Request) {
	var req productRequest
	if err := decodeJSON(r, &req); err != nil {
		writeErrorField(w, http.StatusBadRequest, err.Error())
		return
	}

	err := h.service.AgentCall(r.Context(), aimatcher.CallRequest{
		Title:       req.Title,
		Description: req.Description,
		Budget:      string(req.Budget),
	})
	if errors.Is(err, models.ErrInvalidInput) {
		writeErrorField(w, http.StatusBadRequest, "Product title, description and budget are required.")
		return
	}
	if err != nil {
		h.logger.Error("agent call failed",
			zap.String("request_id", requestIDFromContext(r.Context())),
			zap.Error(err),
		)
		writeErrorField(w, http.StatusInternalServerError, "An unexpected server error occurred: "+err.Error())
		return
	}
	writeMessage(w, http.StatusOK, "AI Matcher API call successful and matched IDs retrieved.")
}
