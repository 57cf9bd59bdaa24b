package handlers

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/markjakearzadon/influencehub-gobackend/internal/models"
	"github.com/markjakearzadon/influencehub-gobackend/internal/services"
)

type InfluencerHandler struct {
	base
	service *services.InfluencerService
}

func NewInfluencerHandler(service *services.InfluencerService, logger *zap.Logger, production bool) *InfluencerHandler {
	return &InfluencerHandler{base: base{logger: logger, production: production}, service: service}
}

func (h *InfluencerHandler) Onboard(w http.ResponseWriter, r *http.Request) {
	var in services.OnboardInput
	if err := decodeJSON(r, &in); err != nil {
		writeErrorField(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.service.Onboard(r.Context(), in)
	switch {
	case errors.Is(err, models.ErrInvalidInput):
		writeErrorField(w, http.StatusBadRequest, "Influencer name, email, and YouTube link are required.")
		return
	case errors.Is(err, models.ErrNotFound):
		writeErrorField(w, http.StatusNotFound, "YouTube channel not found or invalid link.")
		return
	case errors.Is(err, models.ErrUpstream):
		h.logger.Warn("youtube lookup failed",
			zap.String("request_id", requestIDFromContext(r.Context())),
			zap.Error(err),
		)
		writeFailure(w, http.StatusBadGateway, "YouTube API request failed.")
		return
	case err != nil:
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Influencer onboarded and data saved successfully!",
		"data":    result,
	})
}

func (h *InfluencerHandler) GetInfluencers(w http.ResponseWriter, r *http.Request) {
	influencers, err := h.service.ListWithContent(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success":     true,
		"message":     "All influencers retrieved successfully with their content.",
		"influencers": influencers,
	})
}

func (h *InfluencerHandler) GetInfluencer(w http.ResponseWriter, r *http.Request) {
	id, err := models.ParseID(mux.Vars(r)["id"])
	if err != nil {
		writeFailure(w, http.StatusBadRequest, "Invalid Influencer ID format.")
		return
	}

	influencer, err := h.service.GetWithContent(r.Context(), id)
	if errors.Is(err, models.ErrNotFound) {
		writeFailure(w, http.StatusNotFound, "Influencer not found.")
		return
	}
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success":    true,
		"message":    "Influencer retrieved successfully with their content.",
		"influencer": influencer,
	})
}
