package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/markjakearzadon/influencehub-gobackend/internal/models"
	"github.com/markjakearzadon/influencehub-gobackend/internal/services"
)

const (
	maxUploadMemory = 32 << 20
	uploadURLPrefix = "/uploads/"
	msgNoCampaign   = "Campaign not found"
)

type CampaignHandler struct {
	base
	service   *services.CampaignService
	uploadDir string
}

func NewCampaignHandler(service *services.CampaignService, uploadDir string, logger *zap.Logger, production bool) *CampaignHandler {
	return &CampaignHandler{
		base:      base{logger: logger, production: production},
		service:   service,
		uploadDir: uploadDir,
	}
}

// campaignInput is the writable part of a campaign as clients send it.
type campaignInput struct {
	Name                string                 `json:"name"`
	Title               string                 `json:"title"`
	Objective           string                 `json:"objective"`
	Images              stringList             `json:"images"`
	Budget              models.Budget          `json:"budget"`
	Platforms           stringList             `json:"platforms"`
	Hashtags            stringList             `json:"hashtags"`
	LanguagePreferences stringList             `json:"languagePreferences"`
	CreatorCriteria     models.CreatorCriteria `json:"creatorCriteria"`
}

func (in campaignInput) campaign() *models.Campaign {
	return &models.Campaign{
		Name:                strings.TrimSpace(in.Name),
		Title:               strings.TrimSpace(in.Title),
		Objective:           strings.TrimSpace(in.Objective),
		Images:              in.Images,
		Budget:              in.Budget,
		Platforms:           in.Platforms,
		Hashtags:            in.Hashtags,
		LanguagePreferences: in.LanguagePreferences,
		CreatorCriteria:     in.CreatorCriteria,
	}
}

// CreateCampaign accepts either a JSON body or a multipart form carrying
// "images" files next to the campaign fields.
func (h *CampaignHandler) CreateCampaign(w http.ResponseWriter, r *http.Request) {
	var (
		in    campaignInput
		saved []string
		err   error
	)
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "multipart/form-data" {
		in, saved, err = h.readMultipart(r)
	} else {
		err = decodeJSON(r, &in)
	}
	if err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	var actor *primitive.ObjectID
	if u := userFromContext(r.Context()); u != nil {
		actor = &u.ID
	}

	campaign, err := h.service.Create(r.Context(), in.campaign(), actor)
	if err != nil {
		h.discardUploads(saved)
	}
	if errors.Is(err, models.ErrInvalidInput) {
		writeMessage(w, http.StatusBadRequest, detail(err))
		return
	}
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"message":  "Campaign created",
		"campaign": campaign,
	})
}

// readMultipart maps form fields onto a campaignInput. Structured fields
// (budget, creatorCriteria) are JSON text; list fields are JSON arrays or
// comma separated. It returns the files it wrote so the caller can discard
// them when the campaign is rejected.
func (h *CampaignHandler) readMultipart(r *http.Request) (campaignInput, []string, error) {
	var in campaignInput
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		return in, nil, fmt.Errorf("invalid multipart body: %w", err)
	}
	form := r.MultipartForm

	in.Name = r.FormValue("name")
	in.Title = r.FormValue("title")
	in.Objective = r.FormValue("objective")

	if raw := r.FormValue("budget"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &in.Budget); err != nil {
			return in, nil, fmt.Errorf("invalid budget: %w", err)
		}
	}
	if raw := r.FormValue("creatorCriteria"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &in.CreatorCriteria); err != nil {
			return in, nil, fmt.Errorf("invalid creatorCriteria: %w", err)
		}
	}
	lists := map[string]*stringList{
		"platforms":           &in.Platforms,
		"hashtags":            &in.Hashtags,
		"languagePreferences": &in.LanguagePreferences,
	}
	for field, dst := range lists {
		items, err := parseStringList(r.FormValue(field))
		if err != nil {
			return in, nil, fmt.Errorf("invalid %s: %w", field, err)
		}
		*dst = items
	}

	var saved []string
	for _, fh := range form.File["images"] {
		name, err := h.saveUpload(fh)
		if err != nil {
			h.discardUploads(saved)
			return in, nil, err
		}
		saved = append(saved, name)
		in.Images = append(in.Images, uploadURLPrefix+name)
	}
	return in, saved, nil
}

// discardUploads removes files written for a request that did not persist.
func (h *CampaignHandler) discardUploads(names []string) {
	for _, name := range names {
		if err := os.Remove(filepath.Join(h.uploadDir, name)); err != nil && !errors.Is(err, os.ErrNotExist) {
			h.logger.Warn("remove upload", zap.String("file", name), zap.Error(err))
		}
	}
}

// saveUpload stores an uploaded file under a random name inside uploadDir
// and returns that name.
func (h *CampaignHandler) saveUpload(fh *multipart.FileHeader) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	if err := os.MkdirAll(h.uploadDir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}
	name := uuid.NewString() + strings.ToLower(filepath.Ext(filepath.Base(fh.Filename)))
	path := filepath.Join(h.uploadDir, name)
	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create upload: %w", err)
	}

	_, err = io.Copy(dst, src)
	if cerr := dst.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(path)
		return "", fmt.Errorf("write upload: %w", err)
	}
	return name, nil
}

func (h *CampaignHandler) GetCampaigns(w http.ResponseWriter, r *http.Request) {
	campaigns, err := h.service.List(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, campaigns)
}

// campaignID reads the {id} path variable, answering 400 itself when it is
// malformed.
func campaignID(w http.ResponseWriter, r *http.Request) (primitive.ObjectID, bool) {
	id, err := models.ParseID(mux.Vars(r)["id"])
	if err != nil {
		writeErrorField(w, http.StatusBadRequest, "Invalid campaign id")
		return id, false
	}
	return id, true
}

func (h *CampaignHandler) GetCampaign(w http.ResponseWriter, r *http.Request) {
	id, ok := campaignID(w, r)
	if !ok {
		return
	}
	campaign, err := h.service.Get(r.Context(), id)
	if errors.Is(err, models.ErrNotFound) {
		writeErrorField(w, http.StatusNotFound, msgNoCampaign)
		return
	}
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, campaign)
}

func (h *CampaignHandler) UpdateCampaign(w http.ResponseWriter, r *http.Request) {
	id, ok := campaignID(w, r)
	if !ok {
		return
	}
	var patch models.CampaignPatch
	if err := decodeJSON(r, &patch); err != nil {
		writeErrorField(w, http.StatusBadRequest, err.Error())
		return
	}

	updated, err := h.service.Update(r.Context(), id, patch)
	switch {
	case errors.Is(err, models.ErrNotFound):
		writeErrorField(w, http.StatusNotFound, msgNoCampaign)
		return
	case errors.Is(err, models.ErrInvalidInput):
		writeErrorField(w, http.StatusBadRequest, detail(err))
		return
	case err != nil:
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Campaign updated",
		"updated": updated,
	})
}

func (h *CampaignHandler) DeleteCampaign(w http.ResponseWriter, r *http.Request) {
	id, ok := campaignID(w, r)
	if !ok {
		return
	}
	err := h.service.Delete(r.Context(), id)
	if errors.Is(err, models.ErrNotFound) {
		writeErrorField(w, http.StatusNotFound, msgNoCampaign)
		return
	}
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeMessage(w, http.StatusOK, "Campaign deleted")
}
