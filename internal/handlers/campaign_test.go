package handlers_test

import (
	"bytes"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/markjakearzadon/influencehub-gobackend/internal/models"
)

func expectCampaignCreate(h *harness) {
	h.campaigns.On("Create", mock.Anything, mock.AnythingOfType("*models.Campaign")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*models.Campaign).ID = primitive.NewObjectID()
		}).
		Return(nil).Once()
	h.notifications.On("Create", mock.Anything, mock.AnythingOfType("*models.Notification")).Return(nil).Once()
}

func TestCreateCampaignMissingBudget(t *testing.T) {
	h := newHarness(t)
	c := h.signIn(newUser(models.RoleUser))

	rec := h.do(jsonRequest(t, http.MethodPost, "/api/v1/campaigns/create", map[string]any{
		"title":     "Launch",
		"objective": "awareness",
	}, c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeBody(t, rec)["message"], "budget.total")
}

func TestCreateCampaignJSON(t *testing.T) {
	h := newHarness(t)
	user := newUser(models.RoleAdmin)
	c := h.signIn(user)
	expectCampaignCreate(h)

	rec := h.do(jsonRequest(t, http.MethodPost, "/api/v1/campaigns/create", map[string]any{
		"title":     "Launch",
		"objective": "awareness",
		"budget":    map[string]any{"total": 1500},
		"hashtags":  "summer, launch",
	}, c))

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	body := decodeBody(t, rec)
	assert.Equal(t, "Campaign created", body["message"])

	campaign := body["campaign"].(map[string]any)
	assert.Equal(t, "Launch", campaign["title"])
	assert.Equal(t, []any{"summer", "launch"}, campaign["hashtags"])
	assert.Equal(t, []any{}, campaign["platforms"])
	assert.Equal(t, user.ID.Hex(), campaign["createdBy"])
}

func TestCreateCampaignMultipart(t *testing.T) {
	h := newHarness(t)
	c := h.signIn(newUser(models.RoleUser))
	expectCampaignCreate(h)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("title", "Launch"))
	require.NoError(t, mw.WriteField("objective", "sales"))
	require.NoError(t, mw.WriteField("budget", `{"total": 500, "perInfluencer": 50}`))
	require.NoError(t, mw.WriteField("platforms", `["youtube","instagram"]`))
	require.NoError(t, mw.WriteField("hashtags", "a,b"))
	require.NoError(t, mw.WriteField("creatorCriteria", `{"niche":"tech","minFollowers":1000}`))
	fw, err := mw.CreateFormFile("images", "Banner.PNG")
	require.NoError(t, err)
	_, err = fw.Write([]byte("png-bytes"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	r := httptest.NewRequest(http.MethodPost, "/api/v1/campaigns/create", &buf)
	r.Header.Set("Content-Type", mw.FormDataContentType())
	r.AddCookie(c)
	rec := h.do(r)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	campaign := decodeBody(t, rec)["campaign"].(map[string]any)
	assert.Equal(t, []any{"youtube", "instagram"}, campaign["platforms"])
	assert.Equal(t, []any{"a", "b"}, campaign["hashtags"])
	assert.Equal(t, "tech", campaign["creatorCriteria"].(map[string]any)["niche"])

	images := campaign["images"].([]any)
	require.Len(t, images, 1)
	url := images[0].(string)
	assert.True(t, strings.HasPrefix(url, "/uploads/"))
	assert.True(t, strings.HasSuffix(url, ".png"))

	stored, err := os.ReadFile(filepath.Join(h.uploadDir, strings.TrimPrefix(url, "/uploads/")))
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(stored))
}

func TestCreateCampaignMultipartBadBudget(t *testing.T) {
	h := newHarness(t)
	c := h.signIn(newUser(models.RoleUser))

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("title", "Launch"))
	require.NoError(t, mw.WriteField("budget", "lots"))
	require.NoError(t, mw.Close())

	r := httptest.NewRequest(http.MethodPost, "/api/v1/campaigns/create", &buf)
	r.Header.Set("Content-Type", mw.FormDataContentType())
	r.AddCookie(c)
	rec := h.do(r)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeBody(t, rec)["message"], "invalid budget")
}

func imageOnlyCampaignForm(t *testing.T, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	fw, err := mw.CreateFormFile("images", "banner.png")
	require.NoError(t, err)
	_, err = fw.Write([]byte("png-bytes"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func TestCreateCampaignMultipartRejectedLeavesNoUploads(t *testing.T) {
	h := newHarness(t)
	c := h.signIn(newUser(models.RoleUser))

	body, contentType := imageOnlyCampaignForm(t, map[string]string{"title": "Launch"})
	r := httptest.NewRequest(http.MethodPost, "/api/v1/campaigns/create", body)
	r.Header.Set("Content-Type", contentType)
	r.AddCookie(c)
	rec := h.do(r)

	require.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
	entries, err := os.ReadDir(h.uploadDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestCreateCampaignMultipartStoreFailureLeavesNoUploads(t *testing.T) {
	h := newHarness(t)
	c := h.signIn(newUser(models.RoleUser))
	h.campaigns.On("Create", mock.Anything, mock.AnythingOfType("*models.Campaign")).
		Return(errors.New("mongo down")).Once()

	body, contentType := imageOnlyCampaignForm(t, map[string]string{
		"title":     "Launch",
		"objective": "sales",
		"budget":    `{"total": 500, "perInfluencer": 50}`,
	})
	r := httptest.NewRequest(http.MethodPost, "/api/v1/campaigns/create", body)
	r.Header.Set("Content-Type", contentType)
	r.AddCookie(c)
	rec := h.do(r)

	require.Equal(t, http.StatusInternalServerError, rec.Code, rec.Body.String())
	entries, err := os.ReadDir(h.uploadDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestGetCampaignsReturnsArray(t *testing.T) {
	h := newHarness(t)
	c := h.signIn(newUser(models.RoleCreator))
	h.campaigns.On("List", mock.Anything).Return([]models.Campaign{
		{ID: primitive.NewObjectID(), Title: "A"},
		{ID: primitive.NewObjectID(), Title: "B"},
	}, nil).Once()

	r := httptest.NewRequest(http.MethodGet, "/api/v1/campaigns/all", nil)
	r.AddCookie(c)
	rec := h.do(r)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Body.String(), "["))
	assert.Contains(t, rec.Body.String(), `"title":"B"`)
}

func TestGetCampaign(t *testing.T) {
	h := newHarness(t)
	c := h.signIn(newUser(models.RoleUser))

	t.Run("invalid id", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/api/v1/campaigns/campaign/nope", nil)
		r.AddCookie(c)
		rec := h.do(r)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("missing", func(t *testing.T) {
		id := primitive.NewObjectID()
		h.campaigns.On("FindByID", mock.Anything, id).Return(nil, models.ErrNotFound).Once()

		r := httptest.NewRequest(http.MethodGet, "/api/v1/campaigns/campaign/"+id.Hex(), nil)
		r.AddCookie(c)
		rec := h.do(r)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Campaign not found", decodeBody(t, rec)["error"])
	})

	t.Run("found", func(t *testing.T) {
		id := primitive.NewObjectID()
		h.campaigns.On("FindByID", mock.Anything, id).Return(&models.Campaign{ID: id, Title: "Launch"}, nil).Once()

		r := httptest.NewRequest(http.MethodGet, "/api/v1/campaigns/campaign/"+id.Hex(), nil)
		r.AddCookie(c)
		rec := h.do(r)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Launch", decodeBody(t, rec)["title"])
	})
}

func TestUpdateCampaign(t *testing.T) {
	h := newHarness(t)
	c := h.signIn(newUser(models.RoleUser))
	id := primitive.NewObjectID()
	h.campaigns.On("FindByID", mock.Anything, id).Return(&models.Campaign{
		ID: id, Title: "Old", Objective: "sales", Budget: models.Budget{Total: 100},
	}, nil).Once()
	h.campaigns.On("Replace", mock.Anything, mock.MatchedBy(func(c *models.Campaign) bool {
		return c.ID == id && c.Title == "New"
	})).Return(nil).Once()

	rec := h.do(jsonRequest(t, http.MethodPatch, "/api/v1/campaigns/campaign/"+id.Hex(), map[string]any{"title": "New"}, c))

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	body := decodeBody(t, rec)
	assert.Equal(t, "Campaign updated", body["message"])
	assert.Equal(t, "New", body["updated"].(map[string]any)["title"])
}

func TestUpdateCampaignRejectsZeroBudget(t *testing.T) {
	h := newHarness(t)
	c := h.signIn(newUser(models.RoleAdmin))
	id := primitive.NewObjectID()
	h.campaigns.On("FindByID", mock.Anything, id).Return(&models.Campaign{
		ID: id, Title: "Old", Objective: "sales", Budget: models.Budget{Total: 100},
	}, nil).Once()

	rec := h.do(jsonRequest(t, http.MethodPatch, "/api/v1/campaigns/campaign/"+id.Hex(), map[string]any{
		"budget": map[string]any{"total": 0},
	}, c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteCampaign(t *testing.T) {
	h := newHarness(t)
	c := h.signIn(newUser(models.RoleUser))
	id := primitive.NewObjectID()
	h.campaigns.On("Delete", mock.Anything, id).Return(nil).Once()

	r := httptest.NewRequest(http.MethodDelete, "/api/v1/campaigns/campaign/"+id.Hex(), nil)
	r.AddCookie(c)
	rec := h.do(r)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Campaign deleted", decodeBody(t, rec)["message"])
}
