package aimatcher

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/markjakearzadon/influencehub-gobackend/internal/config"
	"github.com/markjakearzadon/influencehub-gobackend/internal/models"
)

var mockIDs = []string{"683b4a1dc6d6b42f75edf460", "683b4a1ec6d6b42f75edf47a"}

func newClient(url string) *Client {
	return New(config.AI{
		MatcherURL: url,
		MatcherKey: "secret",
		MockIDs:    mockIDs,
		CallNumber: "+10000000000",
	}, 2*time.Second, zap.NewNop())
}

func TestMatchInfluencersReturnsConfiguredIDs(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	ids, err := newClient(srv.URL).MatchInfluencers(context.Background(), Criteria{Title: "Shoes", Budget: "500"})
	require.NoError(t, err)
	assert.Equal(t, mockIDs, ids)
	assert.Equal(t, "Shoes", got["title"])
	assert.Contains(t, got["prompt"], "Shoes")
}

func TestMatchInfluencersIgnoresUpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	ids, err := newClient(srv.URL).MatchInfluencers(context.Background(), Criteria{Title: "Shoes"})
	require.NoError(t, err)
	assert.Equal(t, mockIDs, ids)
}

func TestMatchInfluencersWithoutURL(t *testing.T) {
	_, err := newClient("").MatchInfluencers(context.Background(), Criteria{Title: "Shoes"})
	assert.Error(t, err)
}

func TestStartAgentCall(t *testing.T) {
	var got agentCallRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
	}))
	defer srv.Close()

	err := newClient(srv.URL).StartAgentCall(context.Background(), CallRequest{Title: "Shoes", Description: "Running shoes", Budget: "500"})
	require.NoError(t, err)
	assert.Equal(t, "+10000000000", got.Number)
	assert.Equal(t, firstMessage, got.FirstMessage)
	assert.Contains(t, got.Prompt, "You are Jessica")
	assert.Contains(t, got.Prompt, "Product => Shoes, Running shoes - 500")
}

func TestStartAgentCallUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "busy", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	err := newClient(srv.URL).StartAgentCall(context.Background(), CallRequest{Title: "a", Description: "b", Budget: "1"})
	require.ErrorIs(t, err, models.ErrUpstream)
	assert.Contains(t, err.Error(), "503")
}
