// Package aimatcher talks to the external AI service that ranks influencers
// for a campaign and places negotiation calls.
package aimatcher

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/markjakearzadon/influencehub-gobackend/internal/config"
	"github.com/markjakearzadon/influencehub-gobackend/internal/metrics"
	"github.com/markjakearzadon/influencehub-gobackend/internal/models"
)

const firstMessage = "Hello Creator, my name is Jessica, Is this good time to talk regarding product promotion?"

// Criteria describes the campaign to match influencers for.
type Criteria struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Budget      string `json:"budget,omitempty"`
}

// CallRequest is the product an agent call negotiates about.
type CallRequest struct {
	Title       string
	Description string
	Budget      string
}

type matchRequest struct {
	Prompt string `json:"prompt"`
	Criteria
}

type agentCallRequest struct {
	Prompt       string `json:"prompt"`
	FirstMessage string `json:"first_message"`
	Number       string `json:"number"`
}

type Client struct {
	url     string
	apiKey  string
	number  string
	mockIDs []string
	http    *http.Client
	logger  *zap.Logger
}

func New(cfg config.AI, timeout time.Duration, logger *zap.Logger) *Client {
	return &Client{
		url:     cfg.MatcherURL,
		apiKey:  cfg.MatcherKey,
		number:  cfg.CallNumber,
		mockIDs: cfg.MockIDs,
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// MatchInfluencers forwards the criteria to the matcher and returns the
// configured influencer ids. The upstream ranking is not consumed yet, so a
// failed call is only logged.
func (c *Client) MatchInfluencers(ctx context.Context, criteria Criteria) ([]string, error) {
	if c.url == "" {
		return nil, fmt.Errorf("AI_MATCHER_API_URL is not configured")
	}

	reqBody := matchRequest{
		Prompt:   fmt.Sprintf("Find influencers for: %s, %s - %s", criteria.Title, criteria.Description, criteria.Budget),
		Criteria: criteria,
	}
	if err := c.post(ctx, "match", reqBody); err != nil {
		c.logger.Warn("ai matcher call failed, using fallback ids", zap.Error(err))
	}

	ids := make([]string, len(c.mockIDs))
	copy(ids, c.mockIDs)
	return ids, nil
}

// StartAgentCall asks the AI service to phone the creator and negotiate a
// price for the product.
func (c *Client) StartAgentCall(ctx context.Context, call CallRequest) error {
	if c.url == "" {
		return fmt.Errorf("AI_MATCHER_API_URL is not configured")
	}

	reqBody := agentCallRequest{
		Prompt:       negotiatorPrompt(call),
		FirstMessage: firstMessage,
		Number:       c.number,
	}
	return c.post(ctx, "agent_call", reqBody)
}

func negotiatorPrompt(call CallRequest) string {
	return "You are Jessica, an outbound price negotiator for an advertiser. " +
		"You are calling to negotiate price for product promotion to the content creator. " +
		"Be friendly and professional and answer all questions. " +
		"Do not reveal budget (try not to exceed the budget). " +
		fmt.Sprintf("Product => %s, %s - %s", call.Title, call.Description, call.Budget)
}

func (c *Client) post(ctx context.Context, operation string, payload any) error {
	bodyBytes, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewBuffer(bodyBytes))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		metrics.ObserveUpstream("aimatcher", operation, "error")
		return fmt.Errorf("%w: ai service: %v", models.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		metrics.ObserveUpstream("aimatcher", operation, "error")
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("%w: ai service returned %d: %s", models.ErrUpstream, resp.StatusCode, body)
	}
	metrics.ObserveUpstream("aimatcher", operation, "ok")
	return nil
}
