package services

import (
	"context"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/markjakearzadon/influencehub-gobackend/internal/clients/aimatcher"
	"github.com/markjakearzadon/influencehub-gobackend/internal/models"
)

const (
	msgNoMatches       = "No influencers matched by AI criteria."
	msgNoKnownMatches  = "Matched influencer IDs from AI did not correspond to existing influencers in the database."
	msgMatchesReturned = "Influencers matched and retrieved successfully."
)

type MatchingService struct {
	matcher     Matcher
	influencers *InfluencerService
	logger      *zap.Logger
}

func NewMatchingService(matcher Matcher, influencers *InfluencerService, logger *zap.Logger) *MatchingService {
	return &MatchingService{matcher: matcher, influencers: influencers, logger: logger}
}

type MatchResult struct {
	Message     string                         `json:"message"`
	Influencers []models.InfluencerWithContent `json:"influencers"`
}

// Match asks the AI matcher for influencer ids and returns the known ones
// with their content. Ids that are not valid ObjectIds are skipped.
func (s *MatchingService) Match(ctx context.Context, criteria aimatcher.Criteria) (*MatchResult, error) {
	if strings.TrimSpace(criteria.Title) == "" {
		return nil, fmt.Errorf("%w: title is required for AI matching", models.ErrInvalidInput)
	}

	raw, err := s.matcher.MatchInfluencers(ctx, criteria)
	if err != nil {
		return nil, err
	}

	ids := make([]primitive.ObjectID, 0, len(raw))
	for _, hex := range raw {
		id, err := primitive.ObjectIDFromHex(hex)
		if err != nil {
			s.logger.Warn("ai matcher returned invalid influencer id", zap.String("id", hex))
			continue
		}
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return &MatchResult{Message: msgNoMatches, Influencers: []models.InfluencerWithContent{}}, nil
	}

	found, err := s.influencers.influencers.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(found) == 0 {
		return &MatchResult{Message: msgNoKnownMatches, Influencers: []models.InfluencerWithContent{}}, nil
	}

	withContent, err := s.influencers.attach(ctx, found)
	if err != nil {
		return nil, err
	}
	return &MatchResult{Message: msgMatchesReturned, Influencers: withContent}, nil
}

// AgentCall starts an AI negotiation call about the product.
func (s *MatchingService) AgentCall(ctx context.Context, call aimatcher.CallRequest) error {
	if strings.TrimSpace(call.Title) == "" || strings.TrimSpace(call.Description) == "" || strings.TrimSpace(call.Budget) == "" {
		return fmt.Errorf("%w: product title, description and budget are required", models.ErrInvalidInput)
	}
	return s.matcher.StartAgentCall(ctx, call)
}
