package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/markjakearzadon/influencehub-gobackend/internal/metrics"
	"github.com/markjakearzadon/influencehub-gobackend/internal/models"
)

type CampaignService struct {
	campaigns CampaignRepository
	notifier  *NotificationService
	logger    *zap.Logger
}

func NewCampaignService(campaigns CampaignRepository, notifier *NotificationService, logger *zap.Logger) *CampaignService {
	return &CampaignService{campaigns: campaigns, notifier: notifier, logger: logger}
}

// Create stores the campaign and notifies its creator. A failed
// notification does not fail the creation.
func (s *CampaignService) Create(ctx context.Context, c *models.Campaign, actor *primitive.ObjectID) (*models.Campaign, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	normalize(c)
	c.CreatedBy = actor

	if err := s.campaigns.Create(ctx, c); err != nil {
		return nil, err
	}
	metrics.CampaignsCreated.Inc()

	if actor != nil {
		id := c.ID
		n := &models.Notification{
			Recipient:     actor,
			Sender:        actor,
			Type:          models.NotificationCampaignCreated,
			Message:       "Your campaign \"" + c.Title + "\" was created.",
			Campaign:      &id,
			Link:          "/campaigns/" + id.Hex(),
			RelatedEntity: models.RelatedEntity{ID: &id, Type: "Campaign"},
		}
		if err := s.notifier.Notify(ctx, n); err != nil {
			s.logger.Warn("campaign created without notification",
				zap.String("campaign_id", id.Hex()),
				zap.Error(err),
			)
		}
	}
	return c, nil
}

func (s *CampaignService) List(ctx context.Context) ([]models.Campaign, error) {
	return s.campaigns.List(ctx)
}

func (s *CampaignService) Get(ctx context.Context, id primitive.ObjectID) (*models.Campaign, error) {
	return s.campaigns.FindByID(ctx, id)
}

// Update applies patch and re-validates the result before storing it.
func (s *CampaignService) Update(ctx context.Context, id primitive.ObjectID, patch models.CampaignPatch) (*models.Campaign, error) {
	c, err := s.campaigns.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	patch.Apply(c)
	if err := c.Validate(); err != nil {
		return nil, err
	}
	normalize(c)

	if err := s.campaigns.Replace(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CampaignService) Delete(ctx context.Context, id primitive.ObjectID) error {
	return s.campaigns.Delete(ctx, id)
}

// normalize replaces nil slices so stored documents hold arrays, not nulls.
func normalize(c *models.Campaign) {
	if c.Images == nil {
		c.Images = []string{}
	}
	if c.Platforms == nil {
		c.Platforms = []string{}
	}
	if c.Hashtags == nil {
		c.Hashtags = []string{}
	}
	if c.LanguagePreferences == nil {
		c.LanguagePreferences = []string{}
	}
}
