package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/markjakearzadon/influencehub-gobackend/internal/clients/aimatcher"
	"github.com/markjakearzadon/influencehub-gobackend/internal/clients/youtube"
	"github.com/markjakearzadon/influencehub-gobackend/internal/models"
)

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByGoogleID(ctx context.Context, googleID string) (*models.User, error)
	Update(ctx context.Context, id primitive.ObjectID, fields bson.M) (*models.User, error)
}

type CampaignRepository interface {
	Create(ctx context.Context, campaign *models.Campaign) error
	List(ctx context.Context) ([]models.Campaign, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Campaign, error)
	Replace(ctx context.Context, campaign *models.Campaign) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type InfluencerRepository interface {
	UpsertByName(ctx context.Context, inf *models.Influencer) (*models.Influencer, error)
	List(ctx context.Context) ([]models.Influencer, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Influencer, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Influencer, error)
}

type ContentRepository interface {
	ReplaceForInfluencer(ctx context.Context, influencer primitive.ObjectID, contentType models.ContentType, items []models.Content) ([]models.Content, error)
	Upsert(ctx context.Context, content *models.Content) error
	ListByInfluencers(ctx context.Context, ids []primitive.ObjectID) ([]models.Content, error)
}

type NotificationRepository interface {
	Create(ctx context.Context, n *models.Notification) error
	List(ctx context.Context, f models.NotificationFilter) ([]models.InboxNotification, int64, error)
	MarkRead(ctx context.Context, id, recipient primitive.ObjectID) (*models.Notification, error)
	MarkAllRead(ctx context.Context, recipient primitive.ObjectID) (int64, error)
	Delete(ctx context.Context, id, recipient primitive.ObjectID) error
}

type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// ChannelSource is the part of the YouTube client onboarding needs.
type ChannelSource interface {
	GetChannel(ctx context.Context, handleOrID string) (*youtube.Channel, error)
	LatestVideos(ctx context.Context, playlistID string) ([]youtube.Video, error)
}

type Matcher interface {
	MatchInfluencers(ctx context.Context, criteria aimatcher.Criteria) ([]string, error)
	StartAgentCall(ctx context.Context, call aimatcher.CallRequest) error
}
