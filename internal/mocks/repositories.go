package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/markjakearzadon/influencehub-gobackend/internal/models"
)

type UserRepository struct{ mock.Mock }

func NewUserRepository(t testingT) *UserRepository {
	m := &UserRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *UserRepository) Create(ctx context.Context, user *models.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *UserRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	args := m.Called(ctx, id)
	return ret[*models.User](args, 0), args.Error(1)
}

func (m *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	return ret[*models.User](args, 0), args.Error(1)
}

func (m *UserRepository) FindByGoogleID(ctx context.Context, googleID string) (*models.User, error) {
	args := m.Called(ctx, googleID)
	return ret[*models.User](args, 0), args.Error(1)
}

func (m *UserRepository) Update(ctx context.Context, id primitive.ObjectID, fields bson.M) (*models.User, error) {
	args := m.Called(ctx, id, fields)
	return ret[*models.User](args, 0), args.Error(1)
}

type CampaignRepository struct{ mock.Mock }

func NewCampaignRepository(t testingT) *CampaignRepository {
	m := &CampaignRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *CampaignRepository) Create(ctx context.Context, campaign *models.Campaign) error {
	return m.Called(ctx, campaign).Error(0)
}

func (m *CampaignRepository) List(ctx context.Context) ([]models.Campaign, error) {
	args := m.Called(ctx)
	return ret[[]models.Campaign](args, 0), args.Error(1)
}

func (m *CampaignRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Campaign, error) {
	args := m.Called(ctx, id)
	return ret[*models.Campaign](args, 0), args.Error(1)
}

func (m *CampaignRepository) Replace(ctx context.Context, campaign *models.Campaign) error {
	return m.Called(ctx, campaign).Error(0)
}

func (m *CampaignRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	return m.Called(ctx, id).Error(0)
}

type InfluencerRepository struct{ mock.Mock }

func NewInfluencerRepository(t testingT) *InfluencerRepository {
	m := &InfluencerRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *InfluencerRepository) UpsertByName(ctx context.Context, inf *models.Influencer) (*models.Influencer, error) {
	args := m.Called(ctx, inf)
	return ret[*models.Influencer](args, 0), args.Error(1)
}

func (m *InfluencerRepository) List(ctx context.Context) ([]models.Influencer, error) {
	args := m.Called(ctx)
	return ret[[]models.Influencer](args, 0), args.Error(1)
}

func (m *InfluencerRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Influencer, error) {
	args := m.Called(ctx, id)
	return ret[*models.Influencer](args, 0), args.Error(1)
}

func (m *InfluencerRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Influencer, error) {
	args := m.Called(ctx, ids)
	return ret[[]models.Influencer](args, 0), args.Error(1)
}

type ContentRepository struct{ mock.Mock }

func NewContentRepository(t testingT) *ContentRepository {
	m := &ContentRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *ContentRepository) ReplaceForInfluencer(ctx context.Context, influencer primitive.ObjectID, contentType models.ContentType, items []models.Content) ([]models.Content, error) {
	args := m.Called(ctx, influencer, contentType, items)
	return ret[[]models.Content](args, 0), args.Error(1)
}

func (m *ContentRepository) Upsert(ctx context.Context, content *models.Content) error {
	return m.Called(ctx, content).Error(0)
}

func (m *ContentRepository) ListByInfluencers(ctx context.Context, ids []primitive.ObjectID) ([]models.Content, error) {
	args := m.Called(ctx, ids)
	return ret[[]models.Content](args, 0), args.Error(1)
}

type NotificationRepository struct{ mock.Mock }

func NewNotificationRepository(t testingT) *NotificationRepository {
	m := &NotificationRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *NotificationRepository) Create(ctx context.Context, n *models.Notification) error {
	return m.Called(ctx, n).Error(0)
}

func (m *NotificationRepository) List(ctx context.Context, f models.NotificationFilter) ([]models.InboxNotification, int64, error) {
	args := m.Called(ctx, f)
	return ret[[]models.InboxNotification](args, 0), ret[int64](args, 1), args.Error(2)
}

func (m *NotificationRepository) MarkRead(ctx context.Context, id, recipient primitive.ObjectID) (*models.Notification, error) {
	args := m.Called(ctx, id, recipient)
	return ret[*models.Notification](args, 0), args.Error(1)
}

func (m *NotificationRepository) MarkAllRead(ctx context.Context, recipient primitive.ObjectID) (int64, error) {
	args := m.Called(ctx, recipient)
	return ret[int64](args, 0), args.Error(1)
}

func (m *NotificationRepository) Delete(ctx context.Context, id, recipient primitive.ObjectID) error {
	return m.Called(ctx, id, recipient).Error(0)
}
