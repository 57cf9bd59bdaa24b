package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/markjakearzadon/influencehub-gobackend/internal/db"
	"github.com/markjakearzadon/influencehub-gobackend/internal/models"
)

type CampaignStore struct {
	collection *mongo.Collection
}

func NewCampaignStore(database *mongo.Database) *CampaignStore {
	return &CampaignStore{collection: database.Collection(db.Campaigns)}
}

func (s *CampaignStore) Create(ctx context.Context, campaign *models.Campaign) error {
	campaign.ID = primitive.NewObjectID()
	campaign.CreatedAt = time.Now().UTC()

	_, err := s.collection.InsertOne(ctx, campaign)
	return err
}

// List returns every campaign, newest first.
func (s *CampaignStore) List(ctx context.Context) ([]models.Campaign, error) {
	cur, err := s.collection.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, err
	}
	return findAll[models.Campaign](ctx, cur)
}

func (s *CampaignStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Campaign, error) {
	var campaign models.Campaign
	if err := s.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&campaign); err != nil {
		return nil, translate(err, "campaign")
	}
	return &campaign, nil
}

// Replace overwrites the stored campaign with the same ID.
func (s *CampaignStore) Replace(ctx context.Context, campaign *models.Campaign) error {
	res, err := s.collection.ReplaceOne(ctx, bson.M{"_id": campaign.ID}, campaign)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return translate(mongo.ErrNoDocuments, "campaign")
	}
	return nil
}

func (s *CampaignStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return translate(mongo.ErrNoDocuments, "campaign")
	}
	return nil
}
