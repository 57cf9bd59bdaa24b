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

type ContentStore struct {
	collection *mongo.Collection
}

func NewContentStore(database *mongo.Database) *ContentStore {
	return &ContentStore{collection: database.Collection(db.Contents)}
}

// ReplaceForInfluencer deletes the influencer's content of the given type and
// inserts items in its place. The returned slice carries the new IDs.
func (s *ContentStore) ReplaceForInfluencer(ctx context.Context, influencer primitive.ObjectID, contentType models.ContentType, items []models.Content) ([]models.Content, error) {
	if _, err := s.collection.DeleteMany(ctx, bson.M{"influencer": influencer, "contentType": contentType}); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return []models.Content{}, nil
	}

	now := time.Now().UTC()
	docs := make([]interface{}, 0, len(items))
	saved := make([]models.Content, 0, len(items))
	for _, item := range items {
		item.ID = primitive.NewObjectID()
		item.Influencer = influencer
		item.ContentType = contentType
		item.CreatedAt = now
		item.UpdatedAt = now
		docs = append(docs, item)
		saved = append(saved, item)
	}

	if _, err := s.collection.InsertMany(ctx, docs); err != nil {
		return nil, err
	}
	return saved, nil
}

// Upsert writes the content keyed by (influencer, mediaId).
func (s *ContentStore) Upsert(ctx context.Context, content *models.Content) error {
	now := time.Now().UTC()
	filter := bson.M{"influencer": content.Influencer, "mediaId": content.MediaID}
	update := bson.M{
		"$set": bson.M{
			"contentType": content.ContentType,
			"title":       content.Title,
			"publishedAt": content.PublishedAt,
			"views":       content.Views,
			"likes":       content.Likes,
			"comments":    content.Comments,
			"url":         content.URL,
			"thumbnails":  content.Thumbnails,
			"updatedAt":   now,
		},
		"$setOnInsert": bson.M{"createdAt": now},
	}

	_, err := s.collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}

func (s *ContentStore) ListByInfluencers(ctx context.Context, ids []primitive.ObjectID) ([]models.Content, error) {
	if len(ids) == 0 {
		return []models.Content{}, nil
	}
	cur, err := s.collection.Find(ctx, bson.M{"influencer": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	return findAll[models.Content](ctx, cur)
}
