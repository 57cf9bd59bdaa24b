package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/markjakearzadon/influencehub-gobackend/internal/db"
	"github.com/markjakearzadon/influencehub-gobackend/internal/models"
)

type InfluencerStore struct {
	collection *mongo.Collection
}

func NewInfluencerStore(database *mongo.Database) *InfluencerStore {
	return &InfluencerStore{collection: database.Collection(db.Influencers)}
}

// UpsertByName creates the influencer or merges into the one with the same
// name. Only non-empty fields are written, so a YouTube import never clears
// Instagram data, nor a profile image set at onboarding.
func (s *InfluencerStore) UpsertByName(ctx context.Context, inf *models.Influencer) (*models.Influencer, error) {
	now := time.Now().UTC()
	set, err := mergeFields(inf)
	if err != nil {
		return nil, err
	}
	set["updatedAt"] = now

	update := bson.M{
		"$set":         set,
		"$setOnInsert": bson.M{"name": inf.Name, "createdAt": now},
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var stored models.Influencer
	if err := s.collection.FindOneAndUpdate(ctx, bson.M{"name": inf.Name}, update, opts).Decode(&stored); err != nil {
		return nil, translate(err, "influencer")
	}
	return &stored, nil
}

// mergeFields builds the $set document for an upsert. Platform profiles are
// flattened to dotted paths so unset fields keep their stored values.
func mergeFields(inf *models.Influencer) (bson.M, error) {
	set := bson.M{}
	if inf.ContactEmail != "" {
		set["contact_email"] = inf.ContactEmail
	}
	if inf.Bio != "" {
		set["bio"] = inf.Bio
	}
	if inf.ProfileImage != "" {
		set["profile_image"] = inf.ProfileImage
	}
	if inf.YouTube != nil {
		if err := setNested(set, "youtube", inf.YouTube); err != nil {
			return nil, err
		}
	}
	if inf.Instagram != nil {
		if err := setNested(set, "instagram", inf.Instagram); err != nil {
			return nil, err
		}
	}
	return set, nil
}

func setNested(set bson.M, prefix string, profile any) error {
	raw, err := bson.Marshal(profile)
	if err != nil {
		return fmt.Errorf("encode %s profile: %w", prefix, err)
	}
	var doc bson.D
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("decode %s profile: %w", prefix, err)
	}
	for _, e := range doc {
		switch v := e.Value.(type) {
		case string:
			if v == "" {
				continue
			}
		case int64:
			if v == 0 {
				continue
			}
		case int32:
			if v == 0 {
				continue
			}
		}
		set[prefix+"."+e.Key] = e.Value
	}
	return nil
}

func (s *InfluencerStore) List(ctx context.Context) ([]models.Influencer, error) {
	cur, err := s.collection.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	return findAll[models.Influencer](ctx, cur)
}

func (s *InfluencerStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Influencer, error) {
	var inf models.Influencer
	if err := s.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&inf); err != nil {
		return nil, translate(err, "influencer")
	}
	return &inf, nil
}

// FindByIDs returns the influencers whose ids are in ids. Unknown ids are
// silently absent from the result.
func (s *InfluencerStore) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Influencer, error) {
	if len(ids) == 0 {
		return []models.Influencer{}, nil
	}
	cur, err := s.collection.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	return findAll[models.Influencer](ctx, cur)
}
