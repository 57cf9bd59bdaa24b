package db

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// Collection names.
const (
	Users         = "users"
	Campaigns     = "campaigns"
	Influencers   = "influencers"
	Contents      = "contents"
	Notifications = "notifications"
)

// Connect opens a MongoDB client and pings the primary, retrying a failed
// attempt after delay until attempts are exhausted.
func Connect(ctx context.Context, uri string, attempts int, delay time.Duration, logger *zap.Logger) (*mongo.Client, error) {
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		client, err := connectOnce(ctx, uri)
		if err == nil {
			logger.Info("connected to MongoDB", zap.Int("attempt", attempt))
			return client, nil
		}
		lastErr = err
		logger.Warn("MongoDB connection failed", zap.Int("attempt", attempt), zap.Error(err))

		if attempt < attempts {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
			}
		}
	}
	return nil, fmt.Errorf("connect to MongoDB after %d attempts: %w", attempts, lastErr)
}

func connectOnce(ctx context.Context, uri string) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	return client, nil
}

// EnsureIndexes creates the indexes the stores rely on for uniqueness and
// for the notification inbox query.
func EnsureIndexes(ctx context.Context, database *mongo.Database) error {
	indexes := map[string][]mongo.IndexModel{
		Users: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "googleId", Value: 1}}, Options: options.Index().SetSparse(true)},
		},
		Influencers: {
			{Keys: bson.D{{Key: "name", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		Contents: {
			{Keys: bson.D{{Key: "influencer", Value: 1}, {Key: "mediaId", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		Notifications: {
			{Keys: bson.D{{Key: "recipient", Value: 1}, {Key: "read", Value: 1}, {Key: "createdAt", Value: -1}}},
			{Keys: bson.D{{Key: "campaign", Value: 1}}},
		},
	}

	for name, models := range indexes {
		if _, err := database.Collection(name).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("create indexes on %s: %w", name, err)
		}
	}
	return nil
}
