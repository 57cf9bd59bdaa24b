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

type NotificationStore struct {
	collection *mongo.Collection
	users      *mongo.Collection
}

func NewNotificationStore(database *mongo.Database) *NotificationStore {
	return &NotificationStore{
		collection: database.Collection(db.Notifications),
		users:      database.Collection(db.Users),
	}
}

func (s *NotificationStore) Create(ctx context.Context, n *models.Notification) error {
	n.ID = primitive.NewObjectID()
	n.CreatedAt = time.Now().UTC()

	_, err := s.collection.InsertOne(ctx, n)
	return err
}

// List returns one page of the recipient's notifications, newest first,
// together with the total number matching the filter. Each sender is
// resolved to its name and profile photo.
func (s *NotificationStore) List(ctx context.Context, f models.NotificationFilter) ([]models.InboxNotification, int64, error) {
	filter := bson.M{"recipient": f.Recipient}
	if f.Read != nil {
		filter["read"] = *f.Read
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip((f.Page - 1) * f.Limit).
		SetLimit(f.Limit)

	cur, err := s.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	items, err := findAll[models.Notification](ctx, cur)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	senders, err := s.senders(ctx, items)
	if err != nil {
		return nil, 0, err
	}
	inbox := make([]models.InboxNotification, len(items))
	for i, n := range items {
		inbox[i].Notification = n
		if n.Sender != nil {
			inbox[i].Sender = senders[*n.Sender]
		}
	}
	return inbox, total, nil
}

// senders loads every distinct sender of items in one query.
func (s *NotificationStore) senders(ctx context.Context, items []models.Notification) (map[primitive.ObjectID]*models.NotificationSender, error) {
	out := map[primitive.ObjectID]*models.NotificationSender{}
	var ids []primitive.ObjectID
	for _, n := range items {
		if n.Sender == nil {
			continue
		}
		if _, seen := out[*n.Sender]; !seen {
			out[*n.Sender] = nil
			ids = append(ids, *n.Sender)
		}
	}
	if len(ids) == 0 {
		return out, nil
	}

	opts := options.Find().SetProjection(bson.M{"name": 1, "profilePhoto": 1})
	cur, err := s.users.Find(ctx, bson.M{"_id": bson.M{"$in": ids}}, opts)
	if err != nil {
		return nil, err
	}
	found, err := findAll[models.NotificationSender](ctx, cur)
	if err != nil {
		return nil, err
	}
	for i := range found {
		out[found[i].ID] = &found[i]
	}
	return out, nil
}

// MarkRead flips an unread notification owned by recipient to read. An
// already-read or foreign notification is reported as not found.
func (s *NotificationStore) MarkRead(ctx context.Context, id, recipient primitive.ObjectID) (*models.Notification, error) {
	filter := bson.M{"_id": id, "recipient": recipient, "read": false}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var n models.Notification
	if err := s.collection.FindOneAndUpdate(ctx, filter, bson.M{"$set": bson.M{"read": true}}, opts).Decode(&n); err != nil {
		return nil, translate(err, "notification")
	}
	return &n, nil
}

func (s *NotificationStore) MarkAllRead(ctx context.Context, recipient primitive.ObjectID) (int64, error) {
	res, err := s.collection.UpdateMany(ctx, bson.M{"recipient": recipient, "read": false}, bson.M{"$set": bson.M{"read": true}})
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

func (s *NotificationStore) Delete(ctx context.Context, id, recipient primitive.ObjectID) error {
	res, err := s.collection.DeleteOne(ctx, bson.M{"_id": id, "recipient": recipient})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return translate(mongo.ErrNoDocuments, "notification")
	}
	return nil
}
