package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/markjakearzadon/influencehub-gobackend/internal/models"
)

func TestUserStore(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("create assigns id", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())
		s := NewUserStore(mt.DB)

		user := &models.User{Name: "Ada", Email: "ada@example.com", Role: models.RoleUser}
		require.NoError(t, s.Create(context.Background(), user))
		assert.False(t, user.ID.IsZero())
		assert.False(t, user.CreatedAt.IsZero())
	})

	mt.Run("create duplicate email is a conflict", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "duplicate key error",
		}))
		s := NewUserStore(mt.DB)

		err := s.Create(context.Background(), &models.User{Email: "ada@example.com"})
		assert.ErrorIs(t, err, models.ErrConflict)
	})

	mt.Run("find by email", func(mt *mtest.T) {
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "test.users", mtest.FirstBatch, bson.D{
			{Key: "_id", Value: id},
			{Key: "name", Value: "Ada"},
			{Key: "email", Value: "ada@example.com"},
			{Key: "password", Value: "$2a$10$hash"},
			{Key: "role", Value: "admin"},
		}))
		s := NewUserStore(mt.DB)

		user, err := s.FindByEmail(context.Background(), "ada@example.com")
		require.NoError(t, err)
		assert.Equal(t, id, user.ID)
		assert.Equal(t, models.RoleAdmin, user.Role)
		assert.Equal(t, "$2a$10$hash", user.Password)
	})

	mt.Run("find missing user", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "test.users", mtest.FirstBatch))
		s := NewUserStore(mt.DB)

		_, err := s.FindByID(context.Background(), primitive.NewObjectID())
		assert.ErrorIs(t, err, models.ErrNotFound)
	})

	mt.Run("update returns new document", func(mt *mtest.T) {
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: bson.D{
			{Key: "_id", Value: id},
			{Key: "name", Value: "Ada L."},
			{Key: "bio", Value: "math"},
		}}))
		s := NewUserStore(mt.DB)

		user, err := s.Update(context.Background(), id, bson.M{"name": "Ada L.", "bio": "math"})
		require.NoError(t, err)
		assert.Equal(t, "Ada L.", user.Name)
		assert.Equal(t, "math", user.Bio)
	})
}
