package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/markjakearzadon/influencehub-gobackend/internal/mocks"
	"github.com/markjakearzadon/influencehub-gobackend/internal/models"
)

func TestUserServiceCreate(t *testing.T) {
	users := mocks.NewUserRepository(t)
	hasher := mocks.NewPasswordHasher(t)
	svc := NewUserService(users, hasher)

	users.On("FindByEmail", mock.Anything, "ada@example.com").Return(nil, models.ErrNotFound)
	hasher.On("Hash", "pw").Return("hashed", nil)
	users.On("Create", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
		return u.Email == "ada@example.com" && u.Password == "hashed" && u.Role == models.RoleUser && u.LanguagePreference == "en"
	})).Return(nil)

	user, err := svc.Create(context.Background(), NewUser{Name: " Ada ", Email: "Ada@Example.com", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "Ada", user.Name)
	assert.NotNil(t, user.Interests)
}

func TestUserServiceCreateWithoutPassword(t *testing.T) {
	users := mocks.NewUserRepository(t)
	svc := NewUserService(users, mocks.NewPasswordHasher(t))

	users.On("FindByEmail", mock.Anything, "g@example.com").Return(nil, models.ErrNotFound)
	users.On("Create", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
		return u.Password == "" && u.GoogleID == "g-1"
	})).Return(nil)

	_, err := svc.Create(context.Background(), NewUser{Name: "G", Email: "g@example.com", GoogleID: "g-1"})
	require.NoError(t, err)
}

func TestUserServiceCreateValidation(t *testing.T) {
	svc := NewUserService(mocks.NewUserRepository(t), mocks.NewPasswordHasher(t))

	_, err := svc.Create(context.Background(), NewUser{Name: "Ada"})
	assert.ErrorIs(t, err, models.ErrInvalidInput)
}

func TestUserServiceCreateDuplicate(t *testing.T) {
	users := mocks.NewUserRepository(t)
	svc := NewUserService(users, mocks.NewPasswordHasher(t))
	users.On("FindByEmail", mock.Anything, "ada@example.com").Return(&models.User{}, nil)

	_, err := svc.Create(context.Background(), NewUser{Name: "Ada", Email: "ada@example.com"})
	assert.ErrorIs(t, err, models.ErrConflict)
}

func TestUserServiceUpdateAllowedFields(t *testing.T) {
	users := mocks.NewUserRepository(t)
	svc := NewUserService(users, mocks.NewPasswordHasher(t))
	id := primitive.NewObjectID()
	bio := "hello"
	tags := []string{"tech"}

	users.On("Update", mock.Anything, id, bson.M{"bio": "hello", "aiTags": []string{"tech"}}).
		Return(&models.User{ID: id, Bio: bio, AITags: tags}, nil)

	user, err := svc.Update(context.Background(), id, models.UserPatch{Bio: &bio, AITags: &tags})
	require.NoError(t, err)
	assert.Equal(t, "hello", user.Bio)
}

func TestUserServiceUpdateEmptyPatch(t *testing.T) {
	users := mocks.NewUserRepository(t)
	svc := NewUserService(users, mocks.NewPasswordHasher(t))
	id := primitive.NewObjectID()
	users.On("FindByID", mock.Anything, id).Return(&models.User{ID: id}, nil)

	user, err := svc.Update(context.Background(), id, models.UserPatch{})
	require.NoError(t, err)
	assert.Equal(t, id, user.ID)
}
