package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/markjakearzadon/influencehub-gobackend/internal/models"
)

const defaultLanguage = "en"

type UserService struct {
	users  UserRepository
	hasher PasswordHasher
}

func NewUserService(users UserRepository, hasher PasswordHasher) *UserService {
	return &UserService{users: users, hasher: hasher}
}

// NewUser is the registration payload. Password and GoogleID are optional.
type NewUser struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	GoogleID     string `json:"googleId"`
	ProfilePhoto string `json:"profilePhoto"`
}

func (s *UserService) Create(ctx context.Context, in NewUser) (*models.User, error) {
	name, email := strings.TrimSpace(in.Name), strings.ToLower(strings.TrimSpace(in.Email))
	if name == "" || email == "" {
		return nil, fmt.Errorf("%w: name and email are required", models.ErrInvalidInput)
	}

	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil, fmt.Errorf("%w: user with email %s", models.ErrConflict, email)
	} else if !errors.Is(err, models.ErrNotFound) {
		return nil, err
	}

	user := &models.User{
		Name:               name,
		Email:              email,
		GoogleID:           in.GoogleID,
		ProfilePhoto:       in.ProfilePhoto,
		Interests:          []string{},
		AITags:             []string{},
		LanguagePreference: defaultLanguage,
		Role:               models.RoleUser,
	}
	if in.Password != "" {
		hash, err := s.hasher.Hash(in.Password)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		user.Password = hash
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Me returns the user behind the current session.
func (s *UserService) Me(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	return s.users.FindByID(ctx, id)
}

// Update writes the set fields of patch. An empty patch returns the user
// unchanged.
func (s *UserService) Update(ctx context.Context, id primitive.ObjectID, patch models.UserPatch) (*models.User, error) {
	fields := bson.M{}
	if patch.Name != nil {
		if strings.TrimSpace(*patch.Name) == "" {
			return nil, fmt.Errorf("%w: name must not be empty", models.ErrInvalidInput)
		}
		fields["name"] = strings.TrimSpace(*patch.Name)
	}
	if patch.ProfilePhoto != nil {
		fields["profilePhoto"] = *patch.ProfilePhoto
	}
	if patch.Interests != nil {
		fields["interests"] = *patch.Interests
	}
	if patch.LanguagePreference != nil {
		fields["languagePreference"] = *patch.LanguagePreference
	}
	if patch.Bio != nil {
		fields["bio"] = *patch.Bio
	}
	if patch.AITags != nil {
		fields["aiTags"] = *patch.AITags
	}

	if len(fields) == 0 {
		return s.users.FindByID(ctx, id)
	}
	return s.users.Update(ctx, id, fields)
}
