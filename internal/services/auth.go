package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/markjakearzadon/influencehub-gobackend/internal/auth"
	"github.com/markjakearzadon/influencehub-gobackend/internal/models"
)

var errInvalidCredentials = fmt.Errorf("%w: invalid email or password", models.ErrUnauthorized)

type AuthService struct {
	users  UserRepository
	hasher PasswordHasher
}

func NewAuthService(users UserRepository, hasher PasswordHasher) *AuthService {
	return &AuthService{users: users, hasher: hasher}
}

// Login checks a local email/password pair. Unknown emails, accounts
// without a password and wrong passwords all fail the same way.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, fmt.Errorf("%w: email and password are required", models.ErrInvalidInput)
	}

	user, err := s.users.FindByEmail(ctx, email)
	if errors.Is(err, models.ErrNotFound) {
		return nil, errInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if user.Password == "" {
		return nil, errInvalidCredentials
	}
	if err := s.hasher.Compare(user.Password, password); err != nil {
		return nil, errInvalidCredentials
	}
	return user, nil
}

// GoogleLogin resolves a Google profile to a user: by Google id first, then
// by email (linking the Google id), creating the user otherwise.
func (s *AuthService) GoogleLogin(ctx context.Context, p *auth.GoogleProfile) (*models.User, error) {
	user, err := s.users.FindByGoogleID(ctx, p.Sub)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, models.ErrNotFound) {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(p.Email))
	if email == "" {
		return nil, fmt.Errorf("%w: google account has no email", models.ErrUnauthorized)
	}

	user, err = s.users.FindByEmail(ctx, email)
	switch {
	case err == nil:
		fields := bson.M{"googleId": p.Sub}
		if p.Picture != "" {
			fields["profilePhoto"] = p.Picture
		}
		return s.users.Update(ctx, user.ID, fields)
	case !errors.Is(err, models.ErrNotFound):
		return nil, err
	}

	name := p.Name
	if name == "" {
		name = email
	}
	user = &models.User{
		Name:               name,
		Email:              email,
		GoogleID:           p.Sub,
		ProfilePhoto:       p.Picture,
		Interests:          []string{},
		AITags:             []string{},
		LanguagePreference: defaultLanguage,
		Role:               models.RoleUser,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
