package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Role string

const (
	RoleUser    Role = "user"
	RoleCreator Role = "creator"
	RoleAdmin   Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleCreator, RoleAdmin:
		return true
	}
	return false
}

// User model. Password holds the bcrypt hash and is never serialized to JSON.
type User struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name               string             `bson:"name" json:"name"`
	Email              string             `bson:"email" json:"email"`
	Password           string             `bson:"password,omitempty" json:"-"`
	GoogleID           string             `bson:"googleId,omitempty" json:"googleId,omitempty"`
	ProfilePhoto       string             `bson:"profilePhoto,omitempty" json:"profilePhoto,omitempty"`
	Interests          []string           `bson:"interests" json:"interests"`
	LanguagePreference string             `bson:"languagePreference" json:"languagePreference"`
	AITags             []string           `bson:"aiTags" json:"aiTags"`
	Bio                string             `bson:"bio" json:"bio"`
	Role               Role               `bson:"role" json:"role"`
	CreatedAt          time.Time          `bson:"createdAt" json:"createdAt"`
}

// UserPatch lists the profile fields a user may change about themselves.
// Nil fields are left untouched.
type UserPatch struct {
	Name               *string   `json:"name"`
	ProfilePhoto       *string   `json:"profilePhoto"`
	Interests          *[]string `json:"interests"`
	LanguagePreference *string   `json:"languagePreference"`
	Bio                *string   `json:"bio"`
	AITags             *[]string `json:"aiTags"`
}
