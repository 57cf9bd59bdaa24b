package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ContentType string

const (
	ContentVideo ContentType = "video"
	ContentPost  ContentType = "post"
	ContentReel  ContentType = "reel"
)

type Thumbnails struct {
	Default string `bson:"default,omitempty" json:"default,omitempty"`
	Medium  string `bson:"medium,omitempty" json:"medium,omitempty"`
	High    string `bson:"high,omitempty" json:"high,omitempty"`
}

// Content is one post or video, unique by (Influencer, MediaID).
type Content struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Influencer  primitive.ObjectID `bson:"influencer" json:"influencer"`
	ContentType ContentType        `bson:"contentType" json:"contentType"`
	Title       string             `bson:"title" json:"title"`
	MediaID     string             `bson:"mediaId" json:"mediaId"`
	PublishedAt *time.Time         `bson:"publishedAt,omitempty" json:"publishedAt,omitempty"`
	Views       int64              `bson:"views" json:"views"`
	Likes       int64              `bson:"likes" json:"likes"`
	Comments    int64              `bson:"comments" json:"comments"`
	URL         string             `bson:"url" json:"url"`
	Thumbnails  Thumbnails         `bson:"thumbnails" json:"thumbnails"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}
