package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type YouTubeProfile struct {
	ChannelLink  string `bson:"channel_link,omitempty" json:"channel_link,omitempty"`
	ChannelName  string `bson:"channel_name" json:"channel_name"`
	ChannelBio   string `bson:"channel_bio,omitempty" json:"channel_bio,omitempty"`
	ProfileImage string `bson:"profile_image,omitempty" json:"profile_image,omitempty"`
	Subscribers  int64  `bson:"subscribers" json:"subscribers"`
	TotalViews   int64  `bson:"total_views" json:"total_views"`
	TotalVideos  int64  `bson:"total_videos" json:"total_videos"`
}

type InstagramProfile struct {
	ProfileHandle string `bson:"profile_handle,omitempty" json:"profile_handle,omitempty"`
	Followers     int64  `bson:"followers" json:"followers"`
}

// Influencer is an external creator profile, unique by name.
type Influencer struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name         string             `bson:"name" json:"name"`
	ContactEmail string             `bson:"contact_email,omitempty" json:"contact_email,omitempty"`
	Bio          string             `bson:"bio,omitempty" json:"bio,omitempty"`
	ProfileImage string             `bson:"profile_image,omitempty" json:"profile_image,omitempty"`
	YouTube      *YouTubeProfile    `bson:"youtube,omitempty" json:"youtube,omitempty"`
	Instagram    *InstagramProfile  `bson:"instagram,omitempty" json:"instagram,omitempty"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// InfluencerWithContent is an influencer with its content attached.
type InfluencerWithContent struct {
	Influencer `bson:",inline"`
	Content    []Content `bson:"content" json:"content"`
}

// AttachContent groups contents by influencer id and pairs each influencer
// with its own items. Influencers without content get an empty slice.
func AttachContent(influencers []Influencer, contents []Content) []InfluencerWithContent {
	byInfluencer := make(map[primitive.ObjectID][]Content, len(influencers))
	for _, c := range contents {
		byInfluencer[c.Influencer] = append(byInfluencer[c.Influencer], c)
	}

	out := make([]InfluencerWithContent, 0, len(influencers))
	for _, inf := range influencers {
		items := byInfluencer[inf.ID]
		if items == nil {
			items = []Content{}
		}
		out = append(out, InfluencerWithContent{Influencer: inf, Content: items})
	}
	return out
}
