package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/markjakearzadon/influencehub-gobackend/internal/metrics"
	"github.com/markjakearzadon/influencehub-gobackend/internal/models"
)

type InfluencerService struct {
	influencers InfluencerRepository
	contents    ContentRepository
	youtube     ChannelSource
	logger      *zap.Logger
}

func NewInfluencerService(influencers InfluencerRepository, contents ContentRepository, youtube ChannelSource, logger *zap.Logger) *InfluencerService {
	return &InfluencerService{influencers: influencers, contents: contents, youtube: youtube, logger: logger}
}

type OnboardInput struct {
	Name        string `json:"influencerName"`
	Email       string `json:"influencerEmail"`
	YouTubeLink string `json:"youtubeLink"`
}

type InfluencerInfo struct {
	ID          primitive.ObjectID `json:"_id"`
	Name        string             `json:"name"`
	Email       string             `json:"email"`
	YouTubeLink string             `json:"youtube_link"`
}

type ChannelInfo struct {
	ChannelID   string `json:"channel_id"`
	ChannelName string `json:"channel_name"`
	ChannelLink string `json:"channel_link"`
	Subscribers int64  `json:"subscribers"`
	TotalViews  int64  `json:"total_views"`
	TotalVideos int64  `json:"total_videos"`
}

type PostSummary struct {
	Title       string            `json:"title"`
	URL         string            `json:"url"`
	Views       int64             `json:"views"`
	Likes       int64             `json:"likes"`
	Comments    int64             `json:"comments"`
	PublishedAt *time.Time        `json:"publishedAt,omitempty"`
	Thumbnails  models.Thumbnails `json:"thumbnails"`
}

type OnboardingResult struct {
	InfluencerInfo     InfluencerInfo `json:"influencer_info"`
	YouTubeChannelInfo ChannelInfo    `json:"youtube_channel_info"`
	LatestYouTubePosts []PostSummary  `json:"latest_youtube_posts"`
}

// Onboard pulls the influencer's YouTube channel and latest uploads, stores
// them and replaces any previously stored videos.
func (s *InfluencerService) Onboard(ctx context.Context, in OnboardInput) (*OnboardingResult, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.YouTubeLink = strings.TrimSpace(in.YouTubeLink)
	if in.Name == "" || in.Email == "" || in.YouTubeLink == "" {
		return nil, fmt.Errorf("%w: influencer name, email, and YouTube link are required", models.ErrInvalidInput)
	}

	channel, err := s.youtube.GetChannel(ctx, in.YouTubeLink)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, fmt.Errorf("%w: YouTube channel not found or invalid link", models.ErrNotFound)
		}
		return nil, err
	}

	inf, err := s.influencers.UpsertByName(ctx, &models.Influencer{
		Name:         in.Name,
		ContactEmail: in.Email,
		ProfileImage: channel.ProfileImage,
		YouTube: &models.YouTubeProfile{
			ChannelLink:  channel.Link,
			ChannelName:  channel.Name,
			ChannelBio:   channel.Description,
			ProfileImage: channel.ProfileImage,
			Subscribers:  channel.Subscribers,
			TotalViews:   channel.TotalViews,
			TotalVideos:  channel.TotalVideos,
		},
	})
	if err != nil {
		return nil, err
	}

	var items []models.Content
	if channel.UploadsPlaylistID != "" {
		videos, err := s.youtube.LatestVideos(ctx, channel.UploadsPlaylistID)
		if err != nil {
			return nil, err
		}
		items = make([]models.Content, 0, len(videos))
		for _, v := range videos {
			items = append(items, models.Content{
				Title:       v.Title,
				MediaID:     v.ID,
				PublishedAt: v.PublishedAt,
				Views:       v.Views,
				Likes:       v.Likes,
				Comments:    v.Comments,
				URL:         v.URL,
				Thumbnails:  v.Thumbnails,
			})
		}
	}

	saved, err := s.contents.ReplaceForInfluencer(ctx, inf.ID, models.ContentVideo, items)
	if err != nil {
		return nil, err
	}
	metrics.InfluencersOnboarded.Inc()
	s.logger.Info("influencer onboarded",
		zap.String("influencer", inf.Name),
		zap.String("channel_id", channel.ID),
		zap.Int("videos", len(saved)),
	)

	posts := make([]PostSummary, 0, len(saved))
	for _, c := range saved {
		posts = append(posts, PostSummary{
			Title:       c.Title,
			URL:         c.URL,
			Views:       c.Views,
			Likes:       c.Likes,
			Comments:    c.Comments,
			PublishedAt: c.PublishedAt,
			Thumbnails:  c.Thumbnails,
		})
	}

	return &OnboardingResult{
		InfluencerInfo: InfluencerInfo{
			ID:          inf.ID,
			Name:        inf.Name,
			Email:       inf.ContactEmail,
			YouTubeLink: in.YouTubeLink,
		},
		YouTubeChannelInfo: ChannelInfo{
			ChannelID:   channel.ID,
			ChannelName: channel.Name,
			ChannelLink: channel.Link,
			Subscribers: channel.Subscribers,
			TotalViews:  channel.TotalViews,
			TotalVideos: channel.TotalVideos,
		},
		LatestYouTubePosts: posts,
	}, nil
}

func (s *InfluencerService) ListWithContent(ctx context.Context) ([]models.InfluencerWithContent, error) {
	influencers, err := s.influencers.List(ctx)
	if err != nil {
		return nil, err
	}
	return s.attach(ctx, influencers)
}

func (s *InfluencerService) GetWithContent(ctx context.Context, id primitive.ObjectID) (*models.InfluencerWithContent, error) {
	inf, err := s.influencers.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	out, err := s.attach(ctx, []models.Influencer{*inf})
	if err != nil {
		return nil, err
	}
	return &out[0], nil
}

func (s *InfluencerService) attach(ctx context.Context, influencers []models.Influencer) ([]models.InfluencerWithContent, error) {
	ids := make([]primitive.ObjectID, 0, len(influencers))
	for _, inf := range influencers {
		ids = append(ids, inf.ID)
	}
	contents, err := s.contents.ListByInfluencers(ctx, ids)
	if err != nil {
		return nil, err
	}
	return models.AttachContent(influencers, contents), nil
}
