// Package youtube is a minimal YouTube Data API v3 client covering channel
// lookup and the latest uploads of a channel.
package youtube

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/markjakearzadon/influencehub-gobackend/internal/config"
	"github.com/markjakearzadon/influencehub-gobackend/internal/metrics"
	"github.com/markjakearzadon/influencehub-gobackend/internal/models"
)

const latestVideosLimit = 5

// ErrNotConfigured is a server fault, never a client input error.
var ErrNotConfigured = errors.New("youtube: YOUTUBE_API_KEY is not configured")

type Channel struct {
	ID                string `json:"channel_id"`
	Link              string `json:"channel_link"`
	Name              string `json:"channel_name"`
	Description       string `json:"channel_bio,omitempty"`
	ProfileImage      string `json:"profile_image_url,omitempty"`
	Subscribers       int64  `json:"subscribers"`
	TotalViews        int64  `json:"total_views"`
	TotalVideos       int64  `json:"total_videos"`
	UploadsPlaylistID string `json:"-"`
}

type Video struct {
	ID          string
	Title       string
	Description string
	PublishedAt *time.Time
	Thumbnails  models.Thumbnails
	Views       int64
	Likes       int64
	Comments    int64
	URL         string
}

type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
	limiter *rate.Limiter
	logger  *zap.Logger
}

func New(cfg config.YouTube, timeout time.Duration, logger *zap.Logger) *Client {
	limit := rate.Inf
	if cfg.RateLimit > 0 {
		limit = rate.Limit(cfg.RateLimit)
	}
	return &Client{
		apiKey:  cfg.APIKey,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		limiter: rate.NewLimiter(limit, 1),
		logger:  logger,
	}
}

// ResolveChannelID returns handleOrID unchanged when it already is a channel
// id, otherwise the first channel the search endpoint finds for it.
func (c *Client) ResolveChannelID(ctx context.Context, handleOrID string) (string, error) {
	if err := c.checkInput(handleOrID, "youtube handle or channel id"); err != nil {
		return "", err
	}
	if isChannelID(handleOrID) {
		return handleOrID, nil
	}

	var resp struct {
		Items []struct {
			ID struct {
				ChannelID string `json:"channelId"`
			} `json:"id"`
		} `json:"items"`
	}
	q := url.Values{"part": {"id"}, "type": {"channel"}, "q": {handleOrID}}
	if err := c.get(ctx, "search", q, &resp); err != nil {
		return "", err
	}
	if len(resp.Items) == 0 || resp.Items[0].ID.ChannelID == "" {
		return "", fmt.Errorf("%w: youtube channel not found for %q", models.ErrNotFound, handleOrID)
	}
	return resp.Items[0].ID.ChannelID, nil
}

// GetChannel resolves handleOrID and fetches the channel's snippet and
// statistics.
func (c *Client) GetChannel(ctx context.Context, handleOrID string) (*Channel, error) {
	id, err := c.ResolveChannelID(ctx, handleOrID)
	if err != nil {
		return nil, err
	}

	var resp struct {
		Items []struct {
			ID      string `json:"id"`
			Snippet struct {
				Title       string        `json:"title"`
				Description string        `json:"description"`
				Thumbnails  apiThumbnails `json:"thumbnails"`
			} `json:"snippet"`
			Statistics struct {
				SubscriberCount string `json:"subscriberCount"`
				ViewCount       string `json:"viewCount"`
				VideoCount      string `json:"videoCount"`
			} `json:"statistics"`
			ContentDetails struct {
				RelatedPlaylists struct {
					Uploads string `json:"uploads"`
				} `json:"relatedPlaylists"`
			} `json:"contentDetails"`
		} `json:"items"`
	}
	q := url.Values{"part": {"snippet,statistics,contentDetails"}, "id": {id}}
	if err := c.get(ctx, "channels", q, &resp); err != nil {
		return nil, err
	}
	if len(resp.Items) == 0 {
		return nil, fmt.Errorf("%w: youtube channel %s", models.ErrNotFound, id)
	}

	item := resp.Items[0]
	profile := item.Snippet.Thumbnails.High.URL
	if profile == "" {
		profile = item.Snippet.Thumbnails.Default.URL
	}
	return &Channel{
		ID:                item.ID,
		Link:              "https://www.youtube.com/channel/" + item.ID,
		Name:              item.Snippet.Title,
		Description:       item.Snippet.Description,
		ProfileImage:      profile,
		Subscribers:       parseCount(item.Statistics.SubscriberCount),
		TotalViews:        parseCount(item.Statistics.ViewCount),
		TotalVideos:       parseCount(item.Statistics.VideoCount),
		UploadsPlaylistID: item.ContentDetails.RelatedPlaylists.Uploads,
	}, nil
}

// LatestVideos returns up to five of the newest videos in the playlist
// together with their statistics.
func (c *Client) LatestVideos(ctx context.Context, playlistID string) ([]Video, error) {
	if err := c.checkInput(playlistID, "playlist id"); err != nil {
		return nil, err
	}

	var items struct {
		Items []struct {
			ContentDetails struct {
				VideoID string `json:"videoId"`
			} `json:"contentDetails"`
		} `json:"items"`
	}
	q := url.Values{
		"part":       {"snippet,contentDetails"},
		"playlistId": {playlistID},
		"maxResults": {strconv.Itoa(latestVideosLimit)},
	}
	if err := c.get(ctx, "playlistItems", q, &items); err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(items.Items))
	for _, it := range items.Items {
		if it.ContentDetails.VideoID != "" {
			ids = append(ids, it.ContentDetails.VideoID)
		}
	}
	if len(ids) == 0 {
		return []Video{}, nil
	}

	var details struct {
		Items []struct {
			ID      string `json:"id"`
			Snippet struct {
				Title       string        `json:"title"`
				Description string        `json:"description"`
				PublishedAt string        `json:"publishedAt"`
				Thumbnails  apiThumbnails `json:"thumbnails"`
			} `json:"snippet"`
			Statistics struct {
				ViewCount    string `json:"viewCount"`
				LikeCount    string `json:"likeCount"`
				CommentCount string `json:"commentCount"`
			} `json:"statistics"`
		} `json:"items"`
	}
	q = url.Values{"part": {"snippet,statistics"}, "id": {strings.Join(ids, ",")}}
	if err := c.get(ctx, "videos", q, &details); err != nil {
		return nil, err
	}

	videos := make([]Video, 0, len(details.Items))
	for _, v := range details.Items {
		video := Video{
			ID:          v.ID,
			Title:       v.Snippet.Title,
			Description: v.Snippet.Description,
			Thumbnails: models.Thumbnails{
				Default: v.Snippet.Thumbnails.Default.URL,
				Medium:  v.Snippet.Thumbnails.Medium.URL,
				High:    v.Snippet.Thumbnails.High.URL,
			},
			Views:    parseCount(v.Statistics.ViewCount),
			Likes:    parseCount(v.Statistics.LikeCount),
			Comments: parseCount(v.Statistics.CommentCount),
			URL:      "https://www.youtube.com/watch?v=" + v.ID,
		}
		if t, err := time.Parse(time.RFC3339, v.Snippet.PublishedAt); err == nil {
			video.PublishedAt = &t
		}
		videos = append(videos, video)
	}
	return videos, nil
}

func (c *Client) checkInput(value, what string) error {
	if c.apiKey == "" {
		return ErrNotConfigured
	}
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%w: %s is required", models.ErrInvalidInput, what)
	}
	return nil
}

func (c *Client) get(ctx context.Context, endpoint string, q url.Values, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter: %w", err)
	}

	q.Set("key", c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/"+endpoint+"?"+q.Encode(), nil)
	if err != nil {
		return err
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		metrics.ObserveUpstream("youtube", endpoint, "error")
		return fmt.Errorf("%w: youtube %s: %v", models.ErrUpstream, endpoint, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.ObserveUpstream("youtube", endpoint, "error")
		return fmt.Errorf("%w: read youtube %s: %v", models.ErrUpstream, endpoint, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		metrics.ObserveUpstream("youtube", endpoint, "error")
		c.logger.Warn("youtube api error",
			zap.String("endpoint", endpoint),
			zap.Int("status", resp.StatusCode),
			zap.Duration("duration", time.Since(start)),
		)
		return fmt.Errorf("%w: youtube %s returned %d: %s", models.ErrUpstream, endpoint, resp.StatusCode, body)
	}
	metrics.ObserveUpstream("youtube", endpoint, "ok")

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: decode youtube %s: %v", models.ErrUpstream, endpoint, err)
	}
	return nil
}

type apiThumbnail struct {
	URL string `json:"url"`
}

type apiThumbnails struct {
	Default apiThumbnail `json:"default"`
	Medium  apiThumbnail `json:"medium"`
	High    apiThumbnail `json:"high"`
}

func isChannelID(s string) bool {
	return len(s) == 24 && strings.HasPrefix(s, "UC")
}

// parseCount reads the API's numeric strings. Anything unparsable is 0.
func parseCount(s string) int64 {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return n
}
