package youtube

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/markjakearzadon/influencehub-gobackend/internal/config"
	"github.com/markjakearzadon/influencehub-gobackend/internal/models"
)

const channelID = "UCX6OQ3DkcsbYNE6H8uQQuVA"

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(config.YouTube{APIKey: "k", BaseURL: srv.URL}, 5*time.Second, zap.NewNop())
}

func TestGetChannelBySearch(t *testing.T) {
	var paths []string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		assert.Equal(t, "k", r.URL.Query().Get("key"))
		switch r.URL.Path {
		case "/search":
			assert.Equal(t, "@MrBeast", r.URL.Query().Get("q"))
			assert.Equal(t, "channel", r.URL.Query().Get("type"))
			w.Write([]byte(`{"items":[{"id":{"channelId":"` + channelID + `"}}]}`))
		case "/channels":
			assert.Equal(t, channelID, r.URL.Query().Get("id"))
			w.Write([]byte(`{"items":[{
				"id":"` + channelID + `",
				"snippet":{"title":"MrBeast","description":"videos","thumbnails":{"default":{"url":"d.jpg"},"high":{"url":"h.jpg"}}},
				"statistics":{"subscriberCount":"300000000","viewCount":"5","videoCount":"not-a-number"},
				"contentDetails":{"relatedPlaylists":{"uploads":"UU123"}}
			}]}`))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	})

	ch, err := c.GetChannel(context.Background(), "@MrBeast")
	require.NoError(t, err)
	assert.Equal(t, []string{"/search", "/channels"}, paths)
	assert.Equal(t, channelID, ch.ID)
	assert.Equal(t, "https://www.youtube.com/channel/"+channelID, ch.Link)
	assert.Equal(t, "h.jpg", ch.ProfileImage)
	assert.Equal(t, int64(300000000), ch.Subscribers)
	assert.Equal(t, int64(5), ch.TotalViews)
	assert.Equal(t, int64(0), ch.TotalVideos)
	assert.Equal(t, "UU123", ch.UploadsPlaylistID)
}

func TestGetChannelByIDSkipsSearch(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/channels", r.URL.Path)
		w.Write([]byte(`{"items":[{"id":"` + channelID + `","snippet":{"title":"x","thumbnails":{"default":{"url":"d.jpg"}}}}]}`))
	})

	ch, err := c.GetChannel(context.Background(), channelID)
	require.NoError(t, err)
	assert.Equal(t, "d.jpg", ch.ProfileImage)
}

func TestGetChannelNotFound(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"items":[]}`))
	})

	_, err := c.GetChannel(context.Background(), "@nobody")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestUpstreamError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"quota"}`, http.StatusForbidden)
	})

	_, err := c.GetChannel(context.Background(), "@MrBeast")
	require.ErrorIs(t, err, models.ErrUpstream)
	assert.Contains(t, err.Error(), "403")
}

func TestMissingAPIKey(t *testing.T) {
	c := New(config.YouTube{BaseURL: "http://127.0.0.1:1"}, time.Second, zap.NewNop())

	_, err := c.GetChannel(context.Background(), "@MrBeast")
	assert.ErrorIs(t, err, ErrNotConfigured)
	assert.NotErrorIs(t, err, models.ErrInvalidInput)

	_, err = c.LatestVideos(context.Background(), "UU123")
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestLatestVideos(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/playlistItems":
			assert.Equal(t, "UU123", r.URL.Query().Get("playlistId"))
			assert.Equal(t, "5", r.URL.Query().Get("maxResults"))
			w.Write([]byte(`{"items":[{"contentDetails":{"videoId":"v1"}},{"contentDetails":{"videoId":"v2"}}]}`))
		case "/videos":
			assert.Equal(t, "v1,v2", r.URL.Query().Get("id"))
			w.Write([]byte(`{"items":[
				{"id":"v1","snippet":{"title":"one","publishedAt":"2024-05-01T10:00:00Z","thumbnails":{"medium":{"url":"m.jpg"}}},"statistics":{"viewCount":"10","likeCount":"2","commentCount":"1"}},
				{"id":"v2","snippet":{"title":"two","publishedAt":"garbage"},"statistics":{}}
			]}`))
		}
	})

	videos, err := c.LatestVideos(context.Background(), "UU123")
	require.NoError(t, err)
	require.Len(t, videos, 2)

	assert.Equal(t, "one", videos[0].Title)
	assert.Equal(t, "https://www.youtube.com/watch?v=v1", videos[0].URL)
	assert.Equal(t, "m.jpg", videos[0].Thumbnails.Medium)
	assert.Equal(t, int64(10), videos[0].Views)
	require.NotNil(t, videos[0].PublishedAt)
	assert.Equal(t, 2024, videos[0].PublishedAt.Year())

	assert.Nil(t, videos[1].PublishedAt)
	assert.Equal(t, int64(0), videos[1].Likes)
}

func TestLatestVideosEmptyPlaylist(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/playlistItems", r.URL.Path)
		w.Write([]byte(`{"items":[]}`))
	})

	videos, err := c.LatestVideos(context.Background(), "UU123")
	require.NoError(t, err)
	assert.Empty(t, videos)
}
