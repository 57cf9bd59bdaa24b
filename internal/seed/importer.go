// Package seed bulk-loads influencers and their content from CSV exports.
package seed

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/markjakearzadon/influencehub-gobackend/internal/models"
)

type Platform string

const (
	YouTube   Platform = "youtube"
	Instagram Platform = "instagram"
)

type InfluencerWriter interface {
	UpsertByName(ctx context.Context, inf *models.Influencer) (*models.Influencer, error)
}

type ContentWriter interface {
	Upsert(ctx context.Context, content *models.Content) error
}

// Stats counts what one import wrote.
type Stats struct {
	Rows        int
	Influencers int
	Contents    int
	Skipped     int
}

func (s *Stats) add(o Stats) {
	s.Rows += o.Rows
	s.Influencers += o.Influencers
	s.Contents += o.Contents
	s.Skipped += o.Skipped
}

type Importer struct {
	influencers InfluencerWriter
	contents    ContentWriter
	logger      *zap.Logger
}

func NewImporter(influencers InfluencerWriter, contents ContentWriter, logger *zap.Logger) *Importer {
	return &Importer{influencers: influencers, contents: contents, logger: logger}
}

// record is one parsed CSV row: the influencer it belongs to and its post.
type record struct {
	influencer models.Influencer
	content    models.Content
}

// ImportFiles imports every file for platform. Missing YouTube files are
// skipped with a warning; a missing Instagram file is an error.
func (i *Importer) ImportFiles(ctx context.Context, platform Platform, paths []string) (Stats, error) {
	var total Stats
	for _, path := range paths {
		f, err := os.Open(path)
		if errors.Is(err, fs.ErrNotExist) && platform == YouTube {
			i.logger.Warn("skipping missing file", zap.String("file", path))
			continue
		}
		if err != nil {
			return total, fmt.Errorf("open %s: %w", path, err)
		}

		var stats Stats
		switch platform {
		case YouTube:
			stats, err = i.ImportYouTube(ctx, f)
		case Instagram:
			stats, err = i.ImportInstagram(ctx, f)
		default:
			err = fmt.Errorf("unknown platform %q", platform)
		}
		f.Close()
		if err != nil {
			return total, fmt.Errorf("import %s: %w", path, err)
		}

		i.logger.Info("file imported",
			zap.String("platform", string(platform)),
			zap.String("file", path),
			zap.Int("rows", stats.Rows),
			zap.Int("contents", stats.Contents),
			zap.Int("skipped", stats.Skipped),
		)
		total.add(stats)
	}
	return total, nil
}

// ImportYouTube reads a channel/video export, one video per row.
func (i *Importer) ImportYouTube(ctx context.Context, r io.Reader) (Stats, error) {
	return i.importCSV(ctx, r, "channel_name", func(row row) record {
		thumb := row.get("thumbnail_medium")
		return record{
			influencer: models.Influencer{
				Name: row.get("channel_name"),
				YouTube: &models.YouTubeProfile{
					ChannelLink: row.get("channel_url"),
					ChannelName: row.get("channel_name"),
					ChannelBio:  row.get("bio"),
					Subscribers: parseCount(row.get("subscribers")),
					TotalViews:  parseCount(row.get("total_channel_views")),
					TotalVideos: parseCount(row.get("total_channel_videos")),
				},
			},
			content: models.Content{
				ContentType: models.ContentVideo,
				Title:       row.get("video_title"),
				MediaID:     row.get("video_id"),
				PublishedAt: i.parseDate(row, "published_at"),
				Views:       parseCount(row.get("video_views")),
				Likes:       parseCount(row.get("video_likes")),
				Comments:    parseCount(row.get("video_comments")),
				URL:         row.get("video_url"),
				Thumbnails:  models.Thumbnails{Default: thumb, Medium: thumb, High: thumb},
			},
		}
	})
}

// ImportInstagram reads a post export. The post URL doubles as media id.
func (i *Importer) ImportInstagram(ctx context.Context, r io.Reader) (Stats, error) {
	return i.importCSV(ctx, r, "Influencer Handle", func(row row) record {
		handle := row.get("Influencer Handle")
		image := row.get("Image URL")
		return record{
			influencer: models.Influencer{
				Name: handle,
				Instagram: &models.InstagramProfile{
					ProfileHandle: handle,
					Followers:     parseCount(row.get("Followers")),
				},
			},
			content: models.Content{
				ContentType: instagramContentType(row.get("Content Type")),
				Title:       row.get("Title (Caption)"),
				MediaID:     row.get("Post URL"),
				PublishedAt: i.parseDate(row, "Post Time"),
				Likes:       parseCount(row.get("Total Likes")),
				Comments:    parseCount(row.get("comments_counts")),
				URL:         row.get("Post URL"),
				Thumbnails:  models.Thumbnails{Default: image, Medium: image, High: image},
			},
		}
	})
}

func (i *Importer) importCSV(ctx context.Context, r io.Reader, nameColumn string, parse func(row) record) (Stats, error) {
	var stats Stats

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return stats, nil
	}
	if err != nil {
		return stats, fmt.Errorf("read header: %w", err)
	}
	columns := indexColumns(header)
	if _, ok := columns[nameColumn]; !ok {
		return stats, fmt.Errorf("missing column %q", nameColumn)
	}

	seen := make(map[string]struct{})
	for line := 2; ; line++ {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return stats, fmt.Errorf("line %d: %w", line, err)
		}
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		stats.Rows++

		rec := parse(row{columns: columns, fields: fields, line: line})
		if rec.influencer.Name == "" {
			i.logger.Warn("skipping row without influencer name", zap.Int("line", line))
			stats.Skipped++
			continue
		}

		stored, err := i.influencers.UpsertByName(ctx, &rec.influencer)
		if err != nil {
			return stats, fmt.Errorf("line %d: upsert influencer %q: %w", line, rec.influencer.Name, err)
		}
		if _, ok := seen[stored.Name]; !ok {
			seen[stored.Name] = struct{}{}
			stats.Influencers++
		}

		if rec.content.MediaID == "" {
			i.logger.Warn("row has no media id, content not stored",
				zap.Int("line", line),
				zap.String("influencer", stored.Name),
			)
			continue
		}
		rec.content.Influencer = stored.ID
		if err := i.contents.Upsert(ctx, &rec.content); err != nil {
			return stats, fmt.Errorf("line %d: upsert content %q: %w", line, rec.content.MediaID, err)
		}
		stats.Contents++
	}
	return stats, nil
}

type row struct {
	columns map[string]int
	fields  []string
	line    int
}

func (r row) get(column string) string {
	idx, ok := r.columns[column]
	if !ok || idx >= len(r.fields) {
		return ""
	}
	return strings.TrimSpace(r.fields[idx])
}

func indexColumns(header []string) map[string]int {
	columns := make(map[string]int, len(header))
	for idx, name := range header {
		if idx == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}
		columns[strings.TrimSpace(name)] = idx
	}
	return columns
}

// parseCount reads integers as exported by spreadsheets ("1,200", "3.0").
// Anything unparseable counts as zero.
func parseCount(s string) int64 {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return 0
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int64(f)
	}
	return 0
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"01/02/2006 15:04:05",
	"01/02/2006 15:04",
	"01/02/2006",
	"Jan 2, 2006",
}

func (i *Importer) parseDate(r row, column string) *time.Time {
	raw := r.get(column)
	if raw == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			t = t.UTC()
			return &t
		}
	}
	i.logger.Warn("invalid date, leaving it empty",
		zap.Int("line", r.line),
		zap.String("column", column),
		zap.String("value", raw),
	)
	return nil
}

func instagramContentType(s string) models.ContentType {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "reel", "reels":
		return models.ContentReel
	case "video", "igtv":
		return models.ContentVideo
	default:
		return models.ContentPost
	}
}
