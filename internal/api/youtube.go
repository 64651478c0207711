package api

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"

	"github.com/yt-intel/internal/logging"
	"github.com/yt-intel/internal/models"
)

const (
	// YouTube caps list calls at 50 results per page
	maxPageSize = 50
)

// YouTubeAPI reads channel, video and comment data from the YouTube Data API
// and transcripts from the public watch page.
type YouTubeAPI struct {
	service     *youtube.Service
	transcripts *TranscriptFetcher
}

// NewYouTubeAPI creates a new YouTube data provider
func NewYouTubeAPI(ctx context.Context, apiKey string, httpClient *http.Client, opts ...option.ClientOption) (*YouTubeAPI, error) {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	opts = append([]option.ClientOption{option.WithAPIKey(apiKey)}, opts...)
	service, err := youtube.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create YouTube service: %w", err)
	}

	return &YouTubeAPI{
		service:     service,
		transcripts: NewTranscriptFetcher(httpClient),
	}, nil
}

// ResolveChannel gets the channel ID for a handle. The exact handle lookup
// is tried first, then a channel search.
func (y *YouTubeAPI) ResolveChannel(ctx context.Context, handle string) (string, error) {
	handle = strings.TrimPrefix(handle, "@")

	resp, err := y.service.Channels.List([]string{"id", "snippet"}).
		ForHandle("@" + handle).
		Context(ctx).
		Do()
	if err != nil {
		return "", fmt.Errorf("failed to fetch channel ID: %w", err)
	}
	if len(resp.Items) > 0 {
		logging.Logger.Debug().Str("handle", handle).Str("channel_id", resp.Items[0].Id).Msg("channel found by handle")
		return resp.Items[0].Id, nil
	}

	// If direct lookup failed, try search with exact handle
	search, err := y.service.Search.List([]string{"snippet"}).
		Q("@" + handle).
		Type("channel").
		MaxResults(1).
		Context(ctx).
		Do()
	if err != nil {
		return "", fmt.Errorf("failed to search channel: %w", err)
	}
	if len(search.Items) == 0 || search.Items[0].Id == nil || search.Items[0].Id.ChannelId == "" {
		return "", fmt.Errorf("%w: no channel found for handle @%s", models.ErrChannelNotFound, handle)
	}

	channelID := search.Items[0].Id.ChannelId
	if title := search.Items[0].Snippet; title != nil && !strings.EqualFold(title.ChannelTitle, handle) {
		logging.Logger.Warn().
			Str("handle", handle).
			Str("channel_title", title.ChannelTitle).
			Msg("search result might not be the exact channel")
	}
	return channelID, nil
}

// ChannelStats fetches channel information by channel ID
func (y *YouTubeAPI) ChannelStats(ctx context.Context, channelID string) (models.ChannelStats, error) {
	resp, err := y.service.Channels.List([]string{"snippet", "statistics"}).
		Id(channelID).
		Context(ctx).
		Do()
	if err != nil {
		return models.ChannelStats{}, fmt.Errorf("error fetching channel info: %w", err)
	}
	if len(resp.Items) == 0 {
		return models.ChannelStats{}, fmt.Errorf("%w: %s", models.ErrChannelNotFound, channelID)
	}

	item := resp.Items[0]
	stats := models.ChannelStats{ID: item.Id}
	if s := item.Snippet; s != nil {
		stats.Name = s.Title
		stats.Description = s.Description
		stats.Handle = strings.TrimPrefix(s.CustomUrl, "@")
		stats.CreatedAt = parseTime(s.PublishedAt)
		if s.Thumbnails != nil && s.Thumbnails.Default != nil {
			stats.Thumbnail = s.Thumbnails.Default.Url
		}
	}
	if s := item.Statistics; s != nil {
		stats.SubscriberCount = int64(s.SubscriberCount)
		stats.TotalViews = int64(s.ViewCount)
		stats.TotalVideoCount = int64(s.VideoCount)
	}
	return stats, nil
}

// RecentVideos lists the newest uploads of a channel, newest first
func (y *YouTubeAPI) RecentVideos(ctx context.Context, channelID string, limit int) ([]models.VideoRecord, error) {
	if limit <= 0 || limit > maxPageSize {
		limit = maxPageSize
	}
	resp, err := y.service.Search.List([]string{"snippet"}).
		ChannelId(channelID).
		Type("video").
		Order("date").
		MaxResults(int64(limit)).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("error fetching videos: %w", err)
	}

	videos := make([]models.VideoRecord, 0, len(resp.Items))
	for _, item := range resp.Items {
		if item == nil || item.Id == nil || item.Id.VideoId == "" || item.Snippet == nil {
			continue
		}
		videos = append(videos, models.VideoRecord{
			VideoID:     item.Id.VideoId,
			Title:       item.Snippet.Title,
			Description: item.Snippet.Description,
			PublishedAt: parseTime(item.Snippet.PublishedAt),
			Thumbnails:  thumbnailRefs(item.Snippet.Thumbnails),
			Comments:    []models.Comment{},
		})
	}
	return videos, nil
}

// VideoStats fetches engagement counters for one video
func (y *YouTubeAPI) VideoStats(ctx context.Context, videoID string) (models.VideoStats, error) {
	resp, err := y.service.Videos.List([]string{"statistics", "contentDetails"}).
		Id(videoID).
		Context(ctx).
		Do()
	if err != nil {
		return models.VideoStats{}, fmt.Errorf("error fetching video details: %w", err)
	}
	if len(resp.Items) == 0 {
		return models.VideoStats{}, fmt.Errorf("video %s not found", videoID)
	}

	item := resp.Items[0]
	var stats models.VideoStats
	if s := item.Statistics; s != nil {
		stats.ViewCount = int64(s.ViewCount)
		stats.LikeCount = int64(s.LikeCount)
		stats.CommentCount = int64(s.CommentCount)
	}
	if item.ContentDetails != nil {
		stats.Duration = item.ContentDetails.Duration
	}
	return stats, nil
}

// TopComments fetches top-level comments ordered by relevance
func (y *YouTubeAPI) TopComments(ctx context.Context, videoID string, limit int) ([]models.Comment, error) {
	if limit <= 0 || limit > maxPageSize {
		limit = maxPageSize
	}
	resp, err := y.service.CommentThreads.List([]string{"snippet"}).
		VideoId(videoID).
		Order("relevance").
		TextFormat("plainText").
		MaxResults(int64(limit)).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("error fetching comments: %w", err)
	}

	comments := make([]models.Comment, 0, len(resp.Items))
	for _, item := range resp.Items {
		if item == nil || item.Snippet == nil || item.Snippet.TopLevelComment == nil || item.Snippet.TopLevelComment.Snippet == nil {
			continue
		}
		s := item.Snippet.TopLevelComment.Snippet
		comments = append(comments, models.Comment{
			Text:        s.TextDisplay,
			LikeCount:   s.LikeCount,
			Author:      s.AuthorDisplayName,
			PublishedAt: parseTime(s.PublishedAt),
		})
	}
	return comments, nil
}

// Transcript returns the video's caption text, or nil when it has none
func (y *YouTubeAPI) Transcript(ctx context.Context, videoID string) (*string, error) {
	return y.transcripts.Fetch(ctx, videoID)
}

func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

func thumbnailRefs(t *youtube.ThumbnailDetails) map[string]string {
	if t == nil {
		return nil
	}
	refs := make(map[string]string)
	for name, th := range map[string]*youtube.Thumbnail{
		"default": t.Default,
		"medium":  t.Medium,
		"high":    t.High,
	} {
		if th != nil && th.Url != "" {
			refs[name] = th.Url
		}
	}
	return refs
}
