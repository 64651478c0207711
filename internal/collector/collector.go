// Package collector assembles the raw dataset for one channel from a data
// provider.
package collector

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/yt-intel/internal/logging"
	"github.com/yt-intel/internal/models"
)

const (
	DefaultVideoWindow  = 10
	DefaultMaxComments  = 50
	DefaultFetchTimeout = 15 * time.Second

	maxParallelFetches = 8
)

// Provider is the read-only source of channel, video and comment data.
type Provider interface {
	// ResolveChannel maps a handle to a channel ID. It returns
	// models.ErrChannelNotFound when nothing matches.
	ResolveChannel(ctx context.Context, handle string) (string, error)
	ChannelStats(ctx context.Context, channelID string) (models.ChannelStats, error)
	// RecentVideos returns up to limit videos, newest first, without stats.
	RecentVideos(ctx context.Context, channelID string, limit int) ([]models.VideoRecord, error)
	VideoStats(ctx context.Context, videoID string) (models.VideoStats, error)
	// TopComments returns up to limit top-level comments in relevance order.
	TopComments(ctx context.Context, videoID string, limit int) ([]models.Comment, error)
	// Transcript returns nil when the video has no transcript.
	Transcript(ctx context.Context, videoID string) (*string, error)
}

// Options tunes a Collector. Zero values use the defaults.
type Options struct {
	VideoWindow  int
	MaxComments  int
	FetchTimeout time.Duration
}

// Collector gathers a ChannelDataset from a Provider.
type Collector struct {
	provider    Provider
	window      int
	maxComments int
	timeout     time.Duration
}

// New returns a Collector reading from p.
func New(p Provider, opts Options) *Collector {
	c := &Collector{
		provider:    p,
		window:      opts.VideoWindow,
		maxComments: opts.MaxComments,
		timeout:     opts.FetchTimeout,
	}
	if c.window <= 0 {
		c.window = DefaultVideoWindow
	}
	if c.maxComments <= 0 {
		c.maxComments = DefaultMaxComments
	}
	if c.timeout <= 0 {
		c.timeout = DefaultFetchTimeout
	}
	return c
}

// NormalizeHandle trims whitespace and a single leading '@'.
func NormalizeHandle(handle string) string {
	return strings.TrimPrefix(strings.TrimSpace(handle), "@")
}

// Collect resolves handle and gathers the channel's recent videos with
// their statistics, transcripts and top comments.
func (c *Collector) Collect(ctx context.Context, handle string) (*models.ChannelDataset, error) {
	handle = NormalizeHandle(handle)
	if handle == "" {
		return nil, fmt.Errorf("%w: empty handle", models.ErrChannelNotFound)
	}

	channelID, err := c.provider.ResolveChannel(ctx, handle)
	if err != nil {
		if errors.Is(err, models.ErrChannelNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: resolve handle %q: %v", models.ErrDataUnavailable, handle, err)
	}
	if channelID == "" {
		return nil, fmt.Errorf("%w: %s", models.ErrChannelNotFound, handle)
	}

	stats, err := c.provider.ChannelStats(ctx, channelID)
	if err != nil {
		return nil, fmt.Errorf("%w: channel statistics: %v", models.ErrDataUnavailable, err)
	}
	if stats.Handle == "" {
		stats.Handle = handle
	}

	videos, err := c.provider.RecentVideos(ctx, channelID, c.window)
	if err != nil {
		return nil, fmt.Errorf("%w: recent videos: %v", models.ErrDataUnavailable, err)
	}
	if len(videos) > c.window {
		videos = videos[:c.window]
	}

	logging.Logger.Info().
		Str("channel_id", channelID).
		Int("videos", len(videos)).
		Msg("collecting video details")

	if err := c.fillVideos(ctx, videos); err != nil {
		return nil, err
	}

	return models.NewChannelDataset(channelID, handle, stats, videos), nil
}

// fillVideos fetches statistics, transcript and comments of every video
// concurrently. Each goroutine writes to its own field of its own element.
func (c *Collector) fillVideos(ctx context.Context, videos []models.VideoRecord) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelFetches)

	for i := range videos {
		v := &videos[i]

		g.Go(func() error {
			callCtx, cancel := context.WithTimeout(gctx, c.timeout)
			defer cancel()
			s, err := c.provider.VideoStats(callCtx, v.VideoID)
			if err != nil {
				return fmt.Errorf("%w: statistics for video %s: %v", models.ErrDataUnavailable, v.VideoID, err)
			}
			v.Stats = s
			return nil
		})

		g.Go(func() error {
			callCtx, cancel := context.WithTimeout(gctx, c.timeout)
			defer cancel()
			t, err := c.provider.Transcript(callCtx, v.VideoID)
			if err != nil {
				logging.Logger.Warn().Err(err).Str("video_id", v.VideoID).Msg("transcript unavailable")
				v.Transcript = nil
				return nil
			}
			if t != nil && strings.TrimSpace(*t) == "" {
				t = nil
			}
			v.Transcript = t
			return nil
		})

		g.Go(func() error {
			callCtx, cancel := context.WithTimeout(gctx, c.timeout)
			defer cancel()
			comments, err := c.provider.TopComments(callCtx, v.VideoID, c.maxComments)
			if err != nil {
				logging.Logger.Warn().Err(err).Str("video_id", v.VideoID).Msg("comments unavailable")
				v.Comments = []models.Comment{}
				return nil
			}
			if len(comments) > c.maxComments {
				comments = comments[:c.maxComments]
			}
			if comments == nil {
				comments = []models.Comment{}
			}
			v.Comments = comments
			return nil
		})
	}

	return g.Wait()
}
