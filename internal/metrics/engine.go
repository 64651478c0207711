// Package metrics reduces a channel dataset to engagement metrics and a
// per-video breakdown. Everything here is pure computation.
package metrics

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/yt-intel/internal/logging"
	"github.com/yt-intel/internal/models"
)

const secondsPerDay = 86400

// Compute derives the metrics summary and the breakdown sorted by views.
// It fails with models.ErrInsufficientData when the dataset has no videos.
func Compute(ds *models.ChannelDataset) (*models.Metrics, []models.VideoBreakdownEntry, error) {
	if ds == nil || len(ds.Videos) == 0 {
		return nil, nil, models.ErrInsufficientData
	}
	videos := ds.Videos
	n := len(videos)

	var totalViews, totalLikes, totalComments int64
	best := videos[0]
	withTranscript := 0
	for _, v := range videos {
		totalViews += v.Stats.ViewCount
		totalLikes += v.Stats.LikeCount
		totalComments += v.Stats.CommentCount
		if v.Stats.ViewCount > best.Stats.ViewCount {
			best = v
		}
		if v.HasTranscript() {
			withTranscript++
		}
	}

	m := &models.Metrics{
		VideosAnalyzed:    ds.TotalVideosAnalyzed,
		CommentsProcessed: ds.TotalComments,
		TotalViews:        totalViews,
		AvgViews:          average(totalViews, n),
		ViewsTrend:        viewsTrend(videos),
		TotalLikes:        totalLikes,
		AvgLikes:          average(totalLikes, n),
		EngagementRate:    rate(totalLikes, totalViews),
		TotalComments:     totalComments,
		AvgComments:       average(totalComments, n),
		CommentRate:       rate(totalComments, totalViews),
		BestPerformingVideo: models.BestVideo{
			VideoID: best.VideoID,
			Title:   best.Title,
			Views:   best.Stats.ViewCount,
		},
		UploadFrequency:        uploadFrequency(videos),
		TranscriptAvailability: int(math.Round(float64(withTranscript) / float64(n) * 100)),
		SubscriberCount:        ds.ChannelStats.SubscriberCount,
		TotalChannelViews:      ds.ChannelStats.TotalViews,
		TotalChannelVideos:     ds.ChannelStats.TotalVideoCount,
	}

	return m, Breakdown(videos), nil
}

// Breakdown builds one row per video, sorted by views descending.
// Rows with equal views keep their input order.
func Breakdown(videos []models.VideoRecord) []models.VideoBreakdownEntry {
	rows := make([]models.VideoBreakdownEntry, 0, len(videos))
	for _, v := range videos {
		rows = append(rows, models.VideoBreakdownEntry{
			VideoID:        v.VideoID,
			Title:          v.Title,
			PublishedAt:    v.PublishedAt.UTC().Format(time.RFC3339),
			Views:          v.Stats.ViewCount,
			Likes:          v.Stats.LikeCount,
			Comments:       v.Stats.CommentCount,
			EngagementRate: rate(v.Stats.LikeCount, v.Stats.ViewCount),
			HasTranscript:  v.HasTranscript(),
			CommentCount:   len(v.Comments),
		})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Views > rows[j].Views
	})
	return rows
}

func average(total int64, n int) int64 {
	return int64(math.Round(float64(total) / float64(n)))
}

// rate is part/whole as a percentage with two decimals.
func rate(part, whole int64) string {
	if whole == 0 {
		return "0.00"
	}
	return formatFixed(float64(part)/float64(whole)*100, 2)
}

// uploadFrequency estimates videos per week from the publish date span.
func uploadFrequency(videos []models.VideoRecord) string {
	newest, oldest := videos[0].PublishedAt, videos[0].PublishedAt
	for _, v := range videos[1:] {
		if v.PublishedAt.After(newest) {
			newest = v.PublishedAt
		}
		if v.PublishedAt.Before(oldest) {
			oldest = v.PublishedAt
		}
	}
	days := newest.Sub(oldest).Seconds() / secondsPerDay
	if days <= 0 {
		return "0"
	}
	return formatFixed(float64(len(videos))/days*7, 1)
}

// viewsTrend compares the mean views of the newer half against the older
// half. The halves are taken from a newest-first ordering.
func viewsTrend(videos []models.VideoRecord) string {
	ordered := videos
	if !NewestFirst(videos) {
		logging.Logger.Debug().Int("videos", len(videos)).Msg("videos not newest-first, sorting for trend")
		ordered = append([]models.VideoRecord(nil), videos...)
		sort.SliceStable(ordered, func(i, j int) bool {
			return ordered[i].PublishedAt.After(ordered[j].PublishedAt)
		})
	}

	mid := len(ordered) / 2
	recent, older := ordered[:mid], ordered[mid:]
	if len(recent) == 0 || len(older) == 0 {
		return "0"
	}
	olderAvg := meanViews(older)
	if olderAvg == 0 {
		return "0"
	}
	return formatFixed((meanViews(recent)-olderAvg)/olderAvg*100, 1)
}

// NewestFirst reports whether videos are ordered by publish date descending.
func NewestFirst(videos []models.VideoRecord) bool {
	for i := 1; i < len(videos); i++ {
		if videos[i].PublishedAt.After(videos[i-1].PublishedAt) {
			return false
		}
	}
	return true
}

func meanViews(videos []models.VideoRecord) float64 {
	var sum int64
	for _, v := range videos {
		sum += v.Stats.ViewCount
	}
	return float64(sum) / float64(len(videos))
}

// formatFixed formats f with the given decimals and never yields "-0".
func formatFixed(f float64, decimals int) string {
	s := fmt.Sprintf("%.*f", decimals, f)
	if s[0] == '-' {
		zero := true
		for _, c := range s[1:] {
			if c != '0' && c != '.' {
				zero = false
				break
			}
		}
		if zero {
			return s[1:]
		}
	}
	return s
}
