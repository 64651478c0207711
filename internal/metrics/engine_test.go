package metrics

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yt-intel/internal/models"
)

var base = time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

func strPtr(s string) *string { return &s }

func video(id string, views, likes int64, daysAgo int) models.VideoRecord {
	return models.VideoRecord{
		VideoID:     id,
		Title:       "Video " + id,
		PublishedAt: base.AddDate(0, 0, -daysAgo),
		Stats:       models.VideoStats{ViewCount: views, LikeCount: likes},
	}
}

func dataset(videos ...models.VideoRecord) *models.ChannelDataset {
	return models.NewChannelDataset("UC1", "handle", models.ChannelStats{
		SubscriberCount: 1000,
		TotalViews:      50000,
		TotalVideoCount: 42,
	}, videos)
}

func TestComputeTwoVideos(t *testing.T) {
	m, _, err := Compute(dataset(video("a", 100, 10, 0), video("b", 300, 30, 7)))
	require.NoError(t, err)

	assert.EqualValues(t, 400, m.TotalViews)
	assert.EqualValues(t, 200, m.AvgViews)
	assert.EqualValues(t, 40, m.TotalLikes)
	assert.EqualValues(t, 20, m.AvgLikes)
	assert.Equal(t, "10.00", m.EngagementRate)
	assert.Equal(t, "0.00", m.CommentRate)
	assert.Equal(t, "b", m.BestPerformingVideo.VideoID)
	assert.Equal(t, "2.0", m.UploadFrequency)
	assert.Equal(t, "-66.7", m.ViewsTrend)
	assert.EqualValues(t, 1000, m.SubscriberCount)
	assert.EqualValues(t, 50000, m.TotalChannelViews)
	assert.EqualValues(t, 42, m.TotalChannelVideos)
}

func TestComputeSingleVideo(t *testing.T) {
	m, rows, err := Compute(dataset(video("a", 100, 5, 0)))
	require.NoError(t, err)

	assert.Equal(t, "0", m.UploadFrequency)
	assert.Equal(t, "0", m.ViewsTrend)
	assert.Len(t, rows, 1)
}

func TestComputeNoVideos(t *testing.T) {
	_, _, err := Compute(dataset())
	assert.ErrorIs(t, err, models.ErrInsufficientData)

	_, _, err = Compute(nil)
	assert.ErrorIs(t, err, models.ErrInsufficientData)
}

func TestComputeZeroViews(t *testing.T) {
	m, rows, err := Compute(dataset(video("a", 0, 0, 0), video("b", 0, 0, 1)))
	require.NoError(t, err)

	assert.Equal(t, "0.00", m.EngagementRate)
	assert.Equal(t, "0", m.ViewsTrend)
	assert.False(t, math.IsNaN(float64(m.AvgViews)))
	assert.Equal(t, "0.00", rows[0].EngagementRate)
	assert.Equal(t, "a", m.BestPerformingVideo.VideoID)
}

func TestComputeSameTimestamp(t *testing.T) {
	a, b := video("a", 10, 1, 0), video("b", 20, 1, 0)
	m, _, err := Compute(dataset(a, b))
	require.NoError(t, err)

	assert.Equal(t, "0", m.UploadFrequency)
}

func TestBestPerformingVideoTieKeepsFirst(t *testing.T) {
	m, _, err := Compute(dataset(video("a", 50, 0, 0), video("b", 90, 0, 1), video("c", 90, 0, 2)))
	require.NoError(t, err)

	assert.Equal(t, "b", m.BestPerformingVideo.VideoID)
}

func TestTranscriptAvailability(t *testing.T) {
	none := dataset(video("a", 1, 0, 0), video("b", 1, 0, 1))
	m, _, err := Compute(none)
	require.NoError(t, err)
	assert.Equal(t, 0, m.TranscriptAvailability)

	a, b, c := video("a", 1, 0, 0), video("b", 1, 0, 1), video("c", 1, 0, 2)
	a.Transcript, b.Transcript, c.Transcript = strPtr("x"), strPtr("y"), strPtr("")
	m, _, err = Compute(dataset(a, b, c))
	require.NoError(t, err)
	assert.Equal(t, 67, m.TranscriptAvailability)

	c.Transcript = strPtr("z")
	m, _, err = Compute(dataset(a, b, c))
	require.NoError(t, err)
	assert.Equal(t, 100, m.TranscriptAvailability)
}

func TestBreakdownSortedStable(t *testing.T) {
	a := video("a", 100, 10, 0)
	a.Comments = []models.Comment{{Text: "hi"}}
	rows := Breakdown([]models.VideoRecord{a, video("b", 300, 3, 1), video("c", 100, 0, 2), video("d", 500, 0, 3)})

	ids := make([]string, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.VideoID)
	}
	assert.Equal(t, []string{"d", "b", "a", "c"}, ids)
	assert.Equal(t, "10.00", rows[2].EngagementRate)
	assert.Equal(t, 1, rows[2].CommentCount)
	assert.Equal(t, "1.00", rows[1].EngagementRate)
}

func TestAveragesRoundToNearest(t *testing.T) {
	m, _, err := Compute(dataset(video("a", 1, 1, 0), video("b", 2, 2, 1)))
	require.NoError(t, err)

	assert.EqualValues(t, 2, m.AvgViews)
	assert.EqualValues(t, 2, m.AvgLikes)
}

func TestViewsTrendSortsOutOfOrderInput(t *testing.T) {
	oldestFirst := dataset(video("old", 100, 0, 10), video("new", 300, 0, 0))
	m, _, err := Compute(oldestFirst)
	require.NoError(t, err)

	assert.Equal(t, "200.0", m.ViewsTrend)
	assert.False(t, NewestFirst(oldestFirst.Videos))
}

func TestFormatFixedNegativeZero(t *testing.T) {
	assert.Equal(t, "0.0", formatFixed(-0.01, 1))
	assert.Equal(t, "-1.5", formatFixed(-1.5, 1))
	assert.Equal(t, "12.35", formatFixed(12.345678, 2))
}
