package models

import "time"

// ChannelStats is a snapshot of a YouTube channel
type ChannelStats struct {
	ID              string    `json:"id"`
	Handle          string    `json:"handle"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	SubscriberCount int64     `json:"subscriberCount"`
	TotalViews      int64     `json:"totalViews"`
	TotalVideoCount int64     `json:"totalVideoCount"`
	Thumbnail       string    `json:"thumbnailUrl,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

// ChannelDataset is the raw data gathered for one channel. It is built once
// per request and only read afterwards.
type ChannelDataset struct {
	ChannelID           string        `json:"channelId"`
	ChannelHandle       string        `json:"channelHandle"`
	ChannelStats        ChannelStats  `json:"channelStats"`
	Videos              []VideoRecord `json:"videos"`
	TotalVideosAnalyzed int           `json:"totalVideosAnalyzed"`
	TotalComments       int           `json:"totalComments"`
}

// NewChannelDataset builds a dataset and derives its totals from videos.
func NewChannelDataset(channelID, handle string, stats ChannelStats, videos []VideoRecord) *ChannelDataset {
	total := 0
	for _, v := range videos {
		total += len(v.Comments)
	}
	return &ChannelDataset{
		ChannelID:           channelID,
		ChannelHandle:       handle,
		ChannelStats:        stats,
		Videos:              videos,
		TotalVideosAnalyzed: len(videos),
		TotalComments:       total,
	}
}

// Titles returns the video titles in dataset order
func (d *ChannelDataset) Titles() []string {
	titles := make([]string, 0, len(d.Videos))
	for _, v := range d.Videos {
		titles = append(titles, v.Title)
	}
	return titles
}

// Transcripts returns every available transcript in dataset order
func (d *ChannelDataset) Transcripts() []string {
	var out []string
	for _, v := range d.Videos {
		if v.HasTranscript() {
			out = append(out, *v.Transcript)
		}
	}
	return out
}

// CommentTexts flattens the comments of all videos
func (d *ChannelDataset) CommentTexts() []string {
	out := make([]string, 0, d.TotalComments)
	for _, v := range d.Videos {
		for _, c := range v.Comments {
			out = append(out, c.Text)
		}
	}
	return out
}
