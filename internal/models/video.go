package models

import "time"

// VideoStats holds engagement counters. Missing counters are zero.
type VideoStats struct {
	ViewCount    int64  `json:"viewCount"`
	LikeCount    int64  `json:"likeCount"`
	CommentCount int64  `json:"commentCount"`
	Duration     string `json:"duration"`
}

// Comment is a top-level comment on a video
type Comment struct {
	Text        string    `json:"text"`
	LikeCount   int64     `json:"likeCount"`
	Author      string    `json:"author"`
	PublishedAt time.Time `json:"publishedAt"`
}

// VideoRecord is everything gathered for one video
type VideoRecord struct {
	VideoID     string            `json:"videoId"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	PublishedAt time.Time         `json:"publishedAt"`
	Thumbnails  map[string]string `json:"thumbnails,omitempty"`
	Stats       VideoStats        `json:"stats"`
	Transcript  *string           `json:"transcript"`
	Comments    []Comment         `json:"comments"`
}

// HasTranscript reports whether a non-empty transcript is present
func (v *VideoRecord) HasTranscript() bool {
	return v.Transcript != nil && *v.Transcript != ""
}
