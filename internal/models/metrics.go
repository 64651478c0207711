package models

// BestVideo identifies the most viewed video in the analyzed window
type BestVideo struct {
	VideoID string `json:"videoId"`
	Title   string `json:"title"`
	Views   int64  `json:"views"`
}

// Metrics is the quantitative engagement summary of a channel.
// Rates and trends are pre-formatted strings with fixed precision.
type Metrics struct {
	VideosAnalyzed         int       `json:"videosAnalyzed"`
	CommentsProcessed      int       `json:"commentsProcessed"`
	TotalViews             int64     `json:"totalViews"`
	AvgViews               int64     `json:"avgViews"`
	ViewsTrend             string    `json:"viewsTrend"`
	TotalLikes             int64     `json:"totalLikes"`
	AvgLikes               int64     `json:"avgLikes"`
	EngagementRate         string    `json:"engagementRate"`
	TotalComments          int64     `json:"totalComments"`
	AvgComments            int64     `json:"avgComments"`
	CommentRate            string    `json:"commentRate"`
	BestPerformingVideo    BestVideo `json:"bestPerformingVideo"`
	UploadFrequency        string    `json:"uploadFrequency"`
	TranscriptAvailability int       `json:"transcriptAvailability"`
	SubscriberCount        int64     `json:"subscriberCount"`
	TotalChannelViews      int64     `json:"totalChannelViews"`
	TotalChannelVideos     int64     `json:"totalChannelVideos"`
}

// VideoBreakdownEntry is a per-video summary row
type VideoBreakdownEntry struct {
	VideoID        string `json:"videoId"`
	Title          string `json:"title"`
	PublishedAt    string `json:"publishedAt"`
	Views          int64  `json:"views"`
	Likes          int64  `json:"likes"`
	Comments       int64  `json:"comments"`
	EngagementRate string `json:"engagementRate"`
	HasTranscript  bool   `json:"hasTranscript"`
	CommentCount   int    `json:"commentCount"`
}
