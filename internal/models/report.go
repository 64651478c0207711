package models

import "time"

// Feature is a product or content feature mentioned in transcripts
type Feature struct {
	Feature    string `json:"feature"`
	Category   string `json:"category"`
	Confidence string `json:"confidence"`
}

// Complaint is a recurring theme in the audience's comments
type Complaint struct {
	Text      string `json:"text"`
	Frequency string `json:"frequency"`
}

// SentimentGaps summarizes what viewers complain about or ask for
type SentimentGaps struct {
	Complaints           []Complaint `json:"complaints"`
	MostRequestedFeature string      `json:"mostRequestedFeature"`
}

// Hooks describes the messaging angles used in video titles
type Hooks struct {
	PrimaryHook    string   `json:"primaryHook"`
	SecondaryHooks []string `json:"secondaryHooks"`
	Strategy       string   `json:"strategy"`
}

// Keyword is a frequent term with its importance bucket
type Keyword struct {
	Keyword    string `json:"keyword"`
	Frequency  int    `json:"frequency"`
	Importance string `json:"importance"`
}

// ReportMetadata describes the input the report was built from
type ReportMetadata struct {
	VideosAnalyzed   int             `json:"videosAnalyzed"`
	CommentsAnalyzed int             `json:"commentsAnalyzed"`
	ModelBacked      map[string]bool `json:"modelBacked"`
}

// Report is the qualitative intelligence output for a channel
type Report struct {
	ChannelHandle string         `json:"channelHandle"`
	AnalyzedAt    time.Time      `json:"analyzedAt"`
	Features      []Feature      `json:"features"`
	Sentiment     SentimentGaps  `json:"sentiment"`
	Hooks         Hooks          `json:"hooks"`
	Keywords      []Keyword      `json:"keywords"`
	Metadata      ReportMetadata `json:"metadata"`
}
