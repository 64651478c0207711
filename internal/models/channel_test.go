package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestNewChannelDatasetTotals(t *testing.T) {
	videos := []VideoRecord{
		{VideoID: "a", Comments: []Comment{{Text: "one"}, {Text: "two"}}},
		{VideoID: "b"},
		{VideoID: "c", Comments: []Comment{{Text: "three"}}},
	}

	ds := NewChannelDataset("UC1", "handle", ChannelStats{ID: "UC1"}, videos)

	assert.Equal(t, 3, ds.TotalVideosAnalyzed)
	assert.Equal(t, 3, ds.TotalComments)
	assert.Equal(t, []string{"one", "two", "three"}, ds.CommentTexts())
}

func TestNewChannelDatasetEmpty(t *testing.T) {
	ds := NewChannelDataset("UC1", "handle", ChannelStats{}, nil)

	assert.Zero(t, ds.TotalVideosAnalyzed)
	assert.Zero(t, ds.TotalComments)
	assert.Empty(t, ds.Titles())
	assert.Empty(t, ds.Transcripts())
}

func TestTranscriptsSkipsMissingAndEmpty(t *testing.T) {
	ds := NewChannelDataset("UC1", "handle", ChannelStats{}, []VideoRecord{
		{Transcript: strPtr("hello")},
		{Transcript: nil},
		{Transcript: strPtr("")},
		{Transcript: strPtr("world")},
	})

	assert.Equal(t, []string{"hello", "world"}, ds.Transcripts())
	assert.False(t, ds.Videos[2].HasTranscript())
}
