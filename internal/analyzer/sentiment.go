package analyzer

import (
	"context"
	"fmt"
	"strings"

	"github.com/yt-intel/internal/models"
)

const (
	minComments   = 5
	minComplaints = 3
)

var positiveFiller = []models.Complaint{
	{Text: "Viewers respond positively to the content", Frequency: "high"},
	{Text: "Audience appreciates the presentation style", Frequency: "medium"},
	{Text: "Community engagement is generally supportive", Frequency: "medium"},
}

func insufficientSentiment() models.SentimentGaps {
	return models.SentimentGaps{
		Complaints: []models.Complaint{
			{Text: "Not enough comments to identify themes", Frequency: "low"},
			{Text: "Audience feedback is still limited", Frequency: "low"},
			{Text: "Engagement patterns are not yet clear", Frequency: "medium"},
		},
		MostRequestedFeature: "More data needed",
	}
}

func positiveSentiment() models.SentimentGaps {
	return models.SentimentGaps{
		Complaints:           append([]models.Complaint(nil), positiveFiller...),
		MostRequestedFeature: "More content like this",
	}
}

type sentimentPayload struct {
	Complaints           *[]models.Complaint `json:"complaints"`
	MostRequestedFeature string              `json:"mostRequestedFeature"`
}

// ExtractSentimentGaps summarizes complaints and requests found in comments.
func (a *Analyzer) ExtractSentimentGaps(ctx context.Context, comments []string) Result[models.SentimentGaps] {
	if len(comments) < minComments {
		logHeuristic("sentiment", "insufficient comments")
		return heuristic(insufficientSentiment(), "insufficient comments")
	}

	prompt := fmt.Sprintf(sentimentPrompt, excerpt(comments, "\n", commentBudget))
	raw, err := a.complete(ctx, prompt)
	if err != nil {
		logDegraded("sentiment", "generator error", err)
		return fallback(positiveSentiment(), "generator error")
	}

	payload, ok := decodeFirst(raw, '{', func(p sentimentPayload) bool {
		return p.Complaints != nil
	})
	if !ok {
		logDegraded("sentiment", "unparseable response", nil)
		return fallback(positiveSentiment(), "unparseable response")
	}

	gaps := models.SentimentGaps{
		Complaints:           *payload.Complaints,
		MostRequestedFeature: strings.TrimSpace(payload.MostRequestedFeature),
	}
	for i := 0; len(gaps.Complaints) < minComplaints; i++ {
		gaps.Complaints = append(gaps.Complaints, positiveFiller[i%len(positiveFiller)])
	}
	if gaps.MostRequestedFeature == "" {
		gaps.MostRequestedFeature = "Not clearly identified"
	}
	return fromModel(gaps)
}
