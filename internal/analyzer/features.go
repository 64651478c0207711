package analyzer

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/yt-intel/internal/models"
)

const featureCount = 5

// ExtractFeatures finds the recurring features discussed in transcripts.
// Without transcript text the title heuristic is used directly.
func (a *Analyzer) ExtractFeatures(ctx context.Context, transcripts, titles []string) Result[[]models.Feature] {
	var texts []string
	for _, t := range transcripts {
		if strings.TrimSpace(t) != "" {
			texts = append(texts, t)
		}
	}
	if len(texts) == 0 {
		logHeuristic("features", "no transcripts")
		return heuristic(titleFeatures(titles), "no transcripts")
	}

	prompt := fmt.Sprintf(featuresPrompt, featureCount, excerpt(texts, "\n\n", transcriptBudget))
	raw, err := a.complete(ctx, prompt)
	if err != nil {
		logDegraded("features", "generator error", err)
		return fallback(titleFeatures(titles), "generator error")
	}

	features, ok := decodeFirst(raw, '[', func(fs []models.Feature) bool {
		if len(fs) == 0 {
			return false
		}
		for _, f := range fs {
			if strings.TrimSpace(f.Feature) == "" {
				return false
			}
		}
		return true
	})
	if !ok {
		logDegraded("features", "unparseable response", nil)
		return fallback(titleFeatures(titles), "unparseable response")
	}
	if len(features) > featureCount {
		features = features[:featureCount]
	}
	return fromModel(features)
}

// titleFeatures picks the first distinct long words from the titles.
func titleFeatures(titles []string) []models.Feature {
	seen := make(map[string]struct{})
	features := make([]models.Feature, 0, featureCount)
	for _, title := range titles {
		for _, word := range strings.Fields(title) {
			if utf8.RuneCountInString(word) <= 5 {
				continue
			}
			if _, dup := seen[word]; dup {
				continue
			}
			seen[word] = struct{}{}
			features = append(features, models.Feature{
				Feature:    word,
				Category:   "Detected",
				Confidence: "medium",
			})
			if len(features) == featureCount {
				return features
			}
		}
	}
	return features
}
