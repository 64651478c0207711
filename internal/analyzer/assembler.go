package analyzer

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/yt-intel/internal/models"
)

// Assembler builds the intelligence report from a dataset.
type Assembler struct {
	analyzer *Analyzer
	now      func() time.Time
}

// NewAssembler returns an Assembler using a.
func NewAssembler(a *Analyzer) *Assembler {
	return &Assembler{analyzer: a, now: time.Now}
}

// BuildReport runs the four analyses concurrently and assembles the report.
// A panic inside one analysis only replaces that field with its fallback.
func (s *Assembler) BuildReport(ctx context.Context, ds *models.ChannelDataset) *models.Report {
	titles := ds.Titles()

	var (
		features  Result[[]models.Feature]
		sentiment Result[models.SentimentGaps]
		hooks     Result[models.Hooks]
		keywords  Result[[]models.Keyword]
	)

	var g errgroup.Group
	g.Go(func() error {
		features = guard("features", func() Result[[]models.Feature] {
			return s.analyzer.ExtractFeatures(ctx, ds.Transcripts(), titles)
		}, func() []models.Feature { return titleFeatures(titles) })
		return nil
	})
	g.Go(func() error {
		sentiment = guard("sentiment", func() Result[models.SentimentGaps] {
			return s.analyzer.ExtractSentimentGaps(ctx, ds.CommentTexts())
		}, positiveSentiment)
		return nil
	})
	g.Go(func() error {
		hooks = guard("hooks", func() Result[models.Hooks] {
			return s.analyzer.ExtractHooks(ctx, titles)
		}, genericHooks)
		return nil
	})
	g.Go(func() error {
		keywords = guard("keywords", func() Result[[]models.Keyword] {
			return ExtractKeywords(ds.Videos)
		}, func() []models.Keyword {
			return []models.Keyword{{Keyword: "content", Frequency: 0, Importance: "low"}}
		})
		return nil
	})
	_ = g.Wait()

	return &models.Report{
		ChannelHandle: ds.ChannelHandle,
		AnalyzedAt:    s.now().UTC(),
		Features:      features.Value,
		Sentiment:     sentiment.Value,
		Hooks:         hooks.Value,
		Keywords:      keywords.Value,
		Metadata: models.ReportMetadata{
			VideosAnalyzed:   ds.TotalVideosAnalyzed,
			CommentsAnalyzed: ds.TotalComments,
			ModelBacked: map[string]bool{
				"features":  features.FromModel,
				"sentiment": sentiment.FromModel,
				"hooks":     hooks.FromModel,
				"keywords":  keywords.FromModel,
			},
		},
	}
}

// guard runs fn and converts a panic into a degraded fallback result.
func guard[T any](name string, fn func() Result[T], fb func() T) (res Result[T]) {
	defer func() {
		if r := recover(); r != nil {
			reason := fmt.Sprintf("panic: %v", r)
			logDegraded(name, reason, nil)
			res = fallback(fb(), reason)
		}
	}()
	return fn()
}
