// Package pipeline runs a full channel analysis: collect the dataset, then
// build the report and the metrics side by side.
package pipeline

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/yt-intel/internal/analyzer"
	"github.com/yt-intel/internal/logging"
	"github.com/yt-intel/internal/metrics"
	"github.com/yt-intel/internal/models"
)

// Collector produces the raw dataset for a handle.
type Collector interface {
	Collect(ctx context.Context, handle string) (*models.ChannelDataset, error)
}

// Analysis is the complete result of one request.
type Analysis struct {
	ChannelInfo    models.ChannelStats          `json:"channelInfo"`
	Intelligence   *models.Report               `json:"intelligence"`
	Metrics        *models.Metrics              `json:"metrics"`
	VideoBreakdown []models.VideoBreakdownEntry `json:"videoBreakdown"`
}

// Pipeline wires the collector, the report assembler and the metrics engine.
type Pipeline struct {
	collector Collector
	assembler *analyzer.Assembler
}

// New returns a Pipeline.
func New(c Collector, a *analyzer.Assembler) *Pipeline {
	return &Pipeline{collector: c, assembler: a}
}

// Analyze runs the pipeline for handle. Errors wrap the model error kinds.
func (p *Pipeline) Analyze(ctx context.Context, handle string) (*Analysis, error) {
	start := time.Now()

	ds, err := p.collector.Collect(ctx, handle)
	if err != nil {
		return nil, err
	}
	if len(ds.Videos) == 0 {
		return nil, models.ErrInsufficientData
	}

	out := &Analysis{ChannelInfo: ds.ChannelStats}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		out.Intelligence = p.assembler.BuildReport(gctx, ds)
		return nil
	})
	g.Go(func() error {
		m, rows, err := metrics.Compute(ds)
		if err != nil {
			return err
		}
		out.Metrics, out.VideoBreakdown = m, rows
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	logging.Logger.Info().
		Str("channel_id", ds.ChannelID).
		Int("videos", ds.TotalVideosAnalyzed).
		Int("comments", ds.TotalComments).
		Dur("elapsed", time.Since(start)).
		Msg("analysis complete")

	return out, nil
}
