// Package analyzer derives the qualitative channel report. Each operation
// asks the text generator for a JSON answer and degrades to a local
// heuristic when the generator is missing, fails or answers off-shape.
package analyzer

import (
	"context"
	"errors"
	"strings"

	"github.com/anatolykoptev/go-kit/strutil"

	"github.com/yt-intel/internal/logging"
)

const (
	transcriptBudget = 2000
	commentBudget    = 2000
	titleBudget      = 1500
)

var errNoGenerator = errors.New("text generator not configured")

// Analyzer runs the text analyses against an optional Generator.
type Analyzer struct {
	gen Generator
}

// New returns an Analyzer. A nil generator makes every model-backed
// operation use its fallback.
func New(gen Generator) *Analyzer {
	return &Analyzer{gen: gen}
}

// complete sends prompt to the generator.
func (a *Analyzer) complete(ctx context.Context, prompt string) (string, error) {
	if a.gen == nil {
		return "", errNoGenerator
	}
	return a.gen.Generate(ctx, prompt)
}

// excerpt joins parts with sep and caps the result at limit runes.
func excerpt(parts []string, sep string, limit int) string {
	return strutil.TruncateWith(strings.Join(parts, sep), limit, "")
}

func logDegraded(name, reason string, err error) {
	evt := logging.Logger.Warn().Str("analyzer", name).Str("reason", reason)
	if err != nil {
		evt = evt.Err(err)
	}
	evt.Msg("analysis degraded, using fallback")
}

func logHeuristic(name, reason string) {
	logging.Logger.Debug().Str("analyzer", name).Str("reason", reason).Msg("model call skipped")
}
