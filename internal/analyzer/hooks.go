package analyzer

import (
	"context"
	"fmt"
	"strings"

	"github.com/yt-intel/internal/models"
)

func spectacleHooks() models.Hooks {
	return models.Hooks{
		PrimaryHook:    "Entertainment & Spectacle",
		SecondaryHooks: []string{"High-stakes challenges", "Big money rewards", "Extreme scenarios"},
		Strategy:       "Escalating stakes and spectacle drive curiosity and shares",
	}
}

func genericHooks() models.Hooks {
	return models.Hooks{
		PrimaryHook:    "Value-driven content",
		SecondaryHooks: []string{"Educational insights", "Practical tips", "Personal perspective"},
		Strategy:       "Deliver clear value that viewers can act on",
	}
}

// isSpectacle reports whether any title signals challenge or money content.
func isSpectacle(titles []string) bool {
	for _, t := range titles {
		lower := strings.ToLower(t)
		if strings.Contains(lower, "challenge") || strings.Contains(lower, "$") {
			return true
		}
	}
	return false
}

// ExtractHooks describes the messaging hooks used in video titles.
func (a *Analyzer) ExtractHooks(ctx context.Context, titles []string) Result[models.Hooks] {
	if isSpectacle(titles) {
		logHeuristic("hooks", "spectacle titles")
		return heuristic(spectacleHooks(), "spectacle titles")
	}

	prompt := fmt.Sprintf(hooksPrompt, excerpt(titles, "\n", titleBudget))
	raw, err := a.complete(ctx, prompt)
	if err != nil {
		logDegraded("hooks", "generator error", err)
		return fallback(genericHooks(), "generator error")
	}

	hooks, ok := decodeFirst(raw, '{', func(h models.Hooks) bool {
		return strings.TrimSpace(h.PrimaryHook) != ""
	})
	if !ok {
		logDegraded("hooks", "unparseable response", nil)
		return fallback(genericHooks(), "unparseable response")
	}
	if hooks.SecondaryHooks == nil {
		hooks.SecondaryHooks = []string{}
	}
	return fromModel(hooks)
}
