package analyzer

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/yt-intel/internal/models"
)

const keywordLimit = 12

var stopwords = map[string]struct{}{
	"video":     {},
	"watch":     {},
	"subscribe": {},
}

// ExtractKeywords ranks frequent words across titles and descriptions.
// It never calls the generator.
func ExtractKeywords(videos []models.VideoRecord) Result[[]models.Keyword] {
	counts := make(map[string]int)
	var order []string
	for _, v := range videos {
		text := strings.ToLower(v.Title + " " + v.Description)
		for _, word := range strings.Fields(text) {
			if utf8.RuneCountInString(word) <= 4 {
				continue
			}
			if _, stop := stopwords[word]; stop {
				continue
			}
			if counts[word] == 0 {
				order = append(order, word)
			}
			counts[word]++
		}
	}

	if len(order) == 0 {
		return heuristic([]models.Keyword{{Keyword: "content", Frequency: 0, Importance: "low"}}, "no keyword candidates")
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	if len(order) > keywordLimit {
		order = order[:keywordLimit]
	}

	keywords := make([]models.Keyword, 0, len(order))
	for _, word := range order {
		keywords = append(keywords, models.Keyword{
			Keyword:    word,
			Frequency:  counts[word],
			Importance: importance(counts[word]),
		})
	}
	return heuristic(keywords, "local frequency count")
}

func importance(count int) string {
	switch {
	case count > 5:
		return "high"
	case count > 2:
		return "medium"
	default:
		return "low"
	}
}
