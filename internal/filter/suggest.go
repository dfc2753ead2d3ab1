package filter

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/mmcdole/fontpeek/internal/domain"
	sfuzzy "github.com/sahilm/fuzzy"
)

// Suggest proposes up to limit family names for a query that matched nothing.
//
// Subsequence matches ("opsns" -> "Open Sans") are ranked first; when there
// are none, names within a small edit distance of the query are offered so
// simple typos ("robto") still find something.
func Suggest(catalog []domain.FontDescriptor, queryLower string, category domain.Category, limit int) []string {
	queryLower = strings.TrimSpace(queryLower)
	if queryLower == "" || limit <= 0 {
		return nil
	}

	scoped := Filter(catalog, "", category)
	if len(scoped) == 0 {
		return nil
	}

	lowerNames := make([]string, len(scoped))
	for i, font := range scoped {
		lowerNames[i] = strings.ToLower(font.Family)
	}

	var suggestions []string
	for _, match := range sfuzzy.Find(queryLower, lowerNames) {
		suggestions = append(suggestions, scoped[match.Index].Family)
		if len(suggestions) == limit {
			return suggestions
		}
	}
	if len(suggestions) > 0 {
		return suggestions
	}

	return nearestByDistance(scoped, lowerNames, queryLower, limit)
}

type candidate struct {
	index    int
	distance int
}

func nearestByDistance(scoped []domain.FontDescriptor, lowerNames []string, queryLower string, limit int) []string {
	maxDistance := len(queryLower) / 3
	if maxDistance < 2 {
		maxDistance = 2
	}

	var candidates []candidate
	for i, name := range lowerNames {
		d := fuzzy.LevenshteinDistance(queryLower, name)
		// Compare against the leading word too so "robto" finds "Roboto Mono"
		if word, _, found := strings.Cut(name, " "); found {
			if wd := fuzzy.LevenshteinDistance(queryLower, word); wd < d {
				d = wd
			}
		}
		if d <= maxDistance {
			candidates = append(candidates, candidate{index: i, distance: d})
		}
	}

	sort.SliceStable(candidates, func(a, b int) bool {
		return candidates[a].distance < candidates[b].distance
	})

	var suggestions []string
	for _, c := range candidates {
		suggestions = append(suggestions, scoped[c.index].Family)
		if len(suggestions) == limit {
			break
		}
	}
	return suggestions
}
