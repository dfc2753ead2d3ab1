// Package filter derives the visible font sequence from the catalog.
package filter

import (
	"strings"

	"github.com/mmcdole/fontpeek/internal/domain"
)

// Filter returns the catalog entries whose category matches (or category is
// "all") and whose lowercased family contains queryLower. Catalog order is
// preserved. An empty query matches everything.
//
// The predicate is cheap; callers debounce keystrokes because recomputing the
// view and re-rendering the window is the expensive path.
func Filter(catalog []domain.FontDescriptor, queryLower string, category domain.Category) []domain.FontDescriptor {
	if category == "" {
		category = domain.CategoryAll
	}

	result := make([]domain.FontDescriptor, 0, len(catalog))
	for _, font := range catalog {
		if category != domain.CategoryAll && font.Category != category {
			continue
		}
		if queryLower != "" && !strings.Contains(strings.ToLower(font.Family), queryLower) {
			continue
		}
		result = append(result, font)
	}
	return result
}

// NormalizeQuery lowercases raw search input the way Filter expects it
func NormalizeQuery(raw string) string {
	return strings.ToLower(raw)
}

// IndexOf returns the position of family in view, or -1
func IndexOf(view []domain.FontDescriptor, family string) int {
	for i, font := range view {
		if font.Family == family {
			return i
		}
	}
	return -1
}
