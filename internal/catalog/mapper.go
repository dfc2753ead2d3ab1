package catalog

import (
	"strings"

	"github.com/mmcdole/fontpeek/internal/domain"
)

// MapFonts converts API items to descriptors, keeping provider order.
// Blank families and repeated families are dropped so Family stays unique.
func MapFonts(items []webfontItem) []domain.FontDescriptor {
	fonts := make([]domain.FontDescriptor, 0, len(items))
	seen := make(map[string]bool, len(items))
	for _, item := range items {
		family := strings.TrimSpace(item.Family)
		if family == "" || seen[family] {
			continue
		}
		seen[family] = true
		fonts = append(fonts, domain.FontDescriptor{
			Family:   family,
			Category: mapCategory(item.Category),
		})
	}
	return fonts
}

// mapCategory normalizes unknown categories to sans-serif
func mapCategory(raw string) domain.Category {
	c := domain.Category(strings.ToLower(strings.TrimSpace(raw)))
	if c == domain.CategoryAll || !c.Valid() {
		return domain.CategorySansSerif
	}
	return c
}
