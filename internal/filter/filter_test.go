package filter

import (
	"strings"
	"testing"

	"github.com/mmcdole/fontpeek/internal/domain"
	"github.com/stretchr/testify/assert"
)

var testCatalog = []domain.FontDescriptor{
	{Family: "Inter", Category: domain.CategorySansSerif},
	{Family: "Roboto", Category: domain.CategorySansSerif},
	{Family: "Open Sans", Category: domain.CategorySansSerif},
	{Family: "Lora", Category: domain.CategorySerif},
	{Family: "PT Serif", Category: domain.CategorySerif},
	{Family: "Roboto Mono", Category: domain.CategoryMonospace},
	{Family: "Pacifico", Category: domain.CategoryHandwriting},
}

func TestFilter_EmptyQueryAllIsIdentity(t *testing.T) {
	assert.Equal(t, testCatalog, Filter(testCatalog, "", domain.CategoryAll))
	assert.Equal(t, testCatalog, Filter(testCatalog, "", ""))
}

func TestFilter_Predicates(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		category domain.Category
		want     []string
	}{
		{"substring across categories", "roboto", domain.CategoryAll, []string{"Roboto", "Roboto Mono"}},
		{"category only", "", domain.CategorySerif, []string{"Lora", "PT Serif"}},
		{"both predicates", "o", domain.CategorySansSerif, []string{"Roboto", "Open Sans"}},
		{"case-insensitive family", "pt s", domain.CategoryAll, []string{"PT Serif"}},
		{"no match", "zzz", domain.CategoryAll, []string{}},
		{"category excludes match", "roboto", domain.CategorySerif, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(testCatalog, NormalizeQuery(tt.query), tt.category)
			families := make([]string, 0, len(got))
			for _, f := range got {
				families = append(families, f.Family)
			}
			assert.Equal(t, tt.want, families)
		})
	}
}

func TestFilter_IsOrderPreservingSubsequence(t *testing.T) {
	queries := []string{"", "o", "r", "mono", "sans", "x"}
	for _, q := range queries {
		for _, c := range domain.Categories {
			got := Filter(testCatalog, q, c)

			// Walk the catalog once; every result must appear in order
			pos := 0
			for _, f := range got {
				for pos < len(testCatalog) && testCatalog[pos] != f {
					pos++
				}
				if !assert.Less(t, pos, len(testCatalog), "query %q category %q out of order", q, c) {
					break
				}
				pos++

				assert.True(t, c == domain.CategoryAll || f.Category == c)
				assert.Contains(t, strings.ToLower(f.Family), q)
			}
		}
	}
}

func TestIndexOf(t *testing.T) {
	assert.Equal(t, 1, IndexOf(testCatalog, "Roboto"))
	assert.Equal(t, -1, IndexOf(testCatalog, "roboto"))
	assert.Equal(t, -1, IndexOf(nil, "Roboto"))
}
