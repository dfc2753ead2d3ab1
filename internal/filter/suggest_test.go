package filter

import (
	"testing"

	"github.com/mmcdole/fontpeek/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestSuggest_Subsequence(t *testing.T) {
	got := Suggest(testCatalog, "opsns", domain.CategoryAll, 3)
	assert.Equal(t, []string{"Open Sans"}, got)
}

func TestSuggest_Typo(t *testing.T) {
	got := Suggest(testCatalog, "lroa", domain.CategoryAll, 3)
	assert.Equal(t, []string{"Lora"}, got)
}

func TestSuggest_RespectsCategoryAndLimit(t *testing.T) {
	got := Suggest(testCatalog, "o", domain.CategorySansSerif, 2)
	assert.Len(t, got, 2)
	for _, family := range got {
		assert.NotEqual(t, "Roboto Mono", family)
	}
}

func TestSuggest_EmptyInputs(t *testing.T) {
	assert.Nil(t, Suggest(testCatalog, "  ", domain.CategoryAll, 3))
	assert.Nil(t, Suggest(testCatalog, "abc", domain.CategoryAll, 0))
	assert.Nil(t, Suggest(nil, "abc", domain.CategoryAll, 3))
	assert.Empty(t, Suggest(testCatalog, "qqqqqqqqqq", domain.CategoryAll, 3))
}
