package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mmcdole/fontpeek/internal/domain"
	"github.com/mmcdole/fontpeek/internal/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_FetchCatalog(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "secret", r.URL.Query().Get("key"))
		assert.Equal(t, "popularity", r.URL.Query().Get("sort"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"kind":"webfonts#webfontList","items":[
			{"family":"Roboto","category":"sans-serif"},
			{"family":"Lora","category":"serif"},
			{"family":"Roboto","category":"sans-serif"},
			{"family":"Weird","category":"unknown"}
		]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "secret", time.Second, log.NullLogger())
	fonts, err := c.FetchCatalog(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []domain.FontDescriptor{
		{Family: "Roboto", Category: domain.CategorySansSerif},
		{Family: "Lora", Category: domain.CategorySerif},
		{Family: "Weird", Category: domain.CategorySansSerif},
	}, fonts)
}

func TestClient_FetchCatalog_Failures(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"non-OK status", http.StatusForbidden, `{"error":{}}`},
		{"malformed body", http.StatusOK, `{"items":`},
		{"empty items", http.StatusOK, `{"items":[]}`},
		{"missing items", http.StatusOK, `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			c := NewClient(srv.URL, "k", time.Second, log.NullLogger())
			_, err := c.FetchCatalog(context.Background())
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrCatalogUnavailable)
		})
	}
}

func TestFallback(t *testing.T) {
	fonts := Fallback()
	require.NotEmpty(t, fonts)

	seen := map[string]bool{}
	categories := map[domain.Category]int{}
	for _, f := range fonts {
		assert.False(t, seen[f.Family], "duplicate family %s", f.Family)
		seen[f.Family] = true
		categories[f.Category]++
	}
	assert.Len(t, categories, 5, "fallback spans every category")

	// Callers get their own copy
	fonts[0].Family = "Mutated"
	assert.NotEqual(t, "Mutated", Fallback()[0].Family)
}
