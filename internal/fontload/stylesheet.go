package fontload

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/mmcdole/fontpeek/internal/domain"
)

const userAgent = "fontpeek/1.0"

// StylesheetURL builds the css2 URL for family across weights, e.g.
// https://fonts.googleapis.com/css2?family=Open%20Sans:wght@300;400&display=swap
func StylesheetURL(base, family string, weights []int) string {
	codes := make([]string, len(weights))
	for i, w := range weights {
		codes[i] = strconv.Itoa(w)
	}
	return fmt.Sprintf("%s?family=%s:wght@%s&display=swap", base, escapeFamily(family), strings.Join(codes, ";"))
}

// escapeFamily query-escapes family with spaces as %20
func escapeFamily(family string) string {
	return strings.ReplaceAll(url.QueryEscape(family), "+", "%20")
}

// HTTPMaterializer requests font stylesheets over HTTP.
// It implements domain.Materializer.
type HTTPMaterializer struct {
	baseURL    string
	weights    []int
	httpClient *http.Client
	logger     *slog.Logger
}

// NewHTTPMaterializer creates a materializer for the given css2 endpoint
func NewHTTPMaterializer(baseURL string, weights []int, timeout time.Duration, logger *slog.Logger) *HTTPMaterializer {
	if logger == nil {
		logger = slog.Default()
	}
	return &HTTPMaterializer{
		baseURL:    baseURL,
		weights:    weights,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// URL returns the stylesheet URL for family
func (m *HTTPMaterializer) URL(family string) string {
	return StylesheetURL(m.baseURL, family, m.weights)
}

// Materialize fetches the family's stylesheet and discards the body
func (m *HTTPMaterializer) Materialize(ctx context.Context, family string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, m.URL(family), nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "text/css,*/*;q=0.1")
	req.Header.Set("User-Agent", userAgent)

	m.logger.Debug("stylesheet request", "family", family)

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrFontLoadFailed, err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: unexpected status code: %d", domain.ErrFontLoadFailed, resp.StatusCode)
	}
	return nil
}
