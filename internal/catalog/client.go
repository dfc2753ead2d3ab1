package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/mmcdole/fontpeek/internal/domain"
)

const (
	defaultTimeout = 15 * time.Second
	userAgent      = "fontpeek/1.0"
)

// Client implements domain.CatalogProvider for the Google Fonts webfonts API
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a new webfonts API client
func NewClient(baseURL, apiKey string, timeout time.Duration, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// FetchCatalog returns the catalog sorted by popularity
func (c *Client) FetchCatalog(ctx context.Context) ([]domain.FontDescriptor, error) {
	query := url.Values{}
	query.Set("key", c.apiKey)
	query.Set("sort", "popularity")

	body, err := c.doRequest(ctx, query)
	if err != nil {
		return nil, err
	}

	var resp webfontsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		c.logger.Error("catalog parse error", "error", err, "bodyLen", len(body))
		return nil, fmt.Errorf("%w: failed to parse response: %v", domain.ErrCatalogUnavailable, err)
	}

	fonts := MapFonts(resp.Items)
	if len(fonts) == 0 {
		return nil, fmt.Errorf("%w: response contained no fonts", domain.ErrCatalogUnavailable)
	}
	return fonts, nil
}

func (c *Client) doRequest(ctx context.Context, query url.Values) ([]byte, error) {
	reqURL := fmt.Sprintf("%s?%s", c.baseURL, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	c.logger.Debug("catalog request", "url", c.baseURL)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response: %v", domain.ErrCatalogUnavailable, err)
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("catalog request error", "status", resp.StatusCode)
		return nil, fmt.Errorf("%w: unexpected status code: %d", domain.ErrCatalogUnavailable, resp.StatusCode)
	}

	return body, nil
}
