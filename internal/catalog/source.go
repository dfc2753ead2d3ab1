package catalog

import (
	"context"
	"log/slog"
	"time"

	"github.com/mmcdole/fontpeek/internal/domain"
)

// Cache is the subset of store.CatalogStore used by Source
type Cache interface {
	GetCatalog(maxAge time.Duration, now time.Time) ([]domain.FontDescriptor, bool)
	SaveCatalog(fonts []domain.FontDescriptor, fetchedAt time.Time) error
}

// Source resolves the catalog: fresh cache, then remote provider, then the
// static fallback list. It never fails.
type Source struct {
	provider domain.CatalogProvider // nil = no remote catalog configured
	cache    Cache                  // nil = no caching
	ttl      time.Duration
	logger   *slog.Logger
	now      func() time.Time
}

// NewSource creates a catalog source. provider and cache may be nil.
func NewSource(provider domain.CatalogProvider, cache Cache, ttl time.Duration, logger *slog.Logger) *Source {
	if logger == nil {
		logger = slog.Default()
	}
	return &Source{
		provider: provider,
		cache:    cache,
		ttl:      ttl,
		logger:   logger,
		now:      time.Now,
	}
}

// Fetch loads the catalog, substituting the fallback list on any failure
func (s *Source) Fetch(ctx context.Context) domain.CatalogResult {
	if s.cache != nil && s.ttl > 0 {
		if fonts, ok := s.cache.GetCatalog(s.ttl, s.now()); ok {
			s.logger.Debug("catalog served from cache", "count", len(fonts))
			return domain.CatalogResult{Fonts: fonts}
		}
	}

	if s.provider == nil {
		s.logger.Info("no catalog API key configured, using fallback list")
		return domain.CatalogResult{Fonts: Fallback(), Fallback: true}
	}

	fonts, err := s.provider.FetchCatalog(ctx)
	if err != nil {
		s.logger.Warn("font catalog failed, using fallback list", "error", err)
		return domain.CatalogResult{Fonts: Fallback(), Fallback: true}
	}

	if s.cache != nil && s.ttl > 0 {
		if err := s.cache.SaveCatalog(fonts, s.now()); err != nil {
			s.logger.Warn("failed to cache catalog", "error", err)
		}
	}

	s.logger.Info("font catalog loaded", "count", len(fonts))
	return domain.CatalogResult{Fonts: fonts}
}
