package domain

import "context"

// CatalogProvider fetches the ordered font catalog from a remote source.
// Implementations return an error on any failure; the caller decides on fallback.
type CatalogProvider interface {
	FetchCatalog(ctx context.Context) ([]FontDescriptor, error)
}

// Materializer requests the network resource for a single family.
// It is called off the UI path and its result is never awaited by callers of Load.
type Materializer interface {
	Materialize(ctx context.Context, family string) error
}

// FontLoader is the deduplicating front of a Materializer
type FontLoader interface {
	// Load requests the family's resource once per session. It never blocks.
	Load(family string)
}

// LoadObserver receives resource load outcomes. Calls arrive from worker goroutines.
type LoadObserver interface {
	OnFontLoaded(family string)
	OnFontFailed(family string, err error)
}
