// Package fontload materializes font resources once per session.
package fontload

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/mmcdole/fontpeek/internal/domain"
	"golang.org/x/sync/semaphore"
)

// Loader deduplicates resource requests by family name. It implements
// domain.FontLoader.
//
// A family enters the loaded set on its first Load and stays there unless
// the request fails, in which case it is removed so a later Load retries.
// Requests are fire-and-forget: Load never blocks and nothing waits on the
// outcome except tests (via Wait).
type Loader struct {
	materializer domain.Materializer
	observer     domain.LoadObserver
	sem          *semaphore.Weighted
	timeout      time.Duration
	logger       *slog.Logger

	mu     sync.Mutex
	loaded map[string]bool
	wg     sync.WaitGroup
}

// NewLoader creates a loader that runs at most maxConcurrent requests at once
func NewLoader(m domain.Materializer, maxConcurrent int, timeout time.Duration, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	if maxConcurrent < 1 {
		maxConcurrent = 1
	}
	return &Loader{
		materializer: m,
		sem:          semaphore.NewWeighted(int64(maxConcurrent)),
		timeout:      timeout,
		logger:       logger,
		loaded:       make(map[string]bool),
	}
}

// SetObserver registers a receiver for load outcomes. Set it before the first Load.
func (l *Loader) SetObserver(o domain.LoadObserver) {
	l.observer = o
}

// Load requests family's resource unless it was already requested
func (l *Loader) Load(family string) {
	if family == "" {
		return
	}

	l.mu.Lock()
	if l.loaded[family] {
		l.mu.Unlock()
		return
	}
	l.loaded[family] = true
	l.mu.Unlock()

	l.wg.Add(1)
	go l.materialize(family)
}

func (l *Loader) materialize(family string) {
	defer l.wg.Done()

	ctx := context.Background()
	if err := l.sem.Acquire(ctx, 1); err != nil {
		l.fail(family, err)
		return
	}
	defer l.sem.Release(1)

	if l.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.timeout)
		defer cancel()
	}

	if err := l.materializer.Materialize(ctx, family); err != nil {
		l.fail(family, err)
		return
	}

	l.logger.Debug("font loaded", "family", family)
	if l.observer != nil {
		l.observer.OnFontLoaded(family)
	}
}

func (l *Loader) fail(family string, err error) {
	l.mu.Lock()
	delete(l.loaded, family)
	l.mu.Unlock()

	l.logger.Warn("failed to load font, it may be blocked on this network", "family", family, "error", err)
	if l.observer != nil {
		l.observer.OnFontFailed(family, err)
	}
}

// Has reports whether family is in the loaded set
func (l *Loader) Has(family string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.loaded[family]
}

// Families returns the loaded set in sorted order
func (l *Loader) Families() []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	families := make([]string, 0, len(l.loaded))
	for f := range l.loaded {
		families = append(families, f)
	}
	sort.Strings(families)
	return families
}

// Wait blocks until every request started so far has finished
func (l *Loader) Wait() {
	l.wg.Wait()
}
