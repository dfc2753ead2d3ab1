package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/mmcdole/fontpeek/internal/domain"
	bolt "go.etcd.io/bbolt"
)

// Bucket names
var (
	bucketCatalog = []byte("catalog")
)

// Keys within the catalog bucket
const (
	keyFonts     = "fonts"
	keyFetchedAt = "fetched_at"
)

// CatalogStore caches the remote font catalog using BoltDB.
type CatalogStore struct {
	db *bolt.DB
	mu sync.RWMutex // Protects memory cache

	// In-memory cache for hot-path reads (promoted on access)
	cache map[string][]byte
}

// NewCatalogStore opens (or creates) the cache database under dir.
// An empty dir yields a memory-only store.
func NewCatalogStore(dir string) (*CatalogStore, error) {
	if dir == "" {
		return &CatalogStore{cache: make(map[string][]byte)}, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	dbPath := filepath.Join(dir, "fontpeek.db")
	db, err := bolt.Open(dbPath, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketCatalog)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &CatalogStore{db: db, cache: make(map[string][]byte)}, nil
}

func (s *CatalogStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// === Generic helpers ===

func (s *CatalogStore) get(bucket []byte, key string, dest interface{}) bool {
	cacheKey := string(bucket) + ":" + key

	s.mu.RLock()
	if data, ok := s.cache[cacheKey]; ok {
		s.mu.RUnlock()
		return json.Unmarshal(data, dest) == nil
	}
	s.mu.RUnlock()

	if s.db == nil {
		return false
	}

	var data []byte
	s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucket)
		if b == nil {
			return nil
		}
		if v := b.Get([]byte(key)); v != nil {
			data = make([]byte, len(v))
			copy(data, v)
		}
		return nil
	})

	if data == nil {
		return false
	}

	// Promote to memory cache
	s.mu.Lock()
	s.cache[cacheKey] = data
	s.mu.Unlock()

	return json.Unmarshal(data, dest) == nil
}

func (s *CatalogStore) set(bucket []byte, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	cacheKey := string(bucket) + ":" + key

	s.mu.Lock()
	s.cache[cacheKey] = data
	s.mu.Unlock()

	if s.db == nil {
		return nil // Memory-only mode
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucket)
		return b.Put([]byte(key), data)
	})
}

func (s *CatalogStore) delete(bucket []byte, key string) {
	cacheKey := string(bucket) + ":" + key

	s.mu.Lock()
	delete(s.cache, cacheKey)
	s.mu.Unlock()

	if s.db == nil {
		return
	}

	s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucket)
		if b != nil {
			b.Delete([]byte(key))
		}
		return nil
	})
}

// === Catalog ===

// GetCatalog returns the cached catalog if it was stored no earlier than maxAge ago
func (s *CatalogStore) GetCatalog(maxAge time.Duration, now time.Time) ([]domain.FontDescriptor, bool) {
	var fetchedAt int64
	if !s.get(bucketCatalog, keyFetchedAt, &fetchedAt) {
		return nil, false
	}
	if now.Sub(time.Unix(fetchedAt, 0)) > maxAge {
		return nil, false
	}

	var fonts []domain.FontDescriptor
	if !s.get(bucketCatalog, keyFonts, &fonts) || len(fonts) == 0 {
		return nil, false
	}
	return fonts, true
}

// SaveCatalog stores a successfully fetched remote catalog
func (s *CatalogStore) SaveCatalog(fonts []domain.FontDescriptor, fetchedAt time.Time) error {
	if err := s.set(bucketCatalog, keyFonts, fonts); err != nil {
		return err
	}
	// Timestamp saved separately for freshness checks
	return s.set(bucketCatalog, keyFetchedAt, fetchedAt.Unix())
}

// InvalidateCatalog drops the cached catalog
func (s *CatalogStore) InvalidateCatalog() {
	s.delete(bucketCatalog, keyFonts)
	s.delete(bucketCatalog, keyFetchedAt)
}
