package store

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/mmcdole/bookcart/internal/domain"
	bolt "go.etcd.io/bbolt"
)

var bucketCatalogs = []byte("catalogs")

// CatalogStore implements domain.CatalogStore using BoltDB.
// Each catalog location gets its own key so two shops never collide.
type CatalogStore struct {
	db  *bolt.DB
	key string
	mu  sync.RWMutex // Protects memory cache

	// In-memory cache for hot-path reads (promoted on access)
	cache map[string][]byte
}

// NewCatalogStore opens the snapshot cache for location under baseCacheDir.
// An empty baseCacheDir gives a memory-only store.
func NewCatalogStore(baseCacheDir, location string) (*CatalogStore, error) {
	key := hashLocation(location)
	if baseCacheDir == "" {
		return &CatalogStore{key: key, cache: make(map[string][]byte)}, nil
	}

	if err := os.MkdirAll(baseCacheDir, 0755); err != nil {
		return nil, err
	}

	dbPath := filepath.Join(baseCacheDir, "bookcart.db")
	db, err := bolt.Open(dbPath, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketCatalogs)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &CatalogStore{db: db, key: key, cache: make(map[string][]byte)}, nil
}

func hashLocation(location string) string {
	hash := sha256.Sum256([]byte(normalizeLocation(location)))
	return hex.EncodeToString(hash[:6])
}

// normalizeLocation lowercases only the scheme and host of a URL.
// File paths and URL paths keep their case.
func normalizeLocation(location string) string {
	location = strings.TrimSpace(location)

	lower := strings.ToLower(location)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		u, err := url.Parse(location)
		if err == nil {
			u.Scheme = strings.ToLower(u.Scheme)
			u.Host = strings.ToLower(u.Host)
			u.Path = strings.TrimRight(u.Path, "/")
			u.RawPath = ""
			return u.String()
		}
		return strings.TrimRight(location, "/")
	}

	return filepath.Clean(location)
}

func (s *CatalogStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// GetCatalog returns the last saved snapshot for this location
func (s *CatalogStore) GetCatalog() (domain.Snapshot, bool) {
	var snap domain.Snapshot
	if !s.get(bucketCatalogs, s.key, &snap) {
		return domain.Snapshot{}, false
	}
	return snap, true
}

// SaveCatalog replaces the stored snapshot
func (s *CatalogStore) SaveCatalog(snap domain.Snapshot) error {
	return s.set(bucketCatalogs, s.key, snap)
}

// Invalidate drops the stored snapshot for this location
func (s *CatalogStore) Invalidate() {
	s.delete(bucketCatalogs, s.key)
}

// === Generic helpers ===

func (s *CatalogStore) get(bucket []byte, key string, dest interface{}) bool {
	cacheKey := string(bucket) + ":" + key

	// Check memory cache first
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
