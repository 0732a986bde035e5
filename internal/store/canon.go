// Package store holds the external collaborators the engine consumes:
// the canon (taxonomy) store, the profile store and the institutional
// memory store. The engine itself never fetches or caches; these
// implementations do the I/O before the pure computation begins.
package store

import (
	"context"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/draftroom/canonlens/internal/cache"
	"github.com/draftroom/canonlens/internal/model"
)

// CanonStore supplies read-only taxonomy snapshots, optionally filtered
// to a single domain.
type CanonStore interface {
	GetTaxonomySnapshot(ctx context.Context, domain string) (*model.TaxonomySnapshot, error)
}

// FileCanonStore reads the canon from a YAML file. Snapshots are cached
// with a TTL; refresh cadence is this layer's responsibility, never the
// engine's.
type FileCanonStore struct {
	path  string
	cache cache.Cache
	ttl   time.Duration
}

// NewFileCanonStore creates a canon store over a YAML file. A nil cache
// disables caching (every call re-reads the file).
func NewFileCanonStore(path string, c cache.Cache, ttl time.Duration) *FileCanonStore {
	return &FileCanonStore{path: path, cache: c, ttl: ttl}
}

// GetTaxonomySnapshot loads, validates and normalizes the canon,
// returning a domain-filtered copy when domain is non-empty.
func (s *FileCanonStore) GetTaxonomySnapshot(ctx context.Context, domain string) (*model.TaxonomySnapshot, error) {
	key := cache.SnapshotKey(s.path, domain)
	if s.cache != nil {
		if cached, ok := s.cache.Get(key); ok {
			if snap, ok := cached.(*model.TaxonomySnapshot); ok {
				return snap, nil
			}
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	snapshot, err := LoadCanonFile(s.path)
	if err != nil {
		return nil, err
	}

	if domain != "" {
		snapshot, err = snapshot.FilterDomain(domain)
		if err != nil {
			return nil, err
		}
	}

	if s.cache != nil {
		s.cache.Set(key, snapshot, s.ttl)
	}
	return snapshot, nil
}

// LoadCanonFile parses and validates a canon YAML file. Malformed data
// fails fast with ValidationError rather than being coerced.
func LoadCanonFile(path string) (*model.TaxonomySnapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read canon %s: %w", path, err)
	}

	var snapshot model.TaxonomySnapshot
	if err := yaml.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("parse canon %s: %w", path, err)
	}

	if err := snapshot.Validate(); err != nil {
		return nil, fmt.Errorf("canon %s: %w", path, err)
	}
	snapshot.Normalize()
	return &snapshot, nil
}
