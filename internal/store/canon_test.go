package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/draftroom/canonlens/internal/cache"
	"github.com/draftroom/canonlens/internal/errs"
)

const canonYAML = `version: "2026-08-01"
domains:
  - id: ai-governance
    name: AI Governance
  - id: climate
    name: Climate Policy
camps:
  - id: accelerationists
    domain: ai-governance
    label: Accelerationists
    vocabulary: [progress, innovation, scaling]
    leanings:
      outlook: optimistic
    authors:
      - id: a1
        name: J. Fry
        tier: moderate
      - id: a2
        name: R. Moreau
        tier: strong
  - id: safety-first
    domain: ai-governance
    label: Safety First
    vocabulary: [risk, caution, oversight]
    leanings:
      outlook: skeptical
  - id: climate-pragmatists
    domain: climate
    label: Climate Pragmatists
    vocabulary: [adaptation, resilience]
`

func writeCanon(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "canon.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadCanonFile(t *testing.T) {
	snapshot, err := LoadCanonFile(writeCanon(t, canonYAML))
	if err != nil {
		t.Fatalf("LoadCanonFile() error: %v", err)
	}

	if snapshot.Version != "2026-08-01" {
		t.Errorf("Version = %s, want 2026-08-01", snapshot.Version)
	}
	if len(snapshot.Domains) != 2 || len(snapshot.Camps) != 3 {
		t.Fatalf("got %d domains, %d camps; want 2 and 3", len(snapshot.Domains), len(snapshot.Camps))
	}

	// Normalization orders authors strongest first
	authors := snapshot.Camps[0].Authors
	if len(authors) != 2 || authors[0].Name != "R. Moreau" {
		t.Errorf("authors = %+v, want strongest tier first", authors)
	}
}

func TestLoadCanonFile_RejectsUnknownDomainRef(t *testing.T) {
	bad := `version: v1
domains:
  - id: known
    name: Known
camps:
  - id: stray
    domain: unknown
    label: Stray
    vocabulary: [word]
`
	_, err := LoadCanonFile(writeCanon(t, bad))
	if !errs.IsValidation(err) {
		t.Errorf("error = %v, want ValidationError for unknown domain reference", err)
	}
}

func TestLoadCanonFile_MissingFile(t *testing.T) {
	if _, err := LoadCanonFile(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for a missing canon file")
	}
}

func TestFileCanonStore_DomainFilter(t *testing.T) {
	s := NewFileCanonStore(writeCanon(t, canonYAML), nil, 0)

	snapshot, err := s.GetTaxonomySnapshot(context.Background(), "climate")
	if err != nil {
		t.Fatalf("GetTaxonomySnapshot() error: %v", err)
	}

	if len(snapshot.Domains) != 1 || snapshot.Domains[0].ID != "climate" {
		t.Errorf("Domains = %+v, want only climate", snapshot.Domains)
	}
	if len(snapshot.Camps) != 1 || snapshot.Camps[0].ID != "climate-pragmatists" {
		t.Errorf("Camps = %+v, want only the climate camp", snapshot.Camps)
	}
}

func TestFileCanonStore_UnknownDomain(t *testing.T) {
	s := NewFileCanonStore(writeCanon(t, canonYAML), nil, 0)

	_, err := s.GetTaxonomySnapshot(context.Background(), "sports")
	if !errs.IsNotFound(err) {
		t.Errorf("error = %v, want NotFoundError", err)
	}
}

func TestFileCanonStore_CachesSnapshots(t *testing.T) {
	path := writeCanon(t, canonYAML)
	s := NewFileCanonStore(path, cache.NewMemoryCache(time.Minute, time.Minute), time.Minute)

	first, err := s.GetTaxonomySnapshot(context.Background(), "")
	if err != nil {
		t.Fatal(err)
	}

	// Break the file on disk; the cached snapshot must still be served
	if err := os.WriteFile(path, []byte("not: [valid"), 0644); err != nil {
		t.Fatal(err)
	}

	second, err := s.GetTaxonomySnapshot(context.Background(), "")
	if err != nil {
		t.Fatalf("cached fetch failed: %v", err)
	}
	if first != second {
		t.Error("expected the cached snapshot instance on the second fetch")
	}
}

func TestFileCanonStore_CancelledContext(t *testing.T) {
	s := NewFileCanonStore(writeCanon(t, canonYAML), nil, 0)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := s.GetTaxonomySnapshot(ctx, ""); err == nil {
		t.Error("expected error for a cancelled context")
	}
}
