package expand

import (
	"os"
	"path/filepath"
	"testing"
)

const lexiconYAML = `axes:
  - name: temperature
    poles: [cold, hot]
    entries:
      - term: frost
        pole: cold
        related: [ice, snow]
      - term: heatwave
        pole: hot
        related: [scorching]
`

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lexicon.yaml")
	if err := os.WriteFile(path, []byte(lexiconYAML), 0644); err != nil {
		t.Fatal(err)
	}

	lex, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	axis, pole, related, ok := lex.Lookup("frost")
	if !ok {
		t.Fatal("Lookup(frost) missed")
	}
	if axis != "temperature" || pole != "cold" {
		t.Errorf("frost tagged %s/%s, want temperature/cold", axis, pole)
	}
	if len(related) != 2 {
		t.Errorf("frost related = %v, want two terms", related)
	}
}

func TestLoad_RejectsSinglePoleAxis(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lexicon.yaml")
	bad := "axes:\n  - name: broken\n    poles: [only]\n"
	if err := os.WriteFile(path, []byte(bad), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected error for an axis with one pole")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for a missing lexicon file")
	}
}
