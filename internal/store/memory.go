package store

import (
	"bufio"
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// MemoryStore supplies accumulated, previously-learned preference
// statements for a user. Purely additive context: an empty result is
// never an error, and the engine does not require it for correctness.
// Writes are an entirely separate, external responsibility.
type MemoryStore interface {
	GetContextForUser(ctx context.Context, userID string) ([]string, error)
}

// FileMemoryStore reads one statement per line from <dir>/<user>.txt
type FileMemoryStore struct {
	dir string
}

// NewFileMemoryStore creates a memory store over a directory
func NewFileMemoryStore(dir string) *FileMemoryStore {
	return &FileMemoryStore{dir: dir}
}

// GetContextForUser returns the user's accumulated statements. A
// missing file means no accumulated context, not a failure.
func (s *FileMemoryStore) GetContextForUser(ctx context.Context, userID string) ([]string, error) {
	if userID == "" {
		return nil, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(filepath.Join(s.dir, userID+".txt"))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	defer f.Close()

	var statements []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		statements = append(statements, line)
	}
	return statements, scanner.Err()
}
