package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/draftroom/canonlens/internal/errs"
	"github.com/draftroom/canonlens/internal/model"
)

// ProfileStore supplies declared-position statements for alignment
// scoring. May fail with NotFoundError.
type ProfileStore interface {
	FetchProfile(ctx context.Context, profileID string) (*model.Profile, error)
}

// FileProfileStore reads profiles from <dir>/<id>.yaml
type FileProfileStore struct {
	dir string
}

// NewFileProfileStore creates a profile store over a directory
func NewFileProfileStore(dir string) *FileProfileStore {
	return &FileProfileStore{dir: dir}
}

// FetchProfile loads a profile by id
func (s *FileProfileStore) FetchProfile(ctx context.Context, profileID string) (*model.Profile, error) {
	if profileID == "" {
		return nil, &errs.ValidationError{Msg: "profile id is empty"}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path := filepath.Join(s.dir, profileID+".yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &errs.NotFoundError{Kind: "profile", ID: profileID}
		}
		return nil, fmt.Errorf("read profile %s: %w", path, err)
	}

	var profile model.Profile
	if err := yaml.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("parse profile %s: %w", path, err)
	}
	if profile.ID == "" {
		profile.ID = profileID
	}
	return &profile, nil
}
