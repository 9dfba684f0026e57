package archive

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/quill-ui/quill/internal/errors"
)

// DiskStore writes snapshots as JSON files in a local directory.
type DiskStore struct {
	dir     string
	maxSize int64
}

// NewDiskStore creates a DiskStore rooted at dir, creating the
// directory if needed. maxSize bounds the serialized snapshot in
// bytes; 0 means no limit.
func NewDiskStore(dir string, maxSize int64) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, errors.New("Q060").Wrap(err)
	}
	return &DiskStore{dir: dir, maxSize: maxSize}, nil
}

// Write serializes the snapshot to a timestamped file and returns its
// path.
func (s *DiskStore) Write(ctx context.Context, snap *Snapshot) (string, error) {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return "", errors.New("Q060").Wrap(err)
	}
	data = append(data, '\n')

	if s.maxSize > 0 && int64(len(data)) > s.maxSize {
		return "", errors.New("Q061").
			WithDetail("Snapshot is " + sizeString(int64(len(data))) + ", limit is " + sizeString(s.maxSize))
	}

	path := filepath.Join(s.dir, snapshotName(snap))
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", errors.New("Q060").Wrap(err)
	}
	return path, nil
}

// Read loads a snapshot previously written by this store.
func (s *DiskStore) Read(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New("Q060").Wrap(err)
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, errors.New("Q060").Wrap(err)
	}
	return &snap, nil
}
