package storage

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

// FileClickStore persists click counters as a jobID → count JSON object,
// separate from the posting file so click traffic never rewrites postings.
type FileClickStore struct {
	path     string
	tempPath string
	mu       sync.Mutex
}

// NewFileClickStore builds a click store over the given file path.
func NewFileClickStore(path string) *FileClickStore {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	return &FileClickStore{
		path:     abs,
		tempPath: abs + ".tmp",
	}
}

// Get returns the current count for one posting; unknown ids read as 0.
func (s *FileClickStore) Get(ctx context.Context, jobID string) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	store := s.load()
	return store[jobID], nil
}

// GetMany returns counts for a batch of posting ids, 0 for unknown ids.
func (s *FileClickStore) GetMany(ctx context.Context, jobIDs []string) (map[string]int64, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	store := s.load()
	out := make(map[string]int64, len(jobIDs))
	for _, id := range jobIDs {
		out[id] = store[id]
	}
	return out, nil
}

// Increment bumps the counter for one posting and returns the new value.
// Increments are serialized so concurrent clicks are never lost.
func (s *FileClickStore) Increment(ctx context.Context, jobID string) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	store := s.load()
	next := store[jobID] + 1
	store[jobID] = next
	if err := s.write(store); err != nil {
		return 0, err
	}
	return next, nil
}

// load reads the counter map, dropping malformed entries. A missing or
// corrupt file reads as empty; counters are recreated on first increment.
func (s *FileClickStore) load() map[string]int64 {
	out := map[string]int64{}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return out
	}

	var raw map[string]float64
	if err := json.Unmarshal(data, &raw); err != nil {
		return out
	}
	for id, count := range raw {
		if count >= 0 {
			out[id] = int64(count)
		}
	}
	return out
}

func (s *FileClickStore) write(store map[string]int64) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return storageErr("create data dir", err)
	}

	payload, err := json.MarshalIndent(store, "", "  ")
	if err != nil {
		return storageErr("encode clicks", err)
	}
	if err := os.WriteFile(s.tempPath, payload, 0o644); err != nil {
		return storageErr("write temp file", err)
	}
	if err := os.Rename(s.tempPath, s.path); err != nil {
		return storageErr("replace click file", err)
	}
	return nil
}
