package storage

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/tariquek-git/CommonJobs/internal/model"
)

// FileJobStore persists the posting collection as a JSON document. Writes
// go through a temp file and an atomic rename so a crash mid-write never
// leaves a truncated document behind.
type FileJobStore struct {
	path     string
	tempPath string
	mu       sync.Mutex
}

// NewFileJobStore builds a store over the given file path. The file is
// created (with the seed dataset) on first access, not here.
func NewFileJobStore(path string) *FileJobStore {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	return &FileJobStore{
		path:     abs,
		tempPath: abs + ".tmp",
	}
}

// List returns a snapshot copy of all postings, regardless of status.
func (s *FileJobStore) List(ctx context.Context) ([]model.JobPosting, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.load()
}

// Mutate runs fn against a working copy of the collection and persists the
// result. Calls are serialized; a failed write still releases the queue.
func (s *FileJobStore) Mutate(ctx context.Context, fn func(jobs *[]model.JobPosting) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	jobs, err := s.load()
	if err != nil {
		return err
	}
	if err := fn(&jobs); err != nil {
		return err
	}
	return s.write(jobs)
}

// load reads the collection from disk, self-seeding on a missing or
// corrupt file.
func (s *FileJobStore) load() ([]model.JobPosting, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return s.seed()
	}

	var jobs []model.JobPosting
	if err := json.Unmarshal(data, &jobs); err != nil || jobs == nil {
		return s.seed()
	}
	return jobs, nil
}

func (s *FileJobStore) seed() ([]model.JobPosting, error) {
	jobs := SeedJobs(time.Now())
	if err := s.write(jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

func (s *FileJobStore) write(jobs []model.JobPosting) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return storageErr("create data dir", err)
	}

	payload, err := json.MarshalIndent(jobs, "", "  ")
	if err != nil {
		return storageErr("encode jobs", err)
	}
	if err := os.WriteFile(s.tempPath, payload, 0o644); err != nil {
		return storageErr("write temp file", err)
	}
	if err := os.Rename(s.tempPath, s.path); err != nil {
		return storageErr("replace data file", err)
	}
	return nil
}
