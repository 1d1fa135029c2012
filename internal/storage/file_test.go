package storage

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/tariquek-git/CommonJobs/internal/model"
)

func newFileStore(t *testing.T) *FileJobStore {
	t.Helper()
	return NewFileJobStore(filepath.Join(t.TempDir(), "data", "jobs.json"))
}

func TestFileJobStore_SeedsOnMissingFile(t *testing.T) {
	store := newFileStore(t)

	jobs, err := store.List(context.Background())
	assert.NoError(t, err)
	assert.Len(t, jobs, 2)
	assert.Equal(t, "seed-1", jobs[0].ID)

	// The seed must now exist on disk.
	_, err = os.Stat(store.path)
	assert.NoError(t, err)
}

func TestFileJobStore_SeedsOnCorruptFile(t *testing.T) {
	store := newFileStore(t)
	assert.NoError(t, os.MkdirAll(filepath.Dir(store.path), 0o755))
	assert.NoError(t, os.WriteFile(store.path, []byte("{not json"), 0o644))

	jobs, err := store.List(context.Background())
	assert.NoError(t, err)
	assert.Len(t, jobs, 2)
}

func TestFileJobStore_MutateRoundTrip(t *testing.T) {
	store := newFileStore(t)

	created := model.JobPosting{
		ID:          "new-1",
		CompanyName: "Acme",
		RoleTitle:   "Analyst",
		PostedDate:  time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC),
		Status:      model.StatusPending,
		SourceType:  model.SourceDirect,
		Tags:        []string{"Payments"},
	}
	err := store.Mutate(context.Background(), func(jobs *[]model.JobPosting) error {
		*jobs = append([]model.JobPosting{created}, *jobs...)
		return nil
	})
	assert.NoError(t, err)

	// A fresh store over the same path sees the persisted state.
	reopened := NewFileJobStore(store.path)
	jobs, err := reopened.List(context.Background())
	assert.NoError(t, err)
	assert.Len(t, jobs, 3)
	assert.Equal(t, created, jobs[0])
}

func TestFileJobStore_FailedMutateKeepsState(t *testing.T) {
	store := newFileStore(t)
	before, err := store.List(context.Background())
	assert.NoError(t, err)

	err = store.Mutate(context.Background(), func(jobs *[]model.JobPosting) error {
		*jobs = nil
		return assert.AnError
	})
	assert.ErrorIs(t, err, assert.AnError)

	after, err := store.List(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestFileJobStore_SerializesConcurrentMutates(t *testing.T) {
	store := newFileStore(t)

	const n = 20
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := store.Mutate(context.Background(), func(jobs *[]model.JobPosting) error {
				// Widen the race window so lost updates would show up.
				count := len(*jobs)
				time.Sleep(time.Millisecond)
				*jobs = append(*jobs, model.JobPosting{
					ID:         "bulk-" + string(rune('a'+count%26)) + "-" + time.Now().Format("150405.000000000"),
					Status:     model.StatusPending,
					SourceType: model.SourceDirect,
					PostedDate: time.Now(),
				})
				return nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	jobs, err := store.List(context.Background())
	assert.NoError(t, err)
	assert.Len(t, jobs, 2+n)
}

func TestFileClickStore_IncrementAndGet(t *testing.T) {
	store := NewFileClickStore(filepath.Join(t.TempDir(), "clicks.json"))
	ctx := context.Background()

	n, err := store.Get(ctx, "j1")
	assert.NoError(t, err)
	assert.Equal(t, int64(0), n)

	for i := 0; i < 3; i++ {
		n, err = store.Increment(ctx, "j1")
		assert.NoError(t, err)
	}
	assert.Equal(t, int64(3), n)

	_, err = store.Increment(ctx, "j2")
	assert.NoError(t, err)

	counts, err := store.GetMany(ctx, []string{"j1", "j2", "missing"})
	assert.NoError(t, err)
	assert.Equal(t, int64(3), counts["j1"])
	assert.Equal(t, int64(1), counts["j2"])
	assert.Equal(t, int64(0), counts["missing"])
}

func TestFileClickStore_ConcurrentIncrements(t *testing.T) {
	store := NewFileClickStore(filepath.Join(t.TempDir(), "clicks.json"))
	ctx := context.Background()

	const n = 25
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := store.Increment(ctx, "j1")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	count, err := store.Get(ctx, "j1")
	assert.NoError(t, err)
	assert.Equal(t, int64(n), count)
}
