package storage

import (
	"context"
	"encoding/json"
	"sync"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tariquek-git/CommonJobs/internal/model"
)

// upsertChunkSize keeps each batched write under the backend's per-request
// payload limit.
const upsertChunkSize = 250

// GormJobStore persists each posting as a row holding the full JSON payload
// plus denormalized columns for the fields queries read without opening the
// payload.
type GormJobStore struct {
	db *gorm.DB
	mu sync.Mutex
}

// NewGormJobStore wraps an open gorm connection. Migration is the factory's
// job, not the store's.
func NewGormJobStore(db *gorm.DB) *GormJobStore {
	return &GormJobStore{db: db}
}

// List returns a snapshot of all postings ordered by posted date descending.
func (s *GormJobStore) List(ctx context.Context) ([]model.JobPosting, error) {
	var rows []model.JobRow
	if err := s.db.WithContext(ctx).Order("posted_date DESC").Find(&rows).Error; err != nil {
		return nil, storageErr("load jobs", err)
	}

	jobs := make([]model.JobPosting, 0, len(rows))
	for _, row := range rows {
		jobs = append(jobs, jobFromRow(row))
	}
	return jobs, nil
}

// Mutate loads a snapshot, runs fn on a working copy, then diffs the copy
// against the snapshot by id: changed rows are upserted and disappeared ids
// deleted, both in chunks. Serialization is per store instance; cross
// instance consistency relies on the table's own transactional upserts.
func (s *GormJobStore) Mutate(ctx context.Context, fn func(jobs *[]model.JobPosting) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot, err := s.List(ctx)
	if err != nil {
		return err
	}

	working := model.CloneJobs(snapshot)
	if err := fn(&working); err != nil {
		return err
	}

	rows := make([]model.JobRow, 0, len(working))
	for _, job := range working {
		row, err := jobToRow(job)
		if err != nil {
			return err
		}
		rows = append(rows, row)
	}

	db := s.db.WithContext(ctx)
	for _, batch := range chunkRows(rows, upsertChunkSize) {
		if err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).Create(&batch).Error; err != nil {
			return storageErr("upsert jobs", err)
		}
	}

	nextIDs := make(map[string]struct{}, len(working))
	for _, job := range working {
		nextIDs[job.ID] = struct{}{}
	}
	var removed []string
	for _, job := range snapshot {
		if _, kept := nextIDs[job.ID]; !kept {
			removed = append(removed, job.ID)
		}
	}

	for _, batch := range chunkIDs(removed, upsertChunkSize) {
		if err := db.Where("id IN ?", batch).Delete(&model.JobRow{}).Error; err != nil {
			return storageErr("delete removed jobs", err)
		}
	}

	return nil
}

func jobToRow(job model.JobPosting) (model.JobRow, error) {
	payload, err := json.Marshal(job)
	if err != nil {
		return model.JobRow{}, storageErr("encode job payload", err)
	}
	return model.JobRow{
		ID:         job.ID,
		Payload:    payload,
		Status:     string(job.Status),
		SourceType: string(job.SourceType),
		IsVerified: job.IsVerified,
		PostedDate: job.PostedDate,
		Tags:       job.Tags,
	}, nil
}

// jobFromRow rebuilds a posting from its payload, falling back to the
// denormalized columns when the payload is missing a lifecycle field.
func jobFromRow(row model.JobRow) model.JobPosting {
	var job model.JobPosting
	_ = json.Unmarshal(row.Payload, &job)

	job.ID = row.ID
	if job.Status == "" {
		job.Status = model.JobStatus(row.Status)
	}
	if job.SourceType == "" {
		job.SourceType = model.JobSourceType(row.SourceType)
	}
	if job.PostedDate.IsZero() {
		job.PostedDate = row.PostedDate
	}
	if job.Tags == nil && len(row.Tags) > 0 {
		job.Tags = append([]string(nil), row.Tags...)
	}
	if job.Clicks < 0 {
		job.Clicks = 0
	}
	return job
}

func chunkRows(rows []model.JobRow, size int) [][]model.JobRow {
	if len(rows) == 0 {
		return nil
	}
	if len(rows) <= size {
		return [][]model.JobRow{rows}
	}
	var out [][]model.JobRow
	for start := 0; start < len(rows); start += size {
		end := start + size
		if end > len(rows) {
			end = len(rows)
		}
		out = append(out, rows[start:end])
	}
	return out
}

func chunkIDs(ids []string, size int) [][]string {
	if len(ids) == 0 {
		return nil
	}
	if len(ids) <= size {
		return [][]string{ids}
	}
	var out [][]string
	for start := 0; start < len(ids); start += size {
		end := start + size
		if end > len(ids) {
			end = len(ids)
		}
		out = append(out, ids[start:end])
	}
	return out
}
