package storage

import (
	"context"
	"errors"
	"sync"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tariquek-git/CommonJobs/internal/model"
)

// GormClickStore keeps one counter row per posting id.
type GormClickStore struct {
	db *gorm.DB
	mu sync.Mutex
}

// NewGormClickStore wraps an open gorm connection.
func NewGormClickStore(db *gorm.DB) *GormClickStore {
	return &GormClickStore{db: db}
}

// Get returns the current count for one posting; a missing row reads as 0.
func (s *GormClickStore) Get(ctx context.Context, jobID string) (int64, error) {
	var row model.ClickRow
	err := s.db.WithContext(ctx).Where("job_id = ?", jobID).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, storageErr("load click count", err)
	}
	if row.Clicks < 0 {
		return 0, nil
	}
	return row.Clicks, nil
}

// GetMany returns counts for a batch of posting ids, 0 for missing rows.
func (s *GormClickStore) GetMany(ctx context.Context, jobIDs []string) (map[string]int64, error) {
	out := make(map[string]int64, len(jobIDs))
	for _, id := range jobIDs {
		out[id] = 0
	}
	if len(jobIDs) == 0 {
		return out, nil
	}

	var rows []model.ClickRow
	if err := s.db.WithContext(ctx).Where("job_id IN ?", jobIDs).Find(&rows).Error; err != nil {
		return nil, storageErr("load click counts", err)
	}
	for _, row := range rows {
		if row.Clicks >= 0 {
			out[row.JobID] = row.Clicks
		}
	}
	return out, nil
}

// Increment bumps the counter atomically via an upsert that adds to the
// existing row, then reads the new value back inside the same transaction.
func (s *GormClickStore) Increment(ctx context.Context, jobID string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var next int64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		row := model.ClickRow{JobID: jobID, Clicks: 1}
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "job_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"clicks": gorm.Expr("job_board_clicks.clicks + 1"),
			}),
		}).Create(&row).Error; err != nil {
			return err
		}

		var updated model.ClickRow
		if err := tx.Where("job_id = ?", jobID).First(&updated).Error; err != nil {
			return err
		}
		next = updated.Clicks
		return nil
	})
	if err != nil {
		return 0, storageErr("increment click count", err)
	}
	return next, nil
}
