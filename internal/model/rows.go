package model

import (
	"time"

	"github.com/lib/pq"
)

// JobRow is the gorm model for the hosted-table backend. The full posting
// travels as an opaque JSON payload; status, source type, verification,
// posted date and tags are denormalized so queries never have to open the
// payload.
type JobRow struct {
	ID         string         `gorm:"primaryKey;type:text" json:"id"`
	Payload    []byte         `gorm:"type:jsonb;not null" json:"payload"`
	Status     string         `gorm:"type:text;index" json:"status"`
	SourceType string         `gorm:"type:text;index" json:"source_type"`
	IsVerified bool           `json:"is_verified"`
	PostedDate time.Time      `gorm:"type:timestamptz;index" json:"posted_date"`
	Tags       pq.StringArray `gorm:"type:text[]" json:"tags"`
}

// TableName overrides gorm's pluralized default.
func (JobRow) TableName() string { return "job_board_jobs" }

// ClickRow maps one posting id to its click counter.
type ClickRow struct {
	JobID  string `gorm:"primaryKey;type:text;column:job_id" json:"job_id"`
	Clicks int64  `gorm:"not null;default:0" json:"clicks"`
}

// TableName overrides gorm's pluralized default.
func (ClickRow) TableName() string { return "job_board_clicks" }

// MigrateAble lists every gorm model handed to AutoMigrate.
var MigrateAble = []interface{}{
	&JobRow{},
	&ClickRow{},
}
