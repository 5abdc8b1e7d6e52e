package entities

import (
	"time"

	"github.com/maxaizer/jobboard/internal/domain/models"
)

// JobSnapshot is one job of the latest synced listing.
type JobSnapshot struct {
	JobID            string `gorm:"primaryKey"`
	RunID            string `gorm:"index"`
	Position         int
	Title            string
	Company          string
	PostedDate       string
	AnnualizedSalary float64    `gorm:"index"`
	Job              models.Job `gorm:"serializer:json;type:text"`
	SyncedAt         time.Time
}

type SyncRun struct {
	ID         string `gorm:"primaryKey"`
	StartedAt  time.Time
	FinishedAt time.Time
	JobsCount  int
	Error      string
}

func (r SyncRun) Succeeded() bool {
	return r.Error == ""
}
