package repositories

import (
	"context"

	"github.com/maxaizer/jobboard/internal/entities"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type SyncRuns struct {
	db *gorm.DB
}

func NewSyncRunsRepository(db *gorm.DB) *SyncRuns {
	return &SyncRuns{db: db}
}

func (r *SyncRuns) Add(ctx context.Context, run entities.SyncRun) error {
	return r.db.WithContext(ctx).Create(&run).Error
}

// Latest returns nil, nil before the first run.
func (r *SyncRuns) Latest(ctx context.Context) (*entities.SyncRun, error) {
	var run entities.SyncRun
	err := r.db.WithContext(ctx).Order("started_at DESC").First(&run).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &run, nil
}
