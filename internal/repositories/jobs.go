package repositories

import (
	"context"
	"time"

	"github.com/maxaizer/jobboard/internal/domain/models"
	"github.com/maxaizer/jobboard/internal/entities"
	"github.com/maxaizer/jobboard/internal/salary"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"gorm.io/gorm"
)

const insertBatchSize = 100

// Jobs stores the latest listing so it can be served without the record store.
type Jobs struct {
	db *gorm.DB
}

func NewJobsRepository(db *gorm.DB) *Jobs {
	return &Jobs{db: db}
}

// Replace swaps the whole snapshot for jobs in one transaction, keeping their order.
func (j *Jobs) Replace(ctx context.Context, runID string, syncedAt time.Time, jobs []models.Job) error {
	snapshots := lo.Map(jobs, func(job models.Job, position int) entities.JobSnapshot {
		return entities.JobSnapshot{
			JobID:            job.ID,
			RunID:            runID,
			Position:         position,
			Title:            job.Title,
			Company:          job.Company,
			PostedDate:       job.PostedDate,
			AnnualizedSalary: salary.Annualize(job.Salary),
			Job:              job,
			SyncedAt:         syncedAt,
		}
	})

	return j.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&entities.JobSnapshot{}).Error; err != nil {
			return errors.Wrap(err, "failed to clear snapshot")
		}
		if len(snapshots) == 0 {
			return nil
		}
		return errors.Wrap(tx.CreateInBatches(&snapshots, insertBatchSize).Error, "failed to store snapshot")
	})
}

// GetAll returns the snapshot in listing order (newest posting first).
func (j *Jobs) GetAll(ctx context.Context) ([]models.Job, error) {
	return j.find(ctx, "position")
}

// GetAllBySalary orders by annualized salary, highest first, unspecified last.
func (j *Jobs) GetAllBySalary(ctx context.Context) ([]models.Job, error) {
	return j.find(ctx, "annualized_salary DESC, position")
}

func (j *Jobs) find(ctx context.Context, order string) ([]models.Job, error) {
	var snapshots []entities.JobSnapshot
	if err := j.db.WithContext(ctx).Order(order).Find(&snapshots).Error; err != nil {
		return nil, err
	}

	return lo.Map(snapshots, func(snapshot entities.JobSnapshot, _ int) models.Job {
		return snapshot.Job
	}), nil
}

// GetByID returns nil, nil when the job is not in the snapshot.
func (j *Jobs) GetByID(ctx context.Context, id string) (*models.Job, error) {
	var snapshot entities.JobSnapshot
	err := j.db.WithContext(ctx).First(&snapshot, "job_id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &snapshot.Job, nil
}

func (j *Jobs) Count(ctx context.Context) (int64, error) {
	var count int64
	err := j.db.WithContext(ctx).Model(&entities.JobSnapshot{}).Count(&count).Error
	return count, err
}
