package services

import (
	"context"
	"sync"
	"time"

	"github.com/asaskevich/EventBus"
	"github.com/google/uuid"
	"github.com/maxaizer/jobboard/internal/domain/models"
	"github.com/maxaizer/jobboard/internal/entities"
	"github.com/maxaizer/jobboard/internal/events"
	"github.com/maxaizer/jobboard/internal/logger"
	"github.com/maxaizer/jobboard/internal/metrics"
	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
)

type jobsFetcher interface {
	FetchActiveJobs(ctx context.Context) ([]models.Job, error)
}

type jobsSnapshot interface {
	Replace(ctx context.Context, runID string, syncedAt time.Time, jobs []models.Job) error
}

type syncRunRepository interface {
	Add(ctx context.Context, run entities.SyncRun) error
}

// JobsSyncer periodically stores the active listing as a local snapshot and
// announces it on the bus. A failed fetch keeps the previous snapshot.
type JobsSyncer struct {
	bus      EventBus.Bus
	fetcher  jobsFetcher
	snapshot jobsSnapshot
	runs     syncRunRepository
	cron     *cron.Cron
	now      func() time.Time

	background sync.WaitGroup
}

func NewJobsSyncer(bus EventBus.Bus, fetcher jobsFetcher, snapshot jobsSnapshot,
	runs syncRunRepository, schedule string) (*JobsSyncer, error) {

	s := &JobsSyncer{
		bus:      bus,
		fetcher:  fetcher,
		snapshot: snapshot,
		runs:     runs,
		cron:     cron.New(),
		now:      time.Now,
	}

	_, err := s.cron.AddFunc(schedule, func() {
		_ = s.Sync(context.Background())
	})
	if err != nil {
		return nil, errors.Wrapf(err, "invalid sync schedule %q", schedule)
	}

	return s, nil
}

func (s *JobsSyncer) Start() {
	s.cron.Start()
	log.Infof("jobs syncer started, next run at %v", s.cron.Entries()[0].Next)
}

// SyncInBackground starts one run outside the schedule.
func (s *JobsSyncer) SyncInBackground(ctx context.Context) {
	s.background.Add(1)
	go func() {
		defer s.background.Done()
		_ = s.Sync(ctx)
	}()
}

// Stop returns once scheduled and background runs have finished.
func (s *JobsSyncer) Stop() {
	<-s.cron.Stop().Done()
	s.background.Wait()
}

// Sync runs one fetch-store-publish cycle. Every run is recorded.
func (s *JobsSyncer) Sync(ctx context.Context) error {
	run := entities.SyncRun{ID: uuid.NewString(), StartedAt: s.now()}

	jobs, err := s.sync(ctx, run)
	run.FinishedAt = s.now()
	run.JobsCount = len(jobs)
	if err != nil {
		run.Error = err.Error()
	}

	if runErr := s.runs.Add(ctx, run); runErr != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).Errorf("failed to record sync run %s: %v", run.ID, runErr)
	}

	duration := run.FinishedAt.Sub(run.StartedAt)
	metrics.SyncDuration.Observe(duration.Seconds())

	if err != nil {
		return err
	}

	metrics.SyncedJobsGauge.Set(float64(len(jobs)))
	log.Infof("sync %s stored %d active jobs in %v", run.ID, len(jobs), duration)

	s.bus.Publish(events.JobsSyncedTopic, events.JobsSynced{
		RunID:    run.ID,
		Jobs:     jobs,
		SyncedAt: run.FinishedAt,
	})
	return nil
}

func (s *JobsSyncer) sync(ctx context.Context, run entities.SyncRun) ([]models.Job, error) {
	jobs, err := s.fetcher.FetchActiveJobs(ctx)
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeStoreApi).Errorf("sync %s: %v", run.ID, err)
		return nil, err
	}

	if err = s.snapshot.Replace(ctx, run.ID, run.StartedAt, jobs); err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).Errorf("sync %s: %v", run.ID, err)
		return nil, err
	}

	return jobs, nil
}
