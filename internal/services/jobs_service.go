package services

import (
	"context"
	"time"

	"github.com/maxaizer/jobboard/internal/clients/airtable"
	"github.com/maxaizer/jobboard/internal/domain/models"
	"github.com/maxaizer/jobboard/internal/logger"
	"github.com/maxaizer/jobboard/internal/mapper"
	"github.com/maxaizer/jobboard/internal/metrics"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const activeJobsFormula = "{" + mapper.FieldStatus + "} = 'active'"

type jobStore interface {
	ListRecords(ctx context.Context, parameters airtable.ListParameters) ([]airtable.Record, error)
	GetRecord(ctx context.Context, id string) (airtable.Record, error)
}

// JobsService reads postings from the record store and maps them to jobs.
// It keeps no state between calls.
type JobsService struct {
	store    jobStore
	mapper   *mapper.Mapper
	pageSize int
}

func NewJobsService(store jobStore, m *mapper.Mapper) *JobsService {
	if m == nil {
		m = mapper.New(mapper.Unified)
	}
	return &JobsService{store: store, mapper: m}
}

// SetPageSize sets the store page size; 0 leaves it to the store.
func (s *JobsService) SetPageSize(pageSize int) {
	s.pageSize = pageSize
}

// FetchActiveJobs returns every active job, newest first. Records that fail
// mapping are skipped and reported; store errors are returned.
func (s *JobsService) FetchActiveJobs(ctx context.Context) ([]models.Job, error) {
	params := airtable.ListParameters{
		FilterByFormula: activeJobsFormula,
		Sort:            []airtable.Sort{{Field: mapper.FieldPostedDate, Direction: airtable.Desc}},
		PageSize:        s.pageSize,
	}

	start := time.Now()
	records, err := s.store.ListRecords(ctx, params)
	metrics.StoreRequestDuration.WithLabelValues("list").Observe(time.Since(start).Seconds())
	if err != nil {
		return nil, errors.Wrap(err, "failed to list active jobs")
	}

	jobs := make([]models.Job, 0, len(records))
	for _, record := range records {
		job, report, err := s.mapper.Map(record, mapper.Listing)
		observeReport(report)
		if err != nil {
			metrics.MappedRecordsCounter.WithLabelValues(mapper.Listing.String(), "invalid").Inc()
			log.WithField(logger.ErrorTypeField, logger.ErrorTypeMapping).
				Warnf("skipping record %s: %v", record.ID, err)
			continue
		}
		metrics.MappedRecordsCounter.WithLabelValues(mapper.Listing.String(), "ok").Inc()
		jobs = append(jobs, job)
	}

	return jobs, nil
}

// ListActiveJobs never fails: store errors are logged and yield an empty list.
func (s *JobsService) ListActiveJobs(ctx context.Context) []models.Job {
	jobs, err := s.FetchActiveJobs(ctx)
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeStoreApi).Errorf("error fetching jobs: %v", err)
		return []models.Job{}
	}
	return jobs
}

// GetJob returns nil when the job does not exist, cannot be mapped or the
// store is unreachable. The cause is logged.
func (s *JobsService) GetJob(ctx context.Context, id string) *models.Job {
	start := time.Now()
	record, err := s.store.GetRecord(ctx, id)
	metrics.StoreRequestDuration.WithLabelValues("get").Observe(time.Since(start).Seconds())
	if err != nil {
		if errors.Is(err, airtable.ErrNotFound) {
			log.Infof("job %q not found", id)
		} else {
			log.WithField(logger.ErrorTypeField, logger.ErrorTypeStoreApi).Errorf("error fetching job %q: %v", id, err)
		}
		return nil
	}

	job, report, err := s.mapper.Map(record, mapper.Single)
	observeReport(report)
	if err != nil {
		switch {
		case errors.Is(err, mapper.ErrInactive):
			metrics.MappedRecordsCounter.WithLabelValues(mapper.Single.String(), "inactive").Inc()
			log.Infof("job %q is not active", id)
		default:
			metrics.MappedRecordsCounter.WithLabelValues(mapper.Single.String(), "invalid").Inc()
			log.WithField(logger.ErrorTypeField, logger.ErrorTypeMapping).Errorf("invalid job %q: %v", id, err)
		}
		return nil
	}

	metrics.MappedRecordsCounter.WithLabelValues(mapper.Single.String(), "ok").Inc()
	return &job
}

// TestConnection reads at most one record to check credentials and access.
func (s *JobsService) TestConnection(ctx context.Context) bool {
	records, err := s.store.ListRecords(ctx, airtable.ListParameters{MaxRecords: 1})
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeStoreApi).Errorf("store connection failed: %v", err)
		return false
	}

	log.Infof("store connection successful, sample records: %d", len(records))
	return true
}

func observeReport(report mapper.Report) {
	for _, outcome := range report.Defaulted() {
		metrics.FieldDefaultsCounter.WithLabelValues(outcome.Field, outcome.Cause.String()).Inc()
	}
	if report.DroppedLanguages > 0 {
		metrics.DroppedLanguagesCounter.Add(float64(report.DroppedLanguages))
	}
}
