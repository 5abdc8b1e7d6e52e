package services

import (
	"context"
	"time"

	"github.com/maxaizer/jobboard/internal/clients/airtable"
	"github.com/maxaizer/jobboard/internal/domain/models"
	"github.com/maxaizer/jobboard/internal/entities"
	"github.com/stretchr/testify/mock"
)

type mockJobStore struct {
	mock.Mock
}

func (m *mockJobStore) ListRecords(ctx context.Context, parameters airtable.ListParameters) ([]airtable.Record, error) {
	args := m.Called(ctx, parameters)
	records, _ := args.Get(0).([]airtable.Record)
	return records, args.Error(1)
}

func (m *mockJobStore) GetRecord(ctx context.Context, id string) (airtable.Record, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(airtable.Record), args.Error(1)
}

type mockJobsReader struct {
	mock.Mock
}

func (m *mockJobsReader) ListActiveJobs(ctx context.Context) []models.Job {
	return m.Called(ctx).Get(0).([]models.Job)
}

func (m *mockJobsReader) GetJob(ctx context.Context, id string) *models.Job {
	job, _ := m.Called(ctx, id).Get(0).(*models.Job)
	return job
}

type mockJobsFetcher struct {
	mock.Mock
}

func (m *mockJobsFetcher) FetchActiveJobs(ctx context.Context) ([]models.Job, error) {
	args := m.Called(ctx)
	jobs, _ := args.Get(0).([]models.Job)
	return jobs, args.Error(1)
}

type mockJobsSnapshot struct {
	mock.Mock
}

func (m *mockJobsSnapshot) Replace(ctx context.Context, runID string, syncedAt time.Time, jobs []models.Job) error {
	return m.Called(ctx, runID, syncedAt, jobs).Error(0)
}

type mockSyncRuns struct {
	mock.Mock
}

func (m *mockSyncRuns) Add(ctx context.Context, run entities.SyncRun) error {
	return m.Called(ctx, run).Error(0)
}

func newRecord(id string, overrides map[string]any) airtable.Record {
	fields := map[string]any{
		"title":        "Backend Engineer " + id,
		"company":      "Acme",
		"type":         "Full-time",
		"description":  "About us**Team:**Platform",
		"apply_url":    "https://acme.example/jobs/" + id,
		"posted_date":  "2024-05-01",
		"status":       "active",
		"salary_min":   float64(50000),
		"salary_max":   float64(80000),
		"career_level": "Senior",
		"languages":    []any{"en", "Martian"},
	}
	for key, value := range overrides {
		if value == nil {
			delete(fields, key)
			continue
		}
		fields[key] = value
	}
	return airtable.Record{ID: id, Fields: fields}
}
