package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/maxaizer/jobboard/internal/config"
	"github.com/maxaizer/jobboard/internal/domain/models"
	"github.com/maxaizer/jobboard/internal/entities"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockJobs struct {
	mock.Mock
}

func (m *mockJobs) ListActiveJobs(ctx context.Context) []models.Job {
	return m.Called(ctx).Get(0).([]models.Job)
}

func (m *mockJobs) GetJob(ctx context.Context, id string) *models.Job {
	job, _ := m.Called(ctx, id).Get(0).(*models.Job)
	return job
}

type mockSnapshot struct {
	mock.Mock
}

func (m *mockSnapshot) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockSnapshot) Latest(ctx context.Context) (*entities.SyncRun, error) {
	args := m.Called(ctx)
	run, _ := args.Get(0).(*entities.SyncRun)
	return run, args.Error(1)
}

func yearly(amount float64) *models.Salary {
	return &models.Salary{Max: lo.ToPtr(amount), Currency: models.USD, Unit: models.Year}
}

func serve(t *testing.T, jobs *mockJobs, target string) *httptest.ResponseRecorder {
	t.Helper()
	server := NewServer(config.ServerConfig{Port: 8080}, jobs)
	recorder := httptest.NewRecorder()
	server.Handler().ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, target, nil))
	return recorder
}

func decode[T any](t *testing.T, recorder *httptest.ResponseRecorder) T {
	t.Helper()
	var value T
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &value))
	return value
}

func Test_ListJobs_ShouldReturnJobsWithSalaryDisplay(t *testing.T) {
	jobs := &mockJobs{}
	jobs.On("ListActiveJobs", mock.Anything).Return([]models.Job{
		{ID: "rec1", Title: "Engineer", Salary: yearly(80000)},
		{ID: "rec2", Title: "Designer"},
	})

	recorder := serve(t, jobs, "/jobs")

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"))
	body := decode[[]map[string]any](t, recorder)
	require.Len(t, body, 2)
	assert.Equal(t, "rec1", body[0]["id"])
	assert.Equal(t, "$80k/year", body[0]["salary_display"])
	assert.Equal(t, "Not specified", body[1]["salary_display"])
	assert.Equal(t, float64(-1), body[1]["annualized_salary"])
}

func Test_ListJobs_WhenEmpty_ShouldReturnEmptyArray(t *testing.T) {
	jobs := &mockJobs{}
	jobs.On("ListActiveJobs", mock.Anything).Return([]models.Job{})

	recorder := serve(t, jobs, "/jobs")

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, "[]", recorder.Body.String())
}

func Test_ListJobs_SortBySalary(t *testing.T) {
	jobs := &mockJobs{}
	jobs.On("ListActiveJobs", mock.Anything).Return([]models.Job{
		{ID: "none"},
		{ID: "low", Salary: yearly(40000)},
		{ID: "high", Salary: yearly(150000)},
	})

	body := decode[[]map[string]any](t, serve(t, jobs, "/jobs?sort=salary"))

	ids := lo.Map(body, func(job map[string]any, _ int) any { return job["id"] })
	assert.Equal(t, []any{"high", "low", "none"}, ids)
}

func Test_ListJobs_WhenSortUnknown_ShouldReturnBadRequest(t *testing.T) {
	recorder := serve(t, &mockJobs{}, "/jobs?sort=title")

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func Test_GetJob(t *testing.T) {
	jobs := &mockJobs{}
	jobs.On("GetJob", mock.Anything, "rec1").Return(&models.Job{ID: "rec1", Title: "Engineer"})
	jobs.On("GetJob", mock.Anything, "recX").Return(nil)

	recorder := serve(t, jobs, "/jobs/rec1")
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "Engineer", decode[map[string]any](t, recorder)["title"])

	recorder = serve(t, jobs, "/jobs/recX")
	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Equal(t, "job not found", decode[map[string]any](t, recorder)["error"])
}

func Test_Healthz(t *testing.T) {
	recorder := serve(t, &mockJobs{}, "/healthz")

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"status":"ok"}`, recorder.Body.String())
}

func Test_Healthz_WithSnapshot_ShouldReportCountAndLatestRun(t *testing.T) {
	startedAt := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	snapshot := &mockSnapshot{}
	snapshot.On("Count", mock.Anything).Return(int64(42), nil)
	snapshot.On("Latest", mock.Anything).Return(&entities.SyncRun{
		ID: "run-2", StartedAt: startedAt, FinishedAt: startedAt.Add(3 * time.Second),
		JobsCount: 42,
	}, nil)

	server := NewServer(config.ServerConfig{Port: 8080}, &mockJobs{})
	server.SetSnapshot(snapshot, snapshot)
	recorder := httptest.NewRecorder()
	server.Handler().ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	require.Equal(t, http.StatusOK, recorder.Code)
	body := decode[map[string]any](t, recorder)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, float64(42), body["snapshot_jobs"])
	lastSync := body["last_sync"].(map[string]any)
	assert.Equal(t, "run-2", lastSync["run_id"])
	assert.Equal(t, true, lastSync["succeeded"])
	assert.Equal(t, "2024-05-01T12:00:00Z", lastSync["started_at"])
}

func Test_Healthz_BeforeFirstSync_ShouldOmitLastSync(t *testing.T) {
	snapshot := &mockSnapshot{}
	snapshot.On("Count", mock.Anything).Return(int64(0), nil)
	snapshot.On("Latest", mock.Anything).Return(nil, nil)

	server := NewServer(config.ServerConfig{Port: 8080}, &mockJobs{})
	server.SetSnapshot(snapshot, snapshot)
	recorder := httptest.NewRecorder()
	server.Handler().ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"status":"ok","snapshot_jobs":0}`, recorder.Body.String())
}

func Test_Healthz_WhenSnapshotFails_ShouldReturnServiceUnavailable(t *testing.T) {
	snapshot := &mockSnapshot{}
	snapshot.On("Count", mock.Anything).Return(int64(0), errors.New("database is locked"))

	server := NewServer(config.ServerConfig{Port: 8080}, &mockJobs{})
	server.SetSnapshot(snapshot, snapshot)
	recorder := httptest.NewRecorder()
	server.Handler().ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)
	snapshot.AssertNotCalled(t, "Latest", mock.Anything)
}

func Test_Metrics_ShouldExposeCollectors(t *testing.T) {
	recorder := serve(t, &mockJobs{}, "/metrics")

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "jobboard_synced_jobs")
}
