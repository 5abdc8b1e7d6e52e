// Package api serves the canonical jobs as JSON over HTTP.
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/maxaizer/jobboard/internal/config"
	"github.com/maxaizer/jobboard/internal/domain/models"
	"github.com/maxaizer/jobboard/internal/entities"
	"github.com/maxaizer/jobboard/internal/logger"
	"github.com/maxaizer/jobboard/internal/metrics"
	"github.com/maxaizer/jobboard/internal/salary"
	log "github.com/sirupsen/logrus"
)

type jobsReader interface {
	ListActiveJobs(ctx context.Context) []models.Job
	GetJob(ctx context.Context, id string) *models.Job
}

type snapshotCounter interface {
	Count(ctx context.Context) (int64, error)
}

type syncRunsReader interface {
	Latest(ctx context.Context) (*entities.SyncRun, error)
}

type Server struct {
	jobs       jobsReader
	snapshot   snapshotCounter
	runs       syncRunsReader
	httpServer *http.Server
}

func NewServer(cfg config.ServerConfig, jobs jobsReader) *Server {
	s := &Server{jobs: jobs}
	s.httpServer = &http.Server{
		Addr:         cfg.Address(),
		Handler:      s.Handler(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return s
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /jobs", s.handleListJobs)
	mux.HandleFunc("GET /jobs/{id}", s.handleGetJob)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.Handle("GET /metrics", metrics.Handler())
	return withLogging(mux)
}

// SetSnapshot makes /healthz report the local snapshot size and the latest
// sync run.
func (s *Server) SetSnapshot(snapshot snapshotCounter, runs syncRunsReader) {
	s.snapshot = snapshot
	s.runs = runs
}

// Start blocks until the server stops. It returns nil after Shutdown.
func (s *Server) Start() error {
	log.Infof("http server listening on %s", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// jobView adds display values to a job.
type jobView struct {
	models.Job
	SalaryDisplay    string  `json:"salary_display"`
	AnnualizedSalary float64 `json:"annualized_salary"`
}

func newJobView(job models.Job) jobView {
	return jobView{
		Job:              job,
		SalaryDisplay:    salary.Format(job.Salary),
		AnnualizedSalary: salary.Annualize(job.Salary),
	}
}

func (s *Server) handleListJobs(w http.ResponseWriter, r *http.Request) {
	order := r.URL.Query().Get("sort")
	if order != "" && order != "date" && order != "salary" {
		errorResponse(w, http.StatusBadRequest, "sort must be date or salary")
		return
	}

	jobs := s.jobs.ListActiveJobs(r.Context())
	if order == "salary" {
		salary.SortByAnnualized(jobs)
	}

	views := make([]jobView, 0, len(jobs))
	for _, job := range jobs {
		views = append(views, newJobView(job))
	}
	jsonResponse(w, http.StatusOK, views)
}

func (s *Server) handleGetJob(w http.ResponseWriter, r *http.Request) {
	job := s.jobs.GetJob(r.Context(), r.PathValue("id"))
	if job == nil {
		errorResponse(w, http.StatusNotFound, "job not found")
		return
	}
	jsonResponse(w, http.StatusOK, newJobView(*job))
}

type healthResponse struct {
	Status       string       `json:"status"`
	SnapshotJobs *int64       `json:"snapshot_jobs,omitempty"`
	LastSync     *syncRunView `json:"last_sync,omitempty"`
}

type syncRunView struct {
	RunID      string    `json:"run_id"`
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
	Jobs       int       `json:"jobs"`
	Succeeded  bool      `json:"succeeded"`
	Error      string    `json:"error,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	response := healthResponse{Status: "ok"}

	if s.snapshot != nil {
		count, err := s.snapshot.Count(r.Context())
		if err != nil {
			log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).Errorf("error counting snapshot jobs: %v", err)
			errorResponse(w, http.StatusServiceUnavailable, "snapshot unavailable")
			return
		}
		response.SnapshotJobs = &count
	}

	if s.runs != nil {
		run, err := s.runs.Latest(r.Context())
		if err != nil {
			log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).Errorf("error reading latest sync run: %v", err)
			errorResponse(w, http.StatusServiceUnavailable, "snapshot unavailable")
			return
		}
		if run != nil {
			response.LastSync = &syncRunView{
				RunID:      run.ID,
				StartedAt:  run.StartedAt,
				FinishedAt: run.FinishedAt,
				Jobs:       run.JobsCount,
				Succeeded:  run.Succeeded(),
				Error:      run.Error,
			}
		}
	}

	jsonResponse(w, http.StatusOK, response)
}

func jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeHttp).Errorf("error encoding JSON response: %v", err)
	}
}

func errorResponse(w http.ResponseWriter, status int, message string) {
	jsonResponse(w, status, map[string]string{"error": message})
}

func withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Debugf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}
