package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	ErrorsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jobboard_errors_total",
			Help: "Total number of occurred errors.",
		},
		[]string{"type"},
	)
	StoreRequestDuration = prometheus.NewSummaryVec(
		prometheus.SummaryOpts{
			Name:       "jobboard_store_request_duration_seconds",
			Help:       "Duration of record store operations, all pages included.",
			Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001},
		},
		[]string{"operation"},
	)
	MappedRecordsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jobboard_records_mapped_total",
			Help: "Total number of store records passed through the mapper, by path and result.",
		},
		[]string{"path", "result"},
	)
	FieldDefaultsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jobboard_field_defaults_total",
			Help: "Total number of fields that fell back to a default value, by field and cause.",
		},
		[]string{"field", "cause"},
	)
	DroppedLanguagesCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "jobboard_languages_dropped_total",
			Help: "Total number of language entries that matched no known language.",
		},
	)
	CacheLookupsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jobboard_cache_lookups_total",
			Help: "Total number of job cache lookups, by result.",
		},
		[]string{"result"},
	)
	SyncDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "jobboard_sync_duration_seconds",
			Help:    "Duration of each listing snapshot sync in seconds.",
			Buckets: []float64{0.5, 1, 5, 15, 60},
		},
	)
	SyncedJobsGauge = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "jobboard_synced_jobs",
			Help: "Number of active jobs in the latest snapshot.",
		},
	)
)

var registerOnce sync.Once

// Register adds every collector to the default registry. Safe to call more
// than once.
func Register() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			ErrorsCounter,
			StoreRequestDuration,
			MappedRecordsCounter,
			FieldDefaultsCounter,
			DroppedLanguagesCounter,
			CacheLookupsCounter,
			SyncDuration,
			SyncedJobsGauge,
		)
	})
}

func Handler() http.Handler {
	Register()
	return promhttp.Handler()
}
