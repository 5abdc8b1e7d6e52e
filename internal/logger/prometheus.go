package logger

import (
	"sync"

	"github.com/maxaizer/jobboard/internal/metrics"
	log "github.com/sirupsen/logrus"
)

// prometheusHook counts error entries by their error_type field.
type prometheusHook struct{}

func (h *prometheusHook) Fire(entry *log.Entry) error {
	errorType, ok := entry.Data[ErrorTypeField].(string)
	if !ok {
		errorType = "unknown"
	}

	metrics.ErrorsCounter.WithLabelValues(errorType).Inc()
	return nil
}

func (h *prometheusHook) Levels() []log.Level {
	return []log.Level{
		log.ErrorLevel,
		log.FatalLevel,
		log.PanicLevel,
	}
}

var hookOnce sync.Once

func addPrometheusHook() {
	hookOnce.Do(func() {
		log.AddHook(&prometheusHook{})
	})
}
