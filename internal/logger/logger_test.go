package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/maxaizer/jobboard/internal/config"
	"github.com/maxaizer/jobboard/internal/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Setup_ShouldWriteToStdoutAndFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "logs", "errors.log")
	var stdout bytes.Buffer

	require.NoError(t, SetupTo(config.LoggerConfig{LogLevel: config.LevelWarning, OutputFile: file}, &stdout))
	defer func() {
		Cleanup()
		log.SetOutput(os.Stderr)
		log.SetLevel(log.InfoLevel)
	}()

	log.Info("hidden")
	log.WithField(ErrorTypeField, ErrorTypeStoreApi).Warn("store is slow")

	assert.NotContains(t, stdout.String(), "hidden")
	assert.Contains(t, stdout.String(), "store is slow")
	assert.Contains(t, stdout.String(), "error_type=store_api")

	content, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Equal(t, stdout.String(), string(content))
}

func Test_PrometheusHook_ShouldCountErrorsByType(t *testing.T) {
	hook := &prometheusHook{}
	before := testutil.ToFloat64(metrics.ErrorsCounter.WithLabelValues(ErrorTypeMapping))
	unknownBefore := testutil.ToFloat64(metrics.ErrorsCounter.WithLabelValues("unknown"))

	require.NoError(t, hook.Fire(log.WithField(ErrorTypeField, ErrorTypeMapping)))
	require.NoError(t, hook.Fire(log.NewEntry(log.StandardLogger())))

	assert.Equal(t, before+1, testutil.ToFloat64(metrics.ErrorsCounter.WithLabelValues(ErrorTypeMapping)))
	assert.Equal(t, unknownBefore+1, testutil.ToFloat64(metrics.ErrorsCounter.WithLabelValues("unknown")))
}

func Test_LevelOf(t *testing.T) {
	assert.Equal(t, log.DebugLevel, levelOf(config.LoggerConfig{LogLevel: config.LevelDebug}))
	assert.Equal(t, log.ErrorLevel, levelOf(config.LoggerConfig{LogLevel: config.LevelError}))
	assert.Equal(t, log.InfoLevel, levelOf(config.LoggerConfig{}))
}
