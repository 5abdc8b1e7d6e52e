package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/maxaizer/jobboard/internal/config"
	log "github.com/sirupsen/logrus"
)

const ErrorTypeField = "error_type"

const (
	ErrorTypeStoreApi = "store_api"
	ErrorTypeMapping  = "mapping"
	ErrorTypeDb       = "db"
	ErrorTypeHttp     = "http"
)

var logFile *os.File

func Setup(cfg config.LoggerConfig) {
	if err := SetupTo(cfg, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

// SetupTo logs to console instead of stdout, plus the configured file.
func SetupTo(cfg config.LoggerConfig, console io.Writer) error {
	if err := os.MkdirAll(filepath.Dir(cfg.OutputFile), 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(cfg.OutputFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	logFile = file

	log.SetOutput(io.MultiWriter(console, logFile))
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02T15:04:05.000 -0700",
	})
	addPrometheusHook()
	log.SetLevel(levelOf(cfg))

	return nil
}

func levelOf(cfg config.LoggerConfig) log.Level {
	switch cfg.LogLevel {
	case config.LevelDebug:
		return log.DebugLevel
	case config.LevelWarning:
		return log.WarnLevel
	case config.LevelError:
		return log.ErrorLevel
	case config.LevelFatal:
		return log.FatalLevel
	default:
		return log.InfoLevel
	}
}

func Cleanup() {
	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}
}
