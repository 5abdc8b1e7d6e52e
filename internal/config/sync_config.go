package config

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/spf13/viper"
)

// SyncConfig controls how often listings are refreshed from the store.
type SyncConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Schedule string        `mapstructure:"schedule"`
	CacheTTL time.Duration `mapstructure:"cache_ttl"`
}

func (config *SyncConfig) setDefaults(v *viper.Viper) {
	v.SetDefault("sync.enabled", true)
	v.SetDefault("sync.schedule", "*/5 * * * *")
	v.SetDefault("sync.cache_ttl", 5*time.Minute)
}

func (config *SyncConfig) validate() error {
	var errs []error

	if _, err := cron.ParseStandard(config.Schedule); err != nil {
		errs = append(errs, fmt.Errorf("invalid schedule %q: %w", config.Schedule, err))
	}
	if config.CacheTTL <= 0 {
		errs = append(errs, fmt.Errorf("cache_ttl must be positive"))
	}

	return createMultiError(errs)
}

func (config *SyncConfig) bindEnvironmentVariables(v *viper.Viper) error {
	return bindEnv(v, map[string]string{
		"sync.enabled":   "SYNC_ENABLED",
		"sync.schedule":  "SYNC_SCHEDULE",
		"sync.cache_ttl": "CACHE_TTL",
	})
}
