package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// StoreConfig points at the Airtable base holding the postings. Credentials
// may be empty here: requests fail at call time instead.
type StoreConfig struct {
	EndpointURL          string  `mapstructure:"endpoint_url"`
	AccessToken          string  `mapstructure:"access_token"`
	BaseID               string  `mapstructure:"base_id"`
	TableName            string  `mapstructure:"table_name"`
	MaxRequestsPerSecond float32 `mapstructure:"max_requests_per_second"`
	PageSize             int     `mapstructure:"page_size"`
}

func (config *StoreConfig) setDefaults(v *viper.Viper) {
	v.SetDefault("store.endpoint_url", "https://api.airtable.com")
	v.SetDefault("store.table_name", "Jobs")
	v.SetDefault("store.max_requests_per_second", 5)
	v.SetDefault("store.page_size", 100)
}

func (config *StoreConfig) validate() error {
	var errs []error

	if config.EndpointURL == "" {
		errs = append(errs, fmt.Errorf("missing variable: endpoint_url"))
	}
	if config.MaxRequestsPerSecond < 0 {
		errs = append(errs, fmt.Errorf("max_requests_per_second must not be negative"))
	}
	if config.PageSize < 0 || config.PageSize > 100 {
		errs = append(errs, fmt.Errorf("page_size must be between 0 and 100, got %d", config.PageSize))
	}

	return createMultiError(errs)
}

func (config *StoreConfig) bindEnvironmentVariables(v *viper.Viper) error {
	return bindEnv(v, map[string]string{
		"store.endpoint_url":            "AIRTABLE_ENDPOINT_URL",
		"store.access_token":            "AIRTABLE_ACCESS_TOKEN",
		"store.base_id":                 "AIRTABLE_BASE_ID",
		"store.table_name":              "AIRTABLE_TABLE_NAME",
		"store.max_requests_per_second": "AIRTABLE_MAX_REQUESTS_PER_SECOND",
	})
}
