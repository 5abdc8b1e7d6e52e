package config

import (
	"fmt"

	"github.com/spf13/viper"
)

const (
	PolicyUnified = "unified"
	PolicyLegacy  = "legacy"
)

type MappingConfig struct {
	Policy string `mapstructure:"policy"`
}

func (config *MappingConfig) setDefaults(v *viper.Viper) {
	v.SetDefault("mapping.policy", PolicyUnified)
}

func (config *MappingConfig) validate() error {
	if config.Policy != PolicyUnified && config.Policy != PolicyLegacy {
		return fmt.Errorf("policy must be %q or %q, got %q", PolicyUnified, PolicyLegacy, config.Policy)
	}
	return nil
}

func (config *MappingConfig) bindEnvironmentVariables(v *viper.Viper) error {
	return v.BindEnv("mapping.policy", "MAPPING_POLICY")
}
