package config

import (
	"errors"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	Logger  LoggerConfig  `mapstructure:"logger"`
	Store   StoreConfig   `mapstructure:"store"`
	Mapping MappingConfig `mapstructure:"mapping"`
	DB      DBConfig      `mapstructure:"db"`
	Sync    SyncConfig    `mapstructure:"sync"`
	Server  ServerConfig  `mapstructure:"server"`
}

const defaultConfigFile = "./configs/config.yaml"

// section is implemented by every config block.
type section interface {
	setDefaults(v *viper.Viper)
	bindEnvironmentVariables(v *viper.Viper) error
	validate() error
}

// Get loads the config from CONFIG_PATH (or ./configs/config.yaml) and the
// environment. It exits the process when the config is unusable.
func Get() *Config {
	file := defaultConfigFile
	if value, ok := os.LookupEnv("CONFIG_PATH"); ok && value != "" {
		file = value
	}

	config, err := Load(file)
	if err != nil {
		log.Fatal(err)
	}

	return config
}

func Load(file string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(file)
	v.AutomaticEnv()

	config := Config{}
	sections := config.sections()

	for _, s := range sections {
		s.setDefaults(v)
	}

	if err := bindEnvironmentVariables(v, sections); err != nil {
		return nil, err
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file %s: %w", file, err)
	}

	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (config *Config) sections() map[string]section {
	return map[string]section{
		"LoggerConfig":  &config.Logger,
		"StoreConfig":   &config.Store,
		"MappingConfig": &config.Mapping,
		"DBConfig":      &config.DB,
		"SyncConfig":    &config.Sync,
		"ServerConfig":  &config.Server,
	}
}

func bindEnvironmentVariables(v *viper.Viper, sections map[string]section) error {
	var errs []error

	for name, s := range sections {
		if err := s.bindEnvironmentVariables(v); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
		}
	}

	return createMultiError(errs)
}

func (config Config) validate() error {
	var errs []error

	for name, s := range config.sections() {
		if err := s.validate(); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
		}
	}

	return createMultiError(errs)
}

func createMultiError(errs []error) error {
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("multiple errors occurred: %w", errors.Join(errs...))
}

func bindEnv(v *viper.Viper, bindings map[string]string) error {
	var errs []error
	for key, env := range bindings {
		if err := v.BindEnv(key, env); err != nil {
			errs = append(errs, err)
		}
	}
	return createMultiError(errs)
}
