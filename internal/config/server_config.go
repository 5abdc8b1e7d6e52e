package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type ServerConfig struct {
	Port int `mapstructure:"port"`
}

func (config *ServerConfig) setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
}

func (config *ServerConfig) validate() error {
	if config.Port <= 0 || config.Port > 65535 {
		return fmt.Errorf("invalid port: %d", config.Port)
	}
	return nil
}

func (config *ServerConfig) bindEnvironmentVariables(v *viper.Viper) error {
	return v.BindEnv("server.port", "PORT")
}

func (config ServerConfig) Address() string {
	return fmt.Sprintf(":%d", config.Port)
}
