package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config is the service configuration loaded from a YAML file, with
// environment variables taking precedence in cmd/web.
type Config struct {
	Host            string `mapstructure:"host"`
	Port            string `mapstructure:"port"`
	DbPath          string `mapstructure:"db_path"`
	ShutdownTimeout int    `mapstructure:"shutdown_timeout_seconds"`
}

func Default() Config {
	return Config{
		Host:            "127.0.0.1",
		Port:            "8080",
		DbPath:          "depot-report.db",
		ShutdownTimeout: 10,
	}
}

func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	cfg := Default()
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}
