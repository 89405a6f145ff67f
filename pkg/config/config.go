package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the typed view of the loaded settings.
type Config struct {
	LogLevel string         `json:"logLevel" mapstructure:"logLevel"`
	Database DatabaseConfig `json:"database" mapstructure:"database"`
	Worker   WorkerConfig   `json:"worker" mapstructure:"worker"`
}

// DatabaseConfig selects the record store. The URL scheme picks the backend:
// sqlite://, postgres:// (or postgresql://) or memory://.
type DatabaseConfig struct {
	URL        string `json:"url" mapstructure:"url"`
	Migrations string `json:"migrations" mapstructure:"migrations"`
}

// WorkerConfig tunes the instruction worker.
type WorkerConfig struct {
	Interval  time.Duration `json:"interval" mapstructure:"interval"`
	QueueSize int           `json:"queueSize" mapstructure:"queueSize"`
}

// Load sets default values, then reads configFile if given, then applies
// FLOTILLA_ environment overrides (FLOTILLA_DATABASE_URL for database.url).
// Without a configFile, flotilla.json in the working directory is read if
// it exists.
func Load(configFile string) error {
	viper.SetDefault("logLevel", "info")

	viper.SetDefault("database.url", "sqlite://flotilla.db")
	viper.SetDefault("database.migrations", "./migrations/sqlite")

	viper.SetDefault("worker.interval", "50ms")
	viper.SetDefault("worker.queueSize", 1024)

	viper.SetEnvPrefix("FLOTILLA")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetConfigType("json")
	if configFile != "" {
		viper.SetConfigFile(configFile)
		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("error reading config file: %v", err)
		}
		return nil
	}

	viper.SetConfigName("flotilla")
	viper.AddConfigPath(".")
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("error reading config file: %v", err)
		}
	}

	return nil
}

// Get decodes the current settings.
func Get() (*Config, error) {
	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error decoding config: %v", err)
	}
	return cfg, nil
}

// GetString returns a string config value.
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt returns an int config value.
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetDuration returns a duration config value.
func GetDuration(key string) time.Duration {
	return viper.GetDuration(key)
}

// Set overrides a config value, taking precedence over file and environment.
func Set(key string, value interface{}) {
	viper.Set(key, value)
}
