// Package config содержит конфигурацию приложения заметок.
package config

import (
	"context"

	"go.uber.org/zap"

	pkgconfig "localnotes/pkg/config"
	"localnotes/pkg/logger"
)

const serviceName = "notes"

// DefaultEnvFile файл с переменными окружения, читаемый при наличии.
const DefaultEnvFile = ".env"

// Config полная конфигурация.
type Config struct {
	Storage  StorageConfig  `yaml:"storage"`
	Redis    RedisConfig    `yaml:"redis"`
	Postgres PostgresConfig `yaml:"postgres"`
	HTTP     HTTPConfig     `yaml:"http"`
	Logging  LoggingConfig  `yaml:"logging"`
	Shutdown ShutdownConfig `yaml:"shutdown"`
	Sort     SortConfig     `yaml:"sort"`
}

// Load читает envFile (если он есть) и переменные окружения NOTES_*.
func Load(ctx context.Context, envFile string) (*Config, error) {
	cfg, err := pkgconfig.Load[Config](ctx, serviceName, envFile)
	if err != nil {
		return nil, err
	}
	if err := cfg.Storage.Validate(); err != nil {
		return nil, err
	}

	logger.Log(ctx).Debug(ctx, "notes configuration",
		zap.String("storage_backend", cfg.Storage.Backend),
		zap.String("storage_key", cfg.Storage.Key),
		zap.String("http_address", cfg.HTTP.GetAddress()),
		zap.String("log_level", cfg.Logging.Level),
		zap.String("log_mode", cfg.Logging.Mode),
		zap.String("sort_locale", cfg.Sort.Locale))

	return cfg, nil
}
