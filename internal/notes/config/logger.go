package config

import (
	"localnotes/pkg/logger"
)

// LoggingConfig содержит настройки логирования.
type LoggingConfig struct {
	Level  string `yaml:"level" env:"NOTES_LOGGER_LEVEL" env-default:"info"`
	Mode   string `yaml:"mode" env:"NOTES_LOGGER_MODE" env-default:"development"`
	Output string `yaml:"output" env:"NOTES_LOGGER_OUTPUT" env-default:"stderr"`
}

// GetEnvironment переводит строку режима в logger.Environment.
func (l *LoggingConfig) GetEnvironment() logger.Environment {
	if l.Mode == "production" {
		return logger.Production
	}
	return logger.Development
}

// WritesToTerminal сообщает, пишет ли логгер в stdout/stderr.
func (l *LoggingConfig) WritesToTerminal() bool {
	return l.Output == "" || l.Output == "stderr" || l.Output == "stdout"
}
