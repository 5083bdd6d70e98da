// Package logger оборачивает zap и связывает логгер с контекстом действия пользователя.
package logger

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Environment режим работы логгера.
type Environment string

// Поддерживаемые режимы.
const (
	Development Environment = "development"
	Production  Environment = "production"
)

// Сообщения об ошибках построения логгера.
const (
	ErrParseLevel  = "failed to parse log level"
	ErrBuildLogger = "failed to build zap logger"
)

// Logger обертка над zap.Logger, добавляющая action_id из контекста.
type Logger struct {
	l *zap.Logger
}

// NewLogger создает логгер для режима env. Пустой level означает info.
func NewLogger(env Environment, level string) (*Logger, error) {
	return NewLoggerWithOutput(env, level)
}

// NewLoggerWithOutput создает логгер, пишущий в указанные пути (stderr, stdout или файл).
// Без путей используется вывод по умолчанию для режима.
func NewLoggerWithOutput(env Environment, level string, outputs ...string) (*Logger, error) {
	var cfg zap.Config
	if env == Production {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
	}

	if level != "" {
		lvl, err := zapcore.ParseLevel(strings.ToLower(level))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrParseLevel, err)
		}
		cfg.Level = zap.NewAtomicLevelAt(lvl)
	} else {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	}

	if len(outputs) > 0 {
		cfg.OutputPaths = outputs
		cfg.ErrorOutputPaths = outputs
	}

	zl, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrBuildLogger, err)
	}
	return &Logger{l: zl}, nil
}

// Wrap оборачивает готовый zap.Logger.
func Wrap(zl *zap.Logger) *Logger {
	return &Logger{l: zl}
}

// NewNop возвращает логгер, который ничего не пишет.
func NewNop() *Logger {
	return &Logger{l: zap.NewNop()}
}

func (l *Logger) Info(ctx context.Context, msg string, fields ...zap.Field) {
	l.l.Info(msg, addActionID(ctx, fields)...)
}

func (l *Logger) Warn(ctx context.Context, msg string, fields ...zap.Field) {
	l.l.Warn(msg, addActionID(ctx, fields)...)
}

func (l *Logger) Error(ctx context.Context, msg string, fields ...zap.Field) {
	l.l.Error(msg, addActionID(ctx, fields)...)
}

func (l *Logger) Debug(ctx context.Context, msg string, fields ...zap.Field) {
	l.l.Debug(msg, addActionID(ctx, fields)...)
}

func (l *Logger) Fatal(ctx context.Context, msg string, fields ...zap.Field) {
	l.l.Fatal(msg, addActionID(ctx, fields)...)
}

// With возвращает новый логгер с дополнительными полями.
func (l *Logger) With(fields ...zap.Field) *Logger {
	return &Logger{l: l.l.With(fields...)}
}

// Sync сбрасывает буферы zap.
func (l *Logger) Sync() error {
	return l.l.Sync()
}
