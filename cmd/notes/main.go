// Package main реализует точку входа приложения заметок.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"localnotes/pkg/logger"
)

// Константы для переменных окружения.
const (
	EnvLoggerMode  = "NOTES_LOGGER_MODE"
	EnvLoggerLevel = "NOTES_LOGGER_LEVEL"
)

// Константы для сообщений об ошибках.
const (
	ErrInitLogger = "failed to initialize logger"
	ErrSyncLogger = "failed to sync logger"
)

// Константы для игнорируемых ошибок.
const (
	ErrSyncStderr = "sync /dev/stderr: invalid argument"
	ErrSyncStdout = "sync /dev/stdout: invalid argument"
)

const bootstrapLogLevel = "warn"

func main() {
	os.Exit(execute(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

// execute runs the CLI and returns the process exit code.
func execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	env := logger.Development
	if strings.ToLower(os.Getenv(EnvLoggerMode)) == "production" {
		env = logger.Production
	}

	level := os.Getenv(EnvLoggerLevel)
	if level == "" {
		level = bootstrapLogLevel
	}

	log, err := logger.NewLogger(env, level)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "%s: %v\n", ErrInitLogger, err)
		return 1
	}
	logger.SetGlobalLogger(log)

	ctx = logger.NewActionContext(ctx, "")

	cli := newCLI()
	root := cli.rootCommand()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	exitCode := 0
	if err := root.ExecuteContext(ctx); err != nil {
		exitCode = 1
	}
	if err := cli.teardown(ctx); err != nil {
		exitCode = 1
	}

	syncLogger(cli.logger(), stderr)
	return exitCode
}

func syncLogger(log *logger.Logger, stderr io.Writer) {
	if err := log.Sync(); err != nil {
		errMsg := err.Error()
		if strings.Contains(errMsg, ErrSyncStderr) || strings.Contains(errMsg, ErrSyncStdout) {
			return
		}
		_, _ = fmt.Fprintf(stderr, "%s: %v\n", ErrSyncLogger, err)
	}
}
