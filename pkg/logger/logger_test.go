package logger_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"localnotes/pkg/logger"
)

func TestNewLogger(t *testing.T) {
	t.Run("development with explicit level", func(t *testing.T) {
		l, err := logger.NewLogger(logger.Development, "debug")
		require.NoError(t, err)
		assert.NotNil(t, l)
	})

	t.Run("production with empty level defaults to info", func(t *testing.T) {
		l, err := logger.NewLogger(logger.Production, "")
		require.NoError(t, err)
		assert.NotNil(t, l)
	})

	t.Run("level is case insensitive", func(t *testing.T) {
		l, err := logger.NewLogger(logger.Production, "WARN")
		require.NoError(t, err)
		assert.NotNil(t, l)
	})

	t.Run("invalid level", func(t *testing.T) {
		l, err := logger.NewLogger(logger.Development, "loud")
		require.Error(t, err)
		assert.Nil(t, l)
		assert.Contains(t, err.Error(), logger.ErrParseLevel)
	})

	t.Run("file output", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "notes.log")
		l, err := logger.NewLoggerWithOutput(logger.Production, "info", path)
		require.NoError(t, err)
		l.Info(context.Background(), "written to file")
		assert.FileExists(t, path)
	})
}

func TestLoggerMethods(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := logger.Wrap(zap.New(core))
	ctx := context.Background()

	l.Debug(ctx, "debug message")
	l.Info(ctx, "info message")
	l.Warn(ctx, "warn message")
	l.Error(ctx, "error message")

	entries := logs.AllUntimed()
	require.Len(t, entries, 4)
	assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
	assert.Equal(t, zapcore.InfoLevel, entries[1].Level)
	assert.Equal(t, zapcore.WarnLevel, entries[2].Level)
	assert.Equal(t, zapcore.ErrorLevel, entries[3].Level)

	t.Run("With returns a new logger carrying fields", func(t *testing.T) {
		withField := l.With(zap.String("component", "store"))
		assert.NotSame(t, l, withField)

		withField.Info(ctx, "with field")
		last := logs.All()[logs.Len()-1]
		assert.Equal(t, "store", last.ContextMap()["component"])
	})

	t.Run("Nop does not panic", func(t *testing.T) {
		assert.NotPanics(t, func() {
			logger.NewNop().Info(ctx, "nothing")
		})
	})
}

func TestActionID(t *testing.T) {
	t.Run("generated ids are uuids", func(t *testing.T) {
		id := logger.GenerateActionID()
		_, err := uuid.Parse(id)
		require.NoError(t, err)
		assert.NotEqual(t, id, logger.GenerateActionID())
	})

	t.Run("explicit id is kept", func(t *testing.T) {
		ctx := logger.NewActionContext(context.Background(), "action-1")
		id, ok := logger.GetActionID(ctx)
		require.True(t, ok)
		assert.Equal(t, "action-1", id)
	})

	t.Run("empty id is generated", func(t *testing.T) {
		ctx := logger.NewActionContext(context.Background(), "")
		id, ok := logger.GetActionID(ctx)
		require.True(t, ok)
		assert.NotEmpty(t, id)
	})

	t.Run("missing id", func(t *testing.T) {
		_, ok := logger.GetActionID(context.Background())
		assert.False(t, ok)
	})

	t.Run("log entries carry action_id", func(t *testing.T) {
		core, logs := observer.New(zapcore.InfoLevel)
		l := logger.Wrap(zap.New(core))
		ctx := logger.NewActionContext(context.Background(), "action-42")

		l.Info(ctx, "tagged")
		l.Info(context.Background(), "untagged")

		entries := logs.All()
		require.Len(t, entries, 2)
		assert.Equal(t, "action-42", entries[0].ContextMap()[logger.ActionID])
		assert.NotContains(t, entries[1].ContextMap(), logger.ActionID)
	})

	t.Run("WithActionID", func(t *testing.T) {
		l := logger.NewNop()
		assert.Same(t, l, l.WithActionID(context.Background()))

		ctx := logger.NewActionContext(context.Background(), "a")
		assert.NotSame(t, l, l.WithActionID(ctx))
	})
}

func TestContext(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		l := logger.NewNop()
		ctx := logger.NewContext(context.Background(), l)

		got, err := logger.FromContext(ctx)
		require.NoError(t, err)
		assert.Same(t, l, got)
	})

	t.Run("missing logger", func(t *testing.T) {
		got, err := logger.FromContext(context.Background())
		require.Error(t, err)
		assert.Nil(t, got)
		assert.ErrorIs(t, err, logger.ErrLoggerNotFound)
	})

	t.Run("derived context keeps logger", func(t *testing.T) {
		type key struct{}
		l := logger.NewNop()
		ctx := context.WithValue(logger.NewContext(context.Background(), l), key{}, "v")

		got, err := logger.FromContext(ctx)
		require.NoError(t, err)
		assert.Same(t, l, got)
	})
}

func TestGlobalLogger(t *testing.T) {
	t.Cleanup(func() { logger.SetGlobalLogger(nil) })

	t.Run("fallback when nothing is configured", func(t *testing.T) {
		logger.SetGlobalLogger(nil)
		assert.NotNil(t, logger.Log(context.Background()))
	})

	t.Run("init is idempotent", func(t *testing.T) {
		logger.SetGlobalLogger(nil)
		require.NoError(t, logger.InitGlobalLogger(logger.Production))
		first := logger.Log(context.Background())

		require.NoError(t, logger.InitGlobalLoggerWithLevel(logger.Development, "debug"))
		assert.Same(t, first, logger.Log(context.Background()))
	})

	t.Run("init with invalid level", func(t *testing.T) {
		logger.SetGlobalLogger(nil)
		err := logger.InitGlobalLoggerWithLevel(logger.Development, "nope")
		require.Error(t, err)
		assert.ErrorIs(t, err, logger.ErrInitGlobalLogger)
	})

	t.Run("context logger wins over global", func(t *testing.T) {
		global := logger.NewNop()
		logger.SetGlobalLogger(global)

		local := logger.NewNop()
		ctx := logger.NewContext(context.Background(), local)

		assert.Same(t, local, logger.Log(ctx))
		assert.Same(t, global, logger.Log(context.Background()))
	})
}
