package shutdown_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"localnotes/pkg/shutdown"
)

func TestWaitRunsHooksOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	var calls atomic.Int32
	hook := func(context.Context) error {
		calls.Add(1)
		return nil
	}

	done := make(chan struct{})
	go func() {
		shutdown.Wait(ctx, time.Second, hook, hook)
		close(done)
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Wait did not return after context cancellation")
	}
	assert.Equal(t, int32(2), calls.Load())
}

func TestRunRespectsTimeout(t *testing.T) {
	var completed atomic.Bool
	slow := func(ctx context.Context) error {
		select {
		case <-time.After(2 * time.Second):
			completed.Store(true)
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	start := time.Now()
	shutdown.Run(context.Background(), 200*time.Millisecond, slow)

	assert.Less(t, time.Since(start), time.Second)
	assert.False(t, completed.Load())
}

func TestRunHooksConcurrently(t *testing.T) {
	sleepy := func(context.Context) error {
		time.Sleep(300 * time.Millisecond)
		return nil
	}

	start := time.Now()
	shutdown.Run(context.Background(), 2*time.Second, sleepy, sleepy, sleepy)

	assert.Less(t, time.Since(start), 800*time.Millisecond, "hooks should not run sequentially")
}

func TestRunToleratesFailingHooks(t *testing.T) {
	var ok atomic.Bool
	failing := func(context.Context) error { return errors.New("close failed") }
	fine := func(context.Context) error {
		ok.Store(true)
		return nil
	}

	assert.NotPanics(t, func() {
		shutdown.Run(context.Background(), time.Second, failing, fine)
	})
	assert.True(t, ok.Load())
}
