//go:build !windows

package sig

import (
	"context"
	"os"
	"sync/atomic"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func requireStopped(t *testing.T, h *Handler) {
	t.Helper()
	syscall.Kill(syscall.Getpid(), syscall.SIGUSR1)
	require.Never(t, func() bool {
		select {
		case _, ok := <-h.sigCh:
			return ok
		default:
			return false
		}
	}, 100*time.Millisecond, 10*time.Millisecond,
		"signal was delivered after Loop returned")
}

func TestLoopContextCancel(t *testing.T) {
	var called atomic.Bool
	h := New(ReceivedHandlerFunc(func(os.Signal) {
		called.Store(true)
	}), syscall.SIGUSR1)

	ctx, cancel := context.WithCancel(context.Background())

	errCh := make(chan error, 1)
	go func() {
		errCh <- h.Loop(ctx, cancel)
	}()

	cancel()

	select {
	case err := <-errCh:
		require.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		require.Fail(t, "Loop did not exit after context cancellation")
	}

	require.False(t, called.Load(), "handler should not have been called")
	requireStopped(t, h)
}

func TestLoopSignalReceived(t *testing.T) {
	received := make(chan os.Signal, 1)
	h := New(ReceivedHandlerFunc(func(sig os.Signal) {
		received <- sig
	}), syscall.SIGUSR1)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		errCh <- h.Loop(ctx, cancel)
	}()

	syscall.Kill(syscall.Getpid(), syscall.SIGUSR1)

	select {
	case err := <-errCh:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		require.Fail(t, "Loop did not exit after signal")
	}

	require.Equal(t, syscall.SIGUSR1, <-received)
	require.Error(t, ctx.Err(), "Loop should cancel the context once a signal arrives")
	requireStopped(t, h)
}

func TestWatch(t *testing.T) {
	ctx, stop := Watch(context.Background(), nil, syscall.SIGUSR2)

	syscall.Kill(syscall.Getpid(), syscall.SIGUSR2)

	select {
	case <-ctx.Done():
	case <-time.After(5 * time.Second):
		require.Fail(t, "context was not canceled by the signal")
	}
	stop()
}

func TestWatchStop(t *testing.T) {
	ctx, stop := Watch(context.Background(), nil, syscall.SIGUSR2)
	stop()
	require.ErrorIs(t, ctx.Err(), context.Canceled)
}
