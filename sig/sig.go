// Package sig turns OS signals into context cancellation, so that a
// long scan can be interrupted and still flush what it has printed.
package sig

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
)

// ReceivedHandler is notified of the signal that stopped a Handler
type ReceivedHandler interface {
	Handle(os.Signal)
}

type ReceivedHandlerFunc func(os.Signal)

// Handle calls the underlying function with the received signal.
func (s ReceivedHandlerFunc) Handle(sig os.Signal) {
	s(sig)
}

// DefaultSignals are the signals watched when none are given
var DefaultSignals = []os.Signal{syscall.SIGTERM, syscall.SIGINT, syscall.SIGHUP}

type Handler struct {
	onSignalReceived ReceivedHandler
	sigCh            chan os.Signal
}

// New creates a signal handler that forwards the first of sigs (or
// DefaultSignals) to h. h may be nil.
func New(h ReceivedHandler, sigs ...os.Signal) *Handler {
	if len(sigs) == 0 {
		sigs = DefaultSignals
	}

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, sigs...)

	return &Handler{
		onSignalReceived: h,
		sigCh:            ch,
	}
}

// Loop waits until either ctx is done or a signal arrives, and then
// calls cancel. Signals are no longer delivered once Loop returns.
func (h *Handler) Loop(ctx context.Context, cancel func()) error {
	defer cancel()
	defer signal.Stop(h.sigCh)

	select {
	case <-ctx.Done():
		return ctx.Err()
	case sig := <-h.sigCh:
		if h.onSignalReceived != nil {
			h.onSignalReceived.Handle(sig)
		}
		return nil
	}
}

// Watch returns a context that is canceled when one of sigs (or
// DefaultSignals) is received. The returned stop function releases the
// signals and waits for the watcher to exit; it must be called.
func Watch(parent context.Context, h ReceivedHandler, sigs ...os.Signal) (context.Context, func()) {
	ctx, cancel := context.WithCancel(parent)
	handler := New(h, sigs...)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = handler.Loop(ctx, cancel)
	}()

	return ctx, func() {
		cancel()
		wg.Wait()
	}
}
