package app

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/five82/scanboard/internal/feed"
	"github.com/five82/scanboard/internal/logging"
	"github.com/five82/scanboard/internal/state"
)

// ProgressWatcher mirrors the scan counters channel into the store. The
// counters are cosmetic, so it reconnects forever and never reloads.
type ProgressWatcher struct {
	sub    feed.Subscriber
	store  *state.Store
	delay  time.Duration
	logger *slog.Logger
	after  func(time.Duration) <-chan time.Time
}

// NewProgressWatcher builds a watcher that retries after delay.
func NewProgressWatcher(sub feed.Subscriber, store *state.Store, delay time.Duration, logger *slog.Logger) *ProgressWatcher {
	if delay <= 0 {
		delay = defaultReconnectDelay
	}
	if logger == nil {
		logger = logging.Discard()
	}
	return &ProgressWatcher{sub: sub, store: store, delay: delay, logger: logger, after: time.After}
}

// Run blocks until ctx is cancelled. It returns immediately when the
// progress channel is disabled.
func (w *ProgressWatcher) Run(ctx context.Context) error {
	for {
		err := w.session(ctx)
		if errors.Is(err, feed.ErrProgressDisabled) {
			w.logger.Debug("progress channel disabled")
			return nil
		}
		if ctx.Err() != nil {
			return nil
		}
		if err != nil {
			w.logger.Debug("progress channel dropped", "error", err)
		}
		select {
		case <-ctx.Done():
			return nil
		case <-w.after(w.delay):
		}
	}
}

func (w *ProgressWatcher) session(ctx context.Context) error {
	stream, err := w.sub.DialProgress(ctx)
	if err != nil {
		return err
	}
	defer stream.Close()
	stop := context.AfterFunc(ctx, func() { _ = stream.Close() })
	defer stop()

	for {
		data, err := stream.ReadMessage()
		if err != nil {
			return err
		}
		p, err := feed.DecodeProgress(data)
		if err != nil {
			w.store.ProgressFailed()
			w.logger.Warn("dropping malformed progress frame", "error", err)
			continue
		}
		w.store.SetProgress(state.Progress{
			Counter: p.Counter,
			Pending: p.Pending,
			Graded:  p.Graded,
			Message: p.Message,
		})
	}
}
