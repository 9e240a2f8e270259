package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/five82/scanboard/internal/feed"
	"github.com/five82/scanboard/internal/logging"
	"github.com/five82/scanboard/internal/results"
	"github.com/five82/scanboard/internal/state"
)

const defaultReconnectDelay = 3 * time.Second

var (
	// ErrGaveUp is returned by Channel.Run once MaxAttempts consecutive
	// connection attempts have failed.
	ErrGaveUp = errors.New("gave up reconnecting")
	// ErrNotConnected is returned by RequestReset without a live connection.
	ErrNotConnected = errors.New("files channel not connected")
)

// ReconnectPolicy controls what happens after the files channel drops.
// Every drop waits Delay, reloads the table, then reconnects. MaxAttempts
// bounds consecutive failed attempts; zero means retry forever.
type ReconnectPolicy struct {
	Delay       time.Duration
	MaxAttempts int
}

func (p ReconnectPolicy) delay() time.Duration {
	if p.Delay <= 0 {
		return defaultReconnectDelay
	}
	return p.Delay
}

func (p ReconnectPolicy) exhausted(failures int) bool {
	return p.MaxAttempts > 0 && failures >= p.MaxAttempts
}

// StatusFunc observes every status transition in order.
type StatusFunc func(status state.Status, err error)

// ChannelOptions configure a Channel.
type ChannelOptions struct {
	Subscriber feed.Subscriber
	Store      *state.Store
	// Sink receives table events in arrival order.
	Sink     func(results.Event)
	OnStatus StatusFunc
	Policy   ReconnectPolicy
	Logger   *slog.Logger
}

// Channel keeps the files channel connected and feeds decoded events to its
// sink. Reconnects always go through a Reload so the table restarts empty
// and the server's replay repopulates it.
type Channel struct {
	sub      feed.Subscriber
	store    *state.Store
	sink     func(results.Event)
	onStatus StatusFunc
	policy   ReconnectPolicy
	logger   *slog.Logger
	after    func(time.Duration) <-chan time.Time

	mu     sync.Mutex
	active feed.Stream
}

// NewChannel builds a Channel. Store and Logger may be nil.
func NewChannel(opts ChannelOptions) *Channel {
	store := opts.Store
	if store == nil {
		store = &state.Store{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	sink := opts.Sink
	if sink == nil {
		sink = func(results.Event) {}
	}
	return &Channel{
		sub:      opts.Subscriber,
		store:    store,
		sink:     sink,
		onStatus: opts.OnStatus,
		policy:   opts.Policy,
		logger:   logger,
		after:    time.After,
	}
}

// Run connects and reconnects until ctx is cancelled or the policy gives up.
// Cancellation returns nil.
func (c *Channel) Run(ctx context.Context) error {
	failures := 0
	for {
		c.setStatus(state.StatusConnecting, nil)
		connected, err := c.session(ctx)
		if ctx.Err() != nil {
			return nil
		}
		if connected {
			failures = 0
		} else {
			failures++
		}
		c.store.SetFailures(failures)

		if c.policy.exhausted(failures) {
			gaveUp := fmt.Errorf("%w after %d attempts: %w", ErrGaveUp, failures, err)
			c.logger.Error("files channel stopped", "error", gaveUp)
			c.store.GiveUp(gaveUp)
			return gaveUp
		}

		delay := c.policy.delay()
		c.logger.Info("reloading after disconnect", "delay", delay, "failures", failures)
		select {
		case <-ctx.Done():
			return nil
		case <-c.after(delay):
		}
		c.sink(results.Reload{})
		c.store.CountReload()
	}
}

// session runs one connection. It reports whether the handshake succeeded
// and the error that ended it.
func (c *Channel) session(ctx context.Context) (bool, error) {
	stream, err := c.sub.DialFiles(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return false, ctx.Err()
		}
		c.logger.Warn("files channel dial failed", "error", err)
		c.setStatus(state.StatusError, err)
		c.setStatus(state.StatusDisconnected, nil)
		return false, err
	}

	c.setActive(stream)
	defer c.setActive(nil)
	stop := context.AfterFunc(ctx, func() { _ = stream.Close() })
	defer stop()
	defer stream.Close()

	logger := c.logger.With("conn", stream.ID())
	c.store.SetConnection(stream.ID())
	c.notify(state.StatusConnected, nil)
	logger.Info("files channel connected")

	for {
		data, err := stream.ReadMessage()
		if err != nil {
			if ctx.Err() != nil {
				return true, ctx.Err()
			}
			if feed.IsClosed(err) {
				logger.Info("files channel closed", "reason", err)
			} else {
				logger.Warn("files channel error", "error", err)
				c.setStatus(state.StatusError, err)
			}
			c.setStatus(state.StatusDisconnected, nil)
			return true, err
		}

		ev, err := feed.Decode(data)
		if err != nil {
			if errors.Is(err, feed.ErrUnknownAction) {
				logger.Debug("ignoring message", "error", err)
			} else {
				logger.Warn("dropping malformed message", "error", err, "bytes", len(data))
			}
			continue
		}
		c.sink(ev)
	}
}

// RequestReset asks the server to clear every table and replay its records.
func (c *Channel) RequestReset() error {
	c.mu.Lock()
	stream := c.active
	c.mu.Unlock()

	if stream == nil {
		return ErrNotConnected
	}
	if err := stream.WriteJSON(feed.NewResetRequest()); err != nil {
		return fmt.Errorf("send reset: %w", err)
	}
	c.logger.Info("reset requested", "conn", stream.ID())
	return nil
}

func (c *Channel) setActive(s feed.Stream) {
	c.mu.Lock()
	c.active = s
	c.mu.Unlock()
}

func (c *Channel) setStatus(status state.Status, err error) {
	c.store.SetStatus(status, err)
	c.notify(status, err)
}

func (c *Channel) notify(status state.Status, err error) {
	if c.onStatus != nil {
		c.onStatus(status, err)
	}
}
