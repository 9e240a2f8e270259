package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cli/go-gh/v2/pkg/browser"

	"github.com/five82/scanboard/internal/config"
	"github.com/five82/scanboard/internal/feed"
	"github.com/five82/scanboard/internal/logging"
	"github.com/five82/scanboard/internal/logtail"
	"github.com/five82/scanboard/internal/results"
	"github.com/five82/scanboard/internal/state"
	"github.com/five82/scanboard/internal/ui"
)

// Options configure every scanboard command.
type Options struct {
	ConfigPath string
	EnvFile    string // optional .env loaded before the config
	Server     string // overrides the configured server when set
}

// Run boots the scanboard TUI until the context is cancelled or the user quits.
func Run(ctx context.Context, opts Options) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	logFile, err := logging.OpenFile(cfg.LogFile)
	if err != nil {
		return err
	}
	defer logFile.Close()
	logCfg := logging.DefaultConfig()
	logCfg.Level = logging.ParseLevel(cfg.LogLevel)
	logCfg.Format = cfg.LogFormat
	logCfg.Output = logFile
	logger := logging.New(logCfg)
	logger.Info("scanboard starting", "config", cfg.String())

	client, err := newClient(cfg)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	store := &state.Store{}
	table := results.NewTable(results.WithViewerPath(cfg.ViewerPath))

	// send is set by ui.Run before any goroutine below starts.
	var send func(tea.Msg)
	channel := NewChannel(ChannelOptions{
		Subscriber: client,
		Store:      store,
		Sink:       func(ev results.Event) { send(ui.TableEventMsg{Event: ev}) },
		OnStatus:   func(s state.Status, err error) { send(ui.StatusMsg{Status: s, Err: err}) },
		Policy:     ReconnectPolicy{Delay: cfg.ReconnectDelay, MaxAttempts: cfg.MaxReconnects},
		Logger:     logger,
	})
	watcher := NewProgressWatcher(client, store, cfg.ReconnectDelay, logger)
	opener := browser.New("", io.Discard, io.Discard)

	return ui.Run(ui.Options{
		Context:   ctx,
		Table:     table,
		Store:     store,
		ThemeName: cfg.Theme,
		Endpoint:  client.FilesURL(),
		ViewerURL: client.ViewerURL,
		Open:      opener.Browse,
		Reset:     channel.RequestReset,
		Logger:    logger,
		Start: func(s func(tea.Msg)) {
			send = s
			go func() {
				if err := channel.Run(ctx); err != nil {
					logger.Error("files channel ended", "error", err)
				}
			}()
			go func() { _ = watcher.Run(ctx) }()
		},
	})
}

// Reset connects once, asks the server to reset every table, and returns.
func Reset(ctx context.Context, opts Options, out io.Writer) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}
	consoleLogger(cfg.LogLevel)

	client, err := newClient(cfg)
	if err != nil {
		return err
	}
	stream, err := client.DialFiles(ctx)
	if err != nil {
		return fmt.Errorf("connect to %s: %w", client.FilesURL(), err)
	}
	defer stream.Close()

	if err := stream.WriteJSON(feed.NewResetRequest()); err != nil {
		return fmt.Errorf("send reset: %w", err)
	}
	slog.Info("reset requested", "conn", stream.ID(), "url", client.FilesURL())
	fmt.Fprintf(out, "reset requested on %s\n", client.FilesURL())
	return nil
}

// Logs prints the last n entries of the client log file.
func Logs(opts Options, n int, out io.Writer) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}
	entries, err := logtail.ReadEntries(cfg.LogFile, n)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Fprintf(out, "no log entries in %s\n", cfg.LogFile)
		return nil
	}
	for _, e := range entries {
		fmt.Fprintln(out, e.Format())
	}
	return nil
}

// consoleLogger logs text to stderr for the commands that own the terminal
// without a TUI.
func consoleLogger(level string) *slog.Logger {
	cfg := logging.DefaultConfig()
	cfg.Level = logging.ParseLevel(level)
	cfg.Format = "text"
	return logging.New(cfg)
}

func loadConfig(opts Options) (config.Config, error) {
	if err := config.LoadEnvFile(opts.EnvFile); err != nil {
		return config.Config{}, err
	}
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}
	if opts.Server != "" {
		cfg.Server = opts.Server
	}
	return cfg, nil
}

func newClient(cfg config.Config) (*feed.Client, error) {
	client, err := feed.NewClient(cfg.Server, feed.Paths{
		Files:    cfg.FilesPath,
		Progress: cfg.ProgressPath,
	})
	if err != nil {
		return nil, fmt.Errorf("init feed client: %w", err)
	}
	return client, nil
}
