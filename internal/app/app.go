// Package app wires configuration, logging, identifier collection and the
// presentation layer together.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/tusharlock10/hwid/internal/clipboard"
	"github.com/tusharlock10/hwid/internal/config"
	"github.com/tusharlock10/hwid/internal/fingerprint"
	"github.com/tusharlock10/hwid/internal/hardware"
	"github.com/tusharlock10/hwid/internal/ui"
)

// App computes the fingerprint and hands it to one of the front ends.
type App struct {
	config    *config.Config
	logger    *zap.Logger
	collector fingerprint.Collector
	clip      clipboard.Writer
	uiOpts    []tea.ProgramOption
}

// Option customises an App.
type Option func(*App)

// WithCollector replaces the host collector.
func WithCollector(c fingerprint.Collector) Option {
	return func(a *App) { a.collector = c }
}

// WithClipboard replaces the system clipboard.
func WithClipboard(w clipboard.Writer) Option {
	return func(a *App) { a.clip = w }
}

// WithProgramOptions passes options through to the Bubble Tea program.
func WithProgramOptions(opts ...tea.ProgramOption) Option {
	return func(a *App) { a.uiOpts = append(a.uiOpts, opts...) }
}

// New creates an App. By default it probes the running host and copies
// through the system clipboard.
func New(cfg *config.Config, logger *zap.Logger, opts ...Option) *App {
	if logger == nil {
		logger = zap.NewNop()
	}
	a := &App{config: cfg, logger: logger}
	for _, opt := range opts {
		opt(a)
	}
	if a.collector == nil {
		a.collector = hardware.NewCollector(hardware.NewSystemProber(logger), cfg.ProbeTimeout, logger)
	}
	if a.clip == nil {
		a.clip = clipboard.NewSystem(os.Stderr)
	}

	version := cfg.Version
	if version == "" {
		version = "dev"
	}
	logger.Debug("hwid starting",
		zap.String("version", version),
		zap.Duration("probe_timeout", cfg.ProbeTimeout),
		zap.String("os", runtime.GOOS),
	)
	return a
}

// SetupSignalHandler installs SIGINT/SIGTERM handlers and returns a context
// that is cancelled when a signal is received.
func SetupSignalHandler(logger *zap.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case sig := <-sigCh:
			logger.Info("received signal, shutting down", zap.Stringer("signal", sig))
			cancel()
		case <-ctx.Done():
		}
		signal.Stop(sigCh)
	}()
	return ctx, cancel
}

// Fingerprint computes the fingerprint of the host, or the sentinel string.
// A probe interrupted by ctx counts as absent, so the result is only
// meaningful if ctx is still live afterwards.
func (a *App) Fingerprint(ctx context.Context) string {
	return fingerprint.NewBuilder(a.collector, a.logger).Compute(ctx)
}

// complete computes the fingerprint and fails if ctx ended during
// collection. The digest would then cover fewer identifiers than an
// uninterrupted run and must not be shown.
func (a *App) complete(ctx context.Context) (string, error) {
	fp := a.Fingerprint(ctx)
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("fingerprint interrupted: %w", err)
	}
	return fp, nil
}

// Print writes the fingerprint to w, bare when plain is set.
func (a *App) Print(ctx context.Context, w io.Writer, plain bool) error {
	fp, err := a.complete(ctx)
	if err != nil {
		return err
	}
	if plain {
		_, err = fmt.Fprintln(w, fp)
		return err
	}
	_, err = fmt.Fprintf(w, "HWID: %s\n", fp)
	return err
}

// Copy puts the fingerprint on the clipboard and echoes it to w.
func (a *App) Copy(ctx context.Context, w io.Writer) error {
	fp, err := a.complete(ctx)
	if err != nil {
		return err
	}
	if err := a.clip.Write(fp); err != nil {
		a.logger.Warn("clipboard write failed", zap.Error(err))
		_, _ = fmt.Fprintf(w, "HWID: %s\n", fp)
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	_, err = fmt.Fprintf(w, "HWID copied to clipboard: %s\n", fp)
	return err
}

// RunWindow computes the fingerprint once and shows it in the interactive
// window until the user quits.
func (a *App) RunWindow(ctx context.Context) error {
	fp, err := a.complete(ctx)
	if err != nil {
		return err
	}
	m := ui.New(fp, a.clip)
	if err := ui.Run(ctx, m, a.uiOpts...); err != nil {
		return fmt.Errorf("run window: %w", err)
	}
	return nil
}
