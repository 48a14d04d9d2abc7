// Package cli is the command tree. The bare command opens the dashboard;
// the per-backend subcommands run a single operation through the same state
// machine and print the result.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/atomicstack/servarr-dash/internal/config"
	"github.com/atomicstack/servarr-dash/internal/logging"
	"github.com/atomicstack/servarr-dash/internal/route"
)

// ErrNotInteractive is returned when the dashboard is started without a
// terminal on stdout.
var ErrNotInteractive = errors.New("the dashboard needs a terminal; run a subcommand such as 'radarr list library'")

// ConfigError marks a configuration problem, which exits with status 2.
type ConfigError struct {
	Err error
}

func (e *ConfigError) Error() string {
	return "configuration error: " + e.Err.Error()
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Options carries what the command tree needs from main.
type Options struct {
	Version string
	// Environ defaults to os.Environ.
	Environ []string
	// RunTUI starts the dashboard.
	RunTUI func(ctx context.Context, cfg config.Config) error
	// Startup runs once configuration and logging are ready.
	Startup func(cfg config.Config)
	// Interactive overrides terminal detection on stdout.
	Interactive func(w io.Writer) bool
}

type runner struct {
	opts     Options
	cfg      config.Config
	closeLog func() error
}

// NewRootCmd builds the command tree.
func NewRootCmd(opts Options) *cobra.Command {
	root, _ := newRootCmd(opts)
	return root
}

func newRootCmd(opts Options) (*cobra.Command, *runner) {
	if opts.Environ == nil {
		opts.Environ = os.Environ()
	}
	if opts.Interactive == nil {
		opts.Interactive = isTerminal
	}
	r := &runner{opts: opts}

	root := &cobra.Command{
		Use:   "servarr-dash",
		Short: "Terminal dashboard for Radarr, Sonarr and Lidarr",
		Long: "servarr-dash browses and manages Radarr, Sonarr and Lidarr servers.\n" +
			"Run it without arguments for the interactive dashboard, or use a backend\n" +
			"subcommand for one-shot listings and actions.",
		Version:           opts.Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: r.setup,
		PersistentPostRunE: func(*cobra.Command, []string) error {
			return r.teardown()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !r.opts.Interactive(cmd.OutOrStdout()) {
				return ErrNotInteractive
			}
			if r.opts.RunTUI == nil {
				return errors.New("no dashboard available")
			}
			return r.opts.RunTUI(cmd.Context(), r.cfg)
		},
	}
	config.RegisterFlags(root.PersistentFlags())
	for _, b := range route.AllBackends() {
		root.AddCommand(r.backendCmd(b))
	}
	return root, r
}

// Execute runs the command tree. Help and errors are styled and printed by
// fang. The log file is closed even when a command fails, since cobra skips
// post-run hooks then.
func Execute(ctx context.Context, opts Options) error {
	root, r := newRootCmd(opts)
	err := fang.Execute(ctx, root, fang.WithVersion(opts.Version))
	if err != nil {
		logging.Error(err)
	}
	if cerr := r.teardown(); err == nil {
		err = cerr
	}
	return err
}

func (r *runner) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.FromFlags(cmd.Flags(), r.opts.Environ)
	if err != nil {
		return &ConfigError{Err: err}
	}
	if err := config.Validate(cfg); err != nil {
		return &ConfigError{Err: err}
	}
	closeLog, err := logging.Setup(logging.Options{
		Path:  cfg.Logging.File,
		Level: cfg.Logging.Level,
		Trace: cfg.Logging.Trace,
	})
	if err != nil {
		return fmt.Errorf("set up logging: %w", err)
	}
	r.cfg = cfg
	r.closeLog = closeLog
	if r.opts.Startup != nil {
		r.opts.Startup(cfg)
	}
	return nil
}

func (r *runner) teardown() error {
	if r.closeLog == nil {
		return nil
	}
	err := r.closeLog()
	r.closeLog = nil
	return err
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
