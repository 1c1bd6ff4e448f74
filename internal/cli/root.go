// Package cli implements the corkboard command-line interface.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/corkboard/internal/logging"
	"github.com/mesh-intelligence/corkboard/internal/metrics"
	"github.com/mesh-intelligence/corkboard/internal/paths"
	"github.com/mesh-intelligence/corkboard/pkg/board"
	"github.com/mesh-intelligence/corkboard/pkg/corkboard"
	"github.com/mesh-intelligence/corkboard/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// annotationNoBoard marks commands that run without an open board.
const annotationNoBoard = "corkboard/no-board"

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir   string
	dataDir     string
	jsonMode    bool
	metricsFile string
}

// app is the state shared by the commands of one process. In shell mode it
// outlives individual command trees so the board and its undo history stay
// open between lines.
type app struct {
	flags rootFlags

	board    *corkboard.Board
	cfg      types.Config
	registry *prometheus.Registry
	log      *slog.Logger
	session  bool

	// boardOpts are appended when opening the board; tests inject
	// deterministic clocks and IDs here.
	boardOpts []board.Option
}

// NewRootCmd creates the top-level "corkboard" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	return newRootCmd(&app{})
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "corkboard",
		Short: "A cork board of notes, checklists and images",
		Long: "Corkboard keeps a board of pinned notes, checklists and images with\n" +
			"undo history and named snapshots, stored in a local backend.",
		// Do not print usage on errors returned by subcommands.
		SilenceUsage:      true,
		PersistentPreRunE: a.open,
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if a.session {
				return nil
			}
			return a.close()
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.flags.configDir, "config-dir", a.flags.configDir, "configuration directory (default: $XDG_CONFIG_HOME/corkboard)")
	pf.StringVar(&a.flags.dataDir, "data-dir", a.flags.dataDir, "data directory (default: $XDG_DATA_HOME/corkboard)")
	pf.BoolVar(&a.flags.jsonMode, "json", a.flags.jsonMode, "output in JSON format")
	pf.StringVar(&a.flags.metricsFile, "metrics-file", a.flags.metricsFile, "write Prometheus metrics to this file on exit")

	root.AddCommand(
		newVersionCmd(),
		newInitCmd(a),
		newPinCmd(a),
		newItemCmd(a),
		newTagCmd(a),
		newViewCmd(a),
		newUndoCmd(a),
		newRedoCmd(a),
		newSnapshotCmd(a),
		newClearCmd(a),
		newExportCmd(a),
		newStorageCmd(a),
	)
	if !a.session {
		root.AddCommand(newShellCmd(a))
	}
	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	a := &app{}
	root := newRootCmd(a)
	err := root.Execute()
	if a.board != nil {
		_ = a.close()
	}
	os.Exit(exitCode(err))
}

// exitCode maps an error to the process exit status. Usage mistakes and
// rejected board operations are user errors; anything else is a system error.
func exitCode(err error) int {
	var usage *usageError
	switch {
	case err == nil:
		return exitSuccess
	case errors.As(err, &usage),
		errors.Is(err, types.ErrNotFound),
		errors.Is(err, types.ErrInvalidName),
		errors.Is(err, types.ErrInvalidTag),
		errors.Is(err, types.ErrInvalidDraft),
		errors.Is(err, types.ErrInvalidPatch),
		errors.Is(err, types.ErrWrongPinType),
		errors.Is(err, types.ErrBackendUnknown),
		errors.Is(err, types.ErrBackendEmpty),
		errors.Is(err, types.ErrInvalidCapacity):
		return exitUserError
	default:
		return exitSysError
	}
}

// usageError is a malformed argument.
type usageError struct{ msg string }

func (e *usageError) Error() string { return e.msg }

func usagef(format string, args ...any) error {
	return &usageError{msg: fmt.Sprintf(format, args...)}
}

// open loads config and opens the board for commands that need it.
func (a *app) open(cmd *cobra.Command, args []string) error {
	if cmd.Annotations[annotationNoBoard] == "true" || a.board != nil {
		return nil
	}

	settings, err := a.settings()
	if err != nil {
		return err
	}
	a.log = logging.New(settings.LogLevel, settings.LogFormat, cmd.ErrOrStderr())
	a.registry = prometheus.NewRegistry()

	opts := []board.Option{
		board.WithLogger(a.log),
		board.WithMetrics(metrics.New(a.registry)),
	}
	b, err := corkboard.Open(settings.Config, append(opts, a.boardOpts...)...)
	if err != nil {
		return fmt.Errorf("open board: %w", err)
	}
	a.board = b
	a.cfg = settings.Config
	a.log.Debug("board opened", "backend", settings.Config.Backend, "data_dir", settings.Config.DataDir)
	return nil
}

// close writes the metrics file, if requested, and detaches the board.
func (a *app) close() error {
	if a.board == nil {
		return nil
	}
	var errs []error
	if a.flags.metricsFile != "" && a.registry != nil {
		if err := prometheus.WriteToTextfile(a.flags.metricsFile, a.registry); err != nil {
			errs = append(errs, fmt.Errorf("write metrics: %w", err))
		}
	}
	if err := a.board.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close board: %w", err))
	}
	a.board = nil
	return errors.Join(errs...)
}

// settings resolves directories and reads config.yaml.
func (a *app) settings() (settings, error) {
	configDir, err := paths.ResolveConfigDir(a.flags.configDir)
	if err != nil {
		return settings{}, fmt.Errorf("resolve config dir: %w", err)
	}
	s, err := loadSettings(configDir)
	if err != nil {
		return settings{}, err
	}
	dataDir, err := paths.ResolveDataDir(a.flags.dataDir, s.Config.DataDir)
	if err != nil {
		return settings{}, fmt.Errorf("resolve data dir: %w", err)
	}
	s.Config.DataDir = dataDir
	return s, nil
}

// out is the writer commands print results to.
func out(cmd *cobra.Command) io.Writer {
	return cmd.OutOrStdout()
}
