// Package cli wires the cobra commands to the task store.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/pablasso/taskboard/internal/board"
	"github.com/pablasso/taskboard/internal/config"
	"github.com/pablasso/taskboard/internal/logging"
	"github.com/pablasso/taskboard/internal/storage"
	"github.com/pablasso/taskboard/internal/tui"
	"github.com/pablasso/taskboard/internal/version"
)

// annotationConfigTarget marks commands that write --config instead of reading it.
const annotationConfigTarget = "taskboard/config-target"

// app holds the state shared by every command of one invocation.
type app struct {
	configPath string
	backend    string
	dataDir    string
	key        string
	ephemeral  bool
	inline     bool
	verbose    bool

	cfg           *config.Config
	logger        *slog.Logger
	closeLog      func() error
	correlationID uuid.UUID
	startedAt     time.Time
}

// Execute runs the root command with os.Args.
func Execute() error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	return execute(ctx, os.Args[1:], os.Stdout, os.Stderr)
}

func execute(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	root, a := newRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	cmd, err := root.ExecuteContextC(ctx)
	a.finish(cmd, err)
	return err
}

func newRootCmd() (*cobra.Command, *app) {
	a := &app{
		logger:   slog.New(slog.DiscardHandler),
		closeLog: func() error { return nil },
	}

	root := &cobra.Command{
		Use:   "taskboard",
		Short: "Keep a small task list in the terminal",
		Long: `Taskboard keeps a list of tasks, each Not-Started, In-progress or Completed.
Run it without arguments for the interactive board, or use the subcommands from scripts.`,
		Version:           version.String(),
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withStore(cmd, func(store *board.Store) error {
				return tui.Run(cmd.Context(), store, tui.Options{
					Inline: a.inline,
					Input:  cmd.InOrStdin(),
					Output: cmd.OutOrStdout(),
				})
			})
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "config file (default "+config.DefaultPath()+")")
	flags.StringVar(&a.backend, "backend", "", "storage backend: file|sqlite|redis|memory")
	flags.StringVar(&a.dataDir, "data", "", "data directory for the file and sqlite backends")
	flags.StringVar(&a.key, "key", "", "storage key holding the task list")
	flags.BoolVar(&a.ephemeral, "ephemeral", false, "keep tasks in memory only for this run")
	flags.BoolVar(&a.inline, "inline", false, "draw the board in the normal screen instead of the alternate screen")
	flags.BoolVar(&a.verbose, "verbose", false, "write debug logs")

	root.AddCommand(
		newAddCmd(a),
		newListCmd(a),
		newAdvanceCmd(a),
		newRemoveCmd(a),
		newCompleteAllCmd(a),
		newClearCompletedCmd(a),
		newInitCmd(a),
	)

	return root, a
}

// setup loads configuration, applies flag overrides and starts logging.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	explicit := a.configPath
	if cmd.Annotations[annotationConfigTarget] == "true" {
		explicit = ""
	}

	cfg, err := config.Load(explicit)
	if err != nil {
		return err
	}

	if a.backend != "" {
		cfg.Storage.Backend = a.backend
	}
	if a.dataDir != "" {
		cfg.Storage.Dir = a.dataDir
	}
	if a.key != "" {
		cfg.Storage.Key = a.key
	}
	if a.ephemeral {
		cfg.Storage.Backend = string(storage.BackendMemory)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	logger, closeLog, err := logging.New(logging.Options{
		Level:   cfg.Log.Level,
		File:    cfg.LogFile(),
		Verbose: a.verbose,
	})
	if err != nil {
		return err
	}

	a.correlationID = uuid.New()
	a.startedAt = time.Now()
	a.logger = logger.With("correlation_id", a.correlationID.String())
	a.closeLog = closeLog

	a.logger.Info("command start",
		"command", cmd.CommandPath(),
		"backend", cfg.Storage.Backend,
	)
	return nil
}

// finish logs the outcome and closes the log file.
func (a *app) finish(cmd *cobra.Command, err error) {
	if a.startedAt.IsZero() {
		return
	}

	attrs := []any{"duration_ms", time.Since(a.startedAt).Milliseconds()}
	if cmd != nil {
		attrs = append(attrs, "command", cmd.CommandPath())
	}
	if err != nil {
		attrs = append(attrs, "error", err)
	}
	a.logger.Info("command end", attrs...)

	if err := a.closeLog(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to close log file: %v\n", err)
	}
}

// withStore opens the configured storage, builds the store, runs fn and closes the storage.
func (a *app) withStore(cmd *cobra.Command, fn func(*board.Store) error) error {
	ctx := cmd.Context()

	adapter, err := storage.Open(ctx, a.cfg.StorageOptions())
	if err != nil {
		return err
	}
	defer func() {
		if err := adapter.Close(); err != nil {
			a.logger.Warn("failed to close storage", "error", err)
		}
	}()

	store, err := board.New(ctx, adapter,
		board.WithLogger(a.logger),
		board.WithPolicy(a.cfg.Policy()),
	)
	if err != nil {
		return err
	}

	return fn(store)
}
