package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"compete/cmd/compete/dashboard"
	"compete/internal/actions"
	"compete/internal/config"
	"compete/internal/logging"
	"compete/internal/metrics"
	"compete/internal/theme"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// app is the state shared by every subcommand of one invocation.
type app struct {
	// Global flags
	verbose     bool
	configPath  string
	dumpMetrics bool
	dryRun      bool

	logger  *zap.Logger
	cfg     *config.Config
	metrics *metrics.Metrics
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "compete",
		Short: "CompeteProtocol - browse and create on-chain competitions",
		Long: `compete is a terminal dashboard for CompeteProtocol competitions.

Browse the catalogue with search, type/status/verification filters and a
prize range, view details, join, and draft new competitions with the
four-step create wizard.

Run without arguments to start the interactive dashboard.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return a.teardown(cmd)
		},
		RunE: a.runDashboard,
	}

	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", config.DefaultConfigPath, "Config file path")
	rootCmd.PersistentFlags().BoolVar(&a.dumpMetrics, "metrics", false, "Print collected metrics to stderr on exit")
	rootCmd.PersistentFlags().BoolVar(&a.dryRun, "dry-run", false, "Record join/view/deploy requests instead of sending them")

	rootCmd.AddCommand(newListCmd(a))
	rootCmd.AddCommand(newShowCmd(a))
	rootCmd.AddCommand(newStatsCmd(a))
	rootCmd.AddCommand(newTypesCmd(a))
	rootCmd.AddCommand(newConfigCmd(a))
	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setup builds the logger, resolves configuration and starts file logging.
func (a *app) setup(cmd *cobra.Command) error {
	// The dashboard owns the terminal; only subcommands log to stderr.
	if cmd.Parent() == nil {
		a.logger = zap.NewNop()
	} else {
		zc := zap.NewProductionConfig()
		if a.verbose {
			zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		logger, err := zc.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		a.logger = logger
	}

	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.dryRun {
		cfg.Actions.Collaborator = config.CollaboratorRecorder
	}
	if a.verbose {
		cfg.Logging.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config %s: %w", a.configPath, err)
	}
	a.cfg = cfg

	if err := logging.Initialize(cfg.Logging.Dir, cfg.Logging.Options()); err != nil {
		a.logger.Warn("file logging disabled", zap.Error(err))
	}
	logging.Boot("compete starting: command=%s config=%s collaborator=%s", cmd.Name(), a.configPath, cfg.Actions.Collaborator)

	a.metrics = metrics.New()
	a.logger.Debug("configuration loaded",
		zap.String("path", a.configPath),
		zap.String("theme", cfg.Theme),
		zap.String("collaborator", cfg.Actions.Collaborator),
	)
	return nil
}

func (a *app) teardown(cmd *cobra.Command) error {
	defer logging.CloseAll()
	if a.logger != nil {
		defer func() { _ = a.logger.Sync() }()
	}
	if a.dumpMetrics && a.metrics != nil {
		return a.metrics.Dump(cmd.ErrOrStderr())
	}
	return nil
}

func (a *app) collaborators() (actions.Collaborators, error) {
	return actions.NewCollaborators(a.cfg.Actions, a.metrics)
}

func (a *app) runDashboard(cmd *cobra.Command, args []string) error {
	collabs, err := a.collaborators()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmdContext(cmd), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	m := dashboard.New(a.cfg, dashboard.Deps{
		Theme:   theme.Detect(a.cfg.Theme),
		Actions: collabs,
		Metrics: a.metrics,
		Context: ctx,
	})
	return dashboard.Run(ctx, m)
}

func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
