package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/brettbedarf/netnode/config"
	"github.com/brettbedarf/netnode/internal/util"
	"github.com/brettbedarf/netnode/server"
	"github.com/brettbedarf/netnode/terminal"
	"github.com/brettbedarf/netnode/world"
	"github.com/spf13/cobra"
)

type options struct {
	worldPath  string
	configPath string
	logFile    string
	seed       int64
	verbose    int
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "netnode:", err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:   "netnode",
		Short: "Neural-link terminal: navigate, hack and decrypt a simulated network node",
		Long: `netnode runs an interactive terminal session over a simulated resource
tree. Locked directories and encrypted files are opened by winning short
recall and arithmetic challenges.

Configuration precedence is defaults < --config file < NETNODE_* env < flags.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.worldPath, "world", "w", "", "Path to a world definition file (.yaml, .yml or .json); the built-in world when empty")
	flags.StringVarP(&opts.configPath, "config", "c", "", "Path to a config file (.yaml, .yml or .json)")
	flags.Int64VarP(&opts.seed, "seed", "s", 0, "Challenge RNG seed for reproducible runs (any value, 0 included); random when unset")
	flags.IntVarP(&opts.verbose, "verbose", "v", config.DefaultVerbose, "Log verbosity level between 1 (error) and 5 (trace)")
	flags.StringVar(&opts.logFile, "log-file", "", "Write logs to this file instead of stderr")

	return cmd
}

// loadConfig layers the config file, the environment and explicitly set
// flags over the defaults.
func loadConfig(cmd *cobra.Command, opts options) (*config.Config, error) {
	cfg := config.NewDefaultConfig()
	if opts.configPath != "" {
		var err error
		if cfg, err = config.NewConfigFromFile(opts.configPath); err != nil {
			return nil, fmt.Errorf("load config %s: %w", opts.configPath, err)
		}
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Seed = util.Pointer(opts.seed)
	}
	if flags.Changed("verbose") {
		cfg.LogLvl = config.VerboseToLogLevel(opts.verbose)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func run(cmd *cobra.Command, opts options) error {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}

	var logOut io.Writer
	if opts.logFile != "" {
		f, err := os.OpenFile(opts.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close() // nolint:errcheck
		logOut = f
	} else {
		logOut = cmd.ErrOrStderr()
	}
	util.InitializeLogger(cfg.LogLvl, logOut)
	logger := util.GetLogger("main")
	logger.Info().Str("world", opts.worldPath).Str("config", opts.configPath).Msg("NetNode initializing")

	w, err := world.Load(opts.worldPath)
	if err != nil {
		return fmt.Errorf("load world: %w", err)
	}
	node, err := server.New(cfg, w)
	if err != nil {
		return err
	}

	in := cmd.InOrStdin()
	interactive := false
	if f, ok := in.(*os.File); ok {
		interactive = terminal.IsInteractive(f)
	}
	console := terminal.NewStreamConsole(in, cmd.OutOrStdout(), interactive)
	logger.Debug().Bool("interactive", console.Interactive()).Msg("Console attached")

	// A pending read cannot observe cancellation, so a signal ends the
	// process without waiting for the session to return.
	ctx := cmd.Context()
	select {
	case err := <-node.ServeAsync(ctx, console):
		if err != nil {
			logger.Error().Err(err).Msg("Session ended abnormally")
			return err
		}
	case <-ctx.Done():
		logger.Info().Msg("Received signal, closing session")
		return fmt.Errorf("interrupted: %w", context.Cause(ctx))
	}
	logger.Info().Msg("Session closed")
	return nil
}
