package main

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"github.com/toyz/testgen/internal/config"
	"github.com/toyz/testgen/internal/generator"
	"github.com/toyz/testgen/internal/logging"
	"github.com/toyz/testgen/internal/server"
)

type serveOptions struct {
	configPath string
	envFile    string
	engine     string
	host       string
	port       int
}

func newServeCmd() *cobra.Command {
	opts := &serveOptions{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the test generation HTTP service",
		Long: `Serve POST /api/test-generator/generate. The request body is Java source;
the response is the generated test class as text/plain.

Configuration is read from defaults, a .env file, an optional YAML file,
environment variables (PORT, TESTGEN_HOST, TESTGEN_ENGINE, TESTGEN_CORS_ORIGIN,
TESTGEN_CACHE_SIZE, TESTGEN_LOG_LEVEL) and finally these flags.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveServeConfig(cmd, opts)
			if err != nil {
				return err
			}
			return runServe(cmd.Context(), cfg)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "YAML configuration file (or TESTGEN_CONFIG)")
	flags.StringVar(&opts.envFile, "env-file", "", "dotenv file to load (default: .env)")
	flags.StringVarP(&opts.engine, "engine", "e", config.EngineEcho, "HTTP engine: echo, gin or fiber")
	flags.StringVar(&opts.host, "host", "", "interface to bind")
	flags.IntVarP(&opts.port, "port", "p", 8080, "port to listen on")

	return cmd
}

// resolveServeConfig loads configuration and applies explicitly set flags on top
func resolveServeConfig(cmd *cobra.Command, opts *serveOptions) (*config.Config, error) {
	cfg, err := config.Load(config.Options{
		ConfigPath: opts.configPath,
		EnvFile:    opts.envFile,
	})
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("engine") {
		cfg.Engine = opts.engine
	}
	if flags.Changed("host") {
		cfg.Host = opts.host
	}
	if flags.Changed("port") {
		cfg.Port = opts.port
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newServeApp(cfg *config.Config, logger *zap.Logger) *fx.App {
	return fx.New(
		fx.Supply(cfg, logger),
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log.Named("fx")}
		}),
		fx.Provide(func() generator.TestGenerator { return generator.NewGenerator() }),
		server.Module,
	)
}

func runServe(ctx context.Context, cfg *config.Config) error {
	logger, err := logging.FromConfig(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	app := newServeApp(cfg, logger)
	if err := app.Err(); err != nil {
		return err
	}

	startCtx, cancel := context.WithTimeout(ctx, app.StartTimeout())
	defer cancel()
	if err := app.Start(startCtx); err != nil {
		return err
	}

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case sig := <-app.Wait():
		logger.Info("application stopped", zap.Int("exit_code", sig.ExitCode))
	}

	stopCtx, stopCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer stopCancel()
	return app.Stop(stopCtx)
}
