package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lao-tseu-is-alive/go-snowfield/internal/config"
	"github.com/lao-tseu-is-alive/go-snowfield/internal/observability"
	"github.com/lao-tseu-is-alive/go-snowfield/pkg/field"
	"github.com/lao-tseu-is-alive/go-snowfield/pkg/simulation"
)

// app carries what every subcommand needs once PersistentPreRunE ran.
type app struct {
	cfgFile   string
	logLevel  string
	particles int
	seed      uint64

	loader *config.Loader
	cfg    *config.Config
	logs   *observability.Logging
	logger *zap.Logger
}

// quietConsole marks commands that own the terminal; they log to file only.
const quietConsole = "quiet-console"

const stopTimeout = 5 * time.Second

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "snowfield",
		Short:         "A pointer-reactive particle field, in a window or a terminal",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			if a.logs == nil {
				return nil
			}
			return a.logs.Close()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&a.cfgFile, "config", "c", "", "config file (default is ./snowfield.yaml when present)")
	flags.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn or error")
	flags.IntVarP(&a.particles, "particles", "n", 0, "number of particles")
	flags.Uint64Var(&a.seed, "seed", 0, "random seed for a reproducible field (0 picks one)")
	root.SetVersionTemplate(`{{printf "%s\n" .Version}}`)

	root.AddCommand(newWindowCmd(a), newTermCmd(a), newConfigCmd(a))
	return root
}

func (a *app) init(cmd *cobra.Command) error {
	loader, err := config.NewLoader(a.cfgFile)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		loader.Override("logger.level", a.logLevel)
	}
	if flags.Changed("particles") {
		loader.Override("field.particle_count", a.particles)
	}
	if flags.Changed("seed") {
		loader.Override("seed", a.seed)
	}

	cfg, err := loader.Load()
	if err != nil {
		return err
	}
	a.loader, a.cfg = loader, cfg

	if cmd.Annotations[quietConsole] != "" {
		a.logs = observability.New(cfg.Logger, nil)
	} else {
		a.logs = observability.NewConsole(cfg.Logger)
	}
	a.logger = a.logs.Logger
	a.logger.Debug("configuration loaded",
		zap.String("file", loader.ConfigFile()),
		zap.Int("particles", cfg.Field.ParticleCount),
		zap.Uint64("seed", cfg.Seed))
	return nil
}

// startHost spawns the field actor with the configured seed and loggers.
func (a *app) startHost(ctx context.Context) (*simulation.Host, error) {
	host := simulation.NewHost(a.cfg.Field,
		simulation.WithLogger(a.logger.Named("host")),
		simulation.WithActorLogger(a.logs.ActorLogger()),
		simulation.WithFieldOptions(field.WithRand(simulation.NewRand(a.cfg.Seed))),
	)
	if err := host.Start(ctx); err != nil {
		return nil, fmt.Errorf("start field host: %w", err)
	}
	return host, nil
}

// stopHost stops host with a context that outlives the cancelled command.
func (a *app) stopHost(host *simulation.Host) {
	ctx, cancel := context.WithTimeout(context.Background(), stopTimeout)
	defer cancel()
	if err := host.Stop(ctx); err != nil {
		a.logger.Warn("field host did not stop cleanly", zap.Error(err))
	}
}

// watchConfig forwards config file edits to apply until the returned stop
// function is called. Without a config file there is nothing to watch.
func (a *app) watchConfig(ctx context.Context, apply func(field.Config)) (stop func()) {
	if a.loader.ConfigFile() == "" {
		return func() {}
	}
	logger := a.logger.Named("config")
	stopWatch := a.loader.WatchInBackground(ctx,
		func(cfg *config.Config) {
			logger.Info("config reloaded", zap.String("file", a.loader.ConfigFile()),
				zap.Int("particles", cfg.Field.ParticleCount))
			apply(cfg.Field)
		},
		func(err error) {
			logger.Warn("config reload failed", zap.Error(err))
		})
	return func() {
		if err := stopWatch(); err != nil {
			logger.Warn("config watch stopped", zap.Error(err))
		}
	}
}
