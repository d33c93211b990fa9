package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lao-tseu-is-alive/go-snowfield/pkg/field"
	"github.com/lao-tseu-is-alive/go-snowfield/pkg/terminal"
)

func newTermCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "term",
		Short: "Run the particle field in the terminal",
		Long: `Run the particle field in the terminal, one glyph per cell. The mouse
pushes particles when the terminal reports motion; q, Escape or Ctrl-C quit.
Logs go to logger.log_file only while the terminal is in use.`,
		Args:        cobra.NoArgs,
		Annotations: map[string]string{quietConsole: "true"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			screen, err := terminal.NewScreen()
			if err != nil {
				return err
			}
			host, err := a.startHost(ctx)
			if err != nil {
				screen.Fini()
				return err
			}
			defer a.stopHost(host)
			stopWatch := a.watchConfig(ctx, func(cfg field.Config) {
				if err := host.Reconfigure(cfg); err != nil {
					a.logger.Warn("reloaded field config rejected", zap.Error(err))
				}
			})
			defer stopWatch()

			return terminal.Run(ctx, screen, host, a.cfg.Terminal, a.logger.Named("term"))
		},
	}
}
