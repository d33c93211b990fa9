package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lao-tseu-is-alive/go-snowfield/pkg/window"
)

func newWindowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "window",
		Short: "Open the particle field in a desktop window",
		Long: `Open the particle field in a resizable window. Move the pointer through
the field to push particles away; leave the window and they drift home.
Tab shows or hides the settings panel, Escape quits.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runWindow(cmd)
		},
	}
}

func (a *app) runWindow(cmd *cobra.Command) error {
	ctx := cmd.Context()
	host, err := a.startHost(ctx)
	if err != nil {
		return err
	}
	defer a.stopHost(host)

	w := a.cfg.Window
	ebiten.SetWindowSize(w.Width, w.Height)
	ebiten.SetWindowTitle(w.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(w.TPS)

	a.logger.Info("🚀 opening window",
		zap.Int("width", w.Width), zap.Int("height", w.Height),
		zap.Int("particles", a.cfg.Field.ParticleCount))

	// The game owns field config edits, so reloads go through it.
	game := window.NewGame(a.cfg.Game(), host, a.logger.Named("game"))
	stopWatch := a.watchConfig(ctx, game.Reload)
	defer stopWatch()

	if err := ebiten.RunGame(game); err != nil {
		return err
	}
	a.logger.Info("window closed")
	return nil
}
