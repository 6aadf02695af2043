package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappycat/internal/assets"
	"github.com/vovakirdan/flappycat/internal/games/flappy"
	"github.com/vovakirdan/flappycat/internal/platform/window"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open a 400x600 window and play with the keyboard, mouse or touch.

Controls:
  Space/Up/Click/Touch - Start, flap, replay
  Enter                - Start, replay`,
	RunE: runWindow,
}

func runWindow(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	rt, err := setup(ctx, os.Stderr, "flappycat")
	if err != nil {
		return err
	}

	surface, err := window.NewSurface(rt.cfg.Screen.Width, rt.cfg.Screen.Height, rt.sprite, rt.logger)
	if err != nil {
		return err
	}
	session := flappy.NewSession(rt.cfg, flappy.Options{
		Seed:       rt.seed,
		BirdAspect: rt.sprite.Aspect(assets.Bird),
		Logger:     rt.logger,
	})

	return window.Run(window.NewApp(ctx, session, surface, rt.logger))
}
