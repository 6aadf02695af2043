package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/flappycat/internal/assets"
	"github.com/vovakirdan/flappycat/internal/games/flappy"
	"github.com/vovakirdan/flappycat/internal/platform/tui"
)

var termCmd = &cobra.Command{
	Use:   "term",
	Short: "Play in the terminal",
	Long: `Play in the current terminal. The playfield keeps its proportions and is
centered in the window. Logs go to ~/.flappycat/flappycat.log.

Controls:
  Space/Up/Click - Start, flap, replay
  Enter          - Start, replay
  Ctrl+S         - Save a text screenshot
  Q/Ctrl+C       - Quit`,
	RunE: runTerm,
}

func runTerm(cmd *cobra.Command, _ []string) error {
	logFile, err := openLogFile()
	if err != nil {
		return err
	}
	defer logFile.Close()

	rt, err := setup(cmd.Context(), logFile, "flappycat-term")
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	session := flappy.NewSession(rt.cfg, flappy.Options{
		Seed:       rt.seed,
		BirdAspect: rt.sprite.Aspect(assets.Bird),
		Logger:     rt.logger,
	})

	return tui.Run(session, tui.Options{
		Cols:          width,
		Rows:          height,
		TickRate:      rt.cfg.Screen.TickRate,
		Available:     tui.SpriteSet(rt.sprite),
		ScreenshotDir: filepath.Join(filepath.Dir(logFile.Name()), "screenshots"),
		Logger:        rt.logger,
	})
}
