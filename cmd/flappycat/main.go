// flappycat is a Flappy Bird-style arcade game starring a cat.
//
// Usage:
//
//	flappycat                - Play in a desktop window (same as "window")
//	flappycat window         - Play in a desktop window
//	flappycat term           - Play in the terminal
//	flappycat serve          - Start SSH server for remote play
//	flappycat config         - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Game config YAML (default: search path, then embedded)
//	--seed <value>      - RNG seed for reproducible gap placement
//	--assets <dir>      - Load sprites from a directory instead of the binary
//	--log-level <level> - debug, info, warn or error (default: info)
package main

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappycat/internal/assets"
	"github.com/vovakirdan/flappycat/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagAssets   string
	flagLogLevel string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappycat",
	Short: "Flappy Cat - guide a cat through an endless stream of pipes",
	Long: `Flappy Cat is a single-screen arcade game: flap to keep the cat in the
air and pass through the gaps between pipes. Every pipe passed scores a point.

Available commands:
  window   - Play in a desktop window (default)
  term     - Play in the terminal
  serve    - Start SSH server for remote play
  config   - Print the effective configuration

Examples:
  flappycat
  flappycat term --seed 42
  flappycat serve --ssh :2222
  flappycat config --config ./my-flappy.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runWindow,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagAssets, "assets", "", "Directory of sprite PNGs (default: embedded sprites)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(termCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// runtime is what every frontend needs before it can start.
type runtime struct {
	cfg    config.Config
	sprite *assets.Set
	seed   int64
	logger *log.Logger
}

// setup builds the logger, loads the configuration and preloads every sprite.
// Sprite failures are logged and never stop startup.
func setup(ctx context.Context, logOut io.Writer, prefix string) (*runtime, error) {
	logger, err := newLogger(logOut, prefix)
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}

	var fsys fs.FS = assets.Embedded()
	if flagAssets != "" {
		fsys = os.DirFS(flagAssets)
	}
	set := assets.Load(ctx, fsys, assets.Manifest, logger)

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Debug("runtime ready", "seed", seed, "assets", assetSource())

	return &runtime{cfg: cfg, sprite: set, seed: seed, logger: logger}, nil
}

func newLogger(w io.Writer, prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	}), nil
}

func assetSource() string {
	if flagAssets == "" {
		return "embedded"
	}
	return flagAssets
}

// openLogFile opens ~/.flappycat/flappycat.log for frontends that own the
// terminal.
func openLogFile() (*os.File, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("cannot get home directory: %w", err)
	}
	dir := filepath.Join(home, ".flappycat")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("cannot create %s: %w", dir, err)
	}
	f, err := os.OpenFile(filepath.Join(dir, "flappycat.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("cannot open log file: %w", err)
	}
	return f, nil
}
