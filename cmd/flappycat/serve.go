package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappycat/internal/assets"
	"github.com/vovakirdan/flappycat/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Flappy Cat SSH server",
	Long: `Start an SSH server that allows users to connect and play in their terminal.

Each SSH connection gets its own independent game. Nothing is shared between
connections.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.flappycat/host_key

Examples:
  flappycat serve                           # Listen on :23234 with auto-generated key
  flappycat serve --ssh :2222               # Listen on port 2222
  flappycat serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23234`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	rt, err := setup(ctx, os.Stderr, "flappycat-ssh")
	if err != nil {
		return err
	}

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
	}
	game := tui.GameSetup{
		Config:     rt.cfg,
		BirdAspect: rt.sprite.Aspect(assets.Bird),
		Available:  tui.SpriteSet(rt.sprite),
		Seed:       flagSeed,
	}

	server, err := tui.NewSSHServer(cfg, game, rt.logger)
	if err != nil {
		return err
	}

	fmt.Printf("Starting Flappy Cat SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe(ctx)
}
