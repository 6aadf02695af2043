package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappycat/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration the game would run with, after applying the
search order:

  1. --config <path>
  2. ~/.flappycat/flappy.yaml
  3. ./configs/flappy.yaml
  4. embedded defaults

The output is valid YAML and can be saved as a starting point.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
