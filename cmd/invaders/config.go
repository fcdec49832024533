package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/invaders-duel/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective duel config",
	Long: `Print the duel config that "invaders play" would use, as YAML.

Config search order:
  1. --config <path>
  2. ~/.invaders/configs/duel.yaml
  3. ./configs/duel.yaml
  4. Built-in defaults

Examples:
  invaders config
  invaders config --defaults > ~/.invaders/configs/duel.yaml
  invaders config --config ./my-duel.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in defaults instead")
}

func runConfig(cmd *cobra.Command, args []string) error {
	if flagDefaults {
		fmt.Fprint(cmd.OutOrStdout(), string(config.DefaultYAML()))
		return nil
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	out, err := cfg.Marshal()
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), string(out))
	return nil
}
