// invaders is a two-player Space Invaders duel for the terminal.
//
// Usage:
//
//	invaders                 - Play a duel (same as "invaders play")
//	invaders play            - Play a duel
//	invaders config          - Print the effective duel config as YAML
//	invaders controls        - Show the key bindings of both sides
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible star placement
//	--config <path>      - Use a custom duel config YAML
//	--log-file <path>    - Write logs to a file (default: no logging)
//	--log-level <level>  - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "invaders",
	Short: "Space Invaders Duel - two players, one keyboard",
	Long: `Space Invaders Duel is a terminal shooter for two players sharing
one keyboard. The player defends the bottom of the arena, the enemy
attacks from the top. Shoot the star for extra lives.

Available commands:
  play      - Start a duel (default)
  config    - Print the effective duel config
  controls  - Show the key bindings

Examples:
  invaders
  invaders play --fps 30
  invaders play --config ./my-duel.yaml --log-file duel.log
  invaders config > ~/.invaders/configs/duel.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom duel config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(controlsCmd)
}
