package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/invaders-duel/internal/config"
	"github.com/vovakirdan/invaders-duel/internal/core"
	"github.com/vovakirdan/invaders-duel/internal/game"
	"github.com/vovakirdan/invaders-duel/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a duel",
	Long: `Start a duel between the player (bottom) and the enemy (top).

Controls:
  Arrows / Space  - Player move / fire
  WASD / F        - Enemy move / fire
  Space / Enter   - Start, restart after game over
  P               - Pause
  I               - Game info (start screen)
  Q / Ctrl+C      - Quit

Examples:
  invaders play
  invaders play --seed 42
  invaders play --config ./my-duel.yaml --log-level debug --log-file duel.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	logger, closeLog, err := newLogger(flagLogFile, flagLogLevel)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // Best-effort close on exit

	duelCfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	cfg := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	cfg.Seed = seed

	engine, err := game.NewEngine(duelCfg, game.WithSeed(seed), game.WithLogger(logger))
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("starting duel", "seed", seed, "fps", cfg.TickRate, "screen", fmt.Sprintf("%dx%d", cfg.ScreenW, cfg.ScreenH))
	if err := tui.Run(ctx, engine, cfg, logger); err != nil && ctx.Err() == nil {
		return err
	}
	logger.Info("duel finished")
	return nil
}
