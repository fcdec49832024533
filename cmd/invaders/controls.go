package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/invaders-duel/internal/platform/tui"
)

var controlsCmd = &cobra.Command{
	Use:   "controls",
	Short: "Show the key bindings",
	Long:  `Shows the keys of both sides and the global keys.`,
	Args:  cobra.NoArgs,
	Run:   runControls,
}

func runControls(cmd *cobra.Command, args []string) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Controls:")
	fmt.Fprintln(out)
	fmt.Fprintln(out, tui.ControlsView(tui.DefaultKeyMap()))
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'invaders play' to start a duel.")
}
