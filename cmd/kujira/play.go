package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/phanxgames/kujira"
)

var (
	flagFullscreen bool
	flagShowFPS    bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Open a window and play",
	Long: `Open a window and swim the whale around the generated sea.

Examples:
  kujira play
  kujira play --seed 7 --fullscreen
  kujira play --config my-settings.yaml --show-fps`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagFullscreen, "fullscreen", false, "Start in fullscreen")
	playCmd.Flags().BoolVar(&flagShowFPS, "show-fps", false, "Overlay frame and tick rates")
}

func runPlay(cmd *cobra.Command, args []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "kujira",
	})

	w, cfg, err := buildWorld(cmd)
	if err != nil {
		logger.Fatal("could not build world", "error", err)
	}
	if cmd.Flags().Changed("fullscreen") {
		cfg.Fullscreen = flagFullscreen
	}
	if cmd.Flags().Changed("show-fps") {
		cfg.ShowFPS = flagShowFPS
	}

	logger.Info("starting", "seed", cfg.Seed, "tiles", w.Tiles.Len())
	if err := kujira.Run(w, kujira.RunConfig{
		Fullscreen: cfg.Fullscreen,
		ShowFPS:    cfg.ShowFPS,
	}); err != nil {
		logger.Fatal("run failed", "error", err)
	}
}
