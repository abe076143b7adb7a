// kujira is a tile-world swimming game rendered entirely in software.
//
// Usage:
//
//	kujira play              - Open a window and play
//	kujira snapshot          - Run headless and save a frame as WebP
//
// Global flags:
//
//	--config <path>  - Load settings from a YAML file
//	--seed <value>   - Map generation seed (default: 1)
//	--walk <n>       - Number of walkable tiles to generate
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig string
	flagSeed   uint64
	flagWalk   int
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "kujira",
	Short: "Kujira - swim a whale across a scrolling tile sea",
	Long: `Kujira generates an island sea by random walk and lets you swim a
whale across it, one tile at a time.

Controls:
  Arrow keys - Swim
  Z / X      - Shrink / grow the sprite
  R          - Spawn a test ripple
  Q          - Quit

Examples:
  kujira play
  kujira play --seed 7 --fullscreen
  kujira snapshot --ticks 120 --out frame.webp
  kujira snapshot --script moves.json --out frame.webp`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to settings YAML")
	rootCmd.PersistentFlags().Uint64Var(&flagSeed, "seed", 1, "Map generation seed")
	rootCmd.PersistentFlags().IntVar(&flagWalk, "walk", 0, "Walkable tiles to generate (0 = default)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(snapshotCmd)
}
