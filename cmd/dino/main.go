// dino is an endless runner for the terminal: jump over obstacles and
// survive as long as possible.
//
// Usage:
//
//	dino                 - Play (same as "dino play")
//	dino play            - Play the game
//	dino config          - Print the effective configuration
//	dino controls        - List key bindings
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--config <path>      - Use a custom config YAML
//	--mute               - Play without sound
//	--log <path>         - Write logs to a file
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
	flagMute     bool
	flagLogPath  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dino",
	Short: "Dino Runner - jump over obstacles in your terminal",
	Long: `Dino Runner is a terminal endless runner. Jump over the obstacles
sliding towards you; every second survived adds a point.

Available commands:
  play      - Play the game (default)
  config    - Print the effective configuration
  controls  - List key bindings

Examples:
  dino
  dino play --seed 42
  dino play --config ./my-dino.yaml --log dino.log
  dino config > ~/.dino/configs/dino.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable sound")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write logs to this file (default: no logging)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(controlsCmd)
}
