// drizzle is an arcade game about catching falling raindrops in a bucket.
//
// Usage:
//
//	drizzle                  - Play the game
//	drizzle play             - Play the game
//	drizzle sim              - Run a headless simulation of the game rules
//	drizzle replay           - Verify a recorded simulation
//	drizzle scores           - Show the saved high scores
//	drizzle version          - Print the version
//
// Global flags:
//
//	--log-level <level>  - Set log level (default: info)
//	--config <path>      - Set config file path
//	--db <path>          - Set scores database path ("off" disables persistence)
//	--seed <value>       - Set RNG seed for reproducible gameplay
package main

import (
	"fmt"
	"os"

	"github.com/cbodonnell/drizzle/pkg/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagLogLevel string
	flagConfig   string
	flagDBPath   string
	flagSeed     int64
	flagDebug    bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "drizzle",
	Short: "Drizzle - catch the rain in your bucket",
	Long: `Drizzle is an arcade game about catching falling raindrops
in a bucket before they hit the ground.

Available commands:
  play     - Play the game (also the default)
  sim      - Run a headless simulation of the game rules
  replay   - Verify a recorded simulation
  scores   - View saved high scores
  version  - Print the version

Examples:
  drizzle
  drizzle play --seed 42
  drizzle sim --steps 7200 --record run.drz
  drizzle replay --in run.drz
  drizzle scores`,
	PersistentPreRun: setupLogging,
	Run:              runPlay,
}

func setupLogging(cmd *cobra.Command, args []string) {
	parsedLogLevel, err := log.ParseLogLevel(flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid log level %q\n", flagLogLevel)
		os.Exit(1)
	}
	logger := log.New(os.Stdout, "", log.DefaultLoggerFlag, parsedLogLevel)
	log.SetDefaultLogger(logger)
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level (error, warn, info, debug, trace)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a config YAML file")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", `Path to the scores database ("off" disables persistence)`)
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Show the debug overlay")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(versionCmd)
}
