// tetris is a terminal tetris with SRS rotation, wall kicks, and T-spin
// scoring, playable locally or over SSH.
//
// Usage:
//
//	tetris play              - Play in the current terminal
//	tetris scores            - Show the high score table
//	tetris serve             - Start SSH server for remote play
//
// Global flags:
//
//	--seed <value>  - Set RNG seed for a reproducible piece sequence
//	--db <path>     - Set database path (default: ~/.tetris/results.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tetris",
	Short: "Tetris in your terminal",
	Long: `A terminal tetris with guideline SRS rotation, wall kicks, hold,
ghost piece, and T-spin scoring.

Available commands:
  play     - Play in the current terminal
  scores   - View the high score table
  serve    - Start SSH server for remote play

Examples:
  tetris play
  tetris play --difficulty hard
  tetris scores
  tetris serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tetris/results.db", "Path to results database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
