package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sakataka/tetris-game2-sub000/internal/config"
	"github.com/sakataka/tetris-game2-sub000/internal/platform/tui"
	"github.com/sakataka/tetris-game2-sub000/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the current terminal",
	Long: `Start a game in the current terminal.

Controls:
  Left/Right   - Move
  Up/X         - Rotate clockwise
  Z            - Rotate 180
  Down         - Soft drop
  Space        - Hard drop
  C            - Hold
  P/Esc        - Pause
  R            - Restart (after game over)
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Slow gravity curve
  normal - The configured gravity curve
  hard   - Fast gravity curve
  fixed  - Gravity never speeds up

Examples:
  tetris play
  tetris play --difficulty hard
  tetris play --seed 12345
  tetris play --config ./my-tetris.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if flagDifficulty != "" {
		config.ApplyPreset(&cfg, config.DifficultyPreset(flagDifficulty))
	}

	// Open result storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open results database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(store, tui.RuntimeConfig{
		Config: cfg,
		Seed:   flagSeed,
	})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
