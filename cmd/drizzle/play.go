package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cbodonnell/drizzle/client/audio"
	clientgame "github.com/cbodonnell/drizzle/client/game"
	"github.com/cbodonnell/drizzle/pkg/config"
	"github.com/cbodonnell/drizzle/pkg/game/constants"
	"github.com/cbodonnell/drizzle/pkg/log"
	"github.com/cbodonnell/drizzle/pkg/repositories"
	"github.com/cbodonnell/drizzle/pkg/version"
	"github.com/cbodonnell/drizzle/pkg/workers"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

var flagMuted bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start the game window.

Controls:
  Left/Right or A/D  - Move the bucket
  Mouse/Touch        - Drag the bucket
  P                  - Pause
  R                  - Restart
  M                  - Mute
  Esc                - Back to the menu (saves the run)

Examples:
  drizzle play
  drizzle play --seed 42
  drizzle play --db off`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagMuted, "muted", false, "Start with audio muted")
}

func runPlay(cmd *cobra.Command, args []string) {
	log.Info("Starting drizzle version %s", version.Get())

	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	repo, err := newRepository(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := repo.Close(ctx); err != nil {
			log.Error("Failed to close repository: %v", err)
		}
	}()

	saveScoreChan := make(chan workers.SaveScoreRequest, 8)
	saveWorker := workers.NewSaveScoreWorker(workers.NewSaveScoreWorkerOptions{
		Repository:    repo,
		SaveScoreChan: saveScoreChan,
	})
	go saveWorker.Start(ctx)

	audioManager := audio.NewManager(audio.NewManagerOptions{
		Dir:     cfg.Audio.Dir,
		Enabled: cfg.Audio.Enabled,
	})
	if flagMuted {
		audioManager.SetMuted(true)
	}

	g, err := clientgame.NewGame(clientgame.NewGameOptions{
		Debug:         flagDebug,
		Config:        cfg,
		Repository:    repo,
		AudioManager:  audioManager,
		SaveScoreChan: saveScoreChan,
		Seed:          flagSeed,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	ebiten.SetWindowSize(int(constants.ScreenWidth), int(constants.ScreenHeight))
	ebiten.SetWindowTitle("Drizzle")
	if err := ebiten.RunGame(g); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}

// newRepository opens the scores repository selected by the --db flag.
func newRepository(ctx context.Context) (repositories.Repository, error) {
	if flagDBPath == "off" {
		log.Warn("Running without score persistence")
		return repositories.NewInMemoryRepository(), nil
	}
	path := flagDBPath
	if path == "" {
		configDir, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("failed to determine user config directory: %v", err)
		}
		path = filepath.Join(configDir, "drizzle", "scores.db")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %v", err)
	}
	return repositories.NewSQLiteRepository(ctx, path)
}
