package game

import (
	"context"
	"fmt"
	"time"

	"github.com/cbodonnell/drizzle/client/audio"
	"github.com/cbodonnell/drizzle/client/input"
	"github.com/cbodonnell/drizzle/client/scenes"
	"github.com/cbodonnell/drizzle/pkg/config"
	gamesession "github.com/cbodonnell/drizzle/pkg/game"
	"github.com/cbodonnell/drizzle/pkg/game/constants"
	"github.com/cbodonnell/drizzle/pkg/log"
	"github.com/cbodonnell/drizzle/pkg/queue"
	"github.com/cbodonnell/drizzle/pkg/repositories"
	"github.com/cbodonnell/drizzle/pkg/workers"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Game implements ebiten.Game interface, which has Update, Draw and Layout methods.
type Game struct {
	// debug is a boolean value indicating whether debug mode is enabled.
	debug bool
	// config is the game configuration.
	config config.Config
	// repository stores finished runs.
	repository repositories.Repository
	// audioManager plays music and sound effects.
	audioManager *audio.Manager
	// saveScoreChan passes finished runs to the save worker.
	saveScoreChan chan<- workers.SaveScoreRequest
	// seed seeds the session's droplet spawner. Zero means a
	// time-based seed per session.
	seed int64
	// mode is the current game mode.
	mode GameMode
	// scene is the current scene.
	scene scenes.Scene
	// session is the running game session, nil outside of play.
	session *gamesession.Session
	// sessionStart is when the current session began.
	sessionStart time.Time
	// quit indicates the game should terminate.
	quit bool
}

type GameMode int

const (
	GameModeMenu GameMode = iota
	GameModePlay
	GameModeScores
	GameModeError
)

func (m GameMode) String() string {
	switch m {
	case GameModeMenu:
		return "Menu"
	case GameModePlay:
		return "Play"
	case GameModeScores:
		return "Scores"
	case GameModeError:
		return "Error"
	}
	return "Unknown"
}

type NewGameOptions struct {
	Debug         bool
	Config        config.Config
	Repository    repositories.Repository
	AudioManager  *audio.Manager
	SaveScoreChan chan<- workers.SaveScoreRequest
	Seed          int64
}

func NewGame(opts NewGameOptions) (ebiten.Game, error) {
	g := &Game{
		debug:         opts.Debug,
		config:        opts.Config,
		repository:    opts.Repository,
		audioManager:  opts.AudioManager,
		saveScoreChan: opts.SaveScoreChan,
		seed:          opts.Seed,
	}

	if err := g.loadMenu(); err != nil {
		return nil, fmt.Errorf("failed to load menu scene: %v", err)
	}

	return g, nil
}

func (g *Game) SetScene(scene scenes.Scene) error {
	if g.scene != nil {
		if err := g.scene.Destroy(); err != nil {
			return fmt.Errorf("failed to destroy previous scene: %v", err)
		}
	}

	g.scene = scene
	if err := g.scene.Init(); err != nil {
		return fmt.Errorf("failed to initialize scene: %v", err)
	}

	return nil
}

func (g *Game) loadMenu() error {
	g.audioManager.StopMusic()
	menu, err := scenes.NewMenuScene(scenes.MenuSceneOptions{
		OnPlay: func() {
			if err := g.loadGame(); err != nil {
				log.Error("Failed to load game scene: %v", err)
			}
		},
		OnScores: func() {
			if err := g.loadScores(); err != nil {
				log.Error("Failed to load scores scene: %v", err)
			}
		},
		OnExit: func() {
			g.quit = true
		},
		HighScore: g.highScore(context.Background()),
	})
	if err != nil {
		return fmt.Errorf("failed to create menu scene: %v", err)
	}
	if err := g.SetScene(menu); err != nil {
		return fmt.Errorf("failed to set menu scene: %v", err)
	}
	g.mode = GameModeMenu
	return nil
}

func (g *Game) highScore(ctx context.Context) int {
	highScore, err := g.repository.HighScore(ctx)
	if err != nil {
		if !repositories.IsNotFound(err) {
			log.Error("Failed to get high score: %v", err)
		}
		return 0
	}
	return highScore
}

func (g *Game) loadGame() error {
	seed := g.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	eventQueue := queue.NewInMemoryQueue()
	session, err := gamesession.NewSession(gamesession.NewSessionOptions{
		Config:     g.config,
		HighScore:  g.highScore(context.Background()),
		Seed:       seed,
		EventQueue: eventQueue,
	})
	if err != nil {
		return fmt.Errorf("failed to create game session: %v", err)
	}

	gameScene, err := scenes.NewGameScene(scenes.NewGameSceneOptions{
		Session:      session,
		EventQueue:   eventQueue,
		AudioManager: g.audioManager,
	})
	if err != nil {
		return fmt.Errorf("failed to create game scene: %v", err)
	}
	if err := g.SetScene(gameScene); err != nil {
		return fmt.Errorf("failed to set game scene: %v", err)
	}
	g.session = session
	g.sessionStart = time.Now()
	g.mode = GameModePlay
	g.audioManager.StartMusic()
	return nil
}

func (g *Game) loadScores() error {
	records, err := g.repository.TopScores(context.Background(), 10)
	if err != nil {
		log.Error("Failed to get top scores: %v", err)
		return g.loadError("Failed to load high scores")
	}
	scoresScene, err := scenes.NewScoresScene(records)
	if err != nil {
		return fmt.Errorf("failed to create scores scene: %v", err)
	}
	if err := g.SetScene(scoresScene); err != nil {
		return fmt.Errorf("failed to set scores scene: %v", err)
	}
	g.mode = GameModeScores
	return nil
}

func (g *Game) loadError(msg string) error {
	errorScene, err := scenes.NewErrorScene(msg)
	if err != nil {
		return fmt.Errorf("failed to create error scene: %v", err)
	}
	if err := g.SetScene(errorScene); err != nil {
		return fmt.Errorf("failed to set error scene: %v", err)
	}
	g.mode = GameModeError
	return nil
}

// saveSessionScore hands the current session's result to the save
// worker. Empty runs are not saved.
func (g *Game) saveSessionScore() {
	if g.session == nil {
		return
	}
	snapshot := g.session.Score()
	if snapshot.Score == 0 && snapshot.DropsCaught == 0 && snapshot.DropsMissed == 0 {
		return
	}
	record := &repositories.ScoreRecord{
		Score:       snapshot.Score,
		DropsCaught: snapshot.DropsCaught,
		DropsMissed: snapshot.DropsMissed,
		Duration:    snapshot.GameTime,
	}
	select {
	case g.saveScoreChan <- workers.SaveScoreRequest{Record: record}:
	default:
		log.Warn("Save score channel is full, dropping score for this run")
	}
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}

	// Handle input
	if err := g.handleInput(); err != nil {
		return fmt.Errorf("failed to handle input: %v", err)
	}

	// Update the current scene
	if err := g.scene.Update(); err != nil {
		return fmt.Errorf("failed to update scene: %v", err)
	}

	return nil
}

func (g *Game) handleInput() error {
	switch g.mode {
	case GameModeMenu:
		// the menu buttons drive the transitions
	case GameModePlay:
		if input.IsNegativeJustPressed() {
			g.saveSessionScore()
			g.session.Close()
			g.session = nil
			if err := g.loadMenu(); err != nil {
				return fmt.Errorf("failed to load menu scene: %v", err)
			}
		}
	case GameModeScores, GameModeError:
		if input.IsNegativeJustPressed() || input.IsPositiveJustPressed() {
			if err := g.loadMenu(); err != nil {
				return fmt.Errorf("failed to load menu scene: %v", err)
			}
		}
	}

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
	if g.debug {
		g.drawDebugOverlay(screen)
	}
}

func (g *Game) drawDebugOverlay(screen *ebiten.Image) {
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n   FPS: %0.1f", ebiten.ActualFPS()))
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n   TPS: %0.1f", ebiten.ActualTPS()))

	if g.mode != GameModePlay || g.session == nil {
		return
	}

	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n\n   Droplets: %d", len(g.session.Droplets())))
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n\n\n   Uptime: %s", time.Since(g.sessionStart).Truncate(time.Second)))
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return int(constants.ScreenWidth), int(constants.ScreenHeight)
}
