package scenes

import (
	"fmt"
	"image/color"

	"github.com/cbodonnell/drizzle/client/audio"
	"github.com/cbodonnell/drizzle/client/input"
	"github.com/cbodonnell/drizzle/client/objects"
	"github.com/cbodonnell/drizzle/pkg/game"
	"github.com/cbodonnell/drizzle/pkg/game/constants"
	gametypes "github.com/cbodonnell/drizzle/pkg/game/types"
	"github.com/cbodonnell/drizzle/pkg/log"
	"github.com/cbodonnell/drizzle/pkg/queue"
	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
)

type GameScene struct {
	*BaseScene

	// session is the running game session.
	session *game.Session
	// eventQueue delivers contact events from the session.
	eventQueue queue.Queue
	// audioManager plays the catch and miss effects.
	audioManager *audio.Manager
	// lastScore is the score at the end of the previous frame, used to
	// size the points popup.
	lastScore int
}

var _ Scene = &GameScene{}

type NewGameSceneOptions struct {
	// Session is the game session to present.
	Session *game.Session
	// EventQueue delivers contact events from the session.
	EventQueue queue.Queue
	// AudioManager plays sound effects for contact events.
	AudioManager *audio.Manager
}

func NewGameScene(opts NewGameSceneOptions) (Scene, error) {
	return &GameScene{
		BaseScene:    NewBaseScene(objects.NewSortedZIndexObject("game-root")),
		session:      opts.Session,
		eventQueue:   opts.EventQueue,
		audioManager: opts.AudioManager,
	}, nil
}

func (g *GameScene) Init() error {
	playfield := objects.NewPlayfield("playfield", objects.NewPlayfieldOptions{
		W: constants.ScreenWidth,
		H: constants.ScreenHeight,
	})
	if err := g.GetRoot().AddChild("playfield", playfield); err != nil {
		return fmt.Errorf("failed to add playfield object: %v", err)
	}
	if err := g.GetRoot().AddChild("bucket", objects.NewBucket("bucket", g.session)); err != nil {
		return fmt.Errorf("failed to add bucket object: %v", err)
	}
	if err := g.GetRoot().AddChild("droplets", objects.NewDropletField("droplets", g.session)); err != nil {
		return fmt.Errorf("failed to add droplet field object: %v", err)
	}
	if err := g.GetRoot().AddChild("hud", objects.NewHUD("hud", g.session, g.audioManager)); err != nil {
		return fmt.Errorf("failed to add hud object: %v", err)
	}
	if err := g.GetRoot().AddChild("paused-overlay", objects.NewPausedOverlay("paused-overlay", g.session)); err != nil {
		return fmt.Errorf("failed to add paused overlay object: %v", err)
	}
	return g.BaseScene.Init()
}

func (g *GameScene) Update() error {
	if input.IsPauseJustPressed() {
		g.session.TogglePaused()
	}
	if input.IsRestartJustPressed() {
		g.session.Restart()
	}
	if input.IsMuteJustPressed() {
		g.audioManager.ToggleMuted()
	}

	dt := 1.0 / float64(ebiten.TPS())
	if err := g.session.Update(input.Snapshot(), dt); err != nil {
		return fmt.Errorf("failed to update game session: %v", err)
	}

	if err := g.processPendingContactEvents(); err != nil {
		return fmt.Errorf("failed to process pending contact events: %v", err)
	}

	if err := g.BaseScene.Update(); err != nil {
		return fmt.Errorf("failed to update base scene: %v", err)
	}

	return nil
}

func (g *GameScene) processPendingContactEvents() error {
	var lastCaught *gametypes.ContactEvent
	for _, item := range g.eventQueue.ReadAllEvents() {
		event, ok := item.(gametypes.ContactEvent)
		if !ok {
			log.Error("Failed to cast event to types.ContactEvent")
			continue
		}

		switch event.Kind {
		case gametypes.ContactCaught:
			g.audioManager.PlayCatch()
			caught := event
			lastCaught = &caught
		case gametypes.ContactMissed:
			g.audioManager.PlayMiss()
			if err := g.addMissEffect(event); err != nil {
				log.Error("Failed to add miss effect: %v", err)
			}
		default:
			log.Warn("Received unexpected contact event kind: %s", event.Kind)
		}
	}

	snapshot := g.session.Score()
	if snapshot.Score < g.lastScore {
		// the session was restarted
		g.lastScore = snapshot.Score
	}
	if lastCaught != nil && snapshot.Score > g.lastScore {
		if err := g.addCatchEffect(*lastCaught, snapshot.Score-g.lastScore); err != nil {
			log.Error("Failed to add catch effect: %v", err)
		}
	}
	g.lastScore = snapshot.Score

	return nil
}

func (g *GameScene) addCatchEffect(event gametypes.ContactEvent, points int) error {
	effectID := fmt.Sprintf("catch-%d-%d", event.DropletID, uuid.New().ID())
	effect := objects.NewTextEffect(effectID, objects.NewTextEffectOptions{
		Text:   fmt.Sprintf("+%d", points),
		X:      event.Position.X,
		Y:      event.Position.Y,
		Color:  color.RGBA{0xff, 0xd7, 0x00, 0xff},
		Scroll: true,
		TTL:    1000,
		ZIndex: 50,
	})
	if err := g.GetRoot().AddChild(effectID, effect); err != nil {
		return fmt.Errorf("failed to add catch effect object: %v", err)
	}
	return nil
}

func (g *GameScene) addMissEffect(event gametypes.ContactEvent) error {
	effectID := fmt.Sprintf("miss-%d-%d", event.DropletID, uuid.New().ID())
	effect := objects.NewTextEffect(effectID, objects.NewTextEffectOptions{
		Text:   "miss",
		X:      event.Position.X,
		Y:      event.Position.Y,
		Color:  color.RGBA{0xff, 0x45, 0x45, 0xff},
		Scroll: true,
		TTL:    800,
		ZIndex: 50,
	})
	if err := g.GetRoot().AddChild(effectID, effect); err != nil {
		return fmt.Errorf("failed to add miss effect object: %v", err)
	}
	return nil
}
