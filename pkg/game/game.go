package game

import (
	"fmt"
	"time"

	"github.com/cbodonnell/drizzle/pkg/config"
	"github.com/cbodonnell/drizzle/pkg/game/types"
	"github.com/cbodonnell/drizzle/pkg/log"
	"github.com/cbodonnell/drizzle/pkg/physics"
	"github.com/cbodonnell/drizzle/pkg/queue"
	"github.com/cbodonnell/drizzle/pkg/scoring"
)

// Session drives one run of the physics-backed game. Each frame the
// client feeds it an input snapshot and a time delta; the session
// moves the bucket, spawns droplets, steps the physics world, and
// applies the resulting contact events to the scoring state. Contact
// events are also published on the event queue for the presentation
// layer to pick up.
type Session struct {
	world      *physics.World
	score      *scoring.State
	spawner    *Spawner
	eventQueue queue.Queue

	velocityIterations int
	positionIterations int
	bucketSpeed        float64
	bucketStartingX    float64
	dropletRadius      float64
	dropletFallSpeed   float64
	spawnY             float64

	// clock is the session's game clock in nanoseconds. It only
	// advances with simulation steps, so runs with the same seed and
	// step sizes behave identically.
	clock  int64
	paused bool
}

// NewSessionOptions contains options for creating a new Session.
type NewSessionOptions struct {
	Config config.Config
	// HighScore seeds the scoring state, typically from the score
	// repository.
	HighScore int
	// Seed drives the droplet spawn positions.
	Seed int64
	// EventQueue receives a types.ContactEvent per catch or miss.
	// Optional.
	EventQueue queue.Queue
}

// NewSession creates a session with a fresh physics world and scoring
// state.
func NewSession(opts NewSessionOptions) (*Session, error) {
	cfg := opts.Config
	bucketStartingX := cfg.Screen.Width/2 - cfg.Bucket.Width/2

	world, err := physics.NewWorld(physics.NewWorldOptions{
		Width:           cfg.Screen.Width,
		Height:          cfg.Screen.Height,
		GravityY:        cfg.Physics.GravityY,
		WallThickness:   cfg.Physics.WallThickness,
		BucketWidth:     cfg.Bucket.Width,
		BucketHeight:    cfg.Bucket.Height,
		BucketY:         cfg.Bucket.Y,
		BucketStartingX: bucketStartingX,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create physics world: %v", err)
	}

	s := &Session{
		world:              world,
		score:              scoring.NewState(opts.HighScore),
		eventQueue:         opts.EventQueue,
		velocityIterations: cfg.Physics.VelocityIterations,
		positionIterations: cfg.Physics.PositionIterations,
		bucketSpeed:        cfg.Bucket.Speed,
		bucketStartingX:    bucketStartingX,
		dropletRadius:      cfg.Droplet.Radius,
		dropletFallSpeed:   cfg.Droplet.FallSpeed,
		spawnY:             cfg.Screen.Height + cfg.Droplet.Radius,
	}
	s.spawner = NewSpawner(NewSpawnerOptions{
		Seed:        opts.Seed,
		Interval:    secondsToDuration(cfg.Spawn.IntervalSeconds),
		MinInterval: secondsToDuration(cfg.Spawn.MinIntervalSeconds),
		RampSeconds: cfg.Spawn.RampSeconds,
		MinX:        cfg.Droplet.Radius,
		MaxX:        cfg.Screen.Width - cfg.Droplet.Radius,
	})
	world.SetContactHandler(s)

	return s, nil
}

// Update advances the session by dt seconds with the given input. It
// does nothing while paused.
func (s *Session) Update(input types.InputState, dt float64) error {
	if s.paused || dt <= 0 {
		return nil
	}

	s.clock += int64(dt * float64(time.Second))
	s.moveBucket(input, dt)
	s.spawner.MaybeSpawn(s.clock, s.spawnDroplet)
	s.world.Step(dt, s.velocityIterations, s.positionIterations)
	s.world.ReapRemoved()
	s.score.Advance(dt)

	return nil
}

// HandleContact consumes a contact event from the physics world. It is
// called synchronously from inside the world step.
func (s *Session) HandleContact(event types.ContactEvent) {
	s.score.Apply(event)
	if s.eventQueue != nil {
		s.eventQueue.Enqueue(event)
	}
	log.Trace("Droplet %d %s at (%0.1f, %0.1f)", event.DropletID, event.Kind, event.Position.X, event.Position.Y)
}

func (s *Session) moveBucket(input types.InputState, dt float64) {
	bucket := s.world.Bucket()
	if input.PointerActive {
		s.world.MoveBucketTo(input.PointerX - bucket.Width/2)
		return
	}
	direction := input.Direction()
	if direction == 0 {
		return
	}
	s.world.MoveBucketTo(bucket.Position.X + float64(direction)*s.bucketSpeed*dt)
}

func (s *Session) spawnDroplet(x float64) {
	id := s.world.SpawnDroplet(x, s.spawnY, s.dropletRadius, s.dropletFallSpeed)
	log.Trace("Spawned droplet %d at x=%0.1f", id, x)
}

// Restart clears the playfield and scoring back to a fresh run. The
// high score is preserved.
func (s *Session) Restart() {
	s.world.Clear()
	s.world.MoveBucketTo(s.bucketStartingX)
	s.score.Reset()
	s.spawner.Reset()
	s.clock = 0
	s.paused = false
	if s.eventQueue != nil {
		s.eventQueue.ClearQueue()
	}
}

// Bucket returns a render snapshot of the bucket.
func (s *Session) Bucket() *types.BucketState {
	return s.world.Bucket()
}

// Droplets returns render snapshots of the live droplets.
func (s *Session) Droplets() []*types.DropletState {
	return s.world.Droplets()
}

// Score returns a read-only view of the scoring state.
func (s *Session) Score() scoring.Snapshot {
	return s.score.Snapshot()
}

// SetPaused pauses or resumes the simulation.
func (s *Session) SetPaused(paused bool) {
	s.paused = paused
}

// TogglePaused flips the pause state and returns the new value.
func (s *Session) TogglePaused() bool {
	s.paused = !s.paused
	return s.paused
}

// Paused returns true while the simulation is paused.
func (s *Session) Paused() bool {
	return s.paused
}

// Close tears down the physics world. The session must not be used
// after Close.
func (s *Session) Close() {
	s.world.Close()
}

func secondsToDuration(seconds float64) time.Duration {
	return time.Duration(seconds * float64(time.Second))
}
