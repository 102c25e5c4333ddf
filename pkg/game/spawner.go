package game

import (
	"math/rand"
	"time"
)

// Spawner decides when and where the next droplet appears. A droplet
// spawns once more than the current interval has elapsed since the
// previous spawn. The interval can optionally ramp down over the run
// to raise the difficulty.
type Spawner struct {
	rng         *rand.Rand
	seed        int64
	interval    time.Duration
	minInterval time.Duration
	rampSeconds float64
	minX        float64
	maxX        float64

	lastSpawn int64
	spawned   int
}

// NewSpawnerOptions contains options for creating a new Spawner.
type NewSpawnerOptions struct {
	// Seed drives the spawn x positions.
	Seed int64
	// Interval is the time between spawns at the start of a run.
	Interval time.Duration
	// MinInterval is the floor the interval ramps down to. Ignored
	// unless RampSeconds is positive.
	MinInterval time.Duration
	// RampSeconds is how long the ramp from Interval to MinInterval
	// takes. Zero disables the ramp.
	RampSeconds float64
	// MinX and MaxX bound the spawn x position.
	MinX float64
	MaxX float64
}

func NewSpawner(opts NewSpawnerOptions) *Spawner {
	return &Spawner{
		rng:         rand.New(rand.NewSource(opts.Seed)),
		seed:        opts.Seed,
		interval:    opts.Interval,
		minInterval: opts.MinInterval,
		rampSeconds: opts.RampSeconds,
		minX:        opts.MinX,
		maxX:        opts.MaxX,
	}
}

// MaybeSpawn calls spawn with a new x position if more than the
// current interval has elapsed since the previous spawn. now is the
// game clock in nanoseconds. It returns true if a droplet spawned.
func (s *Spawner) MaybeSpawn(now int64, spawn func(x float64)) bool {
	if now-s.lastSpawn <= int64(s.Interval(now)) {
		return false
	}
	spawn(s.minX + s.rng.Float64()*(s.maxX-s.minX))
	s.lastSpawn = now
	s.spawned++
	return true
}

// Interval returns the spawn interval in effect at the given clock
// reading.
func (s *Spawner) Interval(now int64) time.Duration {
	if s.rampSeconds <= 0 || s.interval <= s.minInterval {
		return s.interval
	}
	progress := float64(now) / float64(time.Second) / s.rampSeconds
	if progress > 1 {
		progress = 1
	}
	return s.interval - time.Duration(progress*float64(s.interval-s.minInterval))
}

// Spawned returns how many droplets have spawned this run.
func (s *Spawner) Spawned() int {
	return s.spawned
}

// Reset rewinds the spawner to the start of a run, restoring the
// original spawn position sequence.
func (s *Spawner) Reset() {
	s.rng = rand.New(rand.NewSource(s.seed))
	s.lastSpawn = 0
	s.spawned = 0
}
