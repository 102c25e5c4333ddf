// Package rules implements the falling-droplet game as a pure state
// transition model. It has no engine dependencies and is fully
// deterministic: the same seed and the same sequence of inputs always
// produce the same final state. The physics-backed game in pkg/game is
// the production composition; this model doubles as the reference for
// headless simulation and replays.
package rules

import (
	"github.com/cbodonnell/drizzle/pkg/game/constants"
)

// Rect is an axis-aligned rectangle with its origin at the bottom-left
// corner, y increasing upward.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Overlaps returns true if the two rectangles overlap with positive
// area. Rectangles that share only an edge or a corner do not overlap.
func (r Rect) Overlaps(other Rect) bool {
	return r.X < other.X+other.Width &&
		other.X < r.X+r.Width &&
		r.Y < other.Y+other.Height &&
		other.Y < r.Y+r.Height
}

// State is a complete snapshot of the reference game. Methods return a
// new State and never mutate the receiver or its slices, so values can
// be retained across steps for comparison.
type State struct {
	// BucketX is the x position of the bucket's left edge.
	BucketX float64 `json:"bucketX"`
	// Droplets are the falling droplets currently in play.
	Droplets []Rect `json:"droplets"`
	// LastSpawnTime is the clock reading of the most recent spawn in
	// nanoseconds.
	LastSpawnTime int64 `json:"lastSpawnTime"`
	// Score is the number of droplets caught so far.
	Score int `json:"score"`

	rng uint64
}

// NewState returns the initial game state with the bucket horizontally
// centered and the droplet position sequence derived from seed.
func NewState(seed int64) State {
	rng := uint64(seed)
	if rng == 0 {
		rng = 1
	}
	return State{
		BucketX: constants.BucketStartingX,
		rng:     rng,
	}
}

// Bucket returns the bucket's current rectangle.
func (s State) Bucket() Rect {
	return Rect{
		X:      s.BucketX,
		Y:      constants.BucketY,
		Width:  constants.BucketWidth,
		Height: constants.BucketHeight,
	}
}

// MoveBucket moves the bucket horizontally by direction (-1 left,
// 0 none, 1 right) for dt seconds, clamped to the playfield.
func (s State) MoveBucket(direction int, dt float64) State {
	x := s.BucketX + float64(direction)*constants.BucketSpeed*dt
	if x < 0 {
		x = 0
	}
	if max := constants.ScreenWidth - constants.BucketWidth; x > max {
		x = max
	}
	s.BucketX = x
	return s
}

// AdvanceDroplets moves every droplet down for dt seconds, removes
// droplets that overlap the bucket as caught (scoring one point each),
// and removes droplets whose top edge has fallen below the bottom of
// the playfield. Misses carry no penalty in the reference model.
func (s State) AdvanceDroplets(dt float64) State {
	bucket := s.Bucket()
	kept := make([]Rect, 0, len(s.Droplets))
	for _, d := range s.Droplets {
		d.Y -= constants.DropletSpeed * dt
		if d.Overlaps(bucket) {
			s.Score++
			continue
		}
		if d.Y+d.Height < 0 {
			continue
		}
		kept = append(kept, d)
	}
	s.Droplets = kept
	return s
}

// MaybeSpawn spawns a single droplet at the top of the playfield if
// more than the spawn interval has elapsed since the previous spawn.
// now is a clock reading in nanoseconds; it only ever needs to move
// forward.
func (s State) MaybeSpawn(now int64) State {
	if now-s.LastSpawnTime <= int64(constants.SpawnInterval) {
		return s
	}
	var x uint64
	s, x = s.next()
	droplets := make([]Rect, len(s.Droplets), len(s.Droplets)+1)
	copy(droplets, s.Droplets)
	s.Droplets = append(droplets, Rect{
		X:      float64(x % uint64(constants.ScreenWidth-constants.DropletWidth+1)),
		Y:      constants.DropletSpawnY,
		Width:  constants.DropletWidth,
		Height: constants.DropletHeight,
	})
	s.LastSpawnTime = now
	return s
}

// Step advances the game by one frame: the bucket moves, droplets fall
// and resolve against the bucket and the floor, and a new droplet may
// spawn.
func (s State) Step(dt float64, now int64, direction int) State {
	s = s.MoveBucket(direction, dt)
	s = s.AdvanceDroplets(dt)
	s = s.MaybeSpawn(now)
	return s
}

// next advances the xorshift64 generator and returns the new value.
// The generator state lives in the State value itself so that replaying
// the same seed and inputs is bit-for-bit reproducible.
func (s State) next() (State, uint64) {
	x := s.rng
	x ^= x << 13
	x ^= x >> 7
	x ^= x << 17
	s.rng = x
	return s, x
}
