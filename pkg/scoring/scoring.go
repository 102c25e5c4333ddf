// Package scoring tracks score, combo, and accuracy state for a game
// session. All mutation goes through a single reducer that consumes
// contact events, plus a per-frame time advance, so the state machine
// can be tested independently of the physics world that feeds it.
package scoring

import (
	"github.com/cbodonnell/drizzle/pkg/game/constants"
	"github.com/cbodonnell/drizzle/pkg/game/types"
)

// State is the scoring state machine. The zero value is not usable;
// construct with NewState.
type State struct {
	score       int
	highScore   int
	dropsCaught int
	dropsMissed int
	comboCount  int
	multiplier  int
	gameTime    float64
	bannerTimer float64
}

// Snapshot is a read-only view of the scoring state for rendering.
type Snapshot struct {
	Score       int
	HighScore   int
	DropsCaught int
	DropsMissed int
	ComboCount  int
	Multiplier  int
	GameTime    float64
	// Accuracy is the percentage of droplets caught. It is only
	// meaningful when HasAccuracy is true.
	Accuracy    float64
	HasAccuracy bool
	// ComboBannerVisible is true while the combo banner should be
	// shown. Display-only, it never affects gameplay.
	ComboBannerVisible bool
}

// NewState returns a fresh scoring state seeded with a previously
// recorded high score.
func NewState(highScore int) *State {
	return &State{
		highScore:  highScore,
		multiplier: 1,
	}
}

// Apply consumes a contact event and updates the scoring state.
func (s *State) Apply(event types.ContactEvent) {
	switch event.Kind {
	case types.ContactCaught:
		s.applyCatch()
	case types.ContactMissed:
		s.applyMiss()
	}
}

func (s *State) applyCatch() {
	s.score += constants.PointsPerCatch * s.multiplier
	s.dropsCaught++
	s.comboCount++
	if s.comboCount >= constants.ComboBannerThreshold {
		s.bannerTimer = constants.ComboBannerDuration
	}
	if s.comboCount%constants.ComboPerMultiplier == 0 {
		s.multiplier++
	}
	if s.score > s.highScore {
		s.highScore = s.score
	}
}

func (s *State) applyMiss() {
	s.dropsMissed++
	s.comboCount = 0
	s.multiplier = 1
	s.bannerTimer = 0
}

// Advance moves session time forward by dt seconds and counts down the
// combo banner timer.
func (s *State) Advance(dt float64) {
	s.gameTime += dt
	if s.bannerTimer > 0 {
		s.bannerTimer -= dt
		if s.bannerTimer < 0 {
			s.bannerTimer = 0
		}
	}
}

// Reset clears the session back to its initial state while preserving
// the high score.
func (s *State) Reset() {
	s.score = 0
	s.dropsCaught = 0
	s.dropsMissed = 0
	s.comboCount = 0
	s.multiplier = 1
	s.gameTime = 0
	s.bannerTimer = 0
}

// Snapshot returns a read-only view of the current state.
func (s *State) Snapshot() Snapshot {
	snapshot := Snapshot{
		Score:              s.score,
		HighScore:          s.highScore,
		DropsCaught:        s.dropsCaught,
		DropsMissed:        s.dropsMissed,
		ComboCount:         s.comboCount,
		Multiplier:         s.multiplier,
		GameTime:           s.gameTime,
		ComboBannerVisible: s.bannerTimer > 0,
	}
	if total := s.dropsCaught + s.dropsMissed; total > 0 {
		snapshot.Accuracy = 100 * float64(s.dropsCaught) / float64(total)
		snapshot.HasAccuracy = true
	}
	return snapshot
}
