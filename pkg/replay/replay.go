// Package replay records headless runs of the reference game model
// and plays them back. A recording stores the seed, the step size,
// and the per-frame input directions; because the model is
// deterministic that is enough to reproduce the run exactly. Files
// are zstd-compressed JSON.
package replay

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/cbodonnell/drizzle/pkg/rules"
	"github.com/cbodonnell/drizzle/pkg/version"
	"github.com/google/uuid"
	"github.com/klauspost/compress/zstd"
)

// Header identifies a recording.
type Header struct {
	ID        string    `json:"id"`
	Seed      int64     `json:"seed"`
	DT        float64   `json:"dt"`
	CreatedAt time.Time `json:"createdAt"`
	Version   string    `json:"version"`
}

// Frame is one step of recorded input.
type Frame struct {
	// Direction is the bucket movement for the step: -1 left, 0 none,
	// 1 right.
	Direction int `json:"direction"`
}

// Summary captures the final state so a replay can be verified against
// what was recorded.
type Summary struct {
	Score    int     `json:"score"`
	BucketX  float64 `json:"bucketX"`
	Droplets int     `json:"droplets"`
}

// Recording is a complete replayable run.
type Recording struct {
	Header  Header  `json:"header"`
	Frames  []Frame `json:"frames"`
	Summary Summary `json:"summary"`
}

// New creates an empty recording for the given seed and step size.
func New(seed int64, dt float64) *Recording {
	return &Recording{
		Header: Header{
			ID:        uuid.NewString(),
			Seed:      seed,
			DT:        dt,
			CreatedAt: time.Now().UTC(),
			Version:   version.Get(),
		},
	}
}

// AppendFrame records one step of input.
func (r *Recording) AppendFrame(direction int) {
	r.Frames = append(r.Frames, Frame{Direction: direction})
}

// Finalize stores the run's final state in the summary.
func (r *Recording) Finalize(state rules.State) {
	r.Summary = Summary{
		Score:    state.Score,
		BucketX:  state.BucketX,
		Droplets: len(state.Droplets),
	}
}

// Run replays the recording from the start and returns the final
// state.
func Run(r *Recording) rules.State {
	state := rules.NewState(r.Header.Seed)
	now := int64(0)
	for _, frame := range r.Frames {
		now += int64(r.Header.DT * float64(time.Second))
		state = state.Step(r.Header.DT, now, frame.Direction)
	}
	return state
}

// Verify replays the recording and compares the result against the
// recorded summary.
func (r *Recording) Verify() error {
	final := Run(r)
	if final.Score != r.Summary.Score {
		return fmt.Errorf("score mismatch: recorded %d, replayed %d", r.Summary.Score, final.Score)
	}
	if final.BucketX != r.Summary.BucketX {
		return fmt.Errorf("bucket position mismatch: recorded %g, replayed %g", r.Summary.BucketX, final.BucketX)
	}
	if len(final.Droplets) != r.Summary.Droplets {
		return fmt.Errorf("droplet count mismatch: recorded %d, replayed %d", r.Summary.Droplets, len(final.Droplets))
	}
	return nil
}

// Write saves the recording to path as zstd-compressed JSON.
func Write(path string, r *Recording) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create replay file: %v", err)
	}
	defer f.Close()

	enc, err := zstd.NewWriter(f)
	if err != nil {
		return fmt.Errorf("failed to create zstd writer: %v", err)
	}
	if err := json.NewEncoder(enc).Encode(r); err != nil {
		enc.Close()
		return fmt.Errorf("failed to encode replay: %v", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to finish replay file: %v", err)
	}
	return nil
}

// Read loads a recording from path.
func Read(path string) (*Recording, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open replay file: %v", err)
	}
	defer f.Close()

	dec, err := zstd.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd reader: %v", err)
	}
	defer dec.Close()

	r := &Recording{}
	if err := json.NewDecoder(dec).Decode(r); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %v", err)
	}
	if r.Header.DT <= 0 {
		return nil, fmt.Errorf("invalid replay step size %g", r.Header.DT)
	}
	return r, nil
}
