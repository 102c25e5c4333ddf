package replay

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/cbodonnell/drizzle/pkg/rules"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// record plays a scripted run through the reference model and returns
// the finished recording.
func record(t *testing.T, seed int64, frames int) *Recording {
	t.Helper()
	dt := 1.0 / 60.0
	r := New(seed, dt)

	state := rules.NewState(seed)
	now := int64(0)
	for i := 0; i < frames; i++ {
		direction := 0
		switch {
		case i%4 == 0:
			direction = 1
		case i%9 == 0:
			direction = -1
		}
		now += int64(dt * float64(time.Second))
		state = state.Step(dt, now, direction)
		r.AppendFrame(direction)
	}
	r.Finalize(state)
	return r
}

func TestRecording_RoundTrip(t *testing.T) {
	r := record(t, 42, 1800)
	require.NotEmpty(t, r.Header.ID)
	require.NoError(t, r.Verify())

	path := filepath.Join(t.TempDir(), "run.drz")
	require.NoError(t, Write(path, r))

	loaded, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, r.Header.ID, loaded.Header.ID)
	assert.Equal(t, r.Header.Seed, loaded.Header.Seed)
	assert.Equal(t, len(r.Frames), len(loaded.Frames))
	assert.Equal(t, r.Summary, loaded.Summary)

	assert.NoError(t, loaded.Verify(), "a loaded replay must verify")
}

func TestRecording_VerifyDetectsTampering(t *testing.T) {
	r := record(t, 7, 600)
	require.NoError(t, r.Verify())

	r.Summary.Score++
	assert.Error(t, r.Verify())
}

func TestRun_Deterministic(t *testing.T) {
	r := record(t, 99, 1200)

	first := Run(r)
	second := Run(r)
	assert.Equal(t, first, second)
	assert.Equal(t, r.Summary.Score, first.Score)
	assert.Equal(t, r.Summary.BucketX, first.BucketX)
}

func TestRead_MissingFile(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "missing.drz"))
	require.Error(t, err)
}
