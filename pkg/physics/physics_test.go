package physics

import (
	"testing"

	"github.com/cbodonnell/drizzle/pkg/game/types"
	"github.com/cbodonnell/drizzle/pkg/kinematic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testDT        = 1.0 / 60.0
	testVelIters  = 8
	testPosIters  = 3
	testFallSpeed = 200.0
)

func newTestWorld(t *testing.T) *World {
	t.Helper()
	w, err := NewWorld(NewWorldOptions{
		Width:           800,
		Height:          480,
		GravityY:        kinematic.Gravity,
		WallThickness:   10,
		BucketWidth:     64,
		BucketHeight:    64,
		BucketY:         20,
		BucketStartingX: 368,
	})
	require.NoError(t, err)
	return w
}

func TestNewWorld(t *testing.T) {
	tests := []struct {
		name    string
		opts    NewWorldOptions
		wantErr bool
	}{
		{
			name: "valid options",
			opts: NewWorldOptions{
				Width:           800,
				Height:          480,
				GravityY:        kinematic.Gravity,
				BucketWidth:     64,
				BucketHeight:    64,
				BucketY:         20,
				BucketStartingX: 368,
			},
		},
		{
			name: "zero playfield width",
			opts: NewWorldOptions{
				Height:       480,
				BucketWidth:  64,
				BucketHeight: 64,
			},
			wantErr: true,
		},
		{
			name: "zero bucket size",
			opts: NewWorldOptions{
				Width:  800,
				Height: 480,
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := NewWorld(tt.opts)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			bucket := w.Bucket()
			assert.InDelta(t, 368, bucket.Position.X, 1e-9)
			assert.InDelta(t, 20, bucket.Position.Y, 1e-9)
			assert.Equal(t, 0, w.DropletCount())
			assert.InDelta(t, kinematic.Gravity, w.Gravity(), 1e-9)
		})
	}
}

func TestWorld_MoveBucketTo(t *testing.T) {
	tests := []struct {
		name  string
		x     float64
		wantX float64
	}{
		{
			name:  "inside the playfield",
			x:     100,
			wantX: 100,
		},
		{
			name:  "clamped at the left edge",
			x:     -50,
			wantX: 0,
		},
		{
			name:  "clamped at the right edge",
			x:     10000,
			wantX: 736,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(t)
			w.MoveBucketTo(tt.x)
			assert.InDelta(t, tt.wantX, w.Bucket().Position.X, 1e-9)
			assert.InDelta(t, 20, w.Bucket().Position.Y, 1e-9, "bucket height is fixed")
		})
	}
}

func TestWorld_DropletFalls(t *testing.T) {
	w := newTestWorld(t)
	id := w.SpawnDroplet(100, 400, 32, testFallSpeed)
	require.Equal(t, 1, w.DropletCount())

	steps := 30
	for i := 0; i < steps; i++ {
		w.Step(testDT, testVelIters, testPosIters)
	}

	droplets := w.Droplets()
	require.Len(t, droplets, 1)
	assert.Equal(t, id, droplets[0].ID)
	assert.InDelta(t, 100, droplets[0].Position.X, 1e-6, "free fall is vertical")

	// The solver integrates semi-implicitly, so compare against the
	// closed-form displacement with a loose tolerance.
	elapsed := float64(steps) * testDT
	wantY := 400 + kinematic.Displacement(-testFallSpeed, elapsed, kinematic.Gravity*PixelsPerMeter)
	assert.InDelta(t, wantY, droplets[0].Position.Y, 15)
	assert.Less(t, droplets[0].Velocity.Y, -testFallSpeed, "gravity accelerates the fall")
}

func TestWorld_SetGravity(t *testing.T) {
	w := newTestWorld(t)
	w.SetGravity(-20)
	assert.InDelta(t, -20.0, w.Gravity(), 1e-9)
}

func TestWorld_CatchContact(t *testing.T) {
	w := newTestWorld(t)
	var events []types.ContactEvent
	w.SetContactHandler(ContactHandlerFunc(func(event types.ContactEvent) {
		events = append(events, event)
	}))

	bucket := w.Bucket()
	id := w.SpawnDroplet(bucket.Position.X+bucket.Width/2, 400, 32, testFallSpeed)

	reaped := 0
	for i := 0; i < 300 && len(events) == 0; i++ {
		w.Step(testDT, testVelIters, testPosIters)
		reaped += w.ReapRemoved()
	}

	require.Len(t, events, 1)
	assert.Equal(t, types.ContactCaught, events[0].Kind)
	assert.Equal(t, id, events[0].DropletID)
	assert.Equal(t, 0, w.DropletCount())

	reaped += w.ReapRemoved()
	assert.Equal(t, 1, reaped, "the caught droplet is destroyed after the step")
	assert.Equal(t, 0, w.ReapRemoved(), "reaping is idempotent")
}

func TestWorld_MissContact(t *testing.T) {
	w := newTestWorld(t)
	var events []types.ContactEvent
	w.SetContactHandler(ContactHandlerFunc(func(event types.ContactEvent) {
		events = append(events, event)
	}))

	w.MoveBucketTo(0)
	id := w.SpawnDroplet(700, 400, 32, testFallSpeed)

	for i := 0; i < 600 && len(events) == 0; i++ {
		w.Step(testDT, testVelIters, testPosIters)
		w.ReapRemoved()
	}

	require.Len(t, events, 1)
	assert.Equal(t, types.ContactMissed, events[0].Kind)
	assert.Equal(t, id, events[0].DropletID)
	assert.Equal(t, 0, w.DropletCount())
}

func TestWorld_WallContactIgnored(t *testing.T) {
	w := newTestWorld(t)
	var events []types.ContactEvent
	w.SetContactHandler(ContactHandlerFunc(func(event types.ContactEvent) {
		events = append(events, event)
	}))

	// Spawn overlapping the left wall so a wall contact begins
	// immediately. The droplet must fall through to the ground with
	// only a single miss event.
	w.MoveBucketTo(736)
	w.SpawnDroplet(0, 300, 32, testFallSpeed)

	for i := 0; i < 600; i++ {
		w.Step(testDT, testVelIters, testPosIters)
		w.ReapRemoved()
		if len(events) > 0 && w.DropletCount() == 0 {
			break
		}
	}

	require.Len(t, events, 1)
	assert.Equal(t, types.ContactMissed, events[0].Kind)
}

func TestWorld_RemovalIsDeferred(t *testing.T) {
	w := newTestWorld(t)
	w.SetContactHandler(ContactHandlerFunc(func(event types.ContactEvent) {
		// The world is mid-step while contacts dispatch, so reaping
		// must refuse to destroy anything here.
		assert.Equal(t, 0, w.ReapRemoved())
	}))

	bucket := w.Bucket()
	w.SpawnDroplet(bucket.Position.X+bucket.Width/2, 200, 32, testFallSpeed)

	for i := 0; i < 300 && w.DropletCount() > 0; i++ {
		w.Step(testDT, testVelIters, testPosIters)
	}
	require.Equal(t, 0, w.DropletCount())
	assert.Equal(t, 1, w.ReapRemoved(), "droplet destroyed only after the step completes")
}

func TestWorld_ReplaceContactHandler(t *testing.T) {
	w := newTestWorld(t)
	var first, second []types.ContactEvent
	w.SetContactHandler(ContactHandlerFunc(func(event types.ContactEvent) {
		first = append(first, event)
	}))
	w.SetContactHandler(ContactHandlerFunc(func(event types.ContactEvent) {
		second = append(second, event)
	}))

	bucket := w.Bucket()
	w.SpawnDroplet(bucket.Position.X+bucket.Width/2, 200, 32, testFallSpeed)

	for i := 0; i < 300 && len(second) == 0; i++ {
		w.Step(testDT, testVelIters, testPosIters)
		w.ReapRemoved()
	}

	assert.Len(t, first, 0, "replaced handler receives nothing")
	require.Len(t, second, 1)
}

func TestWorld_Clear(t *testing.T) {
	w := newTestWorld(t)
	w.SpawnDroplet(100, 400, 32, testFallSpeed)
	w.SpawnDroplet(300, 400, 32, testFallSpeed)
	w.SpawnDroplet(500, 400, 32, testFallSpeed)
	require.Equal(t, 3, w.DropletCount())

	assert.Equal(t, 3, w.Clear())
	assert.Equal(t, 0, w.DropletCount())
	assert.Len(t, w.Droplets(), 0)
}

func TestWorld_Close(t *testing.T) {
	w := newTestWorld(t)
	w.SpawnDroplet(100, 400, 32, testFallSpeed)
	w.SpawnDroplet(300, 400, 32, testFallSpeed)
	require.Equal(t, 2, w.DropletCount())

	w.Close()
	assert.Equal(t, 0, w.DropletCount())
	w.Close()
}
