package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpawner_MaybeSpawn(t *testing.T) {
	s := NewSpawner(NewSpawnerOptions{
		Seed:     42,
		Interval: time.Second,
		MinX:     32,
		MaxX:     768,
	})

	var xs []float64
	spawn := func(x float64) { xs = append(xs, x) }
	second := int64(time.Second)

	assert.False(t, s.MaybeSpawn(second, spawn), "interval not exceeded yet")
	assert.True(t, s.MaybeSpawn(second+1, spawn))
	assert.False(t, s.MaybeSpawn(second+second/2, spawn), "still inside the window")
	assert.False(t, s.MaybeSpawn(2*second+1, spawn), "exactly one interval is not enough")
	assert.True(t, s.MaybeSpawn(2*second+2, spawn))

	require.Len(t, xs, 2)
	assert.Equal(t, 2, s.Spawned())
	for _, x := range xs {
		assert.GreaterOrEqual(t, x, 32.0)
		assert.Less(t, x, 768.0)
	}
}

func TestSpawner_Interval(t *testing.T) {
	tests := []struct {
		name string
		opts NewSpawnerOptions
		now  int64
		want time.Duration
	}{
		{
			name: "no ramp",
			opts: NewSpawnerOptions{Interval: time.Second},
			now:  int64(time.Minute),
			want: time.Second,
		},
		{
			name: "ramp start",
			opts: NewSpawnerOptions{
				Interval:    2 * time.Second,
				MinInterval: 500 * time.Millisecond,
				RampSeconds: 60,
			},
			now:  0,
			want: 2 * time.Second,
		},
		{
			name: "ramp midpoint",
			opts: NewSpawnerOptions{
				Interval:    2 * time.Second,
				MinInterval: 500 * time.Millisecond,
				RampSeconds: 60,
			},
			now:  int64(30 * time.Second),
			want: 1250 * time.Millisecond,
		},
		{
			name: "ramp floor",
			opts: NewSpawnerOptions{
				Interval:    2 * time.Second,
				MinInterval: 500 * time.Millisecond,
				RampSeconds: 60,
			},
			now:  int64(2 * time.Minute),
			want: 500 * time.Millisecond,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSpawner(tt.opts)
			assert.Equal(t, tt.want, s.Interval(tt.now))
		})
	}
}

func TestSpawner_Reset(t *testing.T) {
	s := NewSpawner(NewSpawnerOptions{
		Seed:     7,
		Interval: time.Second,
		MinX:     32,
		MaxX:     768,
	})

	collect := func() []float64 {
		var xs []float64
		now := int64(0)
		for i := 0; i < 5; i++ {
			now += int64(time.Second) + 1
			s.MaybeSpawn(now, func(x float64) { xs = append(xs, x) })
		}
		return xs
	}

	first := collect()
	require.Len(t, first, 5)

	s.Reset()
	assert.Equal(t, 0, s.Spawned())

	second := collect()
	assert.Equal(t, first, second, "reset restores the spawn position sequence")
}
