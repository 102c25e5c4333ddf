package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 800.0, cfg.Screen.Width)
	assert.Equal(t, 480.0, cfg.Screen.Height)
	assert.Equal(t, 64.0, cfg.Bucket.Width)
	assert.Equal(t, 200.0, cfg.Bucket.Speed)
	assert.Equal(t, 32.0, cfg.Droplet.Radius)
	assert.Equal(t, 1.0, cfg.Spawn.IntervalSeconds)
	assert.Equal(t, 0.0, cfg.Spawn.RampSeconds, "difficulty ramp is off by default")
	assert.Equal(t, -9.8, cfg.Physics.GravityY)
}

func TestLoad(t *testing.T) {
	t.Run("explicit path overlays defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "drizzle.yaml")
		data := []byte(`
screen:
  width: 1024
physics:
  gravity_y: -20
spawn:
  interval_seconds: 0.5
  min_interval_seconds: 0.2
  ramp_seconds: 90
`)
		require.NoError(t, os.WriteFile(path, data, 0644))

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, 1024.0, cfg.Screen.Width)
		assert.Equal(t, 480.0, cfg.Screen.Height, "unset values keep defaults")
		assert.Equal(t, -20.0, cfg.Physics.GravityY)
		assert.Equal(t, 0.5, cfg.Spawn.IntervalSeconds)
		assert.Equal(t, 90.0, cfg.Spawn.RampSeconds)
		assert.Equal(t, 64.0, cfg.Bucket.Width)
	})

	t.Run("missing explicit path fails", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
	})

	t.Run("invalid yaml fails", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "drizzle.yaml")
		require.NoError(t, os.WriteFile(path, []byte("screen: ["), 0644))

		_, err := Load(path)
		require.Error(t, err)
	})

	t.Run("invalid values fail validation", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "drizzle.yaml")
		require.NoError(t, os.WriteFile(path, []byte("bucket:\n  speed: -5\n"), 0644))

		_, err := Load(path)
		require.Error(t, err)
	})
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:   "defaults are valid",
			mutate: func(c *Config) {},
		},
		{
			name:    "zero screen width",
			mutate:  func(c *Config) { c.Screen.Width = 0 },
			wantErr: true,
		},
		{
			name:    "bucket wider than the screen",
			mutate:  func(c *Config) { c.Bucket.Width = 1000 },
			wantErr: true,
		},
		{
			name:    "negative bucket speed",
			mutate:  func(c *Config) { c.Bucket.Speed = -1 },
			wantErr: true,
		},
		{
			name:    "zero droplet radius",
			mutate:  func(c *Config) { c.Droplet.Radius = 0 },
			wantErr: true,
		},
		{
			name:    "zero spawn interval",
			mutate:  func(c *Config) { c.Spawn.IntervalSeconds = 0 },
			wantErr: true,
		},
		{
			name: "ramp without a floor",
			mutate: func(c *Config) {
				c.Spawn.RampSeconds = 30
				c.Spawn.MinIntervalSeconds = 0
			},
			wantErr: true,
		},
		{
			name:    "upward gravity",
			mutate:  func(c *Config) { c.Physics.GravityY = 9.8 },
			wantErr: true,
		},
		{
			name:    "zero solver iterations",
			mutate:  func(c *Config) { c.Physics.VelocityIterations = 0 },
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
