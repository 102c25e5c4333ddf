// Package config loads game tuning from YAML with sane defaults. The
// lookup order is: an explicit path, ./configs/drizzle.yaml relative
// to the working directory, the user config directory, and finally the
// built-in defaults. Values missing from a file keep their defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cbodonnell/drizzle/pkg/game/constants"
	"github.com/cbodonnell/drizzle/pkg/kinematic"
	"github.com/cbodonnell/drizzle/pkg/log"
	"gopkg.in/yaml.v3"
)

// DefaultRelativePath is where Load looks for a config file when no
// explicit path is given.
const DefaultRelativePath = "configs/drizzle.yaml"

type Config struct {
	Screen  ScreenConfig  `yaml:"screen"`
	Bucket  BucketConfig  `yaml:"bucket"`
	Droplet DropletConfig `yaml:"droplet"`
	Spawn   SpawnConfig   `yaml:"spawn"`
	Physics PhysicsConfig `yaml:"physics"`
	Audio   AudioConfig   `yaml:"audio"`
}

type ScreenConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type BucketConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	// Y is the fixed height of the bucket's bottom edge.
	Y float64 `yaml:"y"`
	// Speed is the keyboard movement speed in display units per second.
	Speed float64 `yaml:"speed"`
}

type DropletConfig struct {
	Radius float64 `yaml:"radius"`
	// FallSpeed is the initial downward speed in display units per
	// second. Gravity accelerates droplets beyond it.
	FallSpeed float64 `yaml:"fall_speed"`
}

type SpawnConfig struct {
	IntervalSeconds float64 `yaml:"interval_seconds"`
	// MinIntervalSeconds and RampSeconds enable a difficulty ramp: the
	// spawn interval shrinks from IntervalSeconds to
	// MinIntervalSeconds over RampSeconds. A zero RampSeconds keeps
	// the interval fixed.
	MinIntervalSeconds float64 `yaml:"min_interval_seconds"`
	RampSeconds        float64 `yaml:"ramp_seconds"`
}

type PhysicsConfig struct {
	// GravityY is vertical gravity in m/s^2, negative downward.
	GravityY           float64 `yaml:"gravity_y"`
	VelocityIterations int     `yaml:"velocity_iterations"`
	PositionIterations int     `yaml:"position_iterations"`
	WallThickness      float64 `yaml:"wall_thickness"`
}

type AudioConfig struct {
	Enabled bool `yaml:"enabled"`
	// Dir is the directory the sound files are loaded from. Missing
	// files disable their sounds without failing the game.
	Dir string `yaml:"dir"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Screen: ScreenConfig{
			Width:  constants.ScreenWidth,
			Height: constants.ScreenHeight,
		},
		Bucket: BucketConfig{
			Width:  constants.BucketWidth,
			Height: constants.BucketHeight,
			Y:      constants.BucketY,
			Speed:  constants.BucketSpeed,
		},
		Droplet: DropletConfig{
			Radius:    constants.DropletWidth / 2,
			FallSpeed: constants.DropletSpeed,
		},
		Spawn: SpawnConfig{
			IntervalSeconds: constants.SpawnInterval.Seconds(),
		},
		Physics: PhysicsConfig{
			GravityY:           kinematic.Gravity,
			VelocityIterations: 8,
			PositionIterations: 3,
			WallThickness:      10,
		},
		Audio: AudioConfig{
			Enabled: true,
			Dir:     "assets/audio",
		},
	}
}

// Load reads the configuration, starting from the defaults and
// overlaying the first config file found. An explicit non-empty path
// must exist; the fallback locations may be absent.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return cfg, err
		}
		return cfg, cfg.Validate()
	}

	for _, candidate := range candidatePaths() {
		if _, err := os.Stat(candidate); err != nil {
			continue
		}
		if err := loadFile(candidate, &cfg); err != nil {
			return cfg, err
		}
		return cfg, cfg.Validate()
	}

	log.Debug("No config file found, using defaults")
	return cfg, cfg.Validate()
}

func candidatePaths() []string {
	paths := []string{DefaultRelativePath}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "drizzle", "config.yaml"))
	}
	return paths
}

func loadFile(path string, cfg *Config) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %v", path, err)
	}
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return fmt.Errorf("failed to parse config file %s: %v", path, err)
	}
	log.Debug("Loaded config from %s", path)
	return nil
}

// Validate checks the configuration for values the game cannot run
// with.
func (c Config) Validate() error {
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		return fmt.Errorf("screen size must be positive, got %gx%g", c.Screen.Width, c.Screen.Height)
	}
	if c.Bucket.Width <= 0 || c.Bucket.Height <= 0 {
		return fmt.Errorf("bucket size must be positive, got %gx%g", c.Bucket.Width, c.Bucket.Height)
	}
	if c.Bucket.Width > c.Screen.Width {
		return fmt.Errorf("bucket width %g exceeds screen width %g", c.Bucket.Width, c.Screen.Width)
	}
	if c.Bucket.Speed <= 0 {
		return fmt.Errorf("bucket speed must be positive, got %g", c.Bucket.Speed)
	}
	if c.Droplet.Radius <= 0 {
		return fmt.Errorf("droplet radius must be positive, got %g", c.Droplet.Radius)
	}
	if 2*c.Droplet.Radius > c.Screen.Width {
		return fmt.Errorf("droplet diameter %g exceeds screen width %g", 2*c.Droplet.Radius, c.Screen.Width)
	}
	if c.Spawn.IntervalSeconds <= 0 {
		return fmt.Errorf("spawn interval must be positive, got %g", c.Spawn.IntervalSeconds)
	}
	if c.Spawn.RampSeconds > 0 && c.Spawn.MinIntervalSeconds <= 0 {
		return fmt.Errorf("min spawn interval must be positive when ramping, got %g", c.Spawn.MinIntervalSeconds)
	}
	if c.Physics.GravityY >= 0 {
		return fmt.Errorf("gravity must be negative, got %g", c.Physics.GravityY)
	}
	if c.Physics.VelocityIterations <= 0 || c.Physics.PositionIterations <= 0 {
		return fmt.Errorf("solver iterations must be positive, got %d/%d", c.Physics.VelocityIterations, c.Physics.PositionIterations)
	}
	return nil
}
