package constants

import "time"

const (

	// ScreenWidth is the width of the playfield in display units
	ScreenWidth float64 = 800.0
	// ScreenHeight is the height of the playfield in display units
	ScreenHeight float64 = 480.0

	// BucketSpeed is the speed at which the bucket moves
	BucketSpeed float64 = 200.0
	// Bucket Height
	BucketHeight float64 = 64.0
	// Bucket Width
	BucketWidth float64 = 64.0
	// Bucket Starting X (left edge, horizontally centered)
	BucketStartingX float64 = ScreenWidth/2 - BucketWidth/2
	// BucketY is the fixed height of the bucket's bottom edge
	BucketY float64 = 20.0

	// DropletSpeed is the initial downward speed of a droplet
	DropletSpeed float64 = 200.0
	// Droplet Height
	DropletHeight float64 = 64.0
	// Droplet Width
	DropletWidth float64 = 64.0
	// DropletSpawnY is the height at which droplets spawn
	DropletSpawnY float64 = ScreenHeight

	// SpawnInterval is the minimum time between droplet spawns
	SpawnInterval time.Duration = time.Second

	// PointsPerCatch is the base score awarded for a caught droplet
	PointsPerCatch int = 10
	// ComboBannerThreshold is the combo count at which the combo banner shows
	ComboBannerThreshold int = 3
	// ComboBannerDuration is how long the combo banner stays up
	ComboBannerDuration float64 = 2.0 // seconds
	// ComboPerMultiplier is the combo count step that raises the multiplier
	ComboPerMultiplier int = 5
)
