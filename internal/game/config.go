package game

import "github.com/samdwyer/mazechase/internal/sim"

// Config holds session configuration options.
type Config struct {
	// Seed drives the frightened-state random walk. Used for reproducible
	// simulation runs. A seed of 0 means a time-based seed will be used.
	Seed int64

	// TickRate is the number of simulation ticks per second for the
	// real-time runner. Defaults to 60 when zero.
	TickRate int
}

// DefaultTickRate is the simulation and presentation rate in ticks per second.
const DefaultTickRate = 60

// Session tuning. The capture radius and the centred tolerance (an actor's
// own speed, see sim.Actor.Centered) are small speed-dependent margins that
// decide capture timing at tile boundaries, so they are named here rather
// than embedded at their use sites.
const (
	StartLives = 3

	ReadyTicks          = 120
	DeathAnimationTicks = 60
	LevelFlashTicks     = 120

	ScatterTicks = 420
	ChaseTicks   = 1200

	DotPoints         = 10
	PowerPelletPoints = 50
	GhostBasePoints   = 200

	// CaptureRadius is the player/ghost collision distance in pixels.
	CaptureRadius = sim.TileSize - 2

	// FruitCollectRadius is the player/fruit collection distance in pixels.
	FruitCollectRadius = sim.TileSize

	// fruitSpawnDivisor: the fruit appears when a third of the level's
	// consumables have been eaten.
	fruitSpawnDivisor = 3
)
