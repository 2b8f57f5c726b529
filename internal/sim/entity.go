package sim

import (
	"github.com/vovakirdan/snowball-arcade/internal/core"
	"github.com/vovakirdan/snowball-arcade/internal/physics"
)

// EntityKind distinguishes solid obstacles from collectible sensors.
type EntityKind int

const (
	// Obstacle bodies are solid: the player bounces off them.
	Obstacle EntityKind = iota
	// Collectible bodies are sensors: touching one removes it.
	Collectible
)

func (k EntityKind) String() string {
	switch k {
	case Obstacle:
		return "obstacle"
	case Collectible:
		return "collectible"
	default:
		return "unknown"
	}
}

// Entity is a body placed in the world by the game layer. Its body is
// static unless the caller clears Body.Static.
type Entity struct {
	ID    int
	Kind  EntityKind
	Body  physics.Body
	Type  string // Game-defined subtype, e.g. "rock"
	Value int    // Damage for obstacles, points for collectibles
	Color core.Color
}
