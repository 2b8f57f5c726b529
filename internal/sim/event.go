package sim

import "github.com/vovakirdan/snowball-arcade/internal/physics"

// EventKind identifies what happened during a step.
type EventKind int

const (
	// EventCollected fires when the player touches a collectible.
	EventCollected EventKind = iota
	// EventHit fires when the player collides with an obstacle.
	EventHit
	// EventLanded fires when the player comes back down onto the terrain
	// faster than the landing threshold.
	EventLanded
	// EventOutOfBounds fires once when the player falls below the view.
	EventOutOfBounds
)

func (k EventKind) String() string {
	switch k {
	case EventCollected:
		return "collected"
	case EventHit:
		return "hit"
	case EventLanded:
		return "landed"
	case EventOutOfBounds:
		return "out_of_bounds"
	default:
		return "unknown"
	}
}

// Event is reported by World.Step. Entity is a copy taken at the moment of
// contact and is only set for collected and hit events.
type Event struct {
	Kind   EventKind
	Entity Entity
	Normal physics.Vec2
	Speed  float64 // Player speed into the contact
}
