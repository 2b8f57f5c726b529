// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, allowing the platform
// to discover and instantiate games without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/vovakirdan/snowball-arcade/internal/core"
)

// Game is the core interface that all arcade games must implement.
// Games contain pure logic with no external dependencies (especially no Bubble Tea).
// The platform handles input mapping, timing, and rendering.
type Game interface {
	// ID returns a unique identifier for this game (e.g., "snowball").
	// Used for CLI commands and score storage.
	ID() string

	// Title returns a human-readable name for display (e.g., "Snowball Descent").
	Title() string

	// Reset initializes or resets the game state.
	// Called once at start and again when restarting after game over.
	// The RuntimeConfig provides screen dimensions and RNG seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one tick of the platform loop.
	// Input is abstracted to platform-level actions (Jump, Pause, etc.) and
	// carries the wall time elapsed since the previous tick.
	// Returns the result of this tick including current game state.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current game state into the provided screen buffer.
	// The screen is pre-cleared before this call.
	Render(dst *core.Screen)

	// State returns the current game state (score, game over, paused).
	State() core.GameState
}

// Describer is implemented by games that provide portal catalog metadata.
type Describer interface {
	Description() string
	Tags() []string
}

// StatsReporter is implemented by games that track per-run statistics.
type StatsReporter interface {
	Stats() core.Stats
	// Reason tells why the run ended, or "" while it is running.
	Reason() string
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID          string
	Title       string
	Description string
	Tags        []string
}

// HasTag reports whether the game carries tag, ignoring case.
func (gi GameInfo) HasTag(tag string) bool {
	for _, t := range gi.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	infos     = make(map[string]GameInfo)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Typically called from a game's init() function.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f

	// Get metadata by creating a temporary instance
	g := f()
	info := GameInfo{ID: id, Title: g.Title()}
	if d, ok := g.(Describer); ok {
		info.Description = d.Description()
		info.Tags = append([]string(nil), d.Tags()...)
	}
	infos[id] = info
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(infos))
	for _, info := range infos {
		result = append(result, info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// ByTag returns the registered games carrying tag, sorted by ID.
func ByTag(tag string) []GameInfo {
	var result []GameInfo
	for _, info := range List() {
		if info.HasTag(tag) {
			result = append(result, info)
		}
	}
	return result
}

// Tags returns every tag used by a registered game, lowercased and sorted.
func Tags() []string {
	mu.RLock()
	defer mu.RUnlock()

	seen := make(map[string]bool)
	var result []string
	for _, info := range infos {
		for _, t := range info.Tags {
			t = strings.ToLower(t)
			if !seen[t] {
				seen[t] = true
				result = append(result, t)
			}
		}
	}
	sort.Strings(result)
	return result
}

// Create instantiates a new game by its ID.
// Returns an error if the game ID is not registered.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	return f(), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
