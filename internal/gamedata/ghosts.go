package gamedata

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// GhostDef defines one ghost loaded from JSON: its identity, targeting
// personality, scatter corner, house release threshold and start offset
// relative to the house anchor.
type GhostDef struct {
	ID          string `json:"id"`          // Unique identifier (e.g., "blinky")
	Name        string `json:"name"`        // Display name
	Personality string `json:"personality"` // One of: direct, ambush, pincer, opportunist
	Color       string `json:"color"`       // Hex color code (e.g., "#FF0000")
	ScatterCol  int    `json:"scatterCol"`  // Scatter-mode corner target column
	ScatterRow  int    `json:"scatterRow"`  // Scatter-mode corner target row
	ReleaseDots int    `json:"releaseDots"` // Dots the player must eat before release
	StartDX     int    `json:"startDX"`     // Start column offset from the house anchor
	StartDY     int    `json:"startDY"`     // Start row offset from the house anchor
}

// TCellColor returns the ghost's color as a tcell.Color.
func (g *GhostDef) TCellColor() tcell.Color {
	color, err := ParseHexColor(g.Color)
	if err != nil {
		return tcell.ColorWhite // fallback
	}
	return color
}

// validPersonalities is the closed set of targeting behaviors.
var validPersonalities = map[string]bool{
	"direct":      true,
	"ambush":      true,
	"pincer":      true,
	"opportunist": true,
}

// GhostsFile represents the structure of ghosts.json.
type GhostsFile struct {
	Ghosts []GhostDef `json:"ghosts"`
}

// GhostRegistry holds the loaded ghost definitions in their fixed update
// order. The first ghost is the reference for pincer targeting.
type GhostRegistry struct {
	ghosts []GhostDef
	byID   map[string]*GhostDef
}

// NewGhostRegistry creates a registry from loaded ghost definitions.
func NewGhostRegistry(ghosts []GhostDef) (*GhostRegistry, error) {
	registry := &GhostRegistry{
		ghosts: ghosts,
		byID:   make(map[string]*GhostDef),
	}
	for i := range ghosts {
		if !validPersonalities[ghosts[i].Personality] {
			return nil, fmt.Errorf("ghost %q has unknown personality %q", ghosts[i].ID, ghosts[i].Personality)
		}
		registry.byID[ghosts[i].ID] = &ghosts[i]
	}
	return registry, nil
}

// LoadGhostRegistry loads and creates a registry from the embedded ghosts.json.
func LoadGhostRegistry() (*GhostRegistry, error) {
	file, err := Load[GhostsFile]("ghosts.json")
	if err != nil {
		return nil, err
	}
	if len(file.Ghosts) == 0 {
		return nil, errors.New("no ghosts loaded from ghosts.json")
	}
	return NewGhostRegistry(file.Ghosts)
}

// MustLoadGhostRegistry loads a registry, panicking on error.
func MustLoadGhostRegistry() *GhostRegistry {
	registry, err := LoadGhostRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// GetByID returns the ghost definition with the given ID, or nil if not found.
func (r *GhostRegistry) GetByID(id string) *GhostDef {
	return r.byID[id]
}

// All returns all ghost definitions in update order.
func (r *GhostRegistry) All() []GhostDef {
	return r.ghosts
}

// Count returns the number of ghosts in the registry.
func (r *GhostRegistry) Count() int {
	return len(r.ghosts)
}
