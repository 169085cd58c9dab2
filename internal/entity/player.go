// Package entity provides the game entities: the player, the four ghosts,
// the bonus fruit and the floating score markers.
package entity

import (
	"github.com/samdwyer/mazechase/internal/sim"
	"github.com/samdwyer/mazechase/internal/world"
)

// PlayerSpeed is the player's movement speed in pixels per tick.
const PlayerSpeed = 2

// Player is the player-controlled entity.
type Player struct {
	sim.Actor
	Alive      bool
	DeathFrame int // Ticks elapsed in the death animation

	startCol, startRow int
}

// NewPlayer creates the player at its starting cell.
func NewPlayer(col, row int) *Player {
	p := &Player{startCol: col, startRow: row}
	p.Reset()
	return p
}

// Reset returns the player to its starting cell and state.
func (p *Player) Reset() {
	p.PlaceAt(p.startCol, p.startRow)
	p.Dir = sim.DirNone
	p.NextDir = sim.DirNone
	p.Speed = PlayerSpeed
	p.Alive = true
	p.DeathFrame = 0
}

// SetIntent records the requested direction. It is adopted at the next
// decision point if the neighbor cell in that direction is passable.
func (p *Player) SetIntent(d sim.Direction) {
	p.NextDir = d
}

// Update advances the player by one tick.
func (p *Player) Update(grid *world.Grid) {
	if !p.Alive {
		return
	}
	p.Step(grid.Cols, func(col, row int) {
		p.AdoptPending(col, row, PlayerCanEnter(grid))
	})
}

// PlayerCanEnter is the player's passability predicate: walls, house walls
// and the house door are all impassable.
func PlayerCanEnter(grid *world.Grid) sim.Passable {
	return func(col, row int) bool {
		cell := grid.CellAt(col, row)
		return cell != world.CellWall && cell != world.CellHouseWall && cell != world.CellDoor
	}
}
