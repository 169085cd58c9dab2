// Package world provides the maze grid and its passability model.
package world

import "fmt"

// Cell represents a single maze cell type.
type Cell int

const (
	// CellDot is a passable cell holding a collectible dot.
	CellDot Cell = iota
	// CellWall is an impassable maze wall.
	CellWall
	// CellPowerPellet is a passable cell holding a power pellet.
	CellPowerPellet
	// CellEmpty is a passable cell with nothing to collect.
	CellEmpty
	// CellHouseWall is an impassable wall of the ghost house.
	CellHouseWall
	// CellDoor is the ghost house door. Ghosts may pass it; the player may not.
	CellDoor
	// CellTunnel is the passable wrap passage at the playfield edges.
	CellTunnel
)

// cell symbols as they appear in the maze layout asset.
var cellSymbols = map[byte]Cell{
	'0': CellDot,
	'1': CellWall,
	'3': CellPowerPellet,
	'4': CellEmpty,
	'5': CellHouseWall,
	'6': CellDoor,
	'7': CellTunnel,
}

// ParseCell converts a layout symbol to a Cell.
func ParseCell(symbol byte) (Cell, error) {
	cell, ok := cellSymbols[symbol]
	if !ok {
		return CellEmpty, fmt.Errorf("unrecognized cell symbol %q", symbol)
	}
	return cell, nil
}

// IsConsumable returns true for cells the player can collect.
func (c Cell) IsConsumable() bool {
	return c == CellDot || c == CellPowerPellet
}

// String returns a human-readable cell name.
func (c Cell) String() string {
	switch c {
	case CellDot:
		return "dot"
	case CellWall:
		return "wall"
	case CellPowerPellet:
		return "power-pellet"
	case CellEmpty:
		return "empty"
	case CellHouseWall:
		return "house-wall"
	case CellDoor:
		return "door"
	case CellTunnel:
		return "tunnel"
	default:
		return "unknown"
	}
}
