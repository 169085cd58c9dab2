package world

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Grid is the authoritative maze cell storage.
//
// Vertical out-of-range queries fail closed (impassable); horizontal
// out-of-range queries report a synthetic tunnel cell so actors can wrap
// through the side passages without the grid ever being indexed out of range.
type Grid struct {
	Cols  int
	Rows  int
	cells [][]Cell
}

// Build parses the layout rows into a grid.
// Inconsistent row lengths or unrecognized symbols are load-time errors.
func Build(rows []string) (*Grid, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("maze layout has no rows")
	}

	cols := len(rows[0])
	cells := make([][]Cell, len(rows))
	for y, rowStr := range rows {
		if len(rowStr) != cols {
			return nil, fmt.Errorf("maze row %d has %d cells, want %d", y, len(rowStr), cols)
		}
		cells[y] = make([]Cell, cols)
		for x := 0; x < cols; x++ {
			cell, err := ParseCell(rowStr[x])
			if err != nil {
				return nil, fmt.Errorf("maze row %d col %d: %w", y, x, err)
			}
			cells[y][x] = cell
		}
	}

	return &Grid{
		Cols:  cols,
		Rows:  len(rows),
		cells: cells,
	}, nil
}

// CellAt returns the cell at the given position.
// Vertical out-of-range reports a wall; horizontal out-of-range reports a
// tunnel cell.
func (g *Grid) CellAt(col, row int) Cell {
	if row < 0 || row >= g.Rows {
		return CellWall
	}
	if col < 0 || col >= g.Cols {
		return CellTunnel
	}
	return g.cells[row][col]
}

// IsPassable returns true if the cell can be entered by a ghost.
// The player additionally treats the house door as impassable; that
// distinction belongs to the caller's predicate, not the grid.
func (g *Grid) IsPassable(col, row int) bool {
	cell := g.CellAt(col, row)
	return cell != CellWall && cell != CellHouseWall
}

// Consume transitions a dot or power pellet to empty and returns the cell
// that was consumed. Any other cell is left untouched.
func (g *Grid) Consume(col, row int) (Cell, bool) {
	if row < 0 || row >= g.Rows || col < 0 || col >= g.Cols {
		return CellEmpty, false
	}
	cell := g.cells[row][col]
	if !cell.IsConsumable() {
		return cell, false
	}
	g.cells[row][col] = CellEmpty
	return cell, true
}

// CountConsumables returns the number of dot and power pellet cells.
func (g *Grid) CountConsumables() int {
	count := 0
	for _, row := range g.cells {
		for _, cell := range row {
			if cell.IsConsumable() {
				count++
			}
		}
	}
	return count
}

// Cells returns a deep copy of the grid contents for read-only snapshots.
func (g *Grid) Cells() [][]Cell {
	cells := make([][]Cell, g.Rows)
	for y, row := range g.cells {
		cells[y] = make([]Cell, g.Cols)
		copy(cells[y], row)
	}
	return cells
}

// Checksum returns an xxhash fingerprint of the grid contents.
// Used as a telemetry attribute and by determinism tests.
func (g *Grid) Checksum() uint64 {
	digest := xxhash.New()
	buf := make([]byte, g.Cols)
	for _, row := range g.cells {
		for x, cell := range row {
			buf[x] = byte(cell)
		}
		digest.Write(buf)
	}
	return digest.Sum64()
}
