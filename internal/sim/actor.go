package sim

import "math"

// Passable reports whether an actor may enter the cell at (col, row).
// The player and the ghosts supply different predicates: only ghosts may
// pass the house door.
type Passable func(col, row int) bool

// Decide is invoked when an actor has been snapped to a cell centre, before
// the positional advance. It is the actor's decision point and may change
// the actor's direction.
type Decide func(col, row int)

// Actor is the movable part shared by the player and every ghost: a
// continuous pixel position constrained to the grid, a current direction, a
// player-requested pending direction, and a speed in pixels per tick.
type Actor struct {
	X, Y    float64
	Dir     Direction
	NextDir Direction
	Speed   float64
}

// PlaceAt snaps the actor to the centre of the given cell.
func (a *Actor) PlaceAt(col, row int) {
	a.X, a.Y = CellCenter(col, row)
}

// Cell returns the grid cell containing the actor.
func (a *Actor) Cell() (col, row int) {
	return CellOf(a.X, a.Y)
}

// Centered reports whether the actor is within its speed of the current
// cell's exact centre on both axes.
func (a *Actor) Centered() bool {
	col, row := a.Cell()
	cx, cy := CellCenter(col, row)
	return math.Abs(a.X-cx) <= a.Speed && math.Abs(a.Y-cy) <= a.Speed
}

// Step advances the actor by one tick.
//
// If the actor is centered on a cell it is snapped to the exact centre and
// decide is invoked so the owner can adopt a pending direction (player) or
// recompute its route (ghost). The actor then advances by direction times
// speed and wraps horizontally through the tunnel when it leaves the
// playfield by more than half a tile. Vertical positions never wrap.
func (a *Actor) Step(cols int, decide Decide) {
	if a.Centered() {
		col, row := a.Cell()
		a.PlaceAt(col, row)
		if decide != nil {
			decide(col, row)
		}
	}

	dx, dy := a.Dir.Delta()
	a.X += float64(dx) * a.Speed
	a.Y += float64(dy) * a.Speed

	limit := float64(cols * TileSize)
	half := float64(TileSize / 2)
	if a.X < -half {
		a.X = limit + half
	} else if a.X > limit+half {
		a.X = -half
	}
}

// AdoptPending switches to the pending direction if it leads somewhere
// passable, then stops the actor if the current direction is blocked.
// This is the player's decision rule; ghosts never stop and pick their
// direction from a target tile instead.
func (a *Actor) AdoptPending(col, row int, canEnter Passable) {
	if a.NextDir != DirNone {
		dx, dy := a.NextDir.Delta()
		if canEnter(col+dx, row+dy) {
			a.Dir = a.NextDir
		}
	}
	if a.Dir != DirNone {
		dx, dy := a.Dir.Delta()
		if !canEnter(col+dx, row+dy) {
			a.Dir = DirNone
		}
	}
}

// Distance returns the Euclidean pixel distance between two actors.
func Distance(a, b *Actor) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}
