package entity

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/samdwyer/mazechase/internal/gamedata"
	"github.com/samdwyer/mazechase/internal/sim"
	"github.com/samdwyer/mazechase/internal/world"
)

// Ghost movement tuning.
const (
	GhostSpeed      = 2 // pixels per tick in scatter/chase
	FrightenedSpeed = 1
	EatenSpeed      = 4

	// FrightenedTicks is the length of the vulnerable window after a power
	// pellet pickup.
	FrightenedTicks = 360

	// frightenedFlashTicks is the tail of the window during which the
	// renderer flashes the ghost as a warning.
	frightenedFlashTicks = 120

	// houseExitRows is how far above the house anchor the exit cell sits.
	houseExitRows = 3

	// houseBobAmplitude bounds the in-house idle oscillation, in pixels.
	houseBobAmplitude = 5

	// arriveTolerance is the pixel tolerance for an eaten ghost reaching
	// its house anchor.
	arriveTolerance = 5

	// opportunistRange is the tile distance below which the opportunist
	// retreats to its scatter corner instead of chasing.
	opportunistRange = 8
)

// GhostState is a ghost's behavioral state.
type GhostState int

const (
	GhostInHouse GhostState = iota
	GhostScatter
	GhostChase
	GhostFrightened
	GhostEaten
)

// String returns a human-readable state name.
func (s GhostState) String() string {
	switch s {
	case GhostInHouse:
		return "in-house"
	case GhostScatter:
		return "scatter"
	case GhostChase:
		return "chase"
	case GhostFrightened:
		return "frightened"
	case GhostEaten:
		return "eaten"
	default:
		return "unknown"
	}
}

// Personality selects a ghost's chase-mode targeting behavior.
type Personality int

const (
	// PersonalityDirect targets the player's cell.
	PersonalityDirect Personality = iota
	// PersonalityAmbush targets four tiles ahead of the player.
	PersonalityAmbush
	// PersonalityPincer reflects a point two tiles ahead of the player
	// through the reference ghost's cell.
	PersonalityPincer
	// PersonalityOpportunist chases when far from the player and retreats
	// to its scatter corner when close.
	PersonalityOpportunist
)

// ParsePersonality converts a ghost definition's personality string.
func ParsePersonality(s string) (Personality, error) {
	switch s {
	case "direct":
		return PersonalityDirect, nil
	case "ambush":
		return PersonalityAmbush, nil
	case "pincer":
		return PersonalityPincer, nil
	case "opportunist":
		return PersonalityOpportunist, nil
	default:
		return PersonalityDirect, fmt.Errorf("unknown personality %q", s)
	}
}

// Ghost is one of the four pursuers.
type Ghost struct {
	sim.Actor
	Def             gamedata.GhostDef
	Personality     Personality
	State           GhostState
	FrightenedTimer int
	FrightenedFlash bool

	houseCol, houseRow int
	startCol, startRow int
	bobTick            int
}

// NewGhost creates a ghost from its definition, anchored to the house cell.
func NewGhost(def gamedata.GhostDef, houseCol, houseRow int) (*Ghost, error) {
	personality, err := ParsePersonality(def.Personality)
	if err != nil {
		return nil, fmt.Errorf("ghost %q: %w", def.ID, err)
	}
	g := &Ghost{
		Def:         def,
		Personality: personality,
		houseCol:    houseCol,
		houseRow:    houseRow,
		startCol:    houseCol + def.StartDX,
		startRow:    houseRow + def.StartDY,
	}
	g.Reset()
	return g, nil
}

// Reset returns the ghost to its starting cell and state. Ghosts with a zero
// release threshold start outside the house in scatter.
func (g *Ghost) Reset() {
	g.PlaceAt(g.startCol, g.startRow)
	g.Dir = sim.DirUp
	g.NextDir = sim.DirNone
	g.Speed = GhostSpeed
	g.FrightenedTimer = 0
	g.FrightenedFlash = false
	g.bobTick = 0
	if g.Def.ReleaseDots > 0 {
		g.State = GhostInHouse
	} else {
		g.State = GhostScatter
	}
}

// Frighten puts the ghost into the frightened state with its direction
// reversed. Eaten and in-house ghosts are unaffected.
func (g *Ghost) Frighten() {
	if g.State == GhostEaten || g.State == GhostInHouse {
		return
	}
	g.State = GhostFrightened
	g.FrightenedTimer = FrightenedTicks
	g.Dir = g.Dir.Reverse()
}

// HouseCell returns the ghost's house anchor cell.
func (g *Ghost) HouseCell() (col, row int) {
	return g.houseCol, g.houseRow
}

// Update advances the ghost by one tick.
//
// refCol/refRow is the reference ghost's cell used by pincer targeting,
// chasing is the mode scheduler's current phase, and rng drives the
// frightened-state random walk.
func (g *Ghost) Update(grid *world.Grid, player *Player, refCol, refRow int, chasing bool, dotsEaten int, rng *rand.Rand) {
	switch g.State {
	case GhostInHouse:
		g.bobTick++
		_, cy := sim.CellCenter(g.startCol, g.startRow)
		g.Y = cy + math.Sin(float64(g.bobTick)*0.1)*houseBobAmplitude
		if dotsEaten >= g.Def.ReleaseDots {
			g.State = GhostScatter
			g.PlaceAt(g.houseCol, g.houseRow-houseExitRows)
			g.Dir = sim.DirUp
		}
		return

	case GhostFrightened:
		g.FrightenedTimer--
		if g.FrightenedTimer <= 0 {
			g.FrightenedFlash = false
			if chasing {
				g.State = GhostChase
			} else {
				g.State = GhostScatter
			}
		} else {
			g.FrightenedFlash = g.FrightenedTimer < frightenedFlashTicks && (g.FrightenedTimer/15)%2 == 0
		}

	case GhostScatter, GhostChase:
		// Adopt the scheduler's phase every tick.
		if chasing {
			g.State = GhostChase
		} else {
			g.State = GhostScatter
		}
	}

	switch g.State {
	case GhostEaten:
		g.Speed = EatenSpeed
		tx, ty := sim.CellCenter(g.houseCol, g.houseRow)
		if math.Abs(g.X-tx) < arriveTolerance && math.Abs(g.Y-ty) < arriveTolerance {
			// Revive at the house exit so the door rule cannot trap us.
			g.State = GhostScatter
			g.Speed = GhostSpeed
			g.PlaceAt(g.houseCol, g.houseRow-houseExitRows)
			g.Dir = sim.DirUp
			return
		}
	case GhostFrightened:
		g.Speed = FrightenedSpeed
	default:
		g.Speed = GhostSpeed
	}

	g.Step(grid.Cols, func(col, row int) {
		g.chooseDirection(grid, col, row, player, refCol, refRow, rng)
	})
}

// CanEnter is the ghost's passability predicate. The house door only opens
// for a ghost returning home after being eaten.
func (g *Ghost) CanEnter(grid *world.Grid, col, row int) bool {
	cell := grid.CellAt(col, row)
	if cell == world.CellDoor {
		return g.State == GhostEaten
	}
	return cell != world.CellWall && cell != world.CellHouseWall
}

// decisionOrder is the fixed candidate priority at a decision point.
var decisionOrder = [4]sim.Direction{sim.DirUp, sim.DirLeft, sim.DirDown, sim.DirRight}

// chooseDirection picks the ghost's direction at a decision point: among the
// passable neighbors (excluding the reverse of the current direction outside
// the frightened state), the one closest to the target tile by squared
// Euclidean distance. Frightened ghosts pick uniformly at random instead.
func (g *Ghost) chooseDirection(grid *world.Grid, col, row int, player *Player, refCol, refRow int, rng *rand.Rand) {
	reverse := g.Dir.Reverse()

	candidates := make([]sim.Direction, 0, 4)
	for _, d := range decisionOrder {
		if d == reverse && g.State != GhostFrightened {
			continue
		}
		dx, dy := d.Delta()
		if g.CanEnter(grid, col+dx, row+dy) {
			candidates = append(candidates, d)
		}
	}

	// Dead end: allow the reversal after all.
	if len(candidates) == 0 {
		for _, d := range decisionOrder {
			dx, dy := d.Delta()
			if g.CanEnter(grid, col+dx, row+dy) {
				candidates = append(candidates, d)
			}
		}
	}
	if len(candidates) == 0 {
		return
	}

	if g.State == GhostFrightened {
		g.Dir = candidates[rng.Intn(len(candidates))]
		return
	}

	targetCol, targetRow := g.Target(player, refCol, refRow)
	best := candidates[0]
	bestDist := math.Inf(1)
	for _, d := range candidates {
		dx, dy := d.Delta()
		nc, nr := col+dx, row+dy
		dist := float64((nc-targetCol)*(nc-targetCol) + (nr-targetRow)*(nr-targetRow))
		if dist < bestDist {
			bestDist = dist
			best = d
		}
	}
	g.Dir = best
}

// Target computes the ghost's target tile for its current state and
// personality. Frightened ghosts have no target; callers must not use the
// result in that state.
func (g *Ghost) Target(player *Player, refCol, refRow int) (col, row int) {
	switch g.State {
	case GhostScatter:
		return g.Def.ScatterCol, g.Def.ScatterRow
	case GhostEaten:
		return g.houseCol, g.houseRow
	}

	playerCol, playerRow := player.Cell()
	dx, dy := player.Dir.Delta()

	switch g.Personality {
	case PersonalityAmbush:
		return playerCol + 4*dx, playerRow + 4*dy

	case PersonalityPincer:
		aheadCol := playerCol + 2*dx
		aheadRow := playerRow + 2*dy
		return aheadCol + (aheadCol - refCol), aheadRow + (aheadRow - refRow)

	case PersonalityOpportunist:
		gcol, grow := g.Cell()
		dist := math.Hypot(float64(playerCol-gcol), float64(playerRow-grow))
		if dist > opportunistRange {
			return playerCol, playerRow
		}
		return g.Def.ScatterCol, g.Def.ScatterRow

	default: // PersonalityDirect
		return playerCol, playerRow
	}
}
