package entity

import (
	"math/rand"
	"testing"

	"github.com/samdwyer/mazechase/internal/gamedata"
	"github.com/samdwyer/mazechase/internal/sim"
	"github.com/samdwyer/mazechase/internal/world"
)

// corridorRows is a single horizontal corridor from (1,1) to (5,1).
var corridorRows = []string{
	"1111111",
	"1000001",
	"1111111",
}

// houseRows is a small maze with a ghost house anchored at (3,5) behind a
// door at (3,4), and an exit corridor above it.
var houseRows = []string{
	"1111111",
	"1000001",
	"1040401",
	"1000001",
	"1115611",
	"1154511",
	"1155511",
	"1000001",
	"1111111",
}

func mustGrid(t *testing.T, rows []string) *world.Grid {
	t.Helper()
	grid, err := world.Build(rows)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	return grid
}

func testDef(personality string) gamedata.GhostDef {
	return gamedata.GhostDef{
		ID:          "test-" + personality,
		Personality: personality,
		ScatterCol:  0,
		ScatterRow:  0,
		ReleaseDots: 0,
	}
}

func mustGhost(t *testing.T, def gamedata.GhostDef, houseCol, houseRow int) *Ghost {
	t.Helper()
	g, err := NewGhost(def, houseCol, houseRow)
	if err != nil {
		t.Fatalf("NewGhost failed: %v", err)
	}
	return g
}

func TestNewGhostRejectsUnknownPersonality(t *testing.T) {
	def := testDef("direct")
	def.Personality = "bogus"
	if _, err := NewGhost(def, 3, 3); err == nil {
		t.Fatal("expected error for unknown personality")
	}
}

func TestTargetDirect(t *testing.T) {
	g := mustGhost(t, testDef("direct"), 3, 3)
	g.State = GhostChase

	player := NewPlayer(5, 1)
	col, row := g.Target(player, 0, 0)
	if col != 5 || row != 1 {
		t.Errorf("direct target = (%d,%d), want player cell (5,1)", col, row)
	}
}

func TestTargetAmbush(t *testing.T) {
	g := mustGhost(t, testDef("ambush"), 3, 3)
	g.State = GhostChase

	player := NewPlayer(5, 5)
	player.Dir = sim.DirLeft
	col, row := g.Target(player, 0, 0)
	if col != 1 || row != 5 {
		t.Errorf("ambush target = (%d,%d), want 4 tiles ahead (1,5)", col, row)
	}
}

func TestTargetPincer(t *testing.T) {
	g := mustGhost(t, testDef("pincer"), 3, 3)
	g.State = GhostChase

	player := NewPlayer(10, 10)
	player.Dir = sim.DirUp
	// Ahead point is (10,8); reference ghost at (6,6) reflects to (14,10).
	col, row := g.Target(player, 6, 6)
	if col != 14 || row != 10 {
		t.Errorf("pincer target = (%d,%d), want (14,10)", col, row)
	}
}

func TestTargetOpportunist(t *testing.T) {
	def := testDef("opportunist")
	def.ScatterCol, def.ScatterRow = 0, 23
	g := mustGhost(t, def, 3, 3)
	g.State = GhostChase

	// Far away: chases the player directly.
	g.PlaceAt(1, 1)
	player := NewPlayer(20, 1)
	col, row := g.Target(player, 0, 0)
	if col != 20 || row != 1 {
		t.Errorf("far opportunist target = (%d,%d), want (20,1)", col, row)
	}

	// Within range: retreats to its scatter corner.
	player = NewPlayer(4, 1)
	col, row = g.Target(player, 0, 0)
	if col != 0 || row != 23 {
		t.Errorf("near opportunist target = (%d,%d), want corner (0,23)", col, row)
	}
}

func TestTargetScatterAndEaten(t *testing.T) {
	def := testDef("direct")
	def.ScatterCol, def.ScatterRow = 25, 0
	g := mustGhost(t, def, 3, 5)

	g.State = GhostScatter
	if col, row := g.Target(NewPlayer(1, 1), 0, 0); col != 25 || row != 0 {
		t.Errorf("scatter target = (%d,%d), want (25,0)", col, row)
	}

	g.State = GhostEaten
	if col, row := g.Target(NewPlayer(1, 1), 0, 0); col != 3 || row != 5 {
		t.Errorf("eaten target = (%d,%d), want house anchor (3,5)", col, row)
	}
}

func TestNoReverseOutsideFrightened(t *testing.T) {
	grid := mustGrid(t, corridorRows)
	g := mustGhost(t, testDef("direct"), 3, 1)
	g.State = GhostScatter
	g.PlaceAt(3, 1)
	g.Dir = sim.DirRight

	// Scatter corner (0,0) is behind the ghost, but reversal is forbidden.
	g.chooseDirection(grid, 3, 1, NewPlayer(1, 1), 0, 0, rand.New(rand.NewSource(1)))
	if g.Dir != sim.DirRight {
		t.Errorf("direction = %v, want right (reversal forbidden)", g.Dir)
	}
}

func TestDeadEndAllowsReverse(t *testing.T) {
	grid := mustGrid(t, corridorRows)
	g := mustGhost(t, testDef("direct"), 3, 1)
	g.State = GhostScatter
	g.PlaceAt(5, 1)
	g.Dir = sim.DirRight

	g.chooseDirection(grid, 5, 1, NewPlayer(1, 1), 0, 0, rand.New(rand.NewSource(1)))
	if g.Dir != sim.DirLeft {
		t.Errorf("direction = %v, want left (dead-end fallback)", g.Dir)
	}
}

func TestFrightenedChoiceIsSeeded(t *testing.T) {
	grid := mustGrid(t, corridorRows)

	pick := func(seed int64) sim.Direction {
		g := mustGhost(t, testDef("direct"), 3, 1)
		g.State = GhostFrightened
		g.PlaceAt(3, 1)
		g.Dir = sim.DirRight
		g.chooseDirection(grid, 3, 1, NewPlayer(1, 1), 0, 0, rand.New(rand.NewSource(seed)))
		return g.Dir
	}

	if pick(42) != pick(42) {
		t.Error("same seed produced different frightened choices")
	}
}

func TestFrightenReversesDirection(t *testing.T) {
	g := mustGhost(t, testDef("direct"), 3, 1)
	g.State = GhostChase
	g.Dir = sim.DirLeft

	g.Frighten()

	if g.State != GhostFrightened {
		t.Errorf("state = %v, want frightened", g.State)
	}
	if g.FrightenedTimer != FrightenedTicks {
		t.Errorf("timer = %d, want %d", g.FrightenedTimer, FrightenedTicks)
	}
	if g.Dir != sim.DirRight {
		t.Errorf("direction = %v, want reversed to right", g.Dir)
	}
}

func TestFrightenSkipsEatenAndInHouse(t *testing.T) {
	g := mustGhost(t, testDef("direct"), 3, 1)

	g.State = GhostEaten
	g.Frighten()
	if g.State != GhostEaten {
		t.Errorf("eaten ghost state = %v, want eaten", g.State)
	}

	g.State = GhostInHouse
	g.Frighten()
	if g.State != GhostInHouse {
		t.Errorf("in-house ghost state = %v, want in-house", g.State)
	}
}

func TestFrightenedCountdownResumesPhase(t *testing.T) {
	grid := mustGrid(t, corridorRows)
	g := mustGhost(t, testDef("direct"), 3, 1)
	g.State = GhostChase
	g.PlaceAt(3, 1)
	g.Dir = sim.DirRight
	g.Frighten()

	rng := rand.New(rand.NewSource(7))
	player := NewPlayer(1, 1)
	for i := 0; i < FrightenedTicks; i++ {
		if g.State != GhostFrightened {
			t.Fatalf("left frightened after %d ticks", i)
		}
		g.Update(grid, player, 0, 0, true, 0, rng)
	}

	if g.State != GhostChase {
		t.Errorf("state after countdown = %v, want chase", g.State)
	}
	if g.Speed != GhostSpeed {
		t.Errorf("speed after countdown = %v, want %v", g.Speed, float64(GhostSpeed))
	}
}

func TestReleaseThreshold(t *testing.T) {
	grid := mustGrid(t, houseRows)
	def := testDef("ambush")
	def.ReleaseDots = 5
	g := mustGhost(t, def, 3, 5)

	if g.State != GhostInHouse {
		t.Fatalf("initial state = %v, want in-house", g.State)
	}

	rng := rand.New(rand.NewSource(1))
	player := NewPlayer(1, 7)

	// Below the threshold the ghost stays in the house indefinitely.
	for i := 0; i < 200; i++ {
		g.Update(grid, player, 0, 0, false, 4, rng)
	}
	if g.State != GhostInHouse {
		t.Fatalf("state = %v, want still in-house below threshold", g.State)
	}

	// Meeting the threshold releases it to the exit cell on the next tick.
	g.Update(grid, player, 0, 0, false, 5, rng)
	if g.State != GhostScatter {
		t.Errorf("state = %v, want scatter after release", g.State)
	}
	col, row := g.Cell()
	if col != 3 || row != 2 {
		t.Errorf("released at (%d,%d), want house exit (3,2)", col, row)
	}
}

func TestEatenGhostRevivesAtHouse(t *testing.T) {
	grid := mustGrid(t, houseRows)
	g := mustGhost(t, testDef("direct"), 3, 5)
	g.State = GhostEaten
	g.PlaceAt(3, 5)
	g.X += 2 // within arrival tolerance

	g.Update(grid, NewPlayer(1, 7), 0, 0, false, 0, rand.New(rand.NewSource(1)))

	if g.State != GhostScatter {
		t.Errorf("state = %v, want scatter after revival", g.State)
	}
	if g.Speed != GhostSpeed {
		t.Errorf("speed = %v, want normal", g.Speed)
	}
	if col, row := g.Cell(); col != 3 || row != 2 {
		t.Errorf("revived at (%d,%d), want house exit (3,2)", col, row)
	}
}

func TestDoorOnlyOpensForEatenGhost(t *testing.T) {
	grid := mustGrid(t, houseRows)
	g := mustGhost(t, testDef("direct"), 3, 5)

	g.State = GhostScatter
	if g.CanEnter(grid, 4, 4) {
		t.Error("scatter ghost may pass the house door")
	}

	g.State = GhostEaten
	if !g.CanEnter(grid, 4, 4) {
		t.Error("eaten ghost may not pass the house door")
	}

	// Walls stay impassable in every state.
	if g.CanEnter(grid, 0, 0) {
		t.Error("wall passable to ghost")
	}
	if g.CanEnter(grid, 2, 5) {
		t.Error("house wall passable to ghost")
	}
}

func TestInHouseBobbingIsBounded(t *testing.T) {
	grid := mustGrid(t, houseRows)
	def := testDef("pincer")
	def.ReleaseDots = 99
	g := mustGhost(t, def, 3, 5)

	_, cy := sim.CellCenter(3, 5)
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 500; i++ {
		g.Update(grid, NewPlayer(1, 7), 0, 0, false, 0, rng)
		if diff := g.Y - cy; diff > houseBobAmplitude || diff < -houseBobAmplitude {
			t.Fatalf("bobbing offset %v exceeds amplitude at tick %d", diff, i)
		}
	}
}
