package game

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"

	"github.com/samdwyer/mazechase/internal/entity"
	"github.com/samdwyer/mazechase/internal/sim"
	"github.com/samdwyer/mazechase/internal/world"
)

// PlayerView is the read-only player state exposed to the presentation layer.
type PlayerView struct {
	X, Y       float64
	Dir        sim.Direction
	Alive      bool
	DeathFrame int
}

// GhostView is the read-only per-ghost state.
type GhostView struct {
	ID    string
	Color string
	X, Y  float64
	Dir   sim.Direction
	State entity.GhostState
	Flash bool
}

// FruitView is the read-only bonus fruit state, present only while active.
type FruitView struct {
	X, Y   float64
	Name   string
	Color  string
	Points int
}

// MarkerView is a read-only floating score marker.
type MarkerView struct {
	X, Y   float64
	Points int
}

// Snapshot is the full read-only view of one tick's end state, for rendering
// and HUD display.
type Snapshot struct {
	State State
	Mode  Mode

	Score     int
	HighScore int
	Lives     int
	Level     int
	DotsEaten int
	TotalDots int

	Cols, Rows int
	Cells      [][]world.Cell

	Player  PlayerView
	Ghosts  []GhostView
	Fruit   *FruitView
	Markers []MarkerView

	// FlashTimer counts down during the level-complete maze flash.
	FlashTimer int
}

// snapshot builds the read-only view of the current state.
func (s *Session) snapshot() Snapshot {
	snap := Snapshot{
		State:      s.state,
		Mode:       s.scheduler.Phase(),
		Score:      s.score,
		HighScore:  s.highScore,
		Lives:      s.lives,
		Level:      s.level,
		DotsEaten:  s.dotsEaten,
		TotalDots:  s.totalDots,
		Cols:       s.grid.Cols,
		Rows:       s.grid.Rows,
		Cells:      s.grid.Cells(),
		FlashTimer: s.flashTimer,
		Player: PlayerView{
			X:          s.player.X,
			Y:          s.player.Y,
			Dir:        s.player.Dir,
			Alive:      s.player.Alive,
			DeathFrame: s.player.DeathFrame,
		},
	}

	snap.Ghosts = make([]GhostView, len(s.ghosts))
	for i, g := range s.ghosts {
		snap.Ghosts[i] = GhostView{
			ID:    g.Def.ID,
			Color: g.Def.Color,
			X:     g.X,
			Y:     g.Y,
			Dir:   g.Dir,
			State: g.State,
			Flash: g.FrightenedFlash,
		}
	}

	if s.fruit != nil && s.fruit.Active {
		snap.Fruit = &FruitView{
			X:      s.fruit.X,
			Y:      s.fruit.Y,
			Name:   s.fruit.Def.Name,
			Color:  s.fruit.Def.Color,
			Points: s.fruit.Def.Points,
		}
	}

	snap.Markers = make([]MarkerView, len(s.markers))
	for i, m := range s.markers {
		snap.Markers[i] = MarkerView{X: m.X, Y: m.Y, Points: m.Points}
	}

	return snap
}

// Checksum returns an xxhash fingerprint of the simulation-relevant snapshot
// fields. Two runs with the same seed and inputs produce identical checksum
// sequences; determinism tests rely on this.
func (s *Snapshot) Checksum() uint64 {
	digest := xxhash.New()
	var buf [8]byte

	writeInt := func(v int) {
		binary.LittleEndian.PutUint64(buf[:], uint64(int64(v)))
		digest.Write(buf[:])
	}
	writeFloat := func(v float64) {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
		digest.Write(buf[:])
	}

	writeInt(int(s.State))
	writeInt(int(s.Mode))
	writeInt(s.Score)
	writeInt(s.Lives)
	writeInt(s.Level)
	writeInt(s.DotsEaten)

	writeFloat(s.Player.X)
	writeFloat(s.Player.Y)
	writeInt(int(s.Player.Dir))

	for _, g := range s.Ghosts {
		writeFloat(g.X)
		writeFloat(g.Y)
		writeInt(int(g.Dir))
		writeInt(int(g.State))
	}

	for _, row := range s.Cells {
		for _, cell := range row {
			writeInt(int(cell))
		}
	}

	return digest.Sum64()
}
