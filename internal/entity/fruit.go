package entity

import (
	"github.com/samdwyer/mazechase/internal/gamedata"
	"github.com/samdwyer/mazechase/internal/sim"
)

// FruitLifetimeTicks is how long a spawned fruit stays collectible.
const FruitLifetimeTicks = 600

// Fruit is the level bonus item. It spawns once per level at a fixed cell
// and deactivates when collected or when its lifetime runs out.
type Fruit struct {
	X, Y      float64
	Col, Row  int
	Def       gamedata.FruitDef
	Lifetime  int
	Active    bool
	Collected bool
}

// NewFruit spawns a fruit of the given tier at a cell.
func NewFruit(col, row int, def gamedata.FruitDef) *Fruit {
	x, y := sim.CellCenter(col, row)
	return &Fruit{
		X:        x,
		Y:        y,
		Col:      col,
		Row:      row,
		Def:      def,
		Lifetime: FruitLifetimeTicks,
		Active:   true,
	}
}

// Update ages the fruit by one tick, deactivating it on expiry.
func (f *Fruit) Update() {
	if !f.Active {
		return
	}
	f.Lifetime--
	if f.Lifetime <= 0 {
		f.Active = false
	}
}

// Collect marks the fruit as collected and deactivates it.
func (f *Fruit) Collect() {
	f.Active = false
	f.Collected = true
}
