package gamedata

import (
	"errors"

	"github.com/gdamore/tcell/v2"
)

// FruitDef defines one bonus fruit tier loaded from JSON.
type FruitDef struct {
	Name   string `json:"name"`   // Display name (e.g., "cherry")
	Color  string `json:"color"`  // Hex color code
	Points int    `json:"points"` // Points awarded on collection
}

// TCellColor returns the fruit's color as a tcell.Color.
func (f *FruitDef) TCellColor() tcell.Color {
	color, err := ParseHexColor(f.Color)
	if err != nil {
		return tcell.ColorWhite // fallback
	}
	return color
}

// FruitsFile represents the structure of fruits.json.
type FruitsFile struct {
	Fruits []FruitDef `json:"fruits"`
}

// FruitTable holds the level-indexed fruit tiers.
type FruitTable struct {
	fruits []FruitDef
}

// LoadFruitTable loads the table from the embedded fruits.json.
func LoadFruitTable() (*FruitTable, error) {
	file, err := Load[FruitsFile]("fruits.json")
	if err != nil {
		return nil, err
	}
	if len(file.Fruits) == 0 {
		return nil, errors.New("no fruits loaded from fruits.json")
	}
	return &FruitTable{fruits: file.Fruits}, nil
}

// MustLoadFruitTable loads the table, panicking on error.
func MustLoadFruitTable() *FruitTable {
	table, err := LoadFruitTable()
	if err != nil {
		panic(err)
	}
	return table
}

// ForLevel returns the fruit tier for a level index, capped at the highest
// defined tier.
func (t *FruitTable) ForLevel(level int) *FruitDef {
	idx := level
	if idx < 0 {
		idx = 0
	}
	if idx >= len(t.fruits) {
		idx = len(t.fruits) - 1
	}
	return &t.fruits[idx]
}

// Count returns the number of fruit tiers.
func (t *FruitTable) Count() int {
	return len(t.fruits)
}
