package data

// Point is a grid cell reference inside the maze layout.
type Point struct {
	Col int `json:"col"`
	Row int `json:"row"`
}

// MazeFile represents the structure of maze.json.
// Rows hold one symbol per cell; the symbol set is validated by the world
// package when the grid is built.
type MazeFile struct {
	Rows        []string `json:"rows"`        // Cell symbols, one string per row
	PlayerStart Point    `json:"playerStart"` // Player spawn cell
	GhostHouse  Point    `json:"ghostHouse"`  // Ghost house anchor cell
	FruitCell   Point    `json:"fruitCell"`   // Bonus fruit spawn cell
}

// LoadMaze loads the maze layout from the embedded maze.json file.
func LoadMaze() (*MazeFile, error) {
	maze, err := Load[MazeFile]("maze.json")
	if err != nil {
		return nil, err
	}
	return &maze, nil
}

// MustLoadMaze loads the maze layout, panicking on error.
func MustLoadMaze() *MazeFile {
	maze, err := LoadMaze()
	if err != nil {
		panic(err)
	}
	return maze
}
