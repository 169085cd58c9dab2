package sim

const (
	// TileSize is the edge length of one maze cell in pixels.
	TileSize = 24

	// HUDRows is the number of rows reserved above the playfield for the HUD.
	HUDRows = 4

	// OffsetY is the pixel offset of the playfield's top edge.
	OffsetY = HUDRows * TileSize
)

// CellCenter returns the pixel coordinates of a cell's exact centre.
func CellCenter(col, row int) (x, y float64) {
	return float64(col*TileSize + TileSize/2), float64(row*TileSize + OffsetY + TileSize/2)
}

// CellOf returns the grid cell containing the pixel position.
func CellOf(x, y float64) (col, row int) {
	return floorDiv(x, TileSize), floorDiv(y-OffsetY, TileSize)
}

// floorDiv divides by a tile size with flooring so that positions slightly
// left of the playfield map to negative columns rather than column zero.
func floorDiv(v float64, size int) int {
	n := int(v) / size
	if v < 0 && float64(n*size) != v {
		n--
	}
	return n
}
