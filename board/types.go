package board

// Tile is the content of one cell. Counts of nearby markers are never
// stored on the board; see package neighbor.
type Tile uint8

const (
	// Empty holds no marker.
	Empty Tile = iota
	// Mine is a regular mine.
	Mine
	// AntiMine subtracts from the neighbor total instead of adding to it.
	AntiMine
)

// String returns a short lowercase name for t.
func (t Tile) String() string {
	switch t {
	case Empty:
		return "empty"
	case Mine:
		return "mine"
	case AntiMine:
		return "anti-mine"
	default:
		return "unknown"
	}
}

// Point is a cell coordinate: X is the column, Y the row.
type Point struct {
	X, Y int
}

// Board is a width×height grid of tiles addressed by (x, y),
// 0 ≤ x < Width(), 0 ≤ y < Height(). Only the generator mutates it;
// once returned it is read-only and safe for concurrent readers.
type Board struct {
	width, height int
	cells         [][]Tile // cells[y][x]
}
