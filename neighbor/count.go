package neighbor

import "github.com/katalvlaran/spoilsweep/board"

// Count is the number of mines and anti-mines around one cell.
// It is computed on demand and never stored on the board.
type Count struct {
	Mines     int
	AntiMines int
}

// Total returns Mines-AntiMines, the signed value shown on the tile.
func (c Count) Total() int { return c.Mines - c.AntiMines }

// IsZero reports a true zero: no markers of either kind nearby.
func (c Count) IsZero() bool { return c.Mines == 0 && c.AntiMines == 0 }

// At tallies markers among the in-bounds neighbors of (x,y) under r.
// Off-board cells contribute nothing; there is no wraparound.
// The tile at (x,y) itself is never counted.
func At(b *board.Board, x, y int, r Rule) Count {
	var c Count
	for _, d := range r.table() {
		nx, ny := x-d[0], y-d[1]
		if !b.InBounds(nx, ny) {
			continue
		}
		switch b.At(nx, ny) {
		case board.Mine:
			c.Mines++
		case board.AntiMine:
			c.AntiMines++
		}
	}
	return c
}

// Grid returns At for every cell, row-major: counts[y][x].
// Marker cells get their neighbor tally too; the encoder ignores it.
func Grid(b *board.Board, r Rule) [][]Count {
	counts := make([][]Count, b.Height())
	for y := range counts {
		counts[y] = make([]Count, b.Width())
		for x := range counts[y] {
			counts[y][x] = At(b, x, y, r)
		}
	}
	return counts
}
