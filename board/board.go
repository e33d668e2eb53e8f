package board

import "fmt"

const methodFromRows = "FromRows"

// newBoard allocates a width×height board of Empty tiles.
func newBoard(width, height int) *Board {
	cells := make([][]Tile, height)
	for y := 0; y < height; y++ {
		cells[y] = make([]Tile, width)
	}
	return &Board{width: width, height: height, cells: cells}
}

// FromRows builds a Board from row-major tiles (rows[y][x]).
// The input is deep-copied. Returns ErrEmptyBoard if there are no rows or
// no columns, ErrNonRectangular if row lengths differ.
func FromRows(rows [][]Tile) (*Board, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%s: %w", methodFromRows, ErrEmptyBoard)
	}
	h, w := len(rows), len(rows[0])
	b := newBoard(w, h)
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%s: row %d has %d tiles, want %d: %w",
				methodFromRows, y, len(row), w, ErrNonRectangular)
		}
		copy(b.cells[y], row)
	}
	return b, nil
}

// Width returns the number of columns.
func (b *Board) Width() int { return b.width }

// Height returns the number of rows.
func (b *Board) Height() int { return b.height }

// Area returns Width()*Height().
func (b *Board) Area() int { return b.width * b.height }

// InBounds reports whether (x,y) lies within the board.
func (b *Board) InBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// At returns the tile at (x,y). Off-board coordinates read as Empty,
// so callers probing neighbors need no separate bounds branch.
func (b *Board) At(x, y int) Tile {
	if !b.InBounds(x, y) {
		return Empty
	}
	return b.cells[y][x]
}

// Count returns how many cells hold t.
func (b *Board) Count(t Tile) int {
	n := 0
	for _, row := range b.cells {
		for _, c := range row {
			if c == t {
				n++
			}
		}
	}
	return n
}

// MineCount returns the number of Mine tiles.
func (b *Board) MineCount() int { return b.Count(Mine) }

// AntiMineCount returns the number of AntiMine tiles.
func (b *Board) AntiMineCount() int { return b.Count(AntiMine) }

// Rows returns a row-major deep copy of the tiles (rows[y][x]).
func (b *Board) Rows() [][]Tile {
	out := make([][]Tile, b.height)
	for y, row := range b.cells {
		out[y] = make([]Tile, b.width)
		copy(out[y], row)
	}
	return out
}

// Clone returns an independent copy of b.
func (b *Board) Clone() *Board {
	return &Board{width: b.width, height: b.height, cells: b.Rows()}
}

// emptyCells lists Empty coordinates in row-major order.
func (b *Board) emptyCells() []Point {
	out := make([]Point, 0, b.Area())
	for y, row := range b.cells {
		for x, c := range row {
			if c == Empty {
				out = append(out, Point{X: x, Y: y})
			}
		}
	}
	return out
}

// String renders the raw layout, one row per line: '.' empty, '*' mine, '+' anti-mine.
func (b *Board) String() string {
	buf := make([]byte, 0, (b.width+1)*b.height)
	for _, row := range b.cells {
		for _, c := range row {
			switch c {
			case Mine:
				buf = append(buf, '*')
			case AntiMine:
				buf = append(buf, '+')
			default:
				buf = append(buf, '.')
			}
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}
