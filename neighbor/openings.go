package neighbor

import "github.com/katalvlaran/spoilsweep/board"

// Openings finds all connected regions of Empty cells whose count under r
// is a true zero, connected through r's offsets. Revealing any cell of an
// opening in play would cascade over the whole region.
//
// Regions are returned in row-major order of their first cell; each region
// lists cells in BFS order from that cell.
//
// Time:   O(W·H·d).
// Memory: O(W·H) for visited flags and output.
func Openings(b *board.Board, r Rule) [][]board.Point {
	w, h := b.Width(), b.Height()
	counts := Grid(b, r)
	zero := func(x, y int) bool {
		return b.At(x, y) == board.Empty && counts[y][x].IsZero()
	}

	seen := make([]bool, w*h)
	offsets := r.table()
	var regions [][]board.Point

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if !zero(x, y) || seen[y*w+x] {
				continue
			}
			// BFS to collect the region
			queue := []board.Point{{X: x, Y: y}}
			seen[y*w+x] = true
			for qi := 0; qi < len(queue); qi++ {
				u := queue[qi]
				for _, d := range offsets {
					vx, vy := u.X+d[0], u.Y+d[1]
					if !b.InBounds(vx, vy) || !zero(vx, vy) || seen[vy*w+vx] {
						continue
					}
					seen[vy*w+vx] = true
					queue = append(queue, board.Point{X: vx, Y: vy})
				}
			}
			regions = append(regions, queue)
		}
	}
	return regions
}
