// File: neighbor/example_test.go
package neighbor_test

import (
	"fmt"

	"github.com/katalvlaran/spoilsweep/board"
	"github.com/katalvlaran/spoilsweep/neighbor"
)

////////////////////////////////////////////////////////////////////////////////
// Example: At
////////////////////////////////////////////////////////////////////////////////

// ExampleAt compares the two counting rules around one mine.
// Scenario:
//
//   - 5×5 board, single mine at (2,0).
//   - (2,1) touches the mine but is not a knight move away.
//   - (0,1) is a knight move away but does not touch it.
func ExampleAt() {
	rows := make([][]board.Tile, 5)
	for y := range rows {
		rows[y] = make([]board.Tile, 5)
	}
	rows[0][2] = board.Mine
	b, _ := board.FromRows(rows)

	for _, p := range []board.Point{{X: 2, Y: 1}, {X: 0, Y: 1}} {
		fmt.Printf("(%d,%d) adjacent=%d knight=%d\n", p.X, p.Y,
			neighbor.At(b, p.X, p.Y, neighbor.Adjacent).Mines,
			neighbor.At(b, p.X, p.Y, neighbor.Knight).Mines)
	}

	// Output:
	// (2,1) adjacent=1 knight=0
	// (0,1) adjacent=0 knight=1
}

////////////////////////////////////////////////////////////////////////////////
// Example: Openings
////////////////////////////////////////////////////////////////////////////////

// ExampleOpenings shows a mine splitting a strip into two openings.
func ExampleOpenings() {
	b, _ := board.FromRows([][]board.Tile{
		{board.Empty, board.Empty, board.Mine, board.Empty, board.Empty},
	})
	for i, region := range neighbor.Openings(b, neighbor.Adjacent) {
		fmt.Println("opening", i, region)
	}

	// Output:
	// opening 0 [{0 0}]
	// opening 1 [{4 0}]
}
