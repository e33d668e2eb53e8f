package encode_test

import (
	"fmt"

	"github.com/katalvlaran/spoilsweep/board"
	"github.com/katalvlaran/spoilsweep/encode"
	"github.com/katalvlaran/spoilsweep/neighbor"
)

// ExampleEncoder_Encode walks the anti-mine token rules: true zero, false
// zero medals, and signed totals.
func ExampleEncoder_Encode() {
	enc := encode.New(encode.DefaultSymbols(), true)
	for _, c := range []neighbor.Count{
		{Mines: 0, AntiMines: 0},
		{Mines: 2, AntiMines: 2},
		{Mines: 5, AntiMines: 5},
		{Mines: 3, AntiMines: 1},
		{Mines: 1, AntiMines: 3},
	} {
		fmt.Printf("%d-%d %s\n", c.Mines, c.AntiMines, enc.Encode(board.Empty, c))
	}

	// Output:
	// 0-0 :blue_square:
	// 2-2 :second_place:
	// 5-5 :medal:
	// 3-1 :two:
	// 1-3 :regional_indicator_b:
}
