package encode_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/spoilsweep/board"
	"github.com/katalvlaran/spoilsweep/encode"
	"github.com/katalvlaran/spoilsweep/neighbor"
)

func count(mines, anti int) neighbor.Count {
	return neighbor.Count{Mines: mines, AntiMines: anti}
}

// TestEncode_Table covers every branch of the token selection.
func TestEncode_Table(t *testing.T) {
	plain := encode.New(encode.DefaultSymbols(), false)
	anti := encode.New(encode.DefaultSymbols(), true)

	cases := []struct {
		name string
		enc  encode.Encoder
		tile board.Tile
		c    neighbor.Count
		want string
	}{
		{"PlainZero", plain, board.Empty, count(0, 0), ":blue_square:"},
		{"PlainThree", plain, board.Empty, count(3, 0), ":three:"},
		{"PlainEight", plain, board.Empty, count(8, 0), ":eight:"},
		{"Mine", plain, board.Mine, count(2, 0), ":boom:"},
		{"MineWithAnti", anti, board.Mine, count(0, 0), ":boom:"},
		{"AntiMine", anti, board.AntiMine, count(1, 1), ":rosette:"},
		{"TrueZero", anti, board.Empty, count(0, 0), encode.TrueZero},
		{"FirstPlace", anti, board.Empty, count(1, 1), ":first_place:"},
		{"SecondPlace", anti, board.Empty, count(2, 2), ":second_place:"},
		{"ThirdPlace", anti, board.Empty, count(3, 3), ":third_place:"},
		{"GenericMedal4", anti, board.Empty, count(4, 4), ":medal:"},
		{"GenericMedal8", anti, board.Empty, count(8, 8), ":medal:"},
		{"LetterB", anti, board.Empty, count(1, 3), ":regional_indicator_b:"},
		{"LetterA", anti, board.Empty, count(0, 1), ":regional_indicator_a:"},
		{"LetterH", anti, board.Empty, count(0, 8), ":regional_indicator_h:"},
		{"SignedOne", anti, board.Empty, count(2, 1), ":one:"},
		{"SignedEight", anti, board.Empty, count(8, 0), ":eight:"},
		{"OverflowHigh", anti, board.Empty, count(9, 0), "?"},
		{"OverflowLow", anti, board.Empty, count(0, 9), "?"},
		{"PlainOverflow", plain, board.Empty, count(9, 0), "?"},
		{"UnknownTile", anti, board.Tile(42), count(0, 0), "?"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.enc.Encode(tc.tile, tc.c))
		})
	}
}

// TestEncode_CustomSymbols verifies marker tokens come from Symbols.
func TestEncode_CustomSymbols(t *testing.T) {
	enc := encode.New(encode.Symbols{Mine: "X", AntiMine: "O"}, true)
	assert.Equal(t, "X", enc.Encode(board.Mine, neighbor.Count{}))
	assert.Equal(t, "O", enc.Encode(board.AntiMine, neighbor.Count{}))
}

// TestEncode_Pure: repeated calls agree for every reachable count.
func TestEncode_Pure(t *testing.T) {
	for _, on := range []bool{false, true} {
		enc := encode.New(encode.DefaultSymbols(), on)
		for mines := 0; mines <= 8; mines++ {
			for anti := 0; mines+anti <= 8; anti++ {
				c := count(mines, anti)
				first := enc.Encode(board.Empty, c)
				assert.NotEmpty(t, first)
				for i := 0; i < 3; i++ {
					assert.Equal(t, first, enc.Encode(board.Empty, c))
				}
			}
		}
	}
}

// TestSigned_Range checks the full signed table is distinct and total.
func TestSigned_Range(t *testing.T) {
	seen := make(map[string]int)
	for total := -encode.MaxMagnitude; total <= encode.MaxMagnitude; total++ {
		tok := encode.Signed(total)
		assert.NotEqual(t, encode.Unknown, tok, "total %d", total)
		if prev, dup := seen[tok]; dup {
			t.Errorf("Signed(%d) = Signed(%d) = %q", total, prev, tok)
		}
		seen[tok] = total
	}
	assert.Equal(t, encode.Unknown, encode.Signed(-9))
	assert.Equal(t, encode.Unknown, encode.Signed(9))
	assert.Equal(t, encode.Unknown, encode.Positive(-1))
	assert.Equal(t, encode.Unknown, encode.Medal(0))
}
