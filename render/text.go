package render

import (
	"io"
	"strings"

	"github.com/katalvlaran/spoilsweep/board"
	"github.com/katalvlaran/spoilsweep/encode"
	"github.com/katalvlaran/spoilsweep/neighbor"
)

// Grid encodes every tile of b, row-major: tokens[y][x].
func Grid(b *board.Board, rule neighbor.Rule, enc encode.Encoder) [][]string {
	tokens := make([][]string, b.Height())
	for y := range tokens {
		tokens[y] = make([]string, b.Width())
		for x := range tokens[y] {
			tile := b.At(x, y)
			var c neighbor.Count
			if tile == board.Empty {
				c = neighbor.At(b, x, y, rule)
			}
			tokens[y][x] = enc.Encode(tile, c)
		}
	}
	return tokens
}

// Text writes b as chat text: each token wrapped in spoiler on both sides,
// tokens left to right, one row per line.
func Text(w io.Writer, b *board.Board, rule neighbor.Rule, enc encode.Encoder, spoiler string) error {
	var sb strings.Builder
	for _, row := range Grid(b, rule, enc) {
		sb.Reset()
		for _, tok := range row {
			sb.WriteString(spoiler)
			sb.WriteString(tok)
			sb.WriteString(spoiler)
		}
		sb.WriteByte('\n')
		if _, err := io.WriteString(w, sb.String()); err != nil {
			return err
		}
	}
	return nil
}
