package encode

import (
	"github.com/katalvlaran/spoilsweep/board"
	"github.com/katalvlaran/spoilsweep/neighbor"
)

// Encoder maps tiles to tokens for one board configuration.
// AntiMines enables the extended zero and signed tables; set it when the
// board was generated with a nonzero anti-mine count.
type Encoder struct {
	Symbols   Symbols
	AntiMines bool
}

// New returns an Encoder with the given symbols.
func New(sym Symbols, antiMines bool) Encoder {
	return Encoder{Symbols: sym, AntiMines: antiMines}
}

// Encode returns the token for tile t whose neighbor count is c.
// c is ignored for marker tiles.
func (e Encoder) Encode(t board.Tile, c neighbor.Count) string {
	switch t {
	case board.Mine:
		return e.Symbols.Mine
	case board.AntiMine:
		return e.Symbols.AntiMine
	case board.Empty:
		return e.empty(c)
	default:
		return Unknown
	}
}

// empty encodes an Empty tile.
func (e Encoder) empty(c neighbor.Count) string {
	if !e.AntiMines {
		return Positive(c.Total())
	}
	if c.IsZero() {
		return TrueZero
	}
	if c.Total() == 0 {
		return Medal(c.Mines)
	}
	return Signed(c.Total())
}

// Positive maps 0..8 through the positive table; anything else is Unknown.
func Positive(total int) string {
	if total < 0 || total > MaxMagnitude {
		return Unknown
	}
	return positive[total]
}

// Signed maps -8..8 to letters, Zero, or numbers; anything else is Unknown.
func Signed(total int) string {
	switch {
	case total < -MaxMagnitude || total > MaxMagnitude:
		return Unknown
	case total < 0:
		return negative[-total-1]
	default:
		return positive[total]
	}
}

// Medal returns the false-zero token for n cancelled mine/anti-mine pairs.
// n < 1 has no medal and yields Unknown.
func Medal(n int) string {
	switch {
	case n < 1:
		return Unknown
	case n <= len(medals):
		return medals[n-1]
	default:
		return GenericMedal
	}
}
