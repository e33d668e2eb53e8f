package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/spoilsweep/config"
	"github.com/katalvlaran/spoilsweep/encode"
)

// Rules writes the legend for cfg: board size and marker counts, the tile
// legend (expanded when anti-mines are in play), and the adjacency rule.
// Anti-mines are only mentioned when there are some.
func Rules(w io.Writer, cfg config.Config) error {
	var sb strings.Builder

	fmt.Fprintf(&sb, "%dx%d with %d mines", cfg.Width, cfg.Height, cfg.MineCount)
	if cfg.AntiMineCount != 0 {
		fmt.Fprintf(&sb, " and %d anti-mines", cfg.AntiMineCount)
	}
	sb.WriteByte('\n')

	if cfg.AntiMineCount > 0 {
		fmt.Fprintf(&sb, "- %s and %s are mines and anti-mines, meaning you lose\n", cfg.MineStr, cfg.AntiMineStr)
		fmt.Fprintf(&sb, "- Blank tiles %s have no adjacent mines\n", encode.TrueZero)
		fmt.Fprintf(&sb, "- Medals %s are a numbered combination of mines equaling zero "+
			"(%s is 1 mine 1 anti, %s is 2 mine 2 anti, etc. to 3, further are generic)\n",
			encode.GenericMedal, encode.Medal(1), encode.Medal(2))
		fmt.Fprintf(&sb, "- Number tiles %s are a positive combination of mines (2 mines and 1 anti-mine is %s)\n",
			encode.Signed(1), encode.Signed(1))
		fmt.Fprintf(&sb, "- Letter tiles %s are a negative combination of mines (1 mine and 2 anti-mines is %s)\n",
			encode.Signed(-1), encode.Signed(-1))
	} else {
		fmt.Fprintf(&sb, "- %s is a mine, meaning you lose\n", cfg.MineStr)
		fmt.Fprintf(&sb, "- Zero tiles %s have no adjacent mines\n", encode.Zero)
	}
	sb.WriteByte('\n')

	name := cfg.CountRule.String()
	fmt.Fprintf(&sb, "Adjacency rule set: %s\n", strings.ToUpper(name[:1])+name[1:])
	fmt.Fprintf(&sb, "- Mines will be counted as adjacent **ONLY** if they are %s\n", cfg.CountRule.Describe())
	sb.WriteByte('\n')

	_, err := io.WriteString(w, sb.String())
	return err
}
