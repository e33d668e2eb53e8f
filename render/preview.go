package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/katalvlaran/spoilsweep/encode"
)

// gridTop is the screen row of the first board row; the title sits above it.
const gridTop = 2

// Preview draws title and the unspoilered tokens on s, one board row per
// screen row, columns padded to the widest token. Mines are drawn red and
// anti-mines blue.
func Preview(s tcell.Screen, title string, tokens [][]string, sym encode.Symbols) {
	s.Clear()
	putStr(s, 0, 0, title, tcell.StyleDefault.Bold(true))

	colw := 0
	for _, row := range tokens {
		for _, tok := range row {
			colw = max(colw, runewidth.StringWidth(tok))
		}
	}
	colw++

	mineStyle := tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	antiStyle := tcell.StyleDefault.Foreground(tcell.ColorBlue).Bold(true)
	for y, row := range tokens {
		for x, tok := range row {
			style := tcell.StyleDefault
			switch tok {
			case sym.Mine:
				style = mineStyle
			case sym.AntiMine:
				style = antiStyle
			}
			putStr(s, x*colw, gridTop+y, tok, style)
		}
	}
	s.Show()
}

// ShowPreview draws the preview and blocks until a key is pressed or the
// screen is finalized, redrawing on resize.
func ShowPreview(s tcell.Screen, title string, tokens [][]string, sym encode.Symbols) {
	Preview(s, title, tokens, sym)
	for {
		switch s.PollEvent().(type) {
		case *tcell.EventKey, nil:
			return
		case *tcell.EventResize:
			s.Sync()
			Preview(s, title, tokens, sym)
		}
	}
}

// putStr writes str at (x,y), advancing by each rune's display width.
func putStr(s tcell.Screen, x, y int, str string, style tcell.Style) {
	for _, r := range str {
		s.SetContent(x, y, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
}
