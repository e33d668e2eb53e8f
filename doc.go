// Package spoilsweep generates minesweeper boards for chat: a grid of
// emoji tokens, each hidden behind a spoiler tag, that players reveal one
// by one.
//
// Beyond the classic game it supports:
//
//   - Anti-mines, which subtract from a tile's total. Tiles then show signed
//     totals (numbers above zero, letters a..h below) and medals where equal
//     mine and anti-mine counts cancel to a false zero.
//   - Knight counting, where only cells one knight move away are neighbors.
//
// Packages, leaves first:
//
//	board           Tile, Board and the random generator
//	neighbor        adjacency rules, neighbor counts, openings
//	encode          count to token encoding
//	config          run configuration, YAML loading
//	render          spoiler text, rules legend, terminal preview
//	cmd/spoilsweep  the command-line tool
//
//	go install github.com/katalvlaran/spoilsweep/cmd/spoilsweep@latest
package spoilsweep
