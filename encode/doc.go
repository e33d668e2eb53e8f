// Package encode turns a tile and its neighbor count into the chat token
// shown under the spoiler.
//
// Tokens:
//
//   - Mine / AntiMine tiles: the configured Symbols.
//   - Without anti-mines: the mine count through the positive table
//     (0 → :blue_square:, 1..8 → :one:..:eight:).
//   - With anti-mines, the first matching case wins:
//
//	true zero (no markers nearby)       TrueZero
//	false zero (equal, nonzero counts)  medal by mine count: 1 :first_place:,
//	                                    2 :second_place:, 3 :third_place:, 4+ :medal:
//	signed total in -8..8               letters a..h for -1..-8, Zero for 0,
//	                                    numbers for 1..8
//	anything else                       Unknown ("?")
//
// Encoding is a pure function: no randomness, no I/O.
package encode
