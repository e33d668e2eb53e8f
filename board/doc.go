// Package board generates the hidden layout of a spoiler-sweeper puzzle: a
// rectangular grid where every cell is Empty, a Mine, or an AntiMine.
//
// What:
//
//   - Board is an immutable-after-generation width×height grid of Tile values.
//   - Generate validates the requested dimensions and marker counts, then places
//     all mines followed by all anti-mines at uniformly random empty cells.
//   - FromRows builds a Board from explicit rows, for fixtures and replays.
//
// Why:
//
//   - The grid is rendered once into chat text, so the generator must reject
//     boards that cannot be filled or that are too large to display.
//
// Placement:
//
//   - Each marker is placed by rejection sampling: draw x, then y, retry while
//     the cell is occupied.
//   - Draws per marker are capped (WithMaxRejections, default 4×area). Past the
//     cap the marker goes to a uniformly chosen cell among the remaining empty
//     ones, so generation always terminates in bounded time.
//
// Options:
//
//   - WithRand / WithSeed: the random source. Without one a time-seeded source is used.
//   - WithSizeLimit: soft cap on width×height (default DefaultSizeLimit = 90).
//   - WithOversize: lift the soft cap.
//   - WithMaxRejections: per-marker draw cap before falling back.
//   - WithLogger: logrus logger for placement diagnostics.
//
// Errors:
//
//   - ErrNegativeCount: a marker count is negative.
//   - ErrEmptyBoard: width or height is below 1, or FromRows got no cells.
//   - ErrNonRectangular: FromRows rows have differing lengths.
//   - ErrInsufficientArea: markers would fill (or overflow) the board.
//   - ErrBoardTooLarge: area exceeds the soft limit and oversize is off, or
//     width×height does not fit in an int.
//
// Complexity:
//
//   - Generate: O(W×H + M×R) time, where M is the marker count and R the
//     rejection cap; O(W×H) memory.
package board
