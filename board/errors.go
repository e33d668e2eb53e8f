// SPDX-License-Identifier: MIT
// Package: spoilsweep/board
//
// errors.go: sentinel errors for the board package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach context with %w ("Generate: area=4, markers=4: ...").
//   • Generation never panics; option constructors do on meaningless input.

package board

import "errors"

// ErrNegativeCount indicates a negative mine or anti-mine count.
var ErrNegativeCount = errors.New("board: marker count must be non-negative")

// ErrEmptyBoard indicates a board with no rows or no columns.
var ErrEmptyBoard = errors.New("board: width and height must be at least 1")

// ErrNonRectangular indicates rows of differing lengths passed to FromRows.
var ErrNonRectangular = errors.New("board: all rows must have the same length")

// ErrInsufficientArea indicates mines+anti-mines >= width*height.
// At least one cell must stay empty for placement to terminate.
var ErrInsufficientArea = errors.New("board: more markers than grid slots")

// ErrBoardTooLarge indicates width*height exceeds the soft size limit
// while the oversize override is off.
var ErrBoardTooLarge = errors.New("board: board exceeds display size limit")
