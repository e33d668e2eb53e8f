// Package neighbor tallies mines and anti-mines around a cell of a
// board.Board under a pluggable adjacency rule.
//
// What:
//
//   - Rule selects a fixed 8-entry offset table: Adjacent (Moore neighborhood)
//     or Knight (chess knight moves).
//   - At counts markers at the in-bounds neighbors of one cell; Grid does it
//     for every cell.
//   - Openings groups true-zero Empty cells into connected regions, connected
//     through the same rule's offsets.
//
// Offsets are applied as (x-dx, y-dy). Both tables are closed under negation,
// so this tallies the same cells as (x+dx, y+dy).
//
// Everything here is a pure function over an immutable board and may be
// called concurrently.
//
// Complexity:
//
//   - At:       O(d), d = 8.
//   - Grid:     O(W×H×d).
//   - Openings: O(W×H×d) time, O(W×H) memory.
package neighbor
