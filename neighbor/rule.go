package neighbor

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownRule indicates a rule name that ParseRule does not recognise.
var ErrUnknownRule = errors.New("neighbor: unknown count rule")

// Rule selects which cells count as neighbors.
type Rule int

const (
	// Adjacent counts the 8 cells one step away in any direction.
	Adjacent Rule = iota
	// Knight counts the 8 cells one knight move away.
	Knight
)

// adjacentOffsets is the Moore neighborhood.
var adjacentOffsets = [8][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}

// knightOffsets lists every (±1,±2) and (±2,±1) move, clockwise from top right.
var knightOffsets = [8][2]int{
	{1, 2}, {2, 1},
	{2, -1}, {1, -2},
	{-1, -2}, {-2, -1},
	{-2, 1}, {-1, 2},
}

// table returns the rule's offset table without copying, nil for an unknown rule.
func (r Rule) table() [][2]int {
	switch r {
	case Adjacent:
		return adjacentOffsets[:]
	case Knight:
		return knightOffsets[:]
	default:
		return nil
	}
}

// Offsets returns a copy of the (dx, dy) table for r, or nil if r is unknown.
func Offsets(r Rule) [][2]int {
	t := r.table()
	if t == nil {
		return nil
	}
	out := make([][2]int, len(t))
	copy(out, t)
	return out
}

// String returns the lowercase rule name.
func (r Rule) String() string {
	switch r {
	case Adjacent:
		return "adjacent"
	case Knight:
		return "knight"
	default:
		return fmt.Sprintf("rule(%d)", int(r))
	}
}

// Describe returns the human explanation used in the rules legend.
func (r Rule) Describe() string {
	switch r {
	case Adjacent:
		return "1 tile away in any direction"
	case Knight:
		return "1 knight move away"
	default:
		return "unknown"
	}
}

// ParseRule maps a case-insensitive name to a Rule.
func ParseRule(s string) (Rule, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "adjacent":
		return Adjacent, nil
	case "knight":
		return Knight, nil
	default:
		return Adjacent, fmt.Errorf("ParseRule: %q: %w", s, ErrUnknownRule)
	}
}

// Set implements flag.Value.
func (r *Rule) Set(s string) error {
	v, err := ParseRule(s)
	if err != nil {
		return err
	}
	*r = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (r Rule) MarshalText() ([]byte, error) {
	if r.table() == nil {
		return nil, fmt.Errorf("MarshalText: %d: %w", int(r), ErrUnknownRule)
	}
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Rule) UnmarshalText(text []byte) error {
	return r.Set(string(text))
}
