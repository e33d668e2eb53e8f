// SPDX-License-Identifier: MIT
// Package: spoilsweep/board
//
// options.go: functional options for Generate.
//
// Contract:
//   • Options are functional (type Option func(*genConfig)).
//   • Option constructors validate and panic on meaningless inputs.
//     Generate itself never panics.
//   • Determinism is explicit: seed with WithSeed or WithRand.

package board

import (
	"math/rand"

	"github.com/sirupsen/logrus"
)

// DefaultSizeLimit is the largest area rendered without an override.
// Larger spoiler grids are not displayed by the target chat client.
const DefaultSizeLimit = 90

// Option customizes Generate by mutating a genConfig before placement.
type Option func(*genConfig)

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("board: WithRand(nil)")
	}
	return func(c *genConfig) {
		c.rng = r
	}
}

// WithSeed creates a new deterministic *rand.Rand from seed.
func WithSeed(seed int64) Option {
	return func(c *genConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithSizeLimit sets the soft cap on width*height. Panics if limit < 1.
func WithSizeLimit(limit int) Option {
	if limit < 1 {
		panic("board: WithSizeLimit(limit<1)")
	}
	return func(c *genConfig) {
		c.sizeLimit = limit
	}
}

// WithOversize lifts (or restores) the soft size cap.
func WithOversize(allow bool) Option {
	return func(c *genConfig) {
		c.oversize = allow
	}
}

// WithMaxRejections caps the random draws spent on one marker before
// falling back to picking among the remaining empty cells. Panics if n < 1.
func WithMaxRejections(n int) Option {
	if n < 1 {
		panic("board: WithMaxRejections(n<1)")
	}
	return func(c *genConfig) {
		c.maxRejections = n
	}
}

// WithLogger routes placement diagnostics to log. Panics on nil.
func WithLogger(log logrus.FieldLogger) Option {
	if log == nil {
		panic("board: WithLogger(nil)")
	}
	return func(c *genConfig) {
		c.log = log
	}
}
