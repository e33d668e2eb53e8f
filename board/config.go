// SPDX-License-Identifier: MIT
// Package: spoilsweep/board
//
// config.go: resolved generator configuration and its defaults.
//
// Defaults:
//   • rng           = time-seeded source (non-reproducible)
//   • sizeLimit     = DefaultSizeLimit
//   • oversize      = false
//   • maxRejections = 0 (resolved to rejectionFactor*area at Generate time)
//   • log           = logger writing to io.Discard

package board

import (
	"io"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"
)

// rejectionFactor scales the default per-marker draw cap with the board area.
const rejectionFactor = 4

// genConfig aggregates all knobs read by Generate.
type genConfig struct {
	rng           *rand.Rand
	sizeLimit     int
	oversize      bool
	maxRejections int
	log           logrus.FieldLogger
}

// newGenConfig applies opts in order over the defaults; later options win.
func newGenConfig(opts ...Option) genConfig {
	cfg := genConfig{
		sizeLimit: DefaultSizeLimit,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if cfg.log == nil {
		quiet := logrus.New()
		quiet.SetOutput(io.Discard)
		cfg.log = quiet
	}
	return cfg
}

// rejectionCap returns the per-marker draw cap for a board of the given area.
func (c genConfig) rejectionCap(area int) int {
	if c.maxRejections > 0 {
		return c.maxRejections
	}
	return rejectionFactor * area
}
