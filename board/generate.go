package board

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/sirupsen/logrus"
)

const methodGenerate = "Generate"

// Generate returns a width×height board with exactly mines Mine tiles and
// antiMines AntiMine tiles at random, non-overlapping cells.
//
// Validation runs before any placement, in this order:
// ErrNegativeCount, ErrEmptyBoard, ErrInsufficientArea (mines+antiMines ≥ area),
// ErrBoardTooLarge (area > size limit without WithOversize(true)).
// No partial board is returned on error.
func Generate(width, height, mines, antiMines int, opts ...Option) (*Board, error) {
	cfg := newGenConfig(opts...)

	if mines < 0 || antiMines < 0 {
		return nil, fmt.Errorf("%s: mines=%d, antiMines=%d: %w",
			methodGenerate, mines, antiMines, ErrNegativeCount)
	}
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%s: width=%d, height=%d: %w",
			methodGenerate, width, height, ErrEmptyBoard)
	}
	if width > math.MaxInt/height {
		return nil, fmt.Errorf("%s: width=%d, height=%d overflows the area: %w",
			methodGenerate, width, height, ErrBoardTooLarge)
	}
	area := width * height
	// compared term by term so huge counts cannot wrap the sum
	if mines >= area || antiMines >= area-mines {
		return nil, fmt.Errorf("%s: area=%d, mines=%d, antiMines=%d: %w",
			methodGenerate, area, mines, antiMines, ErrInsufficientArea)
	}
	if area > cfg.sizeLimit && !cfg.oversize {
		return nil, fmt.Errorf("%s: area=%d exceeds limit %d: %w",
			methodGenerate, area, cfg.sizeLimit, ErrBoardTooLarge)
	}

	p := placer{
		b:             newBoard(width, height),
		rng:           cfg.rng,
		maxRejections: cfg.rejectionCap(area),
		log:           cfg.log,
	}
	// All mines go down before any anti-mine.
	for i := 0; i < mines; i++ {
		p.place(Mine)
	}
	for i := 0; i < antiMines; i++ {
		p.place(AntiMine)
	}

	cfg.log.WithFields(logrus.Fields{
		"width":     width,
		"height":    height,
		"mines":     mines,
		"antiMines": antiMines,
		"draws":     p.draws,
		"fallbacks": p.fallbacks,
	}).Debug("board generated")

	return p.b, nil
}

// placer owns the board during generation.
type placer struct {
	b             *Board
	rng           *rand.Rand
	maxRejections int
	log           logrus.FieldLogger

	draws     int
	fallbacks int
}

// place puts t on a uniformly random Empty cell. The caller guarantees
// at least one Empty cell remains.
func (p *placer) place(t Tile) {
	for i := 0; i < p.maxRejections; i++ {
		p.draws++
		x := p.rng.Intn(p.b.width)
		y := p.rng.Intn(p.b.height)
		if p.b.cells[y][x] == Empty {
			p.b.cells[y][x] = t
			return
		}
	}

	empty := p.b.emptyCells()
	pt := empty[p.rng.Intn(len(empty))]
	p.b.cells[pt.Y][pt.X] = t
	p.fallbacks++
	p.log.WithFields(logrus.Fields{
		"tile":  t.String(),
		"draws": p.maxRejections,
		"empty": len(empty),
		"x":     pt.X,
		"y":     pt.Y,
	}).Debug("rejection cap reached, placed on a remaining empty cell")
}
