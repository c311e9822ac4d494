// Package movement computes legal destinations for tiles.
// The calculator only reads the board; applying a move is the caller's job.
package movement

import (
	"github.com/vovakirdan/rovelike/internal/board"
	"github.com/vovakirdan/rovelike/internal/core"
)

// Calculate casts one ray per eligible direction from origin and returns
// every cell the rules allow the tile to land on.
//
// Results are grouped by direction (orthogonal N, E, S, W, then diagonal
// NE, SE, SW, NW) and ordered by increasing distance within a direction.
// The origin is never a destination. An origin off the board, a nil board
// or a non-positive distance yields no options.
func Calculate(b board.Reader, origin core.CellPos, rules core.MovementRules) []MoveOption {
	options := make([]MoveOption, 0)
	if b == nil || rules.MaxDistance <= 0 || !b.InBounds(origin) {
		return options
	}

	for _, dir := range rules.Directions() {
		options = castRay(options, b, origin, dir, rules)
	}
	return options
}

// castRay walks a single direction and appends the destinations it finds.
func castRay(dst []MoveOption, b board.Reader, origin core.CellPos, dir core.Dir, rules core.MovementRules) []MoveOption {
	pos := origin
	passedObstacle := false

	for step := 1; step <= rules.MaxDistance; step++ {
		pos = pos.Step(dir)
		if !b.InBounds(pos) {
			break
		}
		occupant, err := b.Get(pos)
		if err != nil {
			break
		}
		occupied := occupant != core.NoTile
		option := MoveOption{Destination: pos, Dir: dir, Distance: step}

		switch rules.PassRule {
		case core.CanPassThrough:
			if !occupied {
				dst = append(dst, option)
			}

		case core.MustPassThrough:
			// Nothing before or on the first obstacle counts
			if occupied {
				passedObstacle = true
				continue
			}
			if passedObstacle {
				dst = append(dst, option)
			}

		case core.PushObstacles:
			// The occupant's landing cell is checked when the move is applied
			option.Pushes = occupant
			dst = append(dst, option)

		default: // core.CannotPassThrough
			if occupied {
				return dst
			}
			dst = append(dst, option)
		}
	}
	return dst
}
