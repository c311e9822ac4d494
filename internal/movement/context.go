package movement

import (
	"fmt"

	"github.com/vovakirdan/rovelike/internal/board"
	"github.com/vovakirdan/rovelike/internal/core"
)

// MoveContext bundles what a movement query needs: a read-only board,
// the acting tile's position and an optional rule override for this
// query only (e.g. from a command card). Build a fresh one per query.
type MoveContext struct {
	Board    board.Reader
	Origin   core.CellPos
	Override *core.MovementRules
}

// NewMoveContext creates a context without a rule override.
func NewMoveContext(b board.Reader, origin core.CellPos) MoveContext {
	return MoveContext{Board: b, Origin: origin}
}

// WithOverride returns a copy of the context whose rules replace the
// tile's inherent rules wholesale.
func (c MoveContext) WithOverride(rules core.MovementRules) MoveContext {
	c.Override = &rules
	return c
}

// EffectiveRules returns the override when present, otherwise inherent.
func (c MoveContext) EffectiveRules(inherent core.MovementRules) core.MovementRules {
	if c.Override != nil {
		return *c.Override
	}
	return inherent
}

// MoveOption is one legal destination computed from a board snapshot.
// It goes stale as soon as the board changes.
type MoveOption struct {
	Destination core.CellPos
	Dir         core.Dir
	Distance    int

	// Pushes is the tile sitting on Destination under PushObstacles,
	// core.NoTile otherwise.
	Pushes core.TileID
}

// IsPush reports whether taking this option displaces another tile.
func (o MoveOption) IsPush() bool {
	return o.Pushes != core.NoTile
}

// String returns a short description for logs and the CLI.
func (o MoveOption) String() string {
	if o.IsPush() {
		return fmt.Sprintf("%v %s+%d push #%d", o.Destination, o.Dir, o.Distance, o.Pushes)
	}
	return fmt.Sprintf("%v %s+%d", o.Destination, o.Dir, o.Distance)
}

// Destinations extracts the destination cells of a list of options.
func Destinations(options []MoveOption) []core.CellPos {
	result := make([]core.CellPos, len(options))
	for i, o := range options {
		result[i] = o.Destination
	}
	return result
}
