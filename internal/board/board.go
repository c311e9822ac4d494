// Package board holds the authoritative grid of tile handles.
//
// The board keeps two structures in sync: a flat row-major slice of
// handles (index = y*W + x) and a reverse map from handle to position.
// Every exported mutation updates both before returning.
//
// The board does no locking. Callers must serialize mutations and must
// not run queries concurrently with a mutation on the same board.
package board

import (
	"fmt"

	"github.com/vovakirdan/rovelike/internal/core"
)

// Reader is the read-only view of a board handed to movement and
// ability computations.
type Reader interface {
	Width() int
	Height() int
	InBounds(pos core.CellPos) bool
	Get(pos core.CellPos) (core.TileID, error)
}

// Board is a width×height grid of optional tile handles.
type Board struct {
	w         int
	h         int
	cells     []core.TileID // core.NoTile marks an empty cell
	positions map[core.TileID]core.CellPos
}

var _ Reader = (*Board)(nil)

// New creates an empty board. Non-positive dimensions produce a board
// on which every position is out of bounds.
func New(width, height int) *Board {
	if width < 0 || height < 0 {
		width, height = 0, 0
	}
	return &Board{
		w:         width,
		h:         height,
		cells:     make([]core.TileID, width*height),
		positions: make(map[core.TileID]core.CellPos),
	}
}

// Width returns the number of columns.
func (b *Board) Width() int {
	return b.w
}

// Height returns the number of rows.
func (b *Board) Height() int {
	return b.h
}

// index converts a position to a flat slice index.
func (b *Board) index(pos core.CellPos) int {
	return pos.Y*b.w + pos.X
}

// InBounds returns true if the position is within [0,W)×[0,H).
func (b *Board) InBounds(pos core.CellPos) bool {
	return pos.X >= 0 && pos.X < b.w && pos.Y >= 0 && pos.Y < b.h
}

func (b *Board) checkBounds(pos core.CellPos) error {
	if !b.InBounds(pos) {
		return fmt.Errorf("board: %w: %v not in %dx%d", ErrOutOfBounds, pos, b.w, b.h)
	}
	return nil
}

// Get returns the handle occupying pos, or core.NoTile when empty.
func (b *Board) Get(pos core.CellPos) (core.TileID, error) {
	if err := b.checkBounds(pos); err != nil {
		return core.NoTile, err
	}
	return b.cells[b.index(pos)], nil
}

// Position returns where a tile currently sits.
func (b *Board) Position(id core.TileID) (core.CellPos, bool) {
	pos, ok := b.positions[id]
	return pos, ok
}

// Len returns the number of tiles on the board.
func (b *Board) Len() int {
	return len(b.positions)
}

// AllPositions returns a snapshot of occupied positions in row-major order.
func (b *Board) AllPositions() []core.CellPos {
	result := make([]core.CellPos, 0, len(b.positions))
	for i, id := range b.cells {
		if id != core.NoTile {
			result = append(result, core.P(i%b.w, i/b.w))
		}
	}
	return result
}

// AllTiles returns a snapshot of placed tile handles in row-major order.
func (b *Board) AllTiles() []core.TileID {
	result := make([]core.TileID, 0, len(b.positions))
	for _, id := range b.cells {
		if id != core.NoTile {
			result = append(result, id)
		}
	}
	return result
}

// TryPlace puts id at pos if pos is in bounds and empty.
// A tile that is already on the board is rejected rather than
// duplicated. The board is unchanged when false is returned.
func (b *Board) TryPlace(pos core.CellPos, id core.TileID) bool {
	if id == core.NoTile || !b.InBounds(pos) {
		return false
	}
	if b.cells[b.index(pos)] != core.NoTile {
		return false
	}
	if _, placed := b.positions[id]; placed {
		return false
	}
	b.cells[b.index(pos)] = id
	b.positions[id] = pos
	return true
}

// Move relocates whatever occupies from to to, without checking whether
// to is empty. A tile previously at to is dropped from the board.
// If from is empty, to becomes empty as well.
func (b *Board) Move(from, to core.CellPos) error {
	if err := b.checkBounds(from); err != nil {
		return err
	}
	if err := b.checkBounds(to); err != nil {
		return err
	}
	if from == to {
		return nil
	}

	moving := b.cells[b.index(from)]
	if overwritten := b.cells[b.index(to)]; overwritten != core.NoTile {
		delete(b.positions, overwritten)
	}

	b.cells[b.index(from)] = core.NoTile
	b.cells[b.index(to)] = moving
	if moving != core.NoTile {
		b.positions[moving] = to
	}
	return nil
}

// Swap exchanges the contents of two cells. Either side may be empty.
func (b *Board) Swap(a, c core.CellPos) error {
	if err := b.checkBounds(a); err != nil {
		return err
	}
	if err := b.checkBounds(c); err != nil {
		return err
	}

	ia, ic := b.index(a), b.index(c)
	b.cells[ia], b.cells[ic] = b.cells[ic], b.cells[ia]

	if id := b.cells[ia]; id != core.NoTile {
		b.positions[id] = a
	}
	if id := b.cells[ic]; id != core.NoTile {
		b.positions[id] = c
	}
	return nil
}

// Remove clears pos and returns the handle that was there.
func (b *Board) Remove(pos core.CellPos) (core.TileID, error) {
	if err := b.checkBounds(pos); err != nil {
		return core.NoTile, err
	}
	id := b.cells[b.index(pos)]
	if id != core.NoTile {
		b.cells[b.index(pos)] = core.NoTile
		delete(b.positions, id)
	}
	return id, nil
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	cells := make([]core.TileID, len(b.cells))
	copy(cells, b.cells)
	positions := make(map[core.TileID]core.CellPos, len(b.positions))
	for id, pos := range b.positions {
		positions[id] = pos
	}
	return &Board{
		w:         b.w,
		h:         b.h,
		cells:     cells,
		positions: positions,
	}
}
