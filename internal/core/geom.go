// Package core provides the fundamental value types of the rules engine.
// It contains no external dependencies to keep board and movement logic
// pure and testable.
package core

import "fmt"

// CellPos is a cell coordinate on the board.
// X increases to the right, Y increases downward (screen coordinates).
// A CellPos has no validity of its own; bounds belong to a specific board.
type CellPos struct {
	X int
	Y int
}

// P is a convenience constructor for CellPos.
func P(x, y int) CellPos {
	return CellPos{X: x, Y: y}
}

// String returns a string representation of the position.
func (p CellPos) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Add returns a new CellPos offset by (dx, dy).
func (p CellPos) Add(dx, dy int) CellPos {
	return CellPos{X: p.X + dx, Y: p.Y + dy}
}

// Step returns the neighbouring position in the given direction.
func (p CellPos) Step(d Dir) CellPos {
	dx, dy := d.Delta()
	return p.Add(dx, dy)
}

// Chebyshev returns the king-move distance to another position,
// which is the number of ray steps between two cells on a shared line.
func (p CellPos) Chebyshev(other CellPos) int {
	return Max(Abs(p.X-other.X), Abs(p.Y-other.Y))
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
