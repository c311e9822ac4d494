// Package ability describes what a tile's ability could target.
// Behaviors enumerate options; executing an ability is outside this package.
package ability

import (
	"fmt"

	"github.com/vovakirdan/rovelike/internal/board"
	"github.com/vovakirdan/rovelike/internal/core"
)

// AbilityContext is the read-only snapshot an ability query works from.
type AbilityContext struct {
	Board  board.Reader
	Origin core.CellPos
}

// NewAbilityContext creates a context for a tile at origin.
func NewAbilityContext(b board.Reader, origin core.CellPos) AbilityContext {
	return AbilityContext{Board: b, Origin: origin}
}

// AbilityOption is one candidate use of an ability: the cells it would hit.
type AbilityOption struct {
	Targets []core.CellPos
}

// NewAbilityOption copies targets into a new option.
func NewAbilityOption(targets ...core.CellPos) AbilityOption {
	owned := make([]core.CellPos, len(targets))
	copy(owned, targets)
	return AbilityOption{Targets: owned}
}

// String returns a short description for logs and the CLI.
func (o AbilityOption) String() string {
	return fmt.Sprintf("targets %v", o.Targets)
}
