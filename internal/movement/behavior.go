package movement

import "github.com/vovakirdan/rovelike/internal/core"

// Behavior is a movement capability a tile composes.
// Implementations must never mutate the board.
type Behavior interface {
	// Rules returns the inherent rules of the behavior.
	Rules() core.MovementRules

	// SetRules replaces the inherent rules wholesale.
	SetRules(rules core.MovementRules)

	// Moves enumerates legal destinations for the given context.
	Moves(ctx MoveContext) []MoveOption
}

// RayBehavior is the default straight-line movement: it hands the
// effective rules to Calculate. Jumps, teleports and pattern movement
// belong in their own Behavior implementations.
type RayBehavior struct {
	rules core.MovementRules
}

var _ Behavior = (*RayBehavior)(nil)

// NewRayBehavior creates a ray behavior with the given inherent rules.
func NewRayBehavior(rules core.MovementRules) *RayBehavior {
	return &RayBehavior{rules: rules}
}

// Rules returns a copy of the inherent rules.
func (b *RayBehavior) Rules() core.MovementRules {
	return b.rules
}

// SetRules stores a new rule value.
func (b *RayBehavior) SetRules(rules core.MovementRules) {
	b.rules = rules
}

// Moves applies the context override (if any) in place of the inherent
// rules and casts rays from the context origin.
func (b *RayBehavior) Moves(ctx MoveContext) []MoveOption {
	return Calculate(ctx.Board, ctx.Origin, ctx.EffectiveRules(b.rules))
}
