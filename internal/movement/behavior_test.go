package movement

import (
	"testing"

	"github.com/vovakirdan/rovelike/internal/board"
	"github.com/vovakirdan/rovelike/internal/core"
)

func TestRayBehaviorUsesInherentRules(t *testing.T) {
	b := board.New(5, 5)
	behavior := NewRayBehavior(core.NewMovementRules(1, true, false, core.CannotPassThrough))

	options := behavior.Moves(NewMoveContext(b, core.P(2, 2)))
	if len(options) != 4 {
		t.Errorf("expected 4 orthogonal moves, got %d", len(options))
	}
}

func TestRayBehaviorOverrideReplacesRules(t *testing.T) {
	b := board.New(5, 5)
	behavior := NewRayBehavior(core.NewMovementRules(1, true, false, core.CannotPassThrough))

	ctx := NewMoveContext(b, core.P(2, 2)).WithOverride(core.NewMovementRules(1, false, true, core.CannotPassThrough))
	options := behavior.Moves(ctx)

	if len(options) != 4 {
		t.Fatalf("expected 4 diagonal moves, got %d", len(options))
	}
	for _, o := range options {
		if !o.Dir.IsDiagonal() {
			t.Errorf("override should drop orthogonal moves, got %v", o)
		}
	}

	// The inherent rules are untouched by the override
	if behavior.Rules().AllowDiagonal {
		t.Error("override leaked into inherent rules")
	}
}

func TestRayBehaviorSetRules(t *testing.T) {
	shared := core.NewMovementRules(2, true, false, core.CannotPassThrough)
	a := NewRayBehavior(shared)
	c := NewRayBehavior(shared)

	a.SetRules(core.NewMovementRules(5, true, true, core.CanPassThrough))

	if c.Rules() != shared {
		t.Errorf("SetRules on one behavior changed another: %v", c.Rules())
	}
	if a.Rules().MaxDistance != 5 {
		t.Errorf("SetRules did not apply: %v", a.Rules())
	}
}

func TestSameRulesSameMoves(t *testing.T) {
	rules := core.NewMovementRules(3, true, true, core.CanPassThrough)

	build := func() *board.Board {
		b := board.New(6, 6)
		b.TryPlace(core.P(1, 1), 1)
		b.TryPlace(core.P(4, 2), 2)
		return b
	}

	first := NewRayBehavior(rules).Moves(NewMoveContext(build(), core.P(2, 2)))
	second := NewRayBehavior(rules).Moves(NewMoveContext(build(), core.P(2, 2)))

	if len(first) != len(second) {
		t.Fatalf("move counts differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("option %d differs: %v vs %v", i, first[i], second[i])
		}
	}
}

func TestEffectiveRules(t *testing.T) {
	inherent := core.NewMovementRules(1, true, false, core.CannotPassThrough)
	ctx := NewMoveContext(board.New(1, 1), core.P(0, 0))

	if ctx.EffectiveRules(inherent) != inherent {
		t.Error("without override the inherent rules apply")
	}

	override := core.NewMovementRules(9, false, true, core.PushObstacles)
	if ctx.WithOverride(override).EffectiveRules(inherent) != override {
		t.Error("override should win wholesale")
	}
	if ctx.Override != nil {
		t.Error("WithOverride must not modify the receiver")
	}
}

func TestMoveOptionString(t *testing.T) {
	o := MoveOption{Destination: core.P(1, 0), Dir: core.DirE, Distance: 1}
	if s := o.String(); s != "(1,0) E+1" {
		t.Errorf("String() = %q", s)
	}
	o.Pushes = 4
	if s := o.String(); s != "(1,0) E+1 push #4" {
		t.Errorf("String() = %q", s)
	}
}
