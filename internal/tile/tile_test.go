package tile

import (
	"errors"
	"testing"

	"github.com/vovakirdan/rovelike/internal/ability"
	"github.com/vovakirdan/rovelike/internal/board"
	"github.com/vovakirdan/rovelike/internal/core"
	"github.com/vovakirdan/rovelike/internal/movement"
	"github.com/vovakirdan/rovelike/internal/registry"
)

// stubMovement records the context it was asked about.
type stubMovement struct {
	rules core.MovementRules
	seen  []core.CellPos
}

func (s *stubMovement) Rules() core.MovementRules        { return s.rules }
func (s *stubMovement) SetRules(rules core.MovementRules) { s.rules = rules }
func (s *stubMovement) Moves(ctx movement.MoveContext) []movement.MoveOption {
	s.seen = append(s.seen, ctx.Origin)
	return []movement.MoveOption{{Destination: ctx.Origin.Add(1, 0)}}
}

// stubAbility is always available and targets its own origin.
type stubAbility struct{}

func (stubAbility) Available() bool { return true }
func (stubAbility) Options(ctx ability.AbilityContext) []ability.AbilityOption {
	return []ability.AbilityOption{ability.NewAbilityOption(ctx.Origin)}
}

func TestNewDefaults(t *testing.T) {
	tl := New(3, Config{
		TypeKey:       "gripper",
		MovementRules: core.NewMovementRules(1, true, true, core.CannotPassThrough),
	})

	if tl.ID() != 3 || tl.TypeKey() != "gripper" {
		t.Errorf("identity = (%d, %q)", tl.ID(), tl.TypeKey())
	}
	if tl.DisplayName() != "gripper" {
		t.Errorf("DisplayName should fall back to type key, got %q", tl.DisplayName())
	}
	if tl.AbilityAvailable() {
		t.Error("nil ability should become Unavailable")
	}
	if opts := tl.AbilityOptions(ability.NewAbilityContext(board.New(3, 3), core.P(1, 1))); len(opts) != 0 {
		t.Errorf("expected no ability options, got %v", opts)
	}

	b := board.New(3, 3)
	moves := tl.Moves(movement.NewMoveContext(b, core.P(1, 1)))
	if len(moves) != 8 {
		t.Errorf("gripper in the centre of 3x3 should have 8 moves, got %d", len(moves))
	}
}

func TestNewPassesRulesThrough(t *testing.T) {
	rules := core.NewMovementRules(-4, false, false, core.PushObstacles)
	tl := New(1, Config{TypeKey: "odd", MovementRules: rules})

	if tl.Movement().Rules() != rules {
		t.Errorf("rules were altered: %v", tl.Movement().Rules())
	}
}

func TestComposeForwards(t *testing.T) {
	mv := &stubMovement{}
	tl := Compose(1, "probe", "Probe", mv, stubAbility{})

	b := board.New(4, 4)
	moves := tl.Moves(movement.NewMoveContext(b, core.P(2, 2)))
	if len(moves) != 1 || moves[0].Destination != core.P(3, 2) {
		t.Errorf("Moves did not forward: %v", moves)
	}
	if len(mv.seen) != 1 || mv.seen[0] != core.P(2, 2) {
		t.Errorf("behavior saw %v", mv.seen)
	}

	if !tl.AbilityAvailable() {
		t.Error("AbilityAvailable did not forward")
	}
	opts := tl.AbilityOptions(ability.NewAbilityContext(b, core.P(0, 1)))
	if len(opts) != 1 || opts[0].Targets[0] != core.P(0, 1) {
		t.Errorf("AbilityOptions did not forward: %v", opts)
	}
}

func TestTilesSharingRulesMoveAlike(t *testing.T) {
	rules := core.NewMovementRules(2, true, false, core.CanPassThrough)
	a := New(1, Config{TypeKey: "brain", MovementRules: rules})
	c := New(2, Config{TypeKey: "brain", MovementRules: rules})

	b := board.New(5, 5)
	b.TryPlace(core.P(2, 1), 9)
	ctx := movement.NewMoveContext(b, core.P(2, 2))

	ma, mc := a.Moves(ctx), c.Moves(ctx)
	if len(ma) != len(mc) {
		t.Fatalf("move counts differ: %d vs %d", len(ma), len(mc))
	}
	for i := range ma {
		if ma[i] != mc[i] {
			t.Errorf("option %d differs: %v vs %v", i, ma[i], mc[i])
		}
	}

	// Retuning one tile leaves the other alone
	a.Movement().SetRules(core.NewMovementRules(1, false, true, core.CannotPassThrough))
	if c.Movement().Rules() != rules {
		t.Error("rules are aliased between tiles")
	}
}

func TestFactoryAssignsIDs(t *testing.T) {
	f := NewFactory()
	def := registry.Definition{TypeKey: "motor", Movement: core.NewMovementRules(1, true, false, core.PushObstacles)}

	first, err := f.Create(def)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	second, _ := f.Create(def)

	if first.ID() != 1 || second.ID() != 2 {
		t.Errorf("ids = %d, %d; expected 1, 2", first.ID(), second.ID())
	}
	if first.ID() == core.NoTile {
		t.Error("factory must never hand out NoTile")
	}
}

func TestFactoryAbilityInstancesAreSeparate(t *testing.T) {
	f := NewFactory()
	def := registry.Definition{
		TypeKey: "laser",
		Ability: registry.AbilitySpec{Kind: ability.KindLaser, Range: 3, Cooldown: 1},
	}

	a, _ := f.Create(def)
	c, _ := f.Create(def)

	a.Ability().(*ability.Laser).MarkUsed()
	if a.AbilityAvailable() {
		t.Error("used laser should be unavailable")
	}
	if !c.AbilityAvailable() {
		t.Error("second laser should be unaffected")
	}
}

func TestFactoryErrors(t *testing.T) {
	f := NewFactory()

	_, err := f.Create(registry.Definition{TypeKey: "x", Ability: registry.AbilitySpec{Kind: "warp"}})
	if !errors.Is(err, ability.ErrUnknownKind) {
		t.Errorf("expected ErrUnknownKind, got %v", err)
	}

	cat := registry.New()
	if _, err := f.CreateByKey(cat, "ghost"); !errors.Is(err, registry.ErrUnknownType) {
		t.Errorf("expected ErrUnknownType, got %v", err)
	}

	// Failed creations do not burn ids
	cat.Register(registry.Definition{TypeKey: "brain"})
	tl, err := f.CreateByKey(cat, "brain")
	if err != nil {
		t.Fatalf("CreateByKey failed: %v", err)
	}
	if tl.ID() != 1 {
		t.Errorf("expected id 1, got %d", tl.ID())
	}
}
