package ability

import "github.com/vovakirdan/rovelike/internal/core"

// Laser fires along the four orthogonal lines and hits the first tile in
// each, up to Range cells away. After use it recharges over a number of
// turns.
type Laser struct {
	Range    int
	Cooldown int

	remaining int // turns until available again
}

var _ Behavior = (*Laser)(nil)

// NewLaser creates a charged laser.
func NewLaser(rng, cooldown int) *Laser {
	return &Laser{Range: rng, Cooldown: cooldown}
}

// Available reports whether the laser is charged.
func (l *Laser) Available() bool {
	return l.remaining == 0
}

// Remaining returns how many turn ends are left before recharge.
func (l *Laser) Remaining() int {
	return l.remaining
}

// MarkUsed starts the recharge. A laser is always spent for at least
// the rest of the current turn.
func (l *Laser) MarkUsed() {
	l.remaining = core.Max(l.Cooldown, 1)
}

// EndTurn advances the recharge by one turn.
func (l *Laser) EndTurn() {
	if l.remaining > 0 {
		l.remaining--
	}
}

// Options returns one single-target option per orthogonal line that has
// a tile within range. Nothing is returned while recharging.
func (l *Laser) Options(ctx AbilityContext) []AbilityOption {
	options := make([]AbilityOption, 0)
	if !l.Available() || ctx.Board == nil || !ctx.Board.InBounds(ctx.Origin) {
		return options
	}

	for _, dir := range core.OrthogonalDirs {
		pos := ctx.Origin
		for step := 1; step <= l.Range; step++ {
			pos = pos.Step(dir)
			if !ctx.Board.InBounds(pos) {
				break
			}
			id, err := ctx.Board.Get(pos)
			if err != nil {
				break
			}
			if id != core.NoTile {
				options = append(options, NewAbilityOption(pos))
				break
			}
		}
	}
	return options
}
