package core

import "fmt"

// TileID is the opaque handle the board uses to identify a tile.
// NoTile marks an empty cell; real tiles carry positive ids.
type TileID int

// NoTile is the handle of an empty cell.
const NoTile TileID = 0

// ObstaclePassRule controls how a movement ray treats occupied cells.
type ObstaclePassRule uint8

const (
	// CannotPassThrough stops the ray before the first occupied cell.
	CannotPassThrough ObstaclePassRule = iota
	// CanPassThrough skips occupied cells but keeps walking.
	CanPassThrough
	// MustPassThrough only allows landing beyond the first occupied cell.
	MustPassThrough
	// PushObstacles treats occupied cells as landable; the occupant is displaced.
	PushObstacles
)

var passRuleNames = map[ObstaclePassRule]string{
	CannotPassThrough: "cannot_pass",
	CanPassThrough:    "can_pass",
	MustPassThrough:   "must_pass",
	PushObstacles:     "push",
}

// String returns the config name of the rule.
func (r ObstaclePassRule) String() string {
	if name, ok := passRuleNames[r]; ok {
		return name
	}
	return fmt.Sprintf("ObstaclePassRule(%d)", uint8(r))
}

// ParseObstaclePassRule converts a config name back into a rule.
func ParseObstaclePassRule(s string) (ObstaclePassRule, bool) {
	for rule, name := range passRuleNames {
		if name == s {
			return rule, true
		}
	}
	return CannotPassThrough, false
}

// MarshalText implements encoding.TextMarshaler.
func (r ObstaclePassRule) MarshalText() ([]byte, error) {
	name, ok := passRuleNames[r]
	if !ok {
		return nil, fmt.Errorf("unknown obstacle pass rule %d", uint8(r))
	}
	return []byte(name), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. An empty value
// selects the default CannotPassThrough.
func (r *ObstaclePassRule) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*r = CannotPassThrough
		return nil
	}
	rule, ok := ParseObstaclePassRule(string(text))
	if !ok {
		return fmt.Errorf("unknown obstacle pass rule %q", string(text))
	}
	*r = rule
	return nil
}

// MovementRules describes how far and in which directions a tile may move.
// It is a value: copying it never aliases another tile's rules.
type MovementRules struct {
	MaxDistance     int
	AllowOrthogonal bool
	AllowDiagonal   bool
	PassRule        ObstaclePassRule
}

// NewMovementRules builds a rule set. Values are not validated;
// a negative distance simply yields no destinations.
func NewMovementRules(maxDistance int, orthogonal, diagonal bool, pass ObstaclePassRule) MovementRules {
	return MovementRules{
		MaxDistance:     maxDistance,
		AllowOrthogonal: orthogonal,
		AllowDiagonal:   diagonal,
		PassRule:        pass,
	}
}

// Directions returns the eligible ray directions, orthogonal first.
func (r MovementRules) Directions() []Dir {
	dirs := make([]Dir, 0, 8)
	if r.AllowOrthogonal {
		dirs = append(dirs, OrthogonalDirs[:]...)
	}
	if r.AllowDiagonal {
		dirs = append(dirs, DiagonalDirs[:]...)
	}
	return dirs
}

// DirsLabel names the enabled direction families.
func (r MovementRules) DirsLabel() string {
	switch {
	case r.AllowOrthogonal && r.AllowDiagonal:
		return "all"
	case r.AllowOrthogonal:
		return "orthogonal"
	case r.AllowDiagonal:
		return "diagonal"
	default:
		return "none"
	}
}

// String returns a compact description used by the CLI and logs.
func (r MovementRules) String() string {
	return fmt.Sprintf("dist=%d dirs=%s pass=%s", r.MaxDistance, r.DirsLabel(), r.PassRule)
}
