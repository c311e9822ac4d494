// Package tile composes tile identity with movement and ability behaviors.
//
// A tile kind is nothing more than a combination of rule values and
// behavior implementations; there is no per-kind type.
package tile

import (
	"github.com/vovakirdan/rovelike/internal/ability"
	"github.com/vovakirdan/rovelike/internal/core"
	"github.com/vovakirdan/rovelike/internal/movement"
)

// Config is what a factory hands over to build a tile.
type Config struct {
	TypeKey       string
	DisplayName   string
	MovementRules core.MovementRules
	Ability       ability.Behavior
}

// Tile is an identity plus one movement and one ability behavior.
// It does not know where it is; the board does.
type Tile struct {
	id          core.TileID
	typeKey     string
	displayName string
	movement    movement.Behavior
	ability     ability.Behavior
}

// New builds a tile with the default ray movement. Rules are passed
// through unvalidated; a nil ability becomes ability.Unavailable.
func New(id core.TileID, cfg Config) *Tile {
	return Compose(id, cfg.TypeKey, cfg.DisplayName, movement.NewRayBehavior(cfg.MovementRules), cfg.Ability)
}

// Compose builds a tile from arbitrary behavior implementations.
func Compose(id core.TileID, typeKey, displayName string, mv movement.Behavior, ab ability.Behavior) *Tile {
	if ab == nil {
		ab = ability.Unavailable{}
	}
	if displayName == "" {
		displayName = typeKey
	}
	return &Tile{
		id:          id,
		typeKey:     typeKey,
		displayName: displayName,
		movement:    mv,
		ability:     ab,
	}
}

// ID returns the board handle of the tile.
func (t *Tile) ID() core.TileID {
	return t.id
}

// TypeKey returns the catalog key the tile was built from.
func (t *Tile) TypeKey() string {
	return t.typeKey
}

// DisplayName returns a human-readable name.
func (t *Tile) DisplayName() string {
	return t.displayName
}

// Movement returns the composed movement behavior.
func (t *Tile) Movement() movement.Behavior {
	return t.movement
}

// Ability returns the composed ability behavior.
func (t *Tile) Ability() ability.Behavior {
	return t.ability
}

// Moves forwards to the movement behavior.
func (t *Tile) Moves(ctx movement.MoveContext) []movement.MoveOption {
	return t.movement.Moves(ctx)
}

// AbilityAvailable forwards to the ability behavior.
func (t *Tile) AbilityAvailable() bool {
	return t.ability.Available()
}

// AbilityOptions forwards to the ability behavior.
func (t *Tile) AbilityOptions(ctx ability.AbilityContext) []ability.AbilityOption {
	return t.ability.Options(ctx)
}
