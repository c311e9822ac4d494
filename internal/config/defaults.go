package config

import (
	_ "embed"

	"github.com/vovakirdan/rovelike/internal/ability"
	"github.com/vovakirdan/rovelike/internal/core"
)

//go:embed defaults/tiles.yaml
var defaultTilesYAML []byte

// DefaultTileLibrary returns the built-in tile designs.
func DefaultTileLibrary() TileLibrary {
	return TileLibrary{
		Tiles: []TileSpec{
			{
				TypeKey:     "brain",
				DisplayName: "Brain",
				Movement:    MovementSpec{MaxDistance: 10, Orthogonal: true, PassRule: core.CannotPassThrough},
				Ability:     AbilitySpec{Kind: ability.KindNone},
			},
			{
				TypeKey:     "coil",
				DisplayName: "Coil",
				Movement:    MovementSpec{MaxDistance: 10, Orthogonal: true, Diagonal: true, PassRule: core.MustPassThrough},
				Ability:     AbilitySpec{Kind: ability.KindNone},
			},
			{
				TypeKey:     "gripper",
				DisplayName: "Gripper",
				Movement:    MovementSpec{MaxDistance: 1, Orthogonal: true, Diagonal: true, PassRule: core.CannotPassThrough},
				Ability:     AbilitySpec{Kind: ability.KindNone},
			},
			{
				TypeKey:     "laser",
				DisplayName: "Laser",
				Movement:    MovementSpec{MaxDistance: 1, Orthogonal: true, PassRule: core.CannotPassThrough},
				Ability:     AbilitySpec{Kind: ability.KindLaser, Range: 5, Cooldown: 2},
			},
			{
				TypeKey:     "motor",
				DisplayName: "Motor",
				Movement:    MovementSpec{MaxDistance: 1, Orthogonal: true, PassRule: core.PushObstacles},
				Ability:     AbilitySpec{Kind: ability.KindNone},
			},
			{
				TypeKey:     "sensor",
				DisplayName: "Sensor",
				Movement:    MovementSpec{MaxDistance: 10, Diagonal: true, PassRule: core.CanPassThrough},
				Ability:     AbilitySpec{Kind: ability.KindNone},
			},
		},
	}
}
