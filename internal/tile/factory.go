package tile

import (
	"fmt"

	"github.com/vovakirdan/rovelike/internal/ability"
	"github.com/vovakirdan/rovelike/internal/core"
	"github.com/vovakirdan/rovelike/internal/registry"
)

// ConfigFromDefinition turns catalog data into a tile config, building a
// fresh ability instance so tiles never share ability state.
func ConfigFromDefinition(def registry.Definition) (Config, error) {
	ab, err := ability.New(def.Ability.Kind, ability.Params{
		Range:    def.Ability.Range,
		Cooldown: def.Ability.Cooldown,
	})
	if err != nil {
		return Config{}, fmt.Errorf("tile %q: %w", def.TypeKey, err)
	}
	return Config{
		TypeKey:       def.TypeKey,
		DisplayName:   def.DisplayName,
		MovementRules: def.Movement,
		Ability:       ab,
	}, nil
}

// Factory creates tiles with unique, increasing ids starting at 1.
// It is not safe for concurrent use.
type Factory struct {
	last core.TileID
}

// NewFactory creates a factory.
func NewFactory() *Factory {
	return &Factory{}
}

// Create builds a tile from a definition.
func (f *Factory) Create(def registry.Definition) (*Tile, error) {
	cfg, err := ConfigFromDefinition(def)
	if err != nil {
		return nil, err
	}
	f.last++
	return New(f.last, cfg), nil
}

// CreateByKey looks the type up in the catalog and builds a tile.
func (f *Factory) CreateByKey(cat *registry.Catalog, typeKey string) (*Tile, error) {
	def, err := cat.Get(typeKey)
	if err != nil {
		return nil, err
	}
	return f.Create(def)
}
