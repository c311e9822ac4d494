// Package config provides YAML-based tile library loading for the rules
// engine. It is the only place design data is validated; the engine itself
// passes rule values through untouched.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/rovelike/internal/ability"
	"github.com/vovakirdan/rovelike/internal/core"
	"github.com/vovakirdan/rovelike/internal/registry"
)

// TileLibrary is the root of a tiles.yaml file.
type TileLibrary struct {
	Tiles []TileSpec `yaml:"tiles"`
}

// TileSpec defines one tile type.
type TileSpec struct {
	TypeKey     string       `yaml:"type_key"`
	DisplayName string       `yaml:"display_name"`
	Movement    MovementSpec `yaml:"movement"`
	Ability     AbilitySpec  `yaml:"ability"`
}

// MovementSpec defines the inherent movement rules of a tile type.
type MovementSpec struct {
	MaxDistance int                   `yaml:"max_distance"`
	Orthogonal  bool                  `yaml:"orthogonal"`
	Diagonal    bool                  `yaml:"diagonal"`
	PassRule    core.ObstaclePassRule `yaml:"pass_rule"` // cannot_pass, can_pass, must_pass, push
}

// AbilitySpec selects an ability kind and its tuning.
type AbilitySpec struct {
	Kind     string `yaml:"kind"` // "none", "laser"
	Range    int    `yaml:"range,omitempty"`
	Cooldown int    `yaml:"cooldown,omitempty"`
}

// Rules converts the YAML movement block into a rule value.
func (m MovementSpec) Rules() core.MovementRules {
	return core.NewMovementRules(m.MaxDistance, m.Orthogonal, m.Diagonal, m.PassRule)
}

// Definition converts the YAML entry into catalog data.
func (s TileSpec) Definition() registry.Definition {
	return registry.Definition{
		TypeKey:     s.TypeKey,
		DisplayName: s.DisplayName,
		Movement:    s.Movement.Rules(),
		Ability: registry.AbilitySpec{
			Kind:     s.Ability.Kind,
			Range:    s.Ability.Range,
			Cooldown: s.Ability.Cooldown,
		},
	}
}

// Definitions converts every entry, keeping file order.
func (l TileLibrary) Definitions() []registry.Definition {
	defs := make([]registry.Definition, len(l.Tiles))
	for i, s := range l.Tiles {
		defs[i] = s.Definition()
	}
	return defs
}

// Catalog validates the library and builds a catalog from it.
func (l TileLibrary) Catalog() (*registry.Catalog, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return registry.FromDefinitions(l.Definitions())
}

// Validate reports every problem found in the library at once.
func (l TileLibrary) Validate() error {
	var errs []error
	known := make(map[string]bool)
	for _, kind := range ability.Kinds() {
		known[kind] = true
	}
	seen := make(map[string]bool)

	for i, s := range l.Tiles {
		switch {
		case s.TypeKey == "":
			errs = append(errs, fmt.Errorf("tiles[%d]: missing type_key", i))
		case seen[s.TypeKey]:
			errs = append(errs, fmt.Errorf("tiles[%d]: duplicate type_key %q", i, s.TypeKey))
		}
		seen[s.TypeKey] = true

		if s.Movement.MaxDistance < 0 {
			errs = append(errs, fmt.Errorf("tiles[%d] %q: negative max_distance %d", i, s.TypeKey, s.Movement.MaxDistance))
		}
		if s.Ability.Kind != "" && !known[s.Ability.Kind] {
			errs = append(errs, fmt.Errorf("tiles[%d] %q: unknown ability kind %q", i, s.TypeKey, s.Ability.Kind))
		}
		if s.Ability.Range < 0 || s.Ability.Cooldown < 0 {
			errs = append(errs, fmt.Errorf("tiles[%d] %q: negative ability tuning", i, s.TypeKey))
		}
	}
	return errors.Join(errs...)
}
