// Package registry provides the catalog of tile definitions keyed by type.
// The catalog is filled once from design data and then only read, so any
// goroutine may query it.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/rovelike/internal/core"
)

var (
	// ErrUnknownType is returned when no definition has the requested key.
	ErrUnknownType = errors.New("unknown tile type")
	// ErrDuplicateType is returned when a type key is registered twice.
	ErrDuplicateType = errors.New("duplicate tile type")
	// ErrEmptyTypeKey is returned for definitions without a type key.
	ErrEmptyTypeKey = errors.New("empty tile type key")
)

// AbilitySpec names an ability kind and its tuning.
type AbilitySpec struct {
	Kind     string
	Range    int
	Cooldown int
}

// Definition is the static design data for one tile type.
type Definition struct {
	TypeKey     string
	DisplayName string
	Movement    core.MovementRules
	Ability     AbilitySpec
}

// Catalog holds definitions by type key.
type Catalog struct {
	mu   sync.RWMutex
	defs map[string]Definition
}

// New creates an empty catalog.
func New() *Catalog {
	return &Catalog{defs: make(map[string]Definition)}
}

// FromDefinitions builds a catalog, failing on the first invalid entry.
func FromDefinitions(defs []Definition) (*Catalog, error) {
	c := New()
	for _, def := range defs {
		if err := c.Register(def); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Register adds a definition to the catalog.
func (c *Catalog) Register(def Definition) error {
	if def.TypeKey == "" {
		return fmt.Errorf("registry: %w", ErrEmptyTypeKey)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.defs[def.TypeKey]; exists {
		return fmt.Errorf("registry: %w %q", ErrDuplicateType, def.TypeKey)
	}
	c.defs[def.TypeKey] = def
	return nil
}

// List returns all definitions, sorted by type key.
func (c *Catalog) List() []Definition {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result := make([]Definition, 0, len(c.defs))
	for _, def := range c.defs {
		result = append(result, def)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].TypeKey < result[j].TypeKey
	})

	return result
}

// Get returns the definition for a type key.
func (c *Catalog) Get(typeKey string) (Definition, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	def, ok := c.defs[typeKey]
	if !ok {
		return Definition{}, fmt.Errorf("registry: %w %q", ErrUnknownType, typeKey)
	}
	return def, nil
}

// Exists checks if a type key is registered.
func (c *Catalog) Exists(typeKey string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	_, ok := c.defs[typeKey]
	return ok
}

// Len returns the number of registered definitions.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.defs)
}
