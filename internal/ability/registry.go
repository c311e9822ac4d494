package ability

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// Params carries the design-data knobs an ability kind may use.
type Params struct {
	Range    int
	Cooldown int
}

// Factory builds a fresh behavior instance for one tile.
type Factory func(p Params) Behavior

// KindNone is the kind used when a tile has no ability.
const KindNone = "none"

// KindLaser selects the Laser behavior.
const KindLaser = "laser"

// ErrUnknownKind is returned by New for unregistered kinds.
var ErrUnknownKind = errors.New("unknown ability kind")

var (
	factories = make(map[string]Factory)
	mu        sync.RWMutex
)

func init() {
	Register(KindNone, func(Params) Behavior { return Unavailable{} })
	Register(KindLaser, func(p Params) Behavior { return NewLaser(p.Range, p.Cooldown) })
}

// Register adds an ability factory under kind.
// Panics if the kind is already registered.
func Register(kind string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[kind]; exists {
		panic(fmt.Sprintf("ability: kind %q already registered", kind))
	}
	factories[kind] = f
}

// New creates a behavior of the given kind. An empty kind means KindNone.
func New(kind string, p Params) (Behavior, error) {
	if kind == "" {
		kind = KindNone
	}

	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[kind]
	if !ok {
		return nil, fmt.Errorf("ability: %w %q", ErrUnknownKind, kind)
	}
	return f(p), nil
}

// Kinds returns all registered kinds, sorted.
func Kinds() []string {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]string, 0, len(factories))
	for kind := range factories {
		result = append(result, kind)
	}
	sort.Strings(result)
	return result
}
