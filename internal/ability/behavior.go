package ability

// Behavior is an ability capability a tile composes.
//
// Implementations decide availability themselves (turn usage, cooldowns).
// Options must not mutate the board and must return an empty slice,
// not an error, when nothing can be targeted.
type Behavior interface {
	// Available reports whether the ability can be invoked right now.
	Available() bool

	// Options lists every way the ability could be used from ctx.
	Options(ctx AbilityContext) []AbilityOption
}

// Unavailable is the placeholder for tiles whose ability is not designed
// yet: never available, never any options.
type Unavailable struct{}

var _ Behavior = Unavailable{}

// Available always returns false.
func (Unavailable) Available() bool {
	return false
}

// Options always returns an empty list.
func (Unavailable) Options(AbilityContext) []AbilityOption {
	return []AbilityOption{}
}
