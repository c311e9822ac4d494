package match

import "errors"

var (
	// ErrUnknownTile is returned for ids that are not on this match's board.
	ErrUnknownTile = errors.New("unknown tile")

	// ErrCellUnavailable is returned when a tile cannot be placed.
	ErrCellUnavailable = errors.New("cell unavailable")

	// ErrNotAnOption is returned when a move or ability option is not among
	// the ones the tile currently has.
	ErrNotAnOption = errors.New("not a current option")

	// ErrPushBlocked is returned when a pushed tile has nowhere to go.
	ErrPushBlocked = errors.New("push blocked")

	// ErrAbilityUnavailable is returned when spending an ability that is
	// not ready.
	ErrAbilityUnavailable = errors.New("ability unavailable")
)
