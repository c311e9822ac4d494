package match

import "github.com/vovakirdan/rovelike/internal/core"

// Event describes one change a match operation made to the board.
type Event interface {
	matchEvent()
}

// TileMovedEvent is emitted when a tile relocates by its own move.
type TileMovedEvent struct {
	Tile     core.TileID
	From, To core.CellPos
}

func (TileMovedEvent) matchEvent() {}

// TilePushedEvent is emitted when a tile is displaced by another.
type TilePushedEvent struct {
	Tile     core.TileID
	By       core.TileID
	From, To core.CellPos
}

func (TilePushedEvent) matchEvent() {}

// TilesSwappedEvent is emitted when two cells exchange contents.
type TilesSwappedEvent struct {
	A, B core.CellPos
}

func (TilesSwappedEvent) matchEvent() {}

// TileRemovedEvent is emitted when a tile leaves the board.
type TileRemovedEvent struct {
	Tile core.TileID
	At   core.CellPos
}

func (TileRemovedEvent) matchEvent() {}

// AbilitySpentEvent is emitted when a tile commits an ability option.
// Resolving the effect on the targets is up to the caller.
type AbilitySpentEvent struct {
	Tile    core.TileID
	Targets []core.CellPos
}

func (AbilitySpentEvent) matchEvent() {}

// TurnEndedEvent is emitted by EndTurn.
type TurnEndedEvent struct {
	Turn int
}

func (TurnEndedEvent) matchEvent() {}
