// Package match is the game-controller layer on top of the rules engine.
// It owns a board and its tiles, builds contexts for queries and applies
// the options a caller picks. It decides nothing on its own.
package match

import (
	"fmt"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/rovelike/internal/ability"
	"github.com/vovakirdan/rovelike/internal/board"
	"github.com/vovakirdan/rovelike/internal/core"
	"github.com/vovakirdan/rovelike/internal/movement"
	"github.com/vovakirdan/rovelike/internal/tile"
)

// cooldown is implemented by abilities that track per-turn state.
type cooldown interface {
	MarkUsed()
	EndTurn()
}

// Match is a board plus the tiles standing on it.
// Not safe for concurrent use.
type Match struct {
	board  *board.Board
	tiles  map[core.TileID]*tile.Tile
	turn   int
	logger *log.Logger
}

// New creates an empty match. A nil logger uses the default logger.
func New(width, height int, logger *log.Logger) *Match {
	if logger == nil {
		logger = log.Default()
	}
	return &Match{
		board:  board.New(width, height),
		tiles:  make(map[core.TileID]*tile.Tile),
		logger: logger,
	}
}

// Board returns a read-only view of the board.
func (m *Match) Board() board.Reader {
	return m.board
}

// Snapshot returns a deep copy of the board.
func (m *Match) Snapshot() *board.Board {
	return m.board.Clone()
}

// Turn returns the number of completed turns.
func (m *Match) Turn() int {
	return m.turn
}

// Place puts a tile on the board.
func (m *Match) Place(t *tile.Tile, pos core.CellPos) error {
	if t == nil || !m.board.TryPlace(pos, t.ID()) {
		var id core.TileID
		if t != nil {
			id = t.ID()
		}
		return fmt.Errorf("match: place #%d at %v: %w", id, pos, ErrCellUnavailable)
	}
	m.tiles[t.ID()] = t
	m.logger.Debug("tile placed", "tile", t.ID(), "type", t.TypeKey(), "pos", pos)
	return nil
}

// Tile looks up a tile on the board.
func (m *Match) Tile(id core.TileID) (*tile.Tile, bool) {
	t, ok := m.tiles[id]
	return t, ok
}

// Position returns where a tile stands.
func (m *Match) Position(id core.TileID) (core.CellPos, bool) {
	return m.board.Position(id)
}

// TileAt returns the tile on pos, or nil when the cell is empty.
func (m *Match) TileAt(pos core.CellPos) (*tile.Tile, error) {
	id, err := m.board.Get(pos)
	if err != nil {
		return nil, fmt.Errorf("match: %w", err)
	}
	return m.tiles[id], nil
}

// Tiles returns the tiles on the board in row-major order.
func (m *Match) Tiles() []*tile.Tile {
	ids := m.board.AllTiles()
	tiles := make([]*tile.Tile, 0, len(ids))
	for _, id := range ids {
		tiles = append(tiles, m.tiles[id])
	}
	return tiles
}

func (m *Match) locate(id core.TileID) (*tile.Tile, core.CellPos, error) {
	t, ok := m.tiles[id]
	if !ok {
		return nil, core.CellPos{}, fmt.Errorf("match: tile #%d: %w", id, ErrUnknownTile)
	}
	pos, ok := m.board.Position(id)
	if !ok {
		return nil, core.CellPos{}, fmt.Errorf("match: tile #%d: %w", id, ErrUnknownTile)
	}
	return t, pos, nil
}

// MoveContext builds a fresh movement context for a tile. A non-nil
// override replaces the tile's rules for this query only.
func (m *Match) MoveContext(id core.TileID, override *core.MovementRules) (movement.MoveContext, error) {
	_, pos, err := m.locate(id)
	if err != nil {
		return movement.MoveContext{}, err
	}
	ctx := movement.NewMoveContext(m.board, pos)
	if override != nil {
		ctx = ctx.WithOverride(*override)
	}
	return ctx, nil
}

// Moves returns the tile's current move options.
func (m *Match) Moves(id core.TileID, override *core.MovementRules) ([]movement.MoveOption, error) {
	ctx, err := m.MoveContext(id, override)
	if err != nil {
		return nil, err
	}
	return m.tiles[id].Moves(ctx), nil
}

// AbilityOptions returns the tile's current ability options, empty when
// the ability is not available.
func (m *Match) AbilityOptions(id core.TileID) ([]ability.AbilityOption, error) {
	t, pos, err := m.locate(id)
	if err != nil {
		return nil, err
	}
	if !t.AbilityAvailable() {
		return []ability.AbilityOption{}, nil
	}
	return t.AbilityOptions(ability.NewAbilityContext(m.board, pos)), nil
}

// ApplyMove relocates a tile along one of its current options, computed
// with the same override the caller used. A push option first shoves the
// occupant one cell further along the ray; when that cell is off the board
// or taken the board is left untouched and ErrPushBlocked is returned.
func (m *Match) ApplyMove(id core.TileID, opt movement.MoveOption, override *core.MovementRules) ([]Event, error) {
	moves, err := m.Moves(id, override)
	if err != nil {
		return nil, err
	}
	if !slices.Contains(moves, opt) {
		return nil, fmt.Errorf("match: tile #%d to %v: %w", id, opt.Destination, ErrNotAnOption)
	}
	from, _ := m.board.Position(id)

	var events []Event
	if opt.IsPush() {
		landing := opt.Destination.Step(opt.Dir)
		occupant, err := m.board.Get(landing)
		if err != nil || occupant != core.NoTile {
			m.logger.Debug("push blocked", "tile", id, "pushed", opt.Pushes, "landing", landing)
			return nil, fmt.Errorf("match: #%d cannot push #%d to %v: %w", id, opt.Pushes, landing, ErrPushBlocked)
		}
		if err := m.board.Move(opt.Destination, landing); err != nil {
			return nil, fmt.Errorf("match: %w", err)
		}
		events = append(events, TilePushedEvent{Tile: opt.Pushes, By: id, From: opt.Destination, To: landing})
	}

	if err := m.board.Move(from, opt.Destination); err != nil {
		return nil, fmt.Errorf("match: %w", err)
	}
	events = append(events, TileMovedEvent{Tile: id, From: from, To: opt.Destination})
	m.logger.Debug("tile moved", "tile", id, "from", from, "to", opt.Destination, "push", opt.IsPush())
	return events, nil
}

// SpendAbility commits one of the tile's current ability options and
// starts its cooldown. The effect on the targets is not resolved here.
func (m *Match) SpendAbility(id core.TileID, opt ability.AbilityOption) ([]Event, error) {
	t, _, err := m.locate(id)
	if err != nil {
		return nil, err
	}
	if !t.AbilityAvailable() {
		return nil, fmt.Errorf("match: tile #%d: %w", id, ErrAbilityUnavailable)
	}
	options, err := m.AbilityOptions(id)
	if err != nil {
		return nil, err
	}
	found := slices.ContainsFunc(options, func(o ability.AbilityOption) bool {
		return slices.Equal(o.Targets, opt.Targets)
	})
	if !found {
		return nil, fmt.Errorf("match: tile #%d ability %v: %w", id, opt, ErrNotAnOption)
	}
	if cd, ok := t.Ability().(cooldown); ok {
		cd.MarkUsed()
	}
	m.logger.Debug("ability spent", "tile", id, "targets", opt.Targets)
	return []Event{AbilitySpentEvent{Tile: id, Targets: slices.Clone(opt.Targets)}}, nil
}

// Swap exchanges the contents of two cells.
func (m *Match) Swap(a, b core.CellPos) ([]Event, error) {
	if err := m.board.Swap(a, b); err != nil {
		return nil, fmt.Errorf("match: %w", err)
	}
	return []Event{TilesSwappedEvent{A: a, B: b}}, nil
}

// Remove takes a tile off the board and forgets it.
func (m *Match) Remove(id core.TileID) ([]Event, error) {
	_, pos, err := m.locate(id)
	if err != nil {
		return nil, err
	}
	if _, err := m.board.Remove(pos); err != nil {
		return nil, fmt.Errorf("match: %w", err)
	}
	delete(m.tiles, id)
	m.logger.Debug("tile removed", "tile", id, "pos", pos)
	return []Event{TileRemovedEvent{Tile: id, At: pos}}, nil
}

// EndTurn advances the turn counter and ticks ability cooldowns.
func (m *Match) EndTurn() []Event {
	for _, t := range m.tiles {
		if cd, ok := t.Ability().(cooldown); ok {
			cd.EndTurn()
		}
	}
	m.turn++
	return []Event{TurnEndedEvent{Turn: m.turn}}
}
