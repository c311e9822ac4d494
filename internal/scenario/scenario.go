// Package scenario loads board layouts from YAML files and turns them
// into ready-to-query matches.
package scenario

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/rovelike/internal/core"
	"github.com/vovakirdan/rovelike/internal/match"
	"github.com/vovakirdan/rovelike/internal/registry"
	"github.com/vovakirdan/rovelike/internal/tile"
)

var (
	// ErrInvalidScenario is returned for layouts that cannot form a board.
	ErrInvalidScenario = errors.New("invalid scenario")

	// ErrNotFound is returned by LoadByID for unknown ids.
	ErrNotFound = errors.New("scenario not found")
)

// Placement puts one tile of a catalog type on a cell.
type Placement struct {
	TypeKey string
	Pos     core.CellPos
}

// Scenario is a board size plus the tiles that start on it.
type Scenario struct {
	ID         string
	Name       string
	Width      int
	Height     int
	Placements []Placement
	Metadata   map[string]string
	FilePath   string
}

// Build creates a match with the scenario's tiles placed in file order.
// Tile ids come from the factory, so the first placement of a fresh
// factory is #1.
func (s *Scenario) Build(factory *tile.Factory, catalog *registry.Catalog, logger *log.Logger) (*match.Match, error) {
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("scenario %s: %w", s.ID, err)
	}

	m := match.New(s.Width, s.Height, logger)
	for _, p := range s.Placements {
		t, err := factory.CreateByKey(catalog, p.TypeKey)
		if err != nil {
			return nil, fmt.Errorf("scenario %s: %w", s.ID, err)
		}
		if err := m.Place(t, p.Pos); err != nil {
			return nil, fmt.Errorf("scenario %s: %w", s.ID, err)
		}
	}
	return m, nil
}
