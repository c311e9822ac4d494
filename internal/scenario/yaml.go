package scenario

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/rovelike/internal/core"
)

// YAMLScenario is the on-disk shape of a scenario file.
type YAMLScenario struct {
	ID       string            `yaml:"id"`
	Name     string            `yaml:"name"`
	Size     YAMLSize          `yaml:"size"`
	Tiles    []YAMLTile        `yaml:"tiles"`
	Metadata map[string]string `yaml:"metadata,omitempty"`
}

// YAMLSize holds board dimensions.
type YAMLSize struct {
	W int `yaml:"w"`
	H int `yaml:"h"`
}

// YAMLTile places one tile of a catalog type.
type YAMLTile struct {
	Type string `yaml:"type"`
	X    int    `yaml:"x"`
	Y    int    `yaml:"y"`
}

// ParseYAML parses and checks a scenario document. Whether the tile types
// exist is only known at Build time.
func ParseYAML(data []byte) (Scenario, error) {
	var ys YAMLScenario
	if err := yaml.Unmarshal(data, &ys); err != nil {
		return Scenario{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	s := Scenario{
		ID:         ys.ID,
		Name:       ys.Name,
		Width:      ys.Size.W,
		Height:     ys.Size.H,
		Placements: make([]Placement, 0, len(ys.Tiles)),
		Metadata:   ys.Metadata,
	}
	for _, t := range ys.Tiles {
		s.Placements = append(s.Placements, Placement{TypeKey: t.Type, Pos: core.P(t.X, t.Y)})
	}
	if err := s.Validate(); err != nil {
		return Scenario{}, err
	}
	return s, nil
}

// Validate checks the layout without consulting a catalog.
func (s Scenario) Validate() error {
	var errs []error
	if s.ID == "" {
		errs = append(errs, errors.New("missing id"))
	}
	if s.Width <= 0 || s.Height <= 0 {
		errs = append(errs, fmt.Errorf("invalid size %dx%d", s.Width, s.Height))
	}

	seen := make(map[core.CellPos]bool)
	for i, p := range s.Placements {
		if p.TypeKey == "" {
			errs = append(errs, fmt.Errorf("tiles[%d]: missing type", i))
		}
		if p.Pos.X < 0 || p.Pos.Y < 0 || p.Pos.X >= s.Width || p.Pos.Y >= s.Height {
			errs = append(errs, fmt.Errorf("tiles[%d]: %v outside %dx%d", i, p.Pos, s.Width, s.Height))
		}
		if seen[p.Pos] {
			errs = append(errs, fmt.Errorf("tiles[%d]: %v already taken", i, p.Pos))
		}
		seen[p.Pos] = true
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidScenario, errors.Join(errs...))
	}
	return nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}
