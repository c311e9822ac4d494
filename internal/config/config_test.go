package config

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/rovelike/internal/core"
)

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func TestEmbeddedDefaultsMatchBuiltins(t *testing.T) {
	// Isolate from any real user config
	t.Setenv("HOME", t.TempDir())

	lib, err := LoadTiles("", quietLogger())
	if err != nil {
		t.Fatalf("LoadTiles failed: %v", err)
	}

	embedded := lib.Definitions()
	builtin := DefaultTileLibrary().Definitions()
	if len(embedded) != len(builtin) {
		t.Fatalf("embedded has %d tiles, built-in has %d", len(embedded), len(builtin))
	}
	for i := range builtin {
		if embedded[i] != builtin[i] {
			t.Errorf("tile %d differs:\n embedded %+v\n built-in %+v", i, embedded[i], builtin[i])
		}
	}
}

func TestDefaultLibraryDesigns(t *testing.T) {
	cat, err := DefaultTileLibrary().Catalog()
	if err != nil {
		t.Fatalf("Catalog failed: %v", err)
	}

	tests := []struct {
		key   string
		rules core.MovementRules
	}{
		{"brain", core.NewMovementRules(10, true, false, core.CannotPassThrough)},
		{"coil", core.NewMovementRules(10, true, true, core.MustPassThrough)},
		{"gripper", core.NewMovementRules(1, true, true, core.CannotPassThrough)},
		{"motor", core.NewMovementRules(1, true, false, core.PushObstacles)},
		{"sensor", core.NewMovementRules(10, false, true, core.CanPassThrough)},
	}

	for _, tc := range tests {
		t.Run(tc.key, func(t *testing.T) {
			def, err := cat.Get(tc.key)
			if err != nil {
				t.Fatalf("Get failed: %v", err)
			}
			if def.Movement != tc.rules {
				t.Errorf("rules = %v, expected %v", def.Movement, tc.rules)
			}
		})
	}
}

func TestLoadTilesCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := `
tiles:
  - type_key: rover
    display_name: Rover
    movement:
      max_distance: 3
      orthogonal: true
      pass_rule: can_pass
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	lib, err := LoadTiles(path, quietLogger())
	if err != nil {
		t.Fatalf("LoadTiles failed: %v", err)
	}
	if len(lib.Tiles) != 1 {
		t.Fatalf("expected 1 tile, got %d", len(lib.Tiles))
	}

	def := lib.Tiles[0].Definition()
	expected := core.NewMovementRules(3, true, false, core.CanPassThrough)
	if def.TypeKey != "rover" || def.Movement != expected {
		t.Errorf("unexpected definition %+v", def)
	}
	if def.Ability.Kind != "" {
		t.Errorf("missing ability should leave kind empty, got %q", def.Ability.Kind)
	}
}

func TestLoadTilesUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	lib := TileLibrary{Tiles: []TileSpec{{TypeKey: "only", Movement: MovementSpec{MaxDistance: 2, Diagonal: true, PassRule: core.PushObstacles}}}}
	if err := SaveTiles(filepath.Join(home, ".rovelike", "configs", TilesFile), lib); err != nil {
		t.Fatalf("SaveTiles failed: %v", err)
	}

	loaded, err := LoadTiles("", quietLogger())
	if err != nil {
		t.Fatalf("LoadTiles failed: %v", err)
	}
	if len(loaded.Tiles) != 1 || loaded.Tiles[0].TypeKey != "only" {
		t.Fatalf("user config not picked up: %+v", loaded.Tiles)
	}
	if loaded.Tiles[0].Movement.PassRule != core.PushObstacles {
		t.Errorf("pass rule = %v, expected push", loaded.Tiles[0].Movement.PassRule)
	}
}

func TestLoadTilesErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadTiles(filepath.Join(dir, "missing.yaml"), quietLogger()); err == nil {
		t.Error("expected error for missing custom file")
	}

	bad := filepath.Join(dir, "bad.yaml")
	os.WriteFile(bad, []byte("tiles:\n  - type_key: x\n    movement:\n      pass_rule: hop\n"), 0o644)
	_, err := LoadTiles(bad, quietLogger())
	if err == nil || !strings.Contains(err.Error(), "hop") {
		t.Errorf("expected parse error mentioning the rule, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		lib     TileLibrary
		wantErr string
	}{
		{"valid", DefaultTileLibrary(), ""},
		{"missing key", TileLibrary{Tiles: []TileSpec{{}}}, "missing type_key"},
		{"duplicate key", TileLibrary{Tiles: []TileSpec{{TypeKey: "a"}, {TypeKey: "a"}}}, "duplicate type_key"},
		{"negative distance", TileLibrary{Tiles: []TileSpec{{TypeKey: "a", Movement: MovementSpec{MaxDistance: -1}}}}, "negative max_distance"},
		{"unknown ability", TileLibrary{Tiles: []TileSpec{{TypeKey: "a", Ability: AbilitySpec{Kind: "warp"}}}}, "unknown ability kind"},
		{"negative tuning", TileLibrary{Tiles: []TileSpec{{TypeKey: "a", Ability: AbilitySpec{Kind: "laser", Range: -1}}}}, "negative ability tuning"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.lib.Validate()
			if tc.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("expected error containing %q, got %v", tc.wantErr, err)
			}
			if _, catErr := tc.lib.Catalog(); catErr == nil {
				t.Error("Catalog should refuse an invalid library")
			}
		})
	}
}
