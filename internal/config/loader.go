package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

// TilesFile is the file name searched for in config directories.
const TilesFile = "tiles.yaml"

// LoadTiles loads the tile library.
// Search order: customPath -> ~/.rovelike/configs/tiles.yaml -> ./configs/tiles.yaml -> embedded default
// A nil logger uses the default logger.
func LoadTiles(customPath string, logger *log.Logger) (TileLibrary, error) {
	if logger == nil {
		logger = log.Default()
	}
	var lib TileLibrary

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return lib, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &lib); err != nil {
			return lib, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		logger.Debug("loaded tile library", "source", customPath, "tiles", len(lib.Tiles))
		return lib, nil
	}

	// Try user config directory, then local configs directory
	candidates := []string{userConfigPath(TilesFile), filepath.Join("configs", TilesFile)}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		var found TileLibrary
		if err := yaml.Unmarshal(data, &found); err != nil {
			logger.Warn("ignoring unparsable tile library", "path", path, "error", err)
			continue
		}
		logger.Debug("loaded tile library", "source", path, "tiles", len(found.Tiles))
		return found, nil
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultTilesYAML, &lib); err != nil {
		logger.Warn("embedded tile library unreadable, using built-in defaults", "error", err)
		return DefaultTileLibrary(), nil // Fallback to hardcoded if embed fails
	}
	logger.Debug("loaded tile library", "source", "embedded", "tiles", len(lib.Tiles))
	return lib, nil
}

// SaveTiles writes a library as YAML, creating parent directories.
func SaveTiles(path string, lib TileLibrary) error {
	data, err := yaml.Marshal(lib)
	if err != nil {
		return fmt.Errorf("failed to encode tile library: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("cannot create directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config %s: %w", path, err)
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".rovelike", "configs", filename)
}
