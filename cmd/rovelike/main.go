// rovelike inspects the tile rules engine from the terminal.
//
// Usage:
//
//	rovelike list                          - List tile types in the catalog
//	rovelike scenarios                     - List available scenarios
//	rovelike show <scenario>               - Print a scenario board
//	rovelike moves <scenario> --x N --y N  - Print the move options of a tile
//	rovelike abilities <scenario> --x --y  - Print the ability options of a tile
//
// Global flags:
//
//	--tiles <path>      - Tile library YAML (default: search order, then embedded)
//	--scenarios <dir>   - Scenario directory (default: embedded samples)
//	--verbose           - Debug logging on stderr
//	--no-color          - Disable styling
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/rovelike/internal/config"
	"github.com/vovakirdan/rovelike/internal/match"
	"github.com/vovakirdan/rovelike/internal/registry"
	"github.com/vovakirdan/rovelike/internal/scenario"
	"github.com/vovakirdan/rovelike/internal/tile"
)

var (
	// Global flags
	flagTiles     string
	flagScenarios string
	flagVerbose   bool
	flagNoColor   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "rovelike",
	Short: "Rovelike - inspect tile movement and ability rules",
	Long: `Rovelike is a diagnostic tool for the tile rules engine. It loads a
tile library and scenario boards and prints what each tile may do.

Available commands:
  list       - Show the tile catalog
  scenarios  - Show available scenarios
  show       - Print a scenario board
  moves      - Print the move options of a tile
  abilities  - Print the ability options of a tile

Examples:
  rovelike list
  rovelike show s01
  rovelike moves s01 --x 1 --y 3
  rovelike moves s01 --x 3 --y 3 --pass can_pass --diag
  rovelike abilities s01 --x 3 --y 6`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagTiles, "tiles", "", "Path to a tile library YAML file")
	rootCmd.PersistentFlags().StringVar(&flagScenarios, "scenarios", "", "Directory with scenario YAML files (default: embedded samples)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable styled output")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(scenariosCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(movesCmd)
	rootCmd.AddCommand(abilitiesCmd)
}

// env is what every command needs, built from the global flags.
type env struct {
	logger  *log.Logger
	catalog *registry.Catalog
	loader  *scenario.Loader
	styled  bool
}

func newEnv() (*env, error) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "rovelike",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}

	lib, err := config.LoadTiles(flagTiles, logger)
	if err != nil {
		return nil, err
	}
	cat, err := lib.Catalog()
	if err != nil {
		return nil, fmt.Errorf("invalid tile library: %w", err)
	}

	loader := scenario.Samples(logger)
	if flagScenarios != "" {
		loader = scenario.NewLoader(flagScenarios, logger)
	}

	return &env{
		logger:  logger,
		catalog: cat,
		loader:  loader,
		styled:  !flagNoColor && term.IsTerminal(int(os.Stdout.Fd())),
	}, nil
}

// buildMatch loads a scenario and places its tiles.
func (e *env) buildMatch(id string) (*scenario.Scenario, *match.Match, error) {
	s, err := e.loader.LoadByID(id)
	if err != nil {
		return nil, nil, err
	}
	m, err := s.Build(tile.NewFactory(), e.catalog, e.logger)
	if err != nil {
		return nil, nil, err
	}
	return &s, m, nil
}
