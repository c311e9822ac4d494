package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/rovelike/internal/core"
	"github.com/vovakirdan/rovelike/internal/match"
	"github.com/vovakirdan/rovelike/internal/tile"
)

var (
	flagX    int
	flagY    int
	flagDist int
	flagOrth bool
	flagDiag bool
	flagPass string
)

var showCmd = &cobra.Command{
	Use:   "show <scenario>",
	Short: "Print a scenario board",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

var movesCmd = &cobra.Command{
	Use:   "moves <scenario>",
	Short: "Print the move options of a tile",
	Long: `Print the board with the move options of the tile at --x/--y marked.

Any of --dist, --orth, --diag or --pass builds a one-off rule override
starting from the tile's own rules. The tile itself is not changed.

Examples:
  rovelike moves s01 --x 1 --y 3
  rovelike moves s02 --x 0 --y 1 --pass cannot_pass`,
	Args: cobra.ExactArgs(1),
	RunE: runMoves,
}

var abilitiesCmd = &cobra.Command{
	Use:   "abilities <scenario>",
	Short: "Print the ability options of a tile",
	Args:  cobra.ExactArgs(1),
	RunE:  runAbilities,
}

func init() {
	for _, c := range []*cobra.Command{movesCmd, abilitiesCmd} {
		c.Flags().IntVar(&flagX, "x", 0, "Column of the tile")
		c.Flags().IntVar(&flagY, "y", 0, "Row of the tile")
		_ = c.MarkFlagRequired("x")
		_ = c.MarkFlagRequired("y")
	}
	movesCmd.Flags().IntVar(&flagDist, "dist", 0, "Override max distance")
	movesCmd.Flags().BoolVar(&flagOrth, "orth", false, "Override orthogonal movement")
	movesCmd.Flags().BoolVar(&flagDiag, "diag", false, "Override diagonal movement")
	movesCmd.Flags().StringVar(&flagPass, "pass", "", "Override pass rule (cannot_pass, can_pass, must_pass, push)")
}

func runShow(cmd *cobra.Command, args []string) error {
	e, err := newEnv()
	if err != nil {
		return err
	}
	s, m, err := e.buildMatch(args[0])
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "%s - %s (%dx%d)\n\n", s.ID, s.Name, s.Width, s.Height)
	fmt.Fprintln(out, renderGrid(gridView{board: m.Board(), glyphs: tileGlyphs(m.Tiles()), styled: e.styled}))
	fmt.Fprintln(out)
	printRoster(out, m)
	return nil
}

func runMoves(cmd *cobra.Command, args []string) error {
	e, err := newEnv()
	if err != nil {
		return err
	}
	_, m, err := e.buildMatch(args[0])
	if err != nil {
		return err
	}
	t, err := tileAt(m, core.P(flagX, flagY))
	if err != nil {
		return err
	}

	override, err := overrideFromFlags(cmd, t.Movement().Rules())
	if err != nil {
		return err
	}
	options, err := m.Moves(t.ID(), override)
	if err != nil {
		return err
	}

	marks := map[core.CellPos]mark{core.P(flagX, flagY): markOrigin}
	for _, o := range options {
		if o.IsPush() {
			marks[o.Destination] = markPush
		} else {
			marks[o.Destination] = markMove
		}
	}

	out := cmd.OutOrStdout()
	rules := t.Movement().Rules()
	if override != nil {
		rules = *override
	}
	fmt.Fprintf(out, "#%d %s at %v: %v", t.ID(), t.DisplayName(), core.P(flagX, flagY), rules)
	if override != nil {
		fmt.Fprint(out, " (override)")
	}
	fmt.Fprint(out, "\n\n")
	fmt.Fprintln(out, renderGrid(gridView{board: m.Board(), glyphs: tileGlyphs(m.Tiles()), marks: marks, styled: e.styled}))
	fmt.Fprintln(out)

	if len(options) == 0 {
		fmt.Fprintln(out, "No moves.")
		return nil
	}
	fmt.Fprintf(out, "%d moves:\n", len(options))
	for _, o := range options {
		fmt.Fprintf(out, "  %v\n", o)
	}
	return nil
}

func runAbilities(cmd *cobra.Command, args []string) error {
	e, err := newEnv()
	if err != nil {
		return err
	}
	_, m, err := e.buildMatch(args[0])
	if err != nil {
		return err
	}
	t, err := tileAt(m, core.P(flagX, flagY))
	if err != nil {
		return err
	}
	options, err := m.AbilityOptions(t.ID())
	if err != nil {
		return err
	}

	marks := map[core.CellPos]mark{core.P(flagX, flagY): markOrigin}
	for _, o := range options {
		for _, target := range o.Targets {
			marks[target] = markTarget
		}
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "#%d %s at %v, ability available: %t\n\n", t.ID(), t.DisplayName(), core.P(flagX, flagY), t.AbilityAvailable())
	fmt.Fprintln(out, renderGrid(gridView{board: m.Board(), glyphs: tileGlyphs(m.Tiles()), marks: marks, styled: e.styled}))
	fmt.Fprintln(out)

	if len(options) == 0 {
		fmt.Fprintln(out, "No ability options.")
		return nil
	}
	fmt.Fprintf(out, "%d ability options:\n", len(options))
	for _, o := range options {
		fmt.Fprintf(out, "  %v\n", o)
	}
	return nil
}

func tileAt(m *match.Match, pos core.CellPos) (*tile.Tile, error) {
	t, err := m.TileAt(pos)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, fmt.Errorf("no tile at %v", pos)
	}
	return t, nil
}

// overrideFromFlags returns nil unless an override flag was given.
func overrideFromFlags(cmd *cobra.Command, base core.MovementRules) (*core.MovementRules, error) {
	flags := cmd.Flags()
	if !flags.Changed("dist") && !flags.Changed("orth") && !flags.Changed("diag") && !flags.Changed("pass") {
		return nil, nil
	}

	rules := base
	if flags.Changed("dist") {
		rules.MaxDistance = flagDist
	}
	if flags.Changed("orth") {
		rules.AllowOrthogonal = flagOrth
	}
	if flags.Changed("diag") {
		rules.AllowDiagonal = flagDiag
	}
	if flags.Changed("pass") {
		rule, ok := core.ParseObstaclePassRule(flagPass)
		if !ok {
			return nil, fmt.Errorf("unknown pass rule %q", flagPass)
		}
		rules.PassRule = rule
	}
	return &rules, nil
}

func printRoster(out io.Writer, m *match.Match) {
	for _, t := range m.Tiles() {
		pos, _ := m.Position(t.ID())
		fmt.Fprintf(out, "  #%-3d %-10s %-8v %v\n", t.ID(), t.DisplayName(), pos, t.Movement().Rules())
	}
}
