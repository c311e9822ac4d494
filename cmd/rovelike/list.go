package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/rovelike/internal/ability"
	"github.com/vovakirdan/rovelike/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all tile types",
	Long:  `Shows every tile type in the loaded tile library with its movement rules and ability.`,
	Args:  cobra.NoArgs,
	RunE:  runList,
}

var scenariosCmd = &cobra.Command{
	Use:   "scenarios",
	Short: "List available scenarios",
	Args:  cobra.NoArgs,
	RunE:  runScenarios,
}

func runList(cmd *cobra.Command, _ []string) error {
	e, err := newEnv()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	defs := e.catalog.List()
	if len(defs) == 0 {
		fmt.Fprintln(out, "No tile types defined.")
		return nil
	}

	rows := make([][]string, 0, len(defs))
	for _, d := range defs {
		rows = append(rows, []string{
			d.TypeKey,
			d.DisplayName,
			fmt.Sprint(d.Movement.MaxDistance),
			d.Movement.DirsLabel(),
			d.Movement.PassRule.String(),
			abilityLabel(d.Ability),
		})
	}

	fmt.Fprintln(out, catalogTable(rows, e.styled))
	return nil
}

func runScenarios(cmd *cobra.Command, _ []string) error {
	e, err := newEnv()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	scenarios, err := e.loader.LoadAll()
	if err != nil {
		return err
	}
	if len(scenarios) == 0 {
		fmt.Fprintf(out, "No scenarios found in %s.\n", e.loader.Root)
		return nil
	}

	rows := make([][]string, 0, len(scenarios))
	for _, s := range scenarios {
		rows = append(rows, []string{s.ID, s.Name, fmt.Sprintf("%dx%d", s.Width, s.Height), fmt.Sprint(len(s.Placements))})
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "Name", "Size", "Tiles").
		Rows(rows...)
	if e.styled {
		t = t.BorderStyle(borderStyle).StyleFunc(headerStyleFunc)
	}
	fmt.Fprintln(out, t.Render())
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'rovelike show <id>' to print a board.")
	return nil
}

func catalogTable(rows [][]string, styled bool) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Type", "Name", "Dist", "Dirs", "Pass", "Ability").
		Rows(rows...)
	if styled {
		t = t.BorderStyle(borderStyle).StyleFunc(headerStyleFunc)
	}
	return t.Render()
}

func headerStyleFunc(row, _ int) lipgloss.Style {
	if row == table.HeaderRow {
		return headerStyle
	}
	return cellStyle
}

func abilityLabel(a registry.AbilitySpec) string {
	switch a.Kind {
	case "", ability.KindNone:
		return "-"
	default:
		return fmt.Sprintf("%s (range %d, cooldown %d)", a.Kind, a.Range, a.Cooldown)
	}
}
