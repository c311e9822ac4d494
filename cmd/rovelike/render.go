package main

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/rovelike/internal/board"
	"github.com/vovakirdan/rovelike/internal/core"
	"github.com/vovakirdan/rovelike/internal/tile"
)

// mark highlights a cell in the grid dump.
type mark uint8

const (
	markNone mark = iota
	markOrigin
	markMove
	markPush
	markTarget
)

var (
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

// markStyles maps cell marks to lipgloss styles.
var markStyles = map[mark]lipgloss.Style{
	markNone:   lipgloss.NewStyle(),
	markOrigin: lipgloss.NewStyle().Bold(true).Reverse(true).Foreground(lipgloss.Color("11")),
	markMove:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	markPush:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("208")),
	markTarget: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13")),
}

// plainGlyphs stand in for styling when output is not a terminal.
var plainGlyphs = map[mark]rune{
	markMove:   '*',
	markPush:   '!',
	markTarget: 'x',
}

// gridView is everything needed to draw one board.
type gridView struct {
	board  board.Reader
	glyphs map[core.TileID]rune
	marks  map[core.CellPos]mark
	styled bool
}

// tileGlyphs uses the upper-cased first letter of each type key.
func tileGlyphs(tiles []*tile.Tile) map[core.TileID]rune {
	glyphs := make(map[core.TileID]rune, len(tiles))
	for _, t := range tiles {
		r := '?'
		for _, c := range t.TypeKey() {
			r = unicode.ToUpper(c)
			break
		}
		glyphs[t.ID()] = r
	}
	return glyphs
}

// renderGrid draws the board one row per line, cells separated by a space.
// Empty cells are '.', tiles their glyph.
func renderGrid(v gridView) string {
	var sb strings.Builder
	for y := range v.board.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := range v.board.Width() {
			if x > 0 {
				sb.WriteRune(' ')
			}
			pos := core.P(x, y)
			sb.WriteString(v.cell(pos))
		}
	}
	return sb.String()
}

func (v gridView) cell(pos core.CellPos) string {
	r := '.'
	if id, err := v.board.Get(pos); err == nil && id != core.NoTile {
		if g, ok := v.glyphs[id]; ok {
			r = g
		} else {
			r = '?'
		}
	}

	m := v.marks[pos]
	if v.styled {
		if m == markMove && r == '.' {
			r = '*'
		}
		return markStyles[m].Render(string(r))
	}
	if g, ok := plainGlyphs[m]; ok {
		r = g
	}
	return string(r)
}
