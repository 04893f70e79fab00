package tui

import (
	"image/color"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/iburimskiy/weightdial/internal/config"
	"github.com/iburimskiy/weightdial/internal/scene"
)

// layers drawn in the terminal; the rest are too fine for character cells.
var terminalLayers = map[string]bool{
	"major":     true,
	"labels":    true,
	"indicator": true,
}

type cell struct {
	r     rune
	color color.RGBA
	label bool
}

// grid is a character raster of the dial in pixel space scaled by scale
// pixels per column.
type grid struct {
	cols, rows int
	scale      float64
	cells      [][]cell
}

func newGrid(cols, rows int, scale float64) *grid {
	g := &grid{cols: cols, rows: rows, scale: scale, cells: make([][]cell, rows)}
	for i := range g.cells {
		g.cells[i] = make([]cell, cols)
	}
	return g
}

// cellAt maps a pixel position to its cell.
func (g *grid) cellAt(x, y float64) (int, int) {
	return int(math.Floor(x / g.scale)), int(math.Floor(y / (g.scale * CellAspect)))
}

func (g *grid) inside(col, row int) bool {
	return col >= 0 && row >= 0 && col < g.cols && row < g.rows
}

func (g *grid) set(col, row int, c cell) {
	if g.inside(col, row) {
		g.cells[row][col] = c
	}
}

func (g *grid) draw(ps []scene.Primitive) {
	for _, p := range ps {
		if !terminalLayers[p.Layer] {
			continue
		}
		switch p.Kind {
		case scene.Line:
			mx, my := (p.P0.X+p.P1.X)/2, (p.P0.Y+p.P1.Y)/2
			col, row := g.cellAt(mx, my)
			r := tickRune(p.P1.X-p.P0.X, p.P1.Y-p.P0.Y)
			if p.Layer == "indicator" {
				r = '▼'
			}
			g.set(col, row, cell{r: r, color: p.Color})
		case scene.Text:
			g.label(p)
		}
	}
}

// label writes p centered on its cell unless it would overlap another label.
func (g *grid) label(p scene.Primitive) {
	col, row := g.cellAt(p.P0.X, p.P0.Y)
	runes := []rune(p.Text)
	start := col - len(runes)/2
	if !g.inside(start, row) || !g.inside(start+len(runes)-1, row) {
		return
	}
	for i := -1; i <= len(runes); i++ {
		if g.inside(start+i, row) && g.cells[row][start+i].label {
			return
		}
	}
	for i, r := range runes {
		g.cells[row][start+i] = cell{r: r, color: p.Color, label: true}
	}
}

func (g *grid) String() string {
	var b strings.Builder
	for i, row := range g.cells {
		for _, c := range row {
			if c.r == 0 {
				b.WriteByte(' ')
				continue
			}
			b.WriteString(lipgloss.NewStyle().Foreground(hex(c.color)).Render(string(c.r)))
		}
		if i < len(g.cells)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// tickRune picks the line character closest to the direction (dx, dy).
func tickRune(dx, dy float64) rune {
	deg := math.Mod(math.Atan2(-dy, dx)*180/math.Pi+180, 180)
	switch {
	case deg < 22.5 || deg >= 157.5:
		return '─'
	case deg < 67.5:
		return '╱'
	case deg < 112.5:
		return '│'
	default:
		return '╲'
	}
}

func hex(c color.RGBA) lipgloss.Color {
	return lipgloss.Color(config.Hex(c).String())
}
