package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rgehrsitz/swrgo/internal/domain"
	"github.com/rgehrsitz/swrgo/internal/output"
	"github.com/rgehrsitz/swrgo/internal/tui/tuistyles"
)

const yAxisWidth = 8

type bandLine struct {
	name   string
	mark   rune
	color  lipgloss.Color
	points []float64
}

// BandChart plots the 10th, 50th and 90th percentile portfolio values by age
type BandChart struct {
	Title  string
	Bands  []domain.PercentileBand
	Width  int
	Height int
}

// NewBandChart creates a chart for the given bands
func NewBandChart(title string, bands []domain.PercentileBand) *BandChart {
	return &BandChart{
		Title:  title,
		Bands:  bands,
		Width:  64,
		Height: 14,
	}
}

// WithSize sets the chart dimensions
func (c *BandChart) WithSize(width, height int) *BandChart {
	c.Width = width
	c.Height = height
	return c
}

func (c *BandChart) lines() []bandLine {
	low := make([]float64, len(c.Bands))
	mid := make([]float64, len(c.Bands))
	high := make([]float64, len(c.Bands))
	for i, b := range c.Bands {
		low[i], mid[i], high[i] = b.P10, b.P50, b.P90
	}
	// Median is drawn last so it wins overlapping cells.
	return []bandLine{
		{"90th percentile", '▲', tuistyles.ColorBandHigh, high},
		{"10th percentile", '▼', tuistyles.ColorBandLow, low},
		{"Median", '●', tuistyles.ColorBandMedian, mid},
	}
}

// Render returns the styled chart
func (c *BandChart) Render() string {
	if len(c.Bands) == 0 {
		return tuistyles.InfoStyle.Render("No data to display")
	}

	var b strings.Builder
	if c.Title != "" {
		b.WriteString(tuistyles.TitleStyle.Render(c.Title))
		b.WriteString("\n\n")
	}

	lines := c.lines()
	maxVal := 0.0
	for _, l := range lines {
		for _, v := range l.points {
			maxVal = math.Max(maxVal, v)
		}
	}
	if maxVal == 0 {
		maxVal = 1
	}

	b.WriteString(c.renderGrid(lines, maxVal))
	b.WriteString(c.renderAgeAxis())
	b.WriteString("\n\n")
	b.WriteString(renderLegend(lines))
	return b.String()
}

func (c *BandChart) plotWidth() int {
	w := c.Width - yAxisWidth - 3
	if w < 2 {
		w = 2
	}
	return w
}

func (c *BandChart) renderGrid(lines []bandLine, maxVal float64) string {
	width, height := c.plotWidth(), c.Height
	if height < 2 {
		height = 2
	}

	grid := make([][]rune, height)
	colors := make([][]lipgloss.Color, height)
	for i := range grid {
		grid[i] = []rune(strings.Repeat(" ", width))
		colors[i] = make([]lipgloss.Color, width)
	}

	for _, l := range lines {
		prevX, prevY := -1, -1
		for i, v := range l.points {
			x := column(i, len(l.points), width)
			y := height - 1 - int(v/maxVal*float64(height-1))
			if prevX >= 0 {
				drawLine(grid, colors, prevX, prevY, x, y, l.color)
			}
			grid[y][x], colors[y][x] = l.mark, l.color
			prevX, prevY = x, y
		}
	}

	axis := lipgloss.NewStyle().Foreground(tuistyles.ColorMuted).Width(yAxisWidth).Align(lipgloss.Right)
	var out strings.Builder
	for row := range grid {
		label := ""
		if row == 0 || row == height-1 || row == height/2 {
			label = output.FormatCompact(maxVal * float64(height-1-row) / float64(height-1))
		}
		out.WriteString(axis.Render(label))
		out.WriteString(" │ ")
		for x, r := range grid[row] {
			if r == ' ' {
				out.WriteRune(r)
				continue
			}
			out.WriteString(lipgloss.NewStyle().Foreground(colors[row][x]).Render(string(r)))
		}
		out.WriteString("\n")
	}
	out.WriteString(strings.Repeat(" ", yAxisWidth))
	out.WriteString(" └")
	out.WriteString(strings.Repeat("─", width))
	out.WriteString("\n")
	return out.String()
}

// renderAgeAxis prints the first and last age under the plot edges
func (c *BandChart) renderAgeAxis() string {
	first := fmt.Sprintf("age %d", c.Bands[0].Age)
	last := fmt.Sprintf("%d", c.Bands[len(c.Bands)-1].Age)
	gap := c.plotWidth() - len(first) - len(last)
	if gap < 1 {
		gap = 1
	}
	style := lipgloss.NewStyle().Foreground(tuistyles.ColorMuted)
	return strings.Repeat(" ", yAxisWidth+3) + style.Render(first+strings.Repeat(" ", gap)+last)
}

func renderLegend(lines []bandLine) string {
	items := make([]string, 0, len(lines))
	for i := len(lines) - 1; i >= 0; i-- {
		l := lines[i]
		items = append(items, lipgloss.NewStyle().Foreground(l.color).Render(string(l.mark))+" "+l.name)
	}
	return tuistyles.SubtitleStyle.Render(strings.Join(items, " • "))
}

func column(i, n, width int) int {
	if n <= 1 {
		return 0
	}
	return int(float64(i) / float64(n-1) * float64(width-1))
}

// drawLine joins two plotted points using Bresenham's algorithm without
// overwriting cells that already hold a mark.
func drawLine(grid [][]rune, colors [][]lipgloss.Color, x0, y0, x1, y1 int, color lipgloss.Color) {
	dx, dy := abs(x1-x0), abs(y1-y0)
	sx, sy := -1, -1
	if x0 < x1 {
		sx = 1
	}
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy
	x, y := x0, y0
	for {
		if grid[y][x] == ' ' {
			grid[y][x], colors[y][x] = '·', color
		}
		if x == x1 && y == y1 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
