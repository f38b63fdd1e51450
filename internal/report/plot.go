package report

import (
	"fmt"
	"io"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/verte-zerg/chesspace/internal/model"
)

const (
	defaultPlotHeight   = 8
	minPlotWidth        = 10
	axisSeparator       = " │ "
	terminalWidthBackup = 80
	curveTitle          = "Clock by move"
)

// PlotWidthFor computes a plot width that leaves room for axis labels of the
// given width within totalWidth.
func PlotWidthFor(totalWidth, labelWidth int) int {
	if totalWidth <= 0 {
		return minPlotWidth
	}
	plotWidth := totalWidth - labelWidth - utf8.RuneCountInString(axisSeparator)
	if plotWidth < minPlotWidth {
		plotWidth = minPlotWidth
	}
	return plotWidth
}

// RenderCurve draws the remaining clock across the displayed moves as a
// braille line plot. A width of zero fits the plot to the terminal.
func RenderCurve(w io.Writer, schedule model.Schedule, width, height int, opts Options) error {
	if len(schedule) == 0 {
		return nil
	}
	values := make([]float64, len(schedule))
	for i, cp := range schedule {
		values[i] = cp.Remaining.Seconds()
	}
	minVal, maxVal := valueRange(values)
	if math.Abs(maxVal-minVal) < 1e-9 {
		minVal--
		maxVal++
	}

	if height <= 0 {
		height = defaultPlotHeight
	}
	labels := axisLabels(height, minVal, maxVal)
	labelWidth := 0
	for _, label := range labels {
		if n := utf8.RuneCountInString(label); n > labelWidth {
			labelWidth = n
		}
	}
	if width <= 0 {
		width = PlotWidthFor(TerminalWidth(w, terminalWidthBackup), labelWidth)
	}
	if width < 1 {
		width = 1
	}

	cells := makeCells(height, width)
	dotRows := height * 4
	prevX, prevY := -1, -1
	for x, v := range resampleSeries(values, width) {
		px := x * 2
		py := valueToRow(v, minVal, maxVal, dotRows)
		if prevX >= 0 {
			drawLine(prevX, prevY, px, py, func(dx, dy int) {
				setBrailleDot(cells, dx, dy)
			})
		} else {
			setBrailleDot(cells, px, py)
		}
		prevX, prevY = px, py
	}

	colors := newPalette(w, opts.Color)
	if _, err := fmt.Fprintln(w, curveTitle); err != nil {
		return err
	}
	for y := 0; y < height; y++ {
		var row strings.Builder
		for x := 0; x < width; x++ {
			row.WriteRune(brailleFromMask(cells[y][x]))
		}
		line := row.String()
		if opts.Color {
			line = colors.curve.Render(line)
		}
		if _, err := fmt.Fprintf(w, "%*s%s%s\n", labelWidth, labels[y], axisSeparator, line); err != nil {
			return err
		}
	}
	first := fmt.Sprintf("move %d", schedule[0].Move)
	last := fmt.Sprintf("move %d", schedule[len(schedule)-1].Move)
	gap := width - utf8.RuneCountInString(first) - utf8.RuneCountInString(last)
	if gap < 1 {
		gap = 1
	}
	footer := strings.Repeat(" ", labelWidth+utf8.RuneCountInString(axisSeparator)) + first + strings.Repeat(" ", gap) + last
	if _, err := fmt.Fprintln(w, footer); err != nil {
		return err
	}
	return nil
}

func valueRange(values []float64) (float64, float64) {
	minVal := math.Inf(1)
	maxVal := math.Inf(-1)
	for _, v := range values {
		minVal = math.Min(minVal, v)
		maxVal = math.Max(maxVal, v)
	}
	return minVal, maxVal
}

func axisLabels(height int, minVal, maxVal float64) []string {
	labels := make([]string, height)
	labels[0] = FormatClock(secondsToDuration(maxVal))
	if height > 2 {
		labels[height/2] = FormatClock(secondsToDuration((minVal + maxVal) / 2))
	}
	if height > 1 {
		labels[height-1] = FormatClock(secondsToDuration(minVal))
	}
	return labels
}

func makeCells(height, width int) [][]uint8 {
	cells := make([][]uint8, height)
	for y := range cells {
		cells[y] = make([]uint8, width)
	}
	return cells
}

func resampleSeries(values []float64, width int) []float64 {
	if len(values) == 0 || width <= 0 {
		return nil
	}
	out := make([]float64, width)
	if len(values) == 1 || width == 1 {
		for i := range out {
			out[i] = values[0]
		}
		return out
	}
	for i := range out {
		pos := float64(i) * float64(len(values)-1) / float64(width-1)
		idx := int(math.Floor(pos))
		if idx >= len(values)-1 {
			out[i] = values[len(values)-1]
			continue
		}
		frac := pos - float64(idx)
		out[i] = values[idx]*(1-frac) + values[idx+1]*frac
	}
	return out
}

// valueToRow maps v onto dot rows, top row for maxVal.
func valueToRow(v, minVal, maxVal float64, rows int) int {
	if rows <= 1 {
		return 0
	}
	pos := (v - minVal) / (maxVal - minVal)
	row := int(math.Round((1 - pos) * float64(rows-1)))
	return min(max(row, 0), rows-1)
}

// drawLine plots the Bresenham line between two dot coordinates.
func drawLine(x0, y0, x1, y1 int, plot func(x, y int)) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := -1, -1
	if x0 < x1 {
		sx = 1
	}
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		plot(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func setBrailleDot(cells [][]uint8, x, y int) {
	cellY, cellX := y/4, x/2
	if x < 0 || y < 0 || cellY >= len(cells) || cellX >= len(cells[cellY]) {
		return
	}
	cells[cellY][cellX] |= brailleDots[y%4][x%2]
}

// brailleDots maps a dot position within a cell to its bit in U+2800.
var brailleDots = [4][2]uint8{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

func brailleFromMask(mask uint8) rune {
	return rune(0x2800 + int(mask))
}
