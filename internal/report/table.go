package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/chesspace/internal/model"
)

// RenderTable prints the schedule as aligned columns with the phase and
// budget spent on each displayed move.
func RenderTable(w io.Writer, schedule model.Schedule, opts Options) error {
	if len(schedule) == 0 {
		_, err := fmt.Fprintln(w, "No moves to display.")
		return err
	}
	headers := []string{"Move", "Clock", "Phase", "Budget"}
	rows := make([][]string, 0, len(schedule))
	for _, cp := range schedule {
		phase := "main"
		if cp.Opening {
			phase = "opening"
		}
		rows = append(rows, []string{
			strconv.Itoa(cp.Move),
			FormatClock(cp.Remaining),
			phase,
			FormatSeconds(cp.Spent) + "s",
		})
	}
	rightAlign := map[int]bool{0: true, 1: true, 3: true}
	lines := formatTable(headers, rows, rightAlign)

	colors := newPalette(w, opts.Color)
	for i, line := range lines {
		if opts.Color {
			switch {
			case i == 0:
				line = colors.muted.Render(line)
			case overdrawn(schedule[i-1].Remaining):
				line = colors.negative.Render(line)
			}
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func formatTable(headers []string, rows [][]string, rightAlignCols map[int]bool) []string {
	colCount := len(headers)
	for _, row := range rows {
		if len(row) > colCount {
			colCount = len(row)
		}
	}
	if colCount == 0 {
		return nil
	}

	widths := make([]int, colCount)
	for i, header := range headers {
		widths[i] = runewidth.StringWidth(header)
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	lines := make([]string, 0, len(rows)+1)
	if len(headers) > 0 {
		lines = append(lines, formatRow(headers, widths, rightAlignCols))
	}
	for _, row := range rows {
		lines = append(lines, formatRow(row, widths, rightAlignCols))
	}
	return lines
}

func formatRow(row []string, widths []int, rightAlignCols map[int]bool) string {
	cells := make([]string, len(widths))
	for i := range widths {
		cell := ""
		if i < len(row) {
			cell = row[i]
		}
		if rightAlignCols[i] {
			cells[i] = runewidth.FillLeft(cell, widths[i])
		} else {
			cells[i] = runewidth.FillRight(cell, widths[i])
		}
	}
	return strings.TrimRight(strings.Join(cells, "  "), " ")
}
