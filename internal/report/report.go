// Package report renders pacing plans and clock schedules as text.
package report

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"time"

	"github.com/verte-zerg/chesspace/internal/model"
)

// Options controls schedule rendering.
type Options struct {
	Color bool
}

// RenderSummary prints the time control and the per-move budgets.
func RenderSummary(w io.Writer, tc model.TimeControl, plan model.Plan) error {
	header := fmt.Sprintf("timecontrol: %d+%d", tc.StartingMinutes, tc.IncrementSeconds)
	if tc.Lichess {
		header += " (lichess)"
	}
	if _, err := fmt.Fprintln(w, header); err != nil {
		return err
	}
	minutes, seconds := clockParts(plan.TotalTime)
	if _, err := fmt.Fprintf(w, "total time: %s:%02dmin\n", minutes, seconds); err != nil {
		return err
	}
	if !plan.HasOpening() {
		_, err := fmt.Fprintf(w, "time per move: %ss\n", FormatSeconds(plan.RemainingPerMove))
		return err
	}
	if _, err := fmt.Fprintf(w, "time per opening move: %ss (%d moves)\n", FormatSeconds(plan.OpeningPerMove), plan.OpeningMoves); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "time per remaining move: %ss\n", FormatSeconds(plan.RemainingPerMove))
	return err
}

// RenderSchedule prints one line per checkpoint: move number and clock reading.
func RenderSchedule(w io.Writer, schedule model.Schedule, opts Options) error {
	negative := newPalette(w, opts.Color).negative
	for _, cp := range schedule {
		minutes, seconds := clockParts(cp.Remaining)
		line := fmt.Sprintf("%2d: %2s:%02d", cp.Move, minutes, seconds)
		if opts.Color && overdrawn(cp.Remaining) {
			line = negative.Render(line)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// FormatClock renders d as minutes:seconds rounded to the nearest second.
func FormatClock(d time.Duration) string {
	minutes, seconds := clockParts(d)
	return fmt.Sprintf("%s:%02d", minutes, seconds)
}

// FormatSeconds renders d in seconds with one decimal place.
func FormatSeconds(d time.Duration) string {
	return strconv.FormatFloat(d.Seconds(), 'f', 1, 64)
}

func secondsToDuration(seconds float64) time.Duration {
	return time.Duration(math.Round(seconds * float64(time.Second)))
}

// overdrawn reports whether the displayed clock reading is below zero.
func overdrawn(d time.Duration) bool {
	return d.Round(time.Second) < 0
}

// clockParts splits d into a signed minutes string and the seconds remainder.
func clockParts(d time.Duration) (string, int) {
	total := int64(d.Round(time.Second) / time.Second)
	sign := ""
	if total < 0 {
		sign = "-"
		total = -total
	}
	return sign + strconv.FormatInt(total/60, 10), int(total % 60)
}
