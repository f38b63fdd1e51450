package report

import (
	"bytes"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/verte-zerg/chesspace/internal/model"
	"github.com/verte-zerg/chesspace/internal/pacing"
)

func intPtr(v int) *int {
	return &v
}

func renderAll(t *testing.T, tc model.TimeControl) string {
	t.Helper()
	plan, schedule, err := pacing.Run(tc)
	if err != nil {
		t.Fatalf("pacing.Run failed: %v", err)
	}
	var buf bytes.Buffer
	if err := RenderSummary(&buf, tc, plan); err != nil {
		t.Fatalf("RenderSummary failed: %v", err)
	}
	if err := RenderSchedule(&buf, schedule, Options{}); err != nil {
		t.Fatalf("RenderSchedule failed: %v", err)
	}
	return buf.String()
}

func TestRenderFlatPlan(t *testing.T) {
	tc := model.TimeControl{StartingMinutes: 90, IncrementSeconds: 30, Moves: 40, Display: 10}
	want := strings.Join([]string{
		"timecontrol: 90+30",
		"total time: 110:00min",
		"time per move: 165.0s",
		"10: 67:30",
		"20: 45:00",
		"30: 22:30",
		"40:  0:00",
	}, "\n") + "\n"
	if got := renderAll(t, tc); got != want {
		t.Fatalf("unexpected output:\n%s", got)
	}
}

func TestRenderLichessHeader(t *testing.T) {
	tc := model.TimeControl{StartingMinutes: 90, IncrementSeconds: 30, Moves: 40, Display: 40, Lichess: true}
	out := renderAll(t, tc)
	if !strings.HasPrefix(out, "timecontrol: 90+30 (lichess)\ntotal time: 109:30min\n") {
		t.Fatalf("unexpected header:\n%s", out)
	}
}

func TestRenderSpeedRatioPlan(t *testing.T) {
	tc := model.TimeControl{StartingMinutes: 15, IncrementSeconds: 10, Moves: 40, Display: 20, Opening: intPtr(10)}
	want := strings.Join([]string{
		"timecontrol: 15+10",
		"total time: 21:40min",
		"time per opening move: 18.6s (10 moves)",
		"time per remaining move: 37.1s",
		"20:  9:03",
		"40:  0:00",
	}, "\n") + "\n"
	if got := renderAll(t, tc); got != want {
		t.Fatalf("unexpected output:\n%s", got)
	}
}

func TestRenderPercentagePlan(t *testing.T) {
	tc := model.TimeControl{
		StartingMinutes: 60,
		Moves:           40,
		Display:         10,
		Opening:         intPtr(10),
		Percentage:      intPtr(50),
	}
	want := strings.Join([]string{
		"timecontrol: 60+0",
		"total time: 60:00min",
		"time per opening move: 180.0s (10 moves)",
		"time per remaining move: 60.0s",
		"10: 30:00",
		"20: 20:00",
		"30: 10:00",
		"40:  0:00",
	}, "\n") + "\n"
	if got := renderAll(t, tc); got != want {
		t.Fatalf("unexpected output:\n%s", got)
	}
}

func TestRenderScheduleShowsNegativeClock(t *testing.T) {
	schedule := model.Schedule{
		{Move: 1, Remaining: -20 * time.Second},
		{Move: 2, Remaining: -10*time.Minute - 5*time.Second},
	}
	var buf bytes.Buffer
	if err := RenderSchedule(&buf, schedule, Options{}); err != nil {
		t.Fatalf("RenderSchedule failed: %v", err)
	}
	want := " 1: -0:20\n 2: -10:05\n"
	if buf.String() != want {
		t.Fatalf("expected %q, got %q", want, buf.String())
	}
}

func TestRenderZeroOpeningUsesFlatHeader(t *testing.T) {
	tc := model.TimeControl{StartingMinutes: 90, IncrementSeconds: 30, Moves: 40, Display: 20, Opening: intPtr(0)}
	want := strings.Join([]string{
		"timecontrol: 90+30",
		"total time: 110:00min",
		"time per move: 165.0s",
		"20: 45:00",
		"40:  0:00",
	}, "\n") + "\n"
	if got := renderAll(t, tc); got != want {
		t.Fatalf("unexpected output:\n%s", got)
	}
}

func TestRenderIsIdempotent(t *testing.T) {
	tc := model.TimeControl{StartingMinutes: 3, IncrementSeconds: 2, Moves: 60, Display: 3, Opening: intPtr(12)}
	if renderAll(t, tc) != renderAll(t, tc) {
		t.Fatalf("expected identical output across runs")
	}
}

func TestFormatClock(t *testing.T) {
	cases := []struct {
		in   time.Duration
		want string
	}{
		{0, "0:00"},
		{59 * time.Second, "0:59"},
		{119*time.Second + 600*time.Millisecond, "2:00"},
		{110 * time.Minute, "110:00"},
		{-90 * time.Second, "-1:30"},
		{-400 * time.Millisecond, "0:00"},
		{time.Duration(math.MinInt64), "-153722867:16"},
	}
	for _, c := range cases {
		if got := FormatClock(c.in); got != c.want {
			t.Fatalf("FormatClock(%v): expected %q, got %q", c.in, c.want, got)
		}
	}
}

func TestFormatSeconds(t *testing.T) {
	if got := FormatSeconds(18571428571 * time.Nanosecond); got != "18.6" {
		t.Fatalf("expected 18.6, got %q", got)
	}
	if got := FormatSeconds(0); got != "0.0" {
		t.Fatalf("expected 0.0, got %q", got)
	}
}

func TestShouldUseColorHonorsNoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	if ShouldUseColor(&bytes.Buffer{}, true) {
		t.Fatalf("expected NO_COLOR to disable forced color")
	}
	t.Setenv("NO_COLOR", "")
	if !ShouldUseColor(&bytes.Buffer{}, true) {
		t.Fatalf("expected forced color")
	}
	if ShouldUseColor(&bytes.Buffer{}, false) {
		t.Fatalf("expected no color for a non-terminal writer")
	}
}
