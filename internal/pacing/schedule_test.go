package pacing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/chesspace/internal/model"
)

func TestSimulateFlatEndsAtZero(t *testing.T) {
	tc := timeControl(90, 30, 40)
	plan, schedule, err := Run(tc)
	require.NoError(t, err)
	require.Len(t, schedule, 40)

	first := schedule[0]
	require.Equal(t, 1, first.Move)
	require.Equal(t, 5400*time.Second+30*time.Second-plan.RemainingPerMove, first.Remaining)
	require.Equal(t, plan.RemainingPerMove, first.Spent)
	require.False(t, first.Opening)
	require.Equal(t, time.Duration(0), schedule[len(schedule)-1].Remaining)
}

func TestSimulateLichessSkipsFirstIncrement(t *testing.T) {
	tc := timeControl(90, 30, 40)
	tc.Lichess = true
	plan, schedule, err := Run(tc)
	require.NoError(t, err)

	require.Equal(t, 5400*time.Second-plan.RemainingPerMove, schedule[0].Remaining)
	require.Equal(t, schedule[0].Remaining+30*time.Second-plan.RemainingPerMove, schedule[1].Remaining)
	require.InDelta(t, 0, schedule[len(schedule)-1].Remaining.Seconds(), 1e-6)
}

func TestSimulateDisplayInterval(t *testing.T) {
	for _, display := range []int{1, 3, 7, 40, 41} {
		tc := timeControl(15, 10, 40)
		tc.Display = display
		_, schedule, err := Run(tc)
		require.NoError(t, err)
		require.Len(t, schedule, 40/display)
		for i, cp := range schedule {
			require.Equal(t, (i+1)*display, cp.Move)
		}
	}
}

func TestSimulateOpeningPhase(t *testing.T) {
	tc := timeControl(15, 10, 40)
	tc.Opening = intPtr(10)
	plan, schedule, err := Run(tc)
	require.NoError(t, err)

	for _, cp := range schedule {
		if cp.Move <= 10 {
			require.True(t, cp.Opening, "move %d", cp.Move)
			require.Equal(t, plan.OpeningPerMove, cp.Spent)
		} else {
			require.False(t, cp.Opening, "move %d", cp.Move)
			require.Equal(t, plan.RemainingPerMove, cp.Spent)
		}
	}
	require.InDelta(t, 0, schedule[len(schedule)-1].Remaining.Seconds(), 1e-6)
}

func TestSimulateKeepsNegativeClock(t *testing.T) {
	tc := timeControl(1, 10, 3)
	tc.Opening = intPtr(1)
	tc.Percentage = intPtr(100)
	_, schedule, err := Run(tc)
	require.NoError(t, err)

	require.Equal(t, model.Schedule{
		{Move: 1, Remaining: -20 * time.Second, Spent: 90 * time.Second, Opening: true},
		{Move: 2, Remaining: -10 * time.Second, Spent: 0},
		{Move: 3, Remaining: 0, Spent: 0},
	}, schedule)
}

func TestRunIsDeterministic(t *testing.T) {
	tc := timeControl(3, 2, 60)
	tc.Opening = intPtr(15)
	tc.Display = 4
	planA, scheduleA, err := Run(tc)
	require.NoError(t, err)
	planB, scheduleB, err := Run(tc)
	require.NoError(t, err)
	require.Equal(t, planA, planB)
	require.Equal(t, scheduleA, scheduleB)
}

func TestRunRejectsBeforeSimulating(t *testing.T) {
	tc := timeControl(60, 0, 40)
	tc.Percentage = intPtr(50)
	_, schedule, err := Run(tc)
	require.ErrorIs(t, err, ErrInvalidConfig)
	require.Nil(t, schedule)
}
