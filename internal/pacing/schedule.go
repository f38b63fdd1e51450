package pacing

import (
	"time"

	"github.com/verte-zerg/chesspace/internal/model"
)

// Simulate walks every move of the game, crediting increments and spending the
// planned budget, and records the clock on each displayed move.
// The clock is not clamped: a negative reading means the time control cannot
// sustain the plan.
func Simulate(tc model.TimeControl, plan model.Plan) model.Schedule {
	display := tc.Display
	if display < 1 {
		display = 1
	}
	schedule := make(model.Schedule, 0, tc.Moves/display)
	remaining := tc.StartingTime()
	for move := 1; move <= tc.Moves; move++ {
		var cp model.Checkpoint
		remaining, cp = step(tc, plan, move, remaining)
		if move%display == 0 {
			schedule = append(schedule, cp)
		}
	}
	return schedule
}

func step(tc model.TimeControl, plan model.Plan, move int, remaining time.Duration) (time.Duration, model.Checkpoint) {
	if !tc.Lichess || move != 1 {
		remaining += tc.Increment()
	}
	opening := move <= plan.OpeningMoves
	spent := plan.RemainingPerMove
	if opening {
		spent = plan.OpeningPerMove
	}
	remaining -= spent
	return remaining, model.Checkpoint{
		Move:      move,
		Remaining: remaining,
		Spent:     spent,
		Opening:   opening,
	}
}

// Run derives the plan for tc and simulates its schedule.
func Run(tc model.TimeControl) (model.Plan, model.Schedule, error) {
	plan, err := NewPlan(tc)
	if err != nil {
		return model.Plan{}, nil, err
	}
	return plan, Simulate(tc, plan), nil
}
