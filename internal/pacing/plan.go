// Package pacing derives per-move time budgets and simulates the game clock.
package pacing

import (
	"time"

	"github.com/verte-zerg/chesspace/internal/model"
)

// TotalTime returns the clock time available across the whole game.
// The lichess variant credits no increment on the first move.
func TotalTime(tc model.TimeControl) time.Duration {
	credited := tc.Moves
	if tc.Lichess {
		credited--
	}
	return tc.StartingTime() + tc.Increment()*time.Duration(credited)
}

// ResolvePolicy picks the split policy from the optional opening parameters.
func ResolvePolicy(tc model.TimeControl) (model.Policy, error) {
	switch {
	case tc.Opening != nil && tc.Percentage != nil:
		return model.PolicyPercentage, nil
	case tc.Opening != nil:
		return model.PolicySpeedRatio, nil
	case tc.Percentage != nil:
		return 0, configErr("requires an opening move count", "percentage")
	default:
		return model.PolicyFlat, nil
	}
}

// NewPlan validates tc and splits its total time into per-move budgets.
func NewPlan(tc model.TimeControl) (model.Plan, error) {
	if err := Validate(tc); err != nil {
		return model.Plan{}, err
	}
	policy, err := ResolvePolicy(tc)
	if err != nil {
		return model.Plan{}, err
	}

	total := TotalTime(tc)
	moves := time.Duration(tc.Moves)
	plan := model.Plan{Policy: policy, TotalTime: total}

	switch policy {
	case model.PolicyPercentage:
		opening := time.Duration(*tc.Opening)
		block := total * time.Duration(*tc.Percentage) / 100
		plan.OpeningMoves = *tc.Opening
		plan.OpeningPerMove = block / opening
		plan.RemainingPerMove = (total - block) / (moves - opening)
	case model.PolicySpeedRatio:
		// total = o*O + (M-O)*2o
		opening := time.Duration(*tc.Opening)
		plan.OpeningMoves = *tc.Opening
		plan.OpeningPerMove = total / (2*moves - opening)
		plan.RemainingPerMove = 2 * plan.OpeningPerMove
	default:
		plan.RemainingPerMove = total / moves
	}
	return plan, nil
}
