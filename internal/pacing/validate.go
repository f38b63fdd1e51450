package pacing

import (
	"math"
	"time"

	"github.com/verte-zerg/chesspace/internal/model"
)

// maxTotalSeconds bounds the total game time so that percentage scaling
// (total * 100) still fits in a time.Duration.
const maxTotalSeconds = math.MaxInt64 / 100 / int64(time.Second)

// maxMoves keeps 2*moves and the simulation loop within range.
const maxMoves = math.MaxInt32

// Validate checks a time control before any budget is derived.
// An opening may cover every move unless a percentage is given, in which
// case it must leave at least one remaining move.
func Validate(tc model.TimeControl) error {
	if tc.StartingMinutes < 0 {
		return configErr("must be >= 0", "minutes")
	}
	if tc.IncrementSeconds < 0 {
		return configErr("must be >= 0", "increment")
	}
	if tc.Moves < 1 {
		return configErr("must be >= 1", "moves")
	}
	if tc.Display < 1 {
		return configErr("must be >= 1", "display")
	}
	if int64(tc.StartingMinutes) > maxTotalSeconds/60 {
		return configErr("too large to represent", "minutes")
	}
	if tc.Moves > maxMoves {
		return configErr("too large to represent", "moves")
	}
	incrementBudget := maxTotalSeconds - int64(tc.StartingMinutes)*60
	if int64(tc.IncrementSeconds) > incrementBudget/int64(tc.Moves) {
		return configErr("too large to represent", "increment", "moves")
	}
	if tc.Opening != nil {
		if *tc.Opening < 0 {
			return configErr("must be >= 0", "opening")
		}
		if *tc.Opening > tc.Moves {
			return configErr("must not exceed the number of moves", "opening")
		}
	}
	if tc.Percentage == nil {
		if tc.Opening != nil && 2*tc.Moves-*tc.Opening == 0 {
			return configErr("leaves no time to split", "opening", "moves")
		}
		return nil
	}

	if *tc.Percentage < 0 || *tc.Percentage > 100 {
		return configErr("must be between 0 and 100", "percentage")
	}
	if tc.Opening == nil {
		return configErr("requires an opening move count", "percentage")
	}
	if *tc.Opening == 0 {
		return configErr("opening must be > 0 when a percentage is given", "opening", "percentage")
	}
	if *tc.Opening >= tc.Moves {
		return configErr("opening must be fewer than moves when a percentage is given", "opening", "percentage")
	}
	return nil
}
