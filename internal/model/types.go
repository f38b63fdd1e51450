// Package model defines shared data structures.
package model

import "time"

// TimeControl defines the clock settings and pacing options for one game.
type TimeControl struct {
	StartingMinutes  int
	IncrementSeconds int
	Moves            int
	Lichess          bool
	Display          int
	Opening          *int
	Percentage       *int
}

// StartingTime returns the initial clock allocation.
func (tc TimeControl) StartingTime() time.Duration {
	return time.Duration(tc.StartingMinutes) * time.Minute
}

// Increment returns the time credited after a move.
func (tc TimeControl) Increment() time.Duration {
	return time.Duration(tc.IncrementSeconds) * time.Second
}

// Policy selects how total time is split between opening and remaining moves.
type Policy int

const (
	// PolicyFlat spends the same budget on every move.
	PolicyFlat Policy = iota
	// PolicySpeedRatio plays opening moves twice as fast as the rest.
	PolicySpeedRatio
	// PolicyPercentage reserves a fixed share of total time for the opening.
	PolicyPercentage
)

func (p Policy) String() string {
	switch p {
	case PolicyFlat:
		return "flat"
	case PolicySpeedRatio:
		return "speed-ratio"
	case PolicyPercentage:
		return "percentage"
	default:
		return "unknown"
	}
}

// Plan holds the per-move budgets derived from a TimeControl.
type Plan struct {
	Policy           Policy
	TotalTime        time.Duration
	OpeningPerMove   time.Duration
	RemainingPerMove time.Duration
	OpeningMoves     int
}

// HasOpening reports whether the plan budgets an opening phase separately.
func (p Plan) HasOpening() bool {
	return p.OpeningMoves > 0
}

// Checkpoint is the clock reading after a move.
type Checkpoint struct {
	Move      int
	Remaining time.Duration
	Spent     time.Duration
	Opening   bool
}

// Schedule lists the displayed checkpoints in move order.
type Schedule []Checkpoint
