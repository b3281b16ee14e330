package engine

import (
	"chess-engine/config"
	"chess-engine/position"
)

const (
	safetyMarginMs  = 50
	minMoveTimeMs   = 10
	hardSlackMs     = 50
	defaultMoveTogo = 20
)

// TimeBudget is the pair of soft/hard millisecond deadlines a search
// iteration obeys: soft stops the outer iterative-deepening loop from
// starting another depth, hard forces an immediate abort mid-search.
type TimeBudget struct {
	SoftMs int64
	HardMs int64
}

// computeTimeBudget translates limits into a TimeBudget for the side to
// move. A zero budget means "no time limit" (infinite search, or neither a
// clock nor an increment was supplied).
func computeTimeBudget(limits config.Limits, stm position.Color) TimeBudget {
	if limits.Infinite {
		return TimeBudget{}
	}

	if limits.MovetimeMs >= 0 {
		moveTime := limits.MovetimeMs
		if moveTime < minMoveTimeMs {
			moveTime = minMoveTimeMs
		}
		return TimeBudget{SoftMs: moveTime, HardMs: moveTime + hardSlackMs}
	}

	timeLeft := limits.BtimeMs
	increment := limits.BincMs
	if stm == position.White {
		timeLeft = limits.WtimeMs
		increment = limits.WincMs
	}

	haveClock := timeLeft >= 0
	haveIncrement := increment > 0

	if !haveClock && !haveIncrement {
		return TimeBudget{}
	}

	if !haveClock {
		alloc := increment / 2
		if alloc < minMoveTimeMs {
			alloc = minMoveTimeMs
		}
		return TimeBudget{SoftMs: alloc, HardMs: alloc + hardSlackMs}
	}

	divisor := limits.Movestogo
	if divisor <= 0 {
		divisor = defaultMoveTogo
	}
	if divisor < 1 {
		divisor = 1
	}

	baseTime := timeLeft / int64(divisor)
	if baseTime < 0 {
		baseTime = 0
	}
	incTime := increment / 2
	if incTime < 0 {
		incTime = 0
	}
	allocate := baseTime + incTime

	safetyMargin := timeLeft / 10
	if safetyMargin > safetyMarginMs {
		safetyMargin = safetyMarginMs
	}
	maxAllowed := timeLeft
	if timeLeft > safetyMargin {
		maxAllowed = timeLeft - safetyMargin
	}
	if allocate > maxAllowed {
		allocate = maxAllowed
	}
	if allocate < minMoveTimeMs {
		allocate = minMoveTimeMs
		if allocate > maxAllowed {
			allocate = maxAllowed
		}
	}
	allocate = clampInt64(allocate, 0, timeLeft)

	hard := allocate + hardSlackMs
	if hard > timeLeft {
		hard = timeLeft
	}
	if hard < allocate {
		hard = allocate
	}

	return TimeBudget{SoftMs: allocate, HardMs: hard}
}

func clampInt64(v, lo, hi int64) int64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
