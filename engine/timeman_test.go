package engine

import (
	"testing"

	"chess-engine/config"
	"chess-engine/position"
)

func TestComputeTimeBudgetInfiniteIsUnbounded(t *testing.T) {
	limits := config.Default()
	limits.Infinite = true
	budget := computeTimeBudget(limits, position.White)
	if budget.SoftMs != 0 || budget.HardMs != 0 {
		t.Fatalf("expected a zero budget for infinite search, got %+v", budget)
	}
}

func TestComputeTimeBudgetNoClockIsUnbounded(t *testing.T) {
	limits := config.Default()
	budget := computeTimeBudget(limits, position.White)
	if budget.SoftMs != 0 || budget.HardMs != 0 {
		t.Fatalf("expected a zero budget with no clock or movetime set, got %+v", budget)
	}
}

func TestComputeTimeBudgetMovetimeHonoursFloor(t *testing.T) {
	limits := config.Default()
	limits.MovetimeMs = 1
	budget := computeTimeBudget(limits, position.White)
	if budget.SoftMs != minMoveTimeMs {
		t.Fatalf("expected movetime to be floored to %d, got %d", minMoveTimeMs, budget.SoftMs)
	}
	if budget.HardMs != budget.SoftMs+hardSlackMs {
		t.Fatalf("expected hard deadline to add slack, got soft=%d hard=%d", budget.SoftMs, budget.HardMs)
	}
}

func TestComputeTimeBudgetSplitsClockByMovesToGo(t *testing.T) {
	limits := config.Default()
	limits.WtimeMs = 20000
	limits.WincMs = 0
	limits.Movestogo = 20
	budget := computeTimeBudget(limits, position.White)
	if budget.SoftMs <= 0 || budget.SoftMs >= limits.WtimeMs {
		t.Fatalf("expected a soft budget between 0 and the full clock, got %d", budget.SoftMs)
	}
	if budget.HardMs < budget.SoftMs {
		t.Fatalf("hard deadline must not be before soft, got soft=%d hard=%d", budget.SoftMs, budget.HardMs)
	}
	if budget.HardMs > limits.WtimeMs {
		t.Fatalf("hard deadline must never exceed the clock, got %d > %d", budget.HardMs, limits.WtimeMs)
	}
}

func TestComputeTimeBudgetNeverExceedsRemainingClock(t *testing.T) {
	limits := config.Default()
	limits.WtimeMs = 100
	limits.WincMs = -1
	limits.Movestogo = 1
	budget := computeTimeBudget(limits, position.White)
	if budget.HardMs > limits.WtimeMs {
		t.Fatalf("hard deadline %d exceeds remaining clock %d", budget.HardMs, limits.WtimeMs)
	}
}

func TestComputeTimeBudgetUsesBlackClockForBlack(t *testing.T) {
	limits := config.Default()
	limits.WtimeMs = 1000
	limits.BtimeMs = 5000
	limits.Movestogo = 10
	white := computeTimeBudget(limits, position.White)
	black := computeTimeBudget(limits, position.Black)
	if black.SoftMs <= white.SoftMs {
		t.Fatalf("expected Black's larger clock to produce a larger budget: white=%d black=%d", white.SoftMs, black.SoftMs)
	}
}
