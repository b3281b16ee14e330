package engine

import "testing"

func TestCutStatisticsResetZeroesAllCounters(t *testing.T) {
	c := CutStatistics{
		TTCutoffs:          1,
		NullMoveCutoffs:    2,
		StaticNullCutoffs:  3,
		RazoringCutoffs:    4,
		FutilityPrunes:     5,
		LateMovePrunes:     6,
		BetaCutoffs:        7,
		QStandPatCutoffs:   8,
		QBetaCutoffs:       9,
		MultiCutPrunes:     10,
		SingularExtensions: 11,
	}
	c.reset()
	if c != (CutStatistics{}) {
		t.Fatalf("expected reset to zero every counter, got %+v", c)
	}
}

func TestCutStatisticsDumpDoesNotPanic(t *testing.T) {
	var c CutStatistics
	c.TTCutoffs = 3
	c.dump()
}
