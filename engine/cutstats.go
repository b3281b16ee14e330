package engine

import "chess-engine/enginelog"

// CutStatistics collects per-mechanism pruning/cutoff counts for one search
// call. Adapted from the teacher's package-level cutStats/dumpCutStats into
// an instance field on Searcher, since a Searcher must not share mutable
// search state across concurrent callers.
type CutStatistics struct {
	TTCutoffs          uint64
	NullMoveCutoffs    uint64
	StaticNullCutoffs  uint64
	RazoringCutoffs    uint64
	FutilityPrunes     uint64
	LateMovePrunes     uint64
	BetaCutoffs        uint64
	QStandPatCutoffs   uint64
	QBetaCutoffs       uint64
	MultiCutPrunes     uint64
	SingularExtensions uint64
}

func (c *CutStatistics) reset() {
	*c = CutStatistics{}
}

func (c *CutStatistics) dump() {
	enginelog.Logger.Debug().
		Uint64("tt", c.TTCutoffs).
		Uint64("null_move", c.NullMoveCutoffs).
		Uint64("static_null", c.StaticNullCutoffs).
		Uint64("razoring", c.RazoringCutoffs).
		Uint64("futility", c.FutilityPrunes).
		Uint64("late_move", c.LateMovePrunes).
		Uint64("beta", c.BetaCutoffs).
		Uint64("qstandpat", c.QStandPatCutoffs).
		Uint64("qbeta", c.QBetaCutoffs).
		Uint64("multicut", c.MultiCutPrunes).
		Uint64("singular_ext", c.SingularExtensions).
		Msg("cut statistics")
}
