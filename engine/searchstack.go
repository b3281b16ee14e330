package engine

import "chess-engine/position"

// maxPly bounds the search stack and the PV table; ply 128 is never reached
// in practice but the fixed array avoids a bounds check turning into a panic
// mid-search.
const maxPly = 128

// kImprovingSlack is the margin by which a static eval may fall short of two
// plies back and still count as "improving" for softer reductions and some
// pruning gates.
const kImprovingSlack = 30

// searchFrame is one ply's worth of search-stack bookkeeping: the move that
// led here, what it captured, and the static-eval trend used to decide
// whether the side to move is "improving".
type searchFrame struct {
	parentMove        position.Move
	captured          position.PieceType
	staticEval        int32
	previousStaticEval int32
	hasStaticEval      bool
	hasPreviousEval    bool
	improving          bool
}

// searchStack is a fixed-size, per-ply array of frames owned exclusively by
// one search; it is never shared across concurrent searches.
type searchStack struct {
	frames [maxPly]searchFrame
}

func (s *searchStack) reset() {
	s.frames = [maxPly]searchFrame{}
}

func (s *searchStack) frame(ply int) *searchFrame {
	return &s.frames[ply]
}

// prepareRoot resets every frame before a new iterative-deepening search.
func (s *searchStack) prepareRoot() {
	s.reset()
}

// prepareChild initialises the child ply's frame ahead of making a move,
// inheriting the grandparent's static eval as "previous" when available.
func (s *searchStack) prepareChild(parentPly, childPly int, move position.Move, captured position.PieceType) {
	f := &s.frames[childPly]
	*f = searchFrame{parentMove: move, captured: captured}
	if childPly >= 2 && s.frames[childPly-2].hasStaticEval {
		f.previousStaticEval = s.frames[childPly-2].staticEval
		f.hasPreviousEval = true
	}
}

// setStaticEval records ply's static evaluation and derives the improving
// flag: true when the eval has not dropped by more than kImprovingSlack
// relative to two plies back, or inherited from the parent ply when no such
// comparison point exists yet.
func (s *searchStack) setStaticEval(ply int, eval int32) {
	f := &s.frames[ply]
	f.staticEval = eval
	f.hasStaticEval = true
	if ply >= 2 && s.frames[ply-2].hasStaticEval {
		f.previousStaticEval = s.frames[ply-2].staticEval
		f.hasPreviousEval = true
	}
	if f.hasPreviousEval {
		f.improving = eval >= f.previousStaticEval-kImprovingSlack
	} else if ply > 0 {
		f.improving = s.frames[ply-1].improving
	} else {
		f.improving = false
	}
}

func (s *searchStack) isImproving(ply int) bool {
	if ply < 0 || ply >= maxPly {
		return false
	}
	return s.frames[ply].improving
}
