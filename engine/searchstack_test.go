package engine

import "testing"

func TestSearchStackImprovingTracksTwoPlyTrend(t *testing.T) {
	var s searchStack
	s.prepareRoot()

	s.setStaticEval(0, 100)
	if s.isImproving(0) {
		t.Fatalf("root ply should not be improving with no history")
	}

	s.prepareChild(0, 1, 0, 0)
	s.setStaticEval(1, -50)

	s.prepareChild(1, 2, 0, 0)
	s.setStaticEval(2, 110)
	if !s.isImproving(2) {
		t.Fatalf("eval at ply 2 (110) did not drop from ply 0 (100) by more than the slack, expected improving")
	}

	s.prepareChild(2, 3, 0, 0)
	s.setStaticEval(3, -200)
	if s.isImproving(3) {
		t.Fatalf("eval at ply 3 (-200) dropped well past ply 1 (-50) minus slack, expected not improving")
	}
}

func TestSearchStackOutOfRangeIsNotImproving(t *testing.T) {
	var s searchStack
	s.prepareRoot()
	if s.isImproving(-1) || s.isImproving(maxPly) {
		t.Fatalf("out-of-range plies must report not improving")
	}
}

func TestSearchStackResetClearsFrames(t *testing.T) {
	var s searchStack
	s.prepareRoot()
	s.setStaticEval(5, 42)
	s.reset()
	if s.frame(5).hasStaticEval {
		t.Fatalf("reset should clear hasStaticEval")
	}
}
