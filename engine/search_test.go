package engine

import (
	"strings"
	"testing"

	"chess-engine/config"
	"chess-engine/enginelog"
	"chess-engine/position"
)

func TestSearchFindsWinningQueenTrade(t *testing.T) {
	p, err := position.FromFEN("4k3/8/8/4q3/4Q3/8/8/4K3 w - - 0 1", true)
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}
	limits := config.Default()
	limits.Depth = 1
	limits.TTSizeMB = 1

	s := NewSearcher(limits)
	result := s.Search(p, limits, nil, nil)

	if result.BestMove.From() != position.Square(28) || result.BestMove.To() != position.Square(36) {
		t.Fatalf("expected Qxe5 (e4e5), got %s", result.BestMove.UCI())
	}
	if result.Score <= 0 {
		t.Fatalf("expected a positive score after winning the queen, got %d", result.Score)
	}
}

func TestSearchFindsWinningPromotionCapture(t *testing.T) {
	p, err := position.FromFEN("4k2r/6P1/8/8/8/8/8/4K3 w - - 0 1", true)
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}
	limits := config.Default()
	limits.Depth = 2
	limits.TTSizeMB = 1

	s := NewSearcher(limits)
	result := s.Search(p, limits, nil, nil)

	if !result.BestMove.IsPromotion() {
		t.Fatalf("expected the best move to be a promotion, got %s", result.BestMove.UCI())
	}
	if result.Score <= 0 {
		t.Fatalf("expected a positive score for the winning promotion, got %d", result.Score)
	}
}

func TestSearchReportsIterativeDeepeningInfo(t *testing.T) {
	p, err := position.FromFEN(position.StartFEN, true)
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}
	limits := config.Default()
	limits.Depth = 3
	limits.TTSizeMB = 1

	var depths []int
	s := NewSearcher(limits)
	s.Search(p, limits, func(info Info) {
		depths = append(depths, info.Depth)
	}, nil)

	if len(depths) == 0 {
		t.Fatalf("expected at least one reported iteration")
	}
	for i, d := range depths {
		if d != i+1 {
			t.Fatalf("expected iterations to report depth 1..N in order, got %v", depths)
		}
	}
}

func TestSearchMultiPVRanksDistinctRootMoves(t *testing.T) {
	p, err := position.FromFEN(position.StartFEN, true)
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}
	limits := config.Default()
	limits.Depth = 2
	limits.MultiPV = 3
	limits.TTSizeMB = 1

	var ranks []int
	var moves []position.Move
	s := NewSearcher(limits)
	s.Search(p, limits, func(info Info) {
		if info.Depth == int(limits.Depth) {
			ranks = append(ranks, info.MultiPV)
			moves = append(moves, info.PV.GetPVMove())
		}
	}, nil)

	if len(ranks) != 3 {
		t.Fatalf("expected 3 reported MultiPV lines at the final depth, got %d", len(ranks))
	}
	seen := map[position.Move]bool{}
	for _, m := range moves {
		if seen[m] {
			t.Fatalf("expected distinct root moves across MultiPV lines, got duplicate %s", m.UCI())
		}
		seen[m] = true
	}
}

func TestSingularExtensionDisabledNeverIncrementsCounter(t *testing.T) {
	p, err := position.FromFEN("8/8/8/4k3/8/8/4Q3/4K3 w - - 0 1", true)
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}
	limits := config.Default()
	limits.Depth = 10
	limits.TTSizeMB = 4
	limits.EnableSingularExtension = false

	s := NewSearcher(limits)
	s.Search(p, limits, nil, nil)

	if s.cutStats.SingularExtensions != 0 {
		t.Fatalf("expected no singular extensions with the feature disabled, got %d", s.cutStats.SingularExtensions)
	}
}

func TestDeepSearchExercisesSingularAndNullVerificationPaths(t *testing.T) {
	p, err := position.FromFEN("8/8/8/4k3/8/8/4Q3/4K3 w - - 0 1", true)
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}
	limits := config.Default()
	limits.Depth = 10
	limits.TTSizeMB = 4

	s := NewSearcher(limits)
	result := s.Search(p, limits, nil, nil)

	if result.BestMove.IsNull() {
		t.Fatalf("expected a legal best move from a depth-10 search")
	}
	if result.Depth != 10 {
		t.Fatalf("expected the full requested depth to complete, got %d", result.Depth)
	}
}

func TestSearcherStopHaltsSearchEarly(t *testing.T) {
	p, err := position.FromFEN(position.StartFEN, true)
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}
	limits := config.Default()
	limits.Depth = 64
	limits.TTSizeMB = 1

	s := NewSearcher(limits)
	result := s.Search(p, limits, func(info Info) {
		if info.Depth == 1 {
			s.Stop()
		}
	}, nil)
	if result.BestMove.IsNull() {
		t.Fatalf("expected a legal best move from the completed first iteration")
	}
	if result.Depth != 1 {
		t.Fatalf("expected Stop requested after depth 1 to halt deepening, got depth %d", result.Depth)
	}
	if !result.Aborted {
		t.Fatalf("expected Aborted to be set once Stop cut the search short")
	}
}

func TestSearchReportsCurrMoveForEachRootMove(t *testing.T) {
	p, err := position.FromFEN(position.StartFEN, true)
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}
	limits := config.Default()
	limits.Depth = 1
	limits.TTSizeMB = 1

	var seen []int
	s := NewSearcher(limits)
	s.Search(p, limits, nil, func(move position.Move, moveNumber int) {
		seen = append(seen, moveNumber)
		if move.IsNull() {
			t.Fatalf("currmove called with a null move")
		}
	})

	if len(seen) == 0 {
		t.Fatalf("expected currmove to be invoked for at least one root move")
	}
	for i, n := range seen {
		if n != i+1 {
			t.Fatalf("expected currmove indices to run 1..N in order, got %v", seen)
		}
	}
}

func TestSearchReportsAspirationFailTrace(t *testing.T) {
	p, err := position.FromFEN(position.StartFEN, true)
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}
	limits := config.Default()
	limits.Depth = 4
	limits.TTSizeMB = 1

	var traced []string
	enginelog.SetTraceTopic(enginelog.TopicSearch, true)
	enginelog.SetTraceWriter(func(topic enginelog.Topic, msg string) {
		traced = append(traced, msg)
	})
	defer enginelog.SetTraceTopic(enginelog.TopicSearch, false)
	defer enginelog.SetTraceWriter(nil)

	s := NewSearcher(limits)
	s.Search(p, limits, nil, nil)

	found := false
	for _, msg := range traced {
		if strings.Contains(msg, "aspiration fail-low") || strings.Contains(msg, "aspiration fail-high") {
			found = true
			break
		}
	}
	if !found {
		t.Fatalf("expected at least one aspiration fail-low/fail-high trace at depth >= 4, got %v", traced)
	}
}
