package engine

import (
	"testing"

	"chess-engine/position"
)

func mustMove(t *testing.T, p *position.Position, uci string) position.Move {
	t.Helper()
	m := position.ParseUCIMove(p, uci)
	if m.IsNull() {
		t.Fatalf("move %q is not legal in the given position", uci)
	}
	return m
}

func TestSEEWinningPawnCapture(t *testing.T) {
	p, err := position.FromFEN("4k3/8/8/3n4/4P3/8/8/4K3 w - - 0 1", true)
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}
	m := mustMove(t, p, "e4d5")
	if score := see(p, m); score <= 0 {
		t.Fatalf("expected a winning SEE score for exd5, got %d", score)
	}
}

func TestSEEBishopTakesKnightRecapturedByQueen(t *testing.T) {
	p, err := position.FromFEN("6k1/4q1p1/4n3/8/2B5/8/8/6K1 w - - 0 1", true)
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}
	m := mustMove(t, p, "c4e6")
	want := position.Knight.Value() - position.Bishop.Value()
	if score := see(p, m); score != want {
		t.Fatalf("expected SEE score %d (knight won, bishop lost to the queen's recapture), got %d", want, score)
	}
}

func TestSEEHandlesEnPassantCapture(t *testing.T) {
	p, err := position.FromFEN("8/8/8/3pP3/8/8/8/6K1 w - d6 0 1", true)
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}
	m := mustMove(t, p, "e5d6")
	if m.Flag() != position.EnPassant {
		t.Fatalf("expected en passant flag, got flag %d", m.Flag())
	}
	if score := see(p, m); score != position.Pawn.Value() {
		t.Fatalf("expected SEE score %d, got %d", position.Pawn.Value(), score)
	}
}

func TestSEEQueenTakesPawnDefendedByPawn(t *testing.T) {
	p, err := position.FromFEN("4k3/8/4p3/3p4/4Q3/8/8/4K3 w - - 0 1", true)
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}
	m := mustMove(t, p, "e4d5")
	if score := see(p, m); score >= 0 {
		t.Fatalf("expected a losing SEE score for the queen taking a pawn defended by another pawn, got %d", score)
	}
}

func TestSEEPawnTradeRecapturedByRook(t *testing.T) {
	p, err := position.FromFEN("4k3/8/3p4/4P3/3r4/8/8/4K3 w - - 0 1", true)
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}
	m := mustMove(t, p, "e5d6")
	if score := see(p, m); score != 0 {
		t.Fatalf("expected SEE score 0 for a pawn-for-pawn trade recaptured by a rook, got %d", score)
	}
}

func TestCachedSEEMatchesUncached(t *testing.T) {
	p, err := position.FromFEN("4k3/8/8/3n4/4P3/8/8/4K3 w - - 0 1", true)
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}
	m := mustMove(t, p, "e4d5")
	var cache seeCache
	direct := see(p, m)
	first := cachedSEE(&cache, p, m)
	second := cachedSEE(&cache, p, m)
	if first != int32(direct) || second != int32(direct) {
		t.Fatalf("cachedSEE mismatch: direct=%d first=%d second=%d", direct, first, second)
	}
}
