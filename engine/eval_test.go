package engine

import (
	"testing"

	"chess-engine/position"
)

func TestEvaluateSymmetricStartPositionIsZero(t *testing.T) {
	p, err := position.FromFEN(position.StartFEN, true)
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}
	if score := Evaluate(p); score != 0 {
		t.Fatalf("expected the starting position to evaluate to 0, got %d", score)
	}
}

func TestEvaluateFavoursMaterialAdvantage(t *testing.T) {
	p, err := position.FromFEN("4k3/8/8/8/8/8/8/QQQQK3 w - - 0 1", true)
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}
	if score := Evaluate(p); score <= 0 {
		t.Fatalf("expected a large positive score for four extra queens, got %d", score)
	}
}

func TestEvaluateIsSideToMoveRelative(t *testing.T) {
	white, err := position.FromFEN("4k3/8/8/8/8/8/8/Q3K3 w - - 0 1", true)
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}
	black, err := position.FromFEN("4k3/8/8/8/8/8/8/Q3K3 b - - 0 1", true)
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}
	if white.SideToMove() == black.SideToMove() {
		t.Fatalf("test fixture must differ only by side to move")
	}
	if Evaluate(white) != -Evaluate(black) {
		t.Fatalf("expected evaluation to flip sign with side to move: white=%d black=%d", Evaluate(white), Evaluate(black))
	}
}

func TestMirrorIsVerticalFlip(t *testing.T) {
	a1 := position.MakeSquare(0, 0)
	a8 := position.MakeSquare(0, 7)
	if mirror(a1) != a8 {
		t.Fatalf("expected mirror(a1) == a8")
	}
	if mirror(a8) != a1 {
		t.Fatalf("expected mirror(a8) == a1")
	}
}
