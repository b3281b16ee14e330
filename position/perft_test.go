package position_test

import (
	"testing"

	"chess-engine/position"
)

func TestPerftInitialPosition(t *testing.T) {
	p, err := position.FromFEN(position.StartFEN, true)
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}
	cases := []struct {
		depth int
		want  uint64
	}{
		{1, 20},
		{2, 400},
		{3, 8902},
		{4, 197281},
	}
	for _, c := range cases {
		if got := position.Perft(p, c.depth); got != c.want {
			t.Errorf("perft depth %d: got %d want %d", c.depth, got, c.want)
		}
	}
}

func TestPerftKiwipete(t *testing.T) {
	fen := "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	p, err := position.FromFEN(fen, true)
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}
	cases := []struct {
		depth int
		want  uint64
	}{
		{1, 48},
		{2, 2039},
		{3, 97862},
	}
	for _, c := range cases {
		if got := position.Perft(p, c.depth); got != c.want {
			t.Errorf("Kiwipete depth %d: got %d want %d", c.depth, got, c.want)
		}
	}
}

func TestPerftPosition3(t *testing.T) {
	fen := "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"
	p, err := position.FromFEN(fen, true)
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}
	cases := []struct {
		depth int
		want  uint64
	}{
		{1, 14},
		{2, 191},
		{3, 2812},
		{4, 43238},
	}
	for _, c := range cases {
		if got := position.Perft(p, c.depth); got != c.want {
			t.Errorf("position3 depth %d: got %d want %d", c.depth, got, c.want)
		}
	}
}

func TestPerftEnPassant(t *testing.T) {
	fen := "k7/8/8/3pP3/8/8/8/7K w - d6 0 2"
	p, err := position.FromFEN(fen, true)
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}
	if got := position.Perft(p, 1); got != 5 {
		t.Errorf("EP depth1: got %d want 5", got)
	}
	if got := position.Perft(p, 2); got != 19 {
		t.Errorf("EP depth2: got %d want 19", got)
	}
}

func TestPerftPromotion(t *testing.T) {
	fen := "1n5k/P7/8/8/8/8/8/7K w - - 0 1"
	p, err := position.FromFEN(fen, true)
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}
	if got := position.Perft(p, 1); got != 11 {
		t.Errorf("promotion depth1: got %d want 11", got)
	}
}
