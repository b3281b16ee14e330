package position_test

import (
	"testing"

	"chess-engine/position"
	"github.com/stretchr/testify/require"
)

func TestFENRoundTrip(t *testing.T) {
	fens := []string{
		position.StartFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"k7/8/8/3pP3/8/8/8/7K w - d6 0 2",
		"1n5k/P7/8/8/8/8/8/7K w - - 0 1",
	}
	for _, fen := range fens {
		p, err := position.FromFEN(fen, true)
		require.NoError(t, err, "FromFEN(%q)", fen)
		ok, diag := p.IsSane()
		require.True(t, ok, "IsSane after FromFEN(%q): %s", fen, diag)

		roundTripped := p.ToFEN()
		p2, err := position.FromFEN(roundTripped, true)
		require.NoError(t, err, "FromFEN(%q) (round trip)", roundTripped)
		require.Equal(t, p.ToFEN(), p2.ToFEN(), "FEN round trip mismatch for %q", fen)
		require.Equal(t, p.Zobrist(), p2.Zobrist())
	}
}

func TestFENStrictRejectsUnknownPiece(t *testing.T) {
	_, err := position.FromFEN("rnbqkbnx/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", true)
	require.Error(t, err)
}

func TestFENLenientDropsUnknownCastling(t *testing.T) {
	p, err := position.FromFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkqX - 0 1", false)
	require.NoError(t, err)
	require.NotNil(t, p)
}
