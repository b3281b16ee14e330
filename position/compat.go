package position

import (
	"strings"

	"github.com/dylhunn/dragontoothmg"
	"github.com/pkg/errors"
)

// MoveToUCI renders move in coordinate notation. Kept as a free function
// (alongside Move.UCI) to match the external-interface name used by search
// and front-end callers.
func MoveToUCI(m Move) string { return m.UCI() }

// ParseUCIMove resolves a coordinate-notation move ("e2e4", "e7e8q", "0000")
// against the position's current legal moves. It returns a null Move, not an
// error, when the text does not name a legal move — callers decide whether
// that is fatal.
func ParseUCIMove(p *Position, text string) Move {
	text = strings.TrimSpace(strings.ToLower(text))
	if text == "0000" || text == "" {
		return Move(0)
	}
	var ml MoveList
	p.GenerateLegal(&ml, StageAll)
	for i := 0; i < ml.Len(); i++ {
		m := ml.At(i)
		if m.UCI() == text {
			return m
		}
	}
	return Move(0)
}

// PerftCrossCheck runs perft at depth against both this package's generator
// and github.com/dylhunn/dragontoothmg's independent implementation,
// starting from the same FEN, and reports whether their leaf counts agree.
// It exists purely as a regression oracle for tests; the engine's own
// Position is always the move generator of record (dragontoothmg is never
// used to drive search or make/unmake).
func PerftCrossCheck(fen string, depth int) (ours, theirs uint64, err error) {
	ourPos, err := FromFEN(fen, true)
	if err != nil {
		return 0, 0, errors.Wrap(err, "position: cross-check FEN")
	}
	ours = Perft(ourPos, depth)

	theirBoard := dragontoothmg.ParseFen(fen)
	theirs = dragontoothmgPerft(&theirBoard, depth)
	return ours, theirs, nil
}

func dragontoothmgPerft(b *dragontoothmg.Board, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	moves := b.GenerateLegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		undo := b.Apply(m)
		nodes += dragontoothmgPerft(b, depth-1)
		undo()
	}
	return nodes
}
