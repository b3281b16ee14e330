package engine

import (
	"math/bits"

	"chess-engine/position"
)

// Game-phase weights used to taper between the midgame and endgame PSQT sets.
// Grounded on the teacher's own PawnPhase/KnightPhase/.../TotalPhase scheme in
// evaluation.go, trimmed down to the material+PSQT subset the spec's "minimal
// tapered evaluator collaborator" calls for — none of the teacher's king
// safety, mobility, pawn-structure, or outpost terms are reproduced here.
const (
	pawnPhase   = 0
	knightPhase = 1
	bishopPhase = 1
	rookPhase   = 2
	queenPhase  = 4
	totalPhase  = pawnPhase*16 + knightPhase*4 + bishopPhase*4 + rookPhase*4 + queenPhase*2
)

var phaseWeight = [7]int{pawnPhase, knightPhase, bishopPhase, rookPhase, queenPhase, 0, 0}

// pieceValueMG/pieceValueEG are the tapered material values; distinct from
// position.PieceType.Value()'s single indicative value used by SEE/MVV-LVA,
// which intentionally stays simpler (see engine/see.go, engine/order.go).
var pieceValueMG = [7]int{82, 337, 365, 477, 1025, 0, 0}
var pieceValueEG = [7]int{94, 281, 297, 512, 936, 0, 0}

// psqtMG/psqtEG are piece-square tables indexed [pieceType][square], square 0
// = a1 ascending to square 63 = h8, White's perspective; Black's score is
// read from the vertically mirrored square. Values are a compact subset in
// the same spirit as the teacher's PSQT_MG/PSQT_EG (center/development
// preference for minors, pawn advancement, rook on open files, tucked king),
// re-derived at this indexing rather than reusing the teacher's tables
// directly, since the teacher's are indexed relative to its own board
// representation and carry decades of tuning this collaborator does not
// need to replicate (the spec's eval component is explicitly minimal).
var psqtMG = [7][64]int{
	position.Pawn: {
		0, 0, 0, 0, 0, 0, 0, 0,
		5, 10, 10, -20, -20, 10, 10, 5,
		5, -5, -10, 0, 0, -10, -5, 5,
		0, 0, 0, 20, 20, 0, 0, 0,
		5, 5, 10, 25, 25, 10, 5, 5,
		10, 10, 20, 30, 30, 20, 10, 10,
		50, 50, 50, 50, 50, 50, 50, 50,
		0, 0, 0, 0, 0, 0, 0, 0,
	},
	position.Knight: {
		-50, -40, -30, -30, -30, -30, -40, -50,
		-40, -20, 0, 5, 5, 0, -20, -40,
		-30, 5, 10, 15, 15, 10, 5, -30,
		-30, 0, 15, 20, 20, 15, 0, -30,
		-30, 5, 15, 20, 20, 15, 5, -30,
		-30, 0, 10, 15, 15, 10, 0, -30,
		-40, -20, 0, 0, 0, 0, -20, -40,
		-50, -40, -30, -30, -30, -30, -40, -50,
	},
	position.Bishop: {
		-20, -10, -10, -10, -10, -10, -10, -20,
		-10, 5, 0, 0, 0, 0, 5, -10,
		-10, 10, 10, 10, 10, 10, 10, -10,
		-10, 0, 10, 10, 10, 10, 0, -10,
		-10, 5, 5, 10, 10, 5, 5, -10,
		-10, 0, 5, 10, 10, 5, 0, -10,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-20, -10, -10, -10, -10, -10, -10, -20,
	},
	position.Rook: {
		0, 0, 0, 5, 5, 0, 0, 0,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		5, 10, 10, 10, 10, 10, 10, 5,
		0, 0, 0, 0, 0, 0, 0, 0,
	},
	position.Queen: {
		-20, -10, -10, -5, -5, -10, -10, -20,
		-10, 0, 5, 0, 0, 0, 0, -10,
		-10, 5, 5, 5, 5, 5, 0, -10,
		0, 0, 5, 5, 5, 5, 0, -5,
		-5, 0, 5, 5, 5, 5, 0, -5,
		-10, 0, 5, 5, 5, 5, 0, -10,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-20, -10, -10, -5, -5, -10, -10, -20,
	},
	position.King: {
		20, 30, 10, 0, 0, 10, 30, 20,
		20, 20, 0, 0, 0, 0, 20, 20,
		-10, -20, -20, -20, -20, -20, -20, -10,
		-20, -30, -30, -40, -40, -30, -30, -20,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
	},
}

var psqtEG = [7][64]int{
	position.Pawn: {
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		10, 10, 10, 10, 10, 10, 10, 10,
		20, 20, 20, 20, 20, 20, 20, 20,
		30, 30, 30, 30, 30, 30, 30, 30,
		50, 50, 50, 50, 50, 50, 50, 50,
		80, 80, 80, 80, 80, 80, 80, 80,
		0, 0, 0, 0, 0, 0, 0, 0,
	},
	position.Knight: psqtMG[position.Knight],
	position.Bishop: psqtMG[position.Bishop],
	position.Rook:   psqtMG[position.Rook],
	position.Queen:  psqtMG[position.Queen],
	position.King: {
		-50, -30, -30, -30, -30, -30, -30, -50,
		-30, -30, 0, 0, 0, 0, -30, -30,
		-30, -10, 20, 30, 30, 20, -10, -30,
		-30, -10, 30, 40, 40, 30, -10, -30,
		-30, -10, 30, 40, 40, 30, -10, -30,
		-30, -10, 20, 30, 30, 20, -10, -30,
		-30, -20, -10, 0, 0, -10, -20, -30,
		-50, -40, -30, -20, -20, -30, -40, -50,
	},
}

func mirror(sq position.Square) position.Square {
	return position.MakeSquare(sq.File(), 7-sq.Rank())
}

// Evaluate returns a static score in centipawns from the side-to-move's
// perspective: material plus piece-square placement, tapered between the
// midgame and endgame tables by the remaining non-pawn material (the
// teacher's TotalPhase interpolation, reused at the same weights).
func Evaluate(p *position.Position) int32 {
	var mg, eg, phase int

	for c := position.White; c <= position.Black; c++ {
		sign := 1
		if c == position.Black {
			sign = -1
		}
		for pt := position.Pawn; pt <= position.King; pt++ {
			bb := p.Pieces(c, pt)
			for bb != 0 {
				sq := position.Square(bits.TrailingZeros64(uint64(bb)))
				bb &= bb - 1

				sqIdx := sq
				if c == position.Black {
					sqIdx = mirror(sq)
				}

				mg += sign * (pieceValueMG[pt] + psqtMG[pt][sqIdx])
				eg += sign * (pieceValueEG[pt] + psqtEG[pt][sqIdx])
				phase += phaseWeight[pt]
			}
		}
	}

	if phase > totalPhase {
		phase = totalPhase
	}
	mgWeight := phase
	egWeight := totalPhase - phase
	score := int32((mg*mgWeight + eg*egWeight) / totalPhase)

	if p.SideToMove() == position.Black {
		score = -score
	}
	return score
}
