package position

// Zobrist keys are produced by a deterministic splitmix64 PRNG seeded with a
// fixed constant, so the hash function is reproducible across builds.

type splitmix64 struct{ state uint64 }

func (s *splitmix64) next() uint64 {
	s.state += 0x9E3779B97F4A7C15
	z := s.state
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

const zobristSeed uint64 = 0xC0FFEE1971FEED15

var (
	// zobristPieceSquare[colour][pieceType][square]
	zobristPieceSquare [2][6][64]uint64
	zobristCastling    [16]uint64
	zobristEnPassant   [8]uint64
	zobristSideToMove  uint64
)

func init() {
	rng := splitmix64{state: zobristSeed}
	for c := 0; c < 2; c++ {
		for pt := 0; pt < 6; pt++ {
			for sq := 0; sq < 64; sq++ {
				zobristPieceSquare[c][pt][sq] = rng.next()
			}
		}
	}
	for cr := 0; cr < 16; cr++ {
		zobristCastling[cr] = rng.next()
	}
	for f := 0; f < 8; f++ {
		zobristEnPassant[f] = rng.next()
	}
	zobristSideToMove = rng.next()
}

func zobristKeyFor(p Piece, sq Square) uint64 {
	return zobristPieceSquare[p.Color()][p.Type()][sq]
}

// ComputeZobrist recomputes the hash from scratch, ignoring the incrementally
// maintained key. Used by FEN parsing and Position.IsSane.
func (p *Position) ComputeZobrist() uint64 {
	var key uint64
	for sq := Square(0); sq < 64; sq++ {
		pc := p.squares[sq]
		if pc != NoPiece {
			key ^= zobristKeyFor(pc, sq)
		}
	}
	key ^= zobristCastling[p.castling]
	if p.enPassant != NoSquare {
		key ^= zobristEnPassant[p.enPassant.File()]
	}
	if p.sideToMove == Black {
		key ^= zobristSideToMove
	}
	return key
}
