package engine

import (
	"math/bits"

	"chess-engine/position"
)

// seeScratch holds the local, mutable bitboards SEE simulates capture
// sequences against; it never touches the live Position.
type seeScratch struct {
	occ       position.Bitboard
	byType    [2][6]position.Bitboard // [colour][pieceType]
}

func newSEEScratch(p *position.Position) seeScratch {
	var s seeScratch
	s.occ = p.OccupiedAll()
	for c := position.White; c <= position.Black; c++ {
		for pt := position.Pawn; pt <= position.King; pt++ {
			s.byType[c][pt] = p.Pieces(c, pt)
		}
	}
	return s
}

func (s *seeScratch) removeAt(sq position.Square, c position.Color, pt position.PieceType) {
	bit := position.Square(sq).Bitboard()
	s.occ &^= bit
	s.byType[c][pt] &^= bit
}

// attackersTo returns the set of squares holding a piece of colour `by` that
// currently attacks sq, given the scratch occupancy (which shrinks as pieces
// are removed during the simulated capture sequence, exposing x-ray attacks).
func attackersTo(s *seeScratch, sq position.Square, by position.Color) position.Bitboard {
	var att position.Bitboard
	att |= position.PawnAttacks(by.Flip(), sq) & s.byType[by][position.Pawn]
	att |= position.KnightAttacks(sq) & s.byType[by][position.Knight]
	att |= position.KingAttacks(sq) & s.byType[by][position.King]
	att |= position.BishopAttacks(sq, s.occ) & (s.byType[by][position.Bishop] | s.byType[by][position.Queen])
	att |= position.RookAttacks(sq, s.occ) & (s.byType[by][position.Rook] | s.byType[by][position.Queen])
	return att
}

// leastValuableAttacker finds the lowest-value piece of colour `by` among
// att, returning its square, piece type, and whether one was found.
func leastValuableAttacker(s *seeScratch, att position.Bitboard, by position.Color) (position.Square, position.PieceType, bool) {
	for pt := position.Pawn; pt <= position.King; pt++ {
		subset := att & s.byType[by][pt]
		if subset != 0 {
			sq := position.Square(bits.TrailingZeros64(uint64(subset)))
			return sq, pt, true
		}
	}
	return position.NoSquare, position.NoPieceType, false
}

// winningCaptureMargin is the material gap at which a capture is accepted as
// winning without running full SEE (the attacker is at least this much
// lighter than the victim).
const winningCaptureMargin = 300

// seeCacheSize is the number of direct-mapped slots in the per-search SEE
// cache, keyed by (zobrist, move).
const seeCacheSize = 4096

type seeCacheEntry struct {
	key   uint64
	move  position.Move
	score int32
	valid bool
}

// seeCache memoises SEE results within one node's move-ordering pass; it is
// cleared at the start of each top-level search call.
type seeCache struct {
	entries [seeCacheSize]seeCacheEntry
}

func (c *seeCache) clear() {
	*c = seeCache{}
}

func (c *seeCache) slot(key uint64, move position.Move) *seeCacheEntry {
	idx := (key ^ uint64(move)) % seeCacheSize
	return &c.entries[idx]
}

func (c *seeCache) get(key uint64, move position.Move) (int32, bool) {
	e := c.slot(key, move)
	if e.valid && e.key == key && e.move == move {
		return e.score, true
	}
	return 0, false
}

func (c *seeCache) put(key uint64, move position.Move, score int32) {
	e := c.slot(key, move)
	*e = seeCacheEntry{key: key, move: move, score: score, valid: true}
}

// cachedSEE returns see(p, m), using cache to avoid recomputation within a
// single node's ordering pass.
func cachedSEE(cache *seeCache, p *position.Position, m position.Move) int32 {
	key := p.Zobrist()
	if v, ok := cache.get(key, m); ok {
		return v
	}
	v := int32(see(p, m))
	cache.put(key, m, v)
	return v
}

// see returns the expected material gain, in the mover's favour, of the
// capture sequence on m's destination square, assuming both sides always
// recapture with their least valuable attacker. Non-capture, non-promotion
// moves return 0.
func see(p *position.Position, m position.Move) int {
	if !m.IsCaptureLike() && !m.IsPromotion() {
		return 0
	}

	from, to := m.From(), m.To()
	us := p.SideToMove()
	them := us.Flip()

	mover := p.PieceAt(from)
	moverType := mover.Type()

	var victimType position.PieceType
	var epCaptureSquare position.Square = position.NoSquare
	if m.Flag() == position.EnPassant {
		victimType = position.Pawn
		epCaptureSquare = position.MakeSquare(to.File(), from.Rank())
	} else {
		victimType = p.PieceAt(to).Type()
	}

	promoDelta := 0
	finalType := moverType
	if m.IsPromotion() {
		finalType = m.Promotion()
		promoDelta = finalType.Value() - position.Pawn.Value()
	}

	gain := [32]int{}
	depth := 0
	gain[0] = victimType.Value() + promoDelta

	s := newSEEScratch(p)
	s.removeAt(from, us, moverType)
	if epCaptureSquare != position.NoSquare {
		s.removeAt(epCaptureSquare, them, position.Pawn)
	} else if victimType != position.NoPieceType {
		s.removeAt(to, them, victimType)
	}
	// `to` stays occupied throughout: the mover (or its promoted form) sits
	// there now, and every subsequent recapture replaces rather than vacates
	// it. Only occupancy for blocker/x-ray purposes matters past this point.
	s.occ |= to.Bitboard()

	side := them
	occupantType := finalType

	for {
		attackers := attackersTo(&s, to, side)
		sq, pt, ok := leastValuableAttacker(&s, attackers, side)
		if !ok {
			break
		}
		depth++
		gain[depth] = occupantType.Value() - gain[depth-1]
		if max(-gain[depth-1], gain[depth]) < 0 {
			break
		}
		s.removeAt(sq, side, pt)
		occupantType = pt
		s.occ |= to.Bitboard()
		side = side.Flip()
	}

	for d := depth; d > 0; d-- {
		gain[d-1] = -max(-gain[d-1], gain[d])
	}
	return gain[0]
}
