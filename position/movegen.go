package position

import "math/bits"

// GeneratePseudoLegal emits every move that satisfies piece-movement rules
// but may leave the mover in check. Order of emission is unspecified.
func (p *Position) GeneratePseudoLegal(out *MoveList, stage GenStage) {
	us := p.sideToMove
	them := us.Flip()
	ownOcc := p.occupied[us]
	enemyOcc := p.occupied[them]
	occAll := p.occupiedAll

	p.genPawnMoves(out, stage, us, enemyOcc, occAll)
	p.genLeaperMoves(out, stage, us, Knight, ownOcc, enemyOcc)
	p.genSliderMoves(out, stage, us, Bishop, ownOcc, enemyOcc, occAll)
	p.genSliderMoves(out, stage, us, Rook, ownOcc, enemyOcc, occAll)
	p.genSliderMoves(out, stage, us, Queen, ownOcc, enemyOcc, occAll)
	p.genKingMoves(out, stage, us, ownOcc, enemyOcc)
	if stage != StageCaptures {
		p.genCastling(out, us, occAll)
	}
}

func (p *Position) genPawnMoves(out *MoveList, stage GenStage, us Color, enemyOcc, occAll Bitboard) {
	pawns := p.pieces[us][Pawn]
	var forward Square
	var startRank, promoRank, epRank int
	if us == White {
		forward = 8
		startRank, promoRank, epRank = 1, 7, 4
	} else {
		forward = -8
		startRank, promoRank, epRank = 6, 0, 3
	}

	bb := pawns
	for bb != 0 {
		from := popLSB(&bb)
		to := from + Square(forward)

		if stage != StageCaptures && to >= 0 && to < 64 && p.squares[to] == NoPiece {
			if to.Rank() == promoRank {
				addPromotions(out, from, to, false)
			} else {
				out.Add(NewMove(from, to, Quiet, NoPieceType))
				if from.Rank() == startRank {
					to2 := to + Square(forward)
					if p.squares[to2] == NoPiece {
						out.Add(NewMove(from, to2, DoublePush, NoPieceType))
					}
				}
			}
		}

		if stage == StageQuiets {
			continue
		}
		attacks := PawnAttacks(us, from)
		caps := attacks & enemyOcc
		for caps != 0 {
			capTo := popLSB(&caps)
			if capTo.Rank() == promoRank {
				addPromotions(out, from, capTo, true)
			} else {
				out.Add(NewMove(from, capTo, Capture, NoPieceType))
			}
		}
		if p.enPassant != NoSquare && from.Rank() == epRank && (attacks&p.enPassant.Bitboard()) != 0 {
			out.Add(NewMove(from, p.enPassant, EnPassant, NoPieceType))
		}
	}
}

func addPromotions(out *MoveList, from, to Square, capture bool) {
	flag := Promotion
	if capture {
		flag = PromotionCapture
	}
	out.Add(NewMove(from, to, flag, Queen))
	out.Add(NewMove(from, to, flag, Rook))
	out.Add(NewMove(from, to, flag, Bishop))
	out.Add(NewMove(from, to, flag, Knight))
}

func (p *Position) genLeaperMoves(out *MoveList, stage GenStage, us Color, pt PieceType, ownOcc, enemyOcc Bitboard) {
	bb := p.pieces[us][pt]
	for bb != 0 {
		from := popLSB(&bb)
		var targets Bitboard
		if pt == Knight {
			targets = KnightAttacks(from)
		} else {
			targets = KingAttacks(from)
		}
		targets &^= ownOcc
		addTargets(out, from, targets, stage, enemyOcc)
	}
}

func (p *Position) genKingMoves(out *MoveList, stage GenStage, us Color, ownOcc, enemyOcc Bitboard) {
	p.genLeaperMoves(out, stage, us, King, ownOcc, enemyOcc)
}

func (p *Position) genSliderMoves(out *MoveList, stage GenStage, us Color, pt PieceType, ownOcc, enemyOcc, occAll Bitboard) {
	bb := p.pieces[us][pt]
	for bb != 0 {
		from := popLSB(&bb)
		var targets Bitboard
		switch pt {
		case Bishop:
			targets = BishopAttacks(from, occAll)
		case Rook:
			targets = RookAttacks(from, occAll)
		case Queen:
			targets = QueenAttacks(from, occAll)
		}
		targets &^= ownOcc
		addTargets(out, from, targets, stage, enemyOcc)
	}
}

func addTargets(out *MoveList, from Square, targets Bitboard, stage GenStage, enemyOcc Bitboard) {
	for targets != 0 {
		to := popLSB(&targets)
		isCap := to.Bitboard()&enemyOcc != 0
		if stage == StageCaptures && !isCap {
			continue
		}
		if stage == StageQuiets && isCap {
			continue
		}
		if isCap {
			out.Add(NewMove(from, to, Capture, NoPieceType))
		} else {
			out.Add(NewMove(from, to, Quiet, NoPieceType))
		}
	}
}

// genCastling emits castling moves only when the right is set, the squares
// between king and rook are empty, and the king's current square and the
// two squares it crosses are not attacked by the enemy.
func (p *Position) genCastling(out *MoveList, us Color, occAll Bitboard) {
	them := us.Flip()
	if us == White {
		if p.castling&WhiteKingside != 0 && occAll&((F1.Bitboard())|(G1.Bitboard())) == 0 {
			if !p.IsSquareAttacked(E1, them) && !p.IsSquareAttacked(F1, them) && !p.IsSquareAttacked(G1, them) {
				out.Add(NewMove(E1, G1, KingCastle, NoPieceType))
			}
		}
		if p.castling&WhiteQueenside != 0 && occAll&((D1.Bitboard())|(C1.Bitboard())|(B1.Bitboard())) == 0 {
			if !p.IsSquareAttacked(E1, them) && !p.IsSquareAttacked(D1, them) && !p.IsSquareAttacked(C1, them) {
				out.Add(NewMove(E1, C1, QueenCastle, NoPieceType))
			}
		}
		return
	}
	if p.castling&BlackKingside != 0 && occAll&((F8.Bitboard())|(G8.Bitboard())) == 0 {
		if !p.IsSquareAttacked(E8, them) && !p.IsSquareAttacked(F8, them) && !p.IsSquareAttacked(G8, them) {
			out.Add(NewMove(E8, G8, KingCastle, NoPieceType))
		}
	}
	if p.castling&BlackQueenside != 0 && occAll&((D8.Bitboard())|(C8.Bitboard())|(B8.Bitboard())) == 0 {
		if !p.IsSquareAttacked(E8, them) && !p.IsSquareAttacked(D8, them) && !p.IsSquareAttacked(C8, them) {
			out.Add(NewMove(E8, C8, QueenCastle, NoPieceType))
		}
	}
}

// checkPinState bundles the per-node check/pin computation used by legal
// generation.
type checkPinState struct {
	inCheck     bool
	doubleCheck bool
	checkMask   Bitboard // squares a non-king move must land on while in single check
	pinLine     [64]Bitboard
}

// computeCheckAndPins walks outward from the friendly king in each ray
// direction to find pins, and unions pawn/knight/king/slider attacks to find
// checkers.
func (p *Position) computeCheckAndPins(us Color) checkPinState {
	var st checkPinState
	them := us.Flip()
	ksq := p.kings[us]
	if ksq == NoSquare {
		return st
	}
	occ := p.occupiedAll

	var checkers Bitboard
	checkers |= PawnAttacks(us, ksq) & p.pieces[them][Pawn]
	checkers |= KnightAttacks(ksq) & p.pieces[them][Knight]
	diag := BishopAttacks(ksq, occ)
	checkers |= diag & (p.pieces[them][Bishop] | p.pieces[them][Queen])
	ortho := RookAttacks(ksq, occ)
	checkers |= ortho & (p.pieces[them][Rook] | p.pieces[them][Queen])

	st.inCheck = checkers != 0
	st.doubleCheck = st.inCheck && (checkers&(checkers-1)) != 0

	if st.inCheck && !st.doubleCheck {
		c := Square(bits.TrailingZeros64(uint64(checkers)))
		switch p.squares[c].Type() {
		case Knight, Pawn:
			st.checkMask = c.Bitboard()
		case Rook:
			st.checkMask = betweenRook(ksq, c) | c.Bitboard()
		case Bishop:
			st.checkMask = betweenBishop(ksq, c) | c.Bitboard()
		case Queen:
			if ksq.File() == c.File() || ksq.Rank() == c.Rank() {
				st.checkMask = betweenRook(ksq, c) | c.Bitboard()
			} else {
				st.checkMask = betweenBishop(ksq, c) | c.Bitboard()
			}
		default:
			st.checkMask = c.Bitboard()
		}
	}

	for d := 0; d < 4; d++ {
		p.findPin(us, ksq, occ, &rookRays, d, true, &st)
	}
	for d := 0; d < 4; d++ {
		p.findPin(us, ksq, occ, &bishopRays, d, false, &st)
	}
	return st
}

func (p *Position) findPin(us Color, ksq Square, occ Bitboard, rays *[64][4]Bitboard, d int, orthogonal bool, st *checkPinState) {
	them := us.Flip()
	ray := rays[ksq][d]
	blockers := ray & occ
	if blockers == 0 {
		return
	}
	var first Square
	increasing := d == 0 || d == 2
	if !orthogonal {
		increasing = d == 0 || d == 1
	}
	if increasing {
		first = Square(bits.TrailingZeros64(uint64(blockers)))
	} else {
		first = Square(63 - bits.LeadingZeros64(uint64(blockers)))
	}
	if first.Bitboard()&p.occupied[us] == 0 {
		return
	}
	beyond := rays[first][d] & occ
	if beyond == 0 {
		return
	}
	var second Square
	if increasing {
		second = Square(bits.TrailingZeros64(uint64(beyond)))
	} else {
		second = Square(63 - bits.LeadingZeros64(uint64(beyond)))
	}
	secondPiece := p.squares[second]
	if secondPiece.Color() != them {
		return
	}
	isSliderMatch := false
	if orthogonal {
		isSliderMatch = secondPiece.Type() == Rook || secondPiece.Type() == Queen
	} else {
		isSliderMatch = secondPiece.Type() == Bishop || secondPiece.Type() == Queen
	}
	if !isSliderMatch {
		return
	}
	st.pinLine[first] = (ray &^ rays[second][d]) | second.Bitboard()
}

func betweenRook(from, to Square) Bitboard {
	for d := 0; d < 4; d++ {
		if rookRays[from][d]&to.Bitboard() != 0 {
			return rookRays[from][d] &^ rookRays[to][d] &^ to.Bitboard()
		}
	}
	return 0
}

func betweenBishop(from, to Square) Bitboard {
	for d := 0; d < 4; d++ {
		if bishopRays[from][d]&to.Bitboard() != 0 {
			return bishopRays[from][d] &^ bishopRays[to][d] &^ to.Bitboard()
		}
	}
	return 0
}


// GenerateLegal fills out with the legal moves for stage, filtering the
// pseudo-legal set by check/pin/castling-through-check rules and verifying
// en-passant with a make/unmake simulation.
func (p *Position) GenerateLegal(out *MoveList, stage GenStage) {
	us := p.sideToMove
	them := us.Flip()
	st := p.computeCheckAndPins(us)

	var pseudo MoveList
	p.GeneratePseudoLegal(&pseudo, stage)

	for i := 0; i < pseudo.Len(); i++ {
		m := pseudo.At(i)
		from, to := m.From(), m.To()
		moved := p.squares[from]

		if moved.Type() == King {
			if m.Flag() == KingCastle || m.Flag() == QueenCastle {
				out.Add(m)
				continue
			}
			occWithoutKing := p.occupiedAll &^ from.Bitboard()
			if m.Flag().IsCaptureLike() {
				occWithoutKing &^= to.Bitboard()
			}
			if !isSquareAttackedWithOcc(p, to, them, occWithoutKing) {
				out.Add(m)
			}
			continue
		}

		if st.doubleCheck {
			continue
		}

		if st.inCheck {
			if m.Flag() != EnPassant && st.checkMask&to.Bitboard() == 0 {
				continue
			}
		}

		if pin := st.pinLine[from]; pin != 0 && pin&to.Bitboard() == 0 {
			continue
		}

		if m.Flag() == EnPassant {
			if !p.verifyEnPassantLegal(m, us) {
				continue
			}
		}

		out.Add(m)
	}
}

// isSquareAttackedWithOcc is IsSquareAttacked but against a caller-supplied
// occupancy, used to test king destinations with the king itself (and any
// captured piece) removed from the board.
func isSquareAttackedWithOcc(p *Position, sq Square, by Color, occ Bitboard) bool {
	if PawnAttacks(by.Flip(), sq)&p.pieces[by][Pawn] != 0 {
		return true
	}
	if KnightAttacks(sq)&p.pieces[by][Knight] != 0 {
		return true
	}
	if KingAttacks(sq)&p.pieces[by][King] != 0 {
		return true
	}
	if BishopAttacks(sq, occ)&(p.pieces[by][Bishop]|p.pieces[by][Queen]) != 0 {
		return true
	}
	if RookAttacks(sq, occ)&(p.pieces[by][Rook]|p.pieces[by][Queen]) != 0 {
		return true
	}
	return false
}

// verifyEnPassantLegal falls back to a make/unmake legality check because
// removing the captured pawn can expose the king to a horizontal discovered
// check that pin/check masks alone do not model.
func (p *Position) verifyEnPassantLegal(m Move, us Color) bool {
	var undo Undo
	p.Make(m, &undo)
	legal := !p.InCheck(us)
	p.Unmake(m, &undo)
	return legal
}

// GenerateAllPseudoLegal is a convenience wrapper returning a fresh list.
func (p *Position) GenerateAllPseudoLegal() MoveList {
	var ml MoveList
	p.GeneratePseudoLegal(&ml, StageAll)
	return ml
}

// GenerateAllLegal is a convenience wrapper returning a fresh list.
func (p *Position) GenerateAllLegal() MoveList {
	var ml MoveList
	p.GenerateLegal(&ml, StageAll)
	return ml
}

// HasLegalMoves reports whether the side to move has any legal move, for
// checkmate/stalemate detection. It generates the full legal list and
// reports whether it is non-empty.
func (p *Position) HasLegalMoves() bool {
	var ml MoveList
	p.GenerateLegal(&ml, StageAll)
	return ml.Len() > 0
}
