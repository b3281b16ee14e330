package position

// Make applies move to the position, assuming it was produced by legal
// generation on this Position (or independently verified legal); Make itself
// performs no legality check. undo is populated so a later Unmake(move, undo)
// restores the exact prior state, including the Zobrist key.
func (p *Position) Make(m Move, undo *Undo) {
	undo.Key = p.zobrist
	undo.Move = m
	undo.Castling = p.castling
	undo.HalfmoveClock = p.halfmoveClock
	undo.EnPassant = p.enPassant
	undo.Captured = NoPiece

	from, to := m.From(), m.To()
	flag := m.Flag()
	us := p.sideToMove
	them := us.Flip()

	if p.enPassant != NoSquare {
		p.zobrist ^= zobristEnPassant[p.enPassant.File()]
	}
	p.enPassant = NoSquare

	// Fast path: quiet non-king move, destination empty. Double pushes and
	// king moves take the general path below.
	if (flag == Quiet || flag == DoublePush) && p.squares[to] == NoPiece {
		moved := p.squares[from]
		if flag == Quiet && moved.Type() != King {
			bit := bbOf(from) | bbOf(to)
			p.squares[from] = NoPiece
			p.squares[to] = moved
			p.pieces[us][moved.Type()] ^= bit
			p.occupied[us] ^= bit
			p.occupiedAll ^= bit
			p.zobrist ^= zobristKeyFor(moved, from) ^ zobristKeyFor(moved, to)
			p.finishMake(m, moved, NoPiece, us, them)
			return
		}
	}

	var captured Piece
	if flag == EnPassant {
		var capSq Square
		if us == White {
			capSq = to - 8
		} else {
			capSq = to + 8
		}
		captured = p.removePiece(capSq)
	} else {
		captured = p.squares[to]
		if captured != NoPiece {
			p.removePiece(to)
		}
	}
	undo.Captured = captured

	moved := p.removePiece(from)
	placed := moved
	if flag == Promotion || flag == PromotionCapture {
		placed = MakePiece(us, m.Promotion())
	}
	p.addPiece(to, placed)

	if flag == KingCastle || flag == QueenCastle {
		rookFrom, rookTo := castleRookSquares(us, flag)
		rook := p.removePiece(rookFrom)
		p.addPiece(rookTo, rook)
	}

	if flag == DoublePush {
		var ep Square
		if us == White {
			ep = from + 8
		} else {
			ep = from - 8
		}
		p.enPassant = ep
		p.zobrist ^= zobristEnPassant[ep.File()]
	}

	p.finishMake(m, moved, captured, us, them)
}

// finishMake applies the castling-rights update, clocks, and the side-to-move
// flip shared by both the fast and general paths.
func (p *Position) finishMake(m Move, moved, captured Piece, us, them Color) {
	from, to := m.From(), m.To()

	newRights := p.castling
	switch {
	case moved.Type() == King && us == White:
		newRights &^= WhiteKingside | WhiteQueenside
	case moved.Type() == King && us == Black:
		newRights &^= BlackKingside | BlackQueenside
	}
	newRights = clearCastlingForSquare(newRights, from)
	newRights = clearCastlingForSquare(newRights, to)
	if newRights != p.castling {
		p.zobrist ^= zobristCastling[p.castling]
		p.zobrist ^= zobristCastling[newRights]
		p.castling = newRights
	}

	if moved.Type() == Pawn || captured != NoPiece {
		p.halfmoveClock = 0
	} else {
		p.halfmoveClock++
	}
	if us == Black {
		p.fullmoveNumber++
	}

	p.sideToMove = them
	p.zobrist ^= zobristSideToMove
}

func clearCastlingForSquare(rights CastlingRights, sq Square) CastlingRights {
	switch sq {
	case A1:
		return rights &^ WhiteQueenside
	case H1:
		return rights &^ WhiteKingside
	case A8:
		return rights &^ BlackQueenside
	case H8:
		return rights &^ BlackKingside
	default:
		return rights
	}
}

func castleRookSquares(c Color, flag MoveFlag) (from, to Square) {
	if c == White {
		if flag == KingCastle {
			return H1, F1
		}
		return A1, D1
	}
	if flag == KingCastle {
		return H8, F8
	}
	return A8, D8
}

// Unmake exactly reverses Make(m, undo).
func (p *Position) Unmake(m Move, undo *Undo) {
	us := p.sideToMove.Flip()
	them := p.sideToMove
	from, to := m.From(), m.To()
	flag := m.Flag()

	if flag == KingCastle || flag == QueenCastle {
		rookFrom, rookTo := castleRookSquares(us, flag)
		rook := p.removePiece(rookTo)
		p.addPiece(rookFrom, rook)
	}

	placed := p.removePiece(to)
	var moved Piece
	if flag == Promotion || flag == PromotionCapture {
		moved = MakePiece(us, Pawn)
	} else {
		moved = placed
	}
	p.addPiece(from, moved)

	if undo.Captured != NoPiece {
		if flag == EnPassant {
			var capSq Square
			if us == White {
				capSq = to - 8
			} else {
				capSq = to + 8
			}
			p.addPiece(capSq, undo.Captured)
		} else {
			p.addPiece(to, undo.Captured)
		}
	}

	p.castling = undo.Castling
	p.enPassant = undo.EnPassant
	p.halfmoveClock = undo.HalfmoveClock
	if them == Black {
		p.fullmoveNumber--
	}
	p.sideToMove = us
	p.zobrist = undo.Key
}

// MakeNull swaps the side to move and clears en-passant, leaving all piece
// bitboards untouched. Used only by the search's null-move heuristic, never
// by legal-move generation.
func (p *Position) MakeNull(undo *Undo) {
	undo.Key = p.zobrist
	undo.EnPassant = p.enPassant
	undo.HalfmoveClock = p.halfmoveClock
	undo.Captured = NoPiece
	undo.Move = Move(0)

	if p.enPassant != NoSquare {
		p.zobrist ^= zobristEnPassant[p.enPassant.File()]
	}
	p.enPassant = NoSquare
	p.halfmoveClock++
	if p.sideToMove == Black {
		p.fullmoveNumber++
	}
	p.sideToMove = p.sideToMove.Flip()
	p.zobrist ^= zobristSideToMove
}

// UnmakeNull reverses MakeNull.
func (p *Position) UnmakeNull(undo *Undo) {
	if p.sideToMove == White {
		p.fullmoveNumber--
	}
	p.sideToMove = p.sideToMove.Flip()
	p.enPassant = undo.EnPassant
	p.halfmoveClock = undo.HalfmoveClock
	p.zobrist = undo.Key
}
