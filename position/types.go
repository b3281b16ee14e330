// Package position implements the bitboard chess position: piece placement,
// Zobrist hashing, make/unmake, FEN I/O, and pseudo-legal/legal move
// generation. It has no knowledge of search; it is the board the search
// driver in package engine operates on.
package position

import "fmt"

// Bitboard is a 64-bit set of squares; bit i (LSB = a1, proceeding
// rank-by-rank to h8 = bit 63) indicates presence at square i.
type Bitboard uint64

// Square is an integer in [0,63] with a distinguished None sentinel.
type Square int8

const NoSquare Square = -1

const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
)

// File returns sq's file in [0,7] (a=0..h=7).
func (sq Square) File() int { return int(sq) & 7 }

// Rank returns sq's rank in [0,7] (rank1=0..rank8=7).
func (sq Square) Rank() int { return int(sq) >> 3 }

func MakeSquare(file, rank int) Square { return Square(rank*8 + file) }

func (sq Square) Bitboard() Bitboard {
	if sq == NoSquare {
		return 0
	}
	return Bitboard(1) << uint(sq)
}

var fileNames = "abcdefgh"

func (sq Square) String() string {
	if sq == NoSquare {
		return "-"
	}
	return fmt.Sprintf("%c%d", fileNames[sq.File()], sq.Rank()+1)
}

// SquareFromString parses an algebraic square ("e4"); "-" yields NoSquare.
func SquareFromString(s string) (Square, error) {
	if s == "-" || s == "" {
		return NoSquare, nil
	}
	if len(s) != 2 {
		return NoSquare, fmt.Errorf("position: invalid square %q", s)
	}
	file := int(s[0] - 'a')
	rank := int(s[1] - '1')
	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return NoSquare, fmt.Errorf("position: invalid square %q", s)
	}
	return MakeSquare(file, rank), nil
}

// Color is one of White or Black.
type Color uint8

const (
	White Color = iota
	Black
)

func (c Color) Flip() Color { return c ^ 1 }

func (c Color) String() string {
	if c == White {
		return "w"
	}
	return "b"
}

// PieceType is a colourless chess piece kind.
type PieceType uint8

const (
	Pawn PieceType = iota
	Knight
	Bishop
	Rook
	Queen
	King
	NoPieceType
)

// Piece is {None} union (Color x PieceType) encoded in one byte.
type Piece uint8

const (
	NoPiece Piece = iota
	WhitePawn
	WhiteKnight
	WhiteBishop
	WhiteRook
	WhiteQueen
	WhiteKing
	BlackPawn
	BlackKnight
	BlackBishop
	BlackRook
	BlackQueen
	BlackKing
)

// MakePiece combines a colour and piece type into a Piece.
func MakePiece(c Color, pt PieceType) Piece {
	if pt == NoPieceType {
		return NoPiece
	}
	if c == White {
		return Piece(WhitePawn + Piece(pt))
	}
	return Piece(BlackPawn + Piece(pt))
}

func (p Piece) Color() Color {
	if p == NoPiece {
		return White
	}
	if p < BlackPawn {
		return White
	}
	return Black
}

func (p Piece) Type() PieceType {
	if p == NoPiece {
		return NoPieceType
	}
	if p < BlackPawn {
		return PieceType(p - WhitePawn)
	}
	return PieceType(p - BlackPawn)
}

var pieceLetters = [13]byte{'.', 'P', 'N', 'B', 'R', 'Q', 'K', 'p', 'n', 'b', 'r', 'q', 'k'}

func (p Piece) Byte() byte { return pieceLetters[p] }

// PieceFromChar parses a FEN piece letter.
func PieceFromChar(c byte) (Piece, error) {
	for i, ch := range pieceLetters {
		if i == 0 {
			continue
		}
		if ch == c {
			return Piece(i), nil
		}
	}
	return NoPiece, fmt.Errorf("position: unknown piece letter %q", c)
}

// CastlingRights is a 4-bit mask {WhiteKingside, WhiteQueenside, BlackKingside, BlackQueenside}.
type CastlingRights uint8

const (
	WhiteKingside CastlingRights = 1 << iota
	WhiteQueenside
	BlackKingside
	BlackQueenside

	AllCastling = WhiteKingside | WhiteQueenside | BlackKingside | BlackQueenside
)

// Piece values in centipawns, used by SEE and MVV-LVA scoring only.
const (
	ValuePawn   = 100
	ValueKnight = 320
	ValueBishop = 330
	ValueRook   = 500
	ValueQueen  = 900
	ValueKing   = 10000
)

var pieceTypeValue = [7]int{ValuePawn, ValueKnight, ValueBishop, ValueRook, ValueQueen, ValueKing, 0}

// Value returns the indicative material value of a piece type.
func (pt PieceType) Value() int { return pieceTypeValue[pt] }
