package position

import "fmt"

// MoveFlag distinguishes the eight kinds of move the packed encoding supports.
type MoveFlag uint8

const (
	Quiet MoveFlag = iota
	DoublePush
	KingCastle
	QueenCastle
	Capture
	EnPassant
	Promotion
	PromotionCapture
)

// IsCaptureLike reports whether the flag denotes a capture of any kind.
func (f MoveFlag) IsCaptureLike() bool {
	return f == Capture || f == EnPassant || f == PromotionCapture
}

// IsPromotion reports whether the flag denotes a promoting move.
func (f MoveFlag) IsPromotion() bool {
	return f == Promotion || f == PromotionCapture
}

// Move is a packed 32-bit value: from[0..5], to[6..11], promotion-kind[12..15],
// flag[16..19]. A null move has value 0.
type Move uint32

const (
	moveFromShift  = 0
	moveToShift    = 6
	movePromoShift = 12
	moveFlagShift  = 16

	moveFromMask  = 0x3F
	moveToMask    = 0x3F
	movePromoMask = 0xF
	moveFlagMask  = 0xF
)

// NewMove packs a move from its fields. promotion is ignored unless flag
// denotes a promotion.
func NewMove(from, to Square, flag MoveFlag, promotion PieceType) Move {
	return Move(uint32(from)&moveFromMask |
		(uint32(to)&moveToMask)<<moveToShift |
		(uint32(promotion)&movePromoMask)<<movePromoShift |
		(uint32(flag)&moveFlagMask)<<moveFlagShift)
}

func (m Move) From() Square      { return Square((m >> moveFromShift) & moveFromMask) }
func (m Move) To() Square        { return Square((m >> moveToShift) & moveToMask) }
func (m Move) Promotion() PieceType { return PieceType((m >> movePromoShift) & movePromoMask) }
func (m Move) Flag() MoveFlag    { return MoveFlag((m >> moveFlagShift) & moveFlagMask) }
func (m Move) IsNull() bool      { return m == 0 }

func (m Move) IsCaptureLike() bool { return m.Flag().IsCaptureLike() }
func (m Move) IsPromotion() bool   { return m.Flag().IsPromotion() }

var promoLetters = [7]byte{0, 'n', 'b', 'r', 'q', 0, 0}

// UCI renders the move in coordinate notation: source + destination + an
// optional promotion letter. A null move renders as "0000".
func (m Move) UCI() string {
	if m.IsNull() {
		return "0000"
	}
	s := m.From().String() + m.To().String()
	if m.IsPromotion() {
		s += string(promoLetters[m.Promotion()])
	}
	return s
}

func (m Move) String() string { return m.UCI() }

// MaxMoves bounds the capacity of a MoveList: well above the maximum legal
// moves possible in any reachable chess position.
const MaxMoves = 256

// MoveList is a fixed-capacity, bounds-checked sequence of moves: no
// heap allocation on the hot move-generation path.
type MoveList struct {
	moves [MaxMoves]Move
	count int
}

func (ml *MoveList) Clear() { ml.count = 0 }

func (ml *MoveList) Len() int { return ml.count }

func (ml *MoveList) Add(m Move) {
	if ml.count >= MaxMoves {
		panic("position: move list overflow")
	}
	ml.moves[ml.count] = m
	ml.count++
}

func (ml *MoveList) At(i int) Move { return ml.moves[i] }

func (ml *MoveList) Set(i int, m Move) { ml.moves[i] = m }

func (ml *MoveList) Swap(i, j int) { ml.moves[i], ml.moves[j] = ml.moves[j], ml.moves[i] }

// Slice returns the populated prefix as a slice view (no copy); callers must
// not retain it past the next Clear/Add.
func (ml *MoveList) Slice() []Move { return ml.moves[:ml.count] }

// GenStage filters move generation output.
type GenStage uint8

const (
	StageCaptures GenStage = iota
	StageQuiets
	StageAll
)

func stageAccepts(stage GenStage, flag MoveFlag) bool {
	switch stage {
	case StageCaptures:
		return flag.IsCaptureLike()
	case StageQuiets:
		return !flag.IsCaptureLike()
	default:
		return true
	}
}

// Undo captures enough state to reverse one make() call.
type Undo struct {
	Key           uint64
	Move          Move
	Captured      Piece
	Castling      CastlingRights
	HalfmoveClock int
	EnPassant     Square
}

func (f MoveFlag) String() string {
	switch f {
	case Quiet:
		return "quiet"
	case DoublePush:
		return "double-push"
	case KingCastle:
		return "O-O"
	case QueenCastle:
		return "O-O-O"
	case Capture:
		return "capture"
	case EnPassant:
		return "en-passant"
	case Promotion:
		return "promotion"
	case PromotionCapture:
		return "promotion-capture"
	default:
		return fmt.Sprintf("flag(%d)", f)
	}
}
