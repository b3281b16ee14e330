package position

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// StartFEN is the standard chess starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// FromFEN parses a FEN string (six fields; the last two are optional and
// default to 0 and 1). In strict mode unknown piece or castling letters are
// errors; in lenient mode unknown castling letters are dropped and an
// invalid en-passant square is cleared rather than rejected.
func FromFEN(fen string, strict bool) (*Position, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return nil, errors.Errorf("position: FEN needs at least 4 fields, got %d", len(fields))
	}
	for len(fields) < 6 {
		if len(fields) == 4 {
			fields = append(fields, "0")
		} else {
			fields = append(fields, "1")
		}
	}

	p := NewEmpty()

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return nil, errors.Errorf("position: FEN placement needs 8 ranks, got %d", len(ranks))
	}
	for i, rankStr := range ranks {
		rank := 7 - i
		file := 0
		for _, ch := range rankStr {
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}
			if file >= 8 {
				return nil, errors.Errorf("position: FEN rank %d overflows files", rank+1)
			}
			pc, err := PieceFromChar(byte(ch))
			if err != nil {
				if strict {
					return nil, errors.Wrap(err, "position: FEN placement")
				}
				file++
				continue
			}
			p.addPiece(MakeSquare(file, rank), pc)
			file++
		}
		if file != 8 {
			return nil, errors.Errorf("position: FEN rank %d has %d files, want 8", rank+1, file)
		}
	}

	switch fields[1] {
	case "w":
		p.sideToMove = White
	case "b":
		p.sideToMove = Black
	default:
		return nil, errors.Errorf("position: FEN side to move %q invalid", fields[1])
	}

	var castling CastlingRights
	if fields[2] != "-" {
		for _, ch := range fields[2] {
			switch ch {
			case 'K':
				castling |= WhiteKingside
			case 'Q':
				castling |= WhiteQueenside
			case 'k':
				castling |= BlackKingside
			case 'q':
				castling |= BlackQueenside
			default:
				if strict {
					return nil, errors.Errorf("position: FEN castling letter %q invalid", ch)
				}
			}
		}
	}
	p.castling = castling

	ep, err := SquareFromString(fields[3])
	if err != nil {
		if strict {
			return nil, errors.Wrap(err, "position: FEN en-passant")
		}
		ep = NoSquare
	}
	if ep != NoSquare {
		rank := ep.Rank()
		if rank != 2 && rank != 5 {
			if strict {
				return nil, errors.Errorf("position: FEN en-passant square %s not on rank 3/6", ep)
			}
			ep = NoSquare
		}
	}
	p.enPassant = ep

	half, err := strconv.Atoi(fields[4])
	if err != nil {
		return nil, errors.Wrap(err, "position: FEN halfmove clock")
	}
	p.halfmoveClock = half

	full, err := strconv.Atoi(fields[5])
	if err != nil {
		return nil, errors.Wrap(err, "position: FEN fullmove number")
	}
	if full < 1 {
		full = 1
	}
	p.fullmoveNumber = full

	p.zobrist = p.ComputeZobrist()
	return p, nil
}

// ToFEN emits the canonical six-field FEN: placement from rank 8 down to
// rank 1 with run-length-encoded empty squares, side to move, castling
// rights in K,Q,k,q order (or "-"), en-passant target or "-", then the two
// move counters.
func (p *Position) ToFEN() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			pc := p.squares[MakeSquare(file, rank)]
			if pc == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(pc.Byte())
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
	sb.WriteByte(' ')
	sb.WriteString(p.sideToMove.String())
	sb.WriteByte(' ')
	if p.castling == 0 {
		sb.WriteByte('-')
	} else {
		if p.castling&WhiteKingside != 0 {
			sb.WriteByte('K')
		}
		if p.castling&WhiteQueenside != 0 {
			sb.WriteByte('Q')
		}
		if p.castling&BlackKingside != 0 {
			sb.WriteByte('k')
		}
		if p.castling&BlackQueenside != 0 {
			sb.WriteByte('q')
		}
	}
	sb.WriteByte(' ')
	sb.WriteString(p.enPassant.String())
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.halfmoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.fullmoveNumber))
	return sb.String()
}
