package engine

import "chess-engine/position"

// Score contributions (magnitudes per the ordering layer's composition).
const (
	ttMoveBonus       = 1_000_000
	captureBase       = 100_000
	badCaptureMalus   = 40_000
	promotionBase     = 90_000
	killerPrimary     = 80_000
	killerSecondary   = 60_000
	historyClamp      = 32_000
)

var promotionPieceBonus = [7]int32{
	position.Queen:  900,
	position.Rook:   500,
	position.Bishop: 330,
	position.Knight: 320,
}

// scoredMove pairs a generated move with its ordering score.
type scoredMove struct {
	move  position.Move
	score int32
}

// killerTable holds, per ply, the two most recent quiet moves that caused a
// beta cutoff there.
type killerTable struct {
	moves [maxPly][2]position.Move
}

func (k *killerTable) clear() {
	*k = killerTable{}
}

func (k *killerTable) insert(ply int, m position.Move) {
	if k.moves[ply][0] == m {
		return
	}
	k.moves[ply][1] = k.moves[ply][0]
	k.moves[ply][0] = m
}

func (k *killerTable) isKiller(ply int, m position.Move) bool {
	return k.moves[ply][0] == m || k.moves[ply][1] == m
}

// historyTables accumulates quiet-move-ordering scores from beta cutoffs:
// plain history by (colour, from, to), countermove-history keyed by the
// parent move, and continuation-history keyed by the piece that last
// occupied the parent's destination square.
type historyTables struct {
	history      [2][64][64]int32
	counter      [2][64][64]int32
	continuation [2][13][64]int32
}

func (h *historyTables) clear() {
	*h = historyTables{}
}

func clampHistory(v int32) int32 {
	if v > historyClamp {
		return historyClamp
	}
	if v < -historyClamp {
		return -historyClamp
	}
	return v
}

// onCutoff applies the positive bonus to the cutting quiet move and the
// penalty to every quiet move that was tried and failed at this node, per
// the beta-cutoff history update rule.
func (h *historyTables) onCutoff(side position.Color, move position.Move, parent position.Move, parentToPiece position.Piece, depth int, failedQuiets []position.Move) {
	bonus := int32(128 * depth * depth)
	penalty := int32(128 * depth)

	h.history[side][move.From()][move.To()] = clampHistory(h.history[side][move.From()][move.To()] + bonus)
	for _, fm := range failedQuiets {
		if fm == move {
			continue
		}
		h.history[side][fm.From()][fm.To()] = clampHistory(h.history[side][fm.From()][fm.To()] - penalty)
	}

	if !parent.IsNull() {
		h.counter[side][parent.From()][parent.To()] = clampHistory(h.counter[side][parent.From()][parent.To()] + bonus/2)
		h.continuation[side][parentToPiece][move.To()] = clampHistory(h.continuation[side][parentToPiece][move.To()] + bonus/2)
		for _, fm := range failedQuiets {
			if fm == move {
				continue
			}
			h.continuation[side][parentToPiece][fm.To()] = clampHistory(h.continuation[side][parentToPiece][fm.To()] - penalty/2)
		}
	}
}

func (h *historyTables) quietScore(side position.Color, move position.Move, parent position.Move, parentToPiece position.Piece) int32 {
	score := h.history[side][move.From()][move.To()]
	if !parent.IsNull() {
		if h.counter[side][parent.From()][parent.To()] != 0 {
			score += h.counter[side][parent.From()][parent.To()] / 2
		}
		score += h.continuation[side][parentToPiece][move.To()] / 2
	}
	return score
}

// orderingContext bundles everything scoreMoves needs: the position itself,
// the killer/history tables, the SEE cache, and the best move to prioritise
// (usually a TT hit).
type orderingContext struct {
	pos        *position.Position
	killers    *killerTable
	history    *historyTables
	see        *seeCache
	ply        int
	ttMove     position.Move
	parentMove position.Move
}

// scoreMoves assigns an ordering score to every move in ml, per the §4.5.1
// composition: TT move, capture/MVV-LVA with a SEE-based bad-capture malus,
// promotions, killers, and quiet history.
func scoreMoves(ctx *orderingContext, ml *position.MoveList) []scoredMove {
	out := make([]scoredMove, ml.Len())
	var parentToPiece position.Piece
	if !ctx.parentMove.IsNull() {
		parentToPiece = ctx.pos.PieceAt(ctx.parentMove.To())
	}

	for i := 0; i < ml.Len(); i++ {
		m := ml.At(i)
		var score int32

		switch {
		case m == ctx.ttMove && !ctx.ttMove.IsNull():
			score = ttMoveBonus
		case m.IsCaptureLike():
			victim := captureVictimType(ctx.pos, m)
			attacker := ctx.pos.PieceAt(m.From()).Type()
			score = captureBase + 16*int32(victim.Value()) - int32(attacker.Value())
			if needsSEE(victim, attacker) {
				if cachedSEE(ctx.see, ctx.pos, m) < 0 {
					score -= badCaptureMalus
				}
			}
			if m.IsPromotion() {
				score += promotionBase + promotionPieceBonus[m.Promotion()]
			}
		case m.IsPromotion():
			score = promotionBase + promotionPieceBonus[m.Promotion()]
		case ctx.killers.moves[ctx.ply][0] == m:
			score = killerPrimary
		case ctx.killers.moves[ctx.ply][1] == m:
			score = killerSecondary
		default:
			score = 2 * ctx.history.quietScore(ctx.pos.SideToMove(), m, ctx.parentMove, parentToPiece)
		}

		out[i] = scoredMove{move: m, score: score}
	}
	return out
}

// needsSEE reports whether a capture's material gap is narrow enough that it
// cannot be assumed winning outright and must be checked with SEE.
func needsSEE(victim, attacker position.PieceType) bool {
	return victim.Value()-attacker.Value() < winningCaptureMargin
}

func captureVictimType(p *position.Position, m position.Move) position.PieceType {
	if m.Flag() == position.EnPassant {
		return position.Pawn
	}
	return p.PieceAt(m.To()).Type()
}

// selectNext performs one step of selection sort: swap the highest-scoring
// unpicked move (ties broken by smaller raw move value) into position idx.
func selectNext(moves []scoredMove, idx int) {
	best := idx
	for i := idx + 1; i < len(moves); i++ {
		if moves[i].score > moves[best].score ||
			(moves[i].score == moves[best].score && moves[i].move < moves[best].move) {
			best = i
		}
	}
	moves[idx], moves[best] = moves[best], moves[idx]
}
