package engine

import (
	"fmt"
	"math"
	"sync/atomic"
	"time"

	"golang.org/x/exp/slices"

	"chess-engine/config"
	"chess-engine/enginelog"
	"chess-engine/position"
)

// inf and mate are the core's mate-score encoding: any score with magnitude
// at or above mate-maxSearchPly denotes a forced mate, the distance to it
// carried in the gap between mate and the score's magnitude.
const (
	inf        int32 = 30000
	mate       int32 = inf - 512
	drawScore  int32 = 0
	maxSearchPly      = maxPly - 1
)

// Mate is the score magnitude denoting a forced mate, exported so front ends
// can turn an Info/Result score into a UCI "mate N" distance.
func Mate() int32 { return mate }

// Margins and reduction tables, grounded on the teacher's FutilityMargins/
// RFPMargins/RazoringMargins/LateMovePruningMargins/LMR table. The
// late-move-pruning margins and the LMR table are package-level vars; the
// razoring and futility knobs come from config.Limits per search call.
var lateMovePruningMargins = [9]int{0, 3, 5, 9, 14, 20, 27, 35, 44}

// aspirationWindow is the half-width of the aspiration window centred on the
// previous iteration's score, growing with depth so deeper iterations get a
// wider net.
const (
	aspirationBase  = 64
	aspirationScale = 16
)

func aspirationWindow(depth int) int32 {
	margin := aspirationBase + aspirationScale*max(depth-1, 0)
	if margin < 32 {
		margin = 32
	}
	if margin > int(inf) {
		margin = int(inf)
	}
	return int32(margin)
}

var lmrTable [64][64]int8

func init() {
	for d := 1; d < 64; d++ {
		for m := 1; m < 64; m++ {
			r := 0.0
			if d > 1 && m > 1 {
				r = 0.2 + math.Log(float64(d))*math.Log(float64(m))/2.4
			}
			lmrTable[d][m] = int8(r)
		}
	}
}

// Info is one iterative-deepening iteration's reportable snapshot, the
// core's analogue of a UCI "info" line without any protocol formatting.
type Info struct {
	Depth    int
	SelDepth int
	MultiPV  int
	Score    int32
	Mate     bool
	Nodes    uint64
	NPS      uint64
	TimeMs   int64
	PV       PVLine
	Hashfull int
}

// InfoFunc receives one Info snapshot per completed iterative-deepening
// iteration (and, for MultiPV > 1, one per ranked root move within it).
type InfoFunc func(Info)

// CurrMoveFunc is invoked once as each root move begins, with the move's
// 1-based index in selection order.
type CurrMoveFunc func(move position.Move, moveNumber int)

// LineResult is one MultiPV-ranked line's outcome at the final completed
// depth, the per-line entry spec's SearchResult.lines carries alongside the
// top-level best line.
type LineResult struct {
	BestMove position.Move
	Score    int32
	PV       PVLine
}

// Result is the final product of one top-level search call: the top
// (MultiPV rank 1) line's best move/score/PV, plus the full MultiPV ranking,
// search metadata, and the pruning/extension counters accumulated over every
// line searched.
type Result struct {
	BestMove   position.Move
	PonderMove position.Move
	Score      int32
	Depth      int
	SelDepth   int
	Nodes      uint64
	ElapsedMs  int64
	Hashfull   int
	Aborted    bool
	PV         PVLine
	Lines      []LineResult
	Cuts       CutStatistics
}

// Searcher owns every piece of mutable state one search call touches: the
// transposition table (shared across calls to preserve entries), and
// per-call move-ordering/search-stack state that every Search call resets. A
// Searcher must never be driven by two concurrent callers; engine/worker.go
// enforces that with a single dedicated goroutine.
type Searcher struct {
	tt       *TranspositionTable
	killers  killerTable
	history  historyTables
	see      seeCache
	stack    searchStack
	cutStats CutStatistics

	nodes    uint64
	selDepth int
	aborted  bool
	stop     atomic.Bool
	started  time.Time
	budget   TimeBudget
	limits   config.Limits

	// excludedRootMoves holds root moves already ranked by a prior MultiPV
	// line, so the next line's root search skips them instead of finding
	// the same best move again.
	excludedRootMoves []position.Move

	report   InfoFunc
	currmove CurrMoveFunc
}

// NewSearcher allocates a Searcher with a transposition table sized per
// limits.TTSizeMB. The table persists across successive Search calls.
func NewSearcher(limits config.Limits) *Searcher {
	return &Searcher{tt: NewTranspositionTable(limits.TTSizeMB)}
}

// Stop requests that an in-progress Search return as soon as possible.
func (s *Searcher) Stop() {
	s.stop.Store(true)
}

// Stopped reports whether the stop flag has been raised, for callers (the
// search worker's last_snapshot tuple) that need to know after the fact
// whether a completed Search was cut short.
func (s *Searcher) Stopped() bool {
	return s.stop.Load()
}

func (s *Searcher) timeUp() bool {
	if s.stop.Load() {
		return true
	}
	if s.budget.HardMs == 0 {
		return false
	}
	return time.Since(s.started).Milliseconds() >= s.budget.HardMs
}

func (s *Searcher) softTimeUp() bool {
	if s.budget.SoftMs == 0 {
		return false
	}
	return time.Since(s.started).Milliseconds() >= s.budget.SoftMs
}

// Search runs iterative deepening with aspiration windows from pos until the
// time budget or requested depth is exhausted, reporting one Info per
// completed iteration through report (which may be nil) and one CurrMoveFunc
// call per root move through currmove (which may also be nil). When
// limits.MultiPV > 1, it ranks that many distinct root lines: each line is
// a full iterative-deepening pass with the previous lines' root moves
// excluded, sharing the same node count and time budget. Search returns the
// top-ranked (MultiPV 1) line as Result, with every line's outcome in
// Result.Lines and the pruning/extension counters accumulated across all of
// them in Result.Cuts.
func (s *Searcher) Search(pos *position.Position, limits config.Limits, report InfoFunc, currmove CurrMoveFunc) Result {
	s.limits = limits
	s.report = report
	s.currmove = currmove
	s.nodes = 0
	s.selDepth = 0
	s.aborted = false
	s.stop.Store(false)
	s.started = time.Now()
	s.budget = computeTimeBudget(limits, pos.SideToMove())
	s.cutStats.reset()
	s.history.clear()

	multiPV := limits.MultiPV
	if multiPV < 1 {
		multiPV = 1
	}

	s.excludedRootMoves = s.excludedRootMoves[:0]
	var top Result
	var lines []LineResult
	for rank := 1; rank <= multiPV; rank++ {
		line := s.searchOneLine(pos, limits, rank)
		if line.BestMove.IsNull() {
			break
		}
		lines = append(lines, LineResult{BestMove: line.BestMove, Score: line.Score, PV: line.PV})
		if rank == 1 {
			top = line
		}
		s.excludedRootMoves = append(s.excludedRootMoves, line.BestMove)
		if s.timeUp() {
			break
		}
	}
	s.excludedRootMoves = s.excludedRootMoves[:0]

	top.Lines = lines
	top.SelDepth = s.selDepth
	top.ElapsedMs = time.Since(s.started).Milliseconds()
	top.Hashfull = s.tt.Hashfull()
	top.Aborted = s.aborted || s.stop.Load()
	top.Cuts = s.cutStats

	enginelog.Tracef(enginelog.TopicSearch, "search done depth=%d nodes=%d best=%s", top.Depth, top.Nodes, top.BestMove)
	s.cutStats.dump()
	return top
}

// searchOneLine runs one full iterative-deepening pass for the multiPvRank'th
// root line, honouring s.excludedRootMoves for every higher-ranked line
// already found.
func (s *Searcher) searchOneLine(pos *position.Position, limits config.Limits, multiPVRank int) Result {
	s.killers.clear()
	s.see.clear()
	s.stack.prepareRoot()

	maxDepth := int(limits.Depth)
	if maxDepth <= 0 {
		maxDepth = maxSearchPly
	}

	var best Result
	var pv PVLine
	var prevScore int32
	alpha, beta := -inf, inf

	for depth := 1; depth <= maxDepth; depth++ {
		s.tt.NewGeneration()

		var window int32
		if depth >= 2 {
			window = aspirationWindow(depth)
			alpha = prevScore - window
			beta = prevScore + window
			if alpha < -inf {
				alpha = -inf
			}
			if beta > inf {
				beta = inf
			}
		} else {
			window = aspirationWindow(2)
			alpha, beta = -inf, inf
		}

		var score int32
		for {
			pv.Clear()
			score = s.alphabeta(pos, depth, 0, alpha, beta, &pv, true, false, true, position.Move(0))
			if s.timeUp() && depth > 1 {
				break
			}
			if score <= alpha {
				enginelog.Tracef(enginelog.TopicSearch, "aspiration fail-low depth=%d multipv=%d score=%d alpha=%d beta=%d", depth, multiPVRank, score, alpha, beta)
				window *= 2
				alpha = score - window
				if alpha < -inf {
					alpha = -inf
				}
				continue
			}
			if score >= beta {
				enginelog.Tracef(enginelog.TopicSearch, "aspiration fail-high depth=%d multipv=%d score=%d alpha=%d beta=%d", depth, multiPVRank, score, alpha, beta)
				window *= 2
				beta = score + window
				if beta > inf {
					beta = inf
				}
				continue
			}
			break
		}

		if s.timeUp() && depth > 1 && best.Depth > 0 {
			break
		}

		prevScore = score
		if pv.Len > 0 {
			best = Result{BestMove: pv.Moves[0], Score: score, Depth: depth, Nodes: s.nodes, PV: pv.Clone()}
			if pv.Len > 1 {
				best.PonderMove = pv.Moves[1]
			}
		}

		if s.report != nil {
			elapsed := time.Since(s.started).Milliseconds()
			nps := uint64(0)
			if elapsed > 0 {
				nps = s.nodes * 1000 / uint64(elapsed)
			}
			s.report(Info{
				Depth: depth, SelDepth: s.selDepth, MultiPV: multiPVRank, Score: score,
				Mate: score >= mate-int32(maxSearchPly) || score <= -(mate - int32(maxSearchPly)),
				Nodes: s.nodes, NPS: nps, TimeMs: elapsed,
				PV: best.PV, Hashfull: s.tt.Hashfull(),
			})
		}

		if abs32(score) >= mate-int32(maxSearchPly) {
			break
		}
		if s.softTimeUp() {
			break
		}
		if s.timeUp() {
			break
		}
	}

	return best
}

// alphabeta is the negamax PVS core, grounded on the teacher's alphabeta in
// the original search.go but rebuilt against the position package's API and
// the spec's exact TT/SEE/time-budget machinery. allowNull disables the
// null-move rule for this node only, used by the null-move verification
// re-search so it cannot prune using the same trick it is verifying.
// excluded, when non-null, is skipped in the move loop — the singular
// extension probe's way of searching "every move but the TT move".
func (s *Searcher) alphabeta(pos *position.Position, depth, ply int, alpha, beta int32, pv *PVLine, pvNode bool, cutNode bool, allowNull bool, excluded position.Move) int32 {
	s.nodes++
	if s.nodes&2047 == 0 && s.timeUp() {
		s.aborted = true
		return 0
	}

	isRoot := ply == 0
	if ply+1 > s.selDepth {
		s.selDepth = ply + 1
	}

	if s.limits.Debug {
		if ok, diag := pos.IsSane(); !ok {
			panic(fmt.Sprintf("engine: position invariant violated at ply %d: %s", ply, diag))
		}
	}

	if ply >= maxSearchPly {
		return Evaluate(pos)
	}

	inCheck := pos.InCheck(pos.SideToMove())

	if depth <= 0 {
		return s.quiescence(pos, ply, alpha, beta, pv)
	}

	key := pos.Zobrist()
	var ttMove position.Move
	var ttHit ttEntry
	var haveTTHit bool
	if entry, ok := s.tt.Probe(key); ok {
		ttMove = entry.Move
		ttHit = entry
		haveTTHit = true
		if int(entry.Depth) >= depth && !isRoot && !pvNode && excluded.IsNull() {
			score := AdjustMateScoreForProbe(entry.Score, ply)
			switch entry.Bound {
			case BoundExact:
				s.cutStats.TTCutoffs++
				return score
			case BoundLower:
				if score >= beta {
					s.cutStats.TTCutoffs++
					return score
				}
			case BoundUpper:
				if score <= alpha {
					s.cutStats.TTCutoffs++
					return score
				}
			}
		}
	}

	var ml position.MoveList
	pos.GenerateLegal(&ml, position.StageAll)
	if ml.Len() == 0 {
		if inCheck {
			return -mate + int32(ply)
		}
		return drawScore
	}

	staticEval := Evaluate(pos)
	s.stack.setStaticEval(ply, staticEval)
	improving := s.stack.isImproving(ply)

	// Static futility pruning / reverse futility pruning.
	if !inCheck && !pvNode && !isRoot && depth <= 7 && abs32(beta) < mate-int32(maxSearchPly) {
		margin := int32(s.limits.StaticFutilityMargin * depth)
		if !improving {
			margin -= 50
		}
		if s.limits.EnableStaticFutility && staticEval-margin >= beta {
			s.cutStats.StaticNullCutoffs++
			return staticEval - margin
		}
	}

	// Razoring.
	if s.limits.EnableRazoring && !inCheck && !pvNode && !isRoot && depth <= s.limits.RazorDepth+1 {
		margin := int32(s.limits.RazorMargin)
		if staticEval+margin < alpha {
			var qpv PVLine
			score := s.quiescence(pos, ply, alpha-margin, alpha-margin+1, &qpv)
			if score < alpha {
				s.cutStats.RazoringCutoffs++
				return score
			}
		}
	}

	sideHasNonPawnMaterial := (pos.Pieces(pos.SideToMove(), position.Knight) |
		pos.Pieces(pos.SideToMove(), position.Bishop) |
		pos.Pieces(pos.SideToMove(), position.Rook) |
		pos.Pieces(pos.SideToMove(), position.Queen)) != 0

	// Null-move pruning.
	if s.limits.EnableNullMove && allowNull && !inCheck && !pvNode && !isRoot && sideHasNonPawnMaterial &&
		depth >= s.limits.NullMinDepth && staticEval >= beta-int32(s.limits.NullEvalMargin) {
		var undo position.Undo
		pos.MakeNull(&undo)
		s.stack.prepareChild(ply, ply+1, position.Move(0), position.NoPieceType)

		r := s.limits.NullBaseReduction + depth/s.limits.NullDepthScale
		if r > depth-1 {
			r = depth - 1
		}
		if r < 1 {
			r = 1
		}
		reducedDepth := depth - 1 - r
		var npv PVLine
		score := -s.alphabeta(pos, reducedDepth, ply+1, -beta, -beta+1, &npv, false, !cutNode, true, position.Move(0))
		pos.UnmakeNull(&undo)

		if score >= beta {
			if score >= mate-int32(maxSearchPly) {
				score = beta
			}

			// Verification: a null-move cutoff can be wrong in zugzwang
			// positions, where the side to move has no safe waiting move.
			// Re-search the real position at the same reduced depth with a
			// null window just under beta and the null-move rule disabled
			// for this node; only trust the cutoff if that also fails high.
			verified := true
			if s.limits.EnableNullVerification && depth >= s.limits.NullVerifyDepth {
				var vpv PVLine
				verifyScore := s.alphabeta(pos, reducedDepth, ply, beta-1, beta, &vpv, false, cutNode, false, excluded)
				verified = verifyScore >= beta
			}

			if verified {
				s.cutStats.NullMoveCutoffs++
				return score
			}
		}
	}

	// Multi-cut pruning: if several of the first candidate moves, searched
	// at a reduced depth, already refute beta, the node itself is pruned.
	if s.limits.EnableMultiCut && !inCheck && !pvNode && !isRoot && depth >= s.limits.MultiCutMinDepth {
		ctx := &orderingContext{pos: pos, killers: &s.killers, history: &s.history, see: &s.see, ply: ply, ttMove: ttMove, parentMove: s.stack.frame(ply).parentMove}
		scored := scoreMoves(ctx, &ml)
		cuts := 0
		candidates := s.limits.MultiCutCandidates
		if candidates > len(scored) {
			candidates = len(scored)
		}
		for i := 0; i < candidates; i++ {
			selectNext(scored, i)
			m := scored[i].move
			var undo position.Undo
			captured := pos.PieceAt(m.To()).Type()
			pos.Make(m, &undo)
			s.stack.prepareChild(ply, ply+1, m, captured)
			var childPV PVLine
			score := -s.alphabeta(pos, depth-1-s.limits.MultiCutReduction, ply+1, -beta, -beta+1, &childPV, false, true, true, position.Move(0))
			pos.Unmake(m, &undo)
			if score >= beta {
				cuts++
				if cuts >= s.limits.MultiCutThreshold {
					s.cutStats.MultiCutPrunes++
					return beta
				}
			}
		}
	}

	ctx := &orderingContext{pos: pos, killers: &s.killers, history: &s.history, see: &s.see, ply: ply, ttMove: ttMove, parentMove: s.stack.frame(ply).parentMove}
	scored := scoreMoves(ctx, &ml)

	parentMove := s.stack.frame(ply).parentMove
	parentToPiece := position.NoPiece
	if !parentMove.IsNull() {
		parentToPiece = pos.PieceAt(parentMove.To())
	}

	// Singular extension probe: when the TT move is backed by a deep enough
	// lower-bound entry, test whether every other move fails to reach
	// singular_beta at reduced depth. If none does, the TT move is the only
	// one keeping the score this high, and its own branch earns +1 depth.
	var singularMove position.Move
	if s.limits.EnableSingularExtension && !isRoot && excluded.IsNull() &&
		!ttMove.IsNull() && depth >= s.limits.SingularDepth && haveTTHit &&
		ttHit.Bound == BoundLower &&
		int(ttHit.Depth) >= depth-s.limits.SingularDepthMargin &&
		abs32(ttHit.Score) < mate-int32(maxSearchPly) {

		margin := int32(s.limits.SingularMargin)
		if s.stack.frame(ply).captured != position.NoPieceType {
			margin -= margin / 4
		}
		if !improving {
			margin -= margin / 4
		}
		singularBeta := AdjustMateScoreForProbe(ttHit.Score, ply) - margin

		var spv PVLine
		singularScore := s.alphabeta(pos, (depth-1)/2, ply, singularBeta-1, singularBeta, &spv, false, cutNode, true, ttMove)
		if singularScore < singularBeta {
			singularMove = ttMove
			s.cutStats.SingularExtensions++
		}
	}

	var bestMove position.Move
	bestScore := -inf
	origAlpha := alpha
	legalMoves := 0
	var quietsTried []position.Move
	var childPV PVLine

	for i := 0; i < len(scored); i++ {
		selectNext(scored, i)
		m := scored[i].move
		if isRoot && slices.Contains(s.excludedRootMoves, m) {
			continue
		}
		if !excluded.IsNull() && m == excluded {
			continue
		}
		isCapture := m.IsCaptureLike()
		isPromotion := m.IsPromotion()

		var undo position.Undo
		captured := pos.PieceAt(m.To()).Type()
		if m.Flag() == position.EnPassant {
			captured = position.Pawn
		}
		pos.Make(m, &undo)
		givesCheck := pos.InCheck(pos.SideToMove())
		legalMoves++

		if isRoot && s.currmove != nil {
			s.currmove(m, legalMoves)
		}

		tactical := isCapture || isPromotion || givesCheck || inCheck

		// Late move pruning.
		if depth <= 8 && !pvNode && !isRoot && !tactical && legalMoves > 1 {
			margin := lateMovePruningMargins[min(depth, len(lateMovePruningMargins)-1)]
			if !improving {
				margin = margin * 2 / 3
			}
			if margin > 0 && legalMoves > margin {
				pos.Unmake(m, &undo)
				s.cutStats.LateMovePrunes++
				continue
			}
		}

		// Futility pruning.
		if depth <= 7 && !pvNode && !isRoot && !tactical && abs32(alpha) < mate-int32(maxSearchPly) {
			margin := int32(s.limits.StaticFutilityMargin * depth / 2)
			if !improving {
				margin -= 50
			}
			if staticEval+margin <= alpha {
				pos.Unmake(m, &undo)
				s.cutStats.FutilityPrunes++
				continue
			}
		}

		if !isCapture {
			quietsTried = append(quietsTried, m)
		}

		extension := 0
		if !singularMove.IsNull() && m == singularMove {
			extension++
		}
		if s.limits.EnableCheckExtension && givesCheck && depth <= s.limits.CheckExtensionDepth {
			extension++
		} else if s.limits.EnableRecaptureExtension && isCapture && m.To() == parentMove.To() && depth <= s.limits.RecaptureExtensionDepth {
			extension++
		}
		if extension > 2 {
			extension = 2
		}

		s.stack.prepareChild(ply, ply+1, m, captured)

		var score int32
		if legalMoves == 1 {
			childPV.Clear()
			score = -s.alphabeta(pos, depth-1+extension, ply+1, -beta, -alpha, &childPV, pvNode, false, true, position.Move(0))
		} else {
			reduction := 0
			if depth >= s.limits.LMRMinDepth && legalMoves >= s.limits.LMRMinMove && !tactical {
				reduction = int(lmrTable[min(depth, 63)][min(legalMoves, 63)])
				hist := s.history.quietScore(pos.SideToMove().Flip(), m, parentMove, parentToPiece)
				if hist > 4000 {
					reduction--
				} else if hist < -4000 {
					reduction++
				}
				if cutNode {
					reduction++
				}
				if reduction < 0 {
					reduction = 0
				}
				if reduction > depth-1 {
					reduction = depth - 1
				}
			}

			childPV.Clear()
			score = -s.alphabeta(pos, depth-1+extension-reduction, ply+1, -alpha-1, -alpha, &childPV, false, !cutNode, true, position.Move(0))
			if score > alpha && reduction > 0 {
				childPV.Clear()
				score = -s.alphabeta(pos, depth-1+extension, ply+1, -alpha-1, -alpha, &childPV, false, !cutNode, true, position.Move(0))
			}
			if score > alpha && score < beta {
				childPV.Clear()
				score = -s.alphabeta(pos, depth-1+extension, ply+1, -beta, -alpha, &childPV, true, false, true, position.Move(0))
			}
		}

		pos.Unmake(m, &undo)

		if score > bestScore {
			bestScore = score
			bestMove = m
		}

		if score >= beta {
			s.cutStats.BetaCutoffs++
			if !isCapture {
				s.killers.insert(ply, m)
				s.history.onCutoff(pos.SideToMove(), m, parentMove, parentToPiece, depth, quietsTried)
			}
			bestScore = score
			bestMove = m
			break
		}

		if score > alpha {
			alpha = score
			pv.Update(m, childPV)
		}
	}

	var bound Bound
	switch {
	case bestScore <= origAlpha:
		bound = BoundUpper
	case bestScore >= beta:
		bound = BoundLower
	default:
		bound = BoundExact
	}
	if !s.timeUp() && excluded.IsNull() {
		s.tt.Store(key, bestMove, AdjustMateScoreForStore(bestScore, ply), staticEval, int8(depth), bound)
	}

	return bestScore
}

// quiescence extends the search along captures (and all evasions while in
// check) until the position is quiet, per the spec's stand-pat + SEE/delta
// pruning quiescence search.
func (s *Searcher) quiescence(pos *position.Position, ply int, alpha, beta int32, pv *PVLine) int32 {
	s.nodes++
	if s.nodes&2047 == 0 && s.timeUp() {
		s.aborted = true
		return 0
	}
	if ply+1 > s.selDepth {
		s.selDepth = ply + 1
	}
	if ply >= maxSearchPly {
		return Evaluate(pos)
	}

	inCheck := pos.InCheck(pos.SideToMove())
	standPat := Evaluate(pos)

	if !inCheck {
		if standPat >= beta {
			s.cutStats.QStandPatCutoffs++
			return standPat
		}
		if standPat > alpha {
			alpha = standPat
		}
	}

	bestScore := standPat
	if inCheck {
		bestScore = -inf
	}

	var ml position.MoveList
	if inCheck {
		pos.GenerateLegal(&ml, position.StageAll)
	} else {
		pos.GenerateLegal(&ml, position.StageCaptures)
	}
	if ml.Len() == 0 {
		if inCheck {
			return -mate + int32(ply)
		}
		return bestScore
	}

	ctx := &orderingContext{pos: pos, killers: &s.killers, history: &s.history, see: &s.see, ply: ply, parentMove: s.stack.frame(ply).parentMove}
	scored := scoreMoves(ctx, &ml)

	var childPV PVLine
	for i := 0; i < len(scored); i++ {
		selectNext(scored, i)
		m := scored[i].move

		if !inCheck {
			if cachedSEE(&s.see, pos, m) < 0 {
				continue
			}
			victim := captureVictimType(pos, m)
			gain := int32(victim.Value())
			if m.IsPromotion() {
				gain += int32(m.Promotion().Value() - position.Pawn.Value())
			}
			if standPat+gain+200 < alpha {
				continue
			}
		}

		var undo position.Undo
		captured := pos.PieceAt(m.To()).Type()
		if m.Flag() == position.EnPassant {
			captured = position.Pawn
		}
		pos.Make(m, &undo)
		s.stack.prepareChild(ply, ply+1, m, captured)
		childPV.Clear()
		score := -s.quiescence(pos, ply+1, -beta, -alpha, &childPV)
		pos.Unmake(m, &undo)

		if score > bestScore {
			bestScore = score
		}
		if score >= beta {
			s.cutStats.QBetaCutoffs++
			return score
		}
		if score > alpha {
			alpha = score
			pv.Update(m, childPV)
		}
	}

	return bestScore
}
