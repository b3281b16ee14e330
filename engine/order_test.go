package engine

import (
	"testing"

	"chess-engine/position"
)

func TestKillerTableInsertAndQuery(t *testing.T) {
	var k killerTable
	m1 := position.Move(11)
	m2 := position.Move(22)

	k.insert(3, m1)
	if !k.isKiller(3, m1) {
		t.Fatalf("expected m1 to be a killer at ply 3")
	}

	k.insert(3, m2)
	if !k.isKiller(3, m1) || !k.isKiller(3, m2) {
		t.Fatalf("expected both killers to be retained after a second insert")
	}

	m3 := position.Move(33)
	k.insert(3, m3)
	if k.isKiller(3, m1) {
		t.Fatalf("expected the oldest killer to be evicted")
	}
	if !k.isKiller(3, m2) || !k.isKiller(3, m3) {
		t.Fatalf("expected the two most recent killers to remain")
	}
}

func TestKillerTableReinsertPromotesSecondaryToPrimary(t *testing.T) {
	var k killerTable
	m1 := position.Move(11)
	m2 := position.Move(22)
	k.insert(0, m1)
	k.insert(0, m2)
	k.insert(0, m1)
	if k.moves[0][0] != m1 {
		t.Fatalf("re-inserting the secondary killer should move it back to the primary slot")
	}
}

func TestHistoryTablesOnCutoffRewardsAndPenalises(t *testing.T) {
	var h historyTables
	cutting := position.Move(1)
	tried := position.Move(2)

	h.onCutoff(position.White, cutting, position.Move(0), position.NoPiece, 4, []position.Move{tried, cutting})

	cuttingScore := h.quietScore(position.White, cutting, position.Move(0), position.NoPiece)
	triedScore := h.quietScore(position.White, tried, position.Move(0), position.NoPiece)

	if cuttingScore <= 0 {
		t.Fatalf("expected the cutting move's history score to be positive, got %d", cuttingScore)
	}
	if triedScore >= 0 {
		t.Fatalf("expected a failed quiet's history score to be penalised negative, got %d", triedScore)
	}
}

func TestClampHistoryStaysWithinBounds(t *testing.T) {
	if clampHistory(historyClamp+1000) != historyClamp {
		t.Fatalf("expected clamping at the upper bound")
	}
	if clampHistory(-historyClamp-1000) != -historyClamp {
		t.Fatalf("expected clamping at the lower bound")
	}
}

func TestSelectNextPicksHighestScoreAndBreaksTiesBySmallerMove(t *testing.T) {
	moves := []scoredMove{
		{move: position.Move(5), score: 10},
		{move: position.Move(3), score: 20},
		{move: position.Move(2), score: 20},
	}
	selectNext(moves, 0)
	if moves[0].score != 20 || moves[0].move != position.Move(2) {
		t.Fatalf("expected the tie to break toward the smaller move value, got %+v", moves[0])
	}
}

func TestNeedsSEESkipsClearlyWinningCaptures(t *testing.T) {
	if needsSEE(position.Queen, position.Pawn) {
		t.Fatalf("pawn takes queen should never need SEE (huge material gap)")
	}
	if !needsSEE(position.Pawn, position.Queen) {
		t.Fatalf("queen takes pawn should require SEE (narrow/negative gap)")
	}
}

func TestScoreMovesPrioritisesTTMove(t *testing.T) {
	p, err := position.FromFEN(position.StartFEN, true)
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}
	var ml position.MoveList
	p.GenerateLegal(&ml, position.StageAll)
	if ml.Len() == 0 {
		t.Fatalf("expected legal moves from the starting position")
	}
	tt := ml.At(0)

	var killers killerTable
	var history historyTables
	var see seeCache
	ctx := &orderingContext{pos: p, killers: &killers, history: &history, see: &see, ply: 0, ttMove: tt}

	scored := scoreMoves(ctx, &ml)
	for _, sm := range scored {
		if sm.move == tt {
			if sm.score != ttMoveBonus {
				t.Fatalf("expected the TT move to score ttMoveBonus, got %d", sm.score)
			}
		} else if sm.score >= ttMoveBonus {
			t.Fatalf("expected only the TT move to reach ttMoveBonus, got %d for move %v", sm.score, sm.move)
		}
	}
}
