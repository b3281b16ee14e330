package engine

import (
	"testing"

	"chess-engine/position"
)

func TestTranspositionTableStoreAndProbeRoundTrip(t *testing.T) {
	tt := NewTranspositionTable(1)
	key := uint64(0xdeadbeefcafef00d)
	move := position.Move(1234)
	tt.Store(key, move, 55, 40, 6, BoundExact)

	entry, ok := tt.Probe(key)
	if !ok {
		t.Fatalf("expected to find the stored entry")
	}
	if entry.Move != move || entry.Score != 55 || entry.Depth != 6 || entry.Bound != BoundExact {
		t.Fatalf("unexpected entry: %+v", entry)
	}
}

func TestTranspositionTableMissReturnsFalse(t *testing.T) {
	tt := NewTranspositionTable(1)
	if _, ok := tt.Probe(0x1); ok {
		t.Fatalf("expected a miss on an empty table")
	}
}

func TestTranspositionTableClearRemovesEntries(t *testing.T) {
	tt := NewTranspositionTable(1)
	tt.Store(42, position.Move(1), 10, 10, 1, BoundExact)
	tt.Clear()
	if _, ok := tt.Probe(42); ok {
		t.Fatalf("expected Clear to remove all entries")
	}
	if tt.Hashfull() != 0 {
		t.Fatalf("expected 0 hashfull after Clear, got %d", tt.Hashfull())
	}
}

func TestTranspositionTableReplacesSameKeyInPlace(t *testing.T) {
	tt := NewTranspositionTable(1)
	tt.Store(7, position.Move(1), 10, 10, 3, BoundLower)
	tt.Store(7, position.Move(2), 20, 20, 5, BoundExact)

	entry, ok := tt.Probe(7)
	if !ok {
		t.Fatalf("expected to find the entry")
	}
	if entry.Move != position.Move(2) || entry.Depth != 5 || entry.Bound != BoundExact {
		t.Fatalf("expected the second store to overwrite the first, got %+v", entry)
	}
}

func TestAdjustMateScoreRoundTripsThroughStoreAndProbe(t *testing.T) {
	raw := mate - 3
	stored := AdjustMateScoreForStore(raw, 5)
	back := AdjustMateScoreForProbe(stored, 5)
	if back != raw {
		t.Fatalf("expected mate score to round trip: raw=%d stored=%d back=%d", raw, stored, back)
	}
}

func TestAdjustMateScoreLeavesNonMateScoresUntouched(t *testing.T) {
	raw := int32(120)
	if AdjustMateScoreForStore(raw, 5) != raw {
		t.Fatalf("expected ordinary scores to pass through Store adjustment unchanged")
	}
	if AdjustMateScoreForProbe(raw, 5) != raw {
		t.Fatalf("expected ordinary scores to pass through Probe adjustment unchanged")
	}
}

func TestTranspositionTableHashfullReflectsOccupancy(t *testing.T) {
	tt := NewTranspositionTable(1)
	if tt.Hashfull() != 0 {
		t.Fatalf("expected a fresh table to report 0 hashfull")
	}
	tt.Store(99, position.Move(1), 1, 1, 1, BoundExact)
	if tt.Hashfull() == 0 {
		t.Fatalf("expected hashfull to be nonzero after a store")
	}
}
