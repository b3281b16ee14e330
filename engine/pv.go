package engine

import "chess-engine/position"

// maxPVLength bounds a principal variation at the same ply cap the search
// stack uses; a fixed array avoids heap churn on every node that updates its
// parent's PV row.
const maxPVLength = maxPly

// PVLine is a bounded, fixed-capacity principal variation. Every node keeps
// a scratch line for its own alpha-improving moves; only the path back from
// an actual PV node ends up retained in the root's final line.
type PVLine struct {
	Moves [maxPVLength]position.Move
	Len   int
}

// Clear empties the line without releasing its backing array.
func (pv *PVLine) Clear() {
	pv.Len = 0
}

// Update makes move the line's first entry and appends child's moves after
// it, truncating if the combined length would exceed capacity.
func (pv *PVLine) Update(move position.Move, child PVLine) {
	pv.Moves[0] = move
	n := 1
	for i := 0; i < child.Len && n < maxPVLength; i++ {
		pv.Moves[n] = child.Moves[i]
		n++
	}
	pv.Len = n
}

// GetPVMove returns the line's first move, or a null move if the line is empty.
func (pv *PVLine) GetPVMove() position.Move {
	if pv.Len == 0 {
		return position.Move(0)
	}
	return pv.Moves[0]
}

// Clone returns a value copy, used when a root iteration's PV must survive
// past the next iteration overwriting the live line.
func (pv *PVLine) Clone() PVLine {
	return *pv
}

// String renders the line as space-separated UCI moves.
func (pv *PVLine) String() string {
	s := ""
	for i := 0; i < pv.Len; i++ {
		if i > 0 {
			s += " "
		}
		s += pv.Moves[i].UCI()
	}
	return s
}
