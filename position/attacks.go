package position

import "math/bits"

// Precomputed leaper attacks.
var (
	knightAttacks [64]Bitboard
	kingAttacks   [64]Bitboard
	pawnAttackTbl [2][64]Bitboard
)

// Rook directions: 0=N,1=S,2=E,3=W. Bishop directions: 0=NE,1=NW,2=SE,3=SW.
var (
	rookRays   [64][4]Bitboard
	bishopRays [64][4]Bitboard
)

// Slider attack lookup, built with the software parallel-bit-extract/deposit
// scheme: table indexed by PEXT(occupancy, relevanceMask). This module does
// not assume a hardware PEXT instruction is reachable from portable Go, so it
// always uses the software scheme; the table itself is exactly the same data
// a hardware-PEXT or magic-multiply build would produce; see DESIGN.md for
// why only one concrete scheme is implemented.
var (
	rookMask     [64]Bitboard
	bishopMask   [64]Bitboard
	rookAttTable [64][]Bitboard
	bishopAttTbl [64][]Bitboard
)

func init() {
	initLeaperAttacks()
	initRays()
	initSliderTables()
}

func initLeaperAttacks() {
	knightOffsets := [8][2]int{{2, 1}, {2, -1}, {-2, 1}, {-2, -1}, {1, 2}, {1, -2}, {-1, 2}, {-1, -2}}
	kingOffsets := [8][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}, {1, 1}, {1, -1}, {-1, 1}, {-1, -1}}

	for sq := 0; sq < 64; sq++ {
		file, rank := sq%8, sq/8
		var kn, ki Bitboard
		for _, off := range knightOffsets {
			rf, ff := rank+off[0], file+off[1]
			if rf >= 0 && rf < 8 && ff >= 0 && ff < 8 {
				kn |= 1 << uint(rf*8+ff)
			}
		}
		for _, off := range kingOffsets {
			rf, ff := rank+off[0], file+off[1]
			if rf >= 0 && rf < 8 && ff >= 0 && ff < 8 {
				ki |= 1 << uint(rf*8+ff)
			}
		}
		knightAttacks[sq] = kn
		kingAttacks[sq] = ki

		if rank < 7 {
			if file > 0 {
				pawnAttackTbl[White][sq] |= 1 << uint((rank+1)*8+file-1)
			}
			if file < 7 {
				pawnAttackTbl[White][sq] |= 1 << uint((rank+1)*8+file+1)
			}
		}
		if rank > 0 {
			if file > 0 {
				pawnAttackTbl[Black][sq] |= 1 << uint((rank-1)*8+file-1)
			}
			if file < 7 {
				pawnAttackTbl[Black][sq] |= 1 << uint((rank-1)*8+file+1)
			}
		}
	}
}

func initRays() {
	for sq := 0; sq < 64; sq++ {
		file, rank := sq%8, sq/8

		var ray Bitboard
		for r := rank + 1; r < 8; r++ {
			ray |= 1 << uint(r*8+file)
		}
		rookRays[sq][0] = ray

		ray = 0
		for r := rank - 1; r >= 0; r-- {
			ray |= 1 << uint(r*8+file)
		}
		rookRays[sq][1] = ray

		ray = 0
		for f := file + 1; f < 8; f++ {
			ray |= 1 << uint(rank*8+f)
		}
		rookRays[sq][2] = ray

		ray = 0
		for f := file - 1; f >= 0; f-- {
			ray |= 1 << uint(rank*8+f)
		}
		rookRays[sq][3] = ray

		ray = 0
		for r, f := rank+1, file+1; r < 8 && f < 8; r, f = r+1, f+1 {
			ray |= 1 << uint(r*8+f)
		}
		bishopRays[sq][0] = ray

		ray = 0
		for r, f := rank+1, file-1; r < 8 && f >= 0; r, f = r+1, f-1 {
			ray |= 1 << uint(r*8+f)
		}
		bishopRays[sq][1] = ray

		ray = 0
		for r, f := rank-1, file+1; r >= 0 && f < 8; r, f = r-1, f+1 {
			ray |= 1 << uint(r*8+f)
		}
		bishopRays[sq][2] = ray

		ray = 0
		for r, f := rank-1, file-1; r >= 0 && f >= 0; r, f = r-1, f-1 {
			ray |= 1 << uint(r*8+f)
		}
		bishopRays[sq][3] = ray
	}
}

func initSliderTables() {
	for sq := 0; sq < 64; sq++ {
		file, rank := sq%8, sq/8

		var rm Bitboard
		for r := rank + 1; r < 7; r++ {
			rm |= 1 << uint(r*8+file)
		}
		for r := rank - 1; r > 0; r-- {
			rm |= 1 << uint(r*8+file)
		}
		for f := file + 1; f < 7; f++ {
			rm |= 1 << uint(rank*8+f)
		}
		for f := file - 1; f > 0; f-- {
			rm |= 1 << uint(rank*8+f)
		}
		rookMask[sq] = rm

		var bm Bitboard
		for r, f := rank+1, file+1; r < 7 && f < 7; r, f = r+1, f+1 {
			bm |= 1 << uint(r*8+f)
		}
		for r, f := rank+1, file-1; r < 7 && f > 0; r, f = r+1, f-1 {
			bm |= 1 << uint(r*8+f)
		}
		for r, f := rank-1, file+1; r > 0 && f < 7; r, f = r-1, f+1 {
			bm |= 1 << uint(r*8+f)
		}
		for r, f := rank-1, file-1; r > 0 && f > 0; r, f = r-1, f-1 {
			bm |= 1 << uint(r*8+f)
		}
		bishopMask[sq] = bm

		rBits := bits.OnesCount64(uint64(rm))
		bBits := bits.OnesCount64(uint64(bm))
		rookAttTable[sq] = make([]Bitboard, 1<<rBits)
		bishopAttTbl[sq] = make([]Bitboard, 1<<bBits)

		for idx := 0; idx < (1 << rBits); idx++ {
			occ := pdep(Bitboard(idx), rm)
			rookAttTable[sq][idx] = rayRookAttacks(Square(sq), occ)
		}
		for idx := 0; idx < (1 << bBits); idx++ {
			occ := pdep(Bitboard(idx), bm)
			bishopAttTbl[sq][idx] = rayBishopAttacks(Square(sq), occ)
		}
	}
}

// pext extracts the bits of x at the positions where mask has 1s, packed
// into the low bits of the result, in mask-bit order.
func pext(x, mask Bitboard) Bitboard {
	var res Bitboard
	var idx uint
	m := mask
	for m != 0 {
		lsb := m & -m
		bit := uint(bits.TrailingZeros64(uint64(lsb)))
		if (x>>bit)&1 != 0 {
			res |= 1 << idx
		}
		idx++
		m &= m - 1
	}
	return res
}

// pdep deposits the low bits of x into the positions of mask.
func pdep(x, mask Bitboard) Bitboard {
	var res Bitboard
	var idx uint
	m := mask
	for m != 0 {
		lsb := m & -m
		bit := uint(bits.TrailingZeros64(uint64(lsb)))
		if (x>>idx)&1 != 0 {
			res |= 1 << bit
		}
		idx++
		m &= m - 1
	}
	return res
}

// rayRookAttacks and rayBishopAttacks are the reference ray scanners: they
// walk outward in each relevant direction and stop at (and include) the
// first occupied square. The PEXT table is built from, and must always
// agree with, these functions.
func rayRookAttacks(sq Square, occ Bitboard) Bitboard {
	var attacks Bitboard
	for d := 0; d < 4; d++ {
		ray := rookRays[sq][d]
		blockers := ray & occ
		if blockers == 0 {
			attacks |= ray
			continue
		}
		var first Square
		if d == 0 || d == 2 {
			first = Square(bits.TrailingZeros64(uint64(blockers)))
			attacks |= ray &^ rookRays[first][d]
		} else {
			first = Square(63 - bits.LeadingZeros64(uint64(blockers)))
			attacks |= ray &^ rookRays[first][d]
		}
	}
	return attacks
}

func rayBishopAttacks(sq Square, occ Bitboard) Bitboard {
	var attacks Bitboard
	for d := 0; d < 4; d++ {
		ray := bishopRays[sq][d]
		blockers := ray & occ
		if blockers == 0 {
			attacks |= ray
			continue
		}
		var first Square
		if d == 0 || d == 1 {
			first = Square(bits.TrailingZeros64(uint64(blockers)))
		} else {
			first = Square(63 - bits.LeadingZeros64(uint64(blockers)))
		}
		attacks |= ray &^ bishopRays[first][d]
	}
	return attacks
}

func KnightAttacks(sq Square) Bitboard { return knightAttacks[sq] }
func KingAttacks(sq Square) Bitboard   { return kingAttacks[sq] }
func PawnAttacks(c Color, sq Square) Bitboard { return pawnAttackTbl[c][sq] }

func RookAttacks(sq Square, occ Bitboard) Bitboard {
	idx := pext(occ, rookMask[sq])
	return rookAttTable[sq][idx]
}

func BishopAttacks(sq Square, occ Bitboard) Bitboard {
	idx := pext(occ, bishopMask[sq])
	return bishopAttTbl[sq][idx]
}

func QueenAttacks(sq Square, occ Bitboard) Bitboard {
	return RookAttacks(sq, occ) | BishopAttacks(sq, occ)
}
