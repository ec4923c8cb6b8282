package rules

import (
	"duelchess/src/base"
	"duelchess/src/logic/rules/moves"
)

// IsCheckmate reports whether c is in check and no pseudo-legal move of any
// of its pieces gets the king out of check. Every (piece, square) pair is
// tried, so a call costs at most 64x64 trial moves.
func IsCheckmate(b *base.Board, c base.Color) bool {
	if !IsInCheck(b, c) {
		return false
	}

	for i := 0; i < 64; i++ {
		from := base.SquareFromIndex(i)
		pc := b.Get(from)
		if pc.IsEmpty() || pc.Color != c {
			continue
		}
		for j := 0; j < 64; j++ {
			to := base.SquareFromIndex(j)
			if !moves.IsPseudoLegal(b, from, to) {
				continue
			}
			if !leavesKingInCheck(b, from, to) {
				return false // found a move that escapes check
			}
		}
	}
	return true
}
