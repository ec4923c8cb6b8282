package moves

import "duelchess/src/base"

// IsPathClear walks from one square toward another (both excluded) and
// reports whether every square in between is empty. The squares must share
// a row, a column or a diagonal.
func IsPathClear(b *base.Board, from, to base.Square) bool {
	dr := sign(to.Row - from.Row)
	dc := sign(to.Col - from.Col)

	for s := base.Sq(from.Row+dr, from.Col+dc); s != to; s = base.Sq(s.Row+dr, s.Col+dc) {
		if !s.IsValid() {
			// not colinear: the walk fell off the board
			return false
		}
		if !b.IsEmpty(s) {
			return false
		}
	}
	return true
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
