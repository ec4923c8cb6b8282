package moves

import (
	"duelchess/src/base"
	"math/bits"
)

var (
	knightOffsets = [8][2]int{{2, 1}, {1, 2}, {-1, 2}, {-2, 1}, {-2, -1}, {-1, -2}, {1, -2}, {2, -1}}
	kingOffsets   = [8][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}, {1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	rookDirs      = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	bishopDirs    = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
)

// find king and return his square
func FindKing(b *base.Board, c base.Color) (base.Square, bool) {
	target := base.NewPiece(c, base.King)
	for i := 0; i < 64; i++ {
		if b.Mailbox[i] == target {
			return base.SquareFromIndex(i), true
		}
	}
	return base.Square{}, false
}

// KingInCheck reports whether the king of color c is attacked.
// A missing king is never in check.
func KingInCheck(b *base.Board, c base.Color) bool {
	sq, ok := FindKing(b, c)
	if !ok {
		return false
	}
	return IsAttacked(b, sq, c.Opponent())
}

// checks if the square is attacked by any piece of color by
func IsAttacked(b *base.Board, sq base.Square, by base.Color) bool {
	return attackedByPawn(b, sq, by) ||
		attackedByLeaper(b, sq, by, knightOffsets, base.Knight) ||
		attackedBySlider(b, sq, by, rookDirs, base.Rook) ||
		attackedBySlider(b, sq, by, bishopDirs, base.Bishop) ||
		attackedByLeaper(b, sq, by, kingOffsets, base.King)
}

func attackedByPawn(b *base.Board, sq base.Square, by base.Color) bool {
	// the attacking pawn stands one row behind the target from its own side
	row := sq.Row - pawnDirection(by)
	for _, dc := range []int{-1, 1} {
		if b.Get(base.Sq(row, sq.Col+dc)).Is(by, base.Pawn) {
			return true
		}
	}
	return false
}

func attackedByLeaper(b *base.Board, sq base.Square, by base.Color, offsets [8][2]int, kind base.Kind) bool {
	for _, o := range offsets {
		if b.Get(base.Sq(sq.Row+o[0], sq.Col+o[1])).Is(by, kind) {
			return true
		}
	}
	return false
}

// scan every ray outward and stop at the first occupied square
func attackedBySlider(b *base.Board, sq base.Square, by base.Color, dirs [4][2]int, kind base.Kind) bool {
	for _, d := range dirs {
		for step := 1; ; step++ {
			s := base.Sq(sq.Row+d[0]*step, sq.Col+d[1]*step)
			if !s.IsValid() {
				break
			}
			p := b.Get(s)
			if p.IsEmpty() {
				continue
			}
			if p.Color == by && (p.Kind == kind || p.Kind == base.Queen) {
				return true
			}
			break
		}
	}
	return false
}

// SquareSet is a set of squares, one bit per Square.Index.
type SquareSet uint64

func (s SquareSet) Has(sq base.Square) bool {
	return sq.IsValid() && s&(1<<uint(sq.Index())) != 0
}

func (s *SquareSet) Add(sq base.Square) {
	if sq.IsValid() {
		*s |= 1 << uint(sq.Index())
	}
}

func (s SquareSet) Count() int {
	return bits.OnesCount64(uint64(s))
}

func (s SquareSet) Squares() []base.Square {
	out := make([]base.Square, 0, s.Count())
	for v := uint64(s); v != 0; v &= v - 1 {
		out = append(out, base.SquareFromIndex(bits.TrailingZeros64(v)))
	}
	return out
}

// AttackedSquares returns every square attacked by color by, computed
// forward from the attackers so one pass serves any number of queries.
func AttackedSquares(b *base.Board, by base.Color) SquareSet {
	var set SquareSet
	for i := 0; i < 64; i++ {
		p := b.Mailbox[i]
		if p.IsEmpty() || p.Color != by {
			continue
		}
		from := base.SquareFromIndex(i)
		switch p.Kind {
		case base.Pawn:
			dir := pawnDirection(by)
			set.Add(base.Sq(from.Row+dir, from.Col-1))
			set.Add(base.Sq(from.Row+dir, from.Col+1))
		case base.Knight:
			addOffsets(&set, from, knightOffsets)
		case base.King:
			addOffsets(&set, from, kingOffsets)
		case base.Bishop:
			addRays(&set, b, from, bishopDirs)
		case base.Rook:
			addRays(&set, b, from, rookDirs)
		case base.Queen:
			addRays(&set, b, from, bishopDirs)
			addRays(&set, b, from, rookDirs)
		}
	}
	return set
}

func addOffsets(set *SquareSet, from base.Square, offsets [8][2]int) {
	for _, o := range offsets {
		set.Add(base.Sq(from.Row+o[0], from.Col+o[1]))
	}
}

func addRays(set *SquareSet, b *base.Board, from base.Square, dirs [4][2]int) {
	for _, d := range dirs {
		for step := 1; ; step++ {
			s := base.Sq(from.Row+d[0]*step, from.Col+d[1]*step)
			if !s.IsValid() {
				break
			}
			set.Add(s)
			if !b.IsEmpty(s) {
				break
			}
		}
	}
}
