package moves

import "duelchess/src/base"

type saved struct {
	sq base.Square
	pc base.Piece
}

// Trial applies a move to a board while remembering the prior contents of
// every square it touches (at most four, for castling) and the castling
// rights, so Revert restores the board exactly.
type Trial struct {
	b       *base.Board
	casting base.StatusCasting
	saved   [4]saved
	n       int
}

func NewTrial(b *base.Board) Trial {
	return Trial{b: b, casting: b.Casting}
}

func (t *Trial) touched(sq base.Square) bool {
	for i := 0; i < t.n; i++ {
		if t.saved[i].sq == sq {
			return true
		}
	}
	return false
}

func (t *Trial) set(sq base.Square, p base.Piece) {
	if !t.touched(sq) {
		if t.n == len(t.saved) {
			panic("moves: trial touched more than four squares")
		}
		t.saved[t.n] = saved{sq: sq, pc: t.b.Get(sq)}
		t.n++
	}
	t.b.Set(sq, p)
}

// relocate moves whatever stands on from to to, overwriting to.
func (t *Trial) relocate(from, to base.Square) {
	pc := t.b.Get(from)
	t.set(from, base.EmptyPiece)
	t.set(to, pc)
}

// Play applies the move from -> to. A king moving two columns also moves
// the rook of that side next to it. Castling rights are revoked for any
// king move and for any move leaving or landing on a rook corner.
// Play does not check legality.
func (t *Trial) Play(from, to base.Square) (castled bool) {
	pc := t.b.Get(from)
	if IsCastleShape(pc, from, to) {
		rookFrom, rookTo := CastleRookSquares(from, to)
		t.relocate(from, to)
		t.relocate(rookFrom, rookTo)
		castled = true
	} else {
		t.relocate(from, to)
	}

	if pc.Kind == base.King {
		t.b.Casting.Revoke(pc.Color, true)
		t.b.Casting.Revoke(pc.Color, false)
	}
	revokeCorner(&t.b.Casting, from)
	revokeCorner(&t.b.Casting, to)
	return castled
}

// Revert restores every touched square and the castling rights.
func (t *Trial) Revert() {
	for i := t.n - 1; i >= 0; i-- {
		t.b.Set(t.saved[i].sq, t.saved[i].pc)
	}
	t.b.Casting = t.casting
	t.n = 0
}

// Commit keeps the applied changes.
func (t *Trial) Commit() {
	t.n = 0
	t.casting = t.b.Casting
}

func revokeCorner(sc *base.StatusCasting, sq base.Square) {
	for _, c := range []base.Color{base.White, base.Black} {
		home := base.HomeRow(c)
		if sq == base.Sq(home, 0) {
			sc.Revoke(c, false)
		}
		if sq == base.Sq(home, 7) {
			sc.Revoke(c, true)
		}
	}
}
