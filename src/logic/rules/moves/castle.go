package moves

import "duelchess/src/base"

// IsCastleShape reports a king moving two columns along its row.
func IsCastleShape(pc base.Piece, from, to base.Square) bool {
	return pc.Kind == base.King && from.Row == to.Row && abs(to.Col-from.Col) == 2
}

// CastleRookSquares returns where the rook of the castling side stands and
// where it lands, next to the king on the inner side.
func CastleRookSquares(kingFrom, kingTo base.Square) (rookFrom, rookTo base.Square) {
	if kingTo.Col > kingFrom.Col {
		return base.Sq(kingFrom.Row, 7), base.Sq(kingFrom.Row, kingTo.Col-1)
	}
	return base.Sq(kingFrom.Row, 0), base.Sq(kingFrom.Row, kingTo.Col+1)
}

// CanCastle checks every castling precondition except the safety of the
// destination square, which the post-move check covers.
func CanCastle(b *base.Board, from, to base.Square) bool {
	king := b.Get(from)
	if !IsCastleShape(king, from, to) {
		return false
	}
	c := king.Color
	if from != base.Sq(base.HomeRow(c), 4) {
		return false
	}
	kingside := to.Col > from.Col
	if !b.Casting.Allowed(c, kingside) {
		return false
	}
	if KingInCheck(b, c) {
		return false
	}

	rookFrom, _ := CastleRookSquares(from, to)
	if !b.Get(rookFrom).Is(c, base.Rook) {
		return false
	}
	if !IsPathClear(b, from, rookFrom) {
		return false
	}

	// the king may not pass through an attacked square
	transit := base.Sq(from.Row, from.Col+sign(to.Col-from.Col))
	tx := NewTrial(b)
	tx.relocate(from, transit)
	passesCheck := KingInCheck(b, c)
	tx.Revert()
	return !passesCheck
}
