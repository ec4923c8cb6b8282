package moves

import "duelchess/src/base"

// White pawns move toward row 0, black pawns toward row 7.
func pawnDirection(c base.Color) int {
	if c == base.White {
		return -1
	}
	return 1
}

func pawnStartRow(c base.Color) int {
	if c == base.White {
		return 6
	}
	return 1
}

// IsPseudoLegal reports whether the piece on from may move to to by its
// movement pattern, ignoring the safety of its own king.
func IsPseudoLegal(b *base.Board, from, to base.Square) bool {
	return Validate(b, from, to) == base.ReasonNone
}

// Validate returns base.ReasonNone for a pseudo-legal move, otherwise the
// reason it is rejected.
func Validate(b *base.Board, from, to base.Square) base.Reason {
	pc := b.Get(from)
	if pc.IsEmpty() {
		return base.PieceNotFound
	}
	if !to.IsValid() {
		return base.ShapeInvalid
	}
	if target := b.Get(to); !target.IsEmpty() && target.Color == pc.Color {
		return base.OwnPieceBlocked
	}

	switch pc.Kind {
	case base.Pawn:
		return validatePawn(b, pc.Color, from, to)
	case base.Knight:
		return validateKnight(from, to)
	case base.Bishop:
		return validateSlider(b, from, to, false, true)
	case base.Rook:
		return validateSlider(b, from, to, true, false)
	case base.Queen:
		return validateSlider(b, from, to, true, true)
	case base.King:
		return validateKing(b, from, to)
	default:
		return base.PieceNotFound
	}
}

func validatePawn(b *base.Board, c base.Color, from, to base.Square) base.Reason {
	dir := pawnDirection(c)
	dr := to.Row - from.Row
	dc := to.Col - from.Col

	switch {
	case dc == 0 && dr == dir:
		if !b.IsEmpty(to) {
			return base.PathBlocked
		}
		return base.ReasonNone
	case dc == 0 && dr == 2*dir && from.Row == pawnStartRow(c):
		if !b.IsEmpty(base.Sq(from.Row+dir, from.Col)) || !b.IsEmpty(to) {
			return base.PathBlocked
		}
		return base.ReasonNone
	case abs(dc) == 1 && dr == dir:
		// diagonal steps only capture
		if b.IsEmpty(to) {
			return base.ShapeInvalid
		}
		return base.ReasonNone
	}
	return base.ShapeInvalid
}

func validateKnight(from, to base.Square) base.Reason {
	dr := abs(to.Row - from.Row)
	dc := abs(to.Col - from.Col)
	if (dr == 2 && dc == 1) || (dr == 1 && dc == 2) {
		return base.ReasonNone
	}
	return base.ShapeInvalid
}

// for bishops/rooks/queens
func validateSlider(b *base.Board, from, to base.Square, straight, diagonal bool) base.Reason {
	dr := abs(to.Row - from.Row)
	dc := abs(to.Col - from.Col)
	line := straight && (dr == 0 || dc == 0)
	diag := diagonal && dr == dc
	if !line && !diag {
		return base.ShapeInvalid
	}
	if !IsPathClear(b, from, to) {
		return base.PathBlocked
	}
	return base.ReasonNone
}

func validateKing(b *base.Board, from, to base.Square) base.Reason {
	dr := abs(to.Row - from.Row)
	dc := abs(to.Col - from.Col)
	if dr <= 1 && dc <= 1 {
		return base.ReasonNone
	}
	if dr == 0 && dc == 2 {
		if CanCastle(b, from, to) {
			return base.ReasonNone
		}
		return base.CastleBlocked
	}
	return base.ShapeInvalid
}
