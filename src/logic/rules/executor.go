package rules

import (
	"duelchess/src/base"
	"duelchess/src/logic/rules/moves"
)

// PromotionFunc answers which kind a pawn of color c that reached sq turns
// into. It is called synchronously while the move is being completed.
type PromotionFunc func(sq base.Square, c base.Color) base.Kind

// TryMove validates and applies a move. A move that leaves the mover's king
// attacked is reverted and reported as LeavesKingInCheck. When a pawn reaches
// its last row, choose picks the new kind; with a nil choose the outcome is
// marked PromotionPending and the caller finishes it with Promote.
func TryMove(b *base.Board, from, to base.Square, choose PromotionFunc) base.MoveOutcome {
	if r := moves.Validate(b, from, to); r != base.ReasonNone {
		return base.Illegal(from, to, r)
	}

	pc := b.Get(from)
	captured := b.Get(to)

	tx := moves.NewTrial(b)
	castled := tx.Play(from, to)
	if IsInCheck(b, pc.Color) {
		tx.Revert()
		return base.Illegal(from, to, base.LeavesKingInCheck)
	}
	tx.Commit()

	out := base.MoveOutcome{
		Applied:  true,
		From:     from,
		To:       to,
		Castled:  castled,
		Captured: captured,
	}
	if NeedsPromotion(b, to) {
		if choose == nil {
			out.PromotionPending = true
			return out
		}
		Promote(b, to, choose(to, pc.Color))
		out.Promoted = true
	}
	return out
}

// NeedsPromotion reports a pawn standing on its promotion row.
func NeedsPromotion(b *base.Board, sq base.Square) bool {
	pc := b.Get(sq)
	return pc.Kind == base.Pawn && sq.Row == base.PromotionRow(pc.Color)
}

// Promote rewrites the piece on sq to kind k keeping its color. Kinds a pawn
// cannot become default to a queen. It returns the kind placed.
func Promote(b *base.Board, sq base.Square, k base.Kind) base.Kind {
	pc := b.Get(sq)
	if !k.IsPromotable() {
		k = base.Queen
	}
	b.Set(sq, base.NewPiece(pc.Color, k))
	return k
}
