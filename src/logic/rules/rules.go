package rules

import (
	"duelchess/src/base"
	"duelchess/src/logic/rules/moves"
)

// IsInCheck is false when c has no king on the board
func IsInCheck(b *base.Board, c base.Color) bool {
	return moves.KingInCheck(b, c)
}

// IsLegal reports whether the move is pseudo-legal and does not leave the
// mover's king attacked. The board is left unchanged.
func IsLegal(b *base.Board, from, to base.Square) bool {
	if !moves.IsPseudoLegal(b, from, to) {
		return false
	}
	return !leavesKingInCheck(b, from, to)
}

// LegalDestinations lists every square the piece on from may legally move to.
func LegalDestinations(b *base.Board, from base.Square) []base.Square {
	var out []base.Square
	if b.Get(from).IsEmpty() {
		return out
	}
	for i := 0; i < 64; i++ {
		to := base.SquareFromIndex(i)
		if IsLegal(b, from, to) {
			out = append(out, to)
		}
	}
	return out
}

// return status: Normal, Check or Checkmate for color c
func StatusOf(b *base.Board, c base.Color) base.GameStatus {
	if !IsInCheck(b, c) {
		return base.Normal
	}
	if IsCheckmate(b, c) {
		return base.Checkmate
	}
	return base.Check
}

// leavesKingInCheck plays the move in a trial, tests the mover's king and
// reverts.
func leavesKingInCheck(b *base.Board, from, to base.Square) bool {
	c := b.Get(from).Color
	tx := moves.NewTrial(b)
	tx.Play(from, to)
	inCheck := IsInCheck(b, c)
	tx.Revert()
	return inCheck
}
