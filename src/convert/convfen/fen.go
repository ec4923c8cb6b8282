package convfen

import (
	"duelchess/src/base"
	"fmt"
	"strconv"
	"strings"

	"github.com/notnil/chess"
)

// ConvertFENToBoard parses a FEN record into a board and the side to move.
// En passant and move counters are accepted but not kept.
func ConvertFENToBoard(fen string) (*base.Board, base.Color, error) {
	opt, err := chess.FEN(strings.TrimSpace(fen))
	if err != nil {
		return nil, base.White, fmt.Errorf("error parse FEN: %w", err)
	}
	pos := chess.NewGame(opt).Position()

	board := &base.Board{}
	for sq, p := range pos.Board().SquareMap() {
		pc := pieceFromChess(p)
		if pc.IsEmpty() {
			continue
		}
		board.Set(squareFromChess(sq), pc)
	}

	cr := pos.CastleRights()
	board.Casting = base.StatusCasting{
		WK: cr.CanCastle(chess.White, chess.KingSide),
		WQ: cr.CanCastle(chess.White, chess.QueenSide),
		BK: cr.CanCastle(chess.Black, chess.KingSide),
		BQ: cr.CanCastle(chess.Black, chess.QueenSide),
	}

	toMove := base.White
	if pos.Turn() == chess.Black {
		toMove = base.Black
	}
	return board, toMove, nil
}

func ConvertBoardToFEN(board base.Board, toMove base.Color) string {
	// pieces, row 0 is rank 8
	var b strings.Builder
	for row := 0; row < 8; row++ {
		empty := 0
		for col := 0; col < 8; col++ {
			pc := board.Get(base.Sq(row, col))
			if pc.IsEmpty() {
				empty++
				continue
			}
			if empty > 0 {
				b.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			b.WriteRune(base.ConvertRuneFromPiece(pc))
		}
		if empty > 0 {
			b.WriteString(strconv.Itoa(empty))
		}
		if row < 7 {
			b.WriteByte('/')
		}
	}

	// side to move
	if toMove == base.White {
		b.WriteString(" w ")
	} else {
		b.WriteString(" b ")
	}

	// casting
	cast := ""
	if board.Casting.WK {
		cast += "K"
	}
	if board.Casting.WQ {
		cast += "Q"
	}
	if board.Casting.BK {
		cast += "k"
	}
	if board.Casting.BQ {
		cast += "q"
	}
	if cast == "" {
		cast = "-"
	}
	b.WriteString(cast)

	// no en passant, counters are not tracked
	b.WriteString(" - 0 1")
	return b.String()
}

func squareFromChess(sq chess.Square) base.Square {
	return base.Sq(7-int(sq.Rank()), int(sq.File()))
}

func pieceFromChess(p chess.Piece) base.Piece {
	c := base.White
	if p.Color() == chess.Black {
		c = base.Black
	}
	var k base.Kind
	switch p.Type() {
	case chess.Pawn:
		k = base.Pawn
	case chess.Knight:
		k = base.Knight
	case chess.Bishop:
		k = base.Bishop
	case chess.Rook:
		k = base.Rook
	case chess.Queen:
		k = base.Queen
	case chess.King:
		k = base.King
	default:
		return base.EmptyPiece
	}
	return base.NewPiece(c, k)
}
