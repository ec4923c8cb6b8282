package cli

import (
	"duelchess/src/base"
	"duelchess/src/logic/rules/moves"
	"fmt"
	"io"
)

// Highlight marks squares on top of the board colors
type Highlight struct {
	Cursor       base.Square
	ShowCursor   bool
	Selected     base.Square
	HasSelection bool
	Destinations moves.SquareSet
	Threats      moves.SquareSet
}

// ANSI-code
const (
	reset    = "\033[0m"
	lightBg  = "\033[47m"
	darkBg   = "\033[100m"
	cursorBg = "\033[44m"
	selectBg = "\033[43m"
	destBg   = "\033[42m"
	threatBg = "\033[41m"
	whiteF   = "\033[97m"
	blackF   = "\033[30m"
	dimF     = "\033[90m"
)

var glyphs = map[base.Kind][2]string{
	base.King:   {"♔", "♚"},
	base.Queen:  {"♕", "♛"},
	base.Rook:   {"♖", "♜"},
	base.Bishop: {"♗", "♝"},
	base.Knight: {"♘", "♞"},
	base.Pawn:   {"♙", "♟"},
}

func pieceGlyph(p base.Piece) string {
	if p.IsEmpty() {
		return " "
	}
	g, ok := glyphs[p.Kind]
	if !ok {
		return "?"
	}
	return g[p.Color]
}

func squareBg(sq base.Square, hl Highlight) string {
	switch {
	case hl.ShowCursor && sq == hl.Cursor:
		return cursorBg
	case hl.HasSelection && sq == hl.Selected:
		return selectBg
	case hl.Destinations.Has(sq):
		return destBg
	case hl.Threats.Has(sq):
		return threatBg
	case (sq.Row+sq.Col)%2 == 0:
		return lightBg
	default:
		return darkBg
	}
}

// PrintBoard draws the board with rank 8 on top
func PrintBoard(w io.Writer, b base.Board, hl Highlight) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "   a  b  c  d  e  f  g  h")
	for row := 0; row < 8; row++ {
		rank := 8 - row
		fmt.Fprintf(w, "%d ", rank)
		for col := 0; col < 8; col++ {
			sq := base.Sq(row, col)
			p := b.Get(sq)

			var fg string
			switch {
			case p.IsEmpty():
				fg = dimF
			case p.Color == base.White:
				fg = whiteF
			default:
				fg = blackF
			}
			fmt.Fprintf(w, "%s%s %s %s", squareBg(sq, hl), fg, pieceGlyph(p), reset)
		}
		fmt.Fprintf(w, " %d\n", rank)
	}
	fmt.Fprintln(w, "   a  b  c  d  e  f  g  h")
	fmt.Fprintln(w)
}
