package gplay

import "duelchess/src/base"

const (
	HeaderH   = 56
	FooterH   = 84
	MinSqSize = 40
)

// Layout places the board in the window, row 0 (rank 8) on top
type Layout struct {
	BoardX, BoardY int
	SqSize         int
}

func NewLayout(windowW, windowH int) Layout {
	sq := min(windowW-40, windowH-HeaderH-FooterH) / 8
	if sq < MinSqSize {
		sq = MinSqSize
	}
	return Layout{
		BoardX: (windowW - sq*8) / 2,
		BoardY: HeaderH,
		SqSize: sq,
	}
}

func (l Layout) BoardSize() int {
	return l.SqSize * 8
}

func (l Layout) Contains(px, py int) bool {
	return px >= l.BoardX && py >= l.BoardY && px < l.BoardX+l.BoardSize() && py < l.BoardY+l.BoardSize()
}

// PixelToSquare maps screen coordinates to a square
func (l Layout) PixelToSquare(px, py int) (base.Square, bool) {
	if !l.Contains(px, py) {
		return base.Square{}, false
	}
	return base.Sq((py-l.BoardY)/l.SqSize, (px-l.BoardX)/l.SqSize), true
}

// SquareOrigin is the top-left pixel of sq
func (l Layout) SquareOrigin(sq base.Square) (int, int) {
	return l.BoardX + sq.Col*l.SqSize, l.BoardY + sq.Row*l.SqSize
}

// StrokeWidth of the frame around the selected square, grows with the board
func (l Layout) StrokeWidth() int {
	return max(2, l.SqSize/24)
}

// FooterY is where the button row starts
func (l Layout) FooterY() int {
	return l.BoardY + l.BoardSize() + 16
}
