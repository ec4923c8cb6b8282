package gsprite

import (
	"duelchess/src/base"
	"image"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
)

var letters = map[base.Kind]string{
	base.King:   "K",
	base.Queen:  "Q",
	base.Rook:   "R",
	base.Bishop: "B",
	base.Knight: "N",
	base.Pawn:   "P",
}

// Radius of the piece disc relative to the square
const Radius = 0.38

// RenderPiece draws p as a disc with its letter on a size x size
// transparent image. A nil face draws the disc only.
func RenderPiece(size int, p base.Piece, face font.Face) image.Image {
	dc := gg.NewContext(size, size)
	if p.IsEmpty() {
		return dc.Image()
	}

	fill, ink := 0.97, 0.12
	if p.Color == base.Black {
		fill, ink = ink, fill
	}

	c := float64(size) / 2
	dc.DrawCircle(c, c, float64(size)*Radius)
	dc.SetRGB(fill, fill, fill)
	dc.FillPreserve()
	dc.SetRGB(ink, ink, ink)
	dc.SetLineWidth(float64(size) / 32)
	dc.Stroke()

	if face != nil {
		dc.SetFontFace(face)
		dc.DrawStringAnchored(letters[p.Kind], c, c, 0.5, 0.35)
	}
	return dc.Image()
}

// RenderSet renders all twelve pieces
func RenderSet(size int, face font.Face) map[base.Piece]image.Image {
	out := make(map[base.Piece]image.Image, 12)
	for _, c := range []base.Color{base.White, base.Black} {
		for k := range letters {
			p := base.NewPiece(c, k)
			out[p] = RenderPiece(size, p, face)
		}
	}
	return out
}
