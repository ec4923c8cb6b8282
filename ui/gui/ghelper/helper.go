package ghelper

import (
	"duelchess/ui/gui/gbase"
	"image/color"

	"github.com/fogleman/gg"
	"github.com/hajimehoshi/ebiten/v2"
)

func RenderRoundedRect(w, h, radius int, fill color.RGBA, stroke color.RGBA, strokeW float64) *ebiten.Image {
	// anti-aliased by gg
	dc := gg.NewContext(w, h)
	dc.SetRGBA255(int(fill.R), int(fill.G), int(fill.B), int(fill.A))
	dc.DrawRoundedRectangle(0, 0, float64(w), float64(h), float64(radius))
	dc.FillPreserve()
	dc.SetRGBA255(int(stroke.R), int(stroke.G), int(stroke.B), int(stroke.A))
	dc.SetLineWidth(strokeW)
	dc.Stroke()
	return ebiten.NewImageFromImage(dc.Image())
}

var pixel *ebiten.Image

// FillRect draws a solid rectangle scaling one white pixel
func FillRect(screen *ebiten.Image, x, y, w, h float64, c color.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	if pixel == nil {
		pixel = ebiten.NewImage(1, 1)
		pixel.Fill(color.White)
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	screen.DrawImage(pixel, op)
}

func DrawRectStroke(screen *ebiten.Image, x, y, w, h, thickness float64, col color.Color) {
	if w <= 0 || h <= 0 || thickness <= 0 {
		return
	}
	if maxTh := min(w, h) / 2.0; thickness > maxTh {
		thickness = maxTh
	}
	FillRect(screen, x, y, w, thickness, col)                                   // up
	FillRect(screen, x, y+h-thickness, w, thickness, col)                       // down
	FillRect(screen, x, y+thickness, thickness, h-thickness*2, col)             // left
	FillRect(screen, x+w-thickness, y+thickness, thickness, h-thickness*2, col) // right
}

// NewButton pre-renders the button body in the palette colors
func NewButton(label string, x, y, w, h int, theme gbase.Palette) *gbase.Button {
	return &gbase.Button{
		Label: label,
		X:     x, Y: y, W: w, H: h,
		Image: RenderRoundedRect(w, h, 12, theme.ButtonFill, theme.ButtonStroke, 3),
		Scale: 1.0, TargetScale: 1.0, AnimSpeed: 10.0,
	}
}
