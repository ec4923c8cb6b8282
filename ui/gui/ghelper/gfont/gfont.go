package gfont

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

type Fonts struct {
	Normal font.Face
	Bold   font.Face
}

func LoadFonts() (*Fonts, error) {
	var err error
	fonts := &Fonts{}

	fonts.Normal, err = NewFace(goregular.TTF, 16)
	if err != nil {
		return nil, err
	}

	// for titles and status
	fonts.Bold, err = NewFace(gobold.TTF, 20)
	if err != nil {
		return nil, err
	}
	return fonts, nil
}

// PieceFace is the face for piece letters on squares of px pixels
func PieceFace(px int) (font.Face, error) {
	return NewFace(gobold.TTF, float64(px)*0.45)
}

func NewFace(ttf []byte, size float64) (font.Face, error) {
	f, err := opentype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("error parse font: %w", err)
	}
	return opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}
