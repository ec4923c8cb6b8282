package gfont

import (
	"testing"

	"golang.org/x/image/font"
)

func TestLoadFonts(t *testing.T) {
	fonts, err := LoadFonts()
	if err != nil {
		t.Fatalf("LoadFonts: %v", err)
	}
	if fonts.Normal == nil || fonts.Bold == nil {
		t.Fatalf("missing face")
	}
	if font.MeasureString(fonts.Bold, "Check") <= font.MeasureString(fonts.Normal, "Check") {
		t.Fatalf("bold face is not larger")
	}
}

func TestPieceFaceScales(t *testing.T) {
	small, err := PieceFace(40)
	if err != nil {
		t.Fatal(err)
	}
	big, err := PieceFace(80)
	if err != nil {
		t.Fatal(err)
	}
	if small.Metrics().Height >= big.Metrics().Height {
		t.Fatalf("face does not grow with the square")
	}
}

func TestNewFaceBadData(t *testing.T) {
	if _, err := NewFace([]byte("not a font"), 12); err == nil {
		t.Fatalf("garbage parsed as a font")
	}
}
