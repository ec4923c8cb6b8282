package gctx

import (
	"duelchess/src/conf"
	"duelchess/src/logx"
	"duelchess/ui/gui/gbase"
	"duelchess/ui/gui/ghelper/gfont"
	"duelchess/ui/gui/gplay"
	"duelchess/ui/lang"
)

// ---- GUI Context ----

type GUIGameContext struct {
	Play   *gplay.Controller
	Config *conf.Config
	Lang   *lang.Catalog
	Fonts  *gfont.Fonts
	Theme  gbase.Palette
	Logx   logx.Logger
}

func NewGUIGameContext(p *gplay.Controller, c *conf.Config, l *lang.Catalog, f *gfont.Fonts, log logx.Logger) *GUIGameContext {
	return &GUIGameContext{
		Play:   p,
		Config: c,
		Lang:   l,
		Fonts:  f,
		Theme:  gbase.PaletteFromString(c.Theme),
		Logx:   log,
	}
}
