package gdraw

import (
	"duelchess/ui/gui/gctx"

	"github.com/hajimehoshi/ebiten/v2"
)

// ---- Scene ----

type Scene interface {
	Update(ctx *gctx.GUIGameContext) error
	Draw(ctx *gctx.GUIGameContext, screen *ebiten.Image)
}
