package gui

import (
	"duelchess/src"
	"duelchess/src/conf"
	"duelchess/src/logx"
	"duelchess/ui/gui/gbase"
	"duelchess/ui/gui/gctx"
	"duelchess/ui/gui/gdraw"
	"duelchess/ui/gui/ghelper/gfont"
	"duelchess/ui/gui/gplay"
	"duelchess/ui/lang"
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
)

type GUIProcessing struct {
	current gdraw.Scene
	ctx     *gctx.GUIGameContext
}

func NewGUI(g *src.Game, cfg *conf.Config, cat *lang.Catalog, logger logx.Logger) (*GUIProcessing, error) {
	fonts, err := gfont.LoadFonts()
	if err != nil {
		return nil, err
	}
	ctx := gctx.NewGUIGameContext(gplay.NewController(g, cat), cfg, cat, fonts, logger)
	return &GUIProcessing{
		current: gdraw.NewGUIPlayDrawer(ctx),
		ctx:     ctx,
	}, nil
}

func (gp *GUIProcessing) Run() error {
	ebiten.SetWindowSize(gp.ctx.Config.WindowW, gp.ctx.Config.WindowH)
	ebiten.SetWindowTitle(gp.ctx.Lang.T("title"))
	if err := ebiten.RunGame(gp); err != nil && !errors.Is(err, gbase.ErrExit) {
		return err
	}
	return nil
}

func (gp *GUIProcessing) Update() error {
	return gp.current.Update(gp.ctx)
}

func (gp *GUIProcessing) Draw(screen *ebiten.Image) {
	gp.current.Draw(gp.ctx, screen)
}

func (gp *GUIProcessing) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return gp.ctx.Config.WindowW, gp.ctx.Config.WindowH
}
