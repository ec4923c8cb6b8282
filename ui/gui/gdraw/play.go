package gdraw

import (
	"duelchess/src/base"
	"duelchess/ui/gui/gbase"
	"duelchess/ui/gui/gctx"
	"duelchess/ui/gui/ghelper"
	"duelchess/ui/gui/ghelper/gdialog"
	"duelchess/ui/gui/ghelper/gfont"
	"duelchess/ui/gui/ghelper/gsprite"
	"duelchess/ui/gui/gplay"
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
)

// GUIPlayDrawer is the board scene
type GUIPlayDrawer struct {
	layout gplay.Layout

	sprites    map[base.Piece]*ebiten.Image
	spriteSize int

	// buttons
	buttons  []*gbase.Button
	idxNew   int
	idxTheme int

	// promotion chooser, one button per gplay.PromotionChoices
	promo []*gbase.Button

	prevMouseDown bool
	lastTick      time.Time
}

func NewGUIPlayDrawer(ctx *gctx.GUIGameContext) *GUIPlayDrawer {
	pd := &GUIPlayDrawer{lastTick: time.Now()}
	pd.recalcLayout(ctx)
	pd.makeLayoutButtons(ctx)
	return pd
}

func (pd *GUIPlayDrawer) recalcLayout(ctx *gctx.GUIGameContext) {
	pd.layout = gplay.NewLayout(ctx.Config.WindowW, ctx.Config.WindowH)
	if pd.spriteSize != pd.layout.SqSize {
		pd.makeSprites(ctx)
	}
}

func (pd *GUIPlayDrawer) makeSprites(ctx *gctx.GUIGameContext) {
	size := pd.layout.SqSize
	face, err := gfont.PieceFace(size)
	if err != nil {
		// discs without letters are still playable
		ctx.Logx.Errorf("piece font: %v", err)
	}
	pd.sprites = make(map[base.Piece]*ebiten.Image, 12)
	for p, img := range gsprite.RenderSet(size, face) {
		pd.sprites[p] = ebiten.NewImageFromImage(img)
	}
	pd.spriteSize = size
}

func (pd *GUIPlayDrawer) makeLayoutButtons(ctx *gctx.GUIGameContext) {
	pd.buttons = pd.buttons[:0]
	addBtn := func(label string, x, y, w, h int) int {
		pd.buttons = append(pd.buttons, ghelper.NewButton(label, x, y, w, h, ctx.Theme))
		return len(pd.buttons) - 1
	}

	w, h := 160, 44
	y := pd.layout.FooterY()
	x := pd.layout.BoardX
	pd.idxNew = addBtn(ctx.Lang.T("button.new_game"), x, y, w, h)
	pd.idxTheme = addBtn(ctx.Lang.T("button.settings"), x+pd.layout.BoardSize()-w, y, w, h)

	pd.promo = pd.promo[:0]
	pw := pd.layout.SqSize * 2
	px := pd.layout.BoardX
	py := pd.layout.BoardY + pd.layout.BoardSize()/2
	for _, k := range gplay.PromotionChoices {
		pd.promo = append(pd.promo, ghelper.NewButton(ctx.Play.KindName(k), px, py, pw-8, h, ctx.Theme))
		px += pw
	}
}

func (pd *GUIPlayDrawer) Update(ctx *gctx.GUIGameContext) error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return gbase.ErrExit
	}
	pd.recalcLayout(ctx)

	now := time.Now()
	dt := now.Sub(pd.lastTick).Seconds()
	pd.lastTick = now

	mx, my := ebiten.CursorPosition()
	mouseDown := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	justPressed := mouseDown && !pd.prevMouseDown
	justReleased := !mouseDown && pd.prevMouseDown
	pd.prevMouseDown = mouseDown

	// the chooser blocks everything else
	if _, ok := ctx.Play.PendingPromotion(); ok {
		for i, b := range pd.promo {
			clicked := b.HandleInput(mx, my, justPressed, justReleased)
			b.UpdateAnim(dt)
			if clicked {
				pd.show(ctx, ctx.Play.Promote(gplay.PromotionChoices[i]))
				return nil
			}
		}
		return nil
	}

	for i, b := range pd.buttons {
		clicked := b.HandleInput(mx, my, justPressed, justReleased)
		b.UpdateAnim(dt)
		if !clicked {
			continue
		}
		switch i {
		case pd.idxNew:
			if gdialog.Confirm(ctx.Lang.T("title"), ctx.Lang.T("dialog.new_game")) {
				ctx.Play.NewGame()
			}
		case pd.idxTheme:
			pd.toggleTheme(ctx)
		}
		return nil
	}

	// click on release, same as the buttons
	if justReleased {
		if sq, ok := pd.layout.PixelToSquare(mx, my); ok {
			pd.show(ctx, ctx.Play.Click(sq))
		}
	}
	return nil
}

func (pd *GUIPlayDrawer) toggleTheme(ctx *gctx.GUIGameContext) {
	if ctx.Theme == gbase.DarkPalette {
		ctx.Theme = gbase.LightPalette
	} else {
		ctx.Theme = gbase.DarkPalette
	}
	ctx.Config.Theme = ctx.Theme.String()
	if err := ctx.Config.Save(); err != nil {
		ctx.Logx.Warnf("save config: %v", err)
	}
	pd.makeLayoutButtons(ctx)
}

func (pd *GUIPlayDrawer) show(ctx *gctx.GUIGameContext, notices []gplay.Notice) {
	for _, n := range notices {
		switch n.Kind {
		case gplay.NoticeIllegal:
			ctx.Logx.Debugf("notice: %s", n.Text)
		default:
			ctx.Logx.Infof("notice: %s", n.Text)
		}
		gdialog.Info(ctx.Lang.T("title"), n.Text)
	}
}

func (pd *GUIPlayDrawer) Draw(ctx *gctx.GUIGameContext, screen *ebiten.Image) {
	screen.Fill(ctx.Theme.Bg)
	l := pd.layout

	text.Draw(screen, ctx.Play.StatusLine(), ctx.Fonts.Bold, l.BoardX, l.BoardY-18, ctx.Theme.MenuText)

	// border
	border := ghelper.RenderRoundedRect(l.BoardSize()+8, l.BoardSize()+8, 6, ctx.Theme.ButtonFill, ctx.Theme.ButtonStroke, 2)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(l.BoardX-4), float64(l.BoardY-4))
	screen.DrawImage(border, op)

	board := ctx.Play.Board()
	dests := ctx.Play.Destinations()
	selected, hasSelection := ctx.Play.Selection()
	size := float64(l.SqSize)

	for i := 0; i < 64; i++ {
		sq := base.SquareFromIndex(i)
		x, y := l.SquareOrigin(sq)

		col := ctx.Theme.DarkSq
		if (sq.Row+sq.Col)%2 == 0 {
			col = ctx.Theme.LightSq
		}
		switch {
		case hasSelection && sq == selected:
			col = ctx.Theme.Selected
		case dests.Has(sq):
			col = ctx.Theme.Destination
		}
		ghelper.FillRect(screen, float64(x), float64(y), size, size, col)

		if img := pd.sprites[board.Get(sq)]; img != nil {
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(float64(x), float64(y))
			op.Filter = ebiten.FilterLinear
			screen.DrawImage(img, op)
		}
	}

	if hasSelection {
		x, y := l.SquareOrigin(selected)
		ghelper.DrawRectStroke(screen, float64(x), float64(y), size, size, float64(l.StrokeWidth()), ctx.Theme.Accent)
	}

	for _, b := range pd.buttons {
		b.DrawAnimated(screen, ctx.Fonts.Normal, ctx.Theme)
	}

	if sq, ok := ctx.Play.PendingPromotion(); ok {
		ghelper.FillRect(screen, float64(l.BoardX), float64(l.BoardY), float64(l.BoardSize()), float64(l.BoardSize()), ctx.Theme.ModalBg)
		prompt := ctx.Lang.R("dialog.promotion", map[string]string{"Square": sq.String()})
		text.Draw(screen, prompt, ctx.Fonts.Bold, l.BoardX+8, pd.promo[0].Y-16, ctx.Theme.Bg)
		for _, b := range pd.promo {
			b.DrawAnimated(screen, ctx.Fonts.Normal, ctx.Theme)
		}
	}

	if ctx.Config.Debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("TPS: %0.2f", ebiten.ActualTPS()))
	}
}
