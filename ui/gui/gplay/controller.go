package gplay

import (
	"duelchess/src"
	"duelchess/src/base"
	"duelchess/src/logic/rules/moves"
	"duelchess/ui/lang"
)

type NoticeKind int

const (
	NoticeCheck NoticeKind = iota
	NoticeCheckmate
	NoticeIllegal
)

type Notice struct {
	Kind NoticeKind
	Text string
}

// PromotionChoices in the order the chooser shows them
var PromotionChoices = []base.Kind{base.Queen, base.Rook, base.Bishop, base.Knight}

// Controller turns board clicks into Game calls and keeps what the scene
// needs to highlight. Promotions use the two-phase protocol: the scene shows
// a chooser while PendingPromotion is set.
type Controller struct {
	game  *src.Game
	cat   *lang.Catalog
	dests moves.SquareSet
}

func NewController(g *src.Game, cat *lang.Catalog) *Controller {
	g.SetPromoter(nil)
	return &Controller{game: g, cat: cat}
}

func (c *Controller) Click(sq base.Square) []Notice {
	res := c.game.SelectSquare(sq)
	c.dests = 0

	switch res.Kind {
	case src.Selected:
		for _, d := range res.Destinations {
			c.dests.Add(d)
		}
		if res.CheckNotice {
			return []Notice{c.checkNotice()}
		}
	case src.Moved:
		return c.afterMove(res.Outcome)
	}
	return nil
}

// Promote answers the pending promotion, without one it does nothing
func (c *Controller) Promote(k base.Kind) []Notice {
	sq, ok := c.game.PendingPromotion()
	if !ok {
		return nil
	}
	out, err := c.game.ChoosePromotion(sq, k)
	if err != nil {
		return nil
	}
	return c.afterMove(out)
}

func (c *Controller) afterMove(out base.MoveOutcome) []Notice {
	if !out.Applied {
		return []Notice{{Kind: NoticeIllegal, Text: c.cat.R("notice.illegal", map[string]string{
			"From":   out.From.String(),
			"To":     out.To.String(),
			"Reason": c.cat.T(lang.ReasonKey(out)),
		})}}
	}
	if out.PromotionPending {
		return nil
	}
	switch out.Status {
	case base.Check:
		return []Notice{c.checkNotice()}
	case base.Checkmate:
		return []Notice{{Kind: NoticeCheckmate, Text: c.StatusLine()}}
	}
	return nil
}

func (c *Controller) checkNotice() Notice {
	return Notice{Kind: NoticeCheck, Text: c.cat.R("notice.check", map[string]string{"Color": c.colorName(c.game.ToMove())})}
}

func (c *Controller) NewGame() {
	c.game.NewGame()
	c.dests = 0
}

func (c *Controller) Board() base.Board {
	return c.game.Board()
}

func (c *Controller) Destinations() moves.SquareSet {
	return c.dests
}

func (c *Controller) Selection() (base.Square, bool) {
	return c.game.Selection()
}

func (c *Controller) PendingPromotion() (base.Square, bool) {
	return c.game.PendingPromotion()
}

func (c *Controller) ToMove() base.Color {
	return c.game.ToMove()
}

func (c *Controller) StatusLine() string {
	toMove := c.game.ToMove()
	return c.cat.R(lang.Key("status", c.game.Status()), map[string]string{
		"Color":  c.colorName(toMove),
		"Winner": c.colorName(toMove.Opponent()),
	})
}

func (c *Controller) KindName(k base.Kind) string {
	return c.cat.T(lang.Key("kind", k))
}

func (c *Controller) colorName(col base.Color) string {
	return c.cat.T(lang.Key("color", col))
}
