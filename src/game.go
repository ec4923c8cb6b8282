package src

import (
	"duelchess/src/base"
	"duelchess/src/convert/convfen"
	"duelchess/src/logic/rules"
	"duelchess/src/logic/rules/moves"
	"duelchess/src/logx"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var ErrNoPendingPromotion = errors.New("no pending promotion on this square")

type SelectionKind int

const (
	Ignored SelectionKind = iota
	Selected
	Deselected
	Moved
)

func (k SelectionKind) String() string {
	switch k {
	case Selected:
		return "selected"
	case Deselected:
		return "deselected"
	case Moved:
		return "moved"
	default:
		return "ignored"
	}
}

// SelectionResult is what a click on a square produced. Destinations is
// filled for Selected, Outcome for Moved (a rejected move is still Moved
// with Outcome.Applied == false).
type SelectionResult struct {
	Kind         SelectionKind
	Square       base.Square
	Destinations []base.Square
	CheckNotice  bool
	Outcome      base.MoveOutcome
}

// Game drives one two-player game: whose turn it is, which piece is
// selected and whether a promotion is waiting for an answer.
// Not safe for concurrent use.
type Game struct {
	id     uuid.UUID
	board  base.Board
	toMove base.Color
	status base.GameStatus

	selected     base.Square
	hasSelection bool

	// check is announced once per turn, either with the move that gave it
	// or on the first selection after a loaded position
	checkNotified bool

	pending  *base.MoveOutcome
	promoter rules.PromotionFunc

	root   logx.Logger
	logger logx.Logger
}

// NewGame creates a game in the standard starting position
func NewGame(logger logx.Logger) *Game {
	g := &Game{root: logger}
	g.NewGame()
	return g
}

// NewGame discards the current game and starts over with White to move
func (g *Game) NewGame() {
	g.reset(*base.NewClassicBoard(), base.White)
	g.logger.Info("new classic game")
}

// LoadFEN replaces the position; castling rights and side to move come from
// the FEN, en passant and clocks are ignored.
func (g *Game) LoadFEN(fen string) error {
	b, toMove, err := convfen.ConvertFENToBoard(fen)
	if err != nil {
		g.logger.Warnf("load FEN %q: %v", fen, err)
		return fmt.Errorf("load position: %w", err)
	}
	g.reset(*b, toMove)
	g.logger.Infof("game loaded from FEN: %v", fen)
	return nil
}

func (g *Game) reset(b base.Board, toMove base.Color) {
	g.id = uuid.New()
	g.logger = g.root.Named("game").Named(g.id.String())
	g.board = b
	g.toMove = toMove
	g.hasSelection = false
	g.checkNotified = false
	g.pending = nil
	g.status = rules.StatusOf(&g.board, toMove)
}

// SetPromoter installs a synchronous promotion callback. With nil the game
// stops after a pawn reaches the last row and waits for ChoosePromotion.
func (g *Game) SetPromoter(f rules.PromotionFunc) {
	g.promoter = f
}

func (g *Game) SelectSquare(sq base.Square) SelectionResult {
	if g.pending != nil {
		g.logger.Debugf("select %v ignored: promotion pending on %v", sq, g.pending.To)
		return SelectionResult{Kind: Ignored, Square: sq}
	}

	pc := g.board.Get(sq)
	own := sq.IsValid() && !pc.IsEmpty() && pc.Color == g.toMove

	if !g.hasSelection {
		if !own {
			g.logger.Debugf("select %v ignored", sq)
			return SelectionResult{Kind: Ignored, Square: sq}
		}
		return g.selectPiece(sq)
	}

	from := g.selected
	switch {
	case sq == from:
		g.hasSelection = false
		g.logger.Debugf("deselect %v", sq)
		return SelectionResult{Kind: Deselected, Square: sq}
	case own:
		return g.selectPiece(sq)
	case moves.IsPseudoLegal(&g.board, from, sq):
		out := g.AttemptMove(from, sq)
		return SelectionResult{Kind: Moved, Square: sq, Outcome: out}
	default:
		g.hasSelection = false
		g.logger.Debugf("invalid target %v for %v, deselect", sq, from)
		return SelectionResult{Kind: Deselected, Square: sq}
	}
}

func (g *Game) selectPiece(sq base.Square) SelectionResult {
	g.selected = sq
	g.hasSelection = true
	res := SelectionResult{
		Kind:         Selected,
		Square:       sq,
		Destinations: rules.LegalDestinations(&g.board, sq),
	}
	if !g.checkNotified && rules.IsInCheck(&g.board, g.toMove) {
		g.checkNotified = true
		res.CheckNotice = true
	}
	g.logger.Debugf("select %v %v, %d destinations", sq, g.board.Get(sq), len(res.Destinations))
	return res
}

// AttemptMove plays from-to for the side to move. The selection is always
// cleared; on success the turn passes and Status reflects the new side.
func (g *Game) AttemptMove(from, to base.Square) base.MoveOutcome {
	if g.pending != nil {
		g.logger.Warnf("move %v-%v rejected: promotion pending on %v", from, to, g.pending.To)
		return base.Illegal(from, to, base.PromotionPending)
	}
	g.hasSelection = false

	if pc := g.board.Get(from); pc.IsEmpty() || pc.Color != g.toMove {
		g.logger.Warnf("move %v-%v rejected: no %v piece on %v", from, to, g.toMove, from)
		return base.Illegal(from, to, base.PieceNotFound)
	}

	out := rules.TryMove(&g.board, from, to, g.promoter)
	if !out.Applied {
		g.logger.Warnf("move %v-%v rejected: %v", from, to, out.Reason)
		out.Status = g.status
		return out
	}

	if out.PromotionPending {
		g.pending = &out
		g.logger.Infof("move %v-%v, waiting for promotion choice", from, to)
		out.Status = g.status
		return out
	}
	return g.finishTurn(out)
}

// ChoosePromotion answers a pending promotion on sq. Kinds a pawn cannot
// become are replaced with a queen.
func (g *Game) ChoosePromotion(sq base.Square, kind base.Kind) (base.MoveOutcome, error) {
	if g.pending == nil || g.pending.To != sq {
		return base.MoveOutcome{}, ErrNoPendingPromotion
	}
	out := *g.pending
	g.pending = nil

	placed := rules.Promote(&g.board, sq, kind)
	out.PromotionPending = false
	out.Promoted = true
	g.logger.Infof("promotion on %v to %v", sq, placed)
	return g.finishTurn(out), nil
}

func (g *Game) finishTurn(out base.MoveOutcome) base.MoveOutcome {
	mover := g.toMove
	g.toMove = mover.Opponent()
	g.status = rules.StatusOf(&g.board, g.toMove)
	out.Status = g.status
	// a check given by this move is announced with the move itself
	g.checkNotified = g.status == base.Check

	g.logger.Infof("%v move %v-%v captured=%v castled=%v promoted=%v, %v: %v",
		mover, out.From, out.To, out.Captured, out.Castled, out.Promoted, g.toMove, g.status)
	return out
}

func (g *Game) QueryStatus(c base.Color) base.GameStatus {
	return rules.StatusOf(&g.board, c)
}

// FEN of the current position
func (g *Game) FEN() string {
	return convfen.ConvertBoardToFEN(g.board, g.toMove)
}

// Board returns a copy, changing it does not affect the game
func (g *Game) Board() base.Board {
	return g.board
}

func (g *Game) ToMove() base.Color {
	return g.toMove
}

func (g *Game) Selection() (base.Square, bool) {
	return g.selected, g.hasSelection
}

// PendingPromotion returns the square of a pawn waiting for ChoosePromotion
func (g *Game) PendingPromotion() (base.Square, bool) {
	if g.pending == nil {
		return base.Square{}, false
	}
	return g.pending.To, true
}

func (g *Game) Status() base.GameStatus {
	return g.status
}

func (g *Game) ID() string {
	return g.id.String()
}
