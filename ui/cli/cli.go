package cli

import (
	"bufio"
	"duelchess/src"
	"duelchess/src/base"
	"duelchess/src/logic/rules/moves"
	"duelchess/ui/lang"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

type DrawFunc func(w io.Writer, b base.Board, hl Highlight)

type CLIProcessing struct {
	game *src.Game
	cat  *lang.Catalog
	draw DrawFunc
	in   io.Reader
	out  io.Writer
	r    *bufio.Reader

	raw         bool
	cursor      base.Square
	dests       moves.SquareSet
	showThreats bool
}

func NewCLI(g *src.Game, cat *lang.Catalog, draw DrawFunc) *CLIProcessing {
	c := &CLIProcessing{game: g, cat: cat, draw: draw, cursor: base.Sq(6, 4)}
	c.SetIO(os.Stdin, os.Stdout)
	g.SetPromoter(c.askPromotion)
	return c
}

func (c *CLIProcessing) SetIO(in io.Reader, out io.Writer) {
	c.in = in
	c.out = out
	c.r = bufio.NewReader(in)
}

// raw processing
// - arrows move the cursor, space or enter selects the square under it
// - n new game, t threats overlay, f FEN
// - q or Ctrl+C to exit
// falls back to RunLineMode when stdin is not a terminal
func (c *CLIProcessing) Run() error {
	f, ok := c.in.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return c.RunLineMode()
	}
	fd := int(f.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return c.RunLineMode()
	}
	defer term.Restore(fd, oldState) //nolint:errcheck

	// raw mode does not translate \n
	out := c.out
	c.out = crlfWriter{out}
	c.raw = true
	defer func() {
		c.out = out
		c.raw = false
	}()

	c.redraw()
	fmt.Fprintln(c.out, c.cat.T("cli.raw_help"))

	for {
		b, err := c.r.ReadByte()
		if err != nil {
			return err
		}

		switch b {
		case 3, 'q', 'Q': // Ctrl+C
			fmt.Fprintln(c.out, c.cat.T("cli.bye"))
			return nil
		case 0x1b: // escape sequence, possible arrow
			b1, err := c.r.ReadByte()
			if err != nil || b1 != '[' {
				continue
			}
			b2, err := c.r.ReadByte()
			if err != nil {
				continue
			}
			c.moveCursor(b2)
			c.redraw()
		case ' ', '\r', '\n':
			c.report(c.game.SelectSquare(c.cursor))
		case 'n', 'N':
			c.newGame()
		case 't', 'T':
			c.toggleThreats()
		case 'f', 'F':
			fmt.Fprintln(c.out, c.cat.R("cli.fen", map[string]string{"FEN": c.game.FEN()}))
		}
		// other keys ignored
	}
}

func (c *CLIProcessing) moveCursor(arrow byte) {
	row, col := c.cursor.Row, c.cursor.Col
	switch arrow {
	case 'A': // up
		row--
	case 'B': // down
		row++
	case 'C': // right
		col++
	case 'D': // left
		col--
	}
	if next := base.Sq(row, col); next.IsValid() {
		c.cursor = next
	}
}

func (c *CLIProcessing) RunLineMode() error {
	c.redraw()
	fmt.Fprintln(c.out, c.cat.T("cli.help"))
	for {
		line, err := c.r.ReadString('\n')
		if s := strings.TrimSpace(line); s != "" {
			if c.handleLine(s) {
				return nil
			}
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// handleLine runs one command, returns true on quit
func (c *CLIProcessing) handleLine(s string) bool {
	switch strings.ToLower(s) {
	case "q", "quit":
		fmt.Fprintln(c.out, c.cat.T("cli.bye"))
		return true
	case "help":
		fmt.Fprintln(c.out, c.cat.T("cli.help"))
		return false
	case "new":
		c.newGame()
		return false
	case "threats":
		c.toggleThreats()
		return false
	case "fen":
		fmt.Fprintln(c.out, c.cat.R("cli.fen", map[string]string{"FEN": c.game.FEN()}))
		return false
	}

	switch len(s) {
	case 2:
		if sq, err := base.SquareFromAlgebraic(s); err == nil {
			c.report(c.game.SelectSquare(sq))
			return false
		}
	case 4:
		from, err1 := base.SquareFromAlgebraic(s[:2])
		to, err2 := base.SquareFromAlgebraic(s[2:])
		if err1 == nil && err2 == nil {
			c.reportOutcome(c.game.AttemptMove(from, to))
			return false
		}
	}
	fmt.Fprintln(c.out, c.cat.R("cli.bad_input", map[string]string{"Input": s}))
	return false
}

func (c *CLIProcessing) newGame() {
	c.game.NewGame()
	c.dests = 0
	c.redraw()
}

func (c *CLIProcessing) toggleThreats() {
	c.showThreats = !c.showThreats
	b := c.game.Board()
	by := c.game.ToMove().Opponent()
	c.redraw()
	fmt.Fprintln(c.out, c.cat.R("cli.threats", map[string]any{
		"Color": c.colorName(by),
		"Count": moves.AttackedSquares(&b, by).Count(),
	}))
}

func (c *CLIProcessing) report(res src.SelectionResult) {
	switch res.Kind {
	case src.Selected:
		c.dests = 0
		names := make([]string, 0, len(res.Destinations))
		for _, d := range res.Destinations {
			c.dests.Add(d)
			names = append(names, d.String())
		}
		c.redraw()
		if res.CheckNotice {
			fmt.Fprintln(c.out, c.cat.R("notice.check", map[string]string{"Color": c.colorName(c.game.ToMove())}))
		}
		fmt.Fprintln(c.out, c.cat.R("cli.selected", map[string]string{
			"Square": res.Square.String(),
			"Moves":  strings.Join(names, " "),
		}))
	case src.Deselected:
		c.dests = 0
		c.redraw()
	case src.Moved:
		c.reportOutcome(res.Outcome)
	}
}

func (c *CLIProcessing) reportOutcome(out base.MoveOutcome) {
	c.dests = 0
	if !out.Applied {
		c.redraw()
		fmt.Fprintln(c.out, c.cat.R("notice.illegal", map[string]string{
			"From":   out.From.String(),
			"To":     out.To.String(),
			"Reason": c.cat.T(lang.ReasonKey(out)),
		}))
		return
	}
	c.redraw()
}

func (c *CLIProcessing) askPromotion(sq base.Square, _ base.Color) base.Kind {
	fmt.Fprintf(c.out, "%v ", sq)
	fmt.Fprint(c.out, c.cat.T("cli.promotion"))

	var answer byte
	if c.raw {
		answer, _ = c.r.ReadByte()
		fmt.Fprintln(c.out)
	} else {
		line, _ := c.r.ReadString('\n')
		if s := strings.TrimSpace(line); s != "" {
			answer = s[0]
		}
	}
	return promotionKind(answer)
}

func promotionKind(b byte) base.Kind {
	switch b {
	case 'r', 'R':
		return base.Rook
	case 'b', 'B':
		return base.Bishop
	case 'n', 'N':
		return base.Knight
	default:
		return base.Queen
	}
}

func (c *CLIProcessing) redraw() {
	b := c.game.Board()
	hl := Highlight{Cursor: c.cursor, ShowCursor: c.raw, Destinations: c.dests}
	hl.Selected, hl.HasSelection = c.game.Selection()
	if c.showThreats {
		hl.Threats = moves.AttackedSquares(&b, c.game.ToMove().Opponent())
	}
	c.draw(c.out, b, hl)
	c.printStatus()
}

func (c *CLIProcessing) printStatus() {
	toMove := c.game.ToMove()
	data := map[string]string{
		"Color":  c.colorName(toMove),
		"Winner": c.colorName(toMove.Opponent()),
	}
	fmt.Fprintln(c.out, c.cat.R(lang.Key("status", c.game.Status()), data))
}

func (c *CLIProcessing) colorName(col base.Color) string {
	return c.cat.T(lang.Key("color", col))
}

type crlfWriter struct {
	w io.Writer
}

func (cw crlfWriter) Write(p []byte) (int, error) {
	s := strings.ReplaceAll(string(p), "\n", "\r\n")
	if _, err := io.WriteString(cw.w, s); err != nil {
		return 0, err
	}
	return len(p), nil
}
