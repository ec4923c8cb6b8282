package base

import "fmt"

// Forsyth–Edwards Notation
const FEN_START_GAME string = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

type Color uint8

const (
	White Color = iota
	Black
)

func (c Color) Opponent() Color {
	if c == White {
		return Black
	}
	return White
}

func (c Color) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

type Kind uint8

const (
	NoKind Kind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

func (k Kind) String() string {
	switch k {
	case Pawn:
		return "pawn"
	case Knight:
		return "knight"
	case Bishop:
		return "bishop"
	case Rook:
		return "rook"
	case Queen:
		return "queen"
	case King:
		return "king"
	default:
		return "none"
	}
}

// IsPromotable reports whether a pawn may turn into k.
func (k Kind) IsPromotable() bool {
	return k == Queen || k == Rook || k == Bishop || k == Knight
}

// Piece is compared by value; the zero Piece is an empty square.
type Piece struct {
	Color Color
	Kind  Kind
}

var EmptyPiece = Piece{}

func NewPiece(c Color, k Kind) Piece {
	return Piece{Color: c, Kind: k}
}

func (p Piece) IsEmpty() bool {
	return p.Kind == NoKind
}

// Is reports whether p is a piece of color c and kind k.
func (p Piece) Is(c Color, k Kind) bool {
	return p.Kind == k && p.Color == c
}

func (p Piece) String() string {
	if p.IsEmpty() {
		return "empty"
	}
	return p.Color.String() + " " + p.Kind.String()
}

type GameStatus uint8

const (
	Normal GameStatus = iota
	Check
	Checkmate
)

func (gs GameStatus) String() string {
	switch gs {
	case Check:
		return "check"
	case Checkmate:
		return "checkmate"
	default:
		return "normal"
	}
}

// Square is a board coordinate; row 0 is Black's back rank, row 7 is White's.
type Square struct {
	Row int
	Col int
}

func Sq(row, col int) Square {
	return Square{Row: row, Col: col}
}

func (s Square) IsValid() bool {
	return s.Row >= 0 && s.Row < 8 && s.Col >= 0 && s.Col < 8
}

func (s Square) Index() int {
	return s.Row*8 + s.Col
}

func (s Square) String() string {
	if !s.IsValid() {
		return "??"
	}
	return string([]rune{rune('a' + s.Col), rune('8' - s.Row)})
}

func SquareFromIndex(i int) Square {
	return Square{Row: i / 8, Col: i % 8}
}

func SquareFromAlgebraic(pos string) (Square, error) {
	// 'a' ~ 'h' to col 0-7
	// '8' ~ '1' to row 0-7
	if len(pos) != 2 || pos[0] < 'a' || pos[0] > 'h' || pos[1] < '1' || pos[1] > '8' {
		return Square{}, fmt.Errorf("invalid square %q", pos)
	}
	return Square{Row: int('8' - pos[1]), Col: int(pos[0] - 'a')}, nil
}

// HomeRow is the back rank of c.
func HomeRow(c Color) int {
	if c == White {
		return 7
	}
	return 0
}

// PromotionRow is the row where a pawn of color c promotes.
func PromotionRow(c Color) int {
	return HomeRow(c.Opponent())
}

type StatusCasting struct {
	WK bool
	WQ bool
	BK bool
	BQ bool
}

// Allowed reports the right for color c on the kingside (true) or queenside.
func (sc StatusCasting) Allowed(c Color, kingside bool) bool {
	switch {
	case c == White && kingside:
		return sc.WK
	case c == White:
		return sc.WQ
	case kingside:
		return sc.BK
	default:
		return sc.BQ
	}
}

// Revoke clears the right for color c on the given side.
func (sc *StatusCasting) Revoke(c Color, kingside bool) {
	switch {
	case c == White && kingside:
		sc.WK = false
	case c == White:
		sc.WQ = false
	case kingside:
		sc.BK = false
	default:
		sc.BQ = false
	}
}

var AllCasting = StatusCasting{WK: true, WQ: true, BK: true, BQ: true}

type Mailbox [64]Piece

// Board is a value type: assigning it copies every square.
type Board struct {
	Mailbox Mailbox
	Casting StatusCasting
}

func NewEmptyBoard() *Board {
	return &Board{Casting: AllCasting}
}

func NewClassicBoard() *Board {
	b := &Board{}
	b.Initial()
	return b
}

// Initial resets b to the standard starting placement.
func (b *Board) Initial() {
	backRank := [8]Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	b.Mailbox = Mailbox{}
	for col := 0; col < 8; col++ {
		b.Set(Sq(0, col), NewPiece(Black, backRank[col]))
		b.Set(Sq(1, col), NewPiece(Black, Pawn))
		b.Set(Sq(6, col), NewPiece(White, Pawn))
		b.Set(Sq(7, col), NewPiece(White, backRank[col]))
	}
	b.Casting = AllCasting
}

func (b *Board) Get(s Square) Piece {
	if b == nil || !s.IsValid() {
		return EmptyPiece
	}
	return b.Mailbox[s.Index()]
}

func (b *Board) Set(s Square, p Piece) {
	if b == nil || !s.IsValid() {
		return
	}
	b.Mailbox[s.Index()] = p
}

// IsEmpty reports whether s holds no piece.
func (b *Board) IsEmpty(s Square) bool {
	return b.Get(s).IsEmpty()
}

// Count returns the number of pieces equal to p.
func (b *Board) Count(p Piece) int {
	n := 0
	for _, q := range b.Mailbox {
		if !q.IsEmpty() && q == p {
			n++
		}
	}
	return n
}

func ConvertRuneFromPiece(p Piece) rune {
	var r rune
	switch p.Kind {
	case Pawn:
		r = 'P'
	case Knight:
		r = 'N'
	case Bishop:
		r = 'B'
	case Rook:
		r = 'R'
	case Queen:
		r = 'Q'
	case King:
		r = 'K'
	default:
		return '.'
	}
	if p.Color == Black {
		r += 'a' - 'A'
	}
	return r
}

func ConvertKindFromRune(r rune) Kind {
	switch r {
	case 'P', 'p':
		return Pawn
	case 'N', 'n':
		return Knight
	case 'B', 'b':
		return Bishop
	case 'R', 'r':
		return Rook
	case 'Q', 'q':
		return Queen
	case 'K', 'k':
		return King
	default:
		return NoKind
	}
}
