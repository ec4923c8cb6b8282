package moves

import (
	"duelchess/src/base"
	"duelchess/src/convert/convfen"
	"testing"
)

func boardFromFEN(t *testing.T, fen string) *base.Board {
	t.Helper()
	b, _, err := convfen.ConvertFENToBoard(fen)
	if err != nil {
		t.Fatalf("ConvertFENToBoard(%q): %v", fen, err)
	}
	return b
}

func sq(t *testing.T, name string) base.Square {
	t.Helper()
	s, err := base.SquareFromAlgebraic(name)
	if err != nil {
		t.Fatalf("square %q: %v", name, err)
	}
	return s
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		from string
		to   string
		want base.Reason
	}{
		{"pawn single step", base.FEN_START_GAME, "e2", "e3", base.ReasonNone},
		{"pawn double step", base.FEN_START_GAME, "e2", "e4", base.ReasonNone},
		{"pawn triple step", base.FEN_START_GAME, "e2", "e5", base.ShapeInvalid},
		{"pawn diagonal onto empty", base.FEN_START_GAME, "e2", "d3", base.ShapeInvalid},
		{"pawn backwards", "4k3/3p4/8/8/8/8/8/4K3 b - - 0 1", "d7", "d8", base.ShapeInvalid},
		{"black pawn double step", "4k3/3p4/8/8/8/8/8/4K3 b - - 0 1", "d7", "d5", base.ReasonNone},
		{"pawn double step off start rank", "4k3/8/8/8/8/4P3/8/4K3 w - - 0 1", "e3", "e5", base.ShapeInvalid},
		{"pawn forward onto piece", "4k3/8/8/8/8/4p3/4P3/4K3 w - - 0 1", "e2", "e3", base.PathBlocked},
		{"pawn double step jumps piece", "4k3/8/8/8/8/4p3/4P3/4K3 w - - 0 1", "e2", "e4", base.PathBlocked},
		{"pawn double step onto piece", "4k3/8/8/8/4p3/8/4P3/4K3 w - - 0 1", "e2", "e4", base.PathBlocked},
		{"white pawn capture", "4k3/8/8/8/8/3p4/4P3/4K3 w - - 0 1", "e2", "d3", base.ReasonNone},
		{"black pawn capture", "4k3/8/8/8/8/3p4/4P3/4K3 b - - 0 1", "d3", "e2", base.ReasonNone},
		{"knight jump", base.FEN_START_GAME, "g1", "f3", base.ReasonNone},
		{"knight onto own piece", base.FEN_START_GAME, "g1", "e2", base.OwnPieceBlocked},
		{"knight bad shape", base.FEN_START_GAME, "g1", "g3", base.ShapeInvalid},
		{"bishop blocked", base.FEN_START_GAME, "c1", "e3", base.PathBlocked},
		{"bishop open diagonal", "4k3/8/8/8/8/8/8/2B1K3 w - - 0 1", "c1", "h6", base.ReasonNone},
		{"bishop straight", "4k3/8/8/8/8/8/8/2B1K3 w - - 0 1", "c1", "c5", base.ShapeInvalid},
		{"rook blocked", base.FEN_START_GAME, "a1", "a3", base.PathBlocked},
		{"rook captures first blocker", "4k3/8/p7/8/8/8/8/R3K3 w - - 0 1", "a1", "a6", base.ReasonNone},
		{"rook cannot jump", "4k3/p7/p7/8/8/8/8/R3K3 w - - 0 1", "a1", "a7", base.PathBlocked},
		{"rook diagonal", "4k3/8/8/8/8/8/8/R3K3 w - - 0 1", "a1", "b2", base.ShapeInvalid},
		{"queen diagonal", "4k3/8/8/8/8/8/8/3QK3 w - - 0 1", "d1", "h5", base.ReasonNone},
		{"queen file", "4k3/8/8/8/8/8/8/3QK3 w - - 0 1", "d1", "d8", base.ReasonNone},
		{"queen knight shape", "4k3/8/8/8/8/8/8/3QK3 w - - 0 1", "d1", "e3", base.ShapeInvalid},
		{"king step", "4k3/8/8/8/8/8/8/4K3 w - - 0 1", "e1", "d2", base.ReasonNone},
		{"king two squares up", "4k3/8/8/8/8/8/8/4K3 w - - 0 1", "e1", "e3", base.ShapeInvalid},
		{"king castle blocked", "4k3/8/8/8/8/8/8/4KB1R w K - 0 1", "e1", "g1", base.CastleBlocked},
		{"king castle onto own knight", base.FEN_START_GAME, "e1", "g1", base.OwnPieceBlocked},
		{"empty source", base.FEN_START_GAME, "e4", "e5", base.PieceNotFound},
		{"same square", base.FEN_START_GAME, "e2", "e2", base.OwnPieceBlocked},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := boardFromFEN(t, tt.fen)
			if got := Validate(b, sq(t, tt.from), sq(t, tt.to)); got != tt.want {
				t.Fatalf("Validate(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
			if IsPseudoLegal(b, sq(t, tt.from), sq(t, tt.to)) != (tt.want == base.ReasonNone) {
				t.Fatalf("IsPseudoLegal disagrees with Validate")
			}
		})
	}
}

func TestValidateOffBoard(t *testing.T) {
	b := base.NewClassicBoard()
	if got := Validate(b, base.Sq(7, 0), base.Sq(8, 0)); got != base.ShapeInvalid {
		t.Fatalf("got %v", got)
	}
	if got := Validate(b, base.Sq(-1, 0), base.Sq(0, 0)); got != base.PieceNotFound {
		t.Fatalf("got %v", got)
	}
}

func TestIsPathClear(t *testing.T) {
	b := boardFromFEN(t, "4k3/8/8/3p4/8/8/8/R3K3 w - - 0 1")
	tests := []struct {
		from, to string
		want     bool
	}{
		{"a1", "d1", true},
		{"a1", "e1", true}, // endpoints are excluded
		{"a1", "h1", false},
		{"a1", "a8", true},
		{"a1", "h8", true},
		{"b3", "f7", false}, // d5 in between
		{"h1", "a8", false},
		{"a1", "a2", true},
	}
	for _, tt := range tests {
		if got := IsPathClear(b, sq(t, tt.from), sq(t, tt.to)); got != tt.want {
			t.Errorf("IsPathClear(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestIsAttacked(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		sq   string
		by   base.Color
		want bool
	}{
		{"black pawn attacks downward", "4k3/8/8/3p4/8/8/8/4K3 w - - 0 1", "e4", base.Black, true},
		{"black pawn not upward", "4k3/8/8/3p4/8/8/8/4K3 w - - 0 1", "e6", base.Black, false},
		{"black pawn not forward", "4k3/8/8/3p4/8/8/8/4K3 w - - 0 1", "d4", base.Black, false},
		{"white pawn attacks upward", "4k3/8/8/8/3P4/8/8/4K3 w - - 0 1", "c5", base.White, true},
		{"white pawn not downward", "4k3/8/8/8/3P4/8/8/4K3 w - - 0 1", "c3", base.White, false},
		{"knight", "4k3/8/8/8/8/5n2/8/4K3 w - - 0 1", "e1", base.Black, true},
		{"knight wrong color", "4k3/8/8/8/8/5N2/8/4K3 w - - 0 1", "e1", base.Black, false},
		{"rook along rank", "4k3/8/8/8/8/8/8/q3K3 w - - 0 1", "e1", base.Black, true},
		{"rook blocked", "4k3/8/8/8/r1P1K3/8/8/8 w - - 0 1", "e4", base.Black, false},
		{"rook hits first blocker", "4k3/8/8/8/r1P1K3/8/8/8 w - - 0 1", "c4", base.Black, true},
		{"bishop diagonal", "4k3/8/8/b7/8/8/8/4K3 w - - 0 1", "e1", base.Black, true},
		{"bishop not orthogonal", "4k3/8/8/8/8/8/8/b3K3 w - - 0 1", "e1", base.Black, false},
		{"rook not diagonal", "4k3/8/8/8/8/8/5r2/4K3 w - - 0 1", "e1", base.Black, false},
		{"queen diagonal", "4k3/8/8/8/8/8/5q2/4K3 w - - 0 1", "e1", base.Black, true},
		{"own piece shields", "4k3/8/8/8/8/8/4P3/4r1K1 w - - 0 1", "e3", base.Black, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := boardFromFEN(t, tt.fen)
			if got := IsAttacked(b, sq(t, tt.sq), tt.by); got != tt.want {
				t.Fatalf("IsAttacked(%s, %v) = %v, want %v", tt.sq, tt.by, got, tt.want)
			}
			if got := AttackedSquares(b, tt.by).Has(sq(t, tt.sq)); got != tt.want {
				t.Fatalf("AttackedSquares(%v).Has(%s) = %v, want %v", tt.by, tt.sq, got, tt.want)
			}
		})
	}
}

func TestAttackedByKing(t *testing.T) {
	b := base.NewEmptyBoard()
	b.Set(base.Sq(6, 3), base.NewPiece(base.Black, base.King))
	b.Set(base.Sq(7, 4), base.NewPiece(base.White, base.King))
	if !IsAttacked(b, base.Sq(7, 4), base.Black) {
		t.Fatalf("adjacent king attacks")
	}
	if IsAttacked(b, base.Sq(7, 6), base.Black) {
		t.Fatalf("king reaches one square only")
	}
	if !AttackedSquares(b, base.Black).Has(base.Sq(7, 4)) {
		t.Fatalf("AttackedSquares misses king adjacency")
	}
}

func TestAttackedSquaresMatchesIsAttacked(t *testing.T) {
	fens := []string{
		base.FEN_START_GAME,
		"r3k2r/ppp2ppp/2n1bn2/3qp3/1b1P4/2N1BN2/PPPQ1PPP/R3KB1R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"4k3/8/8/8/8/8/8/4K2R w K - 0 1",
	}
	for _, fen := range fens {
		b := boardFromFEN(t, fen)
		for _, by := range []base.Color{base.White, base.Black} {
			set := AttackedSquares(b, by)
			for i := 0; i < 64; i++ {
				s := base.SquareFromIndex(i)
				if set.Has(s) != IsAttacked(b, s, by) {
					t.Fatalf("%s: square %v by %v: set=%v IsAttacked=%v", fen, s, by, set.Has(s), IsAttacked(b, s, by))
				}
			}
			if len(set.Squares()) != set.Count() {
				t.Fatalf("Squares() and Count() disagree")
			}
		}
	}
}

func TestKingInCheck(t *testing.T) {
	b := boardFromFEN(t, "4k3/8/8/8/8/5n2/8/4K3 w - - 0 1")
	if !KingInCheck(b, base.White) {
		t.Fatalf("white king should be in check from the knight")
	}
	if KingInCheck(b, base.Black) {
		t.Fatalf("black king is not in check")
	}

	b.Set(sq(t, "e1"), base.EmptyPiece)
	if _, ok := FindKing(b, base.White); ok {
		t.Fatalf("white king was removed")
	}
	if KingInCheck(b, base.White) {
		t.Fatalf("a missing king is never in check")
	}
}

func TestCanCastle(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		from string
		to   string
		want bool
	}{
		{"white kingside", "4k3/8/8/8/8/8/8/4K2R w K - 0 1", "e1", "g1", true},
		{"white queenside", "4k3/8/8/8/8/8/8/R3K3 w Q - 0 1", "e1", "c1", true},
		{"black kingside", "r3k2r/8/8/8/8/8/8/4K3 b kq - 0 1", "e8", "g8", true},
		{"black queenside", "r3k2r/8/8/8/8/8/8/4K3 b kq - 0 1", "e8", "c8", true},
		{"king in check", "4k3/8/8/8/8/8/4r3/4K2R w K - 0 1", "e1", "g1", false},
		{"piece between", "4k3/8/8/8/8/8/8/4KB1R w K - 0 1", "e1", "g1", false},
		{"knight on b1", "4k3/8/8/8/8/8/8/RN2K3 w Q - 0 1", "e1", "c1", false},
		{"transit attacked", "4k3/8/8/8/8/8/5r2/4K2R w K - 0 1", "e1", "g1", false},
		{"only destination attacked", "4k3/8/8/8/8/8/6r1/4K2R w K - 0 1", "e1", "g1", true},
		{"no rights", "4k3/8/8/8/8/8/8/4K2R w - - 0 1", "e1", "g1", false},
		{"rook missing", "4k3/8/8/8/8/8/8/4K3 w K - 0 1", "e1", "g1", false},
		{"enemy rook in corner", "4k3/8/8/8/8/8/8/4K2r w K - 0 1", "e1", "g1", false},
		{"king off home square", "4k3/8/8/8/8/8/8/5K1R w K - 0 1", "f1", "h1", false},
		{"not a king", "4k3/8/8/8/8/8/8/K3Q2R w - - 0 1", "e1", "g1", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := boardFromFEN(t, tt.fen)
			before := *b
			if got := CanCastle(b, sq(t, tt.from), sq(t, tt.to)); got != tt.want {
				t.Fatalf("CanCastle = %v, want %v", got, tt.want)
			}
			if *b != before {
				t.Fatalf("CanCastle changed the board")
			}
		})
	}
}

func TestTrialCastleAndRevert(t *testing.T) {
	b := boardFromFEN(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	before := *b

	tx := NewTrial(b)
	if castled := tx.Play(sq(t, "e1"), sq(t, "g1")); !castled {
		t.Fatalf("expected a castle")
	}
	if b.Get(sq(t, "g1")) != base.NewPiece(base.White, base.King) || b.Get(sq(t, "f1")) != base.NewPiece(base.White, base.Rook) {
		t.Fatalf("king and rook not relocated")
	}
	if !b.IsEmpty(sq(t, "e1")) || !b.IsEmpty(sq(t, "h1")) {
		t.Fatalf("origin squares not cleared")
	}
	if b.Casting.WK || b.Casting.WQ || !b.Casting.BK || !b.Casting.BQ {
		t.Fatalf("castling rights %+v", b.Casting)
	}
	tx.Revert()
	if *b != before {
		t.Fatalf("revert did not restore the board")
	}

	tx = NewTrial(b)
	tx.Play(sq(t, "e1"), sq(t, "c1"))
	if b.Get(sq(t, "c1")) != base.NewPiece(base.White, base.King) || b.Get(sq(t, "d1")) != base.NewPiece(base.White, base.Rook) {
		t.Fatalf("queenside castle not applied")
	}
	tx.Revert()
	if *b != before {
		t.Fatalf("revert did not restore the board")
	}
}

func TestTrialRevokesRights(t *testing.T) {
	b := boardFromFEN(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")

	tx := NewTrial(b)
	tx.Play(sq(t, "h1"), sq(t, "h5"))
	tx.Commit()
	if b.Casting.WK || !b.Casting.WQ {
		t.Fatalf("moving the h1 rook revokes only white kingside: %+v", b.Casting)
	}

	tx = NewTrial(b)
	tx.Play(sq(t, "a1"), sq(t, "a8"))
	tx.Commit()
	if b.Casting.WQ || b.Casting.BQ || !b.Casting.BK {
		t.Fatalf("capturing on a8 revokes black queenside: %+v", b.Casting)
	}
	if b.Get(sq(t, "a8")) != base.NewPiece(base.White, base.Rook) {
		t.Fatalf("capture not applied")
	}

	// a revert after commit keeps committed state
	tx.Revert()
	if b.Get(sq(t, "a8")) != base.NewPiece(base.White, base.Rook) {
		t.Fatalf("committed trial must not revert")
	}
}
