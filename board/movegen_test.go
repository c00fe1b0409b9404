package board

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/exp/slices"
)

func mustParse(t testing.TB, fen string) *Board {
	t.Helper()
	b, err := ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN(%q): %v", fen, err)
	}
	return b
}

func TestLegalMovesInitialPosition(t *testing.T) {
	b := mustParse(t, FENStartPos)
	if got := len(b.LegalMoves()); got != 20 {
		t.Errorf("initial position: %d moves, want 20", got)
	}
}

func TestLegalMovesExact(t *testing.T) {
	b := mustParse(t, "4k3/8/8/8/8/8/8/1N1NK3 w - - 0 1")
	got := make([]string, 0, 16)
	for _, m := range b.LegalMoves() {
		got = append(got, m.String())
	}
	slices.Sort(got)
	want := []string{
		"b1a3", "b1c3", "b1d2",
		"d1b2", "d1c3", "d1e3", "d1f2",
		"e1d2", "e1e2", "e1f1", "e1f2",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("legal moves mismatch (-want +got):\n%s", diff)
	}
}

func TestPerft(t *testing.T) {
	cases := []struct {
		fen   string
		depth int
		nodes uint64
	}{
		{FENStartPos, 1, 20},
		{FENStartPos, 2, 400},
		{FENStartPos, 3, 8902},
		{"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", 1, 48},
		{"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", 2, 2039},
		{"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", 1, 14},
		{"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", 2, 191},
		{"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", 3, 2812},
		{"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8", 1, 44},
		{"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8", 2, 1486},
	}
	for _, tc := range cases {
		b := mustParse(t, tc.fen)
		if got := Perft(b, tc.depth); got != tc.nodes {
			t.Errorf("perft(%q, %d) = %d, want %d", tc.fen, tc.depth, got, tc.nodes)
		}
		if got := b.ToFEN(); got != tc.fen {
			t.Errorf("perft left the board dirty: %q", got)
		}
	}
}

func TestCastlingMovesStandard(t *testing.T) {
	b := mustParse(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	var kingside, queenside bool
	for _, m := range b.LegalMoves() {
		switch m.Castle {
		case CastleKingside:
			kingside = m.From == ParseSquare("e1") && m.To == ParseSquare("g1")
		case CastleQueenside:
			queenside = m.From == ParseSquare("e1") && m.To == ParseSquare("c1")
		}
	}
	if !kingside || !queenside {
		t.Errorf("castling moves missing: kingside=%v queenside=%v", kingside, queenside)
	}
}

func TestCastlingMovesRandomStart(t *testing.T) {
	// King on c1 between rooks on b1 and h1. Kingside castling walks the
	// king four files; queenside leaves the king in place and only the
	// rook moves.
	b := mustParse(t, "4k3/8/8/8/8/8/8/1RK4R w HB - 0 1")
	var kingside, queenside *Move
	for _, m := range b.LegalMoves() {
		m := m
		switch m.Castle {
		case CastleKingside:
			kingside = &m
		case CastleQueenside:
			queenside = &m
		}
	}
	if kingside == nil || kingside.From != ParseSquare("c1") || kingside.To != ParseSquare("g1") {
		t.Errorf("kingside castle = %v, want c1g1", kingside)
	}
	if queenside == nil || queenside.From != ParseSquare("c1") || queenside.To != ParseSquare("c1") {
		t.Errorf("queenside castle = %v, want c1c1", queenside)
	}
}

func TestCastlingBlockedByAttack(t *testing.T) {
	// Black rook on f8 covers f1, so white may not castle kingside.
	b := mustParse(t, "4kr2/8/8/8/8/8/8/R3K2R w KQ - 0 1")
	for _, m := range b.LegalMoves() {
		if m.Castle == CastleKingside {
			t.Fatal("kingside castling generated through an attacked square")
		}
	}
}

func TestEnPassantGenerated(t *testing.T) {
	b := mustParse(t, "rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq f6 0 3")
	found := false
	for _, m := range b.LegalMoves() {
		if m.From == ParseSquare("e5") && m.To == ParseSquare("f6") {
			found = true
		}
	}
	if !found {
		t.Error("en passant capture e5xf6 not generated")
	}
}

func TestInCheck(t *testing.T) {
	b := mustParse(t, "4k3/8/8/8/8/8/4R3/4K3 b - - 0 1")
	if !b.InCheck(Black) {
		t.Error("black must be in check from the e-file rook")
	}
	if b.InCheck(White) {
		t.Error("white is not in check")
	}
}

func BenchmarkLegalMoves(bench *testing.B) {
	b := mustParse(bench, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	bench.ResetTimer()
	for i := 0; i < bench.N; i++ {
		b.LegalMoves()
	}
}

func BenchmarkPerft3(bench *testing.B) {
	b := mustParse(bench, FENStartPos)
	bench.ResetTimer()
	for i := 0; i < bench.N; i++ {
		Perft(b, 3)
	}
}
