package engine

import (
	"testing"

	"github.com/waxwing-chess/engine/internal/board"
)

func newSearcher() *Searcher {
	return NewSearcher(NewTranspositionTable())
}

func TestSearchReturnsLegalMoveFromStart(t *testing.T) {
	b := board.NewStartingBoard()
	s := newSearcher()
	best, lines := s.IterativeDeepening(b, 2000, 4)

	if best.IsZero() {
		t.Fatal("expected a best move from the starting position")
	}
	if len(lines) == 0 {
		t.Fatal("expected at least one info line")
	}
	for _, line := range lines {
		if line.Value <= ValueMin || line.Value >= ValueMax {
			t.Errorf("info line value %d outside (VALUE_MIN, VALUE_MAX)", line.Value)
		}
	}
}

func TestSearchFindsMateInOne(t *testing.T) {
	// Rook delivers a back-rank mate-in-one: Ra1-a8+ leaves the black
	// king on g8 with every rank-8 escape covered by the rook and every
	// rank-7 escape covered by the white king on g6.
	b, err := board.ParseFEN("6k1/8/6K1/8/8/8/8/R7 w - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	s := newSearcher()
	best, lines := s.IterativeDeepening(b, 5000, 4)
	if best.IsZero() {
		t.Fatal("expected a move to be found")
	}
	if len(lines) == 0 {
		t.Fatal("expected at least one info line")
	}

	final := lines[len(lines)-1]
	if want := Mate - 2*final.Depth; final.Value < want {
		t.Fatalf("expected a mate-range score (>= %d) at depth %d, got %d", want, final.Depth, final.Value)
	}

	m, err := board.ParseMove(best.String(), b)
	if err != nil {
		t.Fatalf("ParseMove(%s): %v", best, err)
	}
	b.MakeMove(m)
	if !b.InCheck(board.Black) {
		t.Fatalf("expected %s to deliver check", best)
	}
	if b.GenerateLegalMoves().Len() != 0 {
		t.Fatalf("expected %s to be checkmate, but black still has a legal reply", best)
	}
}

func TestSearchDetectsFiftyMoveDraw(t *testing.T) {
	b, err := board.ParseFEN("4k3/8/8/8/8/8/8/4K3 w - - 100 60")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	s := newSearcher()
	var pv pvLine
	if v := s.alphaBeta(b, ValueMin, ValueMax, 1, 2, &pv); v != 0 {
		t.Errorf("alpha-beta at ply > 0 over a fifty-move draw should return 0, got %d", v)
	}
}

func TestQuiescenceStandPat(t *testing.T) {
	b := board.NewStartingBoard()
	s := newSearcher()
	var pv pvLine
	v := s.quiescence(b, ValueMin, ValueMax, 0, &pv)
	if v <= ValueMin || v >= ValueMax {
		t.Errorf("quiescence value %d outside bounds", v)
	}
}

func TestNullMovePruningDoesNotCorruptBoard(t *testing.T) {
	b, err := board.ParseFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	before := b.FEN()
	s := newSearcher()
	// Null-move pruning needs depth > 3 at a zero-window node, so the
	// search must go deep enough for ply-1 scouts to have depth 4+.
	s.IterativeDeepening(b, 5000, 6)
	if got := b.FEN(); got != before {
		t.Fatalf("search left the board mutated: got %q, want %q", got, before)
	}
}
