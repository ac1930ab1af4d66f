package board

import "testing"

func TestMakeUnmakeRoundTrip(t *testing.T) {
	b := NewStartingBoard()
	before := *b
	moves := b.GenerateMoves()
	for i := 0; i < moves.Len(); i++ {
		m := moves.Get(i)
		b.MakeMove(m)
		b.UnmakeMove()
		if b.Key != before.Key {
			t.Fatalf("move %s: zobrist key not restored: got %x want %x", m, b.Key, before.Key)
		}
		if b.HistoryIndex != before.HistoryIndex {
			t.Fatalf("move %s: history index not restored: got %d want %d", m, b.HistoryIndex, before.HistoryIndex)
		}
		if b.Squares != before.Squares {
			t.Fatalf("move %s: squares not restored", m)
		}
		if b.Castling != before.Castling || b.EnPassant != before.EnPassant || b.HalfmoveClock != before.HalfmoveClock {
			t.Fatalf("move %s: auxiliary state not restored", m)
		}
	}
}

func TestNullMoveRoundTrip(t *testing.T) {
	b := NewStartingBoard()
	key := b.Key
	side := b.SideToMove
	b.MakeNull()
	if b.SideToMove == side {
		t.Fatal("MakeNull did not flip side to move")
	}
	b.UnmakeNull()
	if b.Key != key {
		t.Fatalf("null move did not restore zobrist key: got %x want %x", b.Key, key)
	}
	if b.SideToMove != side {
		t.Fatal("UnmakeNull did not restore side to move")
	}
}

func TestFENRoundTrip(t *testing.T) {
	fens := []string{
		StartFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq f6 0 3",
	}
	for _, fen := range fens {
		b, err := ParseFEN(fen)
		if err != nil {
			t.Fatalf("ParseFEN(%q): %v", fen, err)
		}
		if got := b.FEN(); got != fen {
			t.Errorf("FEN round trip: got %q, want %q", got, fen)
		}
	}
}

func TestZobristMatchesFreshComputation(t *testing.T) {
	b := NewStartingBoard()
	moves := b.GenerateMoves()
	for i := 0; i < moves.Len() && i < 10; i++ {
		b.MakeMove(moves.Get(i))
		if b.Key != computeZobrist(b) {
			t.Fatalf("zobrist key diverged after move %s", moves.Get(i))
		}
		b.UnmakeMove()
	}
}

// TestEnPassantCapture checks that e5f6 is generated and captures the
// pawn sitting on f5, not on f6.
func TestEnPassantCapture(t *testing.T) {
	b, err := ParseFEN("rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq f6 0 3")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	moves := b.GenerateMoves()
	var found Move
	ok := false
	for i := 0; i < moves.Len(); i++ {
		m := moves.Get(i)
		if m.From.String() == "e5" && m.To.String() == "f6" {
			found, ok = m, true
		}
	}
	if !ok {
		t.Fatal("e5f6 en-passant capture was not generated")
	}
	if found.EPVictim.String() != "f5" {
		t.Fatalf("en-passant victim square = %s, want f5", found.EPVictim)
	}
	b.MakeMove(found)
	if !b.Squares[NewSquare(5, 4)].IsEmpty() { // f5
		t.Fatal("f5 pawn was not removed by en-passant capture")
	}
	b.UnmakeMove()
	if b.Squares[NewSquare(5, 4)] != BlackPawn {
		t.Fatal("en-passant victim was not restored on unmake")
	}
}

// TestCastlingLegality checks that both white castles are legal on an
// unattacked back rank, and that neither is legal while e1 is attacked.
func TestCastlingLegality(t *testing.T) {
	b, err := ParseFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	legal := b.GenerateLegalMoves()
	haveKingside, haveQueenside := false, false
	for i := 0; i < legal.Len(); i++ {
		m := legal.Get(i)
		if m.IsWhiteKingsideCastle() {
			haveKingside = true
		}
		if m.IsWhiteQueensideCastle() {
			haveQueenside = true
		}
	}
	if !haveKingside || !haveQueenside {
		t.Fatalf("expected both white castles legal, got kingside=%v queenside=%v", haveKingside, haveQueenside)
	}

	b2, err := ParseFEN("r3k2r/8/8/8/8/8/4r3/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	legal2 := b2.GenerateLegalMoves()
	for i := 0; i < legal2.Len(); i++ {
		m := legal2.Get(i)
		if m.IsCastle() {
			t.Errorf("castle %s should be illegal with rook attacking e1's path", m)
		}
	}
}

func TestRepetitionDraw(t *testing.T) {
	b := NewStartingBoard()
	// Shuffle knights back and forth to repeat the starting position.
	seq := []string{"g1f3", "g8f6", "f3g1", "f6g8", "g1f3", "g8f6", "f3g1", "f6g8"}
	for _, s := range seq {
		m, err := ParseMove(s, b)
		if err != nil {
			t.Fatalf("ParseMove(%q): %v", s, err)
		}
		b.MakeMove(m)
	}
	if !b.IsRepetitionDraw() {
		t.Fatal("expected repetition draw after shuffling back to the starting position three times")
	}
}

func TestFiftyMoveDraw(t *testing.T) {
	b := NewStartingBoard()
	b.HalfmoveClock = 99
	if b.IsFiftyMoveDraw() {
		t.Fatal("halfmove clock 99 should not yet be a draw")
	}
	b.HalfmoveClock = 100
	if !b.IsFiftyMoveDraw() {
		t.Fatal("halfmove clock 100 should be a fifty-move draw")
	}
}
