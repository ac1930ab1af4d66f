package engine

import (
	"testing"

	"github.com/waxwing-chess/engine/internal/board"
)

func TestOrderMovesHintFirst(t *testing.T) {
	b := board.NewStartingBoard()
	moves := b.GenerateMoves()
	hint := moves.Get(moves.Len() - 1)

	var h History
	OrderMoves(moves, hint, &h)

	if got := moves.Get(0); got.From != hint.From || got.To != hint.To {
		t.Fatalf("hint move %s was not ordered first, got %s", hint, got)
	}
}

func TestOrderMovesCapturesBeforeQuiet(t *testing.T) {
	b, err := board.ParseFEN("4k3/8/8/3p4/4P3/8/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	moves := b.GenerateMoves()
	var h History
	OrderMoves(moves, board.NoMove, &h)

	sawQuiet := false
	for i := 0; i < moves.Len(); i++ {
		m := moves.Get(i)
		if !m.IsCapture() {
			sawQuiet = true
			continue
		}
		if sawQuiet {
			t.Fatalf("capture %s ordered after a quiet move", m)
		}
	}
}

func TestHistoryUpdateAndAging(t *testing.T) {
	var h History
	quiet := board.Move{Piece: board.WhiteKnight, From: board.NewSquare(1, 0), To: board.NewSquare(2, 2), Captured: board.Empty, Promotion: board.NoPieceType, EPVictim: board.NoSquare}

	for i := 0; i < 20; i++ {
		h.Update(quiet, 500)
	}
	if h.score(quiet) > historyAgeLimit {
		t.Fatalf("history counter exceeded age limit without aging: %d", h.score(quiet))
	}
}

func TestHistoryIgnoresTacticalMoves(t *testing.T) {
	var h History
	capture := board.Move{Piece: board.WhiteKnight, From: board.NewSquare(1, 0), To: board.NewSquare(2, 2), Captured: board.BlackPawn}
	h.Update(capture, 10)
	if h.score(capture) != 0 {
		t.Fatalf("tactical move should not update history, got %d", h.score(capture))
	}
}
