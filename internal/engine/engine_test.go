package engine

import (
	"testing"

	"github.com/waxwing-chess/engine/internal/board"
)

func TestEngineSearchFromStartingPosition(t *testing.T) {
	e := NewEngine()
	move, lines := e.Search(1000, 5)
	if move == "" {
		t.Fatal("expected a non-empty best move")
	}
	if len(move) < 4 {
		t.Errorf("move %q is not long-algebraic", move)
	}
	if len(lines) == 0 {
		t.Error("expected at least one info line")
	}
}

func TestEngineApplyMoveAndUndo(t *testing.T) {
	e := NewEngine()
	before := e.FEN()

	if err := e.ApplyMove("e2e4"); err != nil {
		t.Fatalf("ApplyMove: %v", err)
	}
	if e.FEN() == before {
		t.Fatal("ApplyMove did not change the position")
	}

	e.UndoLast()
	if e.FEN() != before {
		t.Errorf("UndoLast did not restore the position: got %q, want %q", e.FEN(), before)
	}
}

func TestEngineSetPositionRejectsMalformedFEN(t *testing.T) {
	e := NewEngine()
	if err := e.SetPosition("not a fen"); err == nil {
		t.Fatal("expected an error for malformed FEN")
	}
}

func TestEngineNewGameResetsPosition(t *testing.T) {
	e := NewEngine()
	if err := e.ApplyMove("e2e4"); err != nil {
		t.Fatalf("ApplyMove: %v", err)
	}
	if err := e.NewGame(board.StartFEN); err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	if e.FEN() != board.StartFEN {
		t.Errorf("NewGame did not reset to the starting FEN: got %q", e.FEN())
	}
}

func TestEngineOnInfoCallback(t *testing.T) {
	e := NewEngine()
	var count int
	e.OnInfo(func(InfoLine) { count++ })
	e.Search(1000, 3)
	if count == 0 {
		t.Error("expected OnInfo to be called at least once")
	}
}
