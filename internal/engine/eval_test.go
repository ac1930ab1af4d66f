package engine

import (
	"testing"

	"github.com/waxwing-chess/engine/internal/board"
)

func TestEvaluateSymmetricStartingPosition(t *testing.T) {
	b := board.NewStartingBoard()
	if v := Evaluate(b); v != 0 {
		t.Errorf("starting position should evaluate to 0 for either side, got %d", v)
	}
}

func TestEvaluateMaterialAdvantage(t *testing.T) {
	b, err := board.ParseFEN("4k3/8/8/8/8/8/8/4K2Q w - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	if v := Evaluate(b); v <= 0 {
		t.Errorf("White up a queen should evaluate positive for White to move, got %d", v)
	}

	b.SideToMove = board.Black
	if v := Evaluate(b); v >= 0 {
		t.Errorf("White up a queen should evaluate negative for Black to move, got %d", v)
	}
}

func TestBareKingsEvaluateToZero(t *testing.T) {
	b, err := board.ParseFEN("4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	// Bare kings: no piece subtracts from the phase, so it stays at
	// PhaseTotal and the score is the (symmetric) endgame score.
	if v := Evaluate(b); v != 0 {
		t.Errorf("bare kings should evaluate to 0, got %d", v)
	}
}
