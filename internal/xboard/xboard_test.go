package xboard

import (
	"bytes"
	"strings"
	"testing"

	"github.com/waxwing-chess/engine/internal/engine"
)

func TestGoEmitsMoveLine(t *testing.T) {
	var out bytes.Buffer
	eng := engine.NewEngine()
	p := NewProtocol(eng, &out)
	p.dispatch("st 1")
	p.dispatch("go")
	<-p.searchDone

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	last := lines[len(lines)-1]
	if !strings.HasPrefix(last, "move ") {
		t.Fatalf("expected last line to start with \"move \", got %q", last)
	}
}

func TestPostEnablesInfoLines(t *testing.T) {
	var out bytes.Buffer
	eng := engine.NewEngine()
	p := NewProtocol(eng, &out)
	p.dispatch("post")
	p.dispatch("sd 3")
	p.dispatch("go")
	<-p.searchDone

	if !strings.Contains(out.String(), "\n") || out.Len() == 0 {
		t.Fatal("expected some output while posting")
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) < 2 {
		t.Fatalf("expected info lines before the final move line, got %d lines", len(lines))
	}
}

func TestNopostSuppressesInfoLines(t *testing.T) {
	var out bytes.Buffer
	eng := engine.NewEngine()
	p := NewProtocol(eng, &out)
	p.dispatch("nopost")
	p.dispatch("st 1")
	p.dispatch("go")
	<-p.searchDone

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected exactly one move line with posting off, got %d lines: %q", len(lines), out.String())
	}
}

func TestFallbackMoveApplication(t *testing.T) {
	var out bytes.Buffer
	eng := engine.NewEngine()
	p := NewProtocol(eng, &out)
	before := eng.FEN()

	p.dispatch("e2e4")
	if eng.FEN() == before {
		t.Fatal("unrecognized line should have been tried as a move")
	}
}

func TestUndoCommand(t *testing.T) {
	var out bytes.Buffer
	eng := engine.NewEngine()
	p := NewProtocol(eng, &out)
	before := eng.FEN()

	p.dispatch("e2e4")
	p.dispatch("undo")
	if eng.FEN() != before {
		t.Fatalf("undo did not restore position: got %q, want %q", eng.FEN(), before)
	}
}

func TestQuitStopsDispatch(t *testing.T) {
	var out bytes.Buffer
	eng := engine.NewEngine()
	p := NewProtocol(eng, &out)
	if p.dispatch("quit") {
		t.Fatal("dispatch(\"quit\") should return false")
	}
}
