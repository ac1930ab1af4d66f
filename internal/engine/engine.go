package engine

import (
	"fmt"

	"github.com/waxwing-chess/engine/internal/board"
)

// Engine is the collaborator API the protocol adapter drives: it owns a
// Board, a transposition table that persists across searches within a
// game, and a Searcher over the two.
type Engine struct {
	board    *board.Board
	tt       *TranspositionTable
	searcher *Searcher
}

// NewEngine builds a fresh Engine at the standard starting position with
// the default transposition table size.
func NewEngine() *Engine {
	return NewEngineWithHash(0)
}

// NewEngineWithHash builds a fresh Engine with a transposition table
// sized to hashMB megabytes (0 uses the default of 500,000 buckets).
func NewEngineWithHash(hashMB int) *Engine {
	Log.Info().Int("hash_mb", hashMB).Msg("transposition table sized")
	tt := NewTranspositionTableSized(hashMB)
	return &Engine{
		board:    board.NewStartingBoard(),
		tt:       tt,
		searcher: NewSearcher(tt),
	}
}

// OnInfo installs a callback invoked every time the root search raises
// alpha, for the XBoard adapter to stream `post` lines live.
func (e *Engine) OnInfo(fn func(InfoLine)) {
	e.searcher.OnInfo = fn
}

// Stop cooperatively cancels an in-flight Search call from another
// goroutine.
func (e *Engine) Stop() {
	e.searcher.Stop()
}

// NewGame resets the board to fen, keeping the transposition table
// across games.
func (e *Engine) NewGame(fen string) error {
	b, err := board.ParseFEN(fen)
	if err != nil {
		return fmt.Errorf("new game: %w", err)
	}
	e.board = b
	Log.Info().Str("fen", fen).Msg("new game")
	return nil
}

// SetPosition replaces the current board with the one described by fen.
func (e *Engine) SetPosition(fen string) error {
	b, err := board.ParseFEN(fen)
	if err != nil {
		return fmt.Errorf("set position: %w", err)
	}
	e.board = b
	Log.Info().Str("fen", fen).Msg("set position")
	return nil
}

// ApplyMove parses and plays text (long algebraic) against the current
// board.
func (e *Engine) ApplyMove(text string) error {
	m, err := board.ParseMove(text, e.board)
	if err != nil {
		return fmt.Errorf("apply move: %w", err)
	}
	e.board.MakeMove(m)
	return nil
}

// UndoLast pops one ply, if any has been played.
func (e *Engine) UndoLast() {
	if e.board.HistoryIndex > 0 {
		e.board.UnmakeMove()
	}
}

// FEN returns the current position's FEN.
func (e *Engine) FEN() string {
	return e.board.FEN()
}

// Snapshot returns an independent copy of the current board, safe for a
// caller to search on a background goroutine while the live board keeps
// serving NewGame/SetPosition/ApplyMove/UndoLast on the caller's own
// goroutine.
func (e *Engine) Snapshot() *board.Board {
	return e.board.Clone()
}

// Search runs iterative deepening for up to budgetMs milliseconds and at
// most depthLimit plies (0 means DepthMax), returning the best move's
// long-algebraic text and the info lines produced along the way.
func (e *Engine) Search(budgetMs, depthLimit int) (string, []InfoLine) {
	return e.SearchBoard(e.board, budgetMs, depthLimit)
}

// SearchBoard is like Search but runs against an explicit board instead
// of the engine's live one, for a caller that took a Snapshot to search
// off the goroutine that owns the live game.
func (e *Engine) SearchBoard(b *board.Board, budgetMs, depthLimit int) (string, []InfoLine) {
	best, lines := e.searcher.IterativeDeepening(b, budgetMs, depthLimit)
	if best.IsZero() {
		return "", lines
	}
	return best.String(), lines
}
