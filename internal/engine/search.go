package engine

import (
	"sync/atomic"
	"time"

	"github.com/waxwing-chess/engine/internal/board"
)

// Search score bounds and the mate score.
const (
	ValueMin = -32767
	ValueMax = 32767
	Mate     = 30000
)

// nodeCheckInterval amortizes the abort-flag/clock check: polling it on
// every node visit would dominate search time at high node rates.
const nodeCheckInterval = 2000

// InfoLine is one principal-variation report emitted whenever the root
// alpha is raised.
type InfoLine struct {
	Depth    int
	Value    int
	Elapsed  time.Duration
	Nodes    uint64
	PV       []board.Move
}

// Searcher runs iterative-deepening alpha-beta search against a single
// Board it does not own (the caller, Engine, owns the board and passes
// it in for the duration of one Search call).
type Searcher struct {
	TT      *TranspositionTable
	History History

	nodes uint64

	aborted    atomic.Bool
	stopSignal atomic.Bool

	start      time.Time
	budget     time.Duration
	depthLimit int

	infoLines []InfoLine

	// OnInfo, if set, is called synchronously every time the root alpha
	// is raised, so a caller (the XBoard adapter) can stream PV lines
	// live instead of waiting for IterativeDeepening to return.
	OnInfo func(InfoLine)
}

// NewSearcher builds a Searcher sharing the given transposition table,
// which the Engine keeps alive across searches within a game.
func NewSearcher(tt *TranspositionTable) *Searcher {
	return &Searcher{TT: tt}
}

// Stop requests cooperative cancellation of an in-flight search. Safe to
// call from another goroutine; the search itself remains single-threaded
// and only polls this flag at its usual abort checkpoints.
func (s *Searcher) Stop() {
	Log.Debug().Msg("search stop requested")
	s.stopSignal.Store(true)
}

// IterativeDeepening searches b with the given time budget and depth
// limit, returning the best move found and the info lines describing
// each completed (or root-improving) iteration.
func (s *Searcher) IterativeDeepening(b *board.Board, budgetMs, depthLimit int) (board.Move, []InfoLine) {
	s.History.Reset()
	s.TT.NewGeneration()
	s.nodes = 0
	s.aborted.Store(false)
	s.stopSignal.Store(false)
	s.start = time.Now()
	s.budget = time.Duration(budgetMs) * time.Millisecond
	s.infoLines = nil

	if depthLimit <= 0 || depthLimit > DepthMax {
		depthLimit = DepthMax
	}
	s.depthLimit = depthLimit

	Log.Debug().Int("budget_ms", budgetMs).Int("depth_limit", depthLimit).Msg("search start")

	best := board.NoMove
	for depth := 1; depth <= depthLimit; depth++ {
		var root pvLine
		s.alphaBeta(b, ValueMin, ValueMax, 0, depth, &root)

		if s.aborted.Load() {
			break
		}
		if root.n > 0 {
			best = root.moves[0]
		}
		if time.Since(s.start) > (s.budget*60)/100 {
			break
		}
	}
	Log.Debug().Str("best", best.String()).Uint64("nodes", s.nodes).Dur("elapsed", time.Since(s.start)).Msg("search stop")
	return best, s.infoLines
}

// emitRootInfo records and streams one PV line for a root alpha raise.
func (s *Searcher) emitRootInfo(depth, value int, pv []board.Move) {
	line := InfoLine{
		Depth:   depth,
		Value:   value,
		Elapsed: time.Since(s.start),
		Nodes:   s.nodes,
		PV:      append([]board.Move(nil), pv...),
	}
	s.infoLines = append(s.infoLines, line)
	if s.OnInfo != nil {
		s.OnInfo(line)
	}
}

// checkAbort polls the clock and the cooperative stop signal every
// nodeCheckInterval nodes, and the static depth ceiling, latching the
// abort flag so every recursive frame can bail out cheaply afterwards.
func (s *Searcher) checkAbort(depth int) {
	if s.nodes%nodeCheckInterval != 0 {
		return
	}
	if s.stopSignal.Load() || time.Since(s.start) >= s.budget || depth >= s.depthLimit {
		if !s.aborted.Swap(true) {
			Log.Debug().Dur("elapsed", time.Since(s.start)).Uint64("nodes", s.nodes).Msg("search aborted")
		}
	}
}

// alphaBeta runs one negamax node: razoring, then null-move pruning,
// then the main move loop with futility pruning, late move reductions,
// and a PVS re-search when a reduced or null-window probe beats alpha.
func (s *Searcher) alphaBeta(b *board.Board, alpha, beta, ply, depth int, pvOut *pvLine) int {
	if s.aborted.Load() {
		return 0
	}
	if ply > 0 && b.IsDraw() {
		return 0
	}
	if depth <= 0 {
		return s.quiescence(b, alpha, beta, ply, pvOut)
	}

	s.nodes++
	s.checkAbort(depth)

	if ply > 0 {
		pvOut.clear()
	}
	if ply >= PlyMax-1 {
		return Evaluate(b)
	}

	entry, usable, hint := s.TT.Probe(b.Key, depth)
	if usable && entry.Usable(alpha, beta) {
		return AdjustForSearch(entry.Value, ply)
	}

	inCheck := b.InCheck(b.SideToMove)
	eval := Evaluate(b)
	var childPV pvLine

	if depth <= 3 && !inCheck {
		margin := 150 * depth
		if eval+margin < alpha {
			razorAlpha := alpha - margin
			v := s.quiescence(b, razorAlpha, razorAlpha+1, ply, &childPV)
			if v <= razorAlpha {
				return v
			}
		}
	}

	if depth > 3 && !inCheck && alpha == beta-1 && eval >= beta &&
		!b.LastMoveWasNull() && b.HasMaterial(b.SideToMove) {
		b.MakeNull()
		v := -s.alphaBeta(b, -beta, -beta+1, ply+1, depth-3, &childPV)
		b.UnmakeNull()
		if v >= beta {
			if v > EvalMax {
				v = beta
			}
			s.TT.Store(b.Key, depth, v, ply, BoundLower, board.NoMove)
			return v
		}
	}

	newDepth := depth - 1
	if inCheck {
		newDepth++
	}

	moves := b.GenerateMoves()
	OrderMoves(moves, hint, &s.History)

	bestValue := ValueMin
	bestMove := board.NoMove
	moveCount := 0
	mover := b.SideToMove

	for i := 0; i < moves.Len(); i++ {
		m := moves.Get(i)
		b.MakeMove(m)
		if !b.MoveMadeLegal(m, mover) {
			b.UnmakeMove()
			continue
		}
		moveCount++

		var v int
		if moveCount == 1 {
			v = -s.alphaBeta(b, -beta, -alpha, ply+1, newDepth, &childPV)
		} else {
			if !inCheck && newDepth == 1 && !m.IsTactical() && alpha == beta-1 && eval+100 < alpha {
				b.UnmakeMove()
				continue
			}

			reduction := 0
			if !inCheck && newDepth > 1 && moveCount > 4 && !m.IsTactical() && alpha == beta-1 && eval < alpha {
				reduction = 1
			}

			v = -s.alphaBeta(b, -alpha-1, -alpha, ply+1, newDepth-reduction, &childPV)
			if !s.aborted.Load() && v > alpha && reduction > 0 {
				v = -s.alphaBeta(b, -alpha-1, -alpha, ply+1, newDepth, &childPV)
			}
			if !s.aborted.Load() && v > alpha && v < beta {
				v = -s.alphaBeta(b, -beta, -alpha, ply+1, newDepth, &childPV)
			}
		}

		b.UnmakeMove()
		if s.aborted.Load() {
			return 0
		}

		if v >= beta {
			s.History.Update(m, depth)
			s.TT.Store(b.Key, depth, v, ply, BoundLower, m)
			return v
		}
		if v > bestValue {
			bestValue = v
			if v > alpha {
				alpha = v
				bestMove = m
				pvOut.set(m, &childPV)
				if ply == 0 {
					s.emitRootInfo(depth, v, pvOut.slice())
				}
			}
		}
	}

	if moveCount == 0 {
		if inCheck {
			return -Mate + ply
		}
		return 0
	}

	if !bestMove.IsZero() {
		s.History.Update(bestMove, depth)
		s.TT.Store(b.Key, depth, bestValue, ply, BoundExact, bestMove)
	} else {
		s.TT.Store(b.Key, depth, bestValue, ply, BoundUpper, board.NoMove)
	}
	return bestValue
}

// quiescence extends the search through captures and promotions only,
// with no transposition-table use, no check extension, and no pruning
// beyond the stand-pat bound itself.
func (s *Searcher) quiescence(b *board.Board, alpha, beta, ply int, pvOut *pvLine) int {
	if s.aborted.Load() {
		return 0
	}
	s.nodes++
	s.checkAbort(0)

	if ply > 0 {
		pvOut.clear()
	}
	if ply >= PlyMax-1 {
		return Evaluate(b)
	}

	best := Evaluate(b)
	if best >= beta {
		return best
	}
	if best > alpha {
		alpha = best
	}

	moves := b.GenerateMoves()
	OrderMoves(moves, board.NoMove, &s.History)
	mover := b.SideToMove

	var childPV pvLine
	for i := 0; i < moves.Len(); i++ {
		m := moves.Get(i)
		if !m.IsTactical() {
			continue
		}
		b.MakeMove(m)
		if !b.MoveMadeLegal(m, mover) {
			b.UnmakeMove()
			continue
		}
		v := -s.quiescence(b, -beta, -alpha, ply+1, &childPV)
		b.UnmakeMove()

		if s.aborted.Load() {
			return 0
		}
		if v >= beta {
			return v
		}
		if v > best {
			best = v
			if v > alpha {
				alpha = v
				pvOut.set(m, &childPV)
			}
		}
	}
	return best
}
