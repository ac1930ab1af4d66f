package engine

import (
	"sort"

	"github.com/waxwing-chess/engine/internal/board"
)

// historyAgeLimit bounds the history table's per-counter growth before
// it is aged down, kept distinct from board.HistoryMax, which bounds
// move count instead.
const historyAgeLimit = 9000

// History is the quiet-move ordering heuristic: history[pieceIndex][dest]
// accumulates depth whenever a quiet move raises alpha or causes a
// cutoff, independent of the position it happened in.
type History struct {
	table [12][64]int
}

// pieceIndex maps (color, piece type) to 0..11, Black offset by 6.
func pieceIndex(c board.Color, t board.PieceType) int {
	idx := int(t)
	if c == board.Black {
		idx += 6
	}
	return idx
}

// Reset zeroes the whole table. Called once per top-level search call.
func (h *History) Reset() {
	h.table = [12][64]int{}
}

// Update adds depth to the counter for a good quiet move, aging every
// counter down by dividing by 8 if any counter would exceed the limit.
func (h *History) Update(m board.Move, depth int) {
	if m.IsTactical() {
		return
	}
	idx := pieceIndex(m.Piece.Color(), m.Piece.Type())
	dest := m.To.To8x8()
	h.table[idx][dest] += depth
	if h.table[idx][dest] > historyAgeLimit {
		for i := range h.table {
			for j := range h.table[i] {
				h.table[i][j] /= 8
			}
		}
	}
}

func (h *History) score(m board.Move) int {
	idx := pieceIndex(m.Piece.Color(), m.Piece.Type())
	return h.table[idx][m.To.To8x8()]
}

// hintScore is the ordering score assigned to the single move equal to
// the transposition-table hint, above every capture score.
const hintScore = 100000000

// mvvLVAScore scores a capturing move by victim value, then attacker
// value ascending, with an additional penalty folded in for promotions
// before the 10000x scale.
func mvvLVAScore(m board.Move) int {
	victim := int(m.Captured.Type())
	attacker := int(m.Piece.Type())
	inner := victim*6 + 5 - attacker
	if m.IsPromotion() {
		inner -= 5
	}
	return inner * 10000
}

// OrderMoves scores and sorts ml in place by descending score, favoring
// the TT hint move, then captures by MVV/LVA, then quiet moves by
// history. Hint may be the zero Move if there is none.
func OrderMoves(ml *board.MoveList, hint board.Move, h *History) {
	hasHint := !hint.IsZero()
	for i := 0; i < ml.Len(); i++ {
		m := ml.Get(i)
		var score int
		switch {
		case hasHint && movesEqual(m, hint):
			score = hintScore
		case m.IsCapture():
			score = mvvLVAScore(m)
		default:
			score = h.score(m)
		}
		m.Score = score
		ml.Set(i, m)
	}
	moves := ml.Slice()
	sort.SliceStable(moves, func(i, j int) bool {
		return moves[i].Score > moves[j].Score
	})
}

func movesEqual(a, b board.Move) bool {
	return a.From == b.From && a.To == b.To && a.Promotion == b.Promotion
}
