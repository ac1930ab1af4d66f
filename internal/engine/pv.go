package engine

import "github.com/waxwing-chess/engine/internal/board"

// PlyMax bounds search and quiescence recursion depth; beyond it the
// search falls back to a static evaluation rather than recursing
// further.
const PlyMax = 128

// DepthMax bounds the iterative-deepening driver's depth_limit.
const DepthMax = 64

// pvLine is a fixed-capacity principal-variation buffer for one ply,
// avoiding a slice allocation on every recursive call. Each search frame
// declares its child's pvLine as a local value and passes a pointer to
// it down as pv_out, instead of building new slices as moves are found.
type pvLine struct {
	moves [PlyMax]board.Move
	n     int
}

func (p *pvLine) clear() {
	p.n = 0
}

// set records move as this node's best line: move followed by child's
// continuation.
func (p *pvLine) set(move board.Move, child *pvLine) {
	p.moves[0] = move
	copy(p.moves[1:], child.moves[:child.n])
	p.n = child.n + 1
}

func (p *pvLine) slice() []board.Move {
	return p.moves[:p.n]
}
