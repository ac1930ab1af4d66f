package board

// repetitionThreshold is the number of *prior* same-parity Zobrist
// matches that must be exceeded for the current position to count as a
// repetition draw. Two prior matches plus the current occurrence is
// treated as "three repetitions" — the third occurrence is the one
// being searched, not a fourth lookup.
const repetitionThreshold = 1

// IsFiftyMoveDraw reports the fifty-move rule: 100 half-moves with no
// capture and no pawn move.
func (b *Board) IsFiftyMoveDraw() bool {
	return b.HalfmoveClock >= 100
}

// IsRepetitionDraw reports whether the current position has occurred
// more than `repetitionThreshold` times before at the same side-to-move
// parity, scanning HistoryIndex-2, -4, ... backwards.
func (b *Board) IsRepetitionDraw() bool {
	count := 0
	for i := b.HistoryIndex - 2; i >= 0; i -= 2 {
		if b.History[i].Key == b.Key {
			count++
			if count > repetitionThreshold {
				return true
			}
		}
	}
	return false
}

// IsDraw reports either automatically-detectable draw condition. The
// search only consults this away from the root (ply > 0); a drawn
// root position must still produce a move.
func (b *Board) IsDraw() bool {
	return b.IsFiftyMoveDraw() || b.IsRepetitionDraw()
}

// HasMaterial reports whether color has at least one knight, bishop,
// rook, or queen on the board. Used to disable null-move pruning in
// pawn-only (and bare-king) endgames, where a null move can't be
// trusted to represent a real tempo loss.
func (b *Board) HasMaterial(c Color) bool {
	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			p := b.Squares[NewSquare(file, rank)]
			if p.Color() != c {
				continue
			}
			switch p.Type() {
			case Knight, Bishop, Rook, Queen:
				return true
			}
		}
	}
	return false
}
