package board

// pawnAttackDirs gives the two forward-diagonal offsets a pawn of the
// given color attacks from, i.e. the directions an attacking pawn of
// that color would approach sq from.
func pawnAttackDirs(by Color) [2]Square {
	if by == White {
		return [2]Square{DirSE, DirSW} // white pawns attack northward, so they approach from the south
	}
	return [2]Square{DirNE, DirNW}
}

// SquareAttacked reports whether any piece of color `by` attacks sq.
// Checked cheapest-first: pawns, knights, rook/queen rays, bishop/queen
// rays, king.
func (b *Board) SquareAttacked(sq Square, by Color) bool {
	for _, d := range pawnAttackDirs(by) {
		from := sq + d
		p := b.Squares[from]
		if p == NewPiece(Pawn, by) {
			return true
		}
	}

	for _, d := range KnightOffsets {
		from := sq + d
		if b.Squares[from] == NewPiece(Knight, by) {
			return true
		}
	}

	for _, d := range RookDirections {
		from := sq + d
		for b.Squares[from] == Empty {
			from += d
		}
		p := b.Squares[from]
		if p == NewPiece(Rook, by) || p == NewPiece(Queen, by) {
			return true
		}
	}

	for _, d := range BishopDirections {
		from := sq + d
		for b.Squares[from] == Empty {
			from += d
		}
		p := b.Squares[from]
		if p == NewPiece(Bishop, by) || p == NewPiece(Queen, by) {
			return true
		}
	}

	for _, d := range KingOffsets {
		from := sq + d
		if b.Squares[from] == NewPiece(King, by) {
			return true
		}
	}

	return false
}

// InCheck reports whether the king of c is currently attacked.
func (b *Board) InCheck(c Color) bool {
	return b.SquareAttacked(b.KingSquare[c], c.Other())
}
