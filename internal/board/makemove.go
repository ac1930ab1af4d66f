package board

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

var rookHome = map[Square]CastlingRights{
	NewSquare(0, 0): WhiteQueenside,
	NewSquare(7, 0): WhiteKingside,
	NewSquare(0, 7): BlackQueenside,
	NewSquare(7, 7): BlackKingside,
}

// MakeMove applies m to the board, pushing a history frame that
// UnmakeMove later consumes.
func (b *Board) MakeMove(m Move) {
	frame := HistoryFrame{
		Move:          m,
		Castling:      b.Castling,
		HalfmoveClock: b.HalfmoveClock,
		EnPassant:     b.EnPassant,
		Key:           b.Key,
	}
	b.History[b.HistoryIndex] = frame
	b.HistoryIndex++

	b.EnPassant = NoSquare

	mover := m.Piece
	b.Remove(m.From)
	b.Put(m.To, mover)

	if m.IsPromotion() {
		b.Put(m.To, NewPiece(m.Promotion, mover.Color()))
	}

	if m.EPVictim != NoSquare {
		b.Remove(m.EPVictim)
	}

	if mover.Type() == Pawn && absInt(int(m.To)-int(m.From)) == 2*Dim {
		b.EnPassant = Square((int(m.From) + int(m.To)) / 2)
	}

	if mover.Type() == King {
		if mover.Color() == White {
			b.Castling &^= WhiteKingside | WhiteQueenside
		} else {
			b.Castling &^= BlackKingside | BlackQueenside
		}
	}
	if right, ok := rookHome[m.From]; ok {
		b.Castling &^= right
	}
	if m.Captured.Type() == Rook {
		if right, ok := rookHome[m.To]; ok {
			b.Castling &^= right
		}
	}

	switch {
	case m.IsWhiteKingsideCastle():
		b.Remove(NewSquare(7, 0))
		b.Put(NewSquare(5, 0), WhiteRook)
	case m.IsWhiteQueensideCastle():
		b.Remove(NewSquare(0, 0))
		b.Put(NewSquare(3, 0), WhiteRook)
	case m.IsBlackKingsideCastle():
		b.Remove(NewSquare(7, 7))
		b.Put(NewSquare(5, 7), BlackRook)
	case m.IsBlackQueensideCastle():
		b.Remove(NewSquare(0, 7))
		b.Put(NewSquare(3, 7), BlackRook)
	}

	if mover.Color() == Black {
		b.FullmoveNumber++
	}

	if mover.Type() == Pawn || m.IsCapture() {
		b.HalfmoveClock = 0
	} else {
		b.HalfmoveClock++
	}

	b.SideToMove = b.SideToMove.Other()
	b.Key = computeZobrist(b)
	b.assertZobristConsistent()
}

// UnmakeMove pops the most recent history frame and restores the board
// to exactly the state it had before that move was made, including the
// history index.
func (b *Board) UnmakeMove() {
	if b.HistoryIndex == 0 {
		return
	}
	b.HistoryIndex--
	frame := b.History[b.HistoryIndex]
	m := frame.Move
	mover := m.Piece

	b.SideToMove = b.SideToMove.Other()

	switch {
	case m.IsWhiteKingsideCastle():
		b.Remove(NewSquare(5, 0))
		b.Put(NewSquare(7, 0), WhiteRook)
	case m.IsWhiteQueensideCastle():
		b.Remove(NewSquare(3, 0))
		b.Put(NewSquare(0, 0), WhiteRook)
	case m.IsBlackKingsideCastle():
		b.Remove(NewSquare(5, 7))
		b.Put(NewSquare(7, 7), BlackRook)
	case m.IsBlackQueensideCastle():
		b.Remove(NewSquare(3, 7))
		b.Put(NewSquare(0, 7), BlackRook)
	}

	b.Remove(m.To)
	b.Put(m.From, mover)

	if m.EPVictim != NoSquare {
		// The captured pawn is the opposite color of the pawn that
		// captured it en passant; mover.Color().Other() names that
		// directly without needing a separate stored field.
		b.Put(m.EPVictim, NewPiece(Pawn, mover.Color().Other()))
	} else if !m.Captured.IsEmpty() {
		b.Put(m.To, m.Captured)
	}

	b.Castling = frame.Castling
	b.HalfmoveClock = frame.HalfmoveClock
	b.EnPassant = frame.EnPassant
	b.Key = frame.Key

	if mover.Color() == Black {
		b.FullmoveNumber--
	}

	b.assertZobristConsistent()
}

// MakeNull plays a null move: the side to move passes, en-passant
// rights lapse, and the Zobrist key is recomputed for the flipped side
// to move. Used only by the search's null-move pruning.
func (b *Board) MakeNull() {
	frame := HistoryFrame{
		Move:          NoMove,
		WasNull:       true,
		Castling:      b.Castling,
		HalfmoveClock: b.HalfmoveClock,
		EnPassant:     b.EnPassant,
		Key:           b.Key,
	}
	b.History[b.HistoryIndex] = frame
	b.HistoryIndex++

	b.EnPassant = NoSquare
	b.SideToMove = b.SideToMove.Other()
	b.Key = computeZobrist(b)
}

// UnmakeNull reverses MakeNull.
func (b *Board) UnmakeNull() {
	if b.HistoryIndex == 0 {
		return
	}
	b.HistoryIndex--
	frame := b.History[b.HistoryIndex]

	b.SideToMove = b.SideToMove.Other()
	b.Castling = frame.Castling
	b.HalfmoveClock = frame.HalfmoveClock
	b.EnPassant = frame.EnPassant
	b.Key = frame.Key
}

// LastMoveWasNull reports whether the most recently made ply (if any)
// was a null move. The history frame carries its own flag rather than
// overloading a nil Move as the sentinel, so a real move and "no prior
// ply" stay distinguishable from a null move.
func (b *Board) LastMoveWasNull() bool {
	if b.HistoryIndex == 0 {
		return false
	}
	return b.History[b.HistoryIndex-1].WasNull
}
