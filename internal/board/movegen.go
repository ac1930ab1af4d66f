package board

// promoPieces lists the four promotion choices in generation order:
// Queen, Rook, Bishop, Knight.
var promoPieces = [4]PieceType{Queen, Rook, Bishop, Knight}

// GenerateMoves returns every pseudo-legal move for the side to move:
// moves that obey piece movement rules but may leave the mover's own
// king in check. Legality is decided after the move is played, by
// MoveMadeLegal.
func (b *Board) GenerateMoves() *MoveList {
	ml := &MoveList{}
	us := b.SideToMove
	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			sq := NewSquare(file, rank)
			p := b.Squares[sq]
			if p.IsEmpty() || p.Color() != us {
				continue
			}
			switch p.Type() {
			case Pawn:
				b.genPawnMoves(ml, sq, us)
			case Knight:
				b.genOffsetMoves(ml, sq, p, KnightOffsets[:])
			case Bishop:
				b.genSlideMoves(ml, sq, p, BishopDirections[:])
			case Rook:
				b.genSlideMoves(ml, sq, p, RookDirections[:])
			case Queen:
				b.genSlideMoves(ml, sq, p, QueenDirections[:])
			case King:
				b.genOffsetMoves(ml, sq, p, KingOffsets[:])
				b.genCastleMoves(ml, sq, us)
			}
		}
	}
	return ml
}

func (b *Board) addPawnTarget(ml *MoveList, from, to Square, piece Piece, captured Piece, epVictim Square, lastRank bool) {
	if lastRank {
		for _, promo := range promoPieces {
			ml.Add(Move{Piece: piece, From: from, To: to, Captured: captured, Promotion: promo, EPVictim: epVictim})
		}
		return
	}
	ml.Add(Move{Piece: piece, From: from, To: to, Captured: captured, Promotion: NoPieceType, EPVictim: epVictim})
}

func (b *Board) genPawnMoves(ml *MoveList, sq Square, us Color) {
	piece := NewPiece(Pawn, us)
	forward := DirNorth
	startRank, lastRank := 1, 7
	if us == Black {
		forward = DirSouth
		startRank, lastRank = 6, 0
	}

	for _, diag := range [2]Square{forward + DirEast, forward + DirWest} {
		to := sq + diag
		if !to.OnBoard() {
			continue
		}
		dest := b.Squares[to]
		if !dest.IsEmpty() && dest.Color() == us.Other() {
			b.addPawnTarget(ml, sq, to, piece, dest, NoSquare, to.Rank() == lastRank)
		} else if to == b.EnPassant && dest.IsEmpty() {
			victim := NewSquare(to.File(), sq.Rank())
			ml.Add(Move{Piece: piece, From: sq, To: to, Captured: b.Squares[victim], Promotion: NoPieceType, EPVictim: victim})
		}
	}

	oneAhead := sq + forward
	if oneAhead.OnBoard() && b.Squares[oneAhead].IsEmpty() {
		b.addPawnTarget(ml, sq, oneAhead, piece, Empty, NoSquare, oneAhead.Rank() == lastRank)
		if sq.Rank() == startRank {
			twoAhead := oneAhead + forward
			if b.Squares[twoAhead].IsEmpty() {
				ml.Add(Move{Piece: piece, From: sq, To: twoAhead, Captured: Empty, Promotion: NoPieceType, EPVictim: NoSquare})
			}
		}
	}
}

func (b *Board) genOffsetMoves(ml *MoveList, sq Square, piece Piece, offsets []Square) {
	us := piece.Color()
	for _, d := range offsets {
		to := sq + d
		dest := b.Squares[to]
		if dest == BorderPiece {
			continue
		}
		if dest.IsEmpty() || dest.Color() == us.Other() {
			ml.Add(Move{Piece: piece, From: sq, To: to, Captured: dest, Promotion: NoPieceType, EPVictim: NoSquare})
		}
	}
}

func (b *Board) genSlideMoves(ml *MoveList, sq Square, piece Piece, dirs []Square) {
	us := piece.Color()
	for _, d := range dirs {
		to := sq + d
		for b.Squares[to] == Empty {
			ml.Add(Move{Piece: piece, From: sq, To: to, Captured: Empty, Promotion: NoPieceType, EPVictim: NoSquare})
			to += d
		}
		dest := b.Squares[to]
		if dest != BorderPiece && dest.Color() == us.Other() {
			ml.Add(Move{Piece: piece, From: sq, To: to, Captured: dest, Promotion: NoPieceType, EPVictim: NoSquare})
		}
	}
}

func (b *Board) genCastleMoves(ml *MoveList, kingSq Square, us Color) {
	if us == White && kingSq == whiteKingHome {
		if b.Castling&WhiteKingside != 0 &&
			b.Squares[NewSquare(5, 0)].IsEmpty() && b.Squares[NewSquare(6, 0)].IsEmpty() &&
			b.Squares[NewSquare(7, 0)] == WhiteRook {
			ml.Add(Move{Piece: WhiteKing, From: kingSq, To: whiteKingsideD, Captured: Empty, Promotion: NoPieceType, EPVictim: NoSquare})
		}
		if b.Castling&WhiteQueenside != 0 &&
			b.Squares[NewSquare(1, 0)].IsEmpty() && b.Squares[NewSquare(2, 0)].IsEmpty() && b.Squares[NewSquare(3, 0)].IsEmpty() &&
			b.Squares[NewSquare(0, 0)] == WhiteRook {
			ml.Add(Move{Piece: WhiteKing, From: kingSq, To: whiteQueensideD, Captured: Empty, Promotion: NoPieceType, EPVictim: NoSquare})
		}
	}
	if us == Black && kingSq == blackKingHome {
		if b.Castling&BlackKingside != 0 &&
			b.Squares[NewSquare(5, 7)].IsEmpty() && b.Squares[NewSquare(6, 7)].IsEmpty() &&
			b.Squares[NewSquare(7, 7)] == BlackRook {
			ml.Add(Move{Piece: BlackKing, From: kingSq, To: blackKingsideD, Captured: Empty, Promotion: NoPieceType, EPVictim: NoSquare})
		}
		if b.Castling&BlackQueenside != 0 &&
			b.Squares[NewSquare(1, 7)].IsEmpty() && b.Squares[NewSquare(2, 7)].IsEmpty() && b.Squares[NewSquare(3, 7)].IsEmpty() &&
			b.Squares[NewSquare(0, 7)] == BlackRook {
			ml.Add(Move{Piece: BlackKing, From: kingSq, To: blackQueensideD, Captured: Empty, Promotion: NoPieceType, EPVictim: NoSquare})
		}
	}
}

// MoveMadeLegal reports whether the move just played by `mover` (the
// side that moved, now no longer to move on b) was legal: the mover's
// own king must not be left in check, and — for castling — neither the
// king's origin nor any transit square may have been attacked by the
// now-to-move side.
func (b *Board) MoveMadeLegal(m Move, mover Color) bool {
	opponent := mover.Other()
	if b.SquareAttacked(b.KingSquare[mover], opponent) {
		return false
	}
	if !m.IsCastle() {
		return true
	}
	transit := castleTransitSquares(m)
	for _, sq := range transit {
		if b.SquareAttacked(sq, opponent) {
			return false
		}
	}
	return true
}

// castleTransitSquares returns the king's origin plus every square it
// crosses (not including the rook's path), which must all be safe.
func castleTransitSquares(m Move) []Square {
	switch {
	case m.IsWhiteKingsideCastle():
		return []Square{whiteKingHome, NewSquare(5, 0), whiteKingsideD}
	case m.IsWhiteQueensideCastle():
		return []Square{whiteKingHome, NewSquare(3, 0), whiteQueensideD}
	case m.IsBlackKingsideCastle():
		return []Square{blackKingHome, NewSquare(5, 7), blackKingsideD}
	case m.IsBlackQueensideCastle():
		return []Square{blackKingHome, NewSquare(3, 7), blackQueensideD}
	default:
		return nil
	}
}

// GenerateLegalMoves filters GenerateMoves down to fully legal moves.
// It is used by tests and by callers outside the search hot path; the
// search itself interleaves generation with make/unmake instead, to
// avoid doing the legality check twice.
func (b *Board) GenerateLegalMoves() *MoveList {
	pseudo := b.GenerateMoves()
	legal := &MoveList{}
	mover := b.SideToMove
	for i := 0; i < pseudo.Len(); i++ {
		m := pseudo.Get(i)
		b.MakeMove(m)
		if b.MoveMadeLegal(m, mover) {
			legal.Add(m)
		}
		b.UnmakeMove()
	}
	return legal
}
