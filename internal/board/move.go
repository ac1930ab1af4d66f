package board

import "fmt"

// NoPieceForMove marks the absence of a captured piece on a Move.
// NoSquare (0) marks the absence of an en-passant victim.
const NoPieceForMove = Empty

// Move is an immutable-after-creation record of one ply. The Score
// field is the single mutable exception: the ordering layer writes a
// comparison key into it before sorting a move list, and nothing else
// on the struct ever changes after construction.
type Move struct {
	Piece     Piece     // the piece that moves
	From      Square    // origin mailbox index
	To        Square    // destination mailbox index
	Captured  Piece     // captured piece, or Empty
	Promotion PieceType // promotion piece, or NoPieceType
	EPVictim  Square    // square of the captured en-passant pawn, or NoSquare
	Score     int       // ordering scratch value, mutated by internal/engine
}

// NoMove is the sentinel meaning "no move" (the value IsZero reports).
// It is not Move's zero value: Move{} has Piece WhitePawn and counts as
// a capture and a promotion.
var NoMove = Move{Piece: Empty, From: NoSquare, To: NoSquare, Promotion: NoPieceType}

// IsZero reports whether m is the NoMove sentinel.
func (m Move) IsZero() bool {
	return m.Piece == Empty && m.From == NoSquare && m.To == NoSquare
}

// IsCapture reports whether the move captures a piece, including
// en-passant captures.
func (m Move) IsCapture() bool {
	return !m.Captured.IsEmpty() || m.EPVictim != NoSquare
}

// IsPromotion reports whether the move promotes a pawn.
func (m Move) IsPromotion() bool {
	return m.Promotion != NoPieceType
}

// IsTactical reports whether the move is a capture or a promotion —
// the set of moves quiescence search extends through.
func (m Move) IsTactical() bool {
	return m.IsCapture() || m.IsPromotion()
}

// Fixed king origin/destination squares used by the castling predicates.
var (
	whiteKingHome  = NewSquare(4, 0) // e1
	whiteKingsideD = NewSquare(6, 0) // g1
	whiteQueensideD = NewSquare(2, 0) // c1
	blackKingHome  = NewSquare(4, 7) // e8
	blackKingsideD = NewSquare(6, 7) // g8
	blackQueensideD = NewSquare(2, 7) // c8
)

// IsWhiteKingsideCastle reports whether m is White's O-O, by comparing
// origin/destination against the fixed king squares.
func (m Move) IsWhiteKingsideCastle() bool {
	return m.Piece == WhiteKing && m.From == whiteKingHome && m.To == whiteKingsideD
}

// IsWhiteQueensideCastle reports whether m is White's O-O-O.
func (m Move) IsWhiteQueensideCastle() bool {
	return m.Piece == WhiteKing && m.From == whiteKingHome && m.To == whiteQueensideD
}

// IsBlackKingsideCastle reports whether m is Black's O-O.
func (m Move) IsBlackKingsideCastle() bool {
	return m.Piece == BlackKing && m.From == blackKingHome && m.To == blackKingsideD
}

// IsBlackQueensideCastle reports whether m is Black's O-O-O.
func (m Move) IsBlackQueensideCastle() bool {
	return m.Piece == BlackKing && m.From == blackKingHome && m.To == blackQueensideD
}

// IsCastle reports whether m is any of the four castling moves.
func (m Move) IsCastle() bool {
	return m.IsWhiteKingsideCastle() || m.IsWhiteQueensideCastle() ||
		m.IsBlackKingsideCastle() || m.IsBlackQueensideCastle()
}

// String returns long algebraic notation: origin + destination, with a
// lowercase promotion letter appended (e.g. "e2e4", "g7g8q").
func (m Move) String() string {
	if m.IsZero() {
		return "0000"
	}
	s := m.From.String() + m.To.String()
	if m.IsPromotion() {
		s += string(m.Promotion.PromoChar())
	}
	return s
}

// ParseMove parses a long-algebraic move string against a board to
// recover the full Move record (captured piece, promotion, en-passant
// victim). It does not check legality, only that a piece exists at the
// origin and the destination is addressable.
func ParseMove(s string, b *Board) (Move, error) {
	if len(s) < 4 {
		return NoMove, fmt.Errorf("invalid move text: %q", s)
	}
	from, err := ParseSquare(s[0:2])
	if err != nil {
		return NoMove, err
	}
	to, err := ParseSquare(s[2:4])
	if err != nil {
		return NoMove, err
	}
	piece := b.Squares[from]
	if piece.IsEmpty() || piece == BorderPiece {
		return NoMove, fmt.Errorf("no piece at %s", from)
	}

	m := Move{Piece: piece, From: from, To: to, Captured: Empty, Promotion: NoPieceType}

	if len(s) == 5 {
		switch s[4] {
		case 'n':
			m.Promotion = Knight
		case 'b':
			m.Promotion = Bishop
		case 'r':
			m.Promotion = Rook
		case 'q':
			m.Promotion = Queen
		default:
			return NoMove, fmt.Errorf("invalid promotion piece: %c", s[4])
		}
	}

	dest := b.Squares[to]
	if piece.Type() == Pawn && to == b.EnPassant && to.File() != from.File() {
		m.EPVictim = NewSquare(to.File(), from.Rank())
	} else if !dest.IsEmpty() {
		m.Captured = dest
	}

	return m, nil
}

// MaxMoves is the size of the fixed per-ply move buffer.
const MaxMoves = 256

// MoveList is a fixed-capacity, stack-friendly move buffer: no
// allocation on the hot path of move generation.
type MoveList struct {
	moves [MaxMoves]Move
	count int
}

// Add appends a move to the list.
func (ml *MoveList) Add(m Move) {
	ml.moves[ml.count] = m
	ml.count++
}

// Len returns the number of moves currently in the list.
func (ml *MoveList) Len() int {
	return ml.count
}

// Get returns the move at index i.
func (ml *MoveList) Get(i int) Move {
	return ml.moves[i]
}

// Set overwrites the move at index i (used by the sort in internal/engine).
func (ml *MoveList) Set(i int, m Move) {
	ml.moves[i] = m
}

// Clear empties the list in place without reallocating.
func (ml *MoveList) Clear() {
	ml.count = 0
}

// Slice returns the live moves as a slice backed by the fixed array, for
// sorting in place. It must not be retained past the next Add or Clear.
func (ml *MoveList) Slice() []Move {
	return ml.moves[:ml.count]
}
