package board

// Color represents the color of a piece or the side to move.
type Color uint8

const (
	White Color = iota
	Black
	NoColor
)

// Other returns the opposite color.
func (c Color) Other() Color {
	if c == White {
		return Black
	}
	if c == Black {
		return White
	}
	return NoColor
}

// String returns the color name.
func (c Color) String() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	default:
		return "NoColor"
	}
}

// PieceType identifies a piece's movement rules, independent of color.
type PieceType uint8

const (
	Pawn PieceType = iota
	Knight
	Bishop
	Rook
	Queen
	King
	NoPieceType
)

// String returns the piece type name.
func (pt PieceType) String() string {
	switch pt {
	case Pawn:
		return "Pawn"
	case Knight:
		return "Knight"
	case Bishop:
		return "Bishop"
	case Rook:
		return "Rook"
	case Queen:
		return "Queen"
	case King:
		return "King"
	default:
		return "None"
	}
}

// PromoChar returns the lowercase long-algebraic promotion suffix letter.
func (pt PieceType) PromoChar() byte {
	switch pt {
	case Knight:
		return 'n'
	case Bishop:
		return 'b'
	case Rook:
		return 'r'
	case Queen:
		return 'q'
	default:
		return 0
	}
}

// PieceValue holds the material value of each piece type in centipawns:
// P=90, N=300, B=330, R=500, Q=900.
var PieceValue = [6]int{90, 300, 330, 500, 900, 0}

// Piece packs a PieceType and Color into one value, plus the two
// sentinels every mailbox cell can also hold: an empty usable square and
// a border cell that move generation treats as permanently occupied by
// neither color.
type Piece uint8

const (
	WhitePawn Piece = iota
	WhiteKnight
	WhiteBishop
	WhiteRook
	WhiteQueen
	WhiteKing
	BlackPawn
	BlackKnight
	BlackBishop
	BlackRook
	BlackQueen
	BlackKing
	Empty
	BorderPiece
)

// NewPiece builds a Piece from a type and color.
func NewPiece(pt PieceType, c Color) Piece {
	if pt >= NoPieceType || c >= NoColor {
		return Empty
	}
	return Piece(c)*6 + Piece(pt)
}

// Type returns the PieceType of the piece, or NoPieceType for Empty/Border.
func (p Piece) Type() PieceType {
	if p >= Empty {
		return NoPieceType
	}
	return PieceType(p % 6)
}

// Color returns the Color of the piece, or NoColor for Empty/Border.
func (p Piece) Color() Color {
	if p >= Empty {
		return NoColor
	}
	return Color(p / 6)
}

// Invert returns the same piece type in the opposite color. Calling
// Invert on Empty or BorderPiece is undefined; callers must only invert
// occupied squares.
func (p Piece) Invert() Piece {
	return NewPiece(p.Type(), p.Color().Other())
}

// IsEmpty reports whether the cell holds no piece (border counts as not
// empty, since it is never a legal move target or origin).
func (p Piece) IsEmpty() bool {
	return p == Empty
}

// String returns the FEN letter for the piece (uppercase=white,
// lowercase=black), "." for Empty, and "#" for a border cell.
func (p Piece) String() string {
	switch {
	case p == Empty:
		return "."
	case p == BorderPiece:
		return "#"
	default:
		return string("PNBRQKpnbrqk"[p])
	}
}

// PieceFromChar converts a FEN piece letter to a Piece.
func PieceFromChar(c byte) Piece {
	switch c {
	case 'P':
		return WhitePawn
	case 'N':
		return WhiteKnight
	case 'B':
		return WhiteBishop
	case 'R':
		return WhiteRook
	case 'Q':
		return WhiteQueen
	case 'K':
		return WhiteKing
	case 'p':
		return BlackPawn
	case 'n':
		return BlackKnight
	case 'b':
		return BlackBishop
	case 'r':
		return BlackRook
	case 'q':
		return BlackQueen
	case 'k':
		return BlackKing
	default:
		return Empty
	}
}

// Value returns the material value of the piece in centipawns.
func (p Piece) Value() int {
	t := p.Type()
	if t == NoPieceType {
		return 0
	}
	return PieceValue[t]
}
