package board

import (
	"fmt"
	"strconv"
	"strings"
)

// StartFEN is the FEN string for the standard initial position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ParseFEN parses a standard six-field FEN string into a Board.
func ParseFEN(fen string) (*Board, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return nil, fmt.Errorf("invalid FEN %q: need at least 4 fields, got %d", fen, len(fields))
	}

	b := NewBoard()

	if err := parsePlacement(b, fields[0]); err != nil {
		return nil, err
	}

	switch fields[1] {
	case "w":
		b.SideToMove = White
	case "b":
		b.SideToMove = Black
	default:
		return nil, fmt.Errorf("invalid side to move: %q", fields[1])
	}

	if err := parseCastling(b, fields[2]); err != nil {
		return nil, err
	}

	if fields[3] != "-" {
		sq, err := ParseSquare(fields[3])
		if err != nil {
			return nil, fmt.Errorf("invalid en-passant square: %q", fields[3])
		}
		b.EnPassant = sq
	} else {
		b.EnPassant = NoSquare
	}

	b.HalfmoveClock = 0
	if len(fields) > 4 {
		n, err := strconv.Atoi(fields[4])
		if err != nil {
			return nil, fmt.Errorf("invalid halfmove clock: %q", fields[4])
		}
		b.HalfmoveClock = n
	}

	b.FullmoveNumber = 1
	if len(fields) > 5 {
		n, err := strconv.Atoi(fields[5])
		if err != nil {
			return nil, fmt.Errorf("invalid fullmove number: %q", fields[5])
		}
		b.FullmoveNumber = n
	}

	if b.KingSquare[White] == NoSquare || b.KingSquare[Black] == NoSquare {
		return nil, fmt.Errorf("invalid FEN %q: missing a king", fen)
	}

	b.RecomputeZobrist()
	return b, nil
}

func parsePlacement(b *Board, placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return fmt.Errorf("invalid piece placement %q: need 8 ranks, got %d", placement, len(ranks))
	}
	for i, rankStr := range ranks {
		rank := 7 - i // FEN lists rank 8 first
		file := 0
		for _, c := range []byte(rankStr) {
			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}
			if file > 7 {
				return fmt.Errorf("invalid piece placement %q: rank %d overflows", placement, i+1)
			}
			p := PieceFromChar(c)
			if p == Empty {
				return fmt.Errorf("invalid piece placement %q: bad character %q", placement, string(c))
			}
			b.Put(NewSquare(file, rank), p)
			file++
		}
		if file != 8 {
			return fmt.Errorf("invalid piece placement %q: rank %d has %d files", placement, i+1, file)
		}
	}
	return nil
}

func parseCastling(b *Board, castling string) error {
	b.Castling = NoCastling
	if castling == "-" {
		return nil
	}
	for _, c := range []byte(castling) {
		switch c {
		case 'K':
			b.Castling |= WhiteKingside
		case 'Q':
			b.Castling |= WhiteQueenside
		case 'k':
			b.Castling |= BlackKingside
		case 'q':
			b.Castling |= BlackQueenside
		default:
			return fmt.Errorf("invalid castling rights: %q", castling)
		}
	}
	return nil
}

// FEN serializes the board back into a FEN string.
func (b *Board) FEN() string {
	var sb strings.Builder
	for i := 7; i >= 0; i-- {
		empty := 0
		for file := 0; file < 8; file++ {
			p := b.Squares[NewSquare(file, i)]
			if p.IsEmpty() {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(p.String())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if i > 0 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	if b.SideToMove == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	sb.WriteByte(' ')
	sb.WriteString(b.Castling.String())

	sb.WriteByte(' ')
	sb.WriteString(b.EnPassant.String())

	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(b.HalfmoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(b.FullmoveNumber))

	return sb.String()
}
