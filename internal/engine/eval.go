package engine

import "github.com/waxwing-chess/engine/internal/board"

// PhaseTotal is the starting game-phase weight, all of it contributed by
// the heavier pieces. Pawns are intentionally weighted 0: a pawn trade
// does not move the game towards the endgame taper.
const PhaseTotal = 24

// phaseWeight gives each piece type's contribution to PhaseTotal as it
// leaves the board: pawn=0, knight=1, bishop=1, rook=2, queen=4.
var phaseWeight = [6]int{0, 1, 1, 2, 4, 0}

type scorePair struct {
	opening, endgame int
}

func (s *scorePair) add(opening, endgame int) {
	s.opening += opening
	s.endgame += endgame
}

// Evaluate returns a score in centipawns from the side-to-move's point
// of view, tapering between an opening and an endgame score by how much
// material remains on the board.
func Evaluate(b *board.Board) int {
	var white, black scorePair
	phase := PhaseTotal

	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			sq := board.NewSquare(file, rank)
			p := b.Squares[sq]
			if p.IsEmpty() {
				continue
			}
			t := p.Type()
			phase -= phaseWeight[t]

			var s scorePair
			switch t {
			case board.Pawn:
				s = evalPawn(b, sq, p)
			case board.Knight, board.Bishop:
				s = evalMinor(sq, p)
			case board.Rook:
				s = evalRook(b, sq, p)
			case board.Queen:
				s = evalQueen(sq, p)
			case board.King:
				s = evalKing(b, sq, p)
			}
			if p.Color() == board.White {
				white.add(s.opening, s.endgame)
			} else {
				black.add(s.opening, s.endgame)
			}
		}
	}

	if phase < 0 {
		phase = 0
	}
	openingDelta := white.opening - black.opening
	endgameDelta := white.endgame - black.endgame
	score := (openingDelta*(PhaseTotal-phase) + endgameDelta*phase) / PhaseTotal

	if b.SideToMove == board.White {
		return score
	}
	return -score
}

func evalPawn(b *board.Board, sq board.Square, p board.Piece) scorePair {
	c := p.Color()
	idx := mirror(sq.To8x8(), c)
	material := board.PieceValue[board.Pawn]
	s := scorePair{opening: material + pawnAdvance[idx], endgame: material + pawnAdvance[idx]}

	file, rank := sq.File(), sq.Rank()
	if c == board.White {
		if rank == 3 && (file == 3 || file == 4) {
			s.opening += 20
		} else if rank == 2 && (file == 3 || file == 4) {
			s.opening += 10
		}
	} else {
		if rank == 4 && (file == 3 || file == 4) {
			s.opening += 20
		} else if rank == 5 && (file == 3 || file == 4) {
			s.opening += 10
		}
	}
	return s
}

func evalMinor(sq board.Square, p board.Piece) scorePair {
	idx := mirror(sq.To8x8(), p.Color())
	material := p.Value()
	bonus := centralization[idx]
	return scorePair{opening: material + bonus, endgame: material + bonus}
}

// evalRook rewards open and semi-open files ahead of the rook in the
// opening (while it still sits on its own back rank) and 7th-rank
// activity against enemy pawns in the endgame.
func evalRook(b *board.Board, sq board.Square, p board.Piece) scorePair {
	c := p.Color()
	material := p.Value()
	s := scorePair{opening: material, endgame: material}

	backRank := 0
	if c == board.Black {
		backRank = 7
	}
	if sq.Rank() == backRank {
		hasOwnPawn, hasEnemyPawn := false, false
		dir := 1
		if c == board.Black {
			dir = -1
		}
		for r := sq.Rank() + dir; r >= 0 && r <= 7; r += dir {
			sq2 := board.NewSquare(sq.File(), r)
			q := b.Squares[sq2]
			if q.Type() == board.Pawn {
				if q.Color() == c {
					hasOwnPawn = true
				} else {
					hasEnemyPawn = true
				}
			}
		}
		switch {
		case !hasOwnPawn && !hasEnemyPawn:
			s.opening += 10
		case !hasOwnPawn && hasEnemyPawn:
			s.opening += 5
		}
	}

	seventh := 6
	if c == board.Black {
		seventh = 1
	}
	if sq.Rank() == seventh {
		for file := 0; file < 8; file++ {
			q := b.Squares[board.NewSquare(file, seventh)]
			if q.Type() == board.Pawn && q.Color() != c {
				s.endgame += 3
			}
		}
	}
	return s
}

func evalQueen(sq board.Square, p board.Piece) scorePair {
	idx := mirror(sq.To8x8(), p.Color())
	material := p.Value()
	return scorePair{opening: material, endgame: material + centralization[idx]/2}
}

// evalKing rewards an opening pawn shield and a sheltered home-rank
// position. The shield check walks i in [0,3) as a linear mailbox
// offset from the king square rather than as an index into a proper
// direction table, so it only ever inspects the king's own square and
// the two squares immediately east of it, regardless of which side it
// castled to.
func evalKing(b *board.Board, sq board.Square, p board.Piece) scorePair {
	c := p.Color()
	idx := mirror(sq.To8x8(), c)
	s := scorePair{opening: kingShelter[idx], endgame: 0}

	kingSq := sq
	for i := 0; i < 3; i++ {
		shield := b.Squares[kingSq+board.Square(i)]
		if shield.Type() == board.Pawn && shield.Color() == c {
			s.opening += 6
		}
	}
	return s
}
