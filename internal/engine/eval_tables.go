package engine

import "github.com/waxwing-chess/engine/internal/board"

// Piece-square tables are indexed by Square.To8x8() from White's point of
// view: index 0 is a1, index 63 is h8. Black pieces look their square up
// mirrored by rank (idx ^ 56) so the same table reads as "rank distance
// from home" for either color.

// pawnAdvance rewards pawns for advancing up the board and for occupying
// the center files, tapering off towards the edges.
var pawnAdvance = [64]int{
	0, 0, 0, 0, 0, 0, 0, 0,
	2, 4, 4, -6, -6, 4, 4, 2,
	2, -2, -4, 0, 0, -4, -2, 2,
	0, 0, 4, 8, 8, 4, 0, 0,
	4, 4, 8, 14, 14, 8, 4, 4,
	8, 10, 14, 18, 18, 14, 10, 8,
	18, 18, 18, 18, 18, 18, 18, 18,
	0, 0, 0, 0, 0, 0, 0, 0,
}

// centralization scores knights and bishops by closeness to the center.
var centralization = [64]int{
	-20, -14, -10, -8, -8, -10, -14, -20,
	-14, -6, 0, 2, 2, 0, -6, -14,
	-10, 0, 6, 10, 10, 6, 0, -10,
	-8, 2, 10, 14, 14, 10, 2, -8,
	-8, 2, 10, 14, 14, 10, 2, -8,
	-10, 0, 6, 10, 10, 6, 0, -10,
	-14, -6, 0, 2, 2, 0, -6, -14,
	-20, -14, -10, -8, -8, -10, -14, -20,
}

// kingShelter discourages an uncastled king from sitting in the center
// during the opening, rewarding the back-rank corners instead.
var kingShelter = [64]int{
	16, 24, 8, 0, 0, 6, 24, 16,
	8, 8, 0, -8, -8, 0, 8, 8,
	-8, -16, -16, -24, -24, -16, -16, -8,
	-16, -24, -24, -32, -32, -24, -24, -16,
	-24, -32, -32, -40, -40, -32, -32, -24,
	-24, -32, -32, -40, -40, -32, -32, -24,
	-24, -32, -32, -40, -40, -32, -32, -24,
	-24, -32, -32, -40, -40, -32, -32, -24,
}

// mirror flips a table index vertically for Black, so both colors read
// the table as "distance from home rank" rather than absolute rank.
func mirror(idx int, c board.Color) int {
	if c == board.White {
		return idx
	}
	return idx ^ 56
}
