package engine

import "github.com/waxwing-chess/engine/internal/board"

// Bound tags how a stored value relates to the search window that
// produced it.
type Bound uint8

const (
	BoundNone Bound = iota
	BoundExact
	BoundLower
	BoundUpper
)

// TTBuckets and TTWays size the table: 500,000 buckets of 4 entries.
const (
	TTBuckets = 500000
	TTWays    = 4
)

// EvalMin and EvalMax bound ordinary static evaluation; values outside
// this range are mate scores and need the ply shift below.
const (
	EvalMin = -10000
	EvalMax = 10000
)

// TTEntry is one transposition-table slot.
type TTEntry struct {
	Key        uint64
	Depth      int
	Value      int
	BestMove   board.Move
	Generation byte
	Bound      Bound
}

// TranspositionTable is a fixed bucket-of-4 hash table keyed by Zobrist
// key modulo bucket count, with an always-reuse-same-key and
// oldest-generation/shallowest-depth replacement policy otherwise.
type TranspositionTable struct {
	buckets    [][TTWays]TTEntry
	generation byte
}

// approxEntryBytes estimates one TTEntry's footprint for sizing the
// table from a megabyte budget (-hash); it need not be exact, only
// proportionate.
const approxEntryBytes = 32

// NewTranspositionTable allocates a table with the default bucket
// count (TTBuckets = 500,000, TTWays = 4).
func NewTranspositionTable() *TranspositionTable {
	return &TranspositionTable{buckets: make([][TTWays]TTEntry, TTBuckets)}
}

// NewTranspositionTableSized allocates a table sized to hold roughly
// sizeMB megabytes, for the -hash command-line flag. sizeMB <= 0 falls
// back to the default bucket count.
func NewTranspositionTableSized(sizeMB int) *TranspositionTable {
	if sizeMB <= 0 {
		return NewTranspositionTable()
	}
	buckets := (sizeMB * 1024 * 1024) / (approxEntryBytes * TTWays)
	if buckets < 1 {
		buckets = 1
	}
	return &TranspositionTable{buckets: make([][TTWays]TTEntry, buckets)}
}

// NewGeneration bumps the table's generation counter, marking every
// existing entry as one search older. Called once per top-level search.
func (tt *TranspositionTable) NewGeneration() {
	tt.generation++
}

func (tt *TranspositionTable) bucketIndex(key uint64) uint64 {
	return key % uint64(len(tt.buckets))
}

// Probe returns the first entry in key's bucket whose key matches and
// whose stored depth is at least requiredDepth, bumping its generation
// to the current one. usable is false if no such entry exists; hintMove
// still reports the best move of a same-key entry that failed the depth
// check, for ordering purposes.
func (tt *TranspositionTable) Probe(key uint64, requiredDepth int) (entry TTEntry, usable bool, hintMove board.Move) {
	bucket := &tt.buckets[tt.bucketIndex(key)]
	for i := range bucket {
		e := &bucket[i]
		if e.Key != key || e.Bound == BoundNone {
			continue
		}
		hintMove = e.BestMove
		if e.Depth >= requiredDepth {
			e.Generation = tt.generation
			return *e, true, hintMove
		}
		return TTEntry{}, false, hintMove
	}
	return TTEntry{}, false, board.NoMove
}

// Usable reports whether entry's stored value is directly usable against
// the given (alpha, beta) window, given what kind of bound it is.
func (e TTEntry) Usable(alpha, beta int) bool {
	switch e.Bound {
	case BoundUpper:
		return e.Value <= alpha
	case BoundLower:
		return e.Value >= beta
	case BoundExact:
		return e.Value <= alpha || e.Value >= beta
	default:
		return false
	}
}

// Store writes (key, depth, value, bound, bestMove) into key's bucket,
// reusing an existing same-key slot (preserving its best move if
// bestMove is the zero move) or else replacing the oldest-generation,
// then shallowest-depth slot.
func (tt *TranspositionTable) Store(key uint64, depth, value, ply int, bound Bound, bestMove board.Move) {
	bucket := &tt.buckets[tt.bucketIndex(key)]
	adjusted := AdjustForTable(value, ply)

	for i := range bucket {
		e := &bucket[i]
		if e.Key == key {
			if bestMove.IsZero() {
				bestMove = e.BestMove
			}
			*e = TTEntry{Key: key, Depth: depth, Value: adjusted, BestMove: bestMove, Generation: tt.generation, Bound: bound}
			return
		}
	}

	victim := 0
	for i := 1; i < len(bucket); i++ {
		if worseSlot(bucket[i], bucket[victim], tt.generation) {
			victim = i
		}
	}
	bucket[victim] = TTEntry{Key: key, Depth: depth, Value: adjusted, BestMove: bestMove, Generation: tt.generation, Bound: bound}
}

// worseSlot reports whether candidate is a worse (more replaceable) slot
// than current: older generation first, then shallower depth.
func worseSlot(candidate, current TTEntry, currentGen byte) bool {
	candidateAge := currentGen - candidate.Generation
	currentAge := currentGen - current.Generation
	if candidateAge != currentAge {
		return candidateAge > currentAge
	}
	return candidate.Depth < current.Depth
}

// AdjustForTable shifts a mate score found at ply plies from the root to
// one relative to the mated node, so it remains valid cached at a
// different ply later.
func AdjustForTable(v, ply int) int {
	switch {
	case v > EvalMax:
		return v + ply
	case v < -EvalMax:
		return v - ply
	default:
		return v
	}
}

// AdjustForSearch is the inverse of AdjustForTable, converting a
// mate-distance score stored relative to the mated node back into one
// relative to the current root.
func AdjustForSearch(v, ply int) int {
	switch {
	case v > EvalMax:
		return v - ply
	case v < -EvalMax:
		return v + ply
	default:
		return v
	}
}
