// Package xboard adapts the XBoard line protocol (not UCI) to the
// engine's collaborator API: new_game, set_position/apply_move, search,
// undo_last.
package xboard

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/waxwing-chess/engine/internal/board"
	"github.com/waxwing-chess/engine/internal/engine"
)

// defaultBudgetMs is used when the adapter has received neither `st` nor
// `time` from the collaborator yet.
const defaultBudgetMs = 5000

// Protocol drives one XBoard session against an Engine over the given
// reader/writer. `go` runs the search on its own goroutine — mirroring
// the source's handleGo — so dispatch keeps reading commands and `?`/
// `Stop()` can interrupt a search that is still in flight.
type Protocol struct {
	engine *engine.Engine
	out    io.Writer
	outMu  sync.Mutex

	forced     bool
	posting    bool
	perMoveMs  int // from "st N" (seconds), 0 if unset
	depthLimit int // from "sd N"
	clockCs    int // remaining clock in centiseconds, from "time N"

	searching  bool
	searchDone chan struct{}
}

// NewProtocol builds a Protocol writing engine output to out.
func NewProtocol(eng *engine.Engine, out io.Writer) *Protocol {
	p := &Protocol{engine: eng, out: out, forced: false}
	eng.OnInfo(p.emitInfo)
	return p
}

// SetPosting enables or disables PV info lines without waiting for a
// `post`/`nopost` command over the wire, for command-line startup flags.
func (p *Protocol) SetPosting(v bool) {
	p.posting = v
}

// Stop requests that an in-flight `go` search end at its next abort
// checkpoint. Safe to call from another goroutine.
func (p *Protocol) Stop() {
	p.engine.Stop()
}

// Run reads commands from in until `quit` or EOF.
func (p *Protocol) Run(in io.Reader) {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if !p.dispatch(line) {
			return
		}
	}
}

// dispatch handles one command line, returning false on `quit`.
func (p *Protocol) dispatch(line string) bool {
	fields := strings.Fields(line)
	cmd := fields[0]
	rest := fields[1:]

	switch cmd {
	case "go":
		p.handleGo()
	case "new":
		p.handleNew()
	case "force":
		p.forced = true
	case "st":
		if len(rest) == 1 {
			if n, err := strconv.Atoi(rest[0]); err == nil {
				p.perMoveMs = n * 1000
			}
		}
	case "sd":
		if len(rest) == 1 {
			if n, err := strconv.Atoi(rest[0]); err == nil {
				p.depthLimit = n
			}
		}
	case "time":
		if len(rest) == 1 {
			if n, err := strconv.Atoi(rest[0]); err == nil {
				p.clockCs = n
			}
		}
	case "?":
		p.Stop()
	case "undo":
		p.engine.UndoLast()
	case "post":
		p.posting = true
	case "nopost":
		p.posting = false
	case "quit":
		return false
	default:
		p.handleMove(line)
	}
	return true
}

// handleNew resets to the initial position and puts the engine in
// force mode: it plays neither side until told with `go`.
func (p *Protocol) handleNew() {
	if err := p.engine.NewGame(board.StartFEN); err != nil {
		p.printf("Error: %v\n", err)
		return
	}
	p.forced = true
	p.depthLimit = 0
	p.perMoveMs = 0
}

// handleMove attempts to interpret a line the dispatch table didn't
// recognize as a long-algebraic move.
func (p *Protocol) handleMove(text string) {
	if err := p.engine.ApplyMove(text); err != nil {
		p.printf("Illegal move: %s\n", text)
	}
}

// handleGo starts a search for the side to move on its own goroutine,
// taking a Snapshot of the live board first so the goroutine that reads
// commands can keep dispatching (`?`, `force`, `new`, ...) while the
// search is in flight. Once the search completes or is aborted, the
// search goroutine applies the move to the live board and prints exactly
// one `move <notation>` line. A `go` received while a search is already
// running is ignored, matching the one-move-per-turn XBoard contract.
func (p *Protocol) handleGo() {
	if p.searching {
		return
	}
	p.forced = false

	budget := p.budgetMs()
	depthLimit := p.depthLimit
	snapshot := p.engine.Snapshot()

	p.searching = true
	p.searchDone = make(chan struct{})
	go func() {
		defer func() {
			p.searching = false
			close(p.searchDone)
		}()

		best, _ := p.engine.SearchBoard(snapshot, budget, depthLimit)
		if best == "" {
			p.printf("move\n")
			return
		}
		if err := p.engine.ApplyMove(best); err != nil {
			p.printf("Error: %v\n", err)
			return
		}
		p.printf("move %s\n", best)
	}()
}

// printf writes to out under outMu, so the search goroutine's move/info
// output never interleaves with a line written from the command-reading
// goroutine.
func (p *Protocol) printf(format string, args ...any) {
	p.outMu.Lock()
	defer p.outMu.Unlock()
	fmt.Fprintf(p.out, format, args...)
}

// budgetMs derives a per-move budget: if `st` set a fixed per-move
// time, use it; otherwise derive it from the remaining clock as
// total*10/30, falling back to a fixed default with neither.
func (p *Protocol) budgetMs() int {
	if p.perMoveMs > 0 {
		return p.perMoveMs
	}
	if p.clockCs > 0 {
		return p.clockCs * 10 / 30
	}
	return defaultBudgetMs
}

// emitInfo writes one PV info line — depth score elapsed_seconds nodes
// pv… — only while posting is enabled.
func (p *Protocol) emitInfo(line engine.InfoLine) {
	if !p.posting {
		return
	}
	var pv strings.Builder
	for i, m := range line.PV {
		if i > 0 {
			pv.WriteByte(' ')
		}
		pv.WriteString(m.String())
	}
	p.printf("%d %d %.4f %d %s\n", line.Depth, line.Value, line.Elapsed.Seconds(), line.Nodes, pv.String())
}
