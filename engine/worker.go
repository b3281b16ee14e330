package engine

import (
	"fmt"
	"io"
	"os"
	"sync"

	"chess-engine/config"
	"chess-engine/position"
)

// WorkerCommand names the three operations the background search thread
// accepts, per the core's single-dedicated-thread concurrency model: begin
// a search, request the current one stop, or shut the thread down.
type WorkerCommand uint8

const (
	CmdStart WorkerCommand = iota
	CmdStop
	CmdQuit
)

type startRequest struct {
	pos      *position.Position
	limits   config.Limits
	report   InfoFunc
	currmove CurrMoveFunc
}

type workerCommand struct {
	kind  WorkerCommand
	start startRequest
}

// Snapshot is the worker's last_snapshot() tuple: the position actually
// searched (the Start caller's own board may have moved on since), the
// result produced, the limits that search ran under, and whether it was cut
// short by a stop request.
type Snapshot struct {
	Position *position.Position
	Result   Result
	Limits   config.Limits
	Stopped  bool
}

// Worker runs exactly one Searcher on a single dedicated goroutine, serving
// Start/Stop/Quit commands through a small buffered channel — the Go
// equivalent of the single-producer/single-consumer command queue a
// non-GC'd implementation would hand-roll with a ring buffer. Front ends
// (UCI, a CLI bench command) own a Worker rather than touching a Searcher
// directly, so a caller's goroutine never races with the search thread.
//
// The worker also owns the mutex-guarded line writer every textual progress
// line, currmove line, and terminal best-move line is written through, so a
// front end's own control-thread responses (e.g. "readyok") can never
// interleave mid-line with the search thread's streamed output. A front end
// that wants its own protocol formatting still routes every line through
// WriteLine rather than writing to its output stream directly.
type Worker struct {
	searcher *Searcher
	commands chan workerCommand

	mu       sync.Mutex
	running  bool
	idleCond *sync.Cond
	lastSnap Snapshot

	ioMu   sync.Mutex
	writer io.Writer
}

// NewWorker starts the background goroutine and returns a handle to it.
func NewWorker(limits config.Limits) *Worker {
	w := &Worker{
		searcher: NewSearcher(limits),
		commands: make(chan workerCommand, 4),
		writer:   os.Stdout,
	}
	w.idleCond = sync.NewCond(&w.mu)
	go w.run()
	return w
}

// BindWriter redirects the worker's shared line writer, e.g. so a UCI front
// end can point it at the same stream it replies to "isready" etc. on.
func (w *Worker) BindWriter(out io.Writer) {
	w.ioMu.Lock()
	defer w.ioMu.Unlock()
	w.writer = out
}

// WriteLine writes one formatted, newline-terminated line through the
// worker's shared writer under its I/O mutex. Progress, currmove, and the
// terminal best-move line all go through this, and front ends should route
// their own protocol responses through it too rather than writing directly,
// so the two streams can never interleave mid-line.
func (w *Worker) WriteLine(format string, args ...interface{}) {
	w.ioMu.Lock()
	defer w.ioMu.Unlock()
	fmt.Fprintf(w.writer, format+"\n", args...)
}

func (w *Worker) run() {
	for cmd := range w.commands {
		switch cmd.kind {
		case CmdStart:
			w.mu.Lock()
			w.running = true
			w.mu.Unlock()

			result := w.searcher.Search(cmd.start.pos, cmd.start.limits, func(info Info) {
				w.writeInfoLine(info)
				if cmd.start.report != nil {
					cmd.start.report(info)
				}
			}, func(move position.Move, moveNumber int) {
				w.WriteLine("info currmove %s currmovenumber %d", move.UCI(), moveNumber)
				if cmd.start.currmove != nil {
					cmd.start.currmove(move, moveNumber)
				}
			})
			stopped := w.searcher.Stopped()
			w.writeBestMoveLine(result)

			w.mu.Lock()
			w.lastSnap = Snapshot{Position: cmd.start.pos, Result: result, Limits: cmd.start.limits, Stopped: stopped}
			w.running = false
			w.idleCond.Broadcast()
			w.mu.Unlock()
		case CmdStop:
			w.searcher.Stop()
		case CmdQuit:
			return
		}
	}
}

// writeInfoLine formats one iterative-deepening snapshot and writes it
// through WriteLine, in the same vein as the original C++ worker's inline
// progress formatting. Converting centipawn scores near mate into a
// moves-to-mate display, per §4.8.5, is the one piece of interpretation this
// carries; beyond that it stays protocol-neutral text, not a UCI "info" line
// verbatim.
func (w *Worker) writeInfoLine(info Info) {
	scoreStr := fmt.Sprintf("cp %d", info.Score)
	if info.Mate {
		pliesToMate := Mate() - abs32(info.Score)
		movesToMate := (pliesToMate + 1) / 2
		if info.Score < 0 {
			movesToMate = -movesToMate
		}
		scoreStr = fmt.Sprintf("mate %d", movesToMate)
	}
	w.WriteLine("info depth %d seldepth %d multipv %d score %s nodes %d nps %d time %d hashfull %d pv %s",
		info.Depth, info.SelDepth, info.MultiPV, scoreStr, info.Nodes, info.NPS, info.TimeMs, info.Hashfull, info.PV.String())
}

// writeBestMoveLine emits the terminal best-move line, using "0000" when no
// legal move was produced (a null best move, whether from checkmate/stalemate
// or from a search stopped before its first iteration completed).
func (w *Worker) writeBestMoveLine(result Result) {
	if result.BestMove.IsNull() {
		w.WriteLine("bestmove 0000")
		return
	}
	if result.PonderMove.IsNull() {
		w.WriteLine("bestmove %s", result.BestMove.UCI())
	} else {
		w.WriteLine("bestmove %s ponder %s", result.BestMove.UCI(), result.PonderMove.UCI())
	}
}

// Start enqueues a new search over a private clone of pos (the caller keeps
// its own board free to mutate once Start returns). A search already in
// flight should be stopped with RequestStop and awaited with WaitIdle
// before starting another; Start does not implicitly cancel one.
func (w *Worker) Start(pos *position.Position, limits config.Limits, report InfoFunc) {
	w.mu.Lock()
	w.running = true
	w.mu.Unlock()
	w.commands <- workerCommand{kind: CmdStart, start: startRequest{pos: pos.Clone(), limits: limits, report: report}}
}

// RequestStop asks the in-flight search (if any) to return as soon as
// possible. It acts directly on the Searcher's stop flag rather than going
// through the command channel, since a queued Stop command would otherwise
// wait behind whatever Start command is already being serviced.
func (w *Worker) RequestStop() {
	w.searcher.Stop()
}

// WaitIdle blocks until no search is running.
func (w *Worker) WaitIdle() {
	w.mu.Lock()
	for w.running {
		w.idleCond.Wait()
	}
	w.mu.Unlock()
}

// LastSnapshot returns a copy of the most recently completed search's
// (position, result, limits, stopped) tuple, under the worker's mutex.
func (w *Worker) LastSnapshot() Snapshot {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.lastSnap
}

// Shutdown stops the background goroutine. The Worker must not be used
// afterward.
func (w *Worker) Shutdown() {
	w.commands <- workerCommand{kind: CmdQuit}
	close(w.commands)
}
