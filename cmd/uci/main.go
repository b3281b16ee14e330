// Command uci runs the engine's UCI protocol loop over stdin/stdout.
package main

import (
	"bufio"
	"os"
	"strconv"
	"strings"

	"chess-engine/config"
	"chess-engine/engine"
	"chess-engine/enginelog"
	"chess-engine/position"
)

func main() {
	enginelog.SetOutput(os.Stderr)
	uciLoop()
}

func uciLoop() {
	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)

	limits := config.Default()
	worker := engine.NewWorker(limits)
	pos, _ := position.FromFEN(position.StartFEN, false)

	for scanner.Scan() {
		line := scanner.Text()
		tokens := strings.Fields(line)
		if len(tokens) == 0 {
			continue
		}

		switch strings.ToLower(tokens[0]) {
		case "uci":
			worker.WriteLine("id name chess-engine")
			worker.WriteLine("id author the engine's authors")
			worker.WriteLine("option name Hash type spin default %d min 1 max 4096", limits.TTSizeMB)
			worker.WriteLine("option name MultiPV type spin default 1 min 1 max 8")
			worker.WriteLine("uciok")

		case "isready":
			worker.WaitIdle()
			worker.WriteLine("readyok")

		case "ucinewgame":
			worker.WaitIdle()
			worker.Shutdown()
			worker = engine.NewWorker(limits)
			pos, _ = position.FromFEN(position.StartFEN, false)

		case "setoption":
			handleSetOption(tokens, &limits)

		case "position":
			handlePosition(tokens, &pos, worker)

		case "go":
			handleGo(tokens, pos, limits, worker)

		case "stop":
			worker.RequestStop()

		case "quit":
			worker.RequestStop()
			worker.WaitIdle()
			worker.Shutdown()
			return

		default:
			worker.WriteLine("info string unknown command %s", tokens[0])
		}
	}
}

func handleSetOption(tokens []string, limits *config.Limits) {
	name, value := "", ""
	for i := 1; i < len(tokens); i++ {
		switch strings.ToLower(tokens[i]) {
		case "name":
			if i+1 < len(tokens) {
				name = tokens[i+1]
			}
		case "value":
			if i+1 < len(tokens) {
				value = tokens[i+1]
			}
		}
	}
	switch strings.ToLower(name) {
	case "hash":
		if v, err := strconv.Atoi(value); err == nil {
			limits.TTSizeMB = v
		}
	case "multipv":
		if v, err := strconv.Atoi(value); err == nil {
			limits.MultiPV = v
		}
	}
}

func handlePosition(tokens []string, pos **position.Position, worker *engine.Worker) {
	if len(tokens) < 2 {
		worker.WriteLine("info string malformed position command")
		return
	}

	idx := 2
	switch strings.ToLower(tokens[1]) {
	case "startpos":
		p, err := position.FromFEN(position.StartFEN, false)
		if err != nil {
			worker.WriteLine("info string failed to parse startpos")
			return
		}
		*pos = p
	case "fen":
		fenTokens := tokens[idx:]
		movesAt := len(fenTokens)
		for i, t := range fenTokens {
			if strings.ToLower(t) == "moves" {
				movesAt = i
				break
			}
		}
		fen := strings.Join(fenTokens[:movesAt], " ")
		p, err := position.FromFEN(fen, true)
		if err != nil {
			worker.WriteLine("info string invalid fen: %v", err)
			return
		}
		*pos = p
		idx += movesAt
	default:
		worker.WriteLine("info string unknown position subcommand")
		return
	}

	if idx < len(tokens) && strings.ToLower(tokens[idx]) == "moves" {
		for _, moveStr := range tokens[idx+1:] {
			m := position.ParseUCIMove(*pos, strings.ToLower(moveStr))
			if m.IsNull() {
				worker.WriteLine("info string illegal move in position command: %s", moveStr)
				return
			}
			var undo position.Undo
			(*pos).Make(m, &undo)
		}
	}
}

func handleGo(tokens []string, pos *position.Position, limits config.Limits, worker *engine.Worker) {
	l := limits
	l.WtimeMs, l.BtimeMs, l.WincMs, l.BincMs = -1, -1, -1, -1
	l.Depth, l.Movestogo, l.Mate, l.MovetimeMs, l.Nodes = -1, -1, -1, -1, -1

	for i := 1; i < len(tokens); i++ {
		switch strings.ToLower(tokens[i]) {
		case "infinite":
			l.Infinite = true
		case "wtime":
			i++
			if i < len(tokens) {
				l.WtimeMs = atoi64(tokens[i])
			}
		case "btime":
			i++
			if i < len(tokens) {
				l.BtimeMs = atoi64(tokens[i])
			}
		case "winc":
			i++
			if i < len(tokens) {
				l.WincMs = atoi64(tokens[i])
			}
		case "binc":
			i++
			if i < len(tokens) {
				l.BincMs = atoi64(tokens[i])
			}
		case "movestogo":
			i++
			if i < len(tokens) {
				l.Movestogo, _ = strconv.Atoi(tokens[i])
			}
		case "depth":
			i++
			if i < len(tokens) {
				d, _ := strconv.Atoi(tokens[i])
				l.Depth = int16(d)
			}
		case "movetime":
			i++
			if i < len(tokens) {
				l.MovetimeMs = atoi64(tokens[i])
			}
		case "nodes":
			i++
			if i < len(tokens) {
				l.Nodes = atoi64(tokens[i])
			}
		}
	}

	// The worker streams progress, currmove, and the terminal bestmove line
	// itself through its own mutex-guarded writer; this front end only needs
	// to wait for it to go idle again.
	worker.Start(pos, l, nil)
	worker.WaitIdle()
}

func atoi64(s string) int64 {
	v, _ := strconv.ParseInt(s, 10, 64)
	return v
}
