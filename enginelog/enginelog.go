// Package enginelog wraps github.com/rs/zerolog for the engine's structured
// logging and implements the core's named trace-topic mechanism: a mutable
// set of topics {search, qsearch, tt, eval, moves} that, when enabled,
// route human-readable diagnostic strings through an injectable writer.
package enginelog

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
)

// Logger is the process-wide structured logger. Front ends may reassign it
// (e.g. cmd/uci redirects it away from stdout, since stdout is the protocol
// channel) before starting a search.
var Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

// SetOutput redirects Logger's destination writer.
func SetOutput(w io.Writer) {
	Logger = zerolog.New(w).With().Timestamp().Logger()
}

// Topic names a diagnostic trace channel.
type Topic string

const (
	TopicSearch  Topic = "search"
	TopicQSearch Topic = "qsearch"
	TopicTT      Topic = "tt"
	TopicEval    Topic = "eval"
	TopicMoves   Topic = "moves"
)

// TraceWriter receives a fully formatted diagnostic line for an enabled topic.
type TraceWriter func(topic Topic, msg string)

var traceState struct {
	mu      sync.Mutex
	enabled map[Topic]bool
	writer  TraceWriter
}

func init() {
	traceState.enabled = make(map[Topic]bool)
	traceState.writer = func(topic Topic, msg string) {
		Logger.Debug().Str("topic", string(topic)).Msg(msg)
	}
}

// SetTraceTopic enables or disables diagnostic output for topic.
func SetTraceTopic(topic Topic, enabled bool) {
	traceState.mu.Lock()
	defer traceState.mu.Unlock()
	traceState.enabled[topic] = enabled
}

// TraceEnabled reports whether topic currently emits diagnostics.
func TraceEnabled(topic Topic) bool {
	traceState.mu.Lock()
	defer traceState.mu.Unlock()
	return traceState.enabled[topic]
}

// SetTraceWriter overrides where enabled-topic diagnostic strings are sent.
// The default writer logs through Logger at debug level.
func SetTraceWriter(w TraceWriter) {
	traceState.mu.Lock()
	defer traceState.mu.Unlock()
	if w == nil {
		w = func(topic Topic, msg string) {
			Logger.Debug().Str("topic", string(topic)).Msg(msg)
		}
	}
	traceState.writer = w
}

// Trace emits msg through the current trace writer if topic is enabled.
func Trace(topic Topic, msg string) {
	traceState.mu.Lock()
	enabled := traceState.enabled[topic]
	writer := traceState.writer
	traceState.mu.Unlock()
	if !enabled {
		return
	}
	writer(topic, msg)
}

// Tracef is Trace with fmt.Sprintf-style formatting, evaluated lazily —
// callers should still guard hot-path call sites with TraceEnabled to avoid
// paying for the format string on every node.
func Tracef(topic Topic, format string, args ...interface{}) {
	if !TraceEnabled(topic) {
		return
	}
	Trace(topic, fmt.Sprintf(format, args...))
}
