// Package logger provides the leveled log sinks used by the emulator core.
//
// The core never writes to the console or to files directly. It reports
// through a Sink, and the host decides where entries end up: the standard
// log package (Std), an append-only file (File), an in-memory ring that a
// debugger can inspect (Central), or any combination of those (Multi).
package logger

import (
	"strings"

	"github.com/ezrec/gbcore/translate"
)

var f = translate.From

// Level is the severity of a log entry.
type Level int

//go:generate go tool stringer -linecomment -type=Level
const (
	LEVEL_DEBUG = Level(0) // debug
	LEVEL_INFO  = Level(1) // info
	LEVEL_WARN  = Level(2) // warn
	LEVEL_ERROR = Level(3) // error
)

// Sink receives log entries.
type Sink interface {
	Log(level Level, tag, detail string)
}

// Logf formats and translates detail before handing it to sink. A nil sink
// drops the entry.
func Logf(sink Sink, level Level, tag, format string, args ...any) {
	if sink == nil {
		return
	}
	sink.Log(level, tag, f(format, args...))
}

type discard struct{}

func (discard) Log(Level, string, string) {}

// Discard drops every entry.
var Discard Sink = discard{}

// Multi fans entries out to every sink in order.
type Multi []Sink

func (m Multi) Log(level Level, tag, detail string) {
	for _, sink := range m {
		if sink != nil {
			sink.Log(level, tag, detail)
		}
	}
}

// clean removes newline characters so that each entry is one line.
func clean(s string) string {
	return strings.ReplaceAll(s, "\n", "")
}
