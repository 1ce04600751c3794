package logger

import (
	"fmt"
	"io"
	"log"
	"time"
)

// Std forwards entries to a standard library logger. DEBUG entries are only
// forwarded when Verbose is set.
type Std struct {
	Verbose bool
	Logger  *log.Logger // nil selects the log package default logger
}

func (s *Std) Log(level Level, tag, detail string) {
	if level == LEVEL_DEBUG && !s.Verbose {
		return
	}
	if s.Logger == nil {
		log.Printf("%v: %v: %v", level, tag, clean(detail))
		return
	}
	s.Logger.Printf("%v: %v: %v", level, tag, clean(detail))
}

// File appends entries to a writer, one timestamped line per entry.
type File struct {
	out          io.Writer
	MinimumLevel Level
}

// NewFile starts a log session on out by writing a timestamp banner.
func NewFile(out io.Writer, now time.Time) *File {
	io.WriteString(out, "\n==========================\n "+now.Format(time.ANSIC)+"\n==========================\n\n")
	return &File{out: out, MinimumLevel: LEVEL_INFO}
}

func (fl *File) Log(level Level, tag, detail string) {
	if level < fl.MinimumLevel {
		return
	}
	fmt.Fprintf(fl.out, "[%v] %v: %v: %v\n", time.Now().Format(time.TimeOnly), level, clean(tag), clean(detail))
}
